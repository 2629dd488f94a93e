package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/gammaphi/lamden-deploy/internal/domain"
	"github.com/gammaphi/lamden-deploy/internal/domain/config"
	"github.com/gammaphi/lamden-deploy/pkg/lamden"
)

// RuntimeConfig is re-exported so callers only import this package
type RuntimeConfig = config.RuntimeConfig

// Viper keys and the environment variables behind them
const (
	KeySigningKey     = "lamden_sk"
	KeyVerifyingKey   = "lamden_vk"
	KeyNetwork        = "network"
	KeyNetworksFile   = "networks_file"
	KeyContractPath   = "contract_path"
	KeyOwner          = "owner"
	KeyName           = "name"
	KeyMaxStamps      = "max_stamps"
	KeySendTo         = "send_to"
	KeySendAmount     = "send_amount"
	KeyCommand        = "command"
	KeyDebug          = "debug"
	KeyNonInteractive = "non_interactive"
	KeyConfirm        = "confirm"
	KeyStrict         = "strict"
	KeyOutput         = "output"
	KeyTimeout        = "timeout"
	KeyCheckInterval  = "check_interval"
	KeyCheckLimit     = "check_limit"
)

const (
	DefaultDeployStamps   = 1000
	DefaultTransferStamps = 100
	DefaultSendAmount     = 100
)

var envBindings = map[string]string{
	KeySigningKey:     "LAMDEN_SK",
	KeyVerifyingKey:   "LAMDEN_VK",
	KeyNetwork:        "NETWORK",
	KeyNetworksFile:   "LAMDEN_NETWORKS_FILE",
	KeyContractPath:   "CONTRACT_PATH",
	KeyOwner:          "OWNER",
	KeyName:           "NAME",
	KeyMaxStamps:      "MAX_STAMPS",
	KeySendTo:         "SEND_TO",
	KeySendAmount:     "SEND_AMOUNT",
	KeyDebug:          "LAMDEN_DEBUG",
	KeyNonInteractive: "LAMDEN_NON_INTERACTIVE",
	KeyStrict:         "LAMDEN_STRICT",
	KeyOutput:         "LAMDEN_OUTPUT",
	KeyTimeout:        "LAMDEN_TIMEOUT",
}

// SetupViper creates a viper instance bound to the process environment.
// Env files should be loaded before any value is read.
func SetupViper(command config.Command) *viper.Viper {
	v := viper.New()

	for key, env := range envBindings {
		if key == KeyMaxStamps && command == config.CommandTransfer {
			// MAX_STAMPS belongs to the deployer; transfer only takes the flag
			continue
		}
		// BindEnv only errors without a key
		_ = v.BindEnv(key, env)
	}

	v.SetDefault(KeyCommand, string(command))
	v.SetDefault(KeyOutput, config.OutputText)
	v.SetDefault(KeyTimeout, "2m")
	v.SetDefault(KeyCheckInterval, "1s")
	v.SetDefault(KeyCheckLimit, 10)
	v.SetDefault(KeySendAmount, DefaultSendAmount)
	if command == config.CommandTransfer {
		v.SetDefault(KeyMaxStamps, DefaultTransferStamps)
	} else {
		v.SetDefault(KeyMaxStamps, DefaultDeployStamps)
	}

	return v
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{
		Command:        config.Command(v.GetString(KeyCommand)),
		SigningKey:     strings.TrimSpace(v.GetString(KeySigningKey)),
		VerifyingKey:   strings.TrimSpace(v.GetString(KeyVerifyingKey)),
		NetworkFlag:    v.GetString(KeyNetwork),
		Debug:          v.GetBool(KeyDebug),
		NonInteractive: v.GetBool(KeyNonInteractive),
		Confirm:        v.GetBool(KeyConfirm),
		Strict:         v.GetBool(KeyStrict),
		Output:         strings.ToLower(v.GetString(KeyOutput)),
		Timeout:        v.GetDuration(KeyTimeout),
		CheckInterval:  v.GetDuration(KeyCheckInterval),
		CheckLimit:     v.GetInt(KeyCheckLimit),
	}

	switch cfg.Output {
	case config.OutputText, config.OutputJSON, config.OutputYAML:
	default:
		return nil, domain.ConfigError{Key: "output", Reason: fmt.Sprintf("must be text, json or yaml, got %q", cfg.Output)}
	}

	networks, err := LoadNetworks(v.GetString(KeyNetworksFile))
	if err != nil {
		return nil, err
	}
	cfg.Network = networks.Select(cfg.NetworkFlag)

	if err := validateKeys(cfg.SigningKey, cfg.VerifyingKey); err != nil {
		return nil, err
	}

	switch cfg.Command {
	case config.CommandDeploy:
		deploy, err := loadDeployConfig(v)
		if err != nil {
			return nil, err
		}
		cfg.Deploy = deploy
	case config.CommandTransfer:
		transfer, err := loadTransferConfig(v)
		if err != nil {
			return nil, err
		}
		cfg.Transfer = transfer
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	return cfg, nil
}

// ProvideNetworks loads the network table for Wire dependency injection
func ProvideNetworks(v *viper.Viper) (NetworkTable, error) {
	return LoadNetworks(v.GetString(KeyNetworksFile))
}

func loadDeployConfig(v *viper.Viper) (*config.DeployConfig, error) {
	maxStamps, err := parseInt(v, KeyMaxStamps)
	if err != nil {
		return nil, err
	}

	cfg := &config.DeployConfig{
		ContractPath: v.GetString(KeyContractPath),
		Owner:        v.GetString(KeyOwner),
		Name:         v.GetString(KeyName),
		MaxStamps:    maxStamps,
	}

	if cfg.ContractPath == "" {
		return nil, domain.ConfigError{Key: envBindings[KeyContractPath], Reason: "is required"}
	}
	if cfg.Name == "" {
		return nil, domain.ConfigError{Key: envBindings[KeyName], Reason: "is required"}
	}

	return cfg, nil
}

func loadTransferConfig(v *viper.Viper) (*config.TransferConfig, error) {
	amount, err := parseInt(v, KeySendAmount)
	if err != nil {
		return nil, err
	}
	maxStamps, err := parseInt(v, KeyMaxStamps)
	if err != nil {
		return nil, err
	}

	cfg := &config.TransferConfig{
		SendTo:    strings.TrimSpace(v.GetString(KeySendTo)),
		Amount:    amount,
		MaxStamps: maxStamps,
	}

	if cfg.SendTo == "" {
		return nil, domain.ConfigError{Key: envBindings[KeySendTo], Reason: "is required"}
	}

	return cfg, nil
}

// parseInt reads key as a base 10 integer. viper's GetInt swallows
// malformed values as zero so the string form is parsed here.
func parseInt(v *viper.Viper, key string) (int64, error) {
	raw := strings.TrimSpace(v.GetString(key))
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		name := key
		if env, ok := envBindings[key]; ok {
			name = env
		}
		return 0, domain.ConfigError{Key: name, Reason: fmt.Sprintf("must be an integer, got %q", raw)}
	}
	return n, nil
}

func validateKeys(sk, vk string) error {
	if !lamden.IsValidKey(vk) {
		return domain.ConfigError{Key: envBindings[KeyVerifyingKey], Reason: "must be a 64 character hex string"}
	}
	if !lamden.IsValidKey(sk) {
		return domain.ConfigError{Key: envBindings[KeySigningKey], Reason: "must be a 64 character hex string"}
	}

	derived, err := lamden.VerifyingKey(sk)
	if err != nil {
		return domain.ConfigError{Key: envBindings[KeySigningKey], Reason: err.Error()}
	}
	if !strings.EqualFold(derived, vk) {
		return domain.ConfigError{Key: envBindings[KeySigningKey], Reason: "does not match " + envBindings[KeyVerifyingKey]}
	}

	return nil
}

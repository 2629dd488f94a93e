package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gammaphi/lamden-deploy/internal/adapters/progress"
	"github.com/gammaphi/lamden-deploy/internal/app"
	"github.com/gammaphi/lamden-deploy/internal/config"
	domainconfig "github.com/gammaphi/lamden-deploy/internal/domain/config"
	"github.com/gammaphi/lamden-deploy/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
	// viperKey is the context key for the configured viper instance
	viperKey contextKey = "viper"
)

// flagKeys maps flag names to viper keys where they differ
var flagKeys = map[string]string{
	"to":     config.KeySendTo,
	"amount": config.KeySendAmount,
}

// skipBootstrap lists commands that run without environment or app
var skipBootstrap = []string{"version", "help", "completion"}

// newRootCmd creates a root command for one of the executables. Both share
// the bootstrap, the global flags and the version and networks subcommands.
func newRootCmd(command domainconfig.Command, use, short, long string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range skipBootstrap {
				if cmd.Name() == name {
					return nil
				}
			}

			// Load .env files before anything reads the environment
			envFiles, _ := cmd.Flags().GetStringSlice("env-file")
			required := cmd.Flags().Changed("env-file")
			if !required {
				envFiles = config.DefaultEnvFiles(".")
			}
			if err := config.LoadEnvFiles(envFiles, required); err != nil {
				return err
			}

			// Set up viper
			v := config.SetupViper(command)

			// Bind flags that have been set
			bindFlags(v, cmd)

			ctx := context.WithValue(cmd.Context(), viperKey, v)
			if cmd.Name() == "networks" {
				cmd.SetContext(ctx)
				return nil
			}

			// Initialize app with DI
			appInstance, err := app.InitApp(v, newProgressSink(cmd, v))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			warnNetworkTypo(appInstance, v)

			// Store app in context
			ctx = context.WithValue(ctx, appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.Bool("debug", false, "Enable debug logging")
	flags.Bool("non-interactive", false, "Disable interactive prompts")
	flags.String("network", "", "Network to use: mainnet, anything else selects testnet")
	flags.String("networks-file", "", "TOML file overriding network names and hosts")
	flags.StringSlice("env-file", nil, "Env file to load (repeatable, defaults to .env.local and .env)")
	flags.StringP("output", "o", "", "Output format: text, json or yaml")
	flags.Bool("strict", false, "Exit non-zero when the transaction fails")
	flags.Bool("confirm", false, "Ask before broadcasting the transaction")
	flags.Duration("timeout", 0, "Overall timeout (default 2m)")
	flags.Duration("check-interval", 0, "Delay between result checks (default 1s)")
	flags.Int("check-limit", 0, "Number of result checks before giving up (default 10)")

	rootCmd.AddCommand(NewNetworksCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// bindFlags copies changed flags into viper so they win over env values
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	visit := func(f *pflag.Flag) {
		if !f.Changed || f.Name == "env-file" {
			return
		}
		key, ok := flagKeys[f.Name]
		if !ok {
			key = strings.ReplaceAll(f.Name, "-", "_")
		}
		v.Set(key, f.Value.String())
	}
	// Flags() includes the inherited persistent flags once parsed
	cmd.Flags().VisitAll(visit)
}

// warnNetworkTypo logs when NETWORK looks like a misspelt network name,
// since anything but an exact "mainnet" selects testnet
func warnNetworkTypo(a *app.App, v *viper.Viper) {
	table, err := config.ProvideNetworks(v)
	if err != nil {
		return
	}
	if suggestion, ok := table.SuggestNetwork(a.Config.NetworkFlag); ok && suggestion != a.Config.Network.Type {
		a.Log.Warn("unrecognised network, using "+string(a.Config.Network.Type),
			"network", a.Config.NetworkFlag, "did_you_mean", suggestion)
	}
}

// newProgressSink shows a spinner on interactive terminals in text mode
func newProgressSink(cmd *cobra.Command, v *viper.Viper) usecase.ProgressSink {
	output := strings.ToLower(v.GetString(config.KeyOutput))
	if output != domainconfig.OutputText || !isTerminal(cmd.ErrOrStderr()) {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerSink(cmd.ErrOrStderr())
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// getViper retrieves the configured viper instance from the command context
func getViper(cmd *cobra.Command) (*viper.Viper, error) {
	v, ok := cmd.Context().Value(viperKey).(*viper.Viper)
	if !ok {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return v, nil
}

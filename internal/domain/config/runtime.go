package config

import (
	"time"

	"github.com/gammaphi/lamden-deploy/internal/domain"
)

// Command identifies which executable is running
type Command string

const (
	CommandDeploy   Command = "deploy"
	CommandTransfer Command = "transfer"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	Command Command

	// Sender keypair, hex encoded
	SigningKey   string
	VerifyingKey string

	// NetworkFlag is the raw NETWORK value; Network is what it selected
	NetworkFlag string
	Network     domain.Network

	// Execution settings
	Debug          bool
	NonInteractive bool
	Confirm        bool
	Strict         bool
	Output         string
	Timeout        time.Duration

	// Result polling
	CheckInterval time.Duration
	CheckLimit    int

	// Command-specific settings, only the one matching Command is set
	Deploy   *DeployConfig
	Transfer *TransferConfig
}

// DeployConfig holds the contract deployer settings
type DeployConfig struct {
	ContractPath string
	Owner        string
	Name         string
	MaxStamps    int64
}

// TransferConfig holds the token transfer settings
type TransferConfig struct {
	SendTo    string
	Amount    int64
	MaxStamps int64
}

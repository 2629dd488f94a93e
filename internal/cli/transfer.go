package cli

import (
	"github.com/spf13/cobra"

	"github.com/gammaphi/lamden-deploy/internal/domain/config"
	"github.com/gammaphi/lamden-deploy/internal/usecase"
)

// NewTransferCmd creates the transfer-tau root command
func NewTransferCmd() *cobra.Command {
	cmd := newRootCmd(
		config.CommandTransfer,
		"transfer-tau",
		"Transfer TAU to another account",
		`Fetches the sender nonce, then sends currency.transfer signed with LAMDEN_SK
and waits for the result. Nothing is sent when the nonce cannot be fetched.

Settings come from the environment (or .env files) and can be overridden by flags:
  LAMDEN_SK, LAMDEN_VK   sender keypair (required)
  SEND_TO                recipient verifying key (required)
  SEND_AMOUNT            amount to send (default 100)
  NETWORK                mainnet, anything else selects testnet`,
	)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		cfg := app.Config

		prepared, err := app.TransferTokens.Prepare(cmd.Context(), usecase.TransferParams{
			SigningKey:   cfg.SigningKey,
			VerifyingKey: cfg.VerifyingKey,
			SendTo:       cfg.Transfer.SendTo,
			Amount:       cfg.Transfer.Amount,
			MaxStamps:    cfg.Transfer.MaxStamps,
			Network:      cfg.Network,
		})
		if err != nil {
			return err
		}

		return runSubmission(cmd, app, prepared, app.TransferTokens.Execute)
	}

	cmd.Flags().String("to", "", "Recipient verifying key")
	cmd.Flags().Int64("amount", 0, "Amount to send (default 100)")
	cmd.Flags().Int64("max-stamps", 0, "Stamp limit (default 100)")

	return cmd
}

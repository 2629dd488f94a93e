package cli

import (
	"github.com/spf13/cobra"

	"github.com/gammaphi/lamden-deploy/internal/domain/config"
	"github.com/gammaphi/lamden-deploy/internal/usecase"
)

// NewDeployContractCmd creates the deploy-contract root command
func NewDeployContractCmd() *cobra.Command {
	cmd := newRootCmd(
		config.CommandDeploy,
		"deploy-contract",
		"Submit a smart contract to a Lamden network",
		`Reads a contract source file and submits it through submission.submit_contract,
signed with LAMDEN_SK, then waits for the result.

Settings come from the environment (or .env files) and can be overridden by flags:
  LAMDEN_SK, LAMDEN_VK   sender keypair (required)
  CONTRACT_PATH          contract source file (required)
  NAME                   contract name, usually con_<name> (required)
  OWNER                  optional owner of the contract
  MAX_STAMPS             stamp limit (default 1000)
  NETWORK                mainnet, anything else selects testnet`,
	)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		cfg := app.Config

		prepared, err := app.DeployContract.Prepare(cmd.Context(), usecase.DeployParams{
			SigningKey:   cfg.SigningKey,
			VerifyingKey: cfg.VerifyingKey,
			ContractPath: cfg.Deploy.ContractPath,
			Owner:        cfg.Deploy.Owner,
			Name:         cfg.Deploy.Name,
			MaxStamps:    cfg.Deploy.MaxStamps,
			Network:      cfg.Network,
		})
		if err != nil {
			return err
		}

		return runSubmission(cmd, app, prepared, app.DeployContract.Execute)
	}

	cmd.Flags().String("contract-path", "", "Path to the contract source file")
	cmd.Flags().String("name", "", "Contract name")
	cmd.Flags().String("owner", "", "Contract owner")
	cmd.Flags().Int64("max-stamps", 0, "Stamp limit (default 1000)")

	return cmd
}

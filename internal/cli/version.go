package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gammaphi/lamden-deploy/internal/config"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit %s, built %s)\n",
				cmd.Root().Name(), config.Version, config.Commit, config.Date)
		},
	}
}

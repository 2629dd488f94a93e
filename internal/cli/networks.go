package cli

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/gammaphi/lamden-deploy/internal/cli/render"
	"github.com/gammaphi/lamden-deploy/internal/config"
	"github.com/gammaphi/lamden-deploy/internal/domain"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List the networks transactions can be sent to",
		Long: `List the Lamden networks with their masternode hosts, including overrides
from --networks-file. The network selected by NETWORK is marked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := getViper(cmd)
			if err != nil {
				return err
			}

			table, err := config.ProvideNetworks(v)
			if err != nil {
				return err
			}
			selected := table.Select(v.GetString(config.KeyNetwork))

			networks := lo.Map(table.Types(), func(t domain.NetworkType, _ int) domain.Network {
				return table[t]
			})

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), isTerminal(cmd.OutOrStdout()))
			return renderer.RenderNetworks(networks, selected.Type)
		},
	}
}

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gammaphi/lamden-deploy/internal/domain"
)

// NetworksRenderer renders the network table
type NetworksRenderer struct {
	out   io.Writer
	paint painter
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		paint: painter(color),
	}
}

// RenderNetworks lists each network, marking the one currently selected
func (r *NetworksRenderer) RenderNetworks(networks []domain.Network, selected domain.NetworkType) error {
	if len(networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.AppendHeader(table.Row{"", "TYPE", "NAME", "HOSTS"})

	title := cases.Title(language.English)
	for _, n := range networks {
		marker := ""
		if n.Type == selected {
			marker = r.paint.green("*")
		}
		t.AppendRow(table.Row{marker, title.String(string(n.Type)), n.Name, strings.Join(n.Hosts, "\n")})
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}

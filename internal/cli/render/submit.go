package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gammaphi/lamden-deploy/internal/domain"
)

// SubmitRenderer prints the progress of a transaction in text mode
type SubmitRenderer struct {
	out   io.Writer
	paint painter
}

// NewSubmitRenderer creates a new submit renderer
func NewSubmitRenderer(out io.Writer, color bool) *SubmitRenderer {
	return &SubmitRenderer{
		out:   out,
		paint: painter(color),
	}
}

// RenderRequest prints the network and the transaction about to be sent.
// The signing key is not part of either and is never printed.
func (r *SubmitRenderer) RenderRequest(network domain.Network, request domain.TransactionRequest) error {
	fmt.Fprintln(r.out, r.paint.cyan("Network"))
	fmt.Fprintln(r.out, renderKeyValues([][2]string{
		{"Name", network.Name},
		{"Type", cases.Title(language.English).String(string(network.Type))},
		{"Hosts", joinHosts(network.Hosts)},
	}))
	fmt.Fprintln(r.out)

	rows := [][2]string{
		{"Sender", request.SenderVerifyingKey},
		{"Contract", request.ContractName},
		{"Method", request.MethodName},
		{"Stamps", strconv.FormatInt(request.StampLimit, 10)},
		{"Kwargs", ""},
	}
	rows = append(rows, kwargRows(request.Kwargs)...)

	fmt.Fprintln(r.out, r.paint.cyan("Transaction"))
	fmt.Fprintln(r.out, renderKeyValues(rows))
	fmt.Fprintln(r.out)
	return nil
}

// RenderNonce prints the nonce fetched before a transfer
func (r *SubmitRenderer) RenderNonce(nonce *domain.NonceInfo) error {
	if nonce == nil {
		return nil
	}
	fmt.Fprintf(r.out, "%s %d (processor %s)\n\n", r.paint.bold("Nonce:"), nonce.Nonce, nonce.Processor)
	return nil
}

// RenderNonceError prints the nonce failure message
func (r *SubmitRenderer) RenderNonceError() error {
	fmt.Fprintln(r.out, r.paint.red("Nonce Not Set"))
	return nil
}

// RenderResponse prints the final transaction response followed by
// Success! unless the response is an error
func (r *SubmitRenderer) RenderResponse(resp *domain.TxResult) error {
	if resp == nil {
		fmt.Fprintln(r.out, r.paint.red("No response received"))
		return nil
	}

	title := resp.Title
	if resp.IsError() {
		title = r.paint.red(title)
	} else {
		title = r.paint.green(title)
	}
	fmt.Fprintln(r.out, title)

	rows := [][2]string{}
	if resp.Subtitle != "" {
		rows = append(rows, [2]string{"Subtitle", resp.Subtitle})
	}
	if resp.Message != "" {
		rows = append(rows, [2]string{"Message", resp.Message})
	}
	if resp.Hash != "" {
		rows = append(rows, [2]string{"Hash", resp.Hash})
	}
	if resp.Status != nil {
		rows = append(rows, [2]string{"Status", strconv.Itoa(*resp.Status)})
	}
	if resp.StampsUsed > 0 {
		rows = append(rows, [2]string{"Stamps Used", strconv.FormatInt(resp.StampsUsed, 10)})
	}
	if resp.Returned != "" {
		rows = append(rows, [2]string{"Returned", shorten(resp.Returned)})
	}
	if len(rows) > 0 {
		fmt.Fprintln(r.out, renderKeyValues(rows))
	}

	for _, e := range resp.Errors {
		fmt.Fprintf(r.out, "  %s %s\n", r.paint.red("✗"), e)
	}

	if len(resp.Raw) > 0 {
		data, err := json.MarshalIndent(resp.Raw, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode raw response: %w", err)
		}
		fmt.Fprintln(r.out, r.paint.yellow(string(data)))
	}

	if !resp.IsError() {
		fmt.Fprintln(r.out, r.paint.green("Success!"))
	}
	return nil
}

func joinHosts(hosts []string) string {
	if len(hosts) == 0 {
		return "-"
	}
	return strings.Join(hosts, ", ")
}

package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gammaphi/lamden-deploy/internal/domain"
	"github.com/gammaphi/lamden-deploy/internal/domain/config"
	"github.com/gammaphi/lamden-deploy/internal/usecase"
)

// Renderer writes one kind of result to its output
type Renderer[T any] interface {
	Render(result T) error
}

// Document is the single structured output of a run
type Document struct {
	Network     domain.Network            `json:"network" yaml:"network"`
	Transaction domain.TransactionRequest `json:"transaction" yaml:"transaction"`
	Nonce       *domain.NonceInfo         `json:"nonce,omitempty" yaml:"nonce,omitempty"`
	Response    *domain.TxResult          `json:"response,omitempty" yaml:"response,omitempty"`
	Error       string                    `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewDocument builds a document from a prepared transaction and, when
// available, its result
func NewDocument(prepared *usecase.PreparedTransaction, result *usecase.SubmitResult) Document {
	doc := Document{
		Network:     prepared.Network,
		Transaction: prepared.Request,
	}
	if result != nil {
		doc.Nonce = result.Nonce
		doc.Response = result.Response
	}
	return doc
}

// DocumentRenderer writes a Document as JSON or YAML
type DocumentRenderer struct {
	out    io.Writer
	format string
}

// NewDocumentRenderer creates a renderer for the json or yaml format
func NewDocumentRenderer(out io.Writer, format string) *DocumentRenderer {
	return &DocumentRenderer{
		out:    out,
		format: format,
	}
}

// Render writes the document
func (r *DocumentRenderer) Render(doc Document) error {
	switch r.format {
	case config.OutputJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json output: %w", err)
		}
		fmt.Fprintln(r.out, string(data))
		return nil
	case config.OutputYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml output: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", r.format)
	}
}

var _ Renderer[Document] = (*DocumentRenderer)(nil)

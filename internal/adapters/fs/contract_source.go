package fs

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gammaphi/lamden-deploy/internal/domain"
	"github.com/gammaphi/lamden-deploy/internal/usecase"
)

// ContractSourceAdapter reads contract code from the local filesystem
type ContractSourceAdapter struct{}

// NewContractSourceAdapter creates a new contract source adapter
func NewContractSourceAdapter() *ContractSourceAdapter {
	return &ContractSourceAdapter{}
}

// ReadContract returns the file contents decoded as UTF-8. Invalid byte
// sequences are replaced with U+FFFD.
func (a *ContractSourceAdapter) ReadContract(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: no path given", domain.ErrContractSource)
	}

	data, err := os.ReadFile(path) //nolint:gosec // operator supplied path
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrContractSource, err)
	}

	return decodeUTF8(data), nil
}

func decodeUTF8(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	var b strings.Builder
	b.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		b.WriteRune(r)
		data = data[size:]
	}
	return b.String()
}

// Ensure the adapter implements the interface
var _ usecase.ContractSource = (*ContractSourceAdapter)(nil)

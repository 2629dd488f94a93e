package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gammaphi/lamden-deploy/internal/domain"
)

func TestContractSourceAdapter_ReadContract(t *testing.T) {
	dir := t.TempDir()
	adapter := NewContractSourceAdapter()

	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{
			name:    "python contract",
			content: []byte("balances = Hash(default_value=0)\n\n@export\ndef transfer(amount: float, to: str):\n    pass\n"),
			want:    "balances = Hash(default_value=0)\n\n@export\ndef transfer(amount: float, to: str):\n    pass\n",
		},
		{
			name:    "multibyte text",
			content: []byte("# ünïcødé ✓\n"),
			want:    "# ünïcødé ✓\n",
		},
		{
			name:    "invalid bytes are replaced",
			content: []byte{'a', 0xff, 'b', 0xfe},
			want:    "a�b�",
		},
		{
			name:    "empty file",
			content: []byte{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".py")
			require.NoError(t, os.WriteFile(path, tt.content, 0o600))

			code, err := adapter.ReadContract(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := adapter.ReadContract(context.Background(), filepath.Join(dir, "missing.py"))
		assert.ErrorIs(t, err, domain.ErrContractSource)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := adapter.ReadContract(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrContractSource)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := adapter.ReadContract(context.Background(), dir)
		assert.ErrorIs(t, err, domain.ErrContractSource)
	})
}

package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	err := ConfigError{Key: "MAX_STAMPS", Reason: "must be an integer"}

	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Equal(t, "invalid configuration: MAX_STAMPS must be an integer", err.Error())
}

func TestTransactionFailedErr(t *testing.T) {
	tests := []struct {
		name   string
		result *TxResult
		want   string
	}{
		{
			name:   "nil result",
			result: nil,
			want:   "transaction failed",
		},
		{
			name:   "uses first error",
			result: &TxResult{Type: TxResultError, Title: "Transaction Failed", Errors: []string{"stamps exceeded", "other"}},
			want:   "transaction failed: stamps exceeded",
		},
		{
			name:   "falls back to title",
			result: &TxResult{Type: TxResultError, Title: "Transaction Failed"},
			want:   "transaction failed: Transaction Failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TransactionFailedErr{Result: tt.result}
			assert.Equal(t, tt.want, err.Error())
			assert.ErrorIs(t, err, ErrTransactionFailed)
		})
	}
}

func TestTxResult_IsError(t *testing.T) {
	var missing *TxResult
	assert.True(t, missing.IsError())
	assert.True(t, (&TxResult{Type: TxResultError}).IsError())
	assert.False(t, (&TxResult{Type: TxResultSuccess}).IsError())
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gammaphi/lamden-deploy/internal/domain"
)

func transferParams() TransferParams {
	return TransferParams{
		SigningKey:   "sk",
		VerifyingKey: "vk",
		SendTo:       "bob",
		Amount:       100,
		MaxStamps:    100,
		Network:      testNetwork,
	}
}

func TestTransferTokens_Prepare(t *testing.T) {
	uc := NewTransferTokens(&stubFactory{}, nil, NopProgress{}, testLogger)

	t.Run("builds transfer request", func(t *testing.T) {
		prepared, err := uc.Prepare(context.Background(), transferParams())
		require.NoError(t, err)

		assert.Equal(t, "currency", prepared.Request.ContractName)
		assert.Equal(t, "transfer", prepared.Request.MethodName)
		assert.Equal(t, "vk", prepared.Request.SenderVerifyingKey)
		assert.Equal(t, int64(100), prepared.Request.StampLimit)
		assert.Equal(t, map[string]any{"amount": int64(100), "to": "bob"}, prepared.Request.Kwargs)
	})

	t.Run("custom amount", func(t *testing.T) {
		params := transferParams()
		params.Amount = 250
		prepared, err := uc.Prepare(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, int64(250), prepared.Request.Kwargs["amount"])
	})

	t.Run("recipient required", func(t *testing.T) {
		params := transferParams()
		params.SendTo = ""
		_, err := uc.Prepare(context.Background(), params)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})
}

func TestTransferTokens_Execute(t *testing.T) {
	t.Run("nonce failure prevents send", func(t *testing.T) {
		builder := &recordingBuilder{nonceErr: errors.New("connection refused")}
		confirmer := &stubConfirmer{answer: true}
		uc := NewTransferTokens(&stubFactory{builder: builder}, confirmer, NopProgress{}, testLogger)

		prepared, err := uc.Prepare(context.Background(), transferParams())
		require.NoError(t, err)
		result, err := uc.Execute(context.Background(), prepared, ExecuteOptions{Confirm: true})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrNonceNotSet)
		assert.ErrorContains(t, err, "connection refused")
		assert.Equal(t, []string{"GetNonce"}, builder.calls)
		assert.Empty(t, builder.sentWithKey)
		assert.Zero(t, confirmer.asked)
	})

	t.Run("nonce then send then check", func(t *testing.T) {
		nonce := &domain.NonceInfo{Nonce: 4, Processor: "proc", Sender: "vk"}
		builder := &recordingBuilder{
			nonce: nonce,
			sent:  successResult("abc"),
			final: &domain.TxResult{Type: domain.TxResultSuccess, Title: "Transaction Successful", Hash: "abc"},
		}
		progress := &recordingProgress{}
		uc := NewTransferTokens(&stubFactory{builder: builder}, nil, progress, testLogger)

		prepared, err := uc.Prepare(context.Background(), transferParams())
		require.NoError(t, err)
		result, err := uc.Execute(context.Background(), prepared, ExecuteOptions{})
		require.NoError(t, err)

		assert.Equal(t, []string{"GetNonce", "Send", "CheckForTransactionResult"}, builder.calls)
		assert.Equal(t, nonce, result.Nonce)
		assert.False(t, result.Failed())
		assert.Equal(t, []ExecutionStage{StageNonce, StageNonce, StageBroadcasting, StageWaiting, StageCompleted}, progress.stages)
	})

	t.Run("send error is reported as failed result", func(t *testing.T) {
		builder := &recordingBuilder{
			nonce: &domain.NonceInfo{Nonce: 1},
			sent:  &domain.TxResult{Type: domain.TxResultError, Title: "Transaction Failed"},
		}
		uc := NewTransferTokens(&stubFactory{builder: builder}, nil, NopProgress{}, testLogger)

		prepared, err := uc.Prepare(context.Background(), transferParams())
		require.NoError(t, err)
		result, err := uc.Execute(context.Background(), prepared, ExecuteOptions{})
		require.NoError(t, err)

		assert.True(t, result.Failed())
		assert.Equal(t, []string{"GetNonce", "Send"}, builder.calls)
	})

	t.Run("send transport error", func(t *testing.T) {
		builder := &recordingBuilder{nonce: &domain.NonceInfo{Nonce: 1}, sendErr: context.Canceled}
		uc := NewTransferTokens(&stubFactory{builder: builder}, nil, NopProgress{}, testLogger)

		prepared, err := uc.Prepare(context.Background(), transferParams())
		require.NoError(t, err)
		_, err = uc.Execute(context.Background(), prepared, ExecuteOptions{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gammaphi/lamden-deploy/internal/domain"
)

// TransferParams contains parameters for a token transfer
type TransferParams struct {
	SigningKey   string
	VerifyingKey string
	SendTo       string
	Amount       int64
	MaxStamps    int64
	Network      domain.Network
}

// TransferTokens sends currency.transfer after fetching the sender's nonce
type TransferTokens struct {
	submitter
}

// NewTransferTokens creates a new TransferTokens use case
func NewTransferTokens(
	factory TransactionBuilderFactory,
	confirmer Confirmer,
	progress ProgressSink,
	log *slog.Logger,
) *TransferTokens {
	return &TransferTokens{
		submitter: submitter{
			factory:   factory,
			confirmer: confirmer,
			progress:  progress,
			log:       log,
		},
	}
}

// Prepare assembles the transfer request
func (uc *TransferTokens) Prepare(ctx context.Context, params TransferParams) (*PreparedTransaction, error) {
	if params.SendTo == "" {
		return nil, domain.ConfigError{Key: "SEND_TO", Reason: "is required"}
	}

	return &PreparedTransaction{
		Network: params.Network,
		Request: domain.TransactionRequest{
			SenderVerifyingKey: params.VerifyingKey,
			ContractName:       domain.CurrencyContract,
			MethodName:         domain.TransferMethod,
			Kwargs: map[string]any{
				"amount": params.Amount,
				"to":     params.SendTo,
			},
			StampLimit: params.MaxStamps,
		},
		SigningKey: params.SigningKey,
	}, nil
}

// Execute fetches the nonce first; when that fails nothing is signed or
// sent and the returned error wraps domain.ErrNonceNotSet.
func (uc *TransferTokens) Execute(ctx context.Context, prepared *PreparedTransaction, opts ExecuteOptions) (*SubmitResult, error) {
	tx, err := uc.builder(prepared)
	if err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageNonce, Message: "Fetching nonce", Spinner: true})
	nonce, err := tx.GetNonce(ctx)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageNonce})
	if err != nil {
		uc.log.Debug("nonce lookup failed", "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrNonceNotSet, err)
	}

	if err := uc.confirm(ctx, prepared, opts); err != nil {
		return nil, err
	}

	result := &SubmitResult{
		Network: prepared.Network,
		Request: prepared.Request,
		Nonce:   nonce,
	}
	result, err = uc.submit(ctx, tx, prepared, result)
	if err != nil {
		return nil, fmt.Errorf("failed to transfer %v to %v: %w", prepared.Request.Kwargs["amount"], prepared.Request.Kwargs["to"], err)
	}
	return result, nil
}

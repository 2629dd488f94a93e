package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gammaphi/lamden-deploy/internal/domain"
)

// submitter holds the collaborators shared by both transaction flows
type submitter struct {
	factory   TransactionBuilderFactory
	confirmer Confirmer
	progress  ProgressSink
	log       *slog.Logger
}

func (s *submitter) builder(prepared *PreparedTransaction) (TransactionBuilder, error) {
	if prepared == nil {
		return nil, fmt.Errorf("no prepared transaction")
	}
	tx, err := s.factory.NewTransactionBuilder(prepared.Network, prepared.Request)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction builder: %w", err)
	}
	return tx, nil
}

// confirm returns domain.ErrAborted when the operator declines
func (s *submitter) confirm(ctx context.Context, prepared *PreparedTransaction, opts ExecuteOptions) error {
	if !opts.Confirm {
		return nil
	}
	if s.confirmer == nil {
		return fmt.Errorf("confirmation requested but no prompt is available")
	}

	msg := fmt.Sprintf("Broadcast %s.%s to %s", prepared.Request.ContractName, prepared.Request.MethodName, prepared.Network.Name)
	ok, err := s.confirmer.Confirm(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to confirm broadcast: %w", err)
	}
	if !ok {
		return domain.ErrAborted
	}
	return nil
}

// submit sends the transaction and waits for its result. A send response
// of type error ends the flow without polling.
func (s *submitter) submit(ctx context.Context, tx TransactionBuilder, prepared *PreparedTransaction, result *SubmitResult) (*SubmitResult, error) {
	s.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageBroadcasting,
		Message: fmt.Sprintf("Sending %s.%s", prepared.Request.ContractName, prepared.Request.MethodName),
		Spinner: true,
	})

	sent, err := tx.Send(ctx, prepared.SigningKey)
	if err != nil {
		s.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}
	if sent.IsError() {
		s.log.Debug("send rejected", "title", sent.Title, "errors", sent.Errors)
		s.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		result.Response = sent
		return result, nil
	}

	s.log.Debug("transaction sent", "hash", sent.Hash)
	s.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageWaiting,
		Message: fmt.Sprintf("Waiting for result of %s", sent.Hash),
		Spinner: true,
	})

	final, err := tx.CheckForTransactionResult(ctx)
	s.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	if err != nil {
		return nil, fmt.Errorf("failed to check transaction result: %w", err)
	}

	result.Response = final
	return result, nil
}

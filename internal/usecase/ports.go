package usecase

import (
	"context"

	"github.com/gammaphi/lamden-deploy/internal/domain"
)

// ContractSource reads contract code for deployment
type ContractSource interface {
	ReadContract(ctx context.Context, path string) (string, error)
}

// TransactionBuilder signs, sends and tracks a single transaction
type TransactionBuilder interface {
	GetNonce(ctx context.Context) (*domain.NonceInfo, error)
	Send(ctx context.Context, signingKey string) (*domain.TxResult, error)
	CheckForTransactionResult(ctx context.Context) (*domain.TxResult, error)
}

// TransactionBuilderFactory creates a builder for one network and request
type TransactionBuilderFactory interface {
	NewTransactionBuilder(network domain.Network, request domain.TransactionRequest) (TransactionBuilder, error)
}

// Confirmer asks the operator to approve a broadcast
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// Progress tracking interfaces

// ExecutionStage represents a stage in the submit process
type ExecutionStage string

const (
	StageNonce        ExecutionStage = "Nonce"
	StageBroadcasting ExecutionStage = "Broadcasting"
	StageWaiting      ExecutionStage = "Waiting"
	StageCompleted    ExecutionStage = "Completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ExecutionStage
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Use case result types

// PreparedTransaction is a fully assembled request ready to be signed
type PreparedTransaction struct {
	Network    domain.Network
	Request    domain.TransactionRequest
	SigningKey string `json:"-" yaml:"-"`
}

// SubmitResult is what a submitted transaction produced
type SubmitResult struct {
	Network  domain.Network
	Request  domain.TransactionRequest
	Nonce    *domain.NonceInfo
	Response *domain.TxResult
}

// Failed reports whether the response carried type error
func (r *SubmitResult) Failed() bool {
	return r == nil || r.Response.IsError()
}

// ExecuteOptions controls how a prepared transaction is sent
type ExecuteOptions struct {
	// Confirm asks the Confirmer before broadcasting
	Confirm bool
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gammaphi/lamden-deploy/internal/domain"
)

// DeployParams contains parameters for deploying a contract
type DeployParams struct {
	SigningKey   string
	VerifyingKey string
	ContractPath string
	// Owner is optional; empty means no owner kwarg
	Owner     string
	Name      string
	MaxStamps int64
	Network   domain.Network
}

// DeployContract submits contract code through submission.submit_contract
type DeployContract struct {
	source ContractSource
	submitter
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	source ContractSource,
	factory TransactionBuilderFactory,
	confirmer Confirmer,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		source: source,
		submitter: submitter{
			factory:   factory,
			confirmer: confirmer,
			progress:  progress,
			log:       log,
		},
	}
}

// Prepare reads the contract file and assembles the transaction request
func (uc *DeployContract) Prepare(ctx context.Context, params DeployParams) (*PreparedTransaction, error) {
	if params.Name == "" {
		return nil, domain.ConfigError{Key: "NAME", Reason: "is required"}
	}

	code, err := uc.source.ReadContract(ctx, params.ContractPath)
	if err != nil {
		return nil, err
	}

	kwargs := map[string]any{
		"code": code,
		"name": params.Name,
	}
	if params.Owner != "" {
		kwargs["owner"] = params.Owner
	}

	uc.log.Debug("prepared contract submission", "name", params.Name, "path", params.ContractPath, "bytes", len(code))

	return &PreparedTransaction{
		Network: params.Network,
		Request: domain.TransactionRequest{
			SenderVerifyingKey: params.VerifyingKey,
			ContractName:       domain.SubmissionContract,
			MethodName:         domain.SubmitContractMethod,
			Kwargs:             kwargs,
			StampLimit:         params.MaxStamps,
		},
		SigningKey: params.SigningKey,
	}, nil
}

// Execute signs and sends the submission, then waits for the result.
// The builder fetches the nonce on its own during send.
func (uc *DeployContract) Execute(ctx context.Context, prepared *PreparedTransaction, opts ExecuteOptions) (*SubmitResult, error) {
	tx, err := uc.builder(prepared)
	if err != nil {
		return nil, err
	}

	if err := uc.confirm(ctx, prepared, opts); err != nil {
		return nil, err
	}

	result := &SubmitResult{
		Network: prepared.Network,
		Request: prepared.Request,
	}
	result, err = uc.submit(ctx, tx, prepared, result)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy contract %v: %w", prepared.Request.Kwargs["name"], err)
	}
	return result, nil
}

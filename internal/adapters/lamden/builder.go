package lamden

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gammaphi/lamden-deploy/internal/config"
	"github.com/gammaphi/lamden-deploy/internal/domain"
	"github.com/gammaphi/lamden-deploy/internal/usecase"
	"github.com/gammaphi/lamden-deploy/pkg/lamden"
)

// BuilderFactoryAdapter creates lamden transaction builders
type BuilderFactoryAdapter struct {
	httpClient    *http.Client
	checkInterval time.Duration
	checkLimit    int
	log           *slog.Logger
}

// NewBuilderFactoryAdapter creates a new factory from runtime configuration
func NewBuilderFactoryAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *BuilderFactoryAdapter {
	return &BuilderFactoryAdapter{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		checkInterval: cfg.CheckInterval,
		checkLimit:    cfg.CheckLimit,
		log:           log,
	}
}

// NewTransactionBuilder validates the network and request and wraps a lamden builder
func (f *BuilderFactoryAdapter) NewTransactionBuilder(network domain.Network, request domain.TransactionRequest) (usecase.TransactionBuilder, error) {
	tx, err := lamden.NewTransactionBuilder(
		lamden.NetworkInfo{
			Name:  network.Name,
			Type:  string(network.Type),
			Hosts: network.Hosts,
		},
		lamden.TxInfo{
			SenderVk:     request.SenderVerifyingKey,
			ContractName: request.ContractName,
			MethodName:   request.MethodName,
			Kwargs:       request.Kwargs,
			StampLimit:   request.StampLimit,
		},
		lamden.WithHTTPClient(f.httpClient),
		lamden.WithCheckInterval(f.checkInterval),
		lamden.WithCheckLimit(f.checkLimit),
		lamden.WithLogger(f.log.With("component", "lamden")),
	)
	if err != nil {
		return nil, err
	}

	return &builderAdapter{tx: tx}, nil
}

// builderAdapter maps lamden types onto domain types
type builderAdapter struct {
	tx *lamden.TransactionBuilder
}

func (b *builderAdapter) GetNonce(ctx context.Context) (*domain.NonceInfo, error) {
	resp, err := b.tx.GetNonce(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.NonceInfo{
		Nonce:     resp.Nonce,
		Processor: resp.Processor,
		Sender:    resp.Sender,
	}, nil
}

func (b *builderAdapter) Send(ctx context.Context, signingKey string) (*domain.TxResult, error) {
	resp, err := b.tx.Send(ctx, signingKey)
	if err != nil {
		return nil, err
	}
	return toTxResult(resp), nil
}

func (b *builderAdapter) CheckForTransactionResult(ctx context.Context) (*domain.TxResult, error) {
	resp, err := b.tx.CheckForTransactionResult(ctx)
	if err != nil {
		return nil, err
	}
	return toTxResult(resp), nil
}

func toTxResult(resp *lamden.Response) *domain.TxResult {
	info := resp.ResultInfo
	return &domain.TxResult{
		Type:       info.Type,
		Title:      info.Title,
		Subtitle:   info.Subtitle,
		Message:    info.Message,
		Errors:     info.ErrorInfo,
		Hash:       info.TxHash,
		Status:     info.Status,
		StampsUsed: info.StampsUsed,
		Returned:   info.Returned,
		Raw:        resp.TxBlockResult,
	}
}

// Ensure the adapter implements the interface
var _ usecase.TransactionBuilderFactory = (*BuilderFactoryAdapter)(nil)

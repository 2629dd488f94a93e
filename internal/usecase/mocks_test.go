package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/gammaphi/lamden-deploy/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// recordingBuilder records every call made against it
type recordingBuilder struct {
	calls []string

	nonce    *domain.NonceInfo
	nonceErr error
	sent     *domain.TxResult
	sendErr  error
	final    *domain.TxResult
	checkErr error

	sentWithKey string
}

func (b *recordingBuilder) GetNonce(ctx context.Context) (*domain.NonceInfo, error) {
	b.calls = append(b.calls, "GetNonce")
	return b.nonce, b.nonceErr
}

func (b *recordingBuilder) Send(ctx context.Context, signingKey string) (*domain.TxResult, error) {
	b.calls = append(b.calls, "Send")
	b.sentWithKey = signingKey
	return b.sent, b.sendErr
}

func (b *recordingBuilder) CheckForTransactionResult(ctx context.Context) (*domain.TxResult, error) {
	b.calls = append(b.calls, "CheckForTransactionResult")
	return b.final, b.checkErr
}

type stubFactory struct {
	builder  *recordingBuilder
	err      error
	network  domain.Network
	request  domain.TransactionRequest
	requests int
}

func (f *stubFactory) NewTransactionBuilder(network domain.Network, request domain.TransactionRequest) (TransactionBuilder, error) {
	f.requests++
	f.network = network
	f.request = request
	if f.err != nil {
		return nil, f.err
	}
	return f.builder, nil
}

type stubSource struct {
	files map[string]string
	read  []string
}

func (s *stubSource) ReadContract(ctx context.Context, path string) (string, error) {
	s.read = append(s.read, path)
	code, ok := s.files[path]
	if !ok {
		return "", errors.Join(domain.ErrContractSource, errors.New("no such file"))
	}
	return code, nil
}

type stubConfirmer struct {
	answer  bool
	err     error
	asked   int
	message string
}

func (c *stubConfirmer) Confirm(ctx context.Context, message string) (bool, error) {
	c.asked++
	c.message = message
	return c.answer, c.err
}

type recordingProgress struct {
	stages []ExecutionStage
}

func (p *recordingProgress) OnProgress(ctx context.Context, event ProgressEvent) {
	p.stages = append(p.stages, event.Stage)
}
func (p *recordingProgress) Info(string)  {}
func (p *recordingProgress) Error(string) {}

func successResult(hash string) *domain.TxResult {
	return &domain.TxResult{Type: domain.TxResultSuccess, Title: "Transaction Pending", Hash: hash}
}

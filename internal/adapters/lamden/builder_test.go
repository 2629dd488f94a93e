package lamden

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gammaphi/lamden-deploy/internal/config"
	"github.com/gammaphi/lamden-deploy/internal/domain"
	"github.com/gammaphi/lamden-deploy/pkg/lamden"
)

func TestBuilderFactoryAdapter(t *testing.T) {
	sk := strings.Repeat("5e", 32)
	vk, err := lamden.VerifyingKey(sk)
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/nonce/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"nonce": 9, "processor": "proc", "sender": "`+vk+`"}`)
	})
	mux.HandleFunc("/tx", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "h1", r.URL.Query().Get("hash"))
		io.WriteString(w, `{"hash": "h1", "result": "None", "stamps_used": 21, "status": 0}`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		io.WriteString(w, `{"success": "Transaction successfully submitted to the network.", "hash": "h1"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := &config.RuntimeConfig{CheckInterval: time.Millisecond, CheckLimit: 2}
	factory := NewBuilderFactoryAdapter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	network := domain.Network{Name: "local", Type: domain.NetworkTypeTestnet, Hosts: []string{srv.URL}}
	request := domain.TransactionRequest{
		SenderVerifyingKey: vk,
		ContractName:       domain.CurrencyContract,
		MethodName:         domain.TransferMethod,
		Kwargs:             map[string]any{"amount": int64(100), "to": "bob"},
		StampLimit:         100,
	}

	tx, err := factory.NewTransactionBuilder(network, request)
	require.NoError(t, err)

	nonce, err := tx.GetNonce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.NonceInfo{Nonce: 9, Processor: "proc", Sender: vk}, nonce)

	sent, err := tx.Send(context.Background(), sk)
	require.NoError(t, err)
	assert.Equal(t, domain.TxResultSuccess, sent.Type)
	assert.Equal(t, "h1", sent.Hash)

	final, err := tx.CheckForTransactionResult(context.Background())
	require.NoError(t, err)
	assert.False(t, final.IsError())
	assert.Equal(t, int64(21), final.StampsUsed)
	assert.Equal(t, "None", final.Returned)
	require.NotNil(t, final.Status)
	assert.Equal(t, 0, *final.Status)
	assert.Equal(t, "h1", final.Raw["hash"])
}

func TestBuilderFactoryAdapter_Invalid(t *testing.T) {
	factory := NewBuilderFactoryAdapter(&config.RuntimeConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := factory.NewTransactionBuilder(
		domain.Network{Type: domain.NetworkTypeTestnet, Hosts: []string{"ftp://nope"}},
		domain.TransactionRequest{SenderVerifyingKey: strings.Repeat("a", 64), ContractName: "c", MethodName: "m", StampLimit: 1},
	)
	assert.ErrorIs(t, err, lamden.ErrInvalidNetwork)

	_, err = factory.NewTransactionBuilder(
		domain.Network{Type: domain.NetworkTypeTestnet, Hosts: []string{"https://ok"}},
		domain.TransactionRequest{SenderVerifyingKey: "short", ContractName: "c", MethodName: "m", StampLimit: 1},
	)
	assert.ErrorIs(t, err, lamden.ErrInvalidTxInfo)
}

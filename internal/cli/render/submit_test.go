package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gammaphi/lamden-deploy/internal/domain"
	"github.com/gammaphi/lamden-deploy/internal/domain/config"
	"github.com/gammaphi/lamden-deploy/internal/usecase"
)

var (
	testNetwork = domain.Network{
		Name:  "Lamden Public Testnet",
		Type:  domain.NetworkTypeTestnet,
		Hosts: []string{"https://testnet-master-1.lamden.io"},
	}
	testRequest = domain.TransactionRequest{
		SenderVerifyingKey: strings.Repeat("b", 64),
		ContractName:       domain.SubmissionContract,
		MethodName:         domain.SubmitContractMethod,
		Kwargs: map[string]any{
			"code": "def seed():\n    pass\n",
			"name": "con_hello",
		},
		StampLimit: 1000,
	}
)

func intPtr(i int) *int { return &i }

func TestSubmitRenderer_RenderRequest(t *testing.T) {
	var out bytes.Buffer
	r := NewSubmitRenderer(&out, false)

	require.NoError(t, r.RenderRequest(testNetwork, testRequest))

	got := out.String()
	assert.Contains(t, got, "Lamden Public Testnet")
	assert.Contains(t, got, "Testnet")
	assert.Contains(t, got, "https://testnet-master-1.lamden.io")
	assert.Contains(t, got, "submission")
	assert.Contains(t, got, "submit_contract")
	assert.Contains(t, got, "con_hello")
	assert.Contains(t, got, "def seed():... (21 bytes)")
	assert.Contains(t, got, "1000")
}

func TestSubmitRenderer_RenderResponse(t *testing.T) {
	tests := []struct {
		name        string
		resp        *domain.TxResult
		contains    []string
		wantSuccess bool
	}{
		{
			name: "success",
			resp: &domain.TxResult{
				Type:       domain.TxResultSuccess,
				Title:      "Transaction Successful",
				Hash:       "abc123",
				Status:     intPtr(0),
				StampsUsed: 42,
				Raw:        map[string]any{"hash": "abc123"},
			},
			contains:    []string{"Transaction Successful", "abc123", "42", `"hash": "abc123"`},
			wantSuccess: true,
		},
		{
			name: "error",
			resp: &domain.TxResult{
				Type:   domain.TxResultError,
				Title:  "Transaction Failed",
				Errors: []string{"AssertionError('Not enough coins')"},
				Status: intPtr(1),
			},
			contains: []string{"Transaction Failed", "Not enough coins"},
		},
		{
			name:     "nil response",
			contains: []string{"No response received"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := NewSubmitRenderer(&out, false)
			require.NoError(t, r.RenderResponse(tt.resp))

			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
			assert.Equal(t, tt.wantSuccess, strings.Contains(out.String(), "Success!"))
		})
	}
}

func TestSubmitRenderer_Nonce(t *testing.T) {
	var out bytes.Buffer
	r := NewSubmitRenderer(&out, false)

	require.NoError(t, r.RenderNonce(&domain.NonceInfo{Nonce: 7, Processor: "proc"}))
	require.NoError(t, r.RenderNonce(nil))
	require.NoError(t, r.RenderNonceError())

	assert.Equal(t, "Nonce: 7 (processor proc)\n\nNonce Not Set\n", out.String())
}

func TestDocumentRenderer(t *testing.T) {
	prepared := &usecase.PreparedTransaction{
		Network:    testNetwork,
		Request:    testRequest,
		SigningKey: strings.Repeat("5", 64),
	}
	result := &usecase.SubmitResult{
		Nonce:    &domain.NonceInfo{Nonce: 3, Processor: "proc"},
		Response: &domain.TxResult{Type: domain.TxResultSuccess, Title: "Transaction Successful", Hash: "h"},
	}
	doc := NewDocument(prepared, result)

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, NewDocumentRenderer(&out, config.OutputJSON).Render(doc))

		assert.Contains(t, out.String(), `"contractName": "submission"`)
		assert.Contains(t, out.String(), `"nonce": 3`)
		assert.Contains(t, out.String(), `"hash": "h"`)
		assert.NotContains(t, out.String(), strings.Repeat("5", 64))
	})

	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, NewDocumentRenderer(&out, config.OutputYAML).Render(doc))

		assert.Contains(t, out.String(), "contractName: submission")
		assert.Contains(t, out.String(), "name: Lamden Public Testnet")
		assert.NotContains(t, out.String(), strings.Repeat("5", 64))
	})

	t.Run("unknown", func(t *testing.T) {
		var out bytes.Buffer
		assert.Error(t, NewDocumentRenderer(&out, "xml").Render(doc))
	})
}

func TestNetworksRenderer(t *testing.T) {
	var out bytes.Buffer
	r := NewNetworksRenderer(&out, false)

	mainnet := domain.Network{Name: "Lamden Public Mainnet", Type: domain.NetworkTypeMainnet, Hosts: []string{"https://masternode-01.lamden.io:443"}}
	require.NoError(t, r.RenderNetworks([]domain.Network{mainnet, testNetwork}, domain.NetworkTypeTestnet))

	assert.Contains(t, out.String(), "Mainnet")
	assert.Contains(t, out.String(), "Lamden Public Testnet")
	assert.Contains(t, out.String(), "*")

	out.Reset()
	require.NoError(t, r.RenderNetworks(nil, domain.NetworkTypeTestnet))
	assert.Equal(t, "No networks configured\n", out.String())
}

package lamden

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// NonceResponse is the masternode answer to a nonce lookup
type NonceResponse struct {
	Nonce     int64  `json:"nonce"`
	Processor string `json:"processor"`
	Sender    string `json:"sender"`
}

// Client talks to the masternodes of a single network
type Client struct {
	network    NetworkInfo
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a masternode client for the given network
func NewClient(network NetworkInfo, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if err := network.Validate(); err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		network:    network,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// GetNonce retrieves the next nonce and processor for a sender
func (c *Client) GetNonce(ctx context.Context, senderVk string) (*NonceResponse, error) {
	host := c.network.pickHost()
	endpoint := fmt.Sprintf("%s/nonce/%s", host, url.PathEscape(senderVk))
	c.logger.Debug("fetching nonce", "host", host, "sender", senderVk)

	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode nonce response: %w", err)
	}
	if msg, ok := raw["error"]; ok {
		return nil, fmt.Errorf("masternode returned error: %v", msg)
	}

	var nonce NonceResponse
	if err := json.Unmarshal(body, &nonce); err != nil {
		return nil, fmt.Errorf("failed to decode nonce response: %w", err)
	}
	if _, ok := raw["nonce"]; !ok || nonce.Processor == "" {
		return nil, fmt.Errorf("unexpected nonce response: %s", string(body))
	}

	return &nonce, nil
}

// SendTransaction posts a signed transaction and returns the decoded answer
func (c *Client) SendTransaction(ctx context.Context, tx []byte) (map[string]any, error) {
	host := c.network.pickHost()
	c.logger.Debug("sending transaction", "host", host, "bytes", len(tx))

	body, err := c.do(ctx, http.MethodPost, host+"/", tx)
	if err != nil {
		return nil, err
	}

	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode send response: %w", err)
	}
	return resp, nil
}

// GetTransaction looks up a transaction result by hash
func (c *Client) GetTransaction(ctx context.Context, hash string) (map[string]any, error) {
	host := c.network.pickHost()
	endpoint := fmt.Sprintf("%s/tx?hash=%s", host, url.QueryEscape(hash))

	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode transaction response: %w", err)
	}
	return resp, nil
}

// do executes a request; masternodes answer errors with JSON bodies so
// non-2xx bodies are returned as long as they decode
func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 300 && !json.Valid(body) {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

package lamden

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrInvalidTxInfo is returned when a TxInfo fails validation
	ErrInvalidTxInfo = errors.New("invalid transaction info")

	// ErrNoNonce is returned when signing before a nonce is known
	ErrNoNonce = errors.New("no nonce set")
)

// Result types carried by ResultInfo
const (
	ResultTypeSuccess = "success"
	ResultTypeError   = "error"
)

const (
	defaultCheckInterval = time.Second
	defaultCheckLimit    = 10
)

// TxInfo holds the caller supplied transaction fields
type TxInfo struct {
	SenderVk     string         `json:"senderVk"`
	ContractName string         `json:"contractName"`
	MethodName   string         `json:"methodName"`
	Kwargs       map[string]any `json:"kwargs"`
	StampLimit   int64          `json:"stampLimit"`

	// Nonce and Processor may be preset; otherwise they are fetched
	Nonce     *int64 `json:"nonce,omitempty"`
	Processor string `json:"processor,omitempty"`
}

// Validate checks the sender key, contract, method and stamp limit
func (i TxInfo) Validate() error {
	if !IsValidKey(i.SenderVk) {
		return fmt.Errorf("%w: senderVk must be a 64 character hex string", ErrInvalidTxInfo)
	}
	if i.ContractName == "" {
		return fmt.Errorf("%w: contractName is required", ErrInvalidTxInfo)
	}
	if i.MethodName == "" {
		return fmt.Errorf("%w: methodName is required", ErrInvalidTxInfo)
	}
	if i.StampLimit <= 0 {
		return fmt.Errorf("%w: stampLimit must be positive", ErrInvalidTxInfo)
	}
	return nil
}

// ResultInfo summarizes the state of a transaction
type ResultInfo struct {
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	Message    string   `json:"message"`
	Type       string   `json:"type"`
	ErrorInfo  []string `json:"errorInfo,omitempty"`
	TxHash     string   `json:"txHash,omitempty"`
	Status     *int     `json:"status,omitempty"`
	StampsUsed int64    `json:"stampsUsed,omitempty"`
	Returned   string   `json:"returnResult,omitempty"`
}

// Response is emitted once a transaction reaches a final state
type Response struct {
	ResultInfo ResultInfo `json:"resultInfo"`
	// TxBlockResult is the raw masternode body that produced ResultInfo
	TxBlockResult map[string]any `json:"txBlockResult,omitempty"`
}

// Option configures a TransactionBuilder
type Option func(*TransactionBuilder)

// WithHTTPClient sets the HTTP client used for masternode calls
func WithHTTPClient(c *http.Client) Option {
	return func(tx *TransactionBuilder) { tx.httpClient = c }
}

// WithCheckInterval sets the delay between result polls
func WithCheckInterval(d time.Duration) Option {
	return func(tx *TransactionBuilder) {
		if d > 0 {
			tx.checkInterval = d
		}
	}
}

// WithCheckLimit sets the maximum number of result polls
func WithCheckLimit(n int) Option {
	return func(tx *TransactionBuilder) {
		if n > 0 {
			tx.checkLimit = n
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(tx *TransactionBuilder) { tx.logger = l }
}

// WithClock overrides the timestamp source used in transaction metadata
func WithClock(now func() time.Time) Option {
	return func(tx *TransactionBuilder) { tx.now = now }
}

// TransactionBuilder builds, signs, sends and tracks one transaction
type TransactionBuilder struct {
	network NetworkInfo
	info    TxInfo
	client  *Client

	httpClient    *http.Client
	logger        *slog.Logger
	now           func() time.Time
	checkInterval time.Duration
	checkLimit    int

	nonce      *int64
	processor  string
	payload    map[string]any
	message    []byte
	signature  string
	timestamp  int64
	txHash     string
	resultInfo ResultInfo

	listeners []func(*Response)
}

// NewTransactionBuilder validates the network and transaction info
func NewTransactionBuilder(network NetworkInfo, info TxInfo, opts ...Option) (*TransactionBuilder, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}

	tx := &TransactionBuilder{
		network:       network,
		info:          info,
		now:           time.Now,
		checkInterval: defaultCheckInterval,
		checkLimit:    defaultCheckLimit,
		nonce:         info.Nonce,
		processor:     info.Processor,
	}
	for _, opt := range opts {
		opt(tx)
	}
	if tx.logger == nil {
		tx.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	client, err := NewClient(network, tx.httpClient, tx.logger)
	if err != nil {
		return nil, err
	}
	tx.client = client

	return tx, nil
}

// OnResponse registers fn to be called with every final response
func (tx *TransactionBuilder) OnResponse(fn func(*Response)) {
	tx.listeners = append(tx.listeners, fn)
}

// ResultInfo returns the latest result summary
func (tx *TransactionBuilder) ResultInfo() ResultInfo {
	return tx.resultInfo
}

// TxHash returns the hash assigned by the masternode, if any
func (tx *TransactionBuilder) TxHash() string {
	return tx.txHash
}

// Signature returns the hex signature once signed
func (tx *TransactionBuilder) Signature() string {
	return tx.signature
}

// GetNonce fetches the sender's nonce and the processor from a masternode
func (tx *TransactionBuilder) GetNonce(ctx context.Context) (*NonceResponse, error) {
	resp, err := tx.client.GetNonce(ctx, tx.info.SenderVk)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	if resp.Sender != "" && resp.Sender != tx.info.SenderVk {
		return nil, fmt.Errorf("failed to get nonce: masternode answered for sender %s", resp.Sender)
	}

	nonce := resp.Nonce
	tx.nonce = &nonce
	tx.processor = resp.Processor
	tx.logger.Debug("nonce set", "nonce", nonce, "processor", resp.Processor)

	return resp, nil
}

// SortedPayload returns the canonical payload bytes that get signed
func (tx *TransactionBuilder) SortedPayload() ([]byte, error) {
	if tx.nonce == nil {
		return nil, ErrNoNonce
	}

	tx.payload = map[string]any{
		"contract":        tx.info.ContractName,
		"function":        tx.info.MethodName,
		"kwargs":          formatKwargs(tx.info.Kwargs),
		"nonce":           *tx.nonce,
		"processor":       tx.processor,
		"sender":          tx.info.SenderVk,
		"stamps_supplied": tx.info.StampLimit,
	}

	msg, err := marshalSorted(tx.payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	tx.message = msg
	return msg, nil
}

// Sign signs the sorted payload with the hex signing key
func (tx *TransactionBuilder) Sign(sk string) error {
	vk, err := VerifyingKey(sk)
	if err != nil {
		return err
	}
	if !strings.EqualFold(vk, tx.info.SenderVk) {
		return ErrKeyMismatch
	}

	msg, err := tx.SortedPayload()
	if err != nil {
		return err
	}

	sig, err := SignMessage(sk, msg)
	if err != nil {
		return err
	}
	tx.signature = sig
	tx.timestamp = tx.now().Unix()

	return nil
}

// Send fetches a nonce when needed, signs and submits the transaction.
// Transport and signing failures are reported as an error result and
// emitted to listeners; the returned error is only for a cancelled context.
func (tx *TransactionBuilder) Send(ctx context.Context, sk string) (*Response, error) {
	if tx.nonce == nil {
		if _, err := tx.GetNonce(ctx); err != nil {
			return tx.fail(ctx, "Unable to get nonce", err)
		}
	}

	if err := tx.Sign(sk); err != nil {
		return tx.fail(ctx, "Unable to sign transaction", err)
	}

	body, err := marshalSorted(map[string]any{
		"metadata": map[string]any{
			"signature": tx.signature,
			"timestamp": tx.timestamp,
		},
		"payload": tx.payload,
	})
	if err != nil {
		return tx.fail(ctx, "Unable to encode transaction", err)
	}

	raw, err := tx.client.SendTransaction(ctx, body)
	if err != nil {
		return tx.fail(ctx, "Unable to send transaction", err)
	}

	return tx.handleSendResponse(raw), nil
}

func (tx *TransactionBuilder) handleSendResponse(raw map[string]any) *Response {
	if msg, ok := raw["error"]; ok {
		text := fmt.Sprint(msg)
		tx.resultInfo = ResultInfo{
			Title:     "Transaction Failed",
			Subtitle:  "Your transaction returned an error",
			Message:   text,
			Type:      ResultTypeError,
			ErrorInfo: []string{text},
		}
		resp := &Response{ResultInfo: tx.resultInfo, TxBlockResult: raw}
		tx.emit(resp)
		return resp
	}

	hash, _ := raw["hash"].(string)
	if hash == "" {
		tx.resultInfo = ResultInfo{
			Title:     "Transaction Failed",
			Subtitle:  "Unknown masternode response",
			Message:   fmt.Sprint(raw),
			Type:      ResultTypeError,
			ErrorInfo: []string{"masternode response carried no hash"},
		}
		resp := &Response{ResultInfo: tx.resultInfo, TxBlockResult: raw}
		tx.emit(resp)
		return resp
	}

	tx.txHash = hash
	success, _ := raw["success"].(string)
	tx.resultInfo = ResultInfo{
		Title:    "Transaction Pending",
		Subtitle: "Your transaction was submitted and is being processed",
		Message:  success,
		Type:     ResultTypeSuccess,
		TxHash:   hash,
	}
	tx.logger.Debug("transaction submitted", "hash", hash)

	return &Response{ResultInfo: tx.resultInfo, TxBlockResult: raw}
}

// CheckForTransactionResult polls the masternode until the transaction is
// found or the check limit is reached. The final response is emitted.
func (tx *TransactionBuilder) CheckForTransactionResult(ctx context.Context) (*Response, error) {
	if tx.txHash == "" {
		return nil, errors.New("transaction has not been sent")
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	var lastErr error
	for attempt := 1; attempt <= tx.checkLimit; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}

		raw, err := tx.client.GetTransaction(ctx, tx.txHash)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			tx.logger.Debug("transaction lookup failed", "attempt", attempt, "error", err)
			timer.Reset(tx.checkInterval)
			continue
		}

		if msg, ok := raw["error"]; ok {
			tx.logger.Debug("transaction not processed yet", "attempt", attempt, "reply", msg)
			timer.Reset(tx.checkInterval)
			continue
		}

		resp := tx.handleTxResult(raw)
		tx.emit(resp)
		return resp, nil
	}

	message := fmt.Sprintf("Retry Attempts %d hit while checking for Tx Result.", tx.checkLimit)
	tx.resultInfo = ResultInfo{
		Title:     "Transaction Failed",
		Subtitle:  "Unable to confirm the transaction result",
		Message:   message,
		Type:      ResultTypeError,
		ErrorInfo: []string{message},
		TxHash:    tx.txHash,
	}
	if lastErr != nil {
		tx.resultInfo.ErrorInfo = append(tx.resultInfo.ErrorInfo, lastErr.Error())
	}

	resp := &Response{ResultInfo: tx.resultInfo}
	tx.emit(resp)
	return resp, nil
}

func (tx *TransactionBuilder) handleTxResult(raw map[string]any) *Response {
	info := ResultInfo{TxHash: tx.txHash}

	if stamps, ok := raw["stamps_used"].(float64); ok {
		info.StampsUsed = int64(stamps)
	}
	if result, ok := raw["result"]; ok && result != nil {
		info.Returned = fmt.Sprint(result)
	}

	status := -1
	if s, ok := raw["status"].(float64); ok {
		status = int(s)
	}
	info.Status = &status

	if status == 0 {
		info.Title = "Transaction Successful"
		info.Subtitle = fmt.Sprintf("Your transaction used %d stamps", info.StampsUsed)
		info.Type = ResultTypeSuccess
	} else {
		info.Title = "Transaction Failed"
		info.Subtitle = fmt.Sprintf("Your transaction returned status code %d and used %d stamps", status, info.StampsUsed)
		info.Type = ResultTypeError
		if info.Returned != "" {
			info.Message = info.Returned
			info.ErrorInfo = []string{info.Returned}
		} else {
			info.ErrorInfo = []string{"transaction reverted"}
		}
	}

	tx.resultInfo = info
	return &Response{ResultInfo: info, TxBlockResult: raw}
}

// fail records err as an error result; a cancelled context is returned as is
func (tx *TransactionBuilder) fail(ctx context.Context, title string, err error) (*Response, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	tx.resultInfo = ResultInfo{
		Title:     title,
		Subtitle:  "Your transaction was not sent",
		Message:   err.Error(),
		Type:      ResultTypeError,
		ErrorInfo: []string{err.Error()},
	}
	resp := &Response{ResultInfo: tx.resultInfo}
	tx.emit(resp)
	return resp, nil
}

func (tx *TransactionBuilder) emit(resp *Response) {
	for _, fn := range tx.listeners {
		fn(resp)
	}
}

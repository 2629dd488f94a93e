package domain

// Well known contracts and methods
const (
	SubmissionContract   = "submission"
	SubmitContractMethod = "submit_contract"

	CurrencyContract = "currency"
	TransferMethod   = "transfer"
)

// Result types reported by masternodes
const (
	TxResultSuccess = "success"
	TxResultError   = "error"
)

// TransactionRequest holds everything needed to build a transaction except the signing key
type TransactionRequest struct {
	SenderVerifyingKey string         `json:"senderVk" yaml:"senderVk"`
	ContractName       string         `json:"contractName" yaml:"contractName"`
	MethodName         string         `json:"methodName" yaml:"methodName"`
	Kwargs             map[string]any `json:"kwargs" yaml:"kwargs"`
	StampLimit         int64          `json:"stampLimit" yaml:"stampLimit"`
}

// NonceInfo is the sender state returned by a masternode before signing
type NonceInfo struct {
	Nonce     int64  `json:"nonce" yaml:"nonce"`
	Processor string `json:"processor" yaml:"processor"`
	Sender    string `json:"sender" yaml:"sender"`
}

// TxResult is the final response for a transaction
type TxResult struct {
	Type       string         `json:"type" yaml:"type"`
	Title      string         `json:"title" yaml:"title"`
	Subtitle   string         `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Message    string         `json:"message,omitempty" yaml:"message,omitempty"`
	Errors     []string       `json:"errors,omitempty" yaml:"errors,omitempty"`
	Hash       string         `json:"hash,omitempty" yaml:"hash,omitempty"`
	Status     *int           `json:"status,omitempty" yaml:"status,omitempty"`
	StampsUsed int64          `json:"stampsUsed,omitempty" yaml:"stampsUsed,omitempty"`
	Returned   string         `json:"returned,omitempty" yaml:"returned,omitempty"`
	Raw        map[string]any `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// IsError reports whether the transaction failed
func (r *TxResult) IsError() bool {
	return r == nil || r.Type == TxResultError
}

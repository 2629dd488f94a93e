package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNonceNotSet is returned when the sender's nonce could not be fetched
	ErrNonceNotSet = errors.New("nonce not set")

	// ErrTransactionFailed is returned when a transaction result has type error
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrInvalidConfig is returned when required configuration is missing or malformed
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrContractSource is returned when the contract file cannot be read
	ErrContractSource = errors.New("cannot read contract source")

	// ErrAborted is returned when the operator declines a broadcast
	ErrAborted = errors.New("aborted by user")
)

// ConfigError names the setting that failed validation
type ConfigError struct {
	Key    string
	Reason string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidConfig, e.Key, e.Reason)
}

func (e ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// TransactionFailedErr carries the failing result for callers that exit non-zero
type TransactionFailedErr struct {
	Result *TxResult
}

func (e TransactionFailedErr) Error() string {
	if e.Result == nil {
		return ErrTransactionFailed.Error()
	}
	if len(e.Result.Errors) > 0 {
		return fmt.Sprintf("%s: %s", ErrTransactionFailed, e.Result.Errors[0])
	}
	return fmt.Sprintf("%s: %s", ErrTransactionFailed, e.Result.Title)
}

func (e TransactionFailedErr) Unwrap() error {
	return ErrTransactionFailed
}

package errors

import (
	"fmt"

	"btcforge/jsonx"
)

// WalletErrorCode represents standardized error codes for wallet operations.
// Every code is a non-retryable client error: none of these failures are
// transient, so callers must not retry automatically.
type WalletErrorCode string

const (
	// General errors
	ErrCodeInternal WalletErrorCode = "internal_error"

	// Validation errors
	ErrCodeInvalidRequest WalletErrorCode = "invalid_request"
	ErrCodeInvalidTxid    WalletErrorCode = "invalid_txid"
	ErrCodeInvalidAddress WalletErrorCode = "invalid_address"
	ErrCodeInvalidAmount  WalletErrorCode = "invalid_amount"
	ErrCodeEmptyInputs    WalletErrorCode = "empty_inputs"
	ErrCodeEmptyOutputs   WalletErrorCode = "empty_outputs"

	// Network mismatch errors
	ErrCodeNetworkMismatch WalletErrorCode = "network_mismatch"

	// Codec errors
	ErrCodeMalformedTx WalletErrorCode = "malformed_tx"

	// Crypto errors
	ErrCodeInvalidPrivateKey WalletErrorCode = "invalid_private_key"
	ErrCodeSigningFailed     WalletErrorCode = "signing_failed"

	// Consistency errors
	ErrCodeAddressKeyMismatch WalletErrorCode = "address_key_mismatch"
	ErrCodeInputCountMismatch WalletErrorCode = "input_count_mismatch"

	// Script errors
	ErrCodeUnsupportedScript WalletErrorCode = "unsupported_script"

	// Collaborator errors
	ErrCodeExplorerUnavailable WalletErrorCode = "explorer_unavailable"
	ErrCodeBroadcastRejected   WalletErrorCode = "broadcast_rejected"
)

// WalletError represents a standardized wallet error
type WalletError struct {
	Code    WalletErrorCode `json:"code"`
	Message string          `json:"message"`
}

// Error implements the error interface
func (e *WalletError) Error() string {
	err, _ := jsonx.Marshal(WalletError{
		Code:    e.Code,
		Message: e.Message,
	})
	return string(err)
}

// NewError creates a new WalletError and returns it as error interface
func NewError(code WalletErrorCode, message string) error {
	return &WalletError{
		Code:    code,
		Message: message,
	}
}

// NewErrorf creates a new WalletError with a formatted message
func NewErrorf(code WalletErrorCode, format string, args ...interface{}) error {
	return &WalletError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// CodeOf extracts the wallet error code from err, or ErrCodeInternal when err
// is not a WalletError.
func CodeOf(err error) WalletErrorCode {
	if we, ok := err.(*WalletError); ok {
		return we.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err is a WalletError carrying the given code.
func IsCode(err error, code WalletErrorCode) bool {
	we, ok := err.(*WalletError)
	return ok && we.Code == code
}

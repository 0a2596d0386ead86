package payment

import "errors"

// Error taxonomy for the checkout handshake and callback verification.
// Handlers map these to HTTP statuses; the callback boundary never exposes
// them to the gateway.
var (
	ErrMissingField         = errors.New("missing required field")
	ErrServerMisconfigured  = errors.New("payment gateway is not configured")
	ErrDuplicateTransaction = errors.New("transaction already exists")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrHashMismatch         = errors.New("callback hash verification failed")
)

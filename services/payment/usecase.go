package payment

import (
	"context"
	"time"

	"github.com/prepdesk/payment-service/internal/pkg/models"
)

// PaymentUseCase defines the payment handshake operations
type PaymentUseCase interface {
	// InitiateCheckout validates the purchase intent, persists a transaction
	// in Initiated state and returns the signed form payload for the hosted
	// payment page
	InitiateCheckout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutForm, error)

	// HandleCallback authenticates a gateway callback and finalizes the
	// matching transaction at most once
	HandleCallback(ctx context.Context, cb models.GatewayCallback) (*models.CallbackResult, error)

	// GetTransaction returns a transaction for client status polling
	GetTransaction(ctx context.Context, txnID string) (*models.PaymentTransaction, error)

	// ListStaleInitiated returns Initiated transactions older than the given
	// age, for operator reconciliation
	ListStaleInitiated(ctx context.Context, olderThan time.Duration, limit int) ([]models.PaymentTransaction, error)
}

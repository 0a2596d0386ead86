package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prepdesk/payment-service/internal/pkg/constants"
	"github.com/prepdesk/payment-service/internal/pkg/logger"
	"github.com/prepdesk/payment-service/internal/pkg/models"
	natspkg "github.com/prepdesk/payment-service/internal/pkg/nats"
	"github.com/prepdesk/payment-service/internal/pkg/retry"
	"github.com/prepdesk/payment-service/services/payment"
)

// PaymentGW handles NATS publishing for payment lifecycle events
type PaymentGW struct {
	natsClient *natspkg.Client
	retrier    *retry.Retrier
}

// NewPaymentGW creates a new payment gateway
func NewPaymentGW(client *natspkg.Client, l *logger.ZapLogger) payment.PaymentGW {
	return &PaymentGW{
		natsClient: client,
		retrier:    retry.NewWithDefaults(l),
	}
}

// PublishInitiated publishes a payment initiated event to NATS
func (g *PaymentGW) PublishInitiated(ctx context.Context, event models.PaymentEvent) error {
	return g.publish(ctx, constants.SubjectPaymentInitiated, event)
}

// PublishFinalized publishes a payment finalized event to NATS
func (g *PaymentGW) PublishFinalized(ctx context.Context, event models.PaymentEvent) error {
	return g.publish(ctx, constants.SubjectPaymentFinalized, event)
}

func (g *PaymentGW) publish(ctx context.Context, subject string, event models.PaymentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payment event: %w", err)
	}

	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.natsClient.Publish(subject, data)
	})
}

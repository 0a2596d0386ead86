package payment

import (
	"context"

	"github.com/prepdesk/payment-service/internal/pkg/models"
)

// PaymentGW publishes payment lifecycle events for downstream services
// (plan activation, notifications, finance reporting)
type PaymentGW interface {
	PublishInitiated(ctx context.Context, event models.PaymentEvent) error
	PublishFinalized(ctx context.Context, event models.PaymentEvent) error
}

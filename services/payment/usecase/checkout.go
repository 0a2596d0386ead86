package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/prepdesk/payment-service/internal/pkg/config"
	"github.com/prepdesk/payment-service/internal/pkg/logger"
	"github.com/prepdesk/payment-service/internal/pkg/models"
	"github.com/prepdesk/payment-service/internal/pkg/payu"
	"github.com/prepdesk/payment-service/internal/utils"
	"github.com/prepdesk/payment-service/services/payment"
)

const (
	// Fallback when the payer name is blank; the gateway rejects an empty
	// firstname field
	defaultFirstName = "Guest"

	successCallbackPath = "/api/v1/payments/callback/success"
	failureCallbackPath = "/api/v1/payments/callback/failure"
)

// PaymentUC implements the payment.PaymentUseCase interface
type PaymentUC struct {
	cfg    *models.Config
	repo   payment.PaymentRepo
	gw     payment.PaymentGW
	logger *logger.ZapLogger
	now    func() time.Time
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(cfg *models.Config, repo payment.PaymentRepo, gw payment.PaymentGW, zapLogger *logger.ZapLogger) *PaymentUC {
	return &PaymentUC{
		cfg:    cfg,
		repo:   repo,
		gw:     gw,
		logger: zapLogger,
		now:    time.Now,
	}
}

// InitiateCheckout builds the signed auto-post payload for the hosted
// payment page. The transaction record is persisted before the payload is
// returned: a hash must never leave the service without a record the
// callback path can verify against.
func (uc *PaymentUC) InitiateCheckout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutForm, error) {
	if err := validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	if err := config.ValidateGateway(uc.cfg.Gateway); err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrServerMisconfigured, err)
	}

	now := uc.now()
	txnID := buildTxnID(uc.cfg.Gateway.TxnPrefix, req.TeacherID, now)
	firstName := utils.FirstName(req.TeacherName, defaultFirstName)
	phone := utils.NormalizePhone(req.TeacherPhone)

	creds := payu.Credentials{
		Key:  uc.cfg.Gateway.MerchantKey,
		Salt: uc.cfg.Gateway.MerchantSalt,
	}
	hash := payu.RequestHash(creds, payu.RequestParams{
		TxnID:       txnID,
		Amount:      req.Amount,
		ProductInfo: uc.cfg.Gateway.ProductInfo,
		FirstName:   firstName,
		Email:       req.TeacherEmail,
		UDF1:        req.PlanID,
		UDF2:        req.TeacherID,
	})

	txn := &models.PaymentTransaction{
		TxnID:        txnID,
		PlanID:       req.PlanID,
		TeacherID:    req.TeacherID,
		TeacherName:  req.TeacherName,
		TeacherEmail: req.TeacherEmail,
		TeacherPhone: phone,
		Amount:       req.Amount,
		Status:       models.TransactionInitiated,
		Digest:       hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}

	// Event publication is best effort; the handshake must not fail because
	// a downstream consumer is unreachable
	event := models.PaymentEvent{
		TxnID:     txnID,
		PlanID:    req.PlanID,
		TeacherID: req.TeacherID,
		Amount:    req.Amount,
		Status:    models.TransactionInitiated,
		Timestamp: now.UTC(),
	}
	if err := uc.gw.PublishInitiated(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish payment initiated event",
			logger.String("txn_id", txnID),
			logger.Err(err))
	}

	return &models.CheckoutForm{
		Key:         uc.cfg.Gateway.MerchantKey,
		TxnID:       txnID,
		Amount:      req.Amount,
		ProductInfo: uc.cfg.Gateway.ProductInfo,
		FirstName:   firstName,
		Email:       req.TeacherEmail,
		Phone:       phone,
		SuccessURL:  uc.cfg.Gateway.BaseURL + successCallbackPath,
		FailureURL:  uc.cfg.Gateway.BaseURL + failureCallbackPath,
		Hash:        hash,
		UDF1:        req.PlanID,
		UDF2:        req.TeacherID,
		PaymentURL:  uc.cfg.Gateway.PaymentURL,
	}, nil
}

// GetTransaction returns a transaction for status polling
func (uc *PaymentUC) GetTransaction(ctx context.Context, txnID string) (*models.PaymentTransaction, error) {
	return uc.repo.GetTransaction(ctx, txnID)
}

// ListStaleInitiated returns Initiated transactions older than the given age
func (uc *PaymentUC) ListStaleInitiated(ctx context.Context, olderThan time.Duration, limit int) ([]models.PaymentTransaction, error) {
	cutoff := uc.now().Add(-olderThan)
	return uc.repo.ListStaleInitiated(ctx, cutoff, limit)
}

func validateCheckoutRequest(req models.CheckoutRequest) error {
	required := []struct {
		name  string
		value string
	}{
		{"amount", req.Amount},
		{"planId", req.PlanID},
		{"teacherId", req.TeacherID},
		{"teacherEmail", req.TeacherEmail},
		{"teacherName", req.TeacherName},
		{"teacherPhone", req.TeacherPhone},
	}

	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%w: %s", payment.ErrMissingField, field.name)
		}
	}
	return nil
}

// buildTxnID derives the idempotency key for one purchase attempt. The
// millisecond timestamp provides practical uniqueness per payer.
func buildTxnID(prefix, teacherID string, now time.Time) string {
	shortID := teacherID
	if len(shortID) > 5 {
		shortID = shortID[:5]
	}
	return fmt.Sprintf("%s_%s_%d", prefix, shortID, now.UnixMilli())
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/prepdesk/payment-service/internal/pkg/constants"
	"github.com/prepdesk/payment-service/internal/pkg/database"
	"github.com/prepdesk/payment-service/internal/pkg/models"
	"github.com/prepdesk/payment-service/services/payment"
)

// PaymentRepository implements the PaymentRepo interface over Postgres with
// a Redis cache for terminal outcomes
type PaymentRepository struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewPaymentRepository creates a new payment repository. redisClient may be
// nil; the outcome cache then degrades to a miss on every lookup.
func NewPaymentRepository(db *sqlx.DB, redisClient *database.RedisClient) payment.PaymentRepo {
	return &PaymentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateTransaction persists a new transaction record. The txn_id primary
// key enforces idempotency: a second insert with the same id affects zero
// rows and surfaces as ErrDuplicateTransaction.
func (r *PaymentRepository) CreateTransaction(ctx context.Context, txn *models.PaymentTransaction) error {
	result, err := r.db.NamedExecContext(ctx, `
		INSERT INTO payment_transactions (
			txn_id, plan_id, teacher_id, teacher_name, teacher_email,
			teacher_phone, amount, status, digest, created_at, updated_at
		) VALUES (
			:txn_id, :plan_id, :teacher_id, :teacher_name, :teacher_email,
			:teacher_phone, :amount, :status, :digest, :created_at, :updated_at
		)
		ON CONFLICT (txn_id) DO NOTHING
	`, txn)

	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", payment.ErrDuplicateTransaction, txn.TxnID)
	}

	return nil
}

// GetTransaction retrieves a transaction by its id
func (r *PaymentRepository) GetTransaction(ctx context.Context, txnID string) (*models.PaymentTransaction, error) {
	var txn models.PaymentTransaction
	err := r.db.GetContext(ctx, &txn, `
		SELECT txn_id, plan_id, teacher_id, teacher_name, teacher_email,
		       teacher_phone, amount, status, digest, created_at, updated_at, finalized_at
		FROM payment_transactions
		WHERE txn_id = $1
	`, txnID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", payment.ErrTransactionNotFound, txnID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &txn, nil
}

// TransitionStatus moves a transaction from one status to another with a
// compare-and-set on the current status. Zero rows affected means another
// delivery already finalized the transaction.
func (r *PaymentRepository) TransitionStatus(ctx context.Context, txnID string, from, to models.TransactionStatus) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE payment_transactions
		SET status = $1, updated_at = NOW(),
		    finalized_at = CASE WHEN $1 IN ('success', 'failure', 'cancelled') THEN NOW() ELSE finalized_at END
		WHERE txn_id = $2 AND status = $3
	`, to, txnID, from)

	if err != nil {
		return false, fmt.Errorf("failed to transition transaction status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// RecordAudit appends an audit entry
func (r *PaymentRepository) RecordAudit(ctx context.Context, entry *models.AuditEntry) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO payment_audit (
			id, txn_id, kind, detail, raw_params, created_at
		) VALUES (
			:id, :txn_id, :kind, :detail, :raw_params, :created_at
		)
	`, entry)

	if err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}

	return nil
}

// ListStaleInitiated returns transactions that never received a callback,
// oldest first
func (r *PaymentRepository) ListStaleInitiated(ctx context.Context, olderThan time.Time, limit int) ([]models.PaymentTransaction, error) {
	txns := []models.PaymentTransaction{}
	err := r.db.SelectContext(ctx, &txns, `
		SELECT txn_id, plan_id, teacher_id, teacher_name, teacher_email,
		       teacher_phone, amount, status, digest, created_at, updated_at, finalized_at
		FROM payment_transactions
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at ASC
		LIMIT $3
	`, models.TransactionInitiated, olderThan, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list stale transactions: %w", err)
	}

	return txns, nil
}

// CachedOutcome looks up the Redis outcome cache. Any cache error is
// treated as a miss so the database stays the source of truth.
func (r *PaymentRepository) CachedOutcome(ctx context.Context, txnID string) (models.TransactionStatus, bool) {
	if r.redisClient == nil {
		return "", false
	}

	value, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyPaymentOutcome, txnID))
	if err != nil || value == "" {
		return "", false
	}

	status := models.TransactionStatus(value)
	if !status.IsTerminal() {
		return "", false
	}

	return status, true
}

// CacheOutcome records a terminal status in Redis with a TTL covering the
// gateway's redelivery window
func (r *PaymentRepository) CacheOutcome(ctx context.Context, txnID string, status models.TransactionStatus) error {
	if !status.IsTerminal() {
		return fmt.Errorf("refusing to cache non-terminal status %q for %s", status, txnID)
	}
	if r.redisClient == nil {
		return nil
	}

	key := fmt.Sprintf(constants.KeyPaymentOutcome, txnID)
	if err := r.redisClient.Set(ctx, key, string(status), constants.PaymentOutcomeTTL); err != nil {
		return fmt.Errorf("failed to cache transaction outcome: %w", err)
	}

	return nil
}

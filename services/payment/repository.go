package payment

import (
	"context"
	"time"

	"github.com/prepdesk/payment-service/internal/pkg/models"
)

// PaymentRepo defines the transaction store contract. Implementations must
// make TransitionStatus atomic: concurrent duplicate callback deliveries may
// race on the same transaction, and exactly one of them may finalize it.
type PaymentRepo interface {
	// CreateTransaction persists a new transaction in Initiated state.
	// Returns ErrDuplicateTransaction when the txn id already exists.
	CreateTransaction(ctx context.Context, txn *models.PaymentTransaction) error

	// GetTransaction returns the record or ErrTransactionNotFound
	GetTransaction(ctx context.Context, txnID string) (*models.PaymentTransaction, error)

	// TransitionStatus atomically moves a transaction from one status to
	// another. Returns false (and no error) when the current status is not
	// `from`; the caller lost the race or the transition was already applied.
	TransitionStatus(ctx context.Context, txnID string, from, to models.TransactionStatus) (bool, error)

	// RecordAudit appends a security-relevant audit entry
	RecordAudit(ctx context.Context, entry *models.AuditEntry) error

	// ListStaleInitiated returns transactions still Initiated and created
	// before the cutoff, oldest first
	ListStaleInitiated(ctx context.Context, olderThan time.Time, limit int) ([]models.PaymentTransaction, error)

	// CachedOutcome returns the cached terminal status for a transaction,
	// if one was recorded
	CachedOutcome(ctx context.Context, txnID string) (models.TransactionStatus, bool)

	// CacheOutcome records a terminal status so webhook redeliveries can be
	// answered without a database round trip. Best effort.
	CacheOutcome(ctx context.Context, txnID string, status models.TransactionStatus) error
}

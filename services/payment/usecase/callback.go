package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/prepdesk/payment-service/internal/pkg/logger"
	"github.com/prepdesk/payment-service/internal/pkg/models"
	"github.com/prepdesk/payment-service/internal/pkg/payu"
	"github.com/prepdesk/payment-service/services/payment"
)

// Gateway status value that maps to a successful payment; every other value
// is treated as failure
const gatewayStatusSuccess = "success"

// HandleCallback authenticates one gateway callback delivery and finalizes
// the matching transaction at most once. The digest is always recomputed
// from the callback's own fields with the merchant salt; the stored digest
// is never used as the comparison value because the callback covers a
// different canonical string (reverse order, status included).
func (uc *PaymentUC) HandleCallback(ctx context.Context, cb models.GatewayCallback) (*models.CallbackResult, error) {
	if cb.TxnID == "" {
		return nil, fmt.Errorf("%w: callback carries no txnid", payment.ErrTransactionNotFound)
	}

	// Fast path for webhook redeliveries of an already-finalized transaction
	if status, ok := uc.repo.CachedOutcome(ctx, cb.TxnID); ok {
		return &models.CallbackResult{TxnID: cb.TxnID, Status: status, Replayed: true}, nil
	}

	txn, err := uc.repo.GetTransaction(ctx, cb.TxnID)
	if err != nil {
		uc.audit(ctx, cb.TxnID, models.AuditUnknownTransaction, "callback for unknown transaction", cb)
		uc.logger.Warn("Callback for unknown transaction",
			logger.String("txn_id", cb.TxnID))
		return nil, err
	}

	// First callback wins; later deliveries replay the recorded outcome
	if txn.Status.IsTerminal() {
		_ = uc.repo.CacheOutcome(ctx, txn.TxnID, txn.Status)
		return &models.CallbackResult{TxnID: txn.TxnID, Status: txn.Status, Replayed: true}, nil
	}

	creds := payu.Credentials{
		Key:  uc.cfg.Gateway.MerchantKey,
		Salt: uc.cfg.Gateway.MerchantSalt,
	}
	recomputed := payu.ResponseHash(creds, payu.ResponseParams{
		Status:      cb.Status,
		TxnID:       cb.TxnID,
		Amount:      cb.Amount,
		ProductInfo: cb.ProductInfo,
		FirstName:   cb.FirstName,
		Email:       cb.Email,
		UDF1:        cb.UDF1,
		UDF2:        cb.UDF2,
		UDF3:        cb.UDF3,
		UDF4:        cb.UDF4,
		UDF5:        cb.UDF5,
	})

	// The hash covers the callback amount; the record check catches a
	// callback signed for a different initiation of the same txn id
	if !payu.Equal(recomputed, cb.Hash) || cb.Amount != txn.Amount {
		return uc.failClosed(ctx, txn, cb)
	}

	target := models.TransactionFailure
	if cb.Status == gatewayStatusSuccess {
		target = models.TransactionSuccess
	}

	transitioned, err := uc.repo.TransitionStatus(ctx, txn.TxnID, models.TransactionInitiated, target)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize transaction: %w", err)
	}
	if !transitioned {
		// A concurrent delivery won the race; report what it recorded
		current, err := uc.repo.GetTransaction(ctx, txn.TxnID)
		if err != nil {
			return nil, err
		}
		return &models.CallbackResult{TxnID: txn.TxnID, Status: current.Status, Replayed: true}, nil
	}

	uc.audit(ctx, txn.TxnID, models.AuditFinalized, fmt.Sprintf("gateway status %q", cb.Status), cb)
	_ = uc.repo.CacheOutcome(ctx, txn.TxnID, target)

	event := models.PaymentEvent{
		TxnID:     txn.TxnID,
		PlanID:    txn.PlanID,
		TeacherID: txn.TeacherID,
		Amount:    txn.Amount,
		Status:    target,
		Timestamp: uc.now().UTC(),
	}
	if err := uc.gw.PublishFinalized(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish payment finalized event",
			logger.String("txn_id", txn.TxnID),
			logger.Err(err))
	}

	return &models.CallbackResult{TxnID: txn.TxnID, Status: target}, nil
}

// failClosed marks the transaction failed on a hash mismatch and never
// honors the gateway's claimed status
func (uc *PaymentUC) failClosed(ctx context.Context, txn *models.PaymentTransaction, cb models.GatewayCallback) (*models.CallbackResult, error) {
	uc.logger.Error("Callback hash mismatch",
		logger.String("txn_id", txn.TxnID),
		logger.String("claimed_status", cb.Status))

	uc.audit(ctx, txn.TxnID, models.AuditHashMismatch, "recomputed digest does not match gateway hash", cb)

	transitioned, err := uc.repo.TransitionStatus(ctx, txn.TxnID, models.TransactionInitiated, models.TransactionFailure)
	if err != nil {
		return nil, fmt.Errorf("failed to record hash mismatch: %w", err)
	}
	if transitioned {
		_ = uc.repo.CacheOutcome(ctx, txn.TxnID, models.TransactionFailure)
	}

	return nil, payment.ErrHashMismatch
}

// audit writes a best-effort audit entry with the raw callback captured
func (uc *PaymentUC) audit(ctx context.Context, txnID, kind, detail string, cb models.GatewayCallback) {
	raw, _ := json.Marshal(cb)

	entry := &models.AuditEntry{
		ID:        uuid.New().String(),
		TxnID:     txnID,
		Kind:      kind,
		Detail:    detail,
		RawParams: string(raw),
		CreatedAt: uc.now(),
	}
	if err := uc.repo.RecordAudit(ctx, entry); err != nil {
		uc.logger.Error("Failed to record audit entry",
			logger.String("txn_id", txnID),
			logger.String("kind", kind),
			logger.Err(err))
	}
}

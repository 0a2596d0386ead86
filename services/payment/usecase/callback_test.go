package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepdesk/payment-service/internal/pkg/models"
	"github.com/prepdesk/payment-service/services/payment"
)

const (
	testTxnID = "PDK_teach_1700000000000"

	// Reverse-order digest for the callback below, computed with the test
	// merchant key/salt
	validCallbackHash = "3302dbd36a12bcae643fbf65a318d21714e8b1a4e078213baea9e532787fb6135e3d96064b17a31c13dccf608ad7a6e791e20b4a88b939f317099e38107d0fcc"
)

func initiatedTxn() *models.PaymentTransaction {
	return &models.PaymentTransaction{
		TxnID:        testTxnID,
		PlanID:       "plan_gold_12m",
		TeacherID:    "teacher_8821",
		TeacherName:  "Asha Verma",
		TeacherEmail: "asha@example.com",
		TeacherPhone: "919876543210",
		Amount:       "499.00",
		Status:       models.TransactionInitiated,
		CreatedAt:    time.UnixMilli(1700000000000),
	}
}

func successCallback() models.GatewayCallback {
	return models.GatewayCallback{
		Status:      "success",
		TxnID:       testTxnID,
		Amount:      "499.00",
		ProductInfo: "PrepDesk Subscription",
		FirstName:   "Asha",
		Email:       "asha@example.com",
		UDF1:        "plan_gold_12m",
		UDF2:        "teacher_8821",
		Hash:        validCallbackHash,
	}
}

func TestHandleCallback_SuccessTransition(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	mockRepo.EXPECT().CachedOutcome(gomock.Any(), testTxnID).Return(models.TransactionStatus(""), false)
	mockRepo.EXPECT().GetTransaction(gomock.Any(), testTxnID).Return(initiatedTxn(), nil)
	mockRepo.EXPECT().
		TransitionStatus(gomock.Any(), testTxnID, models.TransactionInitiated, models.TransactionSuccess).
		Return(true, nil)
	mockRepo.EXPECT().
		RecordAudit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, entry *models.AuditEntry) error {
			assert.Equal(t, models.AuditFinalized, entry.Kind)
			assert.Equal(t, testTxnID, entry.TxnID)
			return nil
		})
	mockRepo.EXPECT().CacheOutcome(gomock.Any(), testTxnID, models.TransactionSuccess).Return(nil)
	mockGW.EXPECT().PublishFinalized(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.HandleCallback(context.Background(), successCallback())
	require.NoError(t, err)
	assert.Equal(t, models.TransactionSuccess, result.Status)
	assert.False(t, result.Replayed)
}

func TestHandleCallback_FailureStatusWithValidHash(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	cb := successCallback()
	cb.Status = "failure"
	// Digest for the failure-status canonical string
	cb.Hash = "9d5743e1fdc7fbc3dd8f0bc665b2913eb1c38471e232a8f781e8aa31a1c08e3d71327c6a605bc58aadfa493204c56e25898c38be87357ae02acd9a32c6cfbaeb"

	mockRepo.EXPECT().CachedOutcome(gomock.Any(), testTxnID).Return(models.TransactionStatus(""), false)
	mockRepo.EXPECT().GetTransaction(gomock.Any(), testTxnID).Return(initiatedTxn(), nil)
	mockRepo.EXPECT().
		TransitionStatus(gomock.Any(), testTxnID, models.TransactionInitiated, models.TransactionFailure).
		Return(true, nil)
	mockRepo.EXPECT().RecordAudit(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().CacheOutcome(gomock.Any(), testTxnID, models.TransactionFailure).Return(nil)
	mockGW.EXPECT().PublishFinalized(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.HandleCallback(context.Background(), cb)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionFailure, result.Status)
}

func TestHandleCallback_ReplayReturnsRecordedOutcome(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	finalized := initiatedTxn()
	finalized.Status = models.TransactionSuccess

	mockRepo.EXPECT().CachedOutcome(gomock.Any(), testTxnID).Return(models.TransactionStatus(""), false)
	mockRepo.EXPECT().GetTransaction(gomock.Any(), testTxnID).Return(finalized, nil)
	mockRepo.EXPECT().CacheOutcome(gomock.Any(), testTxnID, models.TransactionSuccess).Return(nil)

	// No TransitionStatus expectation: a replayed callback must not touch
	// the transaction status
	result, err := uc.HandleCallback(context.Background(), successCallback())
	require.NoError(t, err)
	assert.Equal(t, models.TransactionSuccess, result.Status)
	assert.True(t, result.Replayed)
}

func TestHandleCallback_ReplayServedFromCache(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	mockRepo.EXPECT().
		CachedOutcome(gomock.Any(), testTxnID).
		Return(models.TransactionSuccess, true)

	result, err := uc.HandleCallback(context.Background(), successCallback())
	require.NoError(t, err)
	assert.Equal(t, models.TransactionSuccess, result.Status)
	assert.True(t, result.Replayed)
}

func TestHandleCallback_TamperedAmountRejected(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	cb := successCallback()
	cb.Amount = "1.00" // original hash no longer covers the amount

	mockRepo.EXPECT().CachedOutcome(gomock.Any(), testTxnID).Return(models.TransactionStatus(""), false)
	mockRepo.EXPECT().GetTransaction(gomock.Any(), testTxnID).Return(initiatedTxn(), nil)
	mockRepo.EXPECT().
		RecordAudit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, entry *models.AuditEntry) error {
			assert.Equal(t, models.AuditHashMismatch, entry.Kind)
			return nil
		})
	mockRepo.EXPECT().
		TransitionStatus(gomock.Any(), testTxnID, models.TransactionInitiated, models.TransactionFailure).
		Return(true, nil)
	mockRepo.EXPECT().CacheOutcome(gomock.Any(), testTxnID, models.TransactionFailure).Return(nil)

	result, err := uc.HandleCallback(context.Background(), cb)
	assert.ErrorIs(t, err, payment.ErrHashMismatch)
	assert.Nil(t, result)
}

func TestHandleCallback_ForgedStatusRejected(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	// Gateway hash was computed over "failure" but the attacker claims
	// success without being able to re-sign
	cb := successCallback()
	cb.Hash = "9d5743e1fdc7fbc3dd8f0bc665b2913eb1c38471e232a8f781e8aa31a1c08e3d71327c6a605bc58aadfa493204c56e25898c38be87357ae02acd9a32c6cfbaeb"

	mockRepo.EXPECT().CachedOutcome(gomock.Any(), testTxnID).Return(models.TransactionStatus(""), false)
	mockRepo.EXPECT().GetTransaction(gomock.Any(), testTxnID).Return(initiatedTxn(), nil)
	mockRepo.EXPECT().RecordAudit(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().
		TransitionStatus(gomock.Any(), testTxnID, models.TransactionInitiated, models.TransactionFailure).
		Return(true, nil)
	mockRepo.EXPECT().CacheOutcome(gomock.Any(), testTxnID, models.TransactionFailure).Return(nil)

	_, err := uc.HandleCallback(context.Background(), cb)
	assert.ErrorIs(t, err, payment.ErrHashMismatch)
}

func TestHandleCallback_UnknownTransaction(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	mockRepo.EXPECT().CachedOutcome(gomock.Any(), "PDK_nobody_1").Return(models.TransactionStatus(""), false)
	mockRepo.EXPECT().
		GetTransaction(gomock.Any(), "PDK_nobody_1").
		Return(nil, payment.ErrTransactionNotFound)
	mockRepo.EXPECT().
		RecordAudit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, entry *models.AuditEntry) error {
			assert.Equal(t, models.AuditUnknownTransaction, entry.Kind)
			return nil
		})

	cb := successCallback()
	cb.TxnID = "PDK_nobody_1"

	result, err := uc.HandleCallback(context.Background(), cb)
	assert.ErrorIs(t, err, payment.ErrTransactionNotFound)
	assert.Nil(t, result)
}

func TestHandleCallback_EmptyTxnID(t *testing.T) {
	uc, _, _ := newTestUC(t)

	cb := successCallback()
	cb.TxnID = ""

	result, err := uc.HandleCallback(context.Background(), cb)
	assert.ErrorIs(t, err, payment.ErrTransactionNotFound)
	assert.Nil(t, result)
}

func TestHandleCallback_LostRaceReturnsWinnerOutcome(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	winner := initiatedTxn()
	winner.Status = models.TransactionSuccess

	mockRepo.EXPECT().CachedOutcome(gomock.Any(), testTxnID).Return(models.TransactionStatus(""), false)
	mockRepo.EXPECT().GetTransaction(gomock.Any(), testTxnID).Return(initiatedTxn(), nil)
	mockRepo.EXPECT().
		TransitionStatus(gomock.Any(), testTxnID, models.TransactionInitiated, models.TransactionSuccess).
		Return(false, nil)
	mockRepo.EXPECT().GetTransaction(gomock.Any(), testTxnID).Return(winner, nil)

	result, err := uc.HandleCallback(context.Background(), successCallback())
	require.NoError(t, err)
	assert.Equal(t, models.TransactionSuccess, result.Status)
	assert.True(t, result.Replayed)
}

func TestHandleCallback_TransitionError(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	mockRepo.EXPECT().CachedOutcome(gomock.Any(), testTxnID).Return(models.TransactionStatus(""), false)
	mockRepo.EXPECT().GetTransaction(gomock.Any(), testTxnID).Return(initiatedTxn(), nil)
	mockRepo.EXPECT().
		TransitionStatus(gomock.Any(), testTxnID, models.TransactionInitiated, models.TransactionSuccess).
		Return(false, errors.New("connection reset"))

	result, err := uc.HandleCallback(context.Background(), successCallback())
	assert.Error(t, err)
	assert.Nil(t, result)
}

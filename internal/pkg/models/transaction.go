package models

import (
	"time"
)

// TransactionStatus is the lifecycle state of a payment transaction
type TransactionStatus string

const (
	TransactionInitiated TransactionStatus = "initiated"
	TransactionSuccess   TransactionStatus = "success"
	TransactionFailure   TransactionStatus = "failure"
	TransactionCancelled TransactionStatus = "cancelled"
)

// IsTerminal reports whether the status can never change again.
// Initiated is the only non-terminal state; the first verified callback wins.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionSuccess || s == TransactionFailure || s == TransactionCancelled
}

// PaymentTransaction represents one purchase attempt. TxnID is generated at
// initiation and acts as the idempotency key for gateway callbacks.
type PaymentTransaction struct {
	TxnID        string            `json:"txn_id" db:"txn_id"`
	PlanID       string            `json:"plan_id" db:"plan_id"`
	TeacherID    string            `json:"teacher_id" db:"teacher_id"`
	TeacherName  string            `json:"teacher_name" db:"teacher_name"`
	TeacherEmail string            `json:"teacher_email" db:"teacher_email"`
	TeacherPhone string            `json:"teacher_phone" db:"teacher_phone"`
	Amount       string            `json:"amount" db:"amount"`
	Status       TransactionStatus `json:"status" db:"status"`
	Digest       string            `json:"-" db:"digest"`
	CreatedAt    time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" db:"updated_at"`
	FinalizedAt  *time.Time        `json:"finalized_at,omitempty" db:"finalized_at"`
}

// AuditEntry records a security-relevant event on a transaction
type AuditEntry struct {
	ID        string    `json:"id" db:"id"`
	TxnID     string    `json:"txn_id" db:"txn_id"`
	Kind      string    `json:"kind" db:"kind"`
	Detail    string    `json:"detail" db:"detail"`
	RawParams string    `json:"raw_params" db:"raw_params"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Audit entry kinds
const (
	AuditHashMismatch       = "hash_mismatch"
	AuditUnknownTransaction = "unknown_transaction"
	AuditFinalized          = "finalized"
)

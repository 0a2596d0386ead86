package models

import (
	"time"
)

// CheckoutRequest is the purchase intent submitted by the web client.
// Field names are part of the external contract with the frontend.
type CheckoutRequest struct {
	Amount       string `json:"amount"`
	PlanID       string `json:"planId"`
	TeacherID    string `json:"teacherId"`
	TeacherEmail string `json:"teacherEmail"`
	TeacherName  string `json:"teacherName"`
	TeacherPhone string `json:"teacherPhone"`
}

// CheckoutForm carries every plaintext field the browser must auto-post to
// the hosted payment page, plus the request digest. Field names follow the
// gateway's form parameter names.
type CheckoutForm struct {
	Key         string `json:"key"`
	TxnID       string `json:"txnid"`
	Amount      string `json:"amount"`
	ProductInfo string `json:"productinfo"`
	FirstName   string `json:"firstname"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	SuccessURL  string `json:"surl"`
	FailureURL  string `json:"furl"`
	Hash        string `json:"hash"`
	UDF1        string `json:"udf1"`
	UDF2        string `json:"udf2"`
	PaymentURL  string `json:"payment_url"`
}

// GatewayCallback is the field set the gateway posts back after checkout.
// Echo binds it from the form-encoded redirect body.
type GatewayCallback struct {
	Status      string `json:"status" form:"status"`
	TxnID       string `json:"txnid" form:"txnid"`
	Amount      string `json:"amount" form:"amount"`
	ProductInfo string `json:"productinfo" form:"productinfo"`
	FirstName   string `json:"firstname" form:"firstname"`
	Email       string `json:"email" form:"email"`
	UDF1        string `json:"udf1" form:"udf1"`
	UDF2        string `json:"udf2" form:"udf2"`
	UDF3        string `json:"udf3" form:"udf3"`
	UDF4        string `json:"udf4" form:"udf4"`
	UDF5        string `json:"udf5" form:"udf5"`
	Hash        string `json:"hash" form:"hash"`
	MihPayID    string `json:"mihpayid" form:"mihpayid"`
	Mode        string `json:"mode" form:"mode"`
	Error       string `json:"error" form:"error"`
}

// CallbackResult is the internal outcome of processing one callback delivery
type CallbackResult struct {
	TxnID    string            `json:"txn_id"`
	Status   TransactionStatus `json:"status"`
	Replayed bool              `json:"replayed"`
}

// PaymentEvent is published to NATS when a transaction is created or finalized
type PaymentEvent struct {
	TxnID     string            `json:"txn_id"`
	PlanID    string            `json:"plan_id"`
	TeacherID string            `json:"teacher_id"`
	Amount    string            `json:"amount"`
	Status    TransactionStatus `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
}

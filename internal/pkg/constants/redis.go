package constants

import "time"

// Redis key formats
const (
	// Terminal outcome per transaction, written on finalization so webhook
	// redeliveries can be answered without touching Postgres.
	// Format: payment:outcome:{txn_id}
	KeyPaymentOutcome = "payment:outcome:%s"
)

// Cache TTLs
const (
	// Gateways redeliver webhooks for at most a few days
	PaymentOutcomeTTL = 72 * time.Hour
)

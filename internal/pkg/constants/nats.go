package constants

// NATS Subjects
const (
	// Published when a checkout handshake is built and the transaction
	// record is persisted in Initiated state
	SubjectPaymentInitiated = "payments.initiated"

	// Published when a verified gateway callback finalizes a transaction
	SubjectPaymentFinalized = "payments.finalized"
)

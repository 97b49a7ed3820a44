package constants

// NATS subjects for internal lifecycle events
const (
	SubjectChargeSuccess   = "payments.charge.success"
	SubjectChargeFailed    = "payments.charge.failed"
	SubjectHoldCreated     = "escrow.hold.created"
	SubjectHoldReleased    = "escrow.hold.released"
	SubjectDisburseSuccess = "escrow.disburse.success"
)

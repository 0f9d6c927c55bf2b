package domain

import "time"

// Audit event actions and outcomes.
const (
	AuditRegister = "register"
	AuditLogin    = "login"

	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
)

// AuditEvent records the outcome of one authentication attempt. Only the
// username and the outcome are recorded, never credentials or tokens.
type AuditEvent struct {
	Action     string    `json:"action"`
	Username   string    `json:"username"`
	Outcome    string    `json:"outcome"`
	OccurredAt time.Time `json:"occurred_at"`
}

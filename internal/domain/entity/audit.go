package entity

import "time"

// AuthAuditOutcome tells successful and failed authentications apart.
type AuthAuditOutcome string

const (
	AuthAuditSuccess AuthAuditOutcome = "success"
	AuthAuditFailure AuthAuditOutcome = "failure"
)

// AuthAuditEvent records one authentication attempt.
type AuthAuditEvent struct {
	ID         string           `json:"id"`
	Outcome    AuthAuditOutcome `json:"outcome"`
	UserID     string           `json:"userId,omitempty"`
	ProviderID string           `json:"providerId,omitempty"`
	Email      string           `json:"email,omitempty"`
	Reason     string           `json:"reason,omitempty"`
	RequestID  string           `json:"requestId,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
}

// LastLogin is the most recent successful authentication of a user.
type LastLogin struct {
	UserID    string    `json:"userId"`
	LoggedAt  time.Time `json:"loggedAt"`
	IPAddress string    `json:"ipAddress,omitempty"`
}

package usecase

import (
	"context"

	"mycloudmen/internal/domain/entity"
)

// ProfileUsecase keeps the session's user profile snapshot in step with the backend.
type ProfileUsecase interface {
	// Load fetches or registers the profile of a freshly authenticated identity,
	// stores it and records the successful login.
	Load(ctx context.Context, sessionID string, claims entity.IdentityClaims) (*entity.User, error)

	// Current returns the stored snapshot, or nil.
	Current(ctx context.Context, sessionID string) (*entity.User, error)

	// Refresh refetches the profile of the session's identity and stores it.
	Refresh(ctx context.Context, sessionID string) (*entity.User, error)
}

// AuditRecorder records authentication outcomes. It never fails the caller.
type AuditRecorder interface {
	RecordSuccess(ctx context.Context, user *entity.User)
	RecordFailure(ctx context.Context, reason, email string)
}

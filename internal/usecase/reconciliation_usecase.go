package usecase

import (
	"context"

	"mycloudmen/internal/domain/entity"
)

// ReconcileOutcome is the result of one guarded reconciliation pass.
type ReconcileOutcome struct {
	// Redirect is the critical verdict, nil when the user may proceed.
	Redirect *entity.RedirectResult
	// Navigate is false when the verdict was already issued or is where the user is.
	Navigate bool
	// Skipped is set when another pass for the session was still running.
	Skipped bool
}

// ReconciliationUsecase decides where a session must go based on account and company status.
type ReconciliationUsecase interface {
	AuthStateObserver

	// CriticalRedirect returns the first blocking verdict for user, or nil.
	CriticalRedirect(ctx context.Context, user *entity.User) (*entity.RedirectResult, error)

	// Reconcile runs CriticalRedirect at most once at a time per session and
	// suppresses repeated navigation to the same verdict.
	Reconcile(ctx context.Context, sessionID, currentPath string, user *entity.User) (ReconcileOutcome, error)

	// LandingRoute is the default route for the user's highest role.
	LandingRoute(user *entity.User) entity.RedirectResult
}

// CompanyStatusResolver resolves the company of a user's email domain.
type CompanyStatusResolver interface {
	// Resolve returns nil when no verdict can be made.
	Resolve(ctx context.Context, user *entity.User) (*entity.CompanyStatusResult, error)
}

package repository

import (
	"context"

	"mycloudmen/internal/domain/entity"
)

// SessionStore is the typed view over the persisted session storage.
//
// Load* methods return (nil, nil) when nothing is stored. Pop* methods delete
// what they return so the payload is observed at most once.
type SessionStore interface {
	SaveAuth(ctx context.Context, sessionID string, auth *entity.AuthSession) error
	LoadAuth(ctx context.Context, sessionID string) (*entity.AuthSession, error)

	SaveLoginState(ctx context.Context, sessionID string, state *entity.LoginState) error
	PopLoginState(ctx context.Context, sessionID string) (*entity.LoginState, error)

	// SaveUser writes the current user profile snapshot.
	SaveUser(ctx context.Context, sessionID string, user *entity.User) error
	LoadUser(ctx context.Context, sessionID string) (*entity.User, error)

	// SaveTarget records where to go after login completes.
	SaveTarget(ctx context.Context, sessionID, target string) error
	PopTarget(ctx context.Context, sessionID string) (string, error)

	SaveAuthError(ctx context.Context, sessionID string, authErr *entity.AuthError) error
	PopAuthError(ctx context.Context, sessionID string) (*entity.AuthError, error)

	// SaveRedirect parks a verdict computed outside navigation, by the poller.
	SaveRedirect(ctx context.Context, sessionID string, redirect *entity.RedirectResult) error
	PopRedirect(ctx context.Context, sessionID string) (*entity.RedirectResult, error)

	// Company status entries are keyed by domain, shared by every session.
	SaveCompanyStatus(ctx context.Context, domain string, entry *entity.CompanyStatusEntry) error
	LoadCompanyStatus(ctx context.Context, domain string) (*entity.CompanyStatusEntry, error)

	// Clear removes every key of the session.
	Clear(ctx context.Context, sessionID string) error
}

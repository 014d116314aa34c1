// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mycloudmen/internal/domain/entity"
	"mycloudmen/internal/domain/service"
)

// CallbackParams are the query parameters the identity provider redirects back with.
type CallbackParams struct {
	Code             string `query:"code"`
	State            string `query:"state"`
	Error            string `query:"error"`
	ErrorDescription string `query:"error_description"`
}

// AuthStateObserver is told when a session becomes authenticated or loses its authentication.
type AuthStateObserver interface {
	OnAuthenticated(ctx context.Context, sessionID string, user *entity.User)
	OnUnauthenticated(ctx context.Context, sessionID string)
}

// IdentityUsecase drives the login, callback and logout flow and owns the
// provider tokens of every session.
type IdentityUsecase interface {
	// Login starts an authorization code flow and returns the provider authorize URL.
	Login(ctx context.Context, sessionID, returnTo string) (string, error)

	// Logout clears the session and returns where the browser should go next.
	Logout(ctx context.Context, sessionID string) (string, error)

	// HandleCallback completes the flow. Failures come back as a redirect to the
	// error page, not as an error.
	HandleCallback(ctx context.Context, sessionID string, params CallbackParams) (*entity.RedirectResult, error)

	// AccessToken returns a valid access token, refreshing it when it is about to expire.
	AccessToken(ctx context.Context, sessionID string) (string, error)

	// RefreshAccessToken forces a refresh.
	RefreshAccessToken(ctx context.Context, sessionID string) (string, error)

	IsAuthenticated(ctx context.Context, sessionID string) bool

	// TokenSource binds the session's tokens for outbound backend calls.
	TokenSource(sessionID string) service.TokenSource

	Subscribe(observer AuthStateObserver)
}

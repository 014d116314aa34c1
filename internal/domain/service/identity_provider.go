package service

import (
	"context"
	"errors"

	"mycloudmen/internal/domain/entity"
)

var (
	// ErrInvalidIDToken is returned when an ID token fails signature or claim checks.
	ErrInvalidIDToken = errors.New("invalid id token")
	// ErrRefreshRejected means the provider will not redeem the refresh token
	// again. Any other refresh failure may be retried.
	ErrRefreshRejected = errors.New("refresh token rejected")
)

// IdentityProvider is the hosted OIDC provider.
type IdentityProvider interface {
	// AuthCodeURL builds the authorize redirect for state and PKCE verifier.
	AuthCodeURL(state, verifier string) string

	// Exchange trades an authorization code for tokens.
	Exchange(ctx context.Context, code, verifier string) (*entity.ProviderTokens, error)

	// Refresh trades a refresh token for a new token set. A token the provider
	// refuses for good yields ErrRefreshRejected.
	Refresh(ctx context.Context, refreshToken string) (*entity.ProviderTokens, error)

	// VerifyIDToken checks signature, issuer, audience and expiry.
	VerifyIDToken(ctx context.Context, rawIDToken string) (*entity.IdentityClaims, error)

	// EndSessionURL returns the provider logout URL, or "" when the provider has none.
	EndSessionURL(idTokenHint string) string
}

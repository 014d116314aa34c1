package entity

import (
	"strings"
	"time"
)

// IdentityClaims are the verified claims of an identity provider ID token.
type IdentityClaims struct {
	Subject       string `json:"sub"`
	Issuer        string `json:"iss"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// Provider derives the upstream connection name from the subject, which hosted
// providers format as "connection|id". Subjects without a separator fall back
// to the issuer host.
func (c IdentityClaims) Provider() string {
	if prefix, _, ok := strings.Cut(c.Subject, "|"); ok && prefix != "" {
		return prefix
	}

	host := strings.TrimPrefix(strings.TrimPrefix(c.Issuer, "https://"), "http://")

	return strings.TrimSuffix(host, "/")
}

// ProviderTokens is the token set returned by the identity provider.
type ProviderTokens struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	IDToken      string    `json:"idToken,omitempty"`
	TokenType    string    `json:"tokenType,omitempty"`
	Expiry       time.Time `json:"expiry"`
}

// ExpiresWithin reports whether the access token expires within leeway of now.
// A zero expiry never expires.
func (t ProviderTokens) ExpiresWithin(now time.Time, leeway time.Duration) bool {
	if t.Expiry.IsZero() {
		return false
	}

	return !now.Add(leeway).Before(t.Expiry)
}

// AuthSession is the identity provider side of a gateway session.
type AuthSession struct {
	Tokens          ProviderTokens `json:"tokens"`
	Claims          IdentityClaims `json:"claims"`
	AuthenticatedAt time.Time      `json:"authenticatedAt"`
}

// LoginState is the pending half of an authorization code flow.
type LoginState struct {
	State     string    `json:"state"`
	Verifier  string    `json:"verifier"`
	ReturnTo  string    `json:"returnTo,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Typed auth error codes carried to the error page.
const (
	AuthErrorAccessDenied     = "access_denied"
	AuthErrorLoginRequired    = "login_required"
	AuthErrorInvalidState     = "invalid_state"
	AuthErrorExchangeFailed   = "exchange_failed"
	AuthErrorInvalidToken     = "invalid_token"
	AuthErrorProfileFailed    = "profile_unavailable"
	AuthErrorProviderError    = "provider_error"
	AuthErrorStatusUnverified = "status_unverified"
	AuthErrorForbidden        = "forbidden"
)

// AuthError is the one-time failure payload shown by the error page.
type AuthError struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurredAt"`
}

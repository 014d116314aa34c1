package service

import (
	"context"
	"errors"

	"mycloudmen/internal/domain/entity"
)

var (
	// ErrProfileNotFound means the identity is not registered with the backend yet.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrMissingSubject is returned when registering an identity without a subject id.
	ErrMissingSubject = errors.New("identity has no subject id")
	// ErrUnauthorized is returned when the backend still answers 401 after a token refresh.
	ErrUnauthorized = errors.New("backend rejected credentials")
	// ErrBackendUnavailable wraps transport failures and 5xx answers once retries are exhausted.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrNotFound is a 404 on any resource other than the profile lookups.
	ErrNotFound = errors.New("resource not found")
)

// ProfileGateway is the backend REST API as seen by the session gateway.
type ProfileGateway interface {
	// FetchProfile loads the user registered under the identity provider subject.
	FetchProfile(ctx context.Context, subject string) (*entity.User, error)

	// FetchProfileByEmail loads the user registered under email.
	FetchProfileByEmail(ctx context.Context, email string) (*entity.User, error)

	// RegisterProfile registers a new identity and returns the created user.
	RegisterProfile(ctx context.Context, claims entity.IdentityClaims) (*entity.User, error)

	// FindCompaniesByDomain returns candidate companies for an email domain.
	FindCompaniesByDomain(ctx context.Context, domain string) ([]entity.Company, error)

	LogAuthentication(ctx context.Context, user *entity.User) error
	LogAuthenticationFailure(ctx context.Context, reason, email string) error

	UpdateUserStatus(ctx context.Context, userID string, status entity.UserStatus) (*entity.User, error)
	UpdateUserRoles(ctx context.Context, userID string, roles entity.Roles) (*entity.User, error)
	ApproveUser(ctx context.Context, userID string) (*entity.User, error)
	RejectUser(ctx context.Context, userID, reason string) (*entity.User, error)
	LastLogin(ctx context.Context, userID string) (*entity.LastLogin, error)
}

// TokenSource supplies the bearer token of the session an outbound call runs for.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	// Refresh forces a new token after the backend rejected the current one.
	Refresh(ctx context.Context) (string, error)
}

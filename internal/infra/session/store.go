// Package session implements the typed session store over a KVStore backend.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"mycloudmen/internal/domain/entity"
	domainerrors "mycloudmen/internal/domain/errors"
	"mycloudmen/internal/domain/repository"

	"github.com/pkg/errors"
)

const (
	loginStateTTL = 10 * time.Minute
	authErrorTTL  = 10 * time.Minute
	redirectTTL   = 10 * time.Minute
)

const (
	suffixAuth      = "auth"
	suffixLogin     = "login"
	suffixUser      = "user"
	suffixTarget    = "target"
	suffixAuthError = "auth_error"
	suffixRedirect  = "redirect"
)

var sessionSuffixes = []string{suffixAuth, suffixLogin, suffixUser, suffixTarget, suffixAuthError, suffixRedirect}

func sessionKey(sessionID, suffix string) string {
	return "session:" + sessionID + ":" + suffix
}

func companyStatusKey(domain string) string {
	return "company_status:" + domain
}

// Store encodes session values as JSON under per-session keys.
type Store struct {
	kv         repository.KVStore
	sessionTTL time.Duration
	companyTTL time.Duration
	logger     *slog.Logger
}

var _ repository.SessionStore = (*Store)(nil)

// NewStore wraps kv. Session keys live for sessionTTL, company status entries
// for companyTTL.
func NewStore(kv repository.KVStore, sessionTTL, companyTTL time.Duration, logger *slog.Logger) *Store {
	return &Store{
		kv:         kv,
		sessionTTL: sessionTTL,
		companyTTL: companyTTL,
		logger:     logger,
	}
}

func (s *Store) SaveAuth(ctx context.Context, sessionID string, auth *entity.AuthSession) error {
	return s.put(ctx, sessionKey(sessionID, suffixAuth), auth, s.sessionTTL)
}

func (s *Store) LoadAuth(ctx context.Context, sessionID string) (*entity.AuthSession, error) {
	return load[entity.AuthSession](ctx, s, sessionKey(sessionID, suffixAuth))
}

func (s *Store) SaveLoginState(ctx context.Context, sessionID string, state *entity.LoginState) error {
	return s.put(ctx, sessionKey(sessionID, suffixLogin), state, loginStateTTL)
}

func (s *Store) PopLoginState(ctx context.Context, sessionID string) (*entity.LoginState, error) {
	return pop[entity.LoginState](ctx, s, sessionKey(sessionID, suffixLogin))
}

func (s *Store) SaveUser(ctx context.Context, sessionID string, user *entity.User) error {
	return s.put(ctx, sessionKey(sessionID, suffixUser), user, s.sessionTTL)
}

func (s *Store) LoadUser(ctx context.Context, sessionID string) (*entity.User, error) {
	return load[entity.User](ctx, s, sessionKey(sessionID, suffixUser))
}

func (s *Store) SaveTarget(ctx context.Context, sessionID, target string) error {
	return s.put(ctx, sessionKey(sessionID, suffixTarget), target, loginStateTTL)
}

func (s *Store) PopTarget(ctx context.Context, sessionID string) (string, error) {
	target, err := pop[string](ctx, s, sessionKey(sessionID, suffixTarget))
	if err != nil || target == nil {
		return "", err
	}

	return *target, nil
}

func (s *Store) SaveAuthError(ctx context.Context, sessionID string, authErr *entity.AuthError) error {
	return s.put(ctx, sessionKey(sessionID, suffixAuthError), authErr, authErrorTTL)
}

func (s *Store) PopAuthError(ctx context.Context, sessionID string) (*entity.AuthError, error) {
	return pop[entity.AuthError](ctx, s, sessionKey(sessionID, suffixAuthError))
}

func (s *Store) SaveRedirect(ctx context.Context, sessionID string, redirect *entity.RedirectResult) error {
	return s.put(ctx, sessionKey(sessionID, suffixRedirect), redirect, redirectTTL)
}

func (s *Store) PopRedirect(ctx context.Context, sessionID string) (*entity.RedirectResult, error) {
	return pop[entity.RedirectResult](ctx, s, sessionKey(sessionID, suffixRedirect))
}

func (s *Store) SaveCompanyStatus(ctx context.Context, domain string, entry *entity.CompanyStatusEntry) error {
	return s.put(ctx, companyStatusKey(domain), entry, s.companyTTL)
}

func (s *Store) LoadCompanyStatus(ctx context.Context, domain string) (*entity.CompanyStatusEntry, error) {
	return load[entity.CompanyStatusEntry](ctx, s, companyStatusKey(domain))
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	keys := make([]string, len(sessionSuffixes))
	for i, suffix := range sessionSuffixes {
		keys[i] = sessionKey(sessionID, suffix)
	}

	if err := s.kv.Delete(ctx, keys...); err != nil {
		return domainerrors.NewStoreExecuteError(err, "clear session")
	}

	return nil
}

func (s *Store) put(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	if err := s.kv.Set(ctx, key, raw, ttl); err != nil {
		return domainerrors.NewStoreExecuteError(err, "set "+key)
	}

	return nil
}

// load returns (nil, nil) for a missing key. A value that no longer decodes is
// dropped and reported as missing, so a schema change never wedges a session.
func load[T any](ctx context.Context, s *Store, key string) (*T, error) {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "get "+key)
	}

	value := decode[T](ctx, s, key, raw)
	if value == nil {
		_ = s.kv.Delete(ctx, key)
	}

	return value, nil
}

// pop is load for one-time values. Two racing pops never both see the value.
func pop[T any](ctx context.Context, s *Store, key string) (*T, error) {
	raw, err := s.kv.GetDel(ctx, key)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "getdel "+key)
	}

	return decode[T](ctx, s, key, raw), nil
}

func decode[T any](ctx context.Context, s *Store, key string, raw []byte) *T {
	value := new(T)
	if err := json.Unmarshal(raw, value); err != nil {
		s.logger.WarnContext(ctx, "Dropping undecodable session value", slog.String("key", key), slog.Any("error", err))

		return nil
	}

	return value
}

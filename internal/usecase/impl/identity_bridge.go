package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mycloudmen/config"
	deliverycontext "mycloudmen/internal/delivery/context"
	"mycloudmen/internal/domain/entity"
	domainerrors "mycloudmen/internal/domain/errors"
	"mycloudmen/internal/domain/repository"
	"mycloudmen/internal/domain/service"
	"mycloudmen/internal/infra/metrics"
	"mycloudmen/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

const (
	defaultRefreshLeeway = 30 * time.Second
	refreshTimeout       = 10 * time.Second
)

// identityBridge implements the IdentityUsecase interface on top of a hosted
// OIDC provider. A nil provider means login is not configured.
type identityBridge struct {
	provider   service.IdentityProvider
	store      repository.SessionStore
	profiles   usecase.ProfileUsecase
	reconciler usecase.ReconciliationUsecase
	audit      usecase.AuditRecorder

	refreshLeeway time.Duration
	refreshGroup  singleflight.Group

	mu        sync.RWMutex
	observers []usecase.AuthStateObserver

	now    func() time.Time
	logger *slog.Logger
}

// NewIdentityBridge is the constructor for identityBridge.
func NewIdentityBridge(
	provider service.IdentityProvider,
	store repository.SessionStore,
	profiles usecase.ProfileUsecase,
	reconciler usecase.ReconciliationUsecase,
	audit usecase.AuditRecorder,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	leeway := defaultRefreshLeeway
	if cfg.OIDC != nil && cfg.OIDC.RefreshLeeway > 0 {
		leeway = cfg.OIDC.RefreshLeeway
	}

	return &identityBridge{
		provider:      provider,
		store:         store,
		profiles:      profiles,
		reconciler:    reconciler,
		audit:         audit,
		refreshLeeway: leeway,
		now:           time.Now,
		logger:        logger,
	}
}

func (b *identityBridge) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, b.logger)
}

func (b *identityBridge) configured() bool {
	return b.provider != nil
}

func (b *identityBridge) Login(ctx context.Context, sessionID, returnTo string) (string, error) {
	if !b.configured() {
		return "", domainerrors.ErrProviderNotConfigured
	}

	if target, ok := entity.SafeReturnPath(returnTo); ok {
		if err := b.store.SaveTarget(ctx, sessionID, target); err != nil {
			return "", errors.Wrap(err, "failed to store return target")
		}
	}

	state := &entity.LoginState{
		State:     oauth2.GenerateVerifier(),
		Verifier:  oauth2.GenerateVerifier(),
		ReturnTo:  returnTo,
		CreatedAt: b.now(),
	}
	if err := b.store.SaveLoginState(ctx, sessionID, state); err != nil {
		return "", errors.Wrap(err, "failed to store login state")
	}

	return b.provider.AuthCodeURL(state.State, state.Verifier), nil
}

func (b *identityBridge) Logout(ctx context.Context, sessionID string) (string, error) {
	var idToken string
	if auth, err := b.store.LoadAuth(ctx, sessionID); err == nil && auth != nil {
		idToken = auth.Tokens.IDToken
	}

	if err := b.store.Clear(ctx, sessionID); err != nil {
		return "", errors.Wrap(err, "failed to clear session")
	}
	b.notifyUnauthenticated(ctx, sessionID)

	if b.configured() {
		if endSession := b.provider.EndSessionURL(idToken); endSession != "" {
			return endSession, nil
		}
	}

	return entity.RouteRoot, nil
}

func (b *identityBridge) HandleCallback(ctx context.Context, sessionID string, params usecase.CallbackParams) (*entity.RedirectResult, error) {
	if !b.configured() {
		return nil, domainerrors.ErrProviderNotConfigured
	}

	if params.Error != "" {
		code := classifyProviderError(params.Error)

		return b.fail(ctx, sessionID, code, providerErrorMessage(code, params.ErrorDescription), "")
	}

	login, err := b.store.PopLoginState(ctx, sessionID)
	if err != nil {
		b.log(ctx).WarnContext(ctx, "Failed to load login state", slog.Any("error", err))
	}

	if login == nil || params.State == "" || login.State != params.State {
		// A stale or duplicate callback. The flow may already have completed
		// in another tab, so check the session once before giving up.
		if b.IsAuthenticated(ctx, sessionID) {
			return b.routeAfterLogin(ctx, sessionID, nil)
		}

		return b.fail(ctx, sessionID, entity.AuthErrorInvalidState, "login state is missing or does not match", "")
	}

	if params.Code == "" {
		return b.fail(ctx, sessionID, entity.AuthErrorExchangeFailed, "authorization code is missing", "")
	}

	tokens, err := b.provider.Exchange(ctx, params.Code, login.Verifier)
	if err != nil {
		b.log(ctx).WarnContext(ctx, "Code exchange failed", slog.Any("error", err))

		return b.fail(ctx, sessionID, entity.AuthErrorExchangeFailed, "could not complete sign-in with the identity provider", "")
	}

	claims, err := b.provider.VerifyIDToken(ctx, tokens.IDToken)
	if err != nil {
		b.log(ctx).WarnContext(ctx, "ID token rejected", slog.Any("error", err))

		return b.fail(ctx, sessionID, entity.AuthErrorInvalidToken, "the identity provider returned an invalid token", "")
	}

	auth := &entity.AuthSession{
		Tokens:          *tokens,
		Claims:          *claims,
		AuthenticatedAt: b.now(),
	}
	if err := b.store.SaveAuth(ctx, sessionID, auth); err != nil {
		b.log(ctx).ErrorContext(ctx, "Failed to store auth session", slog.Any("error", err))

		return b.fail(ctx, sessionID, entity.AuthErrorProviderError, "could not store the session", claims.Email)
	}

	user, err := b.profiles.Load(ctx, sessionID, *claims)
	if err != nil {
		b.log(ctx).WarnContext(ctx, "Profile load failed after login", slog.Any("error", err))

		return b.fail(ctx, sessionID, entity.AuthErrorProfileFailed, "your profile could not be loaded", claims.Email)
	}

	b.notifyAuthenticated(ctx, sessionID, user)

	return b.routeAfterLogin(ctx, sessionID, user)
}

// routeAfterLogin sends the user to a critical status page, the pending
// target or the role landing route, in that order.
func (b *identityBridge) routeAfterLogin(ctx context.Context, sessionID string, user *entity.User) (*entity.RedirectResult, error) {
	if user == nil {
		current, err := b.profiles.Current(ctx, sessionID)
		if err == nil && current == nil {
			current, err = b.profiles.Refresh(ctx, sessionID)
		}
		if err != nil {
			b.log(ctx).WarnContext(ctx, "Profile unavailable for post-login routing", slog.Any("error", err))
		}
		user = current
	}

	critical, err := b.reconciler.CriticalRedirect(ctx, user)
	if err != nil {
		b.log(ctx).WarnContext(ctx, "Reconciliation failed after login", slog.Any("error", err))
	}
	if critical != nil {
		return critical, nil
	}

	target, err := b.store.PopTarget(ctx, sessionID)
	if err != nil {
		b.log(ctx).WarnContext(ctx, "Failed to load return target", slog.Any("error", err))
	}
	if target != "" {
		return entity.NewRedirect(target, nil), nil
	}

	landing := b.reconciler.LandingRoute(user)

	return &landing, nil
}

// fail clears the session, parks the error payload for the error page and
// records the failure.
func (b *identityBridge) fail(ctx context.Context, sessionID, code, message, email string) (*entity.RedirectResult, error) {
	b.log(ctx).WarnContext(ctx, "Authentication failed",
		slog.String("code", code),
		slog.String("message", message),
	)

	if err := b.store.Clear(ctx, sessionID); err != nil {
		b.log(ctx).WarnContext(ctx, "Failed to clear session", slog.Any("error", err))
	}
	authErr := &entity.AuthError{Code: code, Message: message, OccurredAt: b.now()}
	if err := b.store.SaveAuthError(ctx, sessionID, authErr); err != nil {
		b.log(ctx).WarnContext(ctx, "Failed to store auth error", slog.Any("error", err))
	}
	b.audit.RecordFailure(ctx, code, email)

	return entity.NewRedirect(entity.RouteAuthError, map[string]string{"code": code}), nil
}

func classifyProviderError(code string) string {
	switch code {
	case entity.AuthErrorAccessDenied:
		return entity.AuthErrorAccessDenied
	case entity.AuthErrorLoginRequired, "interaction_required", "consent_required":
		return entity.AuthErrorLoginRequired
	default:
		return entity.AuthErrorProviderError
	}
}

// providerErrorMessage prefers the provider's own description.
func providerErrorMessage(code, description string) string {
	if description != "" {
		return description
	}

	switch code {
	case entity.AuthErrorAccessDenied:
		return "sign-in was cancelled or denied"
	case entity.AuthErrorLoginRequired:
		return "the identity provider needs you to sign in again"
	default:
		return "the identity provider reported an error"
	}
}

// AccessToken returns "" with no error when login is not configured.
func (b *identityBridge) AccessToken(ctx context.Context, sessionID string) (string, error) {
	if !b.configured() {
		return "", nil
	}

	auth, err := b.store.LoadAuth(ctx, sessionID)
	if err != nil {
		return "", errors.Wrap(err, "failed to load auth session")
	}
	if auth == nil {
		return "", domainerrors.ErrUnauthenticated
	}

	if !auth.Tokens.ExpiresWithin(b.now(), b.refreshLeeway) {
		return auth.Tokens.AccessToken, nil
	}

	return b.refresh(ctx, sessionID)
}

func (b *identityBridge) RefreshAccessToken(ctx context.Context, sessionID string) (string, error) {
	if !b.configured() {
		return "", nil
	}

	return b.refresh(ctx, sessionID)
}

// refresh redeems the refresh token once per session at a time. Only a
// refresh token the provider rejects ends the session. The shared call outlives
// the caller that started it, so one cancelled request cannot fail the others.
func (b *identityBridge) refresh(ctx context.Context, sessionID string) (string, error) {
	v, err, _ := b.refreshGroup.Do(sessionID, func() (any, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		auth, err := b.store.LoadAuth(rctx, sessionID)
		if err != nil {
			return "", errors.Wrap(err, "failed to load auth session")
		}
		if auth == nil {
			return "", domainerrors.ErrUnauthenticated
		}

		tokens, err := b.provider.Refresh(rctx, auth.Tokens.RefreshToken)
		if err != nil {
			if !errors.Is(err, service.ErrRefreshRejected) {
				metrics.TokenRefreshes.WithLabelValues("failure").Inc()
				b.log(ctx).WarnContext(ctx, "Token refresh failed, keeping session", slog.Any("error", err))

				return "", errors.Wrap(err, "failed to refresh access token")
			}

			metrics.TokenRefreshes.WithLabelValues("rejected").Inc()
			b.log(ctx).InfoContext(ctx, "Refresh token rejected, ending session", slog.Any("error", err))
			b.expire(rctx, sessionID)

			return "", domainerrors.WithCause(domainerrors.ErrUnauthenticated, err)
		}

		if tokens.IDToken == "" {
			tokens.IDToken = auth.Tokens.IDToken
		} else if claims, err := b.provider.VerifyIDToken(rctx, tokens.IDToken); err == nil {
			auth.Claims = *claims
		}
		auth.Tokens = *tokens

		if err := b.store.SaveAuth(rctx, sessionID, auth); err != nil {
			return "", errors.Wrap(err, "failed to store refreshed tokens")
		}
		metrics.TokenRefreshes.WithLabelValues("success").Inc()

		return tokens.AccessToken, nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

func (b *identityBridge) expire(ctx context.Context, sessionID string) {
	if err := b.store.Clear(ctx, sessionID); err != nil {
		b.log(ctx).WarnContext(ctx, "Failed to clear expired session", slog.Any("error", err))
	}
	b.notifyUnauthenticated(ctx, sessionID)
}

func (b *identityBridge) IsAuthenticated(ctx context.Context, sessionID string) bool {
	if !b.configured() {
		return false
	}

	auth, err := b.store.LoadAuth(ctx, sessionID)

	return err == nil && auth != nil && auth.Tokens.AccessToken != ""
}

func (b *identityBridge) TokenSource(sessionID string) service.TokenSource {
	return &sessionTokenSource{bridge: b, sessionID: sessionID}
}

func (b *identityBridge) Subscribe(observer usecase.AuthStateObserver) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.observers = append(b.observers, observer)
}

func (b *identityBridge) snapshotObservers() []usecase.AuthStateObserver {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]usecase.AuthStateObserver(nil), b.observers...)
}

func (b *identityBridge) notifyAuthenticated(ctx context.Context, sessionID string, user *entity.User) {
	for _, observer := range b.snapshotObservers() {
		observer.OnAuthenticated(ctx, sessionID, user)
	}
}

func (b *identityBridge) notifyUnauthenticated(ctx context.Context, sessionID string) {
	for _, observer := range b.snapshotObservers() {
		observer.OnUnauthenticated(ctx, sessionID)
	}
}

// sessionTokenSource is the TokenSource of one session.
type sessionTokenSource struct {
	bridge    *identityBridge
	sessionID string
}

func (s *sessionTokenSource) Token(ctx context.Context) (string, error) {
	return s.bridge.AccessToken(ctx, s.sessionID)
}

func (s *sessionTokenSource) Refresh(ctx context.Context) (string, error) {
	return s.bridge.RefreshAccessToken(ctx, s.sessionID)
}

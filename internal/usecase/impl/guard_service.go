package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"mycloudmen/config"
	deliverycontext "mycloudmen/internal/delivery/context"
	"mycloudmen/internal/domain/entity"
	"mycloudmen/internal/domain/lifecycle"
	"mycloudmen/internal/domain/repository"
	"mycloudmen/internal/domain/service"
	"mycloudmen/internal/usecase"

	"github.com/pkg/errors"
)

type routeRule struct {
	prefix string
	roles  entity.Roles
}

// guardService implements the GuardUsecase interface.
type guardService struct {
	identity   usecase.IdentityUsecase
	profiles   usecase.ProfileUsecase
	reconciler usecase.ReconciliationUsecase
	store      repository.SessionStore
	sources    []statusSource

	publicPaths []string
	statusPaths []string
	// routes are sorted longest prefix first.
	routes   []routeRule
	failOpen bool

	refreshTimeout time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

// NewGuardService is the constructor for guardService.
func NewGuardService(
	identity usecase.IdentityUsecase,
	profiles usecase.ProfileUsecase,
	reconciler usecase.ReconciliationUsecase,
	gateway service.ProfileGateway,
	store repository.SessionStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.GuardUsecase {
	nav := cfg.Navigation

	routes := make([]routeRule, 0, len(nav.Routes))
	for _, rule := range nav.Routes {
		routes = append(routes, routeRule{prefix: rule.Prefix, roles: entity.RolesFromStrings(rule.Roles)})
	}
	slices.SortStableFunc(routes, func(a, b routeRule) int {
		return len(b.prefix) - len(a.prefix)
	})

	return &guardService{
		identity:       identity,
		profiles:       profiles,
		reconciler:     reconciler,
		store:          store,
		sources:        defaultStatusSources(gateway),
		publicPaths:    nav.PublicPaths,
		statusPaths:    nav.StatusPaths,
		routes:         routes,
		failOpen:       nav.StatusGuardFailOpen(),
		refreshTimeout: lifecycle.DefaultTimeout,
		now:            time.Now,
		logger:         logger,
	}
}

func (srv *guardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func allow(user *entity.User) usecase.NavigationDecision {
	return usecase.NavigationDecision{Kind: usecase.DecisionAllow, User: user}
}

func redirectTo(redirect *entity.RedirectResult, navigate bool, user *entity.User) usecase.NavigationDecision {
	return usecase.NavigationDecision{Kind: usecase.DecisionRedirect, Redirect: redirect, Navigate: navigate, User: user}
}

func matchesPath(list []string, path string) bool {
	path = entity.PathOf(path)

	return slices.ContainsFunc(list, func(p string) bool {
		return path == p || strings.HasPrefix(path, strings.TrimSuffix(p, "/")+"/")
	})
}

func (srv *guardService) isPublic(path string) bool {
	return matchesPath(srv.publicPaths, path)
}

func (srv *guardService) isStatusPage(path string) bool {
	return matchesPath(srv.statusPaths, path)
}

// Evaluate runs the guards in order: authentication, a parked poller verdict,
// account status for shell routes, the reconciliation engine, then roles.
// Public routes pass before anything else runs.
func (srv *guardService) Evaluate(ctx context.Context, sessionID, path string) (usecase.NavigationDecision, error) {
	if srv.isPublic(path) {
		return allow(nil), nil
	}

	decision, err := srv.Authenticate(ctx, sessionID, path)
	if err != nil || decision.Kind != usecase.DecisionAllow {
		return decision, err
	}
	user := decision.User

	parked, err := srv.store.PopRedirect(ctx, sessionID)
	if err != nil {
		srv.log(ctx).DebugContext(ctx, "Failed to load parked redirect", slog.Any("error", err))
	}
	if parked != nil && parked.Path != entity.PathOf(path) {
		return redirectTo(parked, true, user), nil
	}

	statusPage := srv.isStatusPage(path)
	if !statusPage {
		decision, err := srv.VerifyStatus(ctx, sessionID, user)
		if err != nil || decision.Kind != usecase.DecisionAllow {
			return decision, err
		}
		user = decision.User
	}

	outcome, err := srv.reconciler.Reconcile(ctx, sessionID, path, user)
	if err != nil {
		return usecase.NavigationDecision{}, errors.Wrap(err, "reconciliation failed")
	}
	switch {
	case outcome.Redirect != nil && outcome.Redirect.Path != entity.PathOf(path):
		return redirectTo(outcome.Redirect, outcome.Navigate, user), nil
	case outcome.Redirect == nil && !outcome.Skipped && statusPage:
		// Nothing blocks the user any more, so the status page is stale.
		landing := srv.reconciler.LandingRoute(user)

		return redirectTo(&landing, true, user), nil
	case statusPage:
		return allow(user), nil
	}

	return srv.AuthorizeRole(user, path), nil
}

// Authenticate lets public routes through and sends everyone else without a
// session to login. A session without a loaded profile waits on the loading
// page while the profile is fetched in the background.
func (srv *guardService) Authenticate(ctx context.Context, sessionID, path string) (usecase.NavigationDecision, error) {
	if srv.isPublic(path) {
		return allow(nil), nil
	}

	returnTo := map[string]string{"returnTo": path}
	if sessionID == "" || !srv.identity.IsAuthenticated(ctx, sessionID) {
		return usecase.NavigationDecision{
			Kind:     usecase.DecisionLogin,
			Redirect: entity.NewRedirect(entity.RouteAuthLogin, returnTo),
			Navigate: true,
		}, nil
	}

	user, err := srv.profiles.Current(ctx, sessionID)
	if err != nil {
		return usecase.NavigationDecision{}, err
	}
	if user == nil {
		srv.refreshInBackground(ctx, sessionID)

		return redirectTo(entity.NewRedirect(entity.RouteAuthLoading, returnTo), true, nil), nil
	}

	return allow(user), nil
}

func (srv *guardService) refreshInBackground(ctx context.Context, sessionID string) {
	detached, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.refreshTimeout)

	go func() {
		defer cancel()

		if _, err := srv.profiles.Refresh(detached, sessionID); err != nil {
			srv.log(ctx).WarnContext(detached, "Background profile refresh failed", slog.Any("error", err))
		}
	}()
}

// AuthorizeRole allows paths without role metadata, and otherwise requires
// the user to hold one of the listed roles.
func (srv *guardService) AuthorizeRole(user *entity.User, path string) usecase.NavigationDecision {
	path = entity.PathOf(path)

	for _, rule := range srv.routes {
		if path != rule.prefix && !strings.HasPrefix(path, strings.TrimSuffix(rule.prefix, "/")+"/") {
			continue
		}
		if len(rule.roles) == 0 || (user != nil && user.Roles.Intersects(rule.roles)) {
			return allow(user)
		}

		landing := srv.reconciler.LandingRoute(user)
		if landing.Path == path {
			// The landing route itself is forbidden; do not loop onto it.
			return redirectTo(entity.NewRedirect(entity.RouteAuthError, map[string]string{"code": entity.AuthErrorForbidden}), true, user)
		}

		return redirectTo(&landing, true, user)
	}

	return allow(user)
}

// VerifyStatus walks the status sources in order; the first one that answers
// decides. When only the stored snapshot is left, a stored block still blocks
// and anything else follows the fail-open policy.
func (srv *guardService) VerifyStatus(ctx context.Context, sessionID string, user *entity.User) (usecase.NavigationDecision, error) {
	if user == nil {
		return allow(nil), nil
	}

	for _, source := range srv.sources {
		fetched, err := source.fetch(ctx, user)
		if err != nil {
			if !errors.Is(err, errSourceNotApplicable) {
				srv.log(ctx).DebugContext(ctx, "Status source failed",
					slog.String("source", source.name),
					slog.Any("error", err),
				)
			}

			continue
		}

		status, ok := source.extract(fetched)
		if !ok {
			continue
		}

		if !source.network {
			return srv.decideCached(ctx, sessionID, user, status)
		}

		if fetched.ProviderID == "" {
			fetched.ProviderID = user.ProviderID
		}
		if err := srv.store.SaveUser(ctx, sessionID, fetched); err != nil {
			srv.log(ctx).WarnContext(ctx, "Failed to update profile snapshot", slog.Any("error", err))
		}
		if redirect := entity.StatusRedirect(status); redirect != nil {
			return redirectTo(redirect, true, fetched), nil
		}

		return allow(fetched), nil
	}

	return srv.decideCached(ctx, sessionID, user, "")
}

func (srv *guardService) decideCached(ctx context.Context, sessionID string, user *entity.User, status entity.UserStatus) (usecase.NavigationDecision, error) {
	if status == entity.UserStatusDeactivated || status == entity.UserStatusRejected {
		return redirectTo(entity.StatusRedirect(status), true, user), nil
	}
	if srv.failOpen {
		return allow(user), nil
	}

	authErr := &entity.AuthError{
		Code:       entity.AuthErrorStatusUnverified,
		Message:    "your account status could not be verified",
		OccurredAt: srv.now(),
	}
	if err := srv.store.SaveAuthError(ctx, sessionID, authErr); err != nil {
		srv.log(ctx).WarnContext(ctx, "Failed to store auth error", slog.Any("error", err))
	}

	return redirectTo(entity.NewRedirect(entity.RouteAuthError, map[string]string{"code": entity.AuthErrorStatusUnverified}), true, user), nil
}

package impl

import (
	"context"
	"log/slog"
	"sync"

	"mycloudmen/config"
	deliverycontext "mycloudmen/internal/delivery/context"
	"mycloudmen/internal/domain/entity"
	"mycloudmen/internal/infra/metrics"
	"mycloudmen/internal/usecase"

	"github.com/pkg/errors"
)

var defaultLanding = map[entity.Role]string{
	entity.RoleSystemAdmin:  "/companies",
	entity.RoleCompanyAdmin: "/users",
	entity.RoleCompanyUser:  "/requests",
}

// reconciliationService implements the ReconciliationUsecase interface.
type reconciliationService struct {
	resolver usecase.CompanyStatusResolver
	landing  map[entity.Role]string

	// inFlight holds the sessions with a running pass.
	inFlight sync.Map
	// lastIssued holds the URL of the last verdict navigated to, per session.
	lastIssued sync.Map

	logger *slog.Logger
}

// NewReconciliationService is the constructor for reconciliationService.
func NewReconciliationService(resolver usecase.CompanyStatusResolver, cfg *config.Config, logger *slog.Logger) usecase.ReconciliationUsecase {
	landing := make(map[entity.Role]string, len(defaultLanding))
	for role, path := range defaultLanding {
		landing[role] = path
	}
	for role, path := range cfg.Navigation.Landing {
		if r := entity.Role(role); r.IsValid() && path != "" {
			landing[r] = path
		}
	}

	return &reconciliationService{
		resolver: resolver,
		landing:  landing,
		logger:   logger,
	}
}

func (srv *reconciliationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CriticalRedirect applies the rules in priority order. Account status is
// decided before any company lookup is made.
func (srv *reconciliationService) CriticalRedirect(ctx context.Context, user *entity.User) (*entity.RedirectResult, error) {
	if user == nil {
		return nil, nil
	}

	if redirect := entity.StatusRedirect(user.Status); redirect != nil {
		return redirect, nil
	}

	company, err := srv.resolver.Resolve(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve company status")
	}
	if company == nil {
		return nil, nil
	}

	switch {
	case company.Status == entity.CompanyStatusNotFound:
		return entity.NewRedirect(entity.RouteCompanyNotRegistered, map[string]string{"domain": company.Domain}), nil
	case company.Status.IsInactive():
		query := map[string]string{"status": string(company.Status)}
		if company.Name != "" {
			query["name"] = company.Name
		}

		return entity.NewRedirect(entity.RouteCompanyInactive, query), nil
	}

	return nil, nil
}

func (srv *reconciliationService) Reconcile(ctx context.Context, sessionID, currentPath string, user *entity.User) (usecase.ReconcileOutcome, error) {
	if _, busy := srv.inFlight.LoadOrStore(sessionID, struct{}{}); busy {
		metrics.ReconciliationSkipped.Inc()

		return usecase.ReconcileOutcome{Skipped: true}, nil
	}
	defer srv.inFlight.Delete(sessionID)

	redirect, err := srv.CriticalRedirect(ctx, user)
	if err != nil {
		return usecase.ReconcileOutcome{}, err
	}

	if redirect == nil {
		metrics.ReconciliationVerdicts.WithLabelValues("none").Inc()
		srv.lastIssued.Delete(sessionID)

		return usecase.ReconcileOutcome{}, nil
	}
	metrics.ReconciliationVerdicts.WithLabelValues(redirect.Path).Inc()

	target := redirect.URL()
	if entity.PathOf(currentPath) == redirect.Path {
		srv.lastIssued.Delete(sessionID)

		return usecase.ReconcileOutcome{Redirect: redirect}, nil
	}

	if last, ok := srv.lastIssued.Load(sessionID); ok && last.(string) == target {
		return usecase.ReconcileOutcome{Redirect: redirect}, nil
	}
	srv.lastIssued.Store(sessionID, target)

	srv.log(ctx).InfoContext(ctx, "Issuing critical redirect",
		slog.String("from", currentPath),
		slog.String("to", target),
	)

	return usecase.ReconcileOutcome{Redirect: redirect, Navigate: true}, nil
}

// LandingRoute falls back to the COMPANY_USER route for users without roles.
func (srv *reconciliationService) LandingRoute(user *entity.User) entity.RedirectResult {
	role := entity.RoleCompanyUser
	if user != nil {
		if highest, ok := user.Roles.Highest(); ok {
			role = highest
		}
	}

	return *entity.NewRedirect(srv.landing[role], nil)
}

func (srv *reconciliationService) OnAuthenticated(context.Context, string, *entity.User) {}

func (srv *reconciliationService) OnUnauthenticated(_ context.Context, sessionID string) {
	srv.lastIssued.Delete(sessionID)
}

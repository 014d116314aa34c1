package impl

import (
	"context"
	"log/slog"

	deliverycontext "mycloudmen/internal/delivery/context"
	"mycloudmen/internal/domain/entity"
	domainerrors "mycloudmen/internal/domain/errors"
	"mycloudmen/internal/domain/repository"
	"mycloudmen/internal/domain/service"
	"mycloudmen/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	gateway service.ProfileGateway
	store   repository.SessionStore
	audit   usecase.AuditRecorder
	group   singleflight.Group
	logger  *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	gateway service.ProfileGateway,
	store repository.SessionStore,
	audit usecase.AuditRecorder,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		gateway: gateway,
		store:   store,
		audit:   audit,
		logger:  logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) Load(ctx context.Context, sessionID string, claims entity.IdentityClaims) (*entity.User, error) {
	user, err := srv.fetchOrRegister(ctx, claims)
	if err != nil {
		return nil, err
	}

	if err := srv.store.SaveUser(ctx, sessionID, user); err != nil {
		return nil, errors.Wrap(err, "failed to store profile")
	}

	srv.audit.RecordSuccess(ctx, user)

	return user, nil
}

func (srv *profileService) Current(ctx context.Context, sessionID string) (*entity.User, error) {
	user, err := srv.store.LoadUser(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// Refresh coalesces concurrent refreshes of one session.
func (srv *profileService) Refresh(ctx context.Context, sessionID string) (*entity.User, error) {
	v, err, _ := srv.group.Do(sessionID, func() (any, error) {
		auth, err := srv.store.LoadAuth(ctx, sessionID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load auth session")
		}
		if auth == nil {
			return nil, domainerrors.ErrUnauthenticated
		}

		user, err := srv.fetchOrRegister(ctx, auth.Claims)
		if err != nil {
			return nil, err
		}

		if err := srv.store.SaveUser(ctx, sessionID, user); err != nil {
			return nil, errors.Wrap(err, "failed to store profile")
		}

		return user, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*entity.User), nil
}

// fetchOrRegister looks the identity up and registers it on a 404.
func (srv *profileService) fetchOrRegister(ctx context.Context, claims entity.IdentityClaims) (*entity.User, error) {
	user, err := srv.gateway.FetchProfile(ctx, claims.Subject)
	if errors.Is(err, service.ErrProfileNotFound) {
		srv.log(ctx).InfoContext(ctx, "Registering new identity",
			slog.String("provider", claims.Provider()),
			slog.String("domain", entity.EmailDomain(claims.Email)),
		)
		user, err = srv.gateway.RegisterProfile(ctx, claims)
	}
	if err != nil {
		return nil, domainerrors.WithCause(domainerrors.ErrProfileUnavailable, err)
	}

	if user.ProviderID == "" {
		user.ProviderID = claims.Subject
	}
	if user.Email == "" {
		user.Email = claims.Email
	}

	return user, nil
}

package impl

import (
	"context"
	"log/slog"

	deliverycontext "mycloudmen/internal/delivery/context"
	"mycloudmen/internal/domain/entity"
	domainerrors "mycloudmen/internal/domain/errors"
	"mycloudmen/internal/domain/service"
	"mycloudmen/internal/usecase"

	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface. The backend owns the
// data; the gateway rejects requests no administrator may make.
type adminService struct {
	gateway service.ProfileGateway
	logger  *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(gateway service.ProfileGateway, logger *slog.Logger) usecase.AdminUsecase {
	return &adminService{gateway: gateway, logger: logger}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func notSelf(actor *entity.User, userID string) error {
	if actor != nil && actor.ID == userID {
		return domainerrors.ErrForbidden.WrapMessage("administrators cannot change their own account")
	}

	return nil
}

func (srv *adminService) UpdateUserStatus(ctx context.Context, actor *entity.User, userID string, status entity.UserStatus) (*entity.User, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown status " + string(status))
	}
	if err := notSelf(actor, userID); err != nil {
		return nil, err
	}

	srv.log(ctx).InfoContext(ctx, "Updating user status",
		slog.String("user_id", userID),
		slog.String("status", string(status)),
	)

	return srv.mapErr(srv.gateway.UpdateUserStatus(ctx, userID, status))
}

// UpdateUserRoles lets only system administrators grant SYSTEM_ADMIN.
func (srv *adminService) UpdateUserRoles(ctx context.Context, actor *entity.User, userID string, roles entity.Roles) (*entity.User, error) {
	if len(roles) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one role is required")
	}
	for _, role := range roles {
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role " + role.String())
		}
	}
	if roles.Contains(entity.RoleSystemAdmin) && (actor == nil || !actor.Roles.Contains(entity.RoleSystemAdmin)) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only system administrators can grant SYSTEM_ADMIN")
	}
	if err := notSelf(actor, userID); err != nil {
		return nil, err
	}

	srv.log(ctx).InfoContext(ctx, "Updating user roles",
		slog.String("user_id", userID),
		slog.Any("roles", roles.ToStrings()),
	)

	return srv.mapErr(srv.gateway.UpdateUserRoles(ctx, userID, roles))
}

func (srv *adminService) ApproveUser(ctx context.Context, actor *entity.User, userID string) (*entity.User, error) {
	if err := notSelf(actor, userID); err != nil {
		return nil, err
	}

	return srv.mapErr(srv.gateway.ApproveUser(ctx, userID))
}

func (srv *adminService) RejectUser(ctx context.Context, actor *entity.User, userID, reason string) (*entity.User, error) {
	if err := notSelf(actor, userID); err != nil {
		return nil, err
	}

	return srv.mapErr(srv.gateway.RejectUser(ctx, userID, reason))
}

func (srv *adminService) LastLogin(ctx context.Context, userID string) (*entity.LastLogin, error) {
	last, err := srv.gateway.LastLogin(ctx, userID)
	if err != nil {
		return nil, srv.translate(err)
	}

	return last, nil
}

func (srv *adminService) mapErr(user *entity.User, err error) (*entity.User, error) {
	if err != nil {
		return nil, srv.translate(err)
	}

	return user, nil
}

// translate maps gateway sentinels onto application errors.
func (srv *adminService) translate(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return domainerrors.WithCause(domainerrors.ErrUserNotFound, err)
	case errors.Is(err, service.ErrUnauthorized):
		return domainerrors.WithCause(domainerrors.ErrUnauthenticated, err)
	case errors.Is(err, service.ErrBackendUnavailable):
		return domainerrors.WithCause(domainerrors.ErrBackendUnavailable, err)
	default:
		return errors.Wrap(err, "backend request failed")
	}
}

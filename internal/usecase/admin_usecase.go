package usecase

import (
	"context"

	"mycloudmen/internal/domain/entity"
)

// AdminUsecase is the user approval workflow exposed to administrators.
type AdminUsecase interface {
	UpdateUserStatus(ctx context.Context, actor *entity.User, userID string, status entity.UserStatus) (*entity.User, error)
	UpdateUserRoles(ctx context.Context, actor *entity.User, userID string, roles entity.Roles) (*entity.User, error)
	ApproveUser(ctx context.Context, actor *entity.User, userID string) (*entity.User, error)
	RejectUser(ctx context.Context, actor *entity.User, userID, reason string) (*entity.User, error)
	LastLogin(ctx context.Context, userID string) (*entity.LastLogin, error)
}

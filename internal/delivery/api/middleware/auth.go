// Package middleware holds the echo middleware of the API routes.
package middleware

import (
	"mycloudmen/internal/delivery/api/response"
	deliverycontext "mycloudmen/internal/delivery/context"
	"mycloudmen/internal/domain/entity"
	domainerrors "mycloudmen/internal/domain/errors"
	"mycloudmen/internal/usecase"

	"github.com/labstack/echo/v4"
)

const keyUser = "user"

// AuthMiddleware admits requests of authenticated sessions and gates them by role.
type AuthMiddleware struct {
	guard usecase.GuardUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(guard usecase.GuardUsecase) *AuthMiddleware {
	return &AuthMiddleware{guard: guard}
}

// GetUser returns the profile stored by Authenticate.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(keyUser).(*entity.User)

	return user, ok && user != nil
}

// Authenticate runs the authentication guard. API callers get a 401 instead
// of the login redirect a page navigation would get.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		decision, err := m.guard.Authenticate(ctx, deliverycontext.GetSessionID(c), c.Request().URL.Path)
		if err != nil {
			return err
		}

		switch decision.Kind {
		case usecase.DecisionAllow:
			if decision.User != nil {
				c.Set(keyUser, decision.User)
			}

			return next(c)
		case usecase.DecisionLogin:
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		default:
			// The profile is still loading.
			return response.HandleAppError(c, domainerrors.ErrProfileUnavailable)
		}
	}
}

// RequireActive blocks accounts the status guard would send to a status page.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireActive(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := GetUser(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}

		decision, err := m.guard.VerifyStatus(c.Request().Context(), deliverycontext.GetSessionID(c), user)
		if err != nil {
			return err
		}
		if decision.Kind != usecase.DecisionAllow {
			return response.HandleAppError(c, domainerrors.ErrForbidden)
		}
		if decision.User != nil {
			c.Set(keyUser, decision.User)
		}

		return next(c)
	}
}

// RequireRole admits users holding at least one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := GetUser(c)
			if !ok {
				return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
			}

			if !user.Roles.Intersects(roles) {
				return response.HandleAppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

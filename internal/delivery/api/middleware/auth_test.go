package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "mycloudmen/internal/delivery/context"
	"mycloudmen/internal/domain/entity"
	mockUsecase "mycloudmen/internal/mocks/usecase"
	"mycloudmen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testSID = "sid-1"

// newAdminEcho mounts a probe behind the same chain the admin routes use.
func newAdminEcho(guard usecase.GuardUsecase) *echo.Echo {
	m := NewAuthMiddleware(guard)

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetSessionID(c, testSID)

			return next(c)
		}
	})

	admin := e.Group("/api/admin", m.Authenticate, m.RequireActive, m.RequireRole(entity.RoleSystemAdmin, entity.RoleCompanyAdmin))
	admin.GET("/probe", func(c echo.Context) error {
		user, ok := GetUser(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}

		return c.String(http.StatusOK, user.ID)
	})

	return e
}

func get(e *echo.Echo) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/probe", nil))

	return rec
}

func user(roles ...entity.Role) *entity.User {
	return &entity.User{ID: "u1", Email: "a@acme.com", Status: entity.UserStatusActivated, Roles: roles}
}

func TestAuthMiddleware_Unauthenticated(t *testing.T) {
	guard := mockUsecase.NewMockGuardUsecase(t)
	guard.EXPECT().Authenticate(mock.Anything, testSID, "/api/admin/probe").
		Return(usecase.NavigationDecision{Kind: usecase.DecisionLogin}, nil).Once()

	rec := get(newAdminEcho(guard))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", decodeError(t, rec).Code)
}

func TestAuthMiddleware_ProfileLoading(t *testing.T) {
	guard := mockUsecase.NewMockGuardUsecase(t)
	guard.EXPECT().Authenticate(mock.Anything, testSID, mock.Anything).
		Return(usecase.NavigationDecision{Kind: usecase.DecisionRedirect, Redirect: entity.NewRedirect(entity.RouteAuthLoading, nil)}, nil).Once()

	rec := get(newAdminEcho(guard))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "PROFILE_UNAVAILABLE", decodeError(t, rec).Code)
}

func TestAuthMiddleware_BlockedAccount(t *testing.T) {
	admin := user(entity.RoleSystemAdmin)

	guard := mockUsecase.NewMockGuardUsecase(t)
	guard.EXPECT().Authenticate(mock.Anything, testSID, mock.Anything).
		Return(usecase.NavigationDecision{Kind: usecase.DecisionAllow, User: admin}, nil).Once()
	guard.EXPECT().VerifyStatus(mock.Anything, testSID, admin).
		Return(usecase.NavigationDecision{Kind: usecase.DecisionRedirect, Redirect: entity.StatusRedirect(entity.UserStatusDeactivated)}, nil).Once()

	rec := get(newAdminEcho(guard))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RoleGate(t *testing.T) {
	tests := []struct {
		name       string
		roles      entity.Roles
		wantStatus int
	}{
		{name: "system admin", roles: entity.Roles{entity.RoleSystemAdmin}, wantStatus: http.StatusOK},
		{name: "company admin", roles: entity.Roles{entity.RoleCompanyAdmin}, wantStatus: http.StatusOK},
		{name: "company user", roles: entity.Roles{entity.RoleCompanyUser}, wantStatus: http.StatusForbidden},
		{name: "no roles", roles: nil, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := user(tt.roles...)

			guard := mockUsecase.NewMockGuardUsecase(t)
			guard.EXPECT().Authenticate(mock.Anything, testSID, mock.Anything).
				Return(usecase.NavigationDecision{Kind: usecase.DecisionAllow, User: u}, nil).Once()
			guard.EXPECT().VerifyStatus(mock.Anything, testSID, u).
				Return(usecase.NavigationDecision{Kind: usecase.DecisionAllow, User: u}, nil).Once()

			rec := get(newAdminEcho(guard))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "u1", rec.Body.String())
			}
		})
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"mycloudmen/internal/delivery/api/response"
	deliverycontext "mycloudmen/internal/delivery/context"
	"mycloudmen/internal/domain/entity"
	domainerrors "mycloudmen/internal/domain/errors"
	"mycloudmen/internal/domain/repository"
	"mycloudmen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	IdentityUC   usecase.IdentityUsecase
	ProfileUC    usecase.ProfileUsecase
	ReconcileUC  usecase.ReconciliationUsecase
	GuardUC      usecase.GuardUsecase
	SessionStore repository.SessionStore
	Logger       *slog.Logger
}

// SessionHandler serves the SPA-facing session and navigation endpoints.
type SessionHandler struct {
	identityUC  usecase.IdentityUsecase
	profileUC   usecase.ProfileUsecase
	reconcileUC usecase.ReconciliationUsecase
	guardUC     usecase.GuardUsecase
	store       repository.SessionStore
	logger      *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		identityUC:  params.IdentityUC,
		profileUC:   params.ProfileUC,
		reconcileUC: params.ReconcileUC,
		guardUC:     params.GuardUC,
		store:       params.SessionStore,
		logger:      params.Logger,
	}
}

// SessionResponse is the SPA's view of its session.
type SessionResponse struct {
	Authenticated bool                   `json:"authenticated"`
	User          *entity.User           `json:"user,omitempty"`
	Redirect      *entity.RedirectResult `json:"redirect,omitempty"`
	// Error is the last authentication failure, returned once.
	Error *entity.AuthError `json:"error,omitempty"`
}

// NavigationRequest is the query of a navigation check.
type NavigationRequest struct {
	Path string `query:"path" validate:"required,startswith=/"`
}

// GetSession returns the session state and consumes any pending auth error.
func (h *SessionHandler) GetSession(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := deliverycontext.GetSessionID(c)

	resp := SessionResponse{Authenticated: h.identityUC.IsAuthenticated(ctx, sessionID)}

	authErr, err := h.store.PopAuthError(ctx, sessionID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).WarnContext(ctx, "Failed to load auth error", slog.Any("error", err))
	}
	resp.Error = authErr

	if resp.Authenticated {
		user, err := h.profileUC.Current(ctx, sessionID)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		resp.User = user
	}

	return response.Success(c, http.StatusOK, resp)
}

// RefreshSession refetches the profile and reports any critical redirect it causes.
func (h *SessionHandler) RefreshSession(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := deliverycontext.GetSessionID(c)

	if !h.identityUC.IsAuthenticated(ctx, sessionID) {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	user, err := h.profileUC.Refresh(ctx, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	redirect, err := h.reconcileUC.CriticalRedirect(ctx, user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionResponse{
		Authenticated: true,
		User:          user,
		Redirect:      redirect,
	})
}

// Navigation answers whether the session may show path.
func (h *SessionHandler) Navigation(c echo.Context) error {
	var req NavigationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid navigation query")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	decision, err := h.guardUC.Evaluate(c.Request().Context(), deliverycontext.GetSessionID(c), req.Path)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, decision)
}

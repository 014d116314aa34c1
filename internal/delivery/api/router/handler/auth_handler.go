package handler

import (
	"log/slog"
	"net/http"

	"mycloudmen/internal/delivery/api/response"
	deliverycontext "mycloudmen/internal/delivery/context"
	"mycloudmen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// AuthHandler serves the browser-facing login, callback and logout endpoints.
// They answer with redirects, never JSON errors.
type AuthHandler struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// Login redirects the browser to the identity provider.
func (h *AuthHandler) Login(c echo.Context) error {
	authURL, err := h.identityUC.Login(c.Request().Context(), deliverycontext.GetSessionID(c), c.QueryParam("returnTo"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Redirect(http.StatusFound, authURL)
}

// Callback completes the code flow. Failures come back as a redirect to the
// error page.
func (h *AuthHandler) Callback(c echo.Context) error {
	var params usecase.CallbackParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &params); err != nil {
		return response.BadRequest(c, "INVALID_CALLBACK", "Invalid callback parameters")
	}

	redirect, err := h.identityUC.HandleCallback(c.Request().Context(), deliverycontext.GetSessionID(c), params)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Redirect(http.StatusFound, redirect.URL())
}

// LogoutResponse tells an XHR caller where to send the browser.
type LogoutResponse struct {
	RedirectURL string `json:"redirectUrl"`
}

// Logout clears the session. GET redirects, POST answers with the URL.
func (h *AuthHandler) Logout(c echo.Context) error {
	next, err := h.identityUC.Logout(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if c.Request().Method == http.MethodGet {
		return c.Redirect(http.StatusFound, next)
	}

	return response.Success(c, http.StatusOK, LogoutResponse{RedirectURL: next})
}

package handler

import (
	"log/slog"
	"net/http"

	"mycloudmen/internal/delivery/api/middleware"
	"mycloudmen/internal/delivery/api/response"
	"mycloudmen/internal/domain/entity"
	"mycloudmen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler wraps the backend user administration endpoints.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// UpdateStatusRequest represents the request body for changing a user's status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING ACTIVATED DEACTIVATED REJECTED"`
}

// UpdateRolesRequest represents the request body for replacing a user's roles
type UpdateRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,oneof=SYSTEM_ADMIN COMPANY_ADMIN COMPANY_USER"`
}

// RejectRequest represents the request body for rejecting a registration
type RejectRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

func actor(c echo.Context) *entity.User {
	user, _ := middleware.GetUser(c)

	return user
}

// UpdateStatus handles PATCH /api/admin/users/:id/status
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.adminUC.UpdateUserStatus(c.Request().Context(), actor(c), c.Param("id"), entity.UserStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateRoles handles PATCH /api/admin/users/:id/roles
func (h *AdminHandler) UpdateRoles(c echo.Context) error {
	var req UpdateRolesRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid roles input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.adminUC.UpdateUserRoles(c.Request().Context(), actor(c), c.Param("id"), entity.RolesFromStrings(req.Roles))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// Approve handles POST /api/admin/users/:id/approve
func (h *AdminHandler) Approve(c echo.Context) error {
	user, err := h.adminUC.ApproveUser(c.Request().Context(), actor(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// Reject handles POST /api/admin/users/:id/reject
func (h *AdminHandler) Reject(c echo.Context) error {
	var req RejectRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reject input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.adminUC.RejectUser(c.Request().Context(), actor(c), c.Param("id"), req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// LastLogin handles GET /api/admin/users/:id/last-login
func (h *AdminHandler) LastLogin(c echo.Context) error {
	last, err := h.adminUC.LastLogin(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, last)
}

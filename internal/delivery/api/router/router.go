// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mycloudmen/internal/delivery/api/middleware"
	"mycloudmen/internal/delivery/api/router/handler"
	globalmiddleware "mycloudmen/internal/delivery/middleware"
	"mycloudmen/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	SessionHandler *handler.SessionHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
	LoginLimiter   *globalmiddleware.LoginRateLimiter
	BackendProxy   *BackendProxy
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	sessionHandler *handler.SessionHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
	loginLimiter   *globalmiddleware.LoginRateLimiter
	backendProxy   *BackendProxy
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		sessionHandler: params.SessionHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
		loginLimiter:   params.LoginLimiter,
		backendProxy:   params.BackendProxy,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Browser-facing auth flow
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/login", r.authHandler.Login, r.loginLimiter.Limit)
		authGroup.GET("/callback", r.authHandler.Callback)
		authGroup.GET("/logout", r.authHandler.Logout)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	api := e.Group("/api")

	sessionGroup := api.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.POST("/refresh", r.sessionHandler.RefreshSession)
	}
	api.GET("/navigation", r.sessionHandler.Navigation)

	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireActive)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleSystemAdmin, entity.RoleCompanyAdmin))
	{
		adminGroup.PATCH("/users/:id/status", r.adminHandler.UpdateStatus)
		adminGroup.PATCH("/users/:id/roles", r.adminHandler.UpdateRoles)
		adminGroup.POST("/users/:id/approve", r.adminHandler.Approve)
		adminGroup.POST("/users/:id/reject", r.adminHandler.Reject)
		adminGroup.GET("/users/:id/last-login", r.adminHandler.LastLogin)
	}

	backendGroup := api.Group("/backend")
	backendGroup.Use(r.authMiddleware.Authenticate)
	backendGroup.Use(r.backendProxy.Middlewares()...)
}

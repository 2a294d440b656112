// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/router/handler"
	deliverymiddleware "backoffice/internal/delivery/middleware"
	"backoffice/internal/domain/entity"
	"backoffice/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ManagerHandler  *handler.ManagerHandler
	AreaHandler     *handler.AreaHandler
	OfferingHandler *handler.OfferingHandler
	StatsHandler    *handler.StatsHandler
	SettingsHandler *handler.SettingsHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimiter     *deliverymiddleware.RateLimiter
	Metrics         *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	managerHandler  *handler.ManagerHandler
	areaHandler     *handler.AreaHandler
	offeringHandler *handler.OfferingHandler
	statsHandler    *handler.StatsHandler
	settingsHandler *handler.SettingsHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimiter     *deliverymiddleware.RateLimiter
	metrics         *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		managerHandler:  params.ManagerHandler,
		areaHandler:     params.AreaHandler,
		offeringHandler: params.OfferingHandler,
		statsHandler:    params.StatsHandler,
		settingsHandler: params.SettingsHandler,
		authMiddleware:  params.AuthMiddleware,
		rateLimiter:     params.RateLimiter,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Admin auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.rateLimiter.Handle)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimiter.Handle)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate, r.authMiddleware.RequireOperator)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// Manager self-service
	e.POST("/managers/auth/login", r.managerHandler.Login, r.rateLimiter.Handle)
	e.GET("/managers/me", r.managerHandler.Me,
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleManager),
	)

	// Everything below is back-office administration
	operatorOnly := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireOperator}

	managersGroup := e.Group("/managers", operatorOnly...)
	{
		managersGroup.GET("", r.managerHandler.ListManagers)
		managersGroup.POST("", r.managerHandler.CreateManager)
		managersGroup.POST("/badge/verify", r.managerHandler.VerifyBadge)
		managersGroup.GET("/:id", r.managerHandler.GetManager)
		managersGroup.PATCH("/:id", r.managerHandler.UpdateManager)
		managersGroup.PUT("/:id", r.managerHandler.UpdateManager)
		managersGroup.DELETE("/:id", r.managerHandler.DeleteManager)
		managersGroup.GET("/:id/badge", r.managerHandler.Badge)
	}

	areasGroup := e.Group("/areas", operatorOnly...)
	{
		areasGroup.GET("", r.areaHandler.ListAreas)
		areasGroup.POST("", r.areaHandler.CreateArea)
		areasGroup.GET("/:id", r.areaHandler.GetArea)
		areasGroup.PATCH("/:id", r.areaHandler.UpdateArea)
		areasGroup.PUT("/:id", r.areaHandler.UpdateArea)
		areasGroup.DELETE("/:id", r.areaHandler.DeleteArea)
	}

	servicesGroup := e.Group("/services", operatorOnly...)
	{
		servicesGroup.GET("", r.offeringHandler.ListOfferings)
		servicesGroup.POST("", r.offeringHandler.CreateOffering)
		servicesGroup.GET("/:id", r.offeringHandler.GetOffering)
		servicesGroup.PATCH("/:id", r.offeringHandler.UpdateOffering)
		servicesGroup.PUT("/:id", r.offeringHandler.UpdateOffering)
		servicesGroup.DELETE("/:id", r.offeringHandler.DeleteOffering)
	}

	e.GET("/stats/dashboard", r.statsHandler.Dashboard, operatorOnly...)

	settingsGroup := e.Group("/settings", operatorOnly...)
	{
		settingsGroup.GET("", r.settingsHandler.GetSettings)
		settingsGroup.PATCH("", r.settingsHandler.UpdateSettings)
		settingsGroup.POST("/change-password", r.settingsHandler.ChangePassword)
	}
}

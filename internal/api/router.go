package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/kate00gas/restaurant-delivery/internal/api/alert"
	"github.com/kate00gas/restaurant-delivery/internal/api/handler"
	"github.com/kate00gas/restaurant-delivery/internal/api/middleware"
	"github.com/kate00gas/restaurant-delivery/internal/api/view"
	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
	"github.com/kate00gas/restaurant-delivery/internal/core/ports"
	"github.com/kate00gas/restaurant-delivery/internal/core/service"
)

// RouterDeps carries everything the route table needs.
type RouterDeps struct {
	API          ports.OrderingAPI
	Sessions     *service.Sessions
	Gate         *service.Gate
	Alerts       *alert.Alerts
	SessionStore handler.Pinger
	Backend      handler.Pinger
	CookieName   string
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("build renderer: %w", err)
	}
	e.Renderer = renderer

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ordering_frontend"))
	e.Use(middleware.Session(deps.Sessions, deps.CookieName))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.API, deps.Sessions, deps.Alerts, deps.Log)
	restaurantHandler := handler.NewRestaurantHandler(deps.API, deps.Alerts, deps.Log)
	orderHandler := handler.NewOrderHandler(deps.API, deps.Alerts, deps.Log)
	adminHandler := handler.NewAdminHandler(deps.API, deps.Alerts, deps.Log)
	healthHandler := handler.NewHealthHandler(deps.SessionStore, deps.Backend)

	requireUser := middleware.RequireRole(deps.Gate, deps.Alerts, domain.AccessUser)
	requireAdmin := middleware.RequireRole(deps.Gate, deps.Alerts, domain.AccessAdmin)

	// --- Public views ---
	e.GET("/", restaurantHandler.Listing)
	e.GET("/restaurants/:id", restaurantHandler.Menu)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)
	e.POST("/logout", authHandler.Logout)

	// --- Customer views ---
	e.POST("/orders", orderHandler.Create, requireUser)
	e.GET("/orders", orderHandler.History, requireUser)

	// --- Management views ---
	admin := e.Group("/admin", requireAdmin)
	admin.GET("", adminHandler.Panel)
	admin.GET("/orders", adminHandler.Orders)
	admin.POST("/orders/:id/status", adminHandler.UpdateStatus)
	admin.GET("/orders/lookup", adminHandler.Lookup)
	admin.GET("/restaurants", adminHandler.Restaurants)
	admin.POST("/restaurants", adminHandler.CreateRestaurant)
	admin.POST("/restaurants/:id/delete", adminHandler.DeleteRestaurant)
	admin.GET("/restaurants/:id/menu", adminHandler.Menu)
	admin.POST("/menu-items", adminHandler.CreateMenuItem)
	admin.POST("/menu-items/:id/delete", adminHandler.DeleteMenuItem)
	admin.GET("/users", adminHandler.Users)

	// --- Probes and metrics (no session required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness)     // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}

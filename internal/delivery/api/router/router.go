// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"beerhaus/config"
	"beerhaus/internal/delivery/api/middleware"
	"beerhaus/internal/delivery/api/response"
	"beerhaus/internal/delivery/api/router/handler"
	"beerhaus/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	SessionHandler      *handler.SessionHandler
	ProfileHandler      *handler.ProfileHandler
	AnnouncementHandler *handler.AnnouncementHandler
	MemberHandler       *handler.MemberHandler
	FileHandler         *handler.FileHandler
	SessionMiddleware   *middleware.SessionMiddleware
	Gatherer            prometheus.Gatherer
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	sessionHandler      *handler.SessionHandler
	profileHandler      *handler.ProfileHandler
	announcementHandler *handler.AnnouncementHandler
	memberHandler       *handler.MemberHandler
	fileHandler         *handler.FileHandler
	sessionMiddleware   *middleware.SessionMiddleware
	gatherer            prometheus.Gatherer
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		sessionHandler:      params.SessionHandler,
		profileHandler:      params.ProfileHandler,
		announcementHandler: params.AnnouncementHandler,
		memberHandler:       params.MemberHandler,
		fileHandler:         params.FileHandler,
		sessionMiddleware:   params.SessionMiddleware,
		gatherer:            params.Gatherer,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check and scrape endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.gatherer)))

	// Signed downloads for the local file store
	if r.fileHandler.Enabled() {
		e.GET("/files", r.fileHandler.ServeSigned)
	}

	// Auth routes, rate limited per client IP
	authGroup := e.Group("/auth")
	authGroup.Use(r.authRateLimiter())
	authGroup.Use(r.sessionMiddleware.Load)
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/token", r.authHandler.LoginWithToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Navigation state
	sessionGroup := e.Group("/session")
	sessionGroup.Use(r.sessionMiddleware.Load)
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.POST("/navigate", r.sessionHandler.Navigate)
		sessionGroup.GET("/view", r.sessionHandler.View)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.sessionMiddleware.Load)
	apiV1.Use(r.sessionMiddleware.RequireUser) // All API v1 routes require a logged-in member

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.SaveProfile)
	}

	announcementsGroup := apiV1.Group("/announcements")
	{
		announcementsGroup.GET("", r.announcementHandler.ListAnnouncements)
		announcementsGroup.POST("", r.announcementHandler.CreateAnnouncement)
		announcementsGroup.POST("/:id/comments", r.announcementHandler.AddComment)
	}

	membersGroup := apiV1.Group("/members")
	{
		membersGroup.GET("", r.memberHandler.ListMembers)
		membersGroup.GET("/:id/qr", r.memberHandler.ContactQRCode)
	}
}

func (r *router) authRateLimiter() echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(r.config.RateLimit.AuthPerSecond),
		Burst: r.config.RateLimit.AuthBurst,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Error(c, http.StatusForbidden, "RATE_LIMIT_IDENTIFIER", "Unable to identify client", nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.TooManyRequests(c, "RATE_LIMITED", "Too many attempts, please slow down")
		},
	})
}

package routes

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/barwaaqo-agri/be-site-backend/config"
	"github.com/barwaaqo-agri/be-site-backend/domain/auth"
	"github.com/barwaaqo-agri/be-site-backend/domain/contact"
	"github.com/barwaaqo-agri/be-site-backend/domain/gallery"
	"github.com/barwaaqo-agri/be-site-backend/domain/health"
	"github.com/barwaaqo-agri/be-site-backend/domain/hero"
	"github.com/barwaaqo-agri/be-site-backend/domain/mission"
	"github.com/barwaaqo-agri/be-site-backend/domain/news"
	"github.com/barwaaqo-agri/be-site-backend/domain/product"
	"github.com/barwaaqo-agri/be-site-backend/domain/public"
	"github.com/barwaaqo-agri/be-site-backend/domain/settings"
	"github.com/barwaaqo-agri/be-site-backend/domain/user"
	"github.com/barwaaqo-agri/be-site-backend/middleware"
)

func RegisterRoutes(e *echo.Echo) {
	// Health endpoints
	e.GET("/health", health.HealthHandler)
	e.GET("/health/live", health.LivenessHandler)
	e.GET("/health/ready", health.ReadinessHandler)
	e.GET("/health/stats", health.StatsHandler)

	loginLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		MaxRequests:   10,
		Window:        time.Minute,
		BlockDuration: 5 * time.Minute,
		DB:            config.DB.DB,
	})
	contactLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		MaxRequests:   5,
		Window:        time.Minute,
		BlockDuration: 15 * time.Minute,
		DB:            config.DB.DB,
	})

	// Auth
	e.POST("/auth/login", auth.LoginHandler, loginLimiter)
	e.POST("/auth/logout", auth.LogoutHandler, middleware.JWTMiddleware, middleware.NoStoreMiddleware)
	e.GET("/auth/me", auth.MeHandler, middleware.JWTMiddleware, middleware.NoStoreMiddleware)

	// Public localized reads plus the contact form
	publicGroup := e.Group("/public")
	publicGroup.GET("/hero", public.HeroHandler)
	publicGroup.GET("/mission", public.MissionHandler)
	publicGroup.GET("/products", public.ProductsHandler)
	publicGroup.GET("/gallery", public.GalleryHandler)
	publicGroup.GET("/news", public.NewsHandler)
	publicGroup.GET("/contact", public.ContactHandler)
	publicGroup.GET("/nav", public.NavHandler)
	publicGroup.POST("/contact/messages", contact.SubmitMessageHandler, contactLimiter)

	// Admin editor API - everything behind the session cookie, nothing cached
	adminGroup := e.Group("/admin")
	adminGroup.Use(middleware.JWTMiddleware, middleware.NoStoreMiddleware)

	adminGroup.GET("/hero", hero.GetHandler)
	adminGroup.PUT("/hero", hero.SaveHandler)
	adminGroup.GET("/mission", mission.GetHandler)
	adminGroup.PUT("/mission", mission.SaveHandler)
	adminGroup.GET("/products", product.GetHandler)
	adminGroup.PUT("/products", product.SaveHandler)
	adminGroup.GET("/gallery", gallery.GetHandler)
	adminGroup.PUT("/gallery", gallery.SaveHandler)
	adminGroup.GET("/news", news.GetHandler)
	adminGroup.PUT("/news", news.SaveHandler)
	adminGroup.GET("/contact", contact.GetHandler)
	adminGroup.PUT("/contact", contact.SaveHandler)

	adminGroup.GET("/messages", contact.ListMessagesHandler)
	adminGroup.PUT("/messages/:id/read", contact.MarkMessageReadHandler)
	adminGroup.DELETE("/messages/:id", contact.DeleteMessageHandler)

	adminGroup.GET("/settings", settings.GetHandler)
	adminGroup.PUT("/settings/languages", settings.SaveLanguagesHandler)
	adminGroup.PUT("/settings/menus", settings.SaveMenusHandler)

	adminGroup.GET("/users", user.ListHandler)
	adminGroup.POST("/users", user.CreateHandler)
	adminGroup.DELETE("/users/:id", user.DeleteHandler)
	adminGroup.PUT("/users/password", user.ChangePasswordHandler)
}

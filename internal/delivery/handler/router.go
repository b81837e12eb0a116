package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"contact-service/internal/application/services"
	"contact-service/internal/infrastructure"
)

// Router wires handlers and middleware into an echo instance.
type Router struct {
	Auth     *services.AuthService
	Contacts *services.ContactService
	Health   Pinger
	Limiter  *infrastructure.RateLimiter
}

func (r *Router) Build() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	authHandler := NewAuthHandler(r.Auth)
	contactHandler := NewContactHandler(r.Contacts)
	healthHandler := NewHealthHandler(r.Health)

	api := e.Group("/api")
	api.GET("/healthchecker", healthHandler.Check)

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/refresh_token", authHandler.Refresh)

	contacts := api.Group("/contacts", AuthMiddleware(r.Auth))
	contacts.GET("", contactHandler.List, RateLimitMiddleware(r.Limiter))
	contacts.GET("/:id", contactHandler.Get)
	contacts.POST("", contactHandler.Create)
	contacts.PUT("/:id", contactHandler.Update)
	contacts.DELETE("/:id", contactHandler.Delete)

	return e
}

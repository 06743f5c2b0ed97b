package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/panelpress/panelpress/pkg/storage"
)

// RegisterRoutes registers auth routes and returns the auth service so the
// server can build middleware from it.
func RegisterRoutes(e *echo.Echo, st storage.Storage, jwtSecret string) *Service {
	authService := NewService(st, jwtSecret)

	h := &handler{authService: authService}

	g := e.Group("/auth")
	g.POST("/signup", h.signup)
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
	g.GET("/me", h.me)

	return authService
}

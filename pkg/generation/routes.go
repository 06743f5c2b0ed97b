package generation

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers generation routes on a pre-configured
// (authenticated) group.
func RegisterRoutesWithGroup(g *echo.Group, svc *Service) {
	h := &handler{svc: svc}

	g.POST("", h.generate)
	g.GET("/:id", h.status)
	g.DELETE("/:id", h.cancel)
}

package checkout

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers checkout routes on a pre-configured
// (authenticated) group.
func RegisterRoutesWithGroup(g *echo.Group, svc *Service) {
	h := &handler{svc: svc}

	g.POST("/session", h.createSession)
	g.GET("/orders/:sessionId", h.orderStatus)
}

package comics

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers comic routes on a pre-configured
// (authenticated) group.
func RegisterRoutesWithGroup(g *echo.Group, store *Store) {
	h := &handler{store: store}

	// Comic CRUD
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/current", h.current)
	g.PUT("/current/:id", h.setCurrent)
	g.GET("/:id", h.retrieve)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.POST("/:id/publish", h.publish)

	// Panels
	g.POST("/:id/panels", h.addPanel)
	g.PUT("/:id/panels/:panelId", h.updatePanel)
	g.DELETE("/:id/panels/:panelId", h.removePanel)

	// Text bubbles
	g.POST("/:id/panels/:panelId/bubbles", h.addTextBubble)
	g.PUT("/:id/panels/:panelId/bubbles/:bubbleId", h.updateTextBubble)
	g.DELETE("/:id/panels/:panelId/bubbles/:bubbleId", h.removeTextBubble)

	// Captions
	g.POST("/:id/panels/:panelId/captions", h.addCaption)
	g.PUT("/:id/panels/:panelId/captions/:captionId", h.updateCaption)
	g.DELETE("/:id/panels/:panelId/captions/:captionId", h.removeCaption)
}

package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/schedule")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("/slots", h.Slots)
	}
}

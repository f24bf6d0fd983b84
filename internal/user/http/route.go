package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *UserHandler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/user")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("/email", h.Email)
	}
}

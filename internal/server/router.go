package server

import (
	"github.com/gin-gonic/gin"
)

// NewRouter wires all dashboard endpoints. Every route is a read: the
// service never writes anywhere the dashboard can reach.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", Health)

	api := r.Group("/api")
	{
		api.GET("/dashboard", h.Dashboard)
		api.GET("/products", h.Products)
		api.GET("/chart", h.Chart)
		api.GET("/ticker", h.Ticker)
		api.GET("/news", h.News)
	}

	return r
}

// Health handles the /healthz endpoint for service health checks.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(200, gin.H{"status": "ok"})
}

package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes builds the dashboard router.
func SetupRoutes(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Dashboard page
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", dashboardPage)
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/info", h.Info)
		api.POST("/download", h.Download)
		api.GET("/tasks", h.Tasks)
		api.GET("/tasks/:id", h.Task)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	return router
}

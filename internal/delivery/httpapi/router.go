package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(middleware *Middleware, unlockHandler *UnlockRequestHandler, entryHandler *TimeEntryHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthRequired())

	org := api.Group("/organizations/:orgID")
	org.Use(middleware.ResolveMember())
	{
		org.GET("/unlock-requests", unlockHandler.List)
		org.GET("/unlock-requests/:id", unlockHandler.Get)
		org.POST("/unlock-requests", unlockHandler.Create)
		org.POST("/unlock-requests/:id/approve", unlockHandler.Approve)
		org.POST("/unlock-requests/:id/reject", unlockHandler.Reject)
		org.DELETE("/unlock-requests/:id", unlockHandler.Delete)

		org.POST("/time-entries", entryHandler.Create)
		org.PUT("/time-entries/:id", entryHandler.Update)
		org.DELETE("/time-entries/:id", entryHandler.Delete)
		org.PATCH("/time-entries", entryHandler.BulkUpdate)
		org.DELETE("/time-entries", entryHandler.BulkDelete)
	}

	return r
}

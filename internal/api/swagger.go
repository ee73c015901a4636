package api

import (
	"net/http"

	_ "argus-worker-go/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (s *Server) setupSwagger() {
	s.router.GET("/api/info", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title":       "Argus Analysis Worker API",
			"version":     s.cfg.Version,
			"description": "Camera frame analysis worker: object detection, situation summaries and deduplicated alerts",
			"swagger_ui":  "/docs/index.html",
			"endpoints": gin.H{
				"health":        "/health",
				"worker_info":   "/",
				"analyze_frame": "/api/analyze-frame",
				"batch_analyze": "/api/batch-analyze",
				"camera_status": "/api/camera-status",
				"cameras":       "/api/cameras",
				"system":        "/system",
			},
			"worker_id": s.cfg.WorkerID,
			"port":      s.cfg.Port,
		})
	})

	s.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.router.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
}

package api

func (s *Server) setupRoutes() {
	s.router.GET("/", s.healthHandler.WorkerInfo)
	s.router.GET("/health", s.healthHandler.HealthCheck)

	api := s.router.Group("/api")
	{
		api.POST("/analyze-frame", s.analyzeHandler.AnalyzeFrame)
		api.POST("/batch-analyze", s.analyzeHandler.BatchAnalyze)
		api.POST("/camera-status", s.cameraHandler.UpdateStatus)
		api.GET("/cameras", s.cameraHandler.ListCameras)
	}

	system := s.router.Group("/system")
	{
		system.GET("/stats", s.systemHandler.GetStats)
	}
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"argus-worker-go/internal/api/handlers"
	"argus-worker-go/internal/config"
	"argus-worker-go/internal/services/analysis"
	"argus-worker-go/internal/services/status"
	"argus-worker-go/internal/services/vision"
)

type Server struct {
	cfg    *config.Config
	router *gin.Engine
	server *http.Server

	healthHandler  *handlers.HealthHandler
	analyzeHandler *handlers.AnalyzeHandler
	cameraHandler  *handlers.CameraHandler
	systemHandler  *handlers.SystemHandler
}

func NewServer(cfg *config.Config, visionClient *vision.Client, analysisSvc *analysis.Service, statusSvc *status.Service) *Server {
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	s := &Server{
		cfg:            cfg,
		router:         router,
		healthHandler:  handlers.NewHealthHandler(cfg.WorkerID, cfg.Version),
		analyzeHandler: handlers.NewAnalyzeHandler(cfg, visionClient, analysisSvc),
		cameraHandler:  handlers.NewCameraHandler(statusSvc),
		systemHandler:  handlers.NewSystemHandler(cfg.WorkerID, analysisSvc, statusSvc),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupSwagger()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	return s
}

func (s *Server) Start() error {
	log.Info().Int("port", s.cfg.Port).Msg("Starting Argus worker API")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"argus-worker-go/internal/services/analysis"
	"argus-worker-go/internal/services/status"
)

type SystemHandler struct {
	workerID  string
	startedAt time.Time
	analysis  *analysis.Service
	status    *status.Service
}

func NewSystemHandler(workerID string, analysisSvc *analysis.Service, statusSvc *status.Service) *SystemHandler {
	return &SystemHandler{
		workerID:  workerID,
		startedAt: time.Now(),
		analysis:  analysisSvc,
		status:    statusSvc,
	}
}

type SystemStatsResponse struct {
	WorkerID         string `json:"worker_id"`
	UptimeSeconds    int64  `json:"uptime_seconds"`
	ActiveCameras    int    `json:"active_cameras"`
	AlertHistorySize int    `json:"alert_history_size"`
}

// @Summary Worker statistics
// @Description Get runtime statistics for the worker
// @Tags system
// @Accept json
// @Produce json
// @Success 200 {object} SystemStatsResponse
// @Router /system/stats [get]
func (h *SystemHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, SystemStatsResponse{
		WorkerID:         h.workerID,
		UptimeSeconds:    int64(time.Since(h.startedAt).Seconds()),
		ActiveCameras:    h.status.Count(),
		AlertHistorySize: h.analysis.HistorySize(),
	})
}

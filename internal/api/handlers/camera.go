package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"argus-worker-go/internal/models"
	"argus-worker-go/internal/services/status"
)

type CameraHandler struct {
	status *status.Service
}

func NewCameraHandler(statusSvc *status.Service) *CameraHandler {
	return &CameraHandler{status: statusSvc}
}

type CameraStatusResponse struct {
	Status     string `json:"status" example:"received"`
	Timestamp  string `json:"timestamp"`
	ServerTime string `json:"server_time" example:"14:32:05"`
}

// @Summary Camera heartbeat
// @Description Record a camera heartbeat and status update
// @Tags cameras
// @Accept json
// @Produce json
// @Param request body models.CameraStatus true "Camera status report"
// @Success 200 {object} CameraStatusResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/camera-status [post]
func (h *CameraHandler) UpdateStatus(c *gin.Context) {
	var report models.CameraStatus
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status payload", Details: err.Error()})
		return
	}

	h.status.Update(report)

	now := time.Now()
	c.JSON(http.StatusOK, CameraStatusResponse{
		Status:     "received",
		Timestamp:  now.Format(time.RFC3339),
		ServerTime: now.Format("15:04:05"),
	})
}

// @Summary Active cameras
// @Description List cameras with a fresh heartbeat
// @Tags cameras
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/cameras [get]
func (h *CameraHandler) ListCameras(c *gin.Context) {
	active := h.status.Active()
	c.JSON(http.StatusOK, gin.H{
		"cameras": active,
		"count":   len(active),
	})
}

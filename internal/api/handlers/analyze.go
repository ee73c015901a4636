package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"argus-worker-go/internal/config"
	"argus-worker-go/internal/helpers"
	"argus-worker-go/internal/models"
	"argus-worker-go/internal/services/analysis"
	"argus-worker-go/internal/services/vision"
)

// AnalyzeHandler serves the frame analysis endpoints. The vision
// client may be nil when the provider is not configured; analysis
// endpoints then answer 503 while the rest of the API stays up.
type AnalyzeHandler struct {
	cfg      *config.Config
	vision   *vision.Client
	analysis *analysis.Service
}

func NewAnalyzeHandler(cfg *config.Config, visionClient *vision.Client, analysisSvc *analysis.Service) *AnalyzeHandler {
	return &AnalyzeHandler{
		cfg:      cfg,
		vision:   visionClient,
		analysis: analysisSvc,
	}
}

type AnalyzeFrameRequest struct {
	Frame               string  `json:"frame" binding:"required"`
	CameraID            string  `json:"camera_id"`
	ConfidenceThreshold float64 `json:"confidence_threshold"`
	MaxObjects          int     `json:"max_objects"`
}

type BatchAnalyzeRequest struct {
	Frames              []string `json:"frames" binding:"required"`
	CameraID            string   `json:"camera_id"`
	ConfidenceThreshold float64  `json:"confidence_threshold"`
	MaxObjects          int      `json:"max_objects"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// @Summary Analyze a camera frame
// @Description Run object detection, situation analysis and alert evaluation on a base64 encoded frame
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body AnalyzeFrameRequest true "Frame to analyze"
// @Success 200 {object} models.FrameAnalysis
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/analyze-frame [post]
func (h *AnalyzeHandler) AnalyzeFrame(c *gin.Context) {
	var req AnalyzeFrameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No frame data provided", Details: err.Error()})
		return
	}

	if h.vision == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Vision provider not configured"})
		return
	}

	entities, err := h.detectFromFrame(c.Request.Context(), req.Frame, req.ConfidenceThreshold, req.MaxObjects)
	if err != nil {
		if _, ok := err.(*frameDecodeError); ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid image data", Details: err.Error()})
			return
		}
		log.Error().Err(err).Str("camera_id", req.CameraID).Msg("Frame analysis failed")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Analysis failed", Details: err.Error()})
		return
	}

	result := h.analysis.AnalyzeFrame(req.CameraID, entities, time.Now())
	c.JSON(http.StatusOK, result)
}

// @Summary Analyze multiple frames
// @Description Run the analysis pipeline over a batch of base64 encoded frames
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body BatchAnalyzeRequest true "Frames to analyze"
// @Success 200 {object} map[string][]models.BatchFrameResult
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/batch-analyze [post]
func (h *AnalyzeHandler) BatchAnalyze(c *gin.Context) {
	var req BatchAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No frames provided", Details: err.Error()})
		return
	}

	if h.vision == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Vision provider not configured"})
		return
	}

	results := make([]models.BatchFrameResult, 0, len(req.Frames))
	for i, frame := range req.Frames {
		entities, err := h.detectFromFrame(c.Request.Context(), frame, req.ConfidenceThreshold, req.MaxObjects)
		if err != nil {
			results = append(results, models.BatchFrameResult{FrameIndex: i, Error: err.Error()})
			continue
		}

		analysisResult := h.analysis.AnalyzeFrame(req.CameraID, entities, time.Now())
		results = append(results, models.BatchFrameResult{FrameIndex: i, Analysis: &analysisResult})
	}

	c.JSON(http.StatusOK, gin.H{"batch_results": results})
}

// detectFromFrame decodes a base64 frame, normalizes its size and runs
// provider detection on it.
func (h *AnalyzeHandler) detectFromFrame(ctx context.Context, frame string, confidenceThreshold float64, maxObjects int) ([]models.DetectedEntity, error) {
	mat, err := helpers.DecodeBase64Frame(frame)
	if err != nil {
		return nil, &frameDecodeError{cause: err}
	}
	defer mat.Close()

	helpers.DownscaleIfNeeded(&mat, h.cfg.MaxImageWidth, h.cfg.MaxImageHeight)

	imageData, err := helpers.EncodeJPEG(mat)
	if err != nil {
		return nil, &frameDecodeError{cause: err}
	}

	return h.vision.DetectObjects(ctx, imageData, confidenceThreshold, maxObjects)
}

type frameDecodeError struct {
	cause error
}

func (e *frameDecodeError) Error() string {
	return fmt.Sprintf("frame decode failed: %v", e.cause)
}

func (e *frameDecodeError) Unwrap() error {
	return e.cause
}

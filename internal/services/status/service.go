package status

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"argus-worker-go/internal/models"
)

// Service is a TTL-expiring registry of camera heartbeats. Cameras
// that stop reporting fall out of the active set automatically.
type Service struct {
	cameras *cache.Cache
}

func NewService(ttl time.Duration) *Service {
	return &Service{
		cameras: cache.New(ttl, ttl),
	}
}

// Update records a heartbeat for a camera
func (s *Service) Update(report models.CameraStatus) {
	if report.CameraID == "" {
		report.CameraID = "default"
	}
	if report.ReportedAt.IsZero() {
		report.ReportedAt = time.Now()
	}

	s.cameras.SetDefault(report.CameraID, report)

	log.Debug().
		Str("camera_id", report.CameraID).
		Str("status", report.Status).
		Msg("Camera status updated")
}

// Get returns the last reported status for a camera, if still fresh
func (s *Service) Get(cameraID string) (models.CameraStatus, bool) {
	v, ok := s.cameras.Get(cameraID)
	if !ok {
		return models.CameraStatus{}, false
	}
	return v.(models.CameraStatus), true
}

// Active returns all cameras with a fresh heartbeat
func (s *Service) Active() []models.CameraStatus {
	items := s.cameras.Items()
	active := make([]models.CameraStatus, 0, len(items))
	for _, item := range items {
		active = append(active, item.Object.(models.CameraStatus))
	}
	return active
}

// Count returns the number of cameras with a fresh heartbeat
func (s *Service) Count() int {
	return s.cameras.ItemCount()
}

package analysis

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"argus-worker-go/internal/models"
	"argus-worker-go/internal/services/alerting"
	"argus-worker-go/internal/services/situation"
)

// Service runs the per-frame analysis pipeline: entities are
// aggregated into a situation summary, alert rules are evaluated, and
// candidates pass through the dedup history. Only the alerting service
// carries state across frames.
type Service struct {
	analyzer *situation.Analyzer
	alerting *alerting.Service
}

func NewService(analyzer *situation.Analyzer, alertSvc *alerting.Service) *Service {
	return &Service{
		analyzer: analyzer,
		alerting: alertSvc,
	}
}

// AnalyzeFrame produces the complete analysis for one frame's entities
func (s *Service) AnalyzeFrame(cameraID string, entities []models.DetectedEntity, now time.Time) models.FrameAnalysis {
	summary := s.analyzer.Analyze(entities)
	alerts := s.alerting.Process(cameraID, entities, summary, now)

	result := models.FrameAnalysis{
		AnalysisID:      "ana_" + uuid.NewString(),
		Timestamp:       now,
		ObjectsDetected: entities,
		Situation:       summary,
		Alerts:          alerts,
		Summary: models.FrameSummary{
			TotalObjects: len(entities),
			PeopleCount:  summary.PeopleCount,
			AlertLevel:   alertLevel(alerts),
		},
	}

	log.Info().
		Str("camera_id", cameraID).
		Str("analysis_id", result.AnalysisID).
		Int("total_objects", result.Summary.TotalObjects).
		Int("people_count", result.Summary.PeopleCount).
		Str("alert_level", string(result.Summary.AlertLevel)).
		Msg("Frame analysis completed")

	return result
}

// HistorySize exposes the alert history size for the stats endpoint
func (s *Service) HistorySize() int {
	return s.alerting.HistorySize()
}

// alertLevel derives the coarse frame-level alert level from the
// admitted alert priorities.
func alertLevel(alerts []models.Alert) models.AlertPriority {
	if len(alerts) == 0 {
		return models.AlertPriorityLow
	}
	for _, alert := range alerts {
		if alert.Priority == models.AlertPriorityHigh {
			return models.AlertPriorityHigh
		}
	}
	return models.AlertPriorityMedium
}

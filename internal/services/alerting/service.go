package alerting

import (
	"time"

	"github.com/rs/zerolog/log"

	"argus-worker-go/internal/config"
	"argus-worker-go/internal/models"
)

// Service evaluates alert rules, deduplicates candidates through the
// history, and publishes admitted alerts.
type Service struct {
	cfg       *config.Config
	history   *History
	publisher models.MessagePublisher
}

// NewService creates an alerting service. publisher may be nil, in
// which case admitted alerts are returned to the caller but not
// published.
func NewService(cfg *config.Config, history *History, publisher models.MessagePublisher) *Service {
	if history == nil {
		history = NewHistory(cfg.AlertCooldown, cfg.AlertRetention)
	}

	log.Info().
		Dur("cooldown", cfg.AlertCooldown).
		Dur("retention", cfg.AlertRetention).
		Bool("default_alert", cfg.DefaultAlert).
		Bool("publishing", publisher != nil).
		Msg("Alerting service initialized")

	return &Service{
		cfg:       cfg,
		history:   history,
		publisher: publisher,
	}
}

// Process runs rule evaluation and deduplication for one frame and
// returns the admitted alerts. Publishing failures are logged and do
// not fail the analysis call.
func (s *Service) Process(cameraID string, entities []models.DetectedEntity, situation models.SituationSummary, now time.Time) []models.Alert {
	if !s.cfg.AlertsEnabled {
		return []models.Alert{}
	}

	var candidates []models.Alert
	if s.cfg.DefaultAlert {
		candidates = EvaluateWithDefault(entities, situation, now)
	} else {
		candidates = Evaluate(entities, situation, now)
	}

	admitted := s.history.Admit(candidates, now)

	if len(candidates) > 0 {
		log.Debug().
			Str("camera_id", cameraID).
			Int("candidates", len(candidates)).
			Int("admitted", len(admitted)).
			Msg("Alert candidates processed")
	}

	if s.publisher != nil {
		for _, alert := range admitted {
			s.publish(cameraID, alert, situation)
		}
	}

	return admitted
}

// HistorySize exposes the current alert history size for stats
func (s *Service) HistorySize() int {
	return s.history.Size()
}

func (s *Service) publish(cameraID string, alert models.Alert, situation models.SituationSummary) {
	payload := models.AlertPayload{
		CameraID:  cameraID,
		Alert:     alert,
		Situation: situation,
	}

	if err := s.publisher.Publish(s.cfg.AlertsSubject, payload); err != nil {
		log.Error().
			Err(err).
			Str("camera_id", cameraID).
			Str("alert_id", alert.ID).
			Str("type", string(alert.Type)).
			Msg("Failed to publish alert")
		return
	}

	log.Info().
		Str("camera_id", cameraID).
		Str("alert_id", alert.ID).
		Str("type", string(alert.Type)).
		Str("priority", string(alert.Priority)).
		Msg("Alert published")
}

package analysis

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argus-worker-go/internal/config"
	"argus-worker-go/internal/models"
	"argus-worker-go/internal/services/alerting"
	"argus-worker-go/internal/services/situation"
)

func newTestService() *Service {
	cfg := &config.Config{
		AlertsEnabled:  true,
		AlertCooldown:  30 * time.Second,
		AlertRetention: 10 * time.Minute,
		AlertsSubject:  "alerts.camera",
	}
	return NewService(situation.NewAnalyzer(), alerting.NewService(cfg, nil, nil))
}

func entities(classes ...string) []models.DetectedEntity {
	out := make([]models.DetectedEntity, 0, len(classes))
	for _, c := range classes {
		out = append(out, models.DetectedEntity{Class: c, Confidence: 0.9})
	}
	return out
}

func TestAnalyzeFrameQuietScene(t *testing.T) {
	svc := newTestService()
	now := time.Now()

	result := svc.AnalyzeFrame("cam-1", entities("person", "chair"), now)

	assert.True(t, strings.HasPrefix(result.AnalysisID, "ana_"))
	assert.Equal(t, now, result.Timestamp)
	assert.Equal(t, 2, result.Summary.TotalObjects)
	assert.Equal(t, 1, result.Summary.PeopleCount)
	assert.Equal(t, models.AlertPriorityLow, result.Summary.AlertLevel)
	assert.Empty(t, result.Alerts)
	assert.Equal(t, models.EnvironmentIndoor, result.Situation.Environment)
}

func TestAnalyzeFrameMediumAlertLevel(t *testing.T) {
	svc := newTestService()

	in := make([]models.DetectedEntity, 0, 12)
	for i := 0; i < 12; i++ {
		in = append(in, models.DetectedEntity{Class: "person", Confidence: 0.8})
	}

	result := svc.AnalyzeFrame("cam-1", in, time.Now())

	require.Len(t, result.Alerts, 1)
	assert.Equal(t, models.AlertTypeCrowd, result.Alerts[0].Type)
	assert.Equal(t, models.AlertPriorityMedium, result.Summary.AlertLevel)
	assert.Equal(t, 12, result.Summary.PeopleCount)
}

func TestAnalyzeFrameHighAlertLevel(t *testing.T) {
	svc := newTestService()

	result := svc.AnalyzeFrame("cam-1", entities("knife"), time.Now())

	require.Len(t, result.Alerts, 1)
	assert.Equal(t, models.AlertTypeConcerningObject, result.Alerts[0].Type)
	assert.Equal(t, models.AlertPriorityHigh, result.Summary.AlertLevel)
}

func TestAnalyzeFrameCooldownAcrossFrames(t *testing.T) {
	svc := newTestService()
	t0 := time.Now()

	first := svc.AnalyzeFrame("cam-1", entities("knife"), t0)
	require.Len(t, first.Alerts, 1)

	// Same scene 10s later: alert suppressed, level falls back to low
	second := svc.AnalyzeFrame("cam-1", entities("knife"), t0.Add(10*time.Second))
	assert.Empty(t, second.Alerts)
	assert.Equal(t, models.AlertPriorityLow, second.Summary.AlertLevel)

	// After the cooldown window the alert comes back
	third := svc.AnalyzeFrame("cam-1", entities("knife"), t0.Add(40*time.Second))
	assert.Len(t, third.Alerts, 1)
}

func TestAnalyzeFrameEmpty(t *testing.T) {
	svc := newTestService()

	result := svc.AnalyzeFrame("cam-1", nil, time.Now())

	assert.Equal(t, 0, result.Summary.TotalObjects)
	assert.Equal(t, 0, result.Summary.PeopleCount)
	assert.Equal(t, models.AlertPriorityLow, result.Summary.AlertLevel)
	assert.Equal(t, models.ActivityNone, result.Situation.ActivityLevel)
	assert.Empty(t, result.Alerts)
}

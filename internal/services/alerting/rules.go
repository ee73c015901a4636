package alerting

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"argus-worker-go/internal/models"
)

// Class-name substrings that trigger rule evaluation. These are flat
// heuristics over an open detector vocabulary, matched by substring.
var concerningClasses = []string{"weapon", "knife", "gun", "fire"}

var stationaryClasses = []string{"backpack", "bag", "luggage", "package"}

// Evaluate runs the fixed rule set over a frame and returns candidate
// alerts in rule order. It is stateless and performs no deduplication;
// repeated calls may repeat alert types. A frame matching no rule
// yields an empty slice.
func Evaluate(entities []models.DetectedEntity, situation models.SituationSummary, now time.Time) []models.Alert {
	var alerts []models.Alert

	// Unusual people count
	if situation.PeopleCount > 10 {
		alerts = append(alerts, newAlert(
			models.AlertTypeCrowd,
			fmt.Sprintf("Unusually large crowd detected: %d people", situation.PeopleCount),
			models.AlertPriorityMedium,
			now,
		))
	}

	// Specific objects of concern, one alert per matching entity.
	// The rule does not gate on confidence; filtering happened upstream.
	for _, e := range entities {
		if containsAny(e.Class, concerningClasses) {
			alerts = append(alerts, newAlert(
				models.AlertTypeConcerningObject,
				fmt.Sprintf("Concerning object detected: %s", e.Class),
				models.AlertPriorityHigh,
				now,
			))
		}
	}

	// Unusual activity patterns
	if situation.ActivityLevel == models.ActivityHigh && situation.PeopleCount == 0 {
		alerts = append(alerts, newAlert(
			models.AlertTypeUnusualActivity,
			"High activity detected with no people present",
			models.AlertPriorityMedium,
			now,
		))
	}

	// Abandoned objects: several stationary objects in one frame.
	// A real implementation would compare against previous frames.
	if countStationary(entities) > 2 {
		alerts = append(alerts, newAlert(
			models.AlertTypeAbandonedObject,
			"Possible abandoned object detected",
			models.AlertPriorityLow,
			now,
		))
	}

	return alerts
}

// EvaluateWithDefault wraps Evaluate and injects a single low-priority
// NORMAL_ACTIVITY alert when no rule fires.
func EvaluateWithDefault(entities []models.DetectedEntity, situation models.SituationSummary, now time.Time) []models.Alert {
	alerts := Evaluate(entities, situation, now)
	if len(alerts) == 0 {
		alerts = append(alerts, newAlert(
			models.AlertTypeNormalActivity,
			"Normal activity detected",
			models.AlertPriorityLow,
			now,
		))
	}
	return alerts
}

func newAlert(alertType models.AlertType, message string, priority models.AlertPriority, now time.Time) models.Alert {
	return models.Alert{
		ID:        "alert_" + uuid.NewString(),
		Type:      alertType,
		Message:   message,
		Priority:  priority,
		Timestamp: now,
	}
}

func containsAny(class string, substrings []string) bool {
	class = strings.ToLower(class)
	for _, s := range substrings {
		if strings.Contains(class, s) {
			return true
		}
	}
	return false
}

func countStationary(entities []models.DetectedEntity) int {
	count := 0
	for _, e := range entities {
		if containsAny(e.Class, stationaryClasses) {
			count++
		}
	}
	return count
}

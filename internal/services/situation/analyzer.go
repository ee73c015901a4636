package situation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"argus-worker-go/internal/models"
)

// vehicleClasses feed the activity-level thresholds
var vehicleClasses = map[string]bool{
	"car":        true,
	"vehicle":    true,
	"bicycle":    true,
	"motorcycle": true,
}

var indoorClasses = []string{"chair", "table", "furniture", "computer", "tv", "couch"}

var outdoorClasses = []string{"car", "tree", "sky", "road"}

// Analyzer derives a per-frame SituationSummary from detected entities.
// It is stateless; Analyze is a pure function of its input.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze summarizes the detected entities. It never fails: an empty
// entity list yields the empty-scene summary, and any unexpected
// internal fault yields the fixed fallback summary.
func (a *Analyzer) Analyze(entities []models.DetectedEntity) (summary models.SituationSummary) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Situation analysis failed, returning fallback summary")
			summary = fallbackSummary()
		}
	}()

	counts := make(map[string]int, len(entities))
	firstSeen := make([]string, 0, len(entities))
	for _, e := range entities {
		// Upstream normalizes class names already; lowercase defensively
		class := strings.ToLower(e.Class)
		if counts[class] == 0 {
			firstSeen = append(firstSeen, class)
		}
		counts[class]++
	}

	peopleCount := counts["person"]
	vehicleCount := 0
	for class, n := range counts {
		if vehicleClasses[class] {
			vehicleCount += n
		}
	}

	activity := activityLevel(len(entities), peopleCount, vehicleCount)
	primary := primaryObjects(counts, firstSeen)

	return models.SituationSummary{
		Description:    describe(counts, activity, primary),
		Environment:    environment(counts),
		ActivityLevel:  activity,
		PeopleCount:    peopleCount,
		ObjectCounts:   counts,
		PrimaryObjects: primary,
		Timestamp:      time.Now(),
	}
}

// activityLevel applies the people+vehicle thresholds. A fully empty
// frame is "none"; anything detected is at least "low".
func activityLevel(total, peopleCount, vehicleCount int) models.ActivityLevel {
	switch {
	case peopleCount > 5 || vehicleCount > 3:
		return models.ActivityHigh
	case peopleCount > 2 || vehicleCount > 1:
		return models.ActivityMedium
	case total == 0:
		return models.ActivityNone
	default:
		return models.ActivityLow
	}
}

// environment compares indoor and outdoor keyword hits
func environment(counts map[string]int) models.Environment {
	indoorScore := 0
	for _, class := range indoorClasses {
		indoorScore += counts[class]
	}
	outdoorScore := 0
	for _, class := range outdoorClasses {
		outdoorScore += counts[class]
	}

	switch {
	case indoorScore > outdoorScore:
		return models.EnvironmentIndoor
	case outdoorScore > indoorScore:
		return models.EnvironmentOutdoor
	default:
		return models.EnvironmentUnknown
	}
}

// primaryObjects returns up to 3 non-person classes ranked by count
// descending, ties broken by first appearance in the frame.
func primaryObjects(counts map[string]int, firstSeen []string) []string {
	ranked := make([]string, 0, len(firstSeen))
	for _, class := range firstSeen {
		if class != "person" {
			ranked = append(ranked, class)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})

	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	return ranked
}

// describe composes the natural-language scene description from fixed
// sentence fragments.
func describe(counts map[string]int, activity models.ActivityLevel, primary []string) string {
	people := counts["person"]
	vehicles := counts["car"] + counts["vehicle"]
	animals := counts["dog"] + counts["cat"]

	var parts []string

	switch {
	case people == 0:
		parts = append(parts, "The area appears to be empty")
	case people == 1:
		parts = append(parts, "There is one person present")
	default:
		parts = append(parts, fmt.Sprintf("There are %d people in the area", people))
	}

	if vehicles > 0 {
		parts = append(parts, fmt.Sprintf("%d vehicle(s) detected", vehicles))
	}

	if animals > 0 {
		parts = append(parts, fmt.Sprintf("%d animal(s) spotted", animals))
	}

	switch activity {
	case models.ActivityHigh:
		parts = append(parts, "The scene shows high activity")
	case models.ActivityMedium:
		parts = append(parts, "Moderate activity observed")
	default:
		parts = append(parts, "The environment is calm")
	}

	if len(primary) > 0 {
		parts = append(parts, "Prominent objects: "+strings.Join(primary, ", "))
	}

	return strings.Join(parts, ". ") + "."
}

// fallbackSummary is the fixed total-function fallback: the caller
// always receives a well-formed summary.
func fallbackSummary() models.SituationSummary {
	return models.SituationSummary{
		Description:    "Unable to analyze scene. Please try again.",
		Environment:    models.EnvironmentUnknown,
		ActivityLevel:  models.ActivityUnknown,
		PeopleCount:    0,
		ObjectCounts:   map[string]int{},
		PrimaryObjects: []string{},
		Timestamp:      time.Now(),
	}
}

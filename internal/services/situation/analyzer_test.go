package situation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argus-worker-go/internal/models"
)

func entity(class string, confidence float64) models.DetectedEntity {
	return models.DetectedEntity{Class: class, Confidence: confidence}
}

func entities(classes ...string) []models.DetectedEntity {
	out := make([]models.DetectedEntity, 0, len(classes))
	for _, c := range classes {
		out = append(out, entity(c, 0.9))
	}
	return out
}

func TestAnalyzeIndoorScene(t *testing.T) {
	a := NewAnalyzer()

	summary := a.Analyze([]models.DetectedEntity{
		entity("person", 0.9),
		entity("person", 0.8),
		entity("chair", 0.7),
	})

	assert.Equal(t, 2, summary.PeopleCount)
	assert.Equal(t, map[string]int{"person": 2, "chair": 1}, summary.ObjectCounts)
	assert.Equal(t, models.EnvironmentIndoor, summary.Environment)
	assert.Equal(t, []string{"chair"}, summary.PrimaryObjects)
}

func TestAnalyzeEmptyScene(t *testing.T) {
	a := NewAnalyzer()

	first := a.Analyze(nil)
	require.Equal(t, models.ActivityNone, first.ActivityLevel)
	assert.Equal(t, 0, first.PeopleCount)
	assert.Equal(t, models.EnvironmentUnknown, first.Environment)
	assert.Empty(t, first.PrimaryObjects)
	assert.Equal(t, "The area appears to be empty. The environment is calm.", first.Description)

	// Deterministic across repeated calls
	second := a.Analyze([]models.DetectedEntity{})
	assert.Equal(t, first.Description, second.Description)
	assert.Equal(t, first.ActivityLevel, second.ActivityLevel)
}

func TestAnalyzePeopleCountMatchesEntities(t *testing.T) {
	a := NewAnalyzer()

	for _, n := range []int{0, 1, 3, 7, 12} {
		in := make([]models.DetectedEntity, 0, n+2)
		for i := 0; i < n; i++ {
			in = append(in, entity("person", 0.8))
		}
		in = append(in, entity("car", 0.8), entity("dog", 0.8))

		summary := a.Analyze(in)
		assert.Equal(t, n, summary.PeopleCount, "people count for n=%d", n)
	}
}

func TestAnalyzeObjectCountsSumToEntityCount(t *testing.T) {
	a := NewAnalyzer()

	in := entities("person", "person", "car", "chair", "chair", "chair", "dog")
	summary := a.Analyze(in)

	total := 0
	for _, n := range summary.ObjectCounts {
		total += n
	}
	assert.Equal(t, len(in), total)
}

func TestAnalyzeClassNamesLowercased(t *testing.T) {
	a := NewAnalyzer()

	summary := a.Analyze([]models.DetectedEntity{
		entity("Person", 0.9),
		entity("PERSON", 0.9),
	})

	assert.Equal(t, 2, summary.PeopleCount)
	assert.Equal(t, map[string]int{"person": 2}, summary.ObjectCounts)
}

func TestActivityLevelThresholds(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		want    models.ActivityLevel
	}{
		{"empty", nil, models.ActivityNone},
		{"single person", []string{"person"}, models.ActivityLow},
		{"two people", []string{"person", "person"}, models.ActivityLow},
		{"three people", []string{"person", "person", "person"}, models.ActivityMedium},
		{"two vehicles", []string{"car", "bicycle"}, models.ActivityMedium},
		{"six people", []string{"person", "person", "person", "person", "person", "person"}, models.ActivityHigh},
		{"four vehicles", []string{"car", "car", "motorcycle", "bicycle"}, models.ActivityHigh},
		{"non person objects", []string{"chair", "table"}, models.ActivityLow},
	}

	a := NewAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := a.Analyze(entities(tt.classes...))
			assert.Equal(t, tt.want, summary.ActivityLevel)
		})
	}
}

func TestEnvironmentDetection(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		want    models.Environment
	}{
		{"indoor objects", []string{"chair", "tv", "couch"}, models.EnvironmentIndoor},
		{"outdoor objects", []string{"car", "tree", "road"}, models.EnvironmentOutdoor},
		{"balanced", []string{"chair", "tree"}, models.EnvironmentUnknown},
		{"no keywords", []string{"person", "dog"}, models.EnvironmentUnknown},
	}

	a := NewAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := a.Analyze(entities(tt.classes...))
			assert.Equal(t, tt.want, summary.Environment)
		})
	}
}

func TestPrimaryObjectsExcludePersonAndCapAtThree(t *testing.T) {
	a := NewAnalyzer()

	summary := a.Analyze(entities(
		"person", "person", "person", "person",
		"chair", "chair", "chair",
		"table", "table",
		"tv",
		"dog",
	))

	require.Len(t, summary.PrimaryObjects, 3)
	assert.NotContains(t, summary.PrimaryObjects, "person")
	assert.Equal(t, []string{"chair", "table", "tv"}, summary.PrimaryObjects)
}

func TestPrimaryObjectsTiesKeepFirstSeenOrder(t *testing.T) {
	a := NewAnalyzer()

	// dog, cat and bird all appear once; input order decides
	summary := a.Analyze(entities("dog", "cat", "bird"))
	assert.Equal(t, []string{"dog", "cat", "bird"}, summary.PrimaryObjects)

	summary = a.Analyze(entities("bird", "cat", "dog"))
	assert.Equal(t, []string{"bird", "cat", "dog"}, summary.PrimaryObjects)
}

func TestDescriptionComposition(t *testing.T) {
	a := NewAnalyzer()

	t.Run("one person", func(t *testing.T) {
		summary := a.Analyze(entities("person"))
		assert.Contains(t, summary.Description, "There is one person present")
		assert.Contains(t, summary.Description, "The environment is calm")
	})

	t.Run("crowd with vehicles and animals", func(t *testing.T) {
		in := entities("car", "car", "dog")
		for i := 0; i < 6; i++ {
			in = append(in, entity("person", 0.8))
		}
		summary := a.Analyze(in)

		assert.Contains(t, summary.Description, "There are 6 people in the area")
		assert.Contains(t, summary.Description, "2 vehicle(s) detected")
		assert.Contains(t, summary.Description, "1 animal(s) spotted")
		assert.Contains(t, summary.Description, "The scene shows high activity")
	})

	t.Run("prominent objects clause", func(t *testing.T) {
		summary := a.Analyze(entities("chair", "chair", "table"))
		assert.Contains(t, summary.Description, "Prominent objects: chair, table")
	})

	t.Run("trailing period", func(t *testing.T) {
		for i, in := range [][]models.DetectedEntity{nil, entities("person"), entities("car", "dog")} {
			summary := a.Analyze(in)
			assert.Equal(t, ".", summary.Description[len(summary.Description)-1:], fmt.Sprintf("case %d", i))
		}
	})
}

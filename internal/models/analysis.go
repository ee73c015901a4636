package models

import (
	"time"
)

// Environment represents the guessed scene environment
type Environment string

const (
	EnvironmentIndoor  Environment = "indoor"
	EnvironmentOutdoor Environment = "outdoor"
	EnvironmentUnknown Environment = "unknown"
)

// ActivityLevel represents how busy the scene is
type ActivityLevel string

const (
	ActivityNone   ActivityLevel = "none"
	ActivityLow    ActivityLevel = "low"
	ActivityMedium ActivityLevel = "medium"
	ActivityHigh   ActivityLevel = "high"
	// ActivityUnknown is only produced by the fallback summary
	ActivityUnknown ActivityLevel = "unknown"
)

// AlertType represents different types of alerts that can be generated
type AlertType string

const (
	AlertTypeCrowd            AlertType = "CROWD_DETECTED"
	AlertTypeConcerningObject AlertType = "CONCERNING_OBJECT"
	AlertTypeUnusualActivity  AlertType = "UNUSUAL_ACTIVITY"
	AlertTypeAbandonedObject  AlertType = "ABANDONED_OBJECT"
	AlertTypeNormalActivity   AlertType = "NORMAL_ACTIVITY"
)

// AlertPriority represents the priority level of alerts
type AlertPriority string

const (
	AlertPriorityLow    AlertPriority = "low"
	AlertPriorityMedium AlertPriority = "medium"
	AlertPriorityHigh   AlertPriority = "high"
)

// Point is a normalized (x, y) coordinate in [0,1]x[0,1]
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DetectedEntity represents one visually detected thing in a frame.
// Class names come from the upstream detector and are an open
// vocabulary, normalized to lowercase.
type DetectedEntity struct {
	Class       string  `json:"class"`
	Confidence  float64 `json:"confidence"`
	BoundingBox []Point `json:"bounding_box"`
	Midpoint    Point   `json:"midpoint"`
}

// SituationSummary is the per-frame scene summary derived from the
// detected entities.
type SituationSummary struct {
	Description    string         `json:"description"`
	Environment    Environment    `json:"environment"`
	ActivityLevel  ActivityLevel  `json:"activity_level"`
	PeopleCount    int            `json:"people_count"`
	ObjectCounts   map[string]int `json:"object_counts"`
	PrimaryObjects []string       `json:"primary_objects"`
	Timestamp      time.Time      `json:"timestamp"`
}

// Alert is a single notification unit. Type is the deduplication key;
// Message is informational only.
type Alert struct {
	ID        string        `json:"alert_id"`
	Type      AlertType     `json:"type"`
	Message   string        `json:"message"`
	Priority  AlertPriority `json:"priority"`
	Timestamp time.Time     `json:"timestamp"`
}

// FrameSummary is the coarse frame-level roll-up for the response payload
type FrameSummary struct {
	TotalObjects int           `json:"total_objects"`
	PeopleCount  int           `json:"people_count"`
	AlertLevel   AlertPriority `json:"alert_level"`
}

// FrameAnalysis is the complete analysis result for one frame
type FrameAnalysis struct {
	AnalysisID      string           `json:"analysis_id"`
	Timestamp       time.Time        `json:"timestamp"`
	ObjectsDetected []DetectedEntity `json:"objects_detected"`
	Situation       SituationSummary `json:"situation_analysis"`
	Alerts          []Alert          `json:"alerts"`
	Summary         FrameSummary     `json:"summary"`
}

// BatchFrameResult is one entry of a batch analysis response. Error is
// set instead of the analysis when a single frame failed to process.
type BatchFrameResult struct {
	FrameIndex int            `json:"frame_index"`
	Analysis   *FrameAnalysis `json:"analysis,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// CameraStatus is a heartbeat report from a camera client
type CameraStatus struct {
	CameraID   string                 `json:"camera_id"`
	Status     string                 `json:"status"`
	ReportedAt time.Time              `json:"reported_at"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// AlertPayload represents the structure published to NATS for an
// admitted alert.
type AlertPayload struct {
	CameraID  string                 `json:"camera_id,omitempty"`
	Alert     Alert                  `json:"alert"`
	Situation SituationSummary       `json:"situation_analysis"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// MessagePublisher interface for publishing alerts
type MessagePublisher interface {
	Publish(subject string, data interface{}) error
}

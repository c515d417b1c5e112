package entities

import (
	"math"
	"time"
)

// Metadata describes one processing run.
type Metadata struct {
	FileID               string  `json:"file_id"`
	OriginalFilename     string  `json:"original_filename"`
	ProcessedAt          string  `json:"processed_at"`
	ProcessingTime       float64 `json:"processing_time_seconds"`
	ModelUsed            string  `json:"model_used"`
	FileSizeBytes        int64   `json:"file_size_bytes"`
	AudioDurationSeconds float64 `json:"audio_duration_seconds"`
}

// Summary aggregates action item statistics. Every field is a pure function
// of the action item list.
type Summary struct {
	TotalActionItems    int     `json:"total_action_items"`
	HighPriorityItems   int     `json:"high_priority_items"`
	MediumPriorityItems int     `json:"medium_priority_items"`
	LowPriorityItems    int     `json:"low_priority_items"`
	ItemsWithAssignees  int     `json:"items_with_assignees"`
	ItemsWithDeadlines  int     `json:"items_with_deadlines"`
	AverageConfidence   float64 `json:"average_confidence"`
}

// MeetingAnalysis is the complete result of one analysis run. All parts live
// in memory for the duration of a single request and are discarded afterward.
type MeetingAnalysis struct {
	Metadata    Metadata     `json:"metadata"`
	Transcript  *Transcript  `json:"transcript"`
	ActionItems []ActionItem `json:"action_items"`
	Summary     Summary      `json:"summary"`
}

// TextAnalysis is the action-items-only result of the text path.
type TextAnalysis struct {
	TextLength  int          `json:"text_length"`
	ActionItems []ActionItem `json:"action_items"`
	Summary     Summary      `json:"summary"`
}

// NewMetadata builds run metadata from file info and timing.
func NewMetadata(fileID, originalFilename, modelUsed string, fileSize int64, started time.Time, audioDuration float64) Metadata {
	return Metadata{
		FileID:               fileID,
		OriginalFilename:     originalFilename,
		ProcessedAt:          time.Now().Format(time.RFC3339),
		ProcessingTime:       Round2(time.Since(started).Seconds()),
		ModelUsed:            modelUsed,
		FileSizeBytes:        fileSize,
		AudioDurationSeconds: audioDuration,
	}
}

// BuildSummary computes the aggregate summary for a set of action items.
// AverageConfidence is a simple mean across items (0.0 when there are none).
func BuildSummary(items []ActionItem) Summary {
	s := Summary{TotalActionItems: len(items)}

	var confidenceSum float64
	for i := range items {
		switch items[i].Priority {
		case ActionItemPriorityHigh:
			s.HighPriorityItems++
		case ActionItemPriorityLow:
			s.LowPriorityItems++
		default:
			s.MediumPriorityItems++
		}
		if items[i].HasAssignees() {
			s.ItemsWithAssignees++
		}
		if items[i].HasDeadlines() {
			s.ItemsWithDeadlines++
		}
		confidenceSum += items[i].Confidence
	}

	if len(items) > 0 {
		s.AverageConfidence = Round2(confidenceSum / float64(len(items)))
	}
	return s
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

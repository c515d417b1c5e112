package analysis

import "github.com/johnquangdev/meeting-analytics/internal/domain/entities"

// ActionItemPayload is the wire form of one action item.
type ActionItemPayload struct {
	ID         int      `json:"id"`
	Task       string   `json:"task"`
	Assignees  []string `json:"assignees"`
	Deadlines  []string `json:"deadlines"`
	Priority   string   `json:"priority"`
	Confidence float64  `json:"confidence"`
}

// MetadataPayload is the wire form of run metadata.
type MetadataPayload struct {
	ProcessedAt      string  `json:"processed_at"`
	ProcessingTime   float64 `json:"processing_time"`
	ModelUsed        string  `json:"model_used"`
	OriginalFilename string  `json:"original_filename"`
	FileSize         int64   `json:"file_size"`
}

// TranscribeResponse is returned by the transcribe-only endpoint; it carries
// the full segment list.
type TranscribeResponse struct {
	Success    bool             `json:"success"`
	FileID     string           `json:"file_id"`
	Transcript TranscriptDetail `json:"transcript"`
	Metadata   MetadataPayload  `json:"metadata"`
}

// TranscriptDetail includes segment timing.
type TranscriptDetail struct {
	Text     string                       `json:"text"`
	Language string                       `json:"language"`
	Duration float64                      `json:"duration"`
	Segments []entities.TranscriptSegment `json:"segments"`
}

// AnalyzeResponse is returned by the full analysis endpoint; the transcript
// is summarized to its segment count.
type AnalyzeResponse struct {
	Success     bool                `json:"success"`
	FileID      string              `json:"file_id"`
	Metadata    MetadataPayload     `json:"metadata"`
	Transcript  TranscriptOverview  `json:"transcript"`
	ActionItems []ActionItemPayload `json:"action_items"`
	Summary     entities.Summary    `json:"summary"`
}

// TranscriptOverview summarizes the transcript without segment details.
type TranscriptOverview struct {
	Text         string  `json:"text"`
	Language     string  `json:"language"`
	Duration     float64 `json:"duration"`
	SegmentCount int     `json:"segment_count"`
}

// AnalyzeTextResponse is returned by the text-only endpoint.
type AnalyzeTextResponse struct {
	Success     bool                `json:"success"`
	TextLength  int                 `json:"text_length"`
	ActionItems []ActionItemPayload `json:"action_items"`
	Summary     entities.Summary    `json:"summary"`
}

// NewTranscribeResponse maps a MeetingAnalysis to the transcribe wire form.
func NewTranscribeResponse(result *entities.MeetingAnalysis) TranscribeResponse {
	return TranscribeResponse{
		Success: true,
		FileID:  result.Metadata.FileID,
		Transcript: TranscriptDetail{
			Text:     result.Transcript.FullText,
			Language: result.Transcript.Language,
			Duration: result.Transcript.DurationSeconds,
			Segments: result.Transcript.Segments,
		},
		Metadata: newMetadataPayload(result.Metadata),
	}
}

// NewAnalyzeResponse maps a MeetingAnalysis to the analysis wire form.
func NewAnalyzeResponse(result *entities.MeetingAnalysis) AnalyzeResponse {
	return AnalyzeResponse{
		Success:  true,
		FileID:   result.Metadata.FileID,
		Metadata: newMetadataPayload(result.Metadata),
		Transcript: TranscriptOverview{
			Text:         result.Transcript.FullText,
			Language:     result.Transcript.Language,
			Duration:     result.Transcript.DurationSeconds,
			SegmentCount: result.Transcript.SegmentCount(),
		},
		ActionItems: newActionItemPayloads(result.ActionItems),
		Summary:     result.Summary,
	}
}

// NewAnalyzeTextResponse maps a TextAnalysis to the wire form.
func NewAnalyzeTextResponse(result *entities.TextAnalysis) AnalyzeTextResponse {
	return AnalyzeTextResponse{
		Success:     true,
		TextLength:  result.TextLength,
		ActionItems: newActionItemPayloads(result.ActionItems),
		Summary:     result.Summary,
	}
}

func newMetadataPayload(m entities.Metadata) MetadataPayload {
	return MetadataPayload{
		ProcessedAt:      m.ProcessedAt,
		ProcessingTime:   m.ProcessingTime,
		ModelUsed:        m.ModelUsed,
		OriginalFilename: m.OriginalFilename,
		FileSize:         m.FileSizeBytes,
	}
}

func newActionItemPayloads(items []entities.ActionItem) []ActionItemPayload {
	payloads := make([]ActionItemPayload, 0, len(items))
	for _, item := range items {
		payloads = append(payloads, ActionItemPayload{
			ID:         item.ID,
			Task:       item.Task,
			Assignees:  item.Assignees,
			Deadlines:  item.Deadlines,
			Priority:   item.Priority,
			Confidence: item.Confidence,
		})
	}
	return payloads
}

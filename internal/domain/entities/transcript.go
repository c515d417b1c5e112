package entities

// TranscriptSegment is a single timestamped chunk of recognized speech.
// IDs are assigned 1..N in chronological order by the transcription adapter.
type TranscriptSegment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is the full output of one transcription run. FullText comes from
// the engine directly and is not required to match the concatenated segments.
type Transcript struct {
	FullText        string              `json:"full_text"`
	Language        string              `json:"language"`
	DurationSeconds float64             `json:"duration_seconds"`
	Segments        []TranscriptSegment `json:"segments"`
}

// SegmentCount returns the number of segments in the transcript.
func (t *Transcript) SegmentCount() int {
	return len(t.Segments)
}

// LanguageUnknown is used when the engine does not report a language.
const LanguageUnknown = "unknown"

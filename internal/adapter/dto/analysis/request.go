package analysis

import "strings"

// TranscribeRequest carries the optional form fields of the transcribe-only
// endpoint.
type TranscribeRequest struct {
	ModelSize string `form:"model_size" validate:"omitempty,oneof=tiny base small medium large"`
	Language  string `form:"language"`
}

// AnalyzeRequest carries the optional form fields of the full analysis
// endpoint.
type AnalyzeRequest struct {
	ModelSize          string `form:"model_size" validate:"omitempty,oneof=tiny base small medium large"`
	Language           string `form:"language"`
	ExtractActionItems string `form:"extract_action_items"`
	CustomKeywords     string `form:"custom_keywords"`
}

// ShouldExtract reports whether action item extraction was requested.
// Absent means yes; anything other than "true" disables it.
func (r *AnalyzeRequest) ShouldExtract() bool {
	if r.ExtractActionItems == "" {
		return true
	}
	return strings.EqualFold(r.ExtractActionItems, "true")
}

// Keywords splits the comma-separated custom keyword list, dropping empties.
func (r *AnalyzeRequest) Keywords() []string {
	return splitKeywords(r.CustomKeywords)
}

// AnalyzeTextRequest is the JSON body of the text-only endpoint.
type AnalyzeTextRequest struct {
	Text           string   `json:"text" validate:"required"`
	CustomKeywords []string `json:"custom_keywords"`
}

func splitKeywords(raw string) []string {
	if raw == "" {
		return nil
	}
	var keywords []string
	for _, kw := range strings.Split(raw, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

package nlp

import (
	"regexp"
	"strings"
)

// actionKeywords is the base lexicon of action-indicating phrases. A sentence
// must contain at least one (case-insensitive) to become a candidate.
var actionKeywords = []string{
	"need to", "should", "must", "will", "todo", "action item",
	"follow up", "reach out", "contact", "schedule", "deliver",
	"complete", "finish", "submit", "send", "prepare", "review",
	"update", "create", "develop", "implement", "investigate",
	"assign", "responsible", "deadline", "due", "by",
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Sentences shorter than this (after trimming) are treated as fragments.
const minSentenceLength = 10

// SelectCandidateSentences splits text on sentence-terminal punctuation and
// keeps the sentences that contain an action keyword. Custom keywords are
// trimmed, lowercased, and unioned with the base lexicon; empty ones are
// dropped. Output order follows order of appearance, without deduplication.
func SelectCandidateSentences(text string, customKeywords []string) []string {
	keywords := make([]string, 0, len(actionKeywords)+len(customKeywords))
	keywords = append(keywords, actionKeywords...)
	for _, kw := range customKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}

	var candidates []string
	for _, sentence := range sentenceSplit.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= minSentenceLength {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				candidates = append(candidates, sentence)
				break
			}
		}
	}
	return candidates
}

package nlp

import (
	"strings"

	"github.com/johnquangdev/meeting-analytics/internal/domain/entities"
)

var highPriorityKeywords = []string{
	"urgent", "asap", "immediately", "critical", "important", "high priority",
}

var lowPriorityKeywords = []string{
	"when possible", "eventually", "sometime", "low priority", "nice to have",
}

// ClassifyPriority classifies a sentence into high, medium, or low. The high
// lexicon is checked before the low one: a sentence matching both is high.
func ClassifyPriority(sentence string) string {
	lower := strings.ToLower(sentence)

	for _, kw := range highPriorityKeywords {
		if strings.Contains(lower, kw) {
			return entities.ActionItemPriorityHigh
		}
	}
	for _, kw := range lowPriorityKeywords {
		if strings.Contains(lower, kw) {
			return entities.ActionItemPriorityLow
		}
	}
	return entities.ActionItemPriorityMedium
}

package nlp

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultDeadlineExprs is the packaged deadline pattern set. The order is a
// fixed priority: matches are collected pattern by pattern, so earlier
// patterns win the first-seen position on duplicates.
var defaultDeadlineExprs = []string{
	`\b(?:by|before|until|due)\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`,
	`\b(?:by|before|until|due)\s+(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}\b`,
	`\b(?:by|before|until|due)\s+\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`,
	`\b(?:by|before|until|due)\s+(?:today|tomorrow|next week|this week|end of week|eod|end of day)\b`,
	`\bnext\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`,
	`\bthis\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`,
	`\b(?:in|within)\s+\d+\s+(?:days?|weeks?|months?)\b`,
}

// DeadlinePatternTable is a versioned, swappable set of deadline patterns.
// The English default is locale-specific; localized tables can replace it
// without touching extraction logic.
type DeadlinePatternTable struct {
	Version  string
	patterns []*regexp.Regexp
}

// NewDeadlinePatternTable compiles a pattern table from regular expressions.
func NewDeadlinePatternTable(version string, exprs []string) (*DeadlinePatternTable, error) {
	t := &DeadlinePatternTable{Version: version}
	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid deadline pattern %q: %w", expr, err)
		}
		t.patterns = append(t.patterns, re)
	}
	return t, nil
}

// DefaultDeadlineTable returns the packaged English pattern table.
func DefaultDeadlineTable() *DeadlinePatternTable {
	t, err := NewDeadlinePatternTable("en-v1", defaultDeadlineExprs)
	if err != nil {
		panic(err)
	}
	return t
}

// Extract collects all deadline phrases in the sentence. The sentence is
// lowercased for matching; results keep pattern-list order and are
// deduplicated by first occurrence.
func (t *DeadlinePatternTable) Extract(sentence string) []string {
	lower := strings.ToLower(sentence)

	var deadlines []string
	seen := make(map[string]bool)
	for _, re := range t.patterns {
		for _, match := range re.FindAllString(lower, -1) {
			deadline := strings.TrimSpace(match)
			if !seen[deadline] {
				seen[deadline] = true
				deadlines = append(deadlines, deadline)
			}
		}
	}
	return deadlines
}

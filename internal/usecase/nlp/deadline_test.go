package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDeadlines_Patterns(t *testing.T) {
	table := DefaultDeadlineTable()

	tests := []struct {
		name     string
		sentence string
		want     []string
	}{
		{"weekday", "Please finish the report by Friday", []string{"by friday"}},
		{"month day", "The draft is due January 15 at the latest", []string{"due january 15"}},
		{"numeric date", "Submit the form before 12/31/2026 please", []string{"before 12/31/2026"}},
		{"numeric date short", "Submit the form until 3/4", []string{"until 3/4"}},
		{"relative", "We need this done by end of week", []string{"by end of week"}},
		{"eod", "Send the notes by eod", []string{"by eod"}},
		{"next weekday", "Let's sync next tuesday about the launch", []string{"next tuesday"}},
		{"this weekday", "The demo happens this thursday", []string{"this thursday"}},
		{"within", "We can deliver within 3 weeks", []string{"within 3 weeks"}},
		{"in days", "Expect the fix in 2 days", []string{"in 2 days"}},
		{"none", "There is no timing information here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Extract(tt.sentence))
		})
	}
}

func TestExtractDeadlines_IdempotentAndOrderPreserving(t *testing.T) {
	table := DefaultDeadlineTable()
	sentence := "Finish the draft by Friday and plan the rollout within 2 weeks"

	first := table.Extract(sentence)
	second := table.Extract(sentence)

	assert.Equal(t, []string{"by friday", "within 2 weeks"}, first)
	assert.Equal(t, first, second)
}

func TestExtractDeadlines_DedupFirstOccurrence(t *testing.T) {
	table := DefaultDeadlineTable()

	deadlines := table.Extract("We agreed on by Friday and by Friday again")

	assert.Equal(t, []string{"by friday"}, deadlines)
}

func TestExtractDeadlines_MultipleMatchesPatternOrder(t *testing.T) {
	table := DefaultDeadlineTable()

	// "next monday" (pattern 5) sorts after "by tomorrow" (pattern 4) even
	// though it appears first in the sentence.
	deadlines := table.Extract("Ship next monday or send the patch by tomorrow")

	assert.Equal(t, []string{"by tomorrow", "next monday"}, deadlines)
}

func TestNewDeadlinePatternTable(t *testing.T) {
	table, err := NewDeadlinePatternTable("test-v1", []string{`\bquarter end\b`})
	require.NoError(t, err)
	assert.Equal(t, "test-v1", table.Version)
	assert.Equal(t, []string{"quarter end"}, table.Extract("Targets are locked until Quarter End"))

	_, err = NewDeadlinePatternTable("bad", []string{`(`})
	assert.Error(t, err)
}

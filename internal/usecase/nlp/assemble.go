package nlp

import (
	"strings"

	"github.com/johnquangdev/meeting-analytics/internal/domain/entities"
)

// defaultConfidence is used when no entities back an action item: neutral,
// "unverified but plausible", deliberately not zero.
const defaultConfidence = 0.5

// EntityExtraction is the per-sentence recognizer outcome. A recognizer
// failure is carried in Err instead of aborting the analysis, so callers and
// tests can tell "no entities found" apart from "recognizer errored".
type EntityExtraction struct {
	Entities []entities.Entity
	Err      error
}

// Failed reports whether the recognizer errored for this sentence.
func (e EntityExtraction) Failed() bool {
	return e.Err != nil
}

// AssembleActionItem combines one candidate sentence with its extraction
// results into an ActionItem. index is the 0-based position in the candidate
// sequence; IDs are 1-based and stable within a run.
func AssembleActionItem(index int, sentence string, extraction EntityExtraction, deadlines []string, priority string) entities.ActionItem {
	var assignees []string
	var confidence float64

	if len(extraction.Entities) > 0 {
		var scoreSum float64
		for _, ent := range extraction.Entities {
			scoreSum += ent.Score
			if ent.Type == entities.EntityTypePerson {
				assignees = append(assignees, ent.Text)
			}
		}
		confidence = entities.Round2(scoreSum / float64(len(extraction.Entities)))
	} else {
		confidence = defaultConfidence
	}

	if len(assignees) == 0 {
		assignees = []string{entities.AssigneeUnspecified}
	}
	if len(deadlines) == 0 {
		deadlines = []string{entities.DeadlineNotSpecified}
	}

	found := extraction.Entities
	if found == nil {
		found = []entities.Entity{}
	}

	return entities.ActionItem{
		ID:            index + 1,
		Task:          strings.TrimSpace(sentence),
		Assignees:     assignees,
		Deadlines:     deadlines,
		Priority:      priority,
		Confidence:    confidence,
		EntitiesFound: found,
	}
}

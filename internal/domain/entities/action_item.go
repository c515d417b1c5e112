package entities

// Entity is a named span recognized in a sentence, with the recognizer's
// confidence score.
type Entity struct {
	Text  string  `json:"text"`
	Type  string  `json:"entity_type"`
	Score float64 `json:"score"`
}

// Entity type constants (normalized recognizer groups)
const (
	EntityTypePerson       = "PERSON"
	EntityTypeOrganization = "ORGANIZATION"
	EntityTypeLocation     = "LOCATION"
	EntityTypeMisc         = "MISC"
)

// ActionItem is a task-like statement extracted from a transcript.
//
// Assignees and Deadlines are never empty: when nothing was found they hold
// the sentinel values below, so downstream counting logic stays well-defined.
type ActionItem struct {
	ID            int      `json:"id"`
	Task          string   `json:"task"`
	Assignees     []string `json:"assignees"`
	Deadlines     []string `json:"deadlines"`
	Priority      string   `json:"priority"`
	Confidence    float64  `json:"confidence"`
	EntitiesFound []Entity `json:"entities_found"`
}

// Sentinel values used instead of empty collections.
const (
	AssigneeUnspecified  = "unspecified"
	DeadlineNotSpecified = "not specified"
)

// ActionItemPriority constants
const (
	ActionItemPriorityHigh   = "high"
	ActionItemPriorityMedium = "medium"
	ActionItemPriorityLow    = "low"
)

// HasAssignees reports whether real assignees were found (not the sentinel).
func (a *ActionItem) HasAssignees() bool {
	return len(a.Assignees) > 0 && !(len(a.Assignees) == 1 && a.Assignees[0] == AssigneeUnspecified)
}

// HasDeadlines reports whether real deadlines were found (not the sentinel).
func (a *ActionItem) HasDeadlines() bool {
	return len(a.Deadlines) > 0 && !(len(a.Deadlines) == 1 && a.Deadlines[0] == DeadlineNotSpecified)
}

package ner

import (
	"context"
	"errors"
)

// Entity is a named span recognized in text. Type holds a normalized group
// name ("PERSON", "ORGANIZATION", "LOCATION", "MISC").
type Entity struct {
	Text  string  `json:"text"`
	Type  string  `json:"entity_type"`
	Score float64 `json:"score"`
}

// Normalized entity group names.
const (
	TypePerson       = "PERSON"
	TypeOrganization = "ORGANIZATION"
	TypeLocation     = "LOCATION"
	TypeMisc         = "MISC"
)

// Recognizer defines the interface for named-entity recognizers.
type Recognizer interface {
	// Name returns the recognizer name
	Name() string

	// Initialize prepares the recognizer backend for use
	Initialize() error

	// Recognize extracts named entities from the given text
	Recognize(ctx context.Context, text string) ([]Entity, error)
}

// ErrRecognizerUnavailable indicates the recognizer backend could not be
// reached or failed to load its model.
var ErrRecognizerUnavailable = errors.New("ner recognizer unavailable")

// normalizeGroup maps model-level entity groups to normalized names.
// Unknown groups pass through unchanged.
func normalizeGroup(group string) string {
	switch group {
	case "PER", "PERSON":
		return TypePerson
	case "ORG", "ORGANIZATION":
		return TypeOrganization
	case "LOC", "LOCATION":
		return TypeLocation
	case "MISC":
		return TypeMisc
	}
	return group
}

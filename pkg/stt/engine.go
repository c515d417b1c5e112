package stt

import (
	"context"
	"errors"
)

// Segment is a timestamped chunk of recognized speech as returned by the
// engine, before the transcription adapter normalizes it.
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Result is the raw engine output for one audio file.
type Result struct {
	Text     string    `json:"text"`
	Language string    `json:"language"`
	Duration float64   `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Request describes one transcription call.
type Request struct {
	AudioPath string
	ModelSize string
	Language  string
}

// Engine defines the interface for speech-to-text engines.
type Engine interface {
	// Name returns the engine name
	Name() string

	// Initialize prepares the engine backend for use
	Initialize() error

	// Transcribe converts the audio file into text with segment timing
	Transcribe(ctx context.Context, req Request) (*Result, error)
}

// ModelSizes are the accepted whisper model identifiers.
var ModelSizes = []string{"tiny", "base", "small", "medium", "large"}

// ErrEngineUnavailable indicates the engine backend could not be reached.
var ErrEngineUnavailable = errors.New("stt engine unavailable")

// ValidModelSize reports whether size is an accepted model identifier.
func ValidModelSize(size string) bool {
	for _, s := range ModelSizes {
		if s == size {
			return true
		}
	}
	return false
}

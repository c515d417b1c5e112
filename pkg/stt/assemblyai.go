package stt

import (
	"context"
	"fmt"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
)

// AssemblyAIEngine wraps the official AssemblyAI SDK. Model size selection is
// not supported by the vendor; the requested size is ignored here and only
// recorded in run metadata by the caller.
type AssemblyAIEngine struct {
	apiKey string
	client *aai.Client
}

// NewAssemblyAIEngine creates an engine backed by the AssemblyAI API.
func NewAssemblyAIEngine(apiKey string) *AssemblyAIEngine {
	return &AssemblyAIEngine{
		apiKey: apiKey,
		client: aai.NewClient(apiKey),
	}
}

// Name returns the engine name
func (e *AssemblyAIEngine) Name() string {
	return "assemblyai"
}

// Initialize verifies the engine is configured.
func (e *AssemblyAIEngine) Initialize() error {
	if e.apiKey == "" {
		return fmt.Errorf("%w: assemblyai api key not configured", ErrEngineUnavailable)
	}
	return nil
}

// Transcribe uploads the audio file and waits for the finished transcript.
func (e *AssemblyAIEngine) Transcribe(ctx context.Context, req Request) (*Result, error) {
	f, err := os.Open(req.AudioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	uploadURL, err := e.client.Upload(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to upload to assemblyai: %w", err)
	}

	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
	}
	if req.Language != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(req.Language)
	} else {
		params.LanguageDetection = aai.Bool(true)
	}

	// No webhook configured, so the SDK polls until a terminal status.
	transcript, err := e.client.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
	if err != nil {
		return nil, fmt.Errorf("assemblyai transcription failed: %w", err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		return nil, fmt.Errorf("assemblyai transcription failed: %s", derefString(transcript.Error))
	}

	result := &Result{
		Text:     derefString(transcript.Text),
		Language: string(transcript.LanguageCode),
		Duration: derefFloat64(transcript.AudioDuration),
	}

	// Utterance times are reported in milliseconds.
	for i, u := range transcript.Utterances {
		result.Segments = append(result.Segments, Segment{
			ID:    i + 1,
			Start: float64(derefInt64(u.Start)) / 1000.0,
			End:   float64(derefInt64(u.End)) / 1000.0,
			Text:  derefString(u.Text),
		})
	}

	return result, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefFloat64(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

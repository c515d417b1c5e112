package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPRecognizer is a client for a token-classification inference endpoint
// that returns aggregated entity groups.
type HTTPRecognizer struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRecognizer creates a recognizer client for the given endpoint URL.
func NewHTTPRecognizer(baseURL string, timeout time.Duration) *HTTPRecognizer {
	return &HTTPRecognizer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Name returns the recognizer name
func (r *HTTPRecognizer) Name() string {
	return "ner-http"
}

// Initialize probes the inference endpoint so that a missing model surfaces
// at startup rather than on the first request.
func (r *HTTPRecognizer) Initialize() error {
	resp, err := r.client.Get(r.baseURL + "/health")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRecognizerUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: health returned status %d", ErrRecognizerUnavailable, resp.StatusCode)
	}
	return nil
}

type recognizeRequest struct {
	Text string `json:"text"`
}

// rawEntity mirrors the aggregated output of a HuggingFace-style
// token-classification pipeline.
type rawEntity struct {
	EntityGroup string  `json:"entity_group"`
	Word        string  `json:"word"`
	Score       float64 `json:"score"`
}

// Recognize extracts named entities from the given text. The entity order is
// preserved as returned by the model.
func (r *HTTPRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	body, err := json.Marshal(recognizeRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/ner", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("ner endpoint returned status %d", resp.StatusCode)
	}

	var raw []rawEntity
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode ner response: %w", err)
	}

	entities := make([]Entity, 0, len(raw))
	for _, e := range raw {
		entities = append(entities, Entity{
			Text:  e.Word,
			Type:  normalizeGroup(e.EntityGroup),
			Score: e.Score,
		})
	}
	return entities, nil
}

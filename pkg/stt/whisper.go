package stt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// WhisperClient talks to a Whisper ASR webservice over HTTP.
type WhisperClient struct {
	baseURL string
	client  *http.Client
}

// NewWhisperClient creates a client for the given Whisper server URL.
func NewWhisperClient(baseURL string, timeout time.Duration) *WhisperClient {
	return &WhisperClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Name returns the engine name
func (w *WhisperClient) Name() string {
	return "whisper"
}

// Initialize checks that the Whisper server is reachable.
func (w *WhisperClient) Initialize() error {
	if _, err := url.Parse(w.baseURL); err != nil {
		return fmt.Errorf("invalid whisper URL %q: %w", w.baseURL, err)
	}
	resp, err := w.client.Get(w.baseURL + "/openapi.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return nil
}

// whisperResponse is the verbose_json payload of the ASR webservice.
type whisperResponse struct {
	Task     string    `json:"task"`
	Language string    `json:"language"`
	Duration float64   `json:"duration"`
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
}

// Transcribe uploads the audio file and decodes the JSON result.
// Transient server and network errors are retried with exponential backoff;
// 4xx responses are permanent (corrupt file, unsupported codec).
func (w *WhisperClient) Transcribe(ctx context.Context, req Request) (*Result, error) {
	var result *Result

	call := func() error {
		res, err := w.transcribeOnce(ctx, req)
		if err != nil {
			return err
		}
		result = res
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(call, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}
	return result, nil
}

func (w *WhisperClient) transcribeOnce(ctx context.Context, req Request) (*Result, error) {
	f, err := os.Open(req.AudioPath)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to open audio file: %w", err))
	}
	defer f.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile("audio_file", filepath.Base(req.AudioPath))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, f); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	q := url.Values{}
	q.Set("task", "transcribe")
	q.Set("encode", "true")
	q.Set("output", "json")
	if req.ModelSize != "" {
		q.Set("model", req.ModelSize)
	}
	if req.Language != "" {
		q.Set("language", req.Language)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+"/asr?"+q.Encode(), pr)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := w.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("whisper server returned status %d", resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, backoff.Permanent(fmt.Errorf("whisper rejected audio (status %d): %s", resp.StatusCode, body))
	}

	var wr whisperResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to decode whisper response: %w", err))
	}

	return &Result{
		Text:     wr.Text,
		Language: wr.Language,
		Duration: wr.Duration,
		Segments: wr.Segments,
	}, nil
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analytics/internal/domain/entities"
	"github.com/johnquangdev/meeting-analytics/internal/infrastructure/storage"
	analysisuse "github.com/johnquangdev/meeting-analytics/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-analytics/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-analytics/pkg/validator"
)

type stubAnalysisService struct {
	audioResult *entities.MeetingAnalysis
	textResult  *entities.TextAnalysis
	err         error

	lastOpts analysisuse.Options
	lastText string
}

func (s *stubAnalysisService) ProcessAudio(_ context.Context, upload *storage.UploadInfo, opts analysisuse.Options) (*entities.MeetingAnalysis, error) {
	s.lastOpts = opts
	if s.err != nil {
		return nil, s.err
	}
	result := *s.audioResult
	result.Metadata.FileID = upload.FileID
	return &result, nil
}

func (s *stubAnalysisService) AnalyzeText(_ context.Context, text string, customKeywords []string) (*entities.TextAnalysis, error) {
	s.lastText = text
	s.lastOpts.CustomKeywords = customKeywords
	if s.err != nil {
		return nil, s.err
	}
	return s.textResult, nil
}

func testAnalysis() *entities.MeetingAnalysis {
	return &entities.MeetingAnalysis{
		Metadata: entities.Metadata{
			OriginalFilename: "meeting.wav",
			ModelUsed:        "base",
		},
		Transcript: &entities.Transcript{
			FullText:        "John will send the report by Friday.",
			Language:        "en",
			DurationSeconds: 42.0,
			Segments: []entities.TranscriptSegment{
				{ID: 1, Start: 0, End: 42, Text: "John will send the report by Friday."},
			},
		},
		ActionItems: []entities.ActionItem{},
		Summary:     entities.Summary{},
	}
}

func newTestController(t *testing.T, svc analysisuse.Service) (*echo.Echo, *AnalysisController) {
	t.Helper()
	e := echo.New()
	e.Validator = pkgvalidator.New()

	store, err := storage.NewLocalStore(config.UploadConfig{
		Folder:            filepath.Join(t.TempDir(), "uploads"),
		MaxFileSizeBytes:  1024,
		AllowedExtensions: []string{"mp3", "wav"},
	}, zap.NewNop())
	require.NoError(t, err)

	return e, NewAnalysisController(svc, store, time.Minute, zap.NewNop())
}

func newUploadRequest(t *testing.T, filename string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if filename != "" {
		part, err := mw.CreateFormFile("audio_file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("RIFF fake audio"))
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAnalyze(t *testing.T) {
	svc := &stubAnalysisService{audioResult: testAnalysis()}
	e, controller := newTestController(t, svc)

	req := newUploadRequest(t, "meeting.wav", map[string]string{
		"model_size":      "small",
		"custom_keywords": "backlog, sprint",
	})
	rec := httptest.NewRecorder()

	require.NoError(t, controller.Analyze(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "small", svc.lastOpts.ModelSize)
	assert.True(t, svc.lastOpts.ExtractActionItems)
	assert.Equal(t, []string{"backlog", "sprint"}, svc.lastOpts.CustomKeywords)

	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["success"])
	transcript := data["transcript"].(map[string]interface{})
	assert.Equal(t, "John will send the report by Friday.", transcript["text"])
	assert.Equal(t, float64(1), transcript["segment_count"])
}

func TestAnalyze_ExtractDisabled(t *testing.T) {
	svc := &stubAnalysisService{audioResult: testAnalysis()}
	e, controller := newTestController(t, svc)

	req := newUploadRequest(t, "meeting.wav", map[string]string{
		"extract_action_items": "false",
	})
	rec := httptest.NewRecorder()

	require.NoError(t, controller.Analyze(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, svc.lastOpts.ExtractActionItems)
}

func TestAnalyze_MissingFile(t *testing.T) {
	e, controller := newTestController(t, &stubAnalysisService{audioResult: testAnalysis()})

	req := newUploadRequest(t, "", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, controller.Analyze(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "No audio file provided", body["message"])
}

func TestAnalyze_InvalidModelSize(t *testing.T) {
	e, controller := newTestController(t, &stubAnalysisService{audioResult: testAnalysis()})

	req := newUploadRequest(t, "meeting.wav", map[string]string{"model_size": "huge"})
	rec := httptest.NewRecorder()

	require.NoError(t, controller.Analyze(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Contains(t, body["message"], "Invalid model size")
}

func TestAnalyze_DisallowedExtension(t *testing.T) {
	e, controller := newTestController(t, &stubAnalysisService{audioResult: testAnalysis()})

	req := newUploadRequest(t, "notes.txt", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, controller.Analyze(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Contains(t, body["message"], "File type not allowed")
}

func TestTranscribe(t *testing.T) {
	svc := &stubAnalysisService{audioResult: testAnalysis()}
	e, controller := newTestController(t, svc)

	req := newUploadRequest(t, "meeting.wav", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, controller.Transcribe(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Transcribe-only never extracts action items.
	assert.False(t, svc.lastOpts.ExtractActionItems)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	transcript := data["transcript"].(map[string]interface{})
	segments := transcript["segments"].([]interface{})
	assert.Len(t, segments, 1)
}

func TestAnalyzeText(t *testing.T) {
	svc := &stubAnalysisService{
		textResult: &entities.TextAnalysis{
			TextLength:  35,
			ActionItems: []entities.ActionItem{},
			Summary:     entities.Summary{},
		},
	}
	e, controller := newTestController(t, svc)

	payload := `{"text": "Alice will prepare the agenda.", "custom_keywords": ["agenda"]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, controller.AnalyzeText(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "Alice will prepare the agenda.", svc.lastText)
	assert.Equal(t, []string{"agenda"}, svc.lastOpts.CustomKeywords)
}

func TestAnalyzeText_MissingText(t *testing.T) {
	e, controller := newTestController(t, &stubAnalysisService{})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, controller.AnalyzeText(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeText_BlankText(t *testing.T) {
	e, controller := newTestController(t, &stubAnalysisService{})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text": "   "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, controller.AnalyzeText(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Text cannot be empty", body["message"])
}

package transcription

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-analytics/errors"
	"github.com/johnquangdev/meeting-analytics/internal/domain/entities"
	"github.com/johnquangdev/meeting-analytics/pkg/stt"
)

type stubEngine struct {
	initErr   error
	initCalls int

	result *stt.Result
	err    error

	lastReq stt.Request
}

func (e *stubEngine) Name() string { return "stub" }

func (e *stubEngine) Initialize() error {
	e.initCalls++
	return e.initErr
}

func (e *stubEngine) Transcribe(_ context.Context, req stt.Request) (*stt.Result, error) {
	e.lastReq = req
	if e.err != nil {
		return nil, e.err
	}
	return e.result, nil
}

func writeTempAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meeting.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o644))
	return path
}

func TestTranscribe(t *testing.T) {
	engine := &stubEngine{
		result: &stt.Result{
			Text:     "  Hello team. Let's get started.  ",
			Language: "en",
			Duration: 12.5,
			Segments: []stt.Segment{
				{ID: 0, Start: 0, End: 5.2, Text: " Hello team. "},
				{ID: 1, Start: 5.2, End: 12.5, Text: " Let's get started. "},
			},
		},
	}
	svc := NewService(engine, zap.NewNop())
	path := writeTempAudio(t)

	transcript, err := svc.Transcribe(context.Background(), path, "base", "en")
	require.NoError(t, err)

	assert.Equal(t, "Hello team. Let's get started.", transcript.FullText)
	assert.Equal(t, "en", transcript.Language)
	assert.Equal(t, 12.5, transcript.DurationSeconds)
	require.Len(t, transcript.Segments, 2)

	// Segment IDs are reassigned 1..N regardless of engine numbering.
	assert.Equal(t, 1, transcript.Segments[0].ID)
	assert.Equal(t, 2, transcript.Segments[1].ID)
	assert.Equal(t, "Hello team.", transcript.Segments[0].Text)

	assert.Equal(t, path, engine.lastReq.AudioPath)
	assert.Equal(t, "base", engine.lastReq.ModelSize)
	assert.Equal(t, "en", engine.lastReq.Language)
}

func TestTranscribe_LanguageFallback(t *testing.T) {
	engine := &stubEngine{result: &stt.Result{Text: "hello", Language: ""}}
	svc := NewService(engine, zap.NewNop())

	transcript, err := svc.Transcribe(context.Background(), writeTempAudio(t), "base", "")
	require.NoError(t, err)
	assert.Equal(t, entities.LanguageUnknown, transcript.Language)
}

func TestTranscribe_MissingFile(t *testing.T) {
	svc := NewService(&stubEngine{result: &stt.Result{}}, zap.NewNop())

	_, err := svc.Transcribe(context.Background(), "/nonexistent/audio.wav", "base", "")
	require.Error(t, err)

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_AUDIO_PROCESSING_FAILED, appErr.Code)
}

func TestTranscribe_EngineFailure(t *testing.T) {
	engine := &stubEngine{err: errors.New("backend unreachable")}
	svc := NewService(engine, zap.NewNop())

	_, err := svc.Transcribe(context.Background(), writeTempAudio(t), "base", "")
	require.Error(t, err)

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_TRANSCRIPTION_FAILED, appErr.Code)
}

func TestTranscribe_InitFailure(t *testing.T) {
	engine := &stubEngine{initErr: stt.ErrEngineUnavailable}
	svc := NewService(engine, zap.NewNop())

	_, err := svc.Transcribe(context.Background(), writeTempAudio(t), "base", "")
	require.Error(t, err)

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_AUDIO_PROCESSING_FAILED, appErr.Code)
	assert.ErrorIs(t, err, stt.ErrEngineUnavailable)
}

func TestTranscribe_InitializeOnce(t *testing.T) {
	engine := &stubEngine{result: &stt.Result{Text: "hello"}}
	svc := NewService(engine, zap.NewNop())
	path := writeTempAudio(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Transcribe(context.Background(), path, "base", "")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, engine.initCalls)
}

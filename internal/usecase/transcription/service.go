package transcription

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-analytics/errors"
	"github.com/johnquangdev/meeting-analytics/internal/domain/entities"
	"github.com/johnquangdev/meeting-analytics/pkg/format"
	"github.com/johnquangdev/meeting-analytics/pkg/stt"
)

// Service defines transcription methods
type Service interface {
	Transcribe(ctx context.Context, audioPath, modelSize, language string) (*entities.Transcript, error)
	EngineName() string
}

type transcriptionService struct {
	engine stt.Engine
	logger *zap.Logger

	initOnce sync.Once
	initErr  error
}

// NewService constructs a transcription service around the given engine.
func NewService(engine stt.Engine, logger *zap.Logger) Service {
	return &transcriptionService{
		engine: engine,
		logger: logger,
	}
}

// EngineName returns the name of the underlying engine.
func (s *transcriptionService) EngineName() string {
	return s.engine.Name()
}

// ensureEngine runs engine initialization exactly once per process. The
// engine handle is read-only afterward and safe for concurrent use.
func (s *transcriptionService) ensureEngine() error {
	s.initOnce.Do(func() {
		s.logger.Info("initializing speech-to-text engine", zap.String("engine", s.engine.Name()))
		s.initErr = s.engine.Initialize()
		if s.initErr != nil {
			s.logger.Error("failed to initialize speech-to-text engine", zap.Error(s.initErr))
		} else {
			s.logger.Info("speech-to-text engine ready")
		}
	})
	return s.initErr
}

// Transcribe converts the audio file into a normalized transcript. Segment
// IDs are assigned 1..N in the order the engine returned them, and all text
// fields are trimmed.
func (s *transcriptionService) Transcribe(ctx context.Context, audioPath, modelSize, language string) (*entities.Transcript, error) {
	if err := s.ensureEngine(); err != nil {
		return nil, apperrors.ErrAudioProcessing(err)
	}

	if _, err := os.Stat(audioPath); err != nil {
		return nil, apperrors.ErrAudioProcessing(fmt.Errorf("audio file not found: %s", audioPath))
	}

	s.logger.Info("starting transcription",
		zap.String("path", audioPath),
		zap.String("model_size", modelSize),
		zap.String("language", language),
	)

	result, err := s.engine.Transcribe(ctx, stt.Request{
		AudioPath: audioPath,
		ModelSize: modelSize,
		Language:  language,
	})
	if err != nil {
		return nil, apperrors.ErrTranscription(err)
	}

	transcript := &entities.Transcript{
		FullText:        strings.TrimSpace(result.Text),
		Language:        result.Language,
		DurationSeconds: result.Duration,
		Segments:        make([]entities.TranscriptSegment, 0, len(result.Segments)),
	}
	if transcript.Language == "" {
		transcript.Language = entities.LanguageUnknown
	}

	for i, seg := range result.Segments {
		transcript.Segments = append(transcript.Segments, entities.TranscriptSegment{
			ID:    i + 1,
			Start: seg.Start,
			End:   seg.End,
			Text:  strings.TrimSpace(seg.Text),
		})
	}

	s.logger.Info("transcription completed",
		zap.Float64("duration_seconds", transcript.DurationSeconds),
		zap.String("duration", format.Duration(transcript.DurationSeconds)),
		zap.Int("segment_count", transcript.SegmentCount()),
		zap.String("language", transcript.Language),
	)
	return transcript, nil
}

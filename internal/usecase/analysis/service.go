package analysis

import (
	"context"
	stderrors "errors"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-analytics/errors"
	"github.com/johnquangdev/meeting-analytics/internal/domain/entities"
	"github.com/johnquangdev/meeting-analytics/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-analytics/internal/usecase/nlp"
	"github.com/johnquangdev/meeting-analytics/internal/usecase/transcription"
)

// Options controls one analysis run.
type Options struct {
	ModelSize          string
	Language           string
	ExtractActionItems bool
	CustomKeywords     []string
}

// Service defines analysis orchestration methods
type Service interface {
	ProcessAudio(ctx context.Context, upload *storage.UploadInfo, opts Options) (*entities.MeetingAnalysis, error)
	AnalyzeText(ctx context.Context, text string, customKeywords []string) (*entities.TextAnalysis, error)
}

type analysisService struct {
	transcriber      transcription.Service
	nlp              nlp.Service
	store            *storage.LocalStore
	defaultModelSize string
	logger           *zap.Logger
}

// NewService constructs the analysis orchestrator.
func NewService(
	transcriber transcription.Service,
	nlpSvc nlp.Service,
	store *storage.LocalStore,
	defaultModelSize string,
	logger *zap.Logger,
) Service {
	return &analysisService{
		transcriber:      transcriber,
		nlp:              nlpSvc,
		store:            store,
		defaultModelSize: defaultModelSize,
		logger:           logger,
	}
}

// ProcessAudio runs transcription and, when requested, action item
// extraction over one uploaded file. The upload is deleted on every exit
// path, success or failure.
func (s *analysisService) ProcessAudio(ctx context.Context, upload *storage.UploadInfo, opts Options) (*entities.MeetingAnalysis, error) {
	started := time.Now()
	defer s.store.Delete(upload.Path)

	s.logger.Info("starting audio processing",
		zap.String("file_id", upload.FileID),
		zap.String("filename", upload.OriginalFilename),
		zap.Bool("extract_action_items", opts.ExtractActionItems),
	)

	modelSize := opts.ModelSize
	if modelSize == "" {
		modelSize = s.defaultModelSize
	}

	transcript, err := s.transcriber.Transcribe(ctx, upload.Path, modelSize, opts.Language)
	if err != nil {
		return nil, s.wrapFailure(upload.FileID, err)
	}

	actionItems := make([]entities.ActionItem, 0)
	if opts.ExtractActionItems {
		actionItems, err = s.nlp.ExtractActionItems(ctx, transcript.FullText, opts.CustomKeywords)
		if err != nil {
			return nil, s.wrapFailure(upload.FileID, err)
		}
	}

	result := &entities.MeetingAnalysis{
		Metadata: entities.NewMetadata(
			upload.FileID,
			upload.OriginalFilename,
			modelSize,
			upload.Size,
			started,
			transcript.DurationSeconds,
		),
		Transcript:  transcript,
		ActionItems: actionItems,
		Summary:     entities.BuildSummary(actionItems),
	}

	s.logger.Info("audio processing completed",
		zap.String("file_id", upload.FileID),
		zap.Float64("processing_time_seconds", result.Metadata.ProcessingTime),
		zap.Int("action_items", len(actionItems)),
	)
	return result, nil
}

// AnalyzeText extracts action items from raw text, skipping transcription.
func (s *analysisService) AnalyzeText(ctx context.Context, text string, customKeywords []string) (*entities.TextAnalysis, error) {
	s.logger.Info("starting text analysis", zap.Int("text_length", len(text)))

	items, err := s.nlp.ExtractActionItems(ctx, text, customKeywords)
	if err != nil {
		var appErr apperrors.AppError
		if stderrors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.ErrAnalysisFailed(err)
	}
	if items == nil {
		items = make([]entities.ActionItem, 0)
	}

	return &entities.TextAnalysis{
		TextLength:  len(text),
		ActionItems: items,
		Summary:     entities.BuildSummary(items),
	}, nil
}

// wrapFailure keeps classified pipeline errors as-is and folds anything
// unexpected into a single generic analysis failure.
func (s *analysisService) wrapFailure(fileID string, err error) error {
	s.logger.Error("audio processing failed",
		zap.String("file_id", fileID),
		zap.Error(err),
	)
	var appErr apperrors.AppError
	if stderrors.As(err, &appErr) {
		return err
	}
	return apperrors.ErrAnalysisFailed(err)
}

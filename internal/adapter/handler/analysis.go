package handler

import (
	"context"
	stdErrors "errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analytics/errors"
	dto "github.com/johnquangdev/meeting-analytics/internal/adapter/dto/analysis"
	"github.com/johnquangdev/meeting-analytics/internal/infrastructure/storage"
	analysisuse "github.com/johnquangdev/meeting-analytics/internal/usecase/analysis"
)

// AnalysisController handles the transcription and analysis endpoints
type AnalysisController struct {
	svc            analysisuse.Service
	store          *storage.LocalStore
	processTimeout time.Duration
	logger         *zap.Logger
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(svc analysisuse.Service, store *storage.LocalStore, processTimeout time.Duration, logger *zap.Logger) *AnalysisController {
	return &AnalysisController{
		svc:            svc,
		store:          store,
		processTimeout: processTimeout,
		logger:         logger,
	}
}

// Transcribe transcribes an uploaded audio file without action item extraction
func (ac *AnalysisController) Transcribe(c echo.Context) error {
	var req dto.TranscribeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrValidation("Invalid request parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrValidation(
			"Invalid model size. Must be one of: tiny, base, small, medium, large"))
	}

	upload, err := ac.saveUpload(c)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), ac.processTimeout)
	defer cancel()

	result, err := ac.svc.ProcessAudio(ctx, upload, analysisuse.Options{
		ModelSize:          req.ModelSize,
		Language:           req.Language,
		ExtractActionItems: false,
	})
	if err != nil {
		return HandleError(ac.logger, c, ac.timeoutOr(ctx, err))
	}

	return HandleSuccess(ac.logger, c, dto.NewTranscribeResponse(result))
}

// Analyze runs the full pipeline on an uploaded audio file
func (ac *AnalysisController) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrValidation("Invalid request parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrValidation(
			"Invalid model size. Must be one of: tiny, base, small, medium, large"))
	}

	upload, err := ac.saveUpload(c)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), ac.processTimeout)
	defer cancel()

	result, err := ac.svc.ProcessAudio(ctx, upload, analysisuse.Options{
		ModelSize:          req.ModelSize,
		Language:           req.Language,
		ExtractActionItems: req.ShouldExtract(),
		CustomKeywords:     req.Keywords(),
	})
	if err != nil {
		return HandleError(ac.logger, c, ac.timeoutOr(ctx, err))
	}

	return HandleSuccess(ac.logger, c, dto.NewAnalyzeResponse(result))
}

// AnalyzeText runs action item extraction over raw text, skipping transcription
func (ac *AnalysisController) AnalyzeText(c echo.Context) error {
	var req dto.AnalyzeTextRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrValidation("Text field is required"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrValidation("Text field is required"))
	}
	if strings.TrimSpace(req.Text) == "" {
		return HandleError(ac.logger, c, errors.ErrValidation("Text cannot be empty"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), ac.processTimeout)
	defer cancel()

	result, err := ac.svc.AnalyzeText(ctx, req.Text, req.CustomKeywords)
	if err != nil {
		return HandleError(ac.logger, c, ac.timeoutOr(ctx, err))
	}

	return HandleSuccess(ac.logger, c, dto.NewAnalyzeTextResponse(result))
}

// saveUpload reads the multipart audio file and stores it locally.
func (ac *AnalysisController) saveUpload(c echo.Context) (*storage.UploadInfo, error) {
	fileHeader, err := c.FormFile("audio_file")
	if err != nil {
		return nil, errors.ErrFileUpload("No audio file provided")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.ErrFileUpload("Failed to read uploaded file")
	}
	defer func(f multipart.File) { f.Close() }(src)

	return ac.store.Save(
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		src,
	)
}

// timeoutOr maps a deadline-exceeded context onto the timeout error.
func (ac *AnalysisController) timeoutOr(ctx context.Context, err error) error {
	if stdErrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.ErrRequestTimeout()
	}
	return err
}

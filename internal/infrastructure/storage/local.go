package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-analytics/errors"
	"github.com/johnquangdev/meeting-analytics/pkg/config"
	"github.com/johnquangdev/meeting-analytics/pkg/format"
)

// UploadInfo describes one saved upload. The file is a scoped resource: the
// orchestrator guarantees deletion on every exit path of an analysis run.
type UploadInfo struct {
	FileID           string
	Path             string
	SavedFilename    string
	OriginalFilename string
	Size             int64
	ContentType      string
}

// LocalStore saves uploads to a local directory under generated names.
type LocalStore struct {
	folder            string
	maxFileSize       int64
	allowedExtensions map[string]bool
	logger            *zap.Logger
}

// NewLocalStore creates the store and its upload directory.
func NewLocalStore(cfg config.UploadConfig, logger *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Folder, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload folder: %w", err)
	}

	allowed := make(map[string]bool, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}

	return &LocalStore{
		folder:            cfg.Folder,
		maxFileSize:       cfg.MaxFileSizeBytes,
		allowedExtensions: allowed,
		logger:            logger,
	}, nil
}

// IsAllowedFile checks whether the filename has an accepted audio extension.
func (s *LocalStore) IsAllowedFile(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return ext != "" && s.allowedExtensions[ext]
}

// Save validates and stores one upload, returning its info. Validation
// failures are FILE_UPLOAD errors and happen before anything touches disk.
func (s *LocalStore) Save(originalFilename, contentType string, size int64, r io.Reader) (*UploadInfo, error) {
	if originalFilename == "" {
		return nil, apperrors.ErrFileUpload("No file selected")
	}
	if !s.IsAllowedFile(originalFilename) {
		return nil, apperrors.ErrFileUpload(fmt.Sprintf(
			"File type not allowed. Allowed types: %s", strings.Join(s.allowedList(), ", ")))
	}
	if size > s.maxFileSize {
		return nil, apperrors.ErrFileUpload(fmt.Sprintf(
			"File size (%d bytes) exceeds maximum allowed size (%d bytes)", size, s.maxFileSize))
	}

	fileID := uuid.New().String()
	original := filepath.Base(originalFilename)
	savedFilename := fileID + strings.ToLower(filepath.Ext(original))
	path := filepath.Join(s.folder, savedFilename)

	f, err := os.Create(path)
	if err != nil {
		return nil, apperrors.ErrFileUpload("Failed to save file").WithDetail("cause", err.Error())
	}

	// Guard against streams that lie about their declared size.
	written, err := io.Copy(f, io.LimitReader(r, s.maxFileSize+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return nil, apperrors.ErrFileUpload("Failed to save file").WithDetail("cause", err.Error())
	}
	if written > s.maxFileSize {
		os.Remove(path)
		return nil, apperrors.ErrFileUpload(fmt.Sprintf(
			"File size exceeds maximum allowed size (%d bytes)", s.maxFileSize))
	}

	s.logger.Info("upload saved",
		zap.String("file_id", fileID),
		zap.String("path", path),
		zap.Int64("size_bytes", written),
		zap.String("size", format.FileSize(written)),
	)

	return &UploadInfo{
		FileID:           fileID,
		Path:             path,
		SavedFilename:    savedFilename,
		OriginalFilename: original,
		Size:             written,
		ContentType:      contentType,
	}, nil
}

// Delete removes a stored upload. Missing files are not an error.
func (s *LocalStore) Delete(path string) bool {
	if path == "" {
		return false
	}
	if _, err := os.Stat(path); err != nil {
		return false
	}
	if err := os.Remove(path); err != nil {
		s.logger.Error("failed to delete upload", zap.String("path", path), zap.Error(err))
		return false
	}
	s.logger.Info("upload deleted", zap.String("path", path))
	return true
}

func (s *LocalStore) allowedList() []string {
	exts := make([]string, 0, len(s.allowedExtensions))
	for ext := range s.allowedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

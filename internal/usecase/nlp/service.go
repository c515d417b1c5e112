package nlp

import (
	"context"
	"sync"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-analytics/errors"
	"github.com/johnquangdev/meeting-analytics/internal/domain/entities"
	"github.com/johnquangdev/meeting-analytics/pkg/ner"
)

// Service defines action item extraction methods
type Service interface {
	ExtractActionItems(ctx context.Context, text string, customKeywords []string) ([]entities.ActionItem, error)
}

type nlpService struct {
	recognizer ner.Recognizer
	table      *DeadlinePatternTable
	logger     *zap.Logger

	initOnce sync.Once
	initErr  error
}

// NewService constructs the NLP service. table may be nil to use the packaged
// deadline pattern table.
func NewService(recognizer ner.Recognizer, table *DeadlinePatternTable, logger *zap.Logger) Service {
	if table == nil {
		table = DefaultDeadlineTable()
	}
	return &nlpService{
		recognizer: recognizer,
		table:      table,
		logger:     logger,
	}
}

// ensureRecognizer runs recognizer initialization exactly once per process.
// The recognizer handle is read-only after this and safe for concurrent use.
func (s *nlpService) ensureRecognizer() error {
	s.initOnce.Do(func() {
		s.logger.Info("initializing NER recognizer", zap.String("recognizer", s.recognizer.Name()))
		s.initErr = s.recognizer.Initialize()
		if s.initErr != nil {
			s.logger.Error("failed to initialize NER recognizer", zap.Error(s.initErr))
		} else {
			s.logger.Info("NER recognizer ready")
		}
	})
	return s.initErr
}

// ExtractActionItems runs the extraction pipeline over the transcript text:
// candidate selection, per-sentence entity and deadline extraction, priority
// classification, and assembly into ordered action items.
func (s *nlpService) ExtractActionItems(ctx context.Context, text string, customKeywords []string) ([]entities.ActionItem, error) {
	if err := s.ensureRecognizer(); err != nil {
		return nil, apperrors.ErrNLPProcessing(err)
	}

	sentences := SelectCandidateSentences(text, customKeywords)
	s.logger.Info("selected candidate sentences", zap.Int("count", len(sentences)))

	items := make([]entities.ActionItem, 0, len(sentences))
	for i, sentence := range sentences {
		extraction := s.extractEntities(ctx, sentence)
		deadlines := s.table.Extract(sentence)
		priority := ClassifyPriority(sentence)

		items = append(items, AssembleActionItem(i, sentence, extraction, deadlines, priority))
	}

	s.logger.Info("extracted action items", zap.Int("count", len(items)))
	return items, nil
}

// extractEntities recognizes entities in one sentence. A recognizer failure
// degrades to an empty extraction carrying the reason; it never aborts the
// whole analysis.
func (s *nlpService) extractEntities(ctx context.Context, sentence string) EntityExtraction {
	recognized, err := s.recognizer.Recognize(ctx, sentence)
	if err != nil {
		s.logger.Warn("entity extraction failed for sentence",
			zap.String("sentence", truncate(sentence, 50)),
			zap.Error(err),
		)
		return EntityExtraction{Err: err}
	}

	ents := make([]entities.Entity, 0, len(recognized))
	for _, e := range recognized {
		ents = append(ents, entities.Entity{
			Text:  e.Text,
			Type:  e.Type,
			Score: e.Score,
		})
	}
	return EntityExtraction{Entities: ents}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

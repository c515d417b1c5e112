package nlp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-analytics/errors"
	"github.com/johnquangdev/meeting-analytics/internal/domain/entities"
	"github.com/johnquangdev/meeting-analytics/pkg/ner"
)

// stubRecognizer returns canned entities per sentence substring.
type stubRecognizer struct {
	initErr   error
	initCalls int

	entities map[string][]ner.Entity
	err      error
	errOn    string
}

func (s *stubRecognizer) Name() string { return "stub" }

func (s *stubRecognizer) Initialize() error {
	s.initCalls++
	return s.initErr
}

func (s *stubRecognizer) Recognize(_ context.Context, text string) ([]ner.Entity, error) {
	if s.err != nil && (s.errOn == "" || strings.Contains(text, s.errOn)) {
		return nil, s.err
	}
	for key, ents := range s.entities {
		if strings.Contains(text, key) {
			return ents, nil
		}
	}
	return nil, nil
}

func TestExtractActionItems(t *testing.T) {
	recognizer := &stubRecognizer{
		entities: map[string][]ner.Entity{
			"John": {
				{Text: "John", Type: ner.TypePerson, Score: 0.99},
			},
		},
	}
	svc := NewService(recognizer, nil, zap.NewNop())

	text := "John needs to follow up with the client by Friday. This is urgent. The weather was nice."
	items, err := svc.ExtractActionItems(context.Background(), text, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, 1, item.ID)
	assert.Equal(t, "John needs to follow up with the client by Friday", item.Task)
	assert.Equal(t, []string{"John"}, item.Assignees)
	assert.Equal(t, []string{"by friday"}, item.Deadlines)
	assert.Equal(t, entities.ActionItemPriorityMedium, item.Priority)
	assert.InDelta(t, 0.99, item.Confidence, 0.0001)
}

func TestExtractActionItems_NoCandidates(t *testing.T) {
	svc := NewService(&stubRecognizer{}, nil, zap.NewNop())

	items, err := svc.ExtractActionItems(context.Background(), "The weather was nice today.", nil)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestExtractActionItems_SequentialIDs(t *testing.T) {
	svc := NewService(&stubRecognizer{}, nil, zap.NewNop())

	text := "Alice will prepare the agenda. Bob must review the budget numbers. Carol should send the minutes."
	items, err := svc.ExtractActionItems(context.Background(), text, nil)
	require.NoError(t, err)
	require.Len(t, items, 3)

	for i, item := range items {
		assert.Equal(t, i+1, item.ID)
	}
}

func TestExtractActionItems_RecognizerFailureDegrades(t *testing.T) {
	recognizer := &stubRecognizer{
		err:   errors.New("inference backend down"),
		errOn: "budget",
		entities: map[string][]ner.Entity{
			"Alice": {
				{Text: "Alice", Type: ner.TypePerson, Score: 0.9},
			},
		},
	}
	svc := NewService(recognizer, nil, zap.NewNop())

	text := "Alice will prepare the agenda. Bob must review the budget numbers."
	items, err := svc.ExtractActionItems(context.Background(), text, nil)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, []string{"Alice"}, items[0].Assignees)

	// The failed sentence still yields an item with default confidence.
	assert.Equal(t, []string{entities.AssigneeUnspecified}, items[1].Assignees)
	assert.Equal(t, defaultConfidence, items[1].Confidence)
}

func TestExtractActionItems_InitFailure(t *testing.T) {
	recognizer := &stubRecognizer{initErr: errors.New("model not loaded")}
	svc := NewService(recognizer, nil, zap.NewNop())

	_, err := svc.ExtractActionItems(context.Background(), "Alice will prepare the agenda.", nil)
	require.Error(t, err)

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_NLP_PROCESSING_FAILED, appErr.Code)
}

func TestExtractActionItems_InitializeOnce(t *testing.T) {
	recognizer := &stubRecognizer{}
	svc := NewService(recognizer, nil, zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := svc.ExtractActionItems(context.Background(), "Alice will prepare the agenda.", nil)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, recognizer.initCalls)
}

func TestExtractActionItems_CustomKeywords(t *testing.T) {
	svc := NewService(&stubRecognizer{}, nil, zap.NewNop())

	text := "The Jira backlog keeps growing every sprint."
	items, err := svc.ExtractActionItems(context.Background(), text, []string{" Backlog "})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "The Jira backlog keeps growing every sprint", items[0].Task)
}

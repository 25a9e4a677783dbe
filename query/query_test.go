package query

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/kbsync/core"
	"github.com/poiesic/kbsync/webui/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTool(t *testing.T, api *mock.MockAPI) *Tool {
	t.Helper()
	tool, err := NewTool(api)
	require.NoError(t, err)
	return tool
}

func TestNewToolRequiresAPI(t *testing.T) {
	_, err := NewTool(nil)
	assert.ErrorIs(t, err, ErrAPIRequired)
}

func TestList(t *testing.T) {
	api := mock.NewMockAPI()
	api.Collections = []core.Collection{
		{ID: "k1", Name: "docs"},
		{ID: "k2", Name: "notes"},
	}

	collections, err := newTestTool(t, api).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, api.Collections, collections)
}

func TestResolveByNameHit(t *testing.T) {
	api := mock.NewMockAPI()
	api.Collections = []core.Collection{
		{ID: "k1", Name: "docs"},
		{ID: "k2", Name: "notes"},
	}

	collection, notFound, err := newTestTool(t, api).ResolveByName(context.Background(), "notes")
	require.NoError(t, err)
	assert.Nil(t, notFound)
	assert.Equal(t, core.Collection{ID: "k2", Name: "notes"}, collection)

	// Read-only lookup: a miss or hit never creates anything.
	assert.Equal(t, 0, api.CreateCalls())
}

func TestResolveByNameMiss(t *testing.T) {
	api := mock.NewMockAPI()
	api.Collections = []core.Collection{
		{ID: "k1", Name: "papers"},
		{ID: "k2", Name: "manuals"},
	}

	_, notFound, err := newTestTool(t, api).ResolveByName(context.Background(), "docs")
	require.NoError(t, err)
	require.NotNil(t, notFound)

	assert.Equal(t, "docs", notFound.Name)
	assert.Equal(t, []string{"papers", "manuals"}, notFound.Available)
	assert.Equal(t, 0, api.CreateCalls())
}

func TestAnswerHit(t *testing.T) {
	api := mock.NewMockAPI()
	api.Collections = []core.Collection{{ID: "k1", Name: "docs"}}
	api.CompletionFunc = func(ctx context.Context, model, question, collectionID string) (string, error) {
		assert.Equal(t, "gemma3:27b", model)
		assert.Equal(t, "what is X?", question)
		assert.Equal(t, "k1", collectionID)
		return "X is Y.", nil
	}

	answer, err := newTestTool(t, api).Answer(context.Background(), "what is X?", "docs", "gemma3:27b")
	require.NoError(t, err)
	assert.Equal(t, "X is Y.", answer)
}

func TestAnswerNotFoundSkipsCompletion(t *testing.T) {
	api := mock.NewMockAPI()
	api.Collections = []core.Collection{
		{ID: "k1", Name: "papers"},
		{ID: "k2", Name: "manuals"},
	}

	answer, err := newTestTool(t, api).Answer(context.Background(), "what is X?", "docs", "gemma3:27b")
	require.NoError(t, err)

	// The miss is an answer enumerating the real names, and the completion
	// endpoint is never called.
	assert.Equal(t, "Collection 'docs' not found. Available: ['papers', 'manuals']", answer)
	assert.Equal(t, 0, api.CompletionCalls())
}

func TestNotFoundMessageFormat(t *testing.T) {
	nf := &NotFound{Name: "docs", Available: []string{"papers", "manuals"}}
	assert.Equal(t, "Collection 'docs' not found. Available: ['papers', 'manuals']", nf.Message())

	empty := &NotFound{Name: "docs"}
	assert.Equal(t, "Collection 'docs' not found. Available: []", empty.Message())
}

func TestAnswerRejectsEmptyQuestion(t *testing.T) {
	api := mock.NewMockAPI()
	_, err := newTestTool(t, api).Answer(context.Background(), "", "docs", "m")
	assert.ErrorIs(t, err, core.ErrEmptyQuestion)
	assert.Equal(t, 0, api.ListCalls())
}

func TestAnswerPropagatesCompletionError(t *testing.T) {
	api := mock.NewMockAPI()
	api.Collections = []core.Collection{{ID: "k1", Name: "docs"}}
	completionErr := errors.New("model unavailable")
	api.CompletionFunc = func(ctx context.Context, model, question, collectionID string) (string, error) {
		return "", completionErr
	}

	_, err := newTestTool(t, api).Answer(context.Background(), "q", "docs", "m")
	assert.ErrorIs(t, err, completionErr)
}

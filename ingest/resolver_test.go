package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/kbsync/core"
	"github.com/poiesic/kbsync/webui/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolverRequiresAPI(t *testing.T) {
	_, err := NewResolver(nil)
	assert.ErrorIs(t, err, ErrAPIRequired)
}

func TestResolveExistingCollection(t *testing.T) {
	api := mock.NewMockAPI()
	api.Collections = []core.Collection{
		{ID: "k1", Name: "docs"},
		{ID: "k2", Name: "notes"},
	}

	resolver, err := NewResolver(api)
	require.NoError(t, err)

	// Two sequential resolves against a backend that already has the name
	// must perform zero create calls and return identical values.
	first, err := resolver.Resolve(context.Background(), "docs")
	require.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), "docs")
	require.NoError(t, err)

	assert.Equal(t, core.Collection{ID: "k1", Name: "docs"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 0, api.CreateCalls())
	assert.Equal(t, 2, api.ListCalls())
}

func TestResolveCreatesMissingCollection(t *testing.T) {
	api := mock.NewMockAPI()

	resolver, err := NewResolver(api)
	require.NoError(t, err)

	created, err := resolver.Resolve(context.Background(), "docs")
	require.NoError(t, err)

	assert.Equal(t, 1, api.ListCalls())
	assert.Equal(t, 1, api.CreateCalls())
	assert.Equal(t, "docs", created.Name)

	// The returned ID is the one the create call reported.
	require.Len(t, api.Collections, 1)
	assert.Equal(t, api.Collections[0].ID, created.ID)
}

func TestResolveNameMatchIsCaseSensitive(t *testing.T) {
	api := mock.NewMockAPI()
	api.Collections = []core.Collection{{ID: "k1", Name: "Docs"}}

	resolver, err := NewResolver(api)
	require.NoError(t, err)

	created, err := resolver.Resolve(context.Background(), "docs")
	require.NoError(t, err)

	assert.Equal(t, 1, api.CreateCalls())
	assert.NotEqual(t, "k1", created.ID)
}

func TestResolveRejectsEmptyName(t *testing.T) {
	api := mock.NewMockAPI()
	resolver, err := NewResolver(api)
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, core.ErrEmptyCollectionName)
	assert.Equal(t, 0, api.ListCalls())
}

func TestResolvePropagatesListError(t *testing.T) {
	api := mock.NewMockAPI()
	listErr := errors.New("list failed")
	api.ListCollectionsFunc = func(ctx context.Context) ([]core.Collection, error) {
		return nil, listErr
	}

	resolver, err := NewResolver(api)
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), "docs")
	assert.ErrorIs(t, err, listErr)
	assert.Equal(t, 0, api.CreateCalls())
}

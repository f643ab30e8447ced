package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chordsign/contractgen/pkg/model"
	"github.com/chordsign/contractgen/pkg/store"
)

func TestMemoryTemplates(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	_, err := m.GetTemplate(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, m.PutTemplate(ctx, model.TemplateDefinition{ID: "touring", Version: 1, SortOrder: 20}))
	require.NoError(t, m.PutTemplate(ctx, model.TemplateDefinition{ID: "licensing", Version: 1, SortOrder: 10}))

	def, err := m.GetTemplate(ctx, "touring")
	require.NoError(t, err)
	assert.Equal(t, 1, def.Version)

	defs, err := m.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "licensing", defs[0].ID, "expected sort-order listing")
}

func TestMemoryDrafts(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	draft := store.Draft{
		ID:         "d1",
		TemplateID: "touring",
		Form:       model.FormData{Fields: map[string]any{"artist_name": "Nadia Reyes"}},
		Version:    1,
		UpdatedAt:  time.Now(),
	}
	require.NoError(t, m.PutDraft(ctx, draft))

	got, err := m.GetDraft(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "touring", got.TemplateID)
	assert.Equal(t, "Nadia Reyes", got.Form.Fields["artist_name"])

	// Last write wins; the version field makes the overwrite visible.
	draft.Version = 2
	require.NoError(t, m.PutDraft(ctx, draft))
	got, err = m.GetDraft(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Version)

	require.NoError(t, m.DeleteDraft(ctx, "d1"))
	_, err = m.GetDraft(ctx, "d1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, m.DeleteDraft(ctx, "d1"), store.ErrNotFound)
}

func TestMemoryContracts(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	require.NoError(t, m.PutContract(ctx, store.Contract{
		ID:         "c1",
		TemplateID: "artist-collaboration",
		Title:      "Artist Collaboration Agreement: Midnight Sessions EP",
		HTML:       "<!DOCTYPE html>...",
		Text:       "ARTIST COLLABORATION AGREEMENT...",
		CreatedAt:  time.Now(),
	}))

	got, err := m.GetContract(ctx, "c1")
	require.NoError(t, err)
	assert.Contains(t, got.Title, "Midnight Sessions EP")

	list, err := m.ListContracts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	newerWins := func(storedVersion int, def model.TemplateDefinition) bool {
		return storedVersion < def.Version
	}

	require.NoError(t, store.Seed(ctx, m, []model.TemplateDefinition{
		{ID: "touring", Version: 1, Name: "v1"},
	}, newerWins))

	// Same version: stored copy kept.
	require.NoError(t, store.Seed(ctx, m, []model.TemplateDefinition{
		{ID: "touring", Version: 1, Name: "v1-edited"},
	}, newerWins))
	def, err := m.GetTemplate(ctx, "touring")
	require.NoError(t, err)
	assert.Equal(t, "v1", def.Name)

	// Newer version: stored copy replaced.
	require.NoError(t, store.Seed(ctx, m, []model.TemplateDefinition{
		{ID: "touring", Version: 2, Name: "v2"},
	}, newerWins))
	def, err = m.GetTemplate(ctx, "touring")
	require.NoError(t, err)
	assert.Equal(t, "v2", def.Name)
}

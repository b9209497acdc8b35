package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palpite/internal/common"
	"palpite/internal/testutil"
)

func TestGetCategories_Seeded(t *testing.T) {
	store := testutil.SetupTestDB(t)

	categories, err := store.GetCategories(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = cat.Name
		assert.True(t, cat.IsActive)
	}
	assert.Contains(t, names, "Alimentação")
	assert.Contains(t, names, "Outros")
}

func TestCreateCategory(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	cat, err := store.CreateCategory(ctx, "Investimentos", "📈", "#00FF00")
	require.NoError(t, err)
	assert.Equal(t, "Investimentos", cat.Name)
	assert.Equal(t, "📈", cat.Icon)

	_, err = store.CreateCategory(ctx, "Investimentos", "📈", "#00FF00")
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)
}

func TestDisableCategory(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.DisableCategory(ctx, "Viagem"))

	categories, err := store.GetCategories(ctx)
	require.NoError(t, err)
	for _, cat := range categories {
		assert.NotEqual(t, "Viagem", cat.Name)
	}

	// Disabled is still resolvable by name, just inactive.
	cat, err := store.GetCategoryByName(ctx, "Viagem")
	require.NoError(t, err)
	assert.False(t, cat.IsActive)

	assert.ErrorIs(t, store.DisableCategory(ctx, "Inexistente"), common.ErrNotFound)
}

func TestGetCategoryByName_NotFound(t *testing.T) {
	store := testutil.SetupTestDB(t)

	_, err := store.GetCategoryByName(context.Background(), "Inexistente")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

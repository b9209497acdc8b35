package keywords

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palpite/internal/common"
)

func TestNewTable(t *testing.T) {
	tests := []struct {
		name       string
		categories map[string][]string
		wantErr    error
	}{
		{
			name: "valid table",
			categories: map[string][]string{
				"Transporte": {"Uber", " taxi "},
			},
		},
		{
			name:       "empty table",
			categories: map[string][]string{},
			wantErr:    common.ErrNoCategories,
		},
		{
			name: "empty category name",
			categories: map[string][]string{
				"": {"uber"},
			},
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.categories)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, table.Has("Transporte"))
			assert.Equal(t, []string{"uber", "taxi"}, table.Keywords("Transporte"))
		})
	}
}

func TestTable_CategoriesSorted(t *testing.T) {
	table, err := NewTable(map[string][]string{
		"Transporte":  {"uber"},
		"Alimentação": {"mercado"},
		"Outros":      {},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Alimentação", "Outros", "Transporte"}, table.Categories())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keywords.yaml")

	content := `categories:
  Transporte:
    - uber
    - taxi
  Alimentação:
    - mercado
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"mercado"}, table.Keywords("Alimentação"))
	assert.True(t, table.Has("Transporte"))
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [not, a, map]"), 0o600))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, common.ErrInvalidKeywordFile)
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	assert.True(t, table.Has(FallbackCategory))
	assert.True(t, table.Has("Transporte"))
	assert.Contains(t, table.Keywords("Transporte"), "uber")
	assert.Empty(t, table.Keywords(FallbackCategory))
}

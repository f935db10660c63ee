package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/bites-ordering-api/internal/domains/menu/domain"
)

func TestPresets(t *testing.T) {
	require.Equal(t, []string{"devine-bites", "katogo"}, Presets())
}

func TestPresetRepository_DefaultMenu(t *testing.T) {
	repo, err := NewPresetRepository("")
	require.NoError(t, err)

	menu, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, menu.Len())
	require.Equal(t, []string{"Main Course", "Dessert", "Beverage"}, menu.Categories())

	pizza, ok := menu.Lookup("Margherita Pizza")
	require.True(t, ok)
	require.True(t, pizza.Price.Equal(decimal.NewFromInt(10)))
}

func TestPresetRepository_Unknown(t *testing.T) {
	_, err := NewPresetRepository("sushi")
	require.Error(t, err)
}

func TestFileRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	content := "items:\n  - name: Rolex\n    price: \"2500.50\"\n    image: rolex.jpg\n    category: Snacks\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	menu, err := NewFileRepository(path).Load(context.Background())
	require.NoError(t, err)
	item, ok := menu.Lookup("Rolex")
	require.True(t, ok)
	require.Equal(t, "2500.5", item.Price.String())
	require.Equal(t, "rolex.jpg", item.ImageRef)
}

func TestFileRepository_RejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	content := "items:\n  - name: Tea\n    price: \"1\"\n  - name: Tea\n    price: \"2\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := NewFileRepository(path).Load(context.Background())
	require.ErrorIs(t, err, domain.ErrDuplicateItemName)
}

func TestFileRepository_Missing(t *testing.T) {
	_, err := NewFileRepository(filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
	require.Error(t, err)
}

package bulkimport

import (
	"strings"
	"testing"

	"restaurant-menu-api/categories"
	"restaurant-menu-api/models"
	"restaurant-menu-api/storage"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	reg, err := categories.Default()
	require.NoError(t, err)
	store, err := storage.New(db, reg)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

const sampleCSV = `Category,Name,Description,Price,IsVeg
Nibbles,Truffle Fries,Hand-cut with truffle oil,295.00,TRUE
Starters,Chicken 65,Andhra style,345.00,FALSE
Entree (Main Course),Lamb Shank,Slow braised,725.00,FALSE
Chef Specials,Mystery Dish,Off-menu,999.00,TRUE
`

func TestRunImportsAndReportsFailures(t *testing.T) {
	store := newTestStore(t)

	report, err := Run(store, strings.NewReader(sampleCSV), false)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 3, report.Imported)
	require.Len(t, report.Failures, 1)

	// "Chef Specials" isn't mapped; the slug fallback produces a key the
	// registry doesn't know, and the row is reported rather than aborting
	// the batch.
	failure := report.Failures[0]
	assert.Equal(t, 4, failure.Row)
	assert.Equal(t, "Mystery Dish", failure.Name)
	assert.Contains(t, failure.Reason, "chef-specials")

	nibbles, err := store.GetMenuItemsByCategory("nibbles")
	require.NoError(t, err)
	require.Len(t, nibbles, 1)
	assert.Equal(t, "Truffle Fries", nibbles[0].Name)
	assert.True(t, nibbles[0].IsVeg)
	assert.Equal(t, "295.00", nibbles[0].Price)

	// "Entree (Main Course)" maps to the canonical entree key.
	entrees, err := store.GetMenuItemsByCategory("entree")
	require.NoError(t, err)
	require.Len(t, entrees, 1)
}

func TestRunReplaceClearsExistingMenu(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddMenuItem(models.MenuItem{
		Name:     "Stale Dish",
		Price:    "100.00",
		Category: "soups",
	})
	require.NoError(t, err)

	report, err := Run(store, strings.NewReader(sampleCSV), true)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Imported)

	soups, err := store.GetMenuItemsByCategory("soups")
	require.NoError(t, err)
	assert.Empty(t, soups, "replace mode drops the previous menu")
}

func TestRunRejectsMissingColumns(t *testing.T) {
	store := newTestStore(t)

	_, err := Run(store, strings.NewReader("Name,Price\nDish,100\n"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Category")
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "chef-specials", Slugify("Chef Specials"))
	assert.Equal(t, "mangalorean-style", Slugify("Mangalorean Style"))
}

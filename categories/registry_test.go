package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryIsValid(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	keys := reg.Keys()
	assert.NotEmpty(t, keys)

	seen := make(map[string]bool)
	for _, k := range keys {
		assert.Falsef(t, seen[k], "duplicate storage key %q", k)
		seen[k] = true
	}
}

func TestNewRejectsDuplicateKeys(t *testing.T) {
	mains := []MainCategory{
		{ID: "food", Subcategories: []SubCategory{
			{ID: "starters", DisplayLabel: "Starters", Key: "starters"},
		}},
		{ID: "bar", Subcategories: []SubCategory{
			{ID: "bar-starters", DisplayLabel: "Bar Starters", Key: "starters"},
		}},
	}
	_, err := New(mains, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starters")
}

func TestNewRejectsBadAliases(t *testing.T) {
	mains := []MainCategory{
		{ID: "food", Subcategories: []SubCategory{
			{ID: "soups", DisplayLabel: "Soups", Key: "soups"},
		}},
	}

	_, err := New(mains, map[string]string{"soups": "soups"})
	require.Error(t, err, "alias shadowing a canonical key")

	_, err = New(mains, map[string]string{"potages": "stews"})
	require.Error(t, err, "alias targeting an unknown key")
}

func TestCanonicalResolvesAliases(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	key, ok := reg.Canonical("entree-(main-course)")
	require.True(t, ok)
	assert.Equal(t, "entree", key)

	key, ok = reg.Canonical("nibbles")
	require.True(t, ok)
	assert.Equal(t, "nibbles", key)

	_, ok = reg.Canonical("molecular-gastronomy")
	assert.False(t, ok)
}

func TestLookups(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	main, ok := reg.FindMain("food")
	require.True(t, ok)
	assert.Equal(t, "FOOD", main.DisplayLabel)

	_, ok = reg.FindMain("brunch")
	assert.False(t, ok)

	sub, ok := reg.FindSub("bao-dimsum")
	require.True(t, ok)
	assert.Equal(t, "bao-dimsum", sub.Key)

	keys := reg.KeysFor("mocktails")
	assert.Equal(t, []string{"signature-mocktails", "soft-beverages"}, keys)

	assert.Nil(t, reg.KeysFor("brunch"))
}

package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	for _, path := range []string{"", DefaultCatalog, "products.json"} {
		products, err := LoadCatalog(path)
		require.NoError(t, err, "path %q", path)
		require.NotEmpty(t, products)
		assert.Equal(t, ProductID("1"), products[0].ID)
		assert.Equal(t, ProductID("sneaker-03"), products[2].ID)
	}

	names, err := EmbeddedCatalogs()
	require.NoError(t, err)
	assert.Contains(t, names, DefaultCatalog)
}

func TestLoadCatalogMissing(t *testing.T) {
	_, err := LoadCatalog(EmbeddedPrefix + "nope.json")
	assert.Error(t, err)
	_, err = LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadLocalCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.json")
	data := `[{"id": "a", "name": "Mug", "brand": "Acme", "price": 5, "originalPrice": 10, "discountPercentage": 50}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	products, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mug", products[0].Name)
	assert.Equal(t, "M.R.P. ₹10 (-50%) ₹5", products[0].PriceLine())
}

func TestParseCatalogValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing name", `[{"id": 1, "brand": "x", "price": 1, "originalPrice": 2}]`},
		{"discount out of range", `[{"id": 1, "name": "n", "brand": "x", "price": 1, "originalPrice": 2, "discountPercentage": 120}]`},
		{"price above original", `[{"id": 1, "name": "n", "brand": "x", "price": 3, "originalPrice": 2}]`},
		{"bad url", `[{"id": 1, "name": "n", "brand": "x", "price": 1, "originalPrice": 2, "imageUrl": "not a url"}]`},
		{"duplicate id", `[{"id": 1, "name": "n", "brand": "x", "price": 1, "originalPrice": 2}, {"id": "1", "name": "m", "brand": "y", "price": 1, "originalPrice": 2}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidProduct)
		})
	}

	_, err := ParseCatalog([]byte(`{`))
	assert.Error(t, err)
	_, err = ParseCatalog([]byte(`[{"id": true}]`))
	assert.Error(t, err)
}

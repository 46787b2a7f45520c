// Package deck is the shopping host for the swipe engine: a catalog of
// products, a stack of cards built from it and the liked/cart basket fed by
// card outcomes.
package deck

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// EmbeddedPrefix selects a catalog from the embedded filesystem.
const EmbeddedPrefix = "res:"

// DefaultCatalog is the embedded catalog used when none is given.
const DefaultCatalog = EmbeddedPrefix + "products.json"

var (
	//go:embed catalog/*.json
	catalogEmbedFS embed.FS
	// catalogFS is the catalog directory exposed as the root of the embedded filesystem.
	catalogFS fs.FS

	validate = validator.New()
)

// ErrInvalidProduct is returned for catalog entries failing validation.
var ErrInvalidProduct = errors.New("invalid product")

func init() {
	var err error
	catalogFS, err = fs.Sub(catalogEmbedFS, "catalog")
	if err != nil {
		panic(fmt.Sprintf("failed to create embedded filesystem: %v", err))
	}
}

// ProductID accepts both numeric and string ids in JSON.
type ProductID string

// UnmarshalJSON decodes a JSON number or string.
func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("product id: %w", err)
	}
	*id = ProductID(n.String())
	return nil
}

// Product is one swipeable catalog entry.
type Product struct {
	ID                 ProductID `json:"id" validate:"required"`
	Name               string    `json:"name" validate:"required"`
	Brand              string    `json:"brand" validate:"required"`
	Price              float64   `json:"price" validate:"gte=0"`
	OriginalPrice      float64   `json:"originalPrice" validate:"gtefield=Price"`
	DiscountPercentage float64   `json:"discountPercentage" validate:"gte=0,lte=100"`
	ImageURL           string    `json:"imageUrl" validate:"omitempty,url"`
}

// PriceLine formats the pricing the way the card footer shows it.
func (p Product) PriceLine() string {
	return fmt.Sprintf("M.R.P. ₹%s (-%s%%) ₹%s",
		formatAmount(p.OriginalPrice), formatAmount(p.DiscountPercentage), formatAmount(p.Price))
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Validate checks a product against its field rules.
func (p Product) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidProduct, p.ID, err)
	}
	return nil
}

// ParseCatalog decodes and validates a JSON product list. Duplicate ids are
// rejected.
func ParseCatalog(data []byte) ([]Product, error) {
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	seen := make(map[ProductID]bool, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidProduct, p.ID)
		}
		seen[p.ID] = true
	}
	return products, nil
}

// selectFilesystem resolves a catalog path to the filesystem holding it.
// The "res:" prefix forces the embedded catalog; otherwise the embedded
// filesystem is searched first, then the local one.
func selectFilesystem(path string) (fs.FS, string, error) {
	if strings.HasPrefix(path, EmbeddedPrefix) {
		clean := path[len(EmbeddedPrefix):]
		if _, err := fs.Stat(catalogFS, clean); err != nil {
			return nil, "", fmt.Errorf("file not found in embedded filesystem: %s", clean)
		}
		return catalogFS, clean, nil
	}
	if _, err := fs.Stat(catalogFS, path); err == nil {
		return catalogFS, path, nil
	}
	if _, err := os.Stat(path); err == nil {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, "", fmt.Errorf("resolve %s: %w", path, err)
		}
		return os.DirFS(filepath.Dir(abs)), filepath.Base(abs), nil
	}
	return nil, "", fmt.Errorf("file not found in embedded or local filesystem: %s", path)
}

// LoadCatalog reads a catalog from the embedded set or from disk. An empty
// path loads DefaultCatalog.
func LoadCatalog(path string) ([]Product, error) {
	if path == "" {
		path = DefaultCatalog
	}
	fsys, name, err := selectFilesystem(path)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// EmbeddedCatalogs lists the catalogs shipped in the binary.
func EmbeddedCatalogs() ([]string, error) {
	entries, err := fs.ReadDir(catalogFS, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, EmbeddedPrefix+e.Name())
		}
	}
	return names, nil
}

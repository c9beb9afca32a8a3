// Package catalog loads, validates and serves the immutable destination list.
package catalog

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/usestring/tripfinder-mcp/internal/indexer"
	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// ErrInvalidCatalog is returned when a catalog file fails decoding or validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is a read-only, id-addressable list of destinations.
// It is safe for concurrent use.
type Catalog struct {
	items       []types.Destination
	byID        map[int]int
	index       *indexer.Indexer
	fingerprint string
}

// New builds a catalog from items. Enum aliases are normalized, search
// scores are cleared and ids must be unique.
func New(items []types.Destination) (*Catalog, error) {
	c := &Catalog{
		items: make([]types.Destination, 0, len(items)),
		byID:  make(map[int]int, len(items)),
	}

	for _, d := range items {
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidCatalog, d.ID)
		}

		tt, err := types.ParseTripType(string(d.TripType))
		if err != nil || tt == types.TripAny {
			return nil, fmt.Errorf("%w: destination %d: trip type %q", ErrInvalidCatalog, d.ID, d.TripType)
		}
		cat, err := types.ParseCategory(string(d.Category))
		if err != nil || cat == types.CategoryAny {
			return nil, fmt.Errorf("%w: destination %d: category %q", ErrInvalidCatalog, d.ID, d.Category)
		}

		d.TripType = tt
		d.Category = cat
		d.SearchScore = 0
		d.Tags = slices.Clone(d.Tags)

		c.byID[d.ID] = len(c.items)
		c.items = append(c.items, d)
	}

	idx, err := indexer.Build(c.items)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	c.index = idx

	sum, err := fingerprint(c.items)
	if err != nil {
		return nil, err
	}
	c.fingerprint = sum

	return c, nil
}

// Load reads a catalog file. The format is chosen by extension:
// .json, .yaml or .yml.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return Parse(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidCatalog, ext)
	}
}

// ParseYAML decodes a YAML catalog document and validates it like JSON.
func ParseYAML(data []byte) (*Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	asJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return Parse(asJSON)
}

// Parse decodes a JSON catalog document of the form
// {"destinations": [...]}, validating it against DocumentSchema first.
func Parse(data []byte) (*Catalog, error) {
	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	problems, err := validate(value)
	if err != nil {
		return nil, err
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(problems, "; "))
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return New(doc.Destinations)
}

// All returns a copy of every destination in catalog order.
func (c *Catalog) All() []types.Destination {
	out := make([]types.Destination, len(c.items))
	for i, d := range c.items {
		d.Tags = slices.Clone(d.Tags)
		out[i] = d
	}
	return out
}

// Get returns the destination with the given id.
func (c *Catalog) Get(id int) (types.Destination, bool) {
	i, ok := c.byID[id]
	if !ok {
		return types.Destination{}, false
	}
	d := c.items[i]
	d.Tags = slices.Clone(d.Tags)
	return d, true
}

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id int) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of destinations.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Fingerprint identifies the catalog contents. Equal catalogs share it.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

// Facets counts the enum and tag distribution of the given ids.
// A nil slice counts the whole catalog.
func (c *Catalog) Facets(ids []int) types.FacetCounts {
	if ids == nil {
		ids = make([]int, len(c.items))
		for i, d := range c.items {
			ids[i] = d.ID
		}
	}
	return c.index.Facets(ids)
}

func fingerprint(items []types.Destination) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("hashing catalog: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8]), nil
}

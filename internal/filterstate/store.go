// Package filterstate owns the session's filter criteria, presets and search
// history, and runs the search, filter and sort pipeline on demand.
package filterstate

import (
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/usestring/tripfinder-mcp/internal/cache"
	"github.com/usestring/tripfinder-mcp/internal/storage"
	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// DefaultHistoryLimit is how many searches are kept when no limit is configured.
const DefaultHistoryLimit = 10

// Store is the single owner of filter state. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	criteria types.Criteria
	history  []types.HistoryEntry

	presets      map[string]types.Preset
	priceCeiling float64
	historyLimit int

	kv       storage.KV
	renderer Renderer
	results  *cache.ResultCache
	flight   singleflight.Group
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// Option configures a Store.
type Option func(*Store)

// WithPriceCeiling sets the upper bound of the default price range.
func WithPriceCeiling(ceiling float64) Option {
	return func(s *Store) {
		if ceiling > 0 {
			s.priceCeiling = ceiling
		}
	}
}

// WithHistoryLimit caps the number of remembered searches.
func WithHistoryLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.historyLimit = n
		}
	}
}

// WithStorage persists search history in kv.
func WithStorage(kv storage.KV) Option {
	return func(s *Store) { s.kv = kv }
}

// WithRenderer hands every recompute result to r.
func WithRenderer(r Renderer) Option {
	return func(s *Store) { s.renderer = r }
}

// WithResultCache memoizes recompute results.
func WithResultCache(c *cache.ResultCache) Option {
	return func(s *Store) { s.results = c }
}

// WithLogger sets the logger used for persistence and import warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a store holding the default criteria.
func New(opts ...Option) *Store {
	s := &Store{
		presets:      builtinPresets(),
		priceCeiling: types.DefaultPriceCeiling,
		historyLimit: DefaultHistoryLimit,
		logger:       slog.Default(),
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.criteria = types.DefaultCriteria(s.priceCeiling)
	return s
}

// PriceCeiling returns the upper bound of the default price range.
func (s *Store) PriceCeiling() float64 {
	return s.priceCeiling
}

// Criteria returns a copy of the current criteria.
func (s *Store) Criteria() types.Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria.Clone()
}

// Snapshot returns a copy of the current criteria together with their
// active filter count, both read under one lock.
func (s *Store) Snapshot() (types.Criteria, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria.Clone(), activeFilterCount(s.criteria, s.priceCeiling)
}

// SetCriteria replaces the current criteria after validating them.
// Enum aliases are normalized.
func (s *Store) SetCriteria(c types.Criteria) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c = normalize(c)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = c.Clone()
	return nil
}

// Reset restores the default criteria.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = types.DefaultCriteria(s.priceCeiling)
}

// AddTag adds tag to the tag constraint. It reports whether the criteria changed.
func (s *Store) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.criteria.Tags, tag) {
		return false
	}
	s.criteria.Tags = append(s.criteria.Tags, tag)
	return true
}

// ActiveFilterCount counts the criteria that differ from their defaults:
// price ceiling, minimum rating, tags, guide and dates.
func (s *Store) ActiveFilterCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return activeFilterCount(s.criteria, s.priceCeiling)
}

func activeFilterCount(c types.Criteria, ceiling float64) int {
	count := 0
	if c.PriceRange.Max != ceiling {
		count++
	}
	if c.MinRating > 0 {
		count++
	}
	if len(c.Tags) > 0 {
		count++
	}
	if c.HasGuide != nil {
		count++
	}
	if c.DateRange != nil {
		count++
	}
	return count
}

// normalize maps enum aliases onto their canonical names. c must be valid.
func normalize(c types.Criteria) types.Criteria {
	if tt, err := types.ParseTripType(string(c.TripType)); err == nil {
		c.TripType = tt
	}
	if cat, err := types.ParseCategory(string(c.Category)); err == nil {
		c.Category = cat
	}
	return c
}

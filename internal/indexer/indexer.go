// Package indexer provides query tokenization and a facet index over catalog destinations.
package indexer

import (
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// Indexer maintains in-memory facet indexes over destinations using Roaring
// bitmaps keyed by destination ID.
type Indexer struct {
	mu sync.RWMutex

	all *roaring.Bitmap

	// Inverted indexes
	idxTripType map[types.TripType]*roaring.Bitmap
	idxCategory map[types.Category]*roaring.Bitmap
	idxTag      map[string]*roaring.Bitmap
	idxGuide    *roaring.Bitmap
}

// New creates an empty Indexer.
func New() *Indexer {
	return &Indexer{
		all:         roaring.New(),
		idxTripType: make(map[types.TripType]*roaring.Bitmap),
		idxCategory: make(map[types.Category]*roaring.Bitmap),
		idxTag:      make(map[string]*roaring.Bitmap),
		idxGuide:    roaring.New(),
	}
}

// Build creates an Indexer over items.
func Build(items []types.Destination) (*Indexer, error) {
	idx := New()
	for _, d := range items {
		if err := idx.Index(d); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// DocID converts a destination ID into a bitmap key.
func DocID(id int) (uint32, error) {
	if id < 0 || uint64(id) > uint64(^uint32(0)) {
		return 0, fmt.Errorf("destination id %d out of range", id)
	}
	return uint32(id), nil
}

// Index adds a destination to every facet it belongs to.
func (idx *Indexer) Index(d types.Destination) error {
	docID, err := DocID(d.ID)
	if err != nil {
		return err
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.all.Add(docID)
	addToBitmap(idx.idxTripType, d.TripType, docID)
	addToBitmap(idx.idxCategory, d.Category, docID)
	for _, tag := range d.Tags {
		addToBitmap(idx.idxTag, tag, docID)
	}
	if d.HasGuide {
		idx.idxGuide.Add(docID)
	}

	return nil
}

// DocCount returns the number of indexed destinations.
func (idx *Indexer) DocCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return int(idx.all.GetCardinality())
}

// Facets counts, for the given destination IDs, how many fall into each facet.
// IDs that were never indexed are ignored.
func (idx *Indexer) Facets(ids []int) types.FacetCounts {
	subset := roaring.New()
	for _, id := range ids {
		if docID, err := DocID(id); err == nil {
			subset.Add(docID)
		}
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	subset.And(idx.all)

	counts := types.FacetCounts{
		Total:      int(subset.GetCardinality()),
		TripTypes:  make(map[string]int),
		Categories: make(map[string]int),
		Tags:       make(map[string]int),
		WithGuide:  int(subset.AndCardinality(idx.idxGuide)),
	}
	for key, bm := range idx.idxTripType {
		if n := subset.AndCardinality(bm); n > 0 {
			counts.TripTypes[string(key)] = int(n)
		}
	}
	for key, bm := range idx.idxCategory {
		if n := subset.AndCardinality(bm); n > 0 {
			counts.Categories[string(key)] = int(n)
		}
	}
	for key, bm := range idx.idxTag {
		if n := subset.AndCardinality(bm); n > 0 {
			counts.Tags[key] = int(n)
		}
	}

	return counts
}

// addToBitmap adds a docID to a keyed bitmap index.
func addToBitmap[K comparable](index map[K]*roaring.Bitmap, key K, docID uint32) {
	bm, exists := index[key]
	if !exists {
		bm = roaring.New()
		index[key] = bm
	}
	bm.Add(docID)
}

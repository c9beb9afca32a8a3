package types

import "time"

// Review is a user-submitted rating of a destination.
type Review struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// FacetCounts is the per-facet cardinality of a result set.
type FacetCounts struct {
	Total      int            `json:"total"`
	TripTypes  map[string]int `json:"trip_types"`
	Categories map[string]int `json:"categories"`
	Tags       map[string]int `json:"tags"`
	WithGuide  int            `json:"with_guide"`
}

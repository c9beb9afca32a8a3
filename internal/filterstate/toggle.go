package filterstate

import "github.com/usestring/tripfinder-mcp/pkg/types"

// Toggle names an on/off control a renderer shows for the criteria.
type Toggle int

const (
	// ToggleStayPackage is on when only travel-plus-stay packages are shown.
	ToggleStayPackage Toggle = iota
	// ToggleTripOnly is on when only trips without a stay are shown.
	ToggleTripOnly
	// ToggleGuide is on when only guided destinations are shown.
	ToggleGuide
)

// Toggles lists every toggle in display order.
var Toggles = []Toggle{ToggleStayPackage, ToggleTripOnly, ToggleGuide}

// Label returns the pt-BR caption of the toggle.
func (t Toggle) Label() string {
	switch t {
	case ToggleStayPackage:
		return "Viagem + Estadia"
	case ToggleTripOnly:
		return "Viagem sem Estadia"
	case ToggleGuide:
		return "Com Guia Turístico"
	}
	return ""
}

// ToggleState reports whether t is on under the current criteria.
func (s *Store) ToggleState(t Toggle) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return toggleState(s.criteria, t)
}

// SetToggle switches t on or off by rewriting the criteria field behind it.
// Turning a category toggle off widens the category to any.
func (s *Store) SetToggle(t Toggle, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.criteria
	switch t {
	case ToggleStayPackage:
		setCategory(c, types.CategoryStay, on)
	case ToggleTripOnly:
		setCategory(c, types.CategoryOffer, on)
	case ToggleGuide:
		if on {
			v := true
			c.HasGuide = &v
		} else {
			c.HasGuide = nil
		}
	}
}

func toggleState(c types.Criteria, t Toggle) bool {
	switch t {
	case ToggleStayPackage:
		return c.Category == types.CategoryStay
	case ToggleTripOnly:
		return c.Category == types.CategoryOffer
	case ToggleGuide:
		return c.HasGuide != nil && *c.HasGuide
	}
	return false
}

func setCategory(c *types.Criteria, cat types.Category, on bool) {
	switch {
	case on:
		c.Category = cat
	case c.Category == cat:
		c.Category = types.CategoryAny
	}
}

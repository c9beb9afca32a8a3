package filterstate

import (
	"slices"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

var presetOrder = []string{"budget", "luxury", "adventure", "culture", "beach"}

func builtinPresets() map[string]types.Preset {
	minRating := 4.5
	guide := true

	return map[string]types.Preset{
		"budget": {
			Key:         "budget",
			Label:       "Viagens Econômicas",
			Description: "Destinos com ótimo custo-benefício",
			PriceRange:  &types.PriceRange{Min: 0, Max: 1000},
			Tags:        []string{"Ofertas"},
		},
		"luxury": {
			Key:         "luxury",
			Label:       "Viagens Premium",
			Description: "Experiências exclusivas e de alto padrão",
			PriceRange:  &types.PriceRange{Min: 2000, Max: 5000},
			MinRating:   &minRating,
			Tags:        []string{"Premium"},
		},
		"adventure": {
			Key:         "adventure",
			Label:       "Aventura",
			Description: "Para os amantes da natureza e aventura",
			Tags:        []string{"Aventura", "Natureza"},
			HasGuide:    &guide,
		},
		"culture": {
			Key:         "culture",
			Label:       "Cultural",
			Description: "Destinos ricos em cultura e história",
			Tags:        []string{"Cultura", "História"},
		},
		"beach": {
			Key:         "beach",
			Label:       "Praia",
			Description: "Paraísos tropicais e praias deslumbrantes",
			Tags:        []string{"Praia"},
		},
	}
}

// Presets returns every preset in display order.
func (s *Store) Presets() []types.Preset {
	out := make([]types.Preset, 0, len(presetOrder))
	for _, key := range presetOrder {
		if p, ok := s.presets[key]; ok {
			p.Tags = slices.Clone(p.Tags)
			out = append(out, p)
		}
	}
	return out
}

// ApplyPreset overlays the named preset onto the current criteria. Fields
// the preset leaves unset keep their values. Unknown names change nothing
// and report false.
func (s *Store) ApplyPreset(name string) (types.Preset, bool) {
	p, ok := s.presets[name]
	if !ok {
		return types.Preset{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p.Overlay(&s.criteria)

	p.Tags = slices.Clone(p.Tags)
	return p, true
}

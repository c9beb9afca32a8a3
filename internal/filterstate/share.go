package filterstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// Share-link parameter names.
const (
	paramType       = "type"
	paramCategory   = "category"
	paramPriceRange = "priceRange"
	paramRating     = "rating"
	paramTags       = "tags"
	paramHasGuide   = "hasGuide"
	paramDateRange  = "dateRange"
)

var errWrongType = errors.New("wrong value type")

// ExportCriteria encodes the current criteria as a URL query string.
// Every field is written. Lists and nullable fields are JSON encoded.
func (s *Store) ExportCriteria() string {
	return EncodeCriteria(s.Criteria())
}

// EncodeCriteria is the stateless form of ExportCriteria.
func EncodeCriteria(c types.Criteria) string {
	v := url.Values{}
	v.Set(paramType, string(c.TripType))
	v.Set(paramCategory, string(c.Category))
	v.Set(paramPriceRange, mustJSON([]float64{c.PriceRange.Min, c.PriceRange.Max}))
	v.Set(paramRating, strconv.FormatFloat(c.MinRating, 'f', -1, 64))

	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	v.Set(paramTags, mustJSON(tags))
	v.Set(paramHasGuide, mustJSON(c.HasGuide))

	if c.DateRange != nil {
		v.Set(paramDateRange, mustJSON([]string{c.DateRange.Start, c.DateRange.End}))
	} else {
		v.Set(paramDateRange, "null")
	}
	return v.Encode()
}

// ImportCriteria applies a query string produced by ExportCriteria. Each
// recognized key is decoded as JSON first, then as a number, then as a
// plain string. A key whose value cannot be used is skipped and logged;
// unknown keys are ignored. It returns false only when s is not a query
// string, in which case nothing changes.
func (s *Store) ImportCriteria(raw string) bool {
	values, err := url.ParseQuery(strings.TrimPrefix(strings.TrimSpace(raw), "?"))
	if err != nil {
		s.logger.Warn("failed to import filters", slog.String("error", err.Error()))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.criteria.Clone()
	for key, vals := range values {
		apply, known := importers[key]
		if !known || len(vals) == 0 {
			continue
		}
		candidate := next.Clone()
		if err := apply(&candidate, coerce(vals[len(vals)-1])); err != nil {
			s.logger.Warn("skipping filter parameter",
				slog.String("key", key),
				slog.String("value", vals[len(vals)-1]),
				slog.String("error", err.Error()),
			)
			continue
		}
		next = candidate
	}

	s.criteria = next
	return true
}

// coerce decodes a parameter value: JSON, then number, then string.
func coerce(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		return f
	}
	return raw
}

var importers = map[string]func(c *types.Criteria, v any) error{
	paramType: func(c *types.Criteria, v any) error {
		str, ok := v.(string)
		if !ok {
			return errWrongType
		}
		tt, err := types.ParseTripType(str)
		if err != nil {
			return err
		}
		c.TripType = tt
		return nil
	},

	paramCategory: func(c *types.Criteria, v any) error {
		str, ok := v.(string)
		if !ok {
			return errWrongType
		}
		cat, err := types.ParseCategory(str)
		if err != nil {
			return err
		}
		c.Category = cat
		return nil
	},

	paramPriceRange: func(c *types.Criteria, v any) error {
		pair, err := numberPair(v)
		if err != nil {
			return err
		}
		r := types.PriceRange{Min: pair[0], Max: pair[1]}
		if r.Min < 0 || r.Min > r.Max {
			return fmt.Errorf("%w: price range [%v, %v]", types.ErrInvalidCriteria, r.Min, r.Max)
		}
		c.PriceRange = r
		return nil
	},

	paramRating: func(c *types.Criteria, v any) error {
		f, ok := v.(float64)
		if !ok {
			return errWrongType
		}
		if f < 0 || f > 5 {
			return fmt.Errorf("%w: rating %v outside [0, 5]", types.ErrInvalidCriteria, f)
		}
		c.MinRating = f
		return nil
	},

	paramTags: func(c *types.Criteria, v any) error {
		if v == nil {
			c.Tags = nil
			return nil
		}
		list, ok := v.([]any)
		if !ok {
			return errWrongType
		}
		tags := make([]string, 0, len(list))
		for _, item := range list {
			tag, ok := item.(string)
			if !ok {
				return errWrongType
			}
			tags = append(tags, tag)
		}
		if len(tags) == 0 {
			tags = nil
		}
		c.Tags = tags
		return nil
	},

	paramHasGuide: func(c *types.Criteria, v any) error {
		switch b := v.(type) {
		case nil:
			c.HasGuide = nil
		case bool:
			c.HasGuide = &b
		default:
			return errWrongType
		}
		return nil
	},

	paramDateRange: func(c *types.Criteria, v any) error {
		if v == nil {
			c.DateRange = nil
			return nil
		}
		list, ok := v.([]any)
		if !ok || len(list) != 2 {
			return errWrongType
		}
		start, ok1 := list[0].(string)
		end, ok2 := list[1].(string)
		if !ok1 || !ok2 {
			return errWrongType
		}
		dr := types.DateRange{Start: start, End: end}
		from, to, err := dr.Bounds()
		if err != nil {
			return err
		}
		if from.After(to) {
			return fmt.Errorf("%w: date range starts after it ends", types.ErrInvalidCriteria)
		}
		c.DateRange = &dr
		return nil
	},
}

func numberPair(v any) ([2]float64, error) {
	list, ok := v.([]any)
	if !ok || len(list) != 2 {
		return [2]float64{}, errWrongType
	}
	var out [2]float64
	for i, item := range list {
		f, ok := item.(float64)
		if !ok {
			return [2]float64{}, errWrongType
		}
		out[i] = f
	}
	return out, nil
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}

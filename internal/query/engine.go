// Package query runs jq expressions over destination result lists.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// Engine executes jq queries against destinations.
type Engine struct{}

// NewEngine creates a new query engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Result contains the values a jq query produced.
type Result struct {
	Values     []any    `json:"values"`
	Errors     []string `json:"errors,omitempty"`
	RawCount   int      `json:"raw_count"`             // count before deduplication
	MatchedIDs []int    `json:"matched_ids,omitempty"` // destinations that produced a value
}

// Query runs expression once with the whole list as input, so
// expressions like `map(.price) | add` see every destination.
func (e *Engine) Query(items []types.Destination, expression string, deduplicate bool, maxResults int) (*Result, error) {
	code, err := compile(expression)
	if err != nil {
		return nil, err
	}

	input, err := toJQ(items)
	if err != nil {
		return nil, err
	}

	result := newResult()
	c := collector{result: result, deduplicate: deduplicate, maxResults: maxResults}
	c.run(code, input, "results")
	return result, nil
}

// QueryEach runs expression once per destination. Errors are labeled with
// the destination id and deduplicated.
func (e *Engine) QueryEach(items []types.Destination, expression string, deduplicate bool, maxResults int) (*Result, error) {
	code, err := compile(expression)
	if err != nil {
		return nil, err
	}

	result := newResult()
	c := collector{result: result, deduplicate: deduplicate, maxResults: maxResults}

	for _, d := range items {
		if c.full() {
			break
		}
		input, err := toJQ(d)
		if err != nil {
			return nil, err
		}
		if c.run(code, input, fmt.Sprintf("destination %d", d.ID)) > 0 {
			result.MatchedIDs = append(result.MatchedIDs, d.ID)
		}
	}

	return result, nil
}

// ValidateExpression checks if a jq expression is valid without executing it.
func (e *Engine) ValidateExpression(expression string) error {
	_, err := compile(expression)
	return err
}

func compile(expression string) (*gojq.Code, error) {
	query, err := gojq.Parse(expression)
	if err != nil {
		var parseErr *gojq.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("invalid jq expression at position %d: %w", parseErr.Offset, err)
		}
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}
	return code, nil
}

// toJQ converts v into the plain maps and slices gojq operates on.
func toJQ(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding query input: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding query input: %w", err)
	}
	return out, nil
}

func newResult() *Result {
	return &Result{Values: make([]any, 0)}
}

type collector struct {
	result      *Result
	deduplicate bool
	maxResults  int
	seen        map[string]bool
	seenErrors  map[string]bool
}

func (c *collector) full() bool {
	return c.maxResults > 0 && len(c.result.Values) >= c.maxResults
}

// run drains one execution and returns how many non-null values it produced.
func (c *collector) run(code *gojq.Code, input any, label string) int {
	if c.seen == nil {
		c.seen = make(map[string]bool)
		c.seenErrors = make(map[string]bool)
	}

	produced := 0
	iter := code.Run(input)
	for !c.full() {
		v, ok := iter.Next()
		if !ok {
			break
		}

		if err, isErr := v.(error); isErr {
			msg := formatJQError(label, err)
			if !c.seenErrors[msg] {
				c.seenErrors[msg] = true
				c.result.Errors = append(c.result.Errors, msg)
			}
			continue
		}
		if v == nil {
			continue
		}

		produced++
		c.result.RawCount++

		if c.deduplicate {
			key := valueKey(v)
			if c.seen[key] {
				continue
			}
			c.seen[key] = true
		}
		c.result.Values = append(c.result.Values, v)
	}
	return produced
}

// formatJQError decorates runtime errors with a hint for the common cases.
// gojq runtime errors are untyped, so the hints match on message text.
func formatJQError(label string, err error) string {
	var haltErr *gojq.HaltError
	if errors.As(err, &haltErr) {
		if haltErr.Value() == nil {
			return fmt.Sprintf("%s: query halted", label)
		}
		return fmt.Sprintf("%s: query halted with: %v", label, haltErr.Value())
	}

	errStr := err.Error()

	var hint string
	switch {
	case strings.Contains(errStr, "cannot iterate over: null"):
		hint = " (the field may be missing on this destination)"
	case strings.Contains(errStr, "cannot index") && strings.Contains(errStr, "with"):
		hint = " (field not found or wrong type)"
	case strings.Contains(errStr, "object") && strings.Contains(errStr, "cannot be iterated"):
		hint = " (expected array but got object, try removing '[]')"
	case strings.Contains(errStr, "array") && strings.Contains(errStr, "cannot be indexed"):
		hint = " (expected object but got array, try adding '[]')"
	}

	return fmt.Sprintf("%s: %s%s", label, errStr, hint)
}

// valueKey creates a string key for deduplication.
func valueKey(v any) string {
	switch val := v.(type) {
	case string:
		return "s:" + val
	case float64:
		return fmt.Sprintf("n:%v", val)
	case int:
		return fmt.Sprintf("n:%v", val)
	case bool:
		return fmt.Sprintf("b:%v", val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("?:%v", val)
		}
		return "j:" + string(b)
	}
}

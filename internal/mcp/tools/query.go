package tools

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/tripfinder-mcp/internal/query"
)

// QueryResultsInput is the input for tripfinder_query_results.
type QueryResultsInput struct {
	Expression     string `json:"expression" jsonschema:"jq expression. The input is the array of result destinations unless per_destination is set, e.g. 'map(.price) | add / length'"`
	Query          string `json:"query,omitempty" jsonschema:"Optional search text. The session filters always apply."`
	Sort           string `json:"sort,omitempty" jsonschema:"Ordering of the input array (default: relevance)"`
	PerDestination bool   `json:"per_destination,omitempty" jsonschema:"Run the expression once per destination, e.g. 'select(.rating > 4.7) | .title'"`
	Deduplicate    bool   `json:"deduplicate,omitempty" jsonschema:"Drop repeated values"`
	MaxResults     int    `json:"max_results,omitempty" jsonschema:"Max values returned (default: 50)"`
	Compact        bool   `json:"compact,omitempty" jsonschema:"Trim arrays inside values to 3 items and strings to 200 characters"`
}

// QueryResultsOutput is the output for tripfinder_query_results.
type QueryResultsOutput struct {
	Values     []any    `json:"values,omitzero"`
	Errors     []string `json:"errors,omitzero"`
	RawCount   int      `json:"raw_count"`
	MatchedIDs []int    `json:"matched_ids,omitzero"`
	Inputs     int      `json:"inputs"`
	Hint       string   `json:"hint,omitempty"`
}

// ToolQueryResults runs a jq expression over the current results.
func ToolQueryResults(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input QueryResultsInput) (*sdkmcp.CallToolResult, QueryResultsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input QueryResultsInput) (*sdkmcp.CallToolResult, QueryResultsOutput, error) {
		expr := strings.TrimSpace(input.Expression)
		if expr == "" {
			return nil, QueryResultsOutput{}, ErrInvalidInput("expression is required")
		}
		if err := d.Query.ValidateExpression(expr); err != nil {
			return nil, QueryResultsOutput{}, ErrInvalidInput(err.Error())
		}

		res := d.Preview(input.Query, input.Sort)

		limit := input.MaxResults
		if limit <= 0 {
			limit = d.Config.DefaultQueryLimit
		}

		run := d.Query.Query
		if input.PerDestination {
			run = d.Query.QueryEach
		}
		qr, err := run(res.Items, expr, input.Deduplicate, limit)
		if err != nil {
			return nil, QueryResultsOutput{}, ErrInvalidInput(err.Error())
		}

		values := qr.Values
		if input.Compact {
			values = query.Compact(values, query.DefaultLimits())
		}

		return nil, QueryResultsOutput{
			Values:     values,
			Errors:     qr.Errors,
			RawCount:   qr.RawCount,
			MatchedIDs: qr.MatchedIDs,
			Inputs:     len(res.Items),
			Hint:       d.SortHint(input.Sort),
		}, nil
	}
}

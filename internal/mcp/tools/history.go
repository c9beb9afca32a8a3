package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HistoryInput is the input for tripfinder_history.
type HistoryInput struct{}

// HistoryOutput is the output for tripfinder_history.
type HistoryOutput struct {
	Entries []HistoryView `json:"entries,omitzero"`
}

// ToolHistory lists recent searches, newest first.
func ToolHistory(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input HistoryInput) (*sdkmcp.CallToolResult, HistoryOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input HistoryInput) (*sdkmcp.CallToolResult, HistoryOutput, error) {
		entries := d.Store.History()
		if len(entries) == 0 {
			return nil, HistoryOutput{}, nil
		}

		out := HistoryOutput{Entries: make([]HistoryView, len(entries))}
		for i, e := range entries {
			out.Entries[i] = historyView(e)
		}
		return nil, out, nil
	}
}

// RestoreHistoryInput is the input for tripfinder_restore_history.
type RestoreHistoryInput struct {
	ID   string `json:"id" jsonschema:"History entry ID from tripfinder_history"`
	Sort string `json:"sort,omitempty" jsonschema:"Ordering for the rerun search (default: relevance)"`
}

// RestoreHistoryOutput is the output for tripfinder_restore_history.
type RestoreHistoryOutput struct {
	Entry  HistoryView  `json:"entry"`
	Search SearchOutput `json:"search"`
}

// ToolRestoreHistory makes a past search's filters current and reruns it.
func ToolRestoreHistory(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input RestoreHistoryInput) (*sdkmcp.CallToolResult, RestoreHistoryOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input RestoreHistoryInput) (*sdkmcp.CallToolResult, RestoreHistoryOutput, error) {
		entry, ok := d.Store.RestoreHistory(input.ID)
		if !ok {
			return nil, RestoreHistoryOutput{}, ErrNotFound("history entry", input.ID)
		}

		res, err := d.Recompute(ctx, entry.Query, input.Sort)
		if err != nil {
			return nil, RestoreHistoryOutput{}, WrapStorageError(err)
		}

		shown := page(res.Items, 0, d.ResolveLimit(0))
		return nil, RestoreHistoryOutput{
			Entry: historyView(entry),
			Search: SearchOutput{
				Query:         res.Query,
				Sort:          string(res.SortKey),
				Total:         len(res.Items),
				ActiveFilters: res.ActiveFilters,
				Cached:        res.Cached,
				Results:       d.destinationResults(shown),
				Hint:          joinHints(d.SortHint(input.Sort), resultHint(len(res.Items), len(shown), 0)),
			},
		}, nil
	}
}

// Package tools contains MCP tool implementations for tripfinder.
package tools

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// MIME type constant.
const MimeJSON = "application/json"

// MakeJSONToolResult creates a CallToolResult with JSON text content.
func MakeJSONToolResult(v any) (*sdkmcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: string(b)},
		},
	}, nil
}

// DestinationResult is a destination as returned by tools.
type DestinationResult struct {
	Destination types.Destination `json:"destination"`
	Favorite    bool              `json:"favorite"`
}

// HistoryView is a history entry with a string timestamp.
type HistoryView struct {
	ID        string         `json:"id"`
	Query     string         `json:"query"`
	Filters   types.Criteria `json:"filters"`
	Timestamp string         `json:"timestamp"`
}

// ReviewView is a review with a string creation time.
type ReviewView struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
}

func (d *Deps) destinationResults(items []types.Destination) []DestinationResult {
	out := make([]DestinationResult, len(items))
	for i, item := range items {
		out[i] = DestinationResult{
			Destination: item,
			Favorite:    d.Favorites != nil && d.Favorites.Contains(item.ID),
		}
	}
	return out
}

func historyView(e types.HistoryEntry) HistoryView {
	return HistoryView{
		ID:        e.ID,
		Query:     e.Query,
		Filters:   e.Filters,
		Timestamp: e.Timestamp.UTC().Format(time.RFC3339),
	}
}

func reviewView(r types.Review) ReviewView {
	return ReviewView{
		ID:          r.ID,
		Destination: r.Destination,
		Rating:      r.Rating,
		Comment:     r.Comment,
		Date:        r.Date,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func reviewViews(rs []types.Review) []ReviewView {
	out := make([]ReviewView, len(rs))
	for i, r := range rs {
		out[i] = reviewView(r)
	}
	return out
}

func ids(items []types.Destination) []int {
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func page[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func resultHint(total, shown, offset int) string {
	switch {
	case total == 0:
		return "No destinations match. Try tripfinder_reset_filters or a broader query."
	case offset+shown < total:
		return fmt.Sprintf("Showing %d of %d. Use offset=%d for the next page.", shown, total, offset+shown)
	}
	return ""
}

func joinHints(hints ...string) string {
	var parts []string
	for _, h := range hints {
		if h != "" {
			parts = append(parts, h)
		}
	}
	return strings.Join(parts, " ")
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

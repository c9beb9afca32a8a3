package tools

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/tripfinder-mcp/internal/reviews"
	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// SubmitReviewInput is the input for tripfinder_submit_review.
type SubmitReviewInput struct {
	Destination string `json:"destination" jsonschema:"Destination name as the traveler wrote it"`
	Rating      int    `json:"rating" jsonschema:"Whole stars from 1 to 5"`
	Comment     string `json:"comment" jsonschema:"Free-text review"`
	Date        string `json:"date" jsonschema:"Travel date (YYYY-MM-DD)"`
}

// SubmitReviewOutput is the output for tripfinder_submit_review.
type SubmitReviewOutput struct {
	Review ReviewView `json:"review"`
}

// ToolSubmitReview validates and stores a review.
func ToolSubmitReview(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SubmitReviewInput) (*sdkmcp.CallToolResult, SubmitReviewOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SubmitReviewInput) (*sdkmcp.CallToolResult, SubmitReviewOutput, error) {
		r, err := d.Reviews.Submit(ctx, reviews.Submission{
			Destination: input.Destination,
			Rating:      input.Rating,
			Comment:     input.Comment,
			Date:        input.Date,
		})
		if err != nil {
			return nil, SubmitReviewOutput{}, WrapStorageError(err)
		}
		return nil, SubmitReviewOutput{Review: reviewView(r)}, nil
	}
}

// ListReviewsInput is the input for tripfinder_list_reviews.
type ListReviewsInput struct {
	Destination string `json:"destination,omitempty" jsonschema:"Only reviews for this destination (case-insensitive)"`
	Limit       int    `json:"limit,omitempty" jsonschema:"Max reviews (default: all)"`
}

// ListReviewsOutput is the output for tripfinder_list_reviews.
type ListReviewsOutput struct {
	Total   int          `json:"total"`
	Reviews []ReviewView `json:"reviews,omitzero"`
}

// ToolListReviews lists reviews, newest first.
func ToolListReviews(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListReviewsInput) (*sdkmcp.CallToolResult, ListReviewsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListReviewsInput) (*sdkmcp.CallToolResult, ListReviewsOutput, error) {
		all := d.Reviews.All()

		want := strings.TrimSpace(input.Destination)
		var matching []types.Review
		for _, r := range all {
			if want == "" || strings.EqualFold(r.Destination, want) {
				matching = append(matching, r)
			}
		}

		shown := page(matching, 0, input.Limit)
		out := ListReviewsOutput{Total: len(matching)}
		if len(shown) > 0 {
			out.Reviews = reviewViews(shown)
		}
		return nil, out, nil
	}
}

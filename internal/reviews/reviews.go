// Package reviews stores user-submitted destination reviews.
package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/usestring/tripfinder-mcp/internal/storage"
	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// ErrInvalidReview is returned by Submit when a field is missing or out of range.
var ErrInvalidReview = errors.New("invalid review")

// Submission is the user-provided part of a review.
type Submission struct {
	Destination string `json:"destination"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	Date        string `json:"date"`
}

// Validate checks that every field is present and in range.
func (s Submission) Validate() error {
	var problems []string
	if strings.TrimSpace(s.Destination) == "" {
		problems = append(problems, "destination is required")
	}
	if strings.TrimSpace(s.Comment) == "" {
		problems = append(problems, "comment is required")
	}
	if s.Rating < 1 || s.Rating > 5 {
		problems = append(problems, "rating must be between 1 and 5")
	}
	if _, err := time.Parse(types.DateLayout, s.Date); err != nil {
		problems = append(problems, "date must be YYYY-MM-DD")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidReview, strings.Join(problems, "; "))
	}
	return nil
}

// Book holds reviews newest first and persists them on every submission.
type Book struct {
	mu      sync.RWMutex
	reviews []types.Review
	kv      storage.KV
	logger  *slog.Logger
	now     func() time.Time
}

// Load reads the book from kv. A missing, unreadable or corrupt value starts
// empty and the failure is logged. Only a cancelled ctx is returned.
func Load(ctx context.Context, kv storage.KV, logger *slog.Logger) (*Book, error) {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Book{kv: kv, logger: logger, now: time.Now}

	raw, ok, err := kv.Get(ctx, storage.KeyReviews)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("loading reviews: %w", ctxErr)
		}
		logger.Warn("failed to read reviews", slog.String("error", err.Error()))
		return b, nil
	}
	if !ok {
		return b, nil
	}

	if err := json.Unmarshal([]byte(raw), &b.reviews); err != nil {
		logger.Warn("discarding corrupt reviews", slog.String("error", err.Error()))
		b.reviews = nil
	}
	return b, nil
}

// Submit validates s, stores it as the newest review and persists the book.
func (b *Book) Submit(ctx context.Context, s Submission) (types.Review, error) {
	if err := s.Validate(); err != nil {
		return types.Review{}, err
	}

	r := types.Review{
		ID:          uuid.NewString(),
		Destination: strings.TrimSpace(s.Destination),
		Rating:      s.Rating,
		Comment:     strings.TrimSpace(s.Comment),
		Date:        s.Date,
		CreatedAt:   b.now().UTC(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.reviews = append([]types.Review{r}, b.reviews...)

	data, err := json.Marshal(b.reviews)
	if err != nil {
		return r, err
	}
	if err := b.kv.Set(ctx, storage.KeyReviews, string(data)); err != nil {
		b.logger.Warn("failed to persist reviews", slog.String("error", err.Error()))
		return r, fmt.Errorf("saving reviews: %w", err)
	}
	return r, nil
}

// Recent returns up to n reviews, newest first. n <= 0 returns all.
func (b *Book) Recent(n int) []types.Review {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n <= 0 || n > len(b.reviews) {
		n = len(b.reviews)
	}
	out := make([]types.Review, n)
	copy(out, b.reviews[:n])
	return out
}

// All returns every review, newest first.
func (b *Book) All() []types.Review {
	return b.Recent(0)
}

package reviews

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/tripfinder-mcp/internal/storage"
)

func valid() Submission {
	return Submission{Destination: "Paris", Rating: 5, Comment: "Incrível", Date: "2024-04-20"}
}

func TestSubmission_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Submission)
	}{
		{name: "missing destination", mutate: func(s *Submission) { s.Destination = "  " }},
		{name: "missing comment", mutate: func(s *Submission) { s.Comment = "" }},
		{name: "rating zero", mutate: func(s *Submission) { s.Rating = 0 }},
		{name: "rating six", mutate: func(s *Submission) { s.Rating = 6 }},
		{name: "bad date", mutate: func(s *Submission) { s.Date = "20/04/2024" }},
		{name: "missing date", mutate: func(s *Submission) { s.Date = "" }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidReview)
		})
	}
}

func TestBook_SubmitNewestFirst(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()

	b, err := Load(ctx, kv, nil)
	require.NoError(t, err)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return fixed }

	first, err := b.Submit(ctx, valid())
	require.NoError(t, err)
	_, err = uuid.Parse(first.ID)
	assert.NoError(t, err)
	assert.Equal(t, fixed, first.CreatedAt)

	s := valid()
	s.Destination = "Tóquio"
	second, err := b.Submit(ctx, s)
	require.NoError(t, err)

	all := b.All()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	recent := b.Recent(1)
	require.Len(t, recent, 1)
	assert.Equal(t, "Tóquio", recent[0].Destination)

	reloaded, err := Load(ctx, kv, nil)
	require.NoError(t, err)
	assert.Equal(t, all, reloaded.All())
}

func TestBook_RejectsInvalid(t *testing.T) {
	ctx := context.Background()
	b, err := Load(ctx, storage.NewMemoryStore(), nil)
	require.NoError(t, err)

	s := valid()
	s.Rating = 0
	_, err = b.Submit(ctx, s)
	assert.ErrorIs(t, err, ErrInvalidReview)
	assert.Empty(t, b.All())
}

func TestLoad_CorruptStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, storage.KeyReviews, "not json"))

	b, err := Load(ctx, kv, nil)
	require.NoError(t, err)
	assert.Empty(t, b.All())
}

type unreadableKV struct{ storage.KV }

func (unreadableKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("read failure")
}

func TestLoad_ReadFailureStartsEmpty(t *testing.T) {
	b, err := Load(context.Background(), unreadableKV{storage.NewMemoryStore()}, nil)
	require.NoError(t, err)
	assert.Empty(t, b.All())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Load(ctx, unreadableKV{storage.NewMemoryStore()}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

package request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/library-portal/internal/model"
	"github.com/iliyamo/library-portal/internal/storage"
)

func newLedger(t *testing.T) (*Ledger, *storage.Memory) {
	t.Helper()
	st := storage.NewMemory()
	l := NewLedger(st)
	l.now = func() time.Time {
		return time.Date(2026, time.September, 2, 11, 0, 0, 0, time.UTC)
	}
	return l, st
}

func TestSubmitAcceptsAndStamps(t *testing.T) {
	l, _ := newLedger(t)
	res, err := l.Submit(context.Background(), model.BookRequest{
		Title:  "Designing Data-Intensive Applications",
		Author: "Martin Kleppmann",
		Reason: "missing from the systems shelf",
	})
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	require.NotNil(t, res.Request)
	assert.Equal(t, "Designing Data-Intensive Applications", res.Request.Title)
	assert.Equal(t, time.Date(2026, time.September, 2, 11, 0, 0, 0, time.UTC), res.Request.RequestedAt)

	list, err := l.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestSubmitRejectsDuplicateTitleWhole(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	_, err := l.Submit(ctx, model.BookRequest{Title: "The Go Programming Language", Author: "Donovan"})
	require.NoError(t, err)

	// Same title modulo case and whitespace, different metadata.
	res, err := l.Submit(ctx, model.BookRequest{Title: "  the go programming language ", Author: "Kernighan", ISBN: "9780134190440"})
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, ReasonDuplicate, res.Reason)
	assert.Nil(t, res.Request)

	list, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Donovan", list[0].Author)
}

func TestSubmitDistinctTitlesAppendInOrder(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	for _, title := range []string{"First Title", "Second Title", "Third Title"} {
		res, err := l.Submit(ctx, model.BookRequest{Title: title})
		require.NoError(t, err)
		assert.True(t, res.Accepted)
	}

	list, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "First Title", list[0].Title)
	assert.Equal(t, "Third Title", list[2].Title)
}

func TestSubmitFailsOnMalformedState(t *testing.T) {
	l, st := newLedger(t)
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, storage.KeyBookRequests, "{not json"))

	_, err := l.Submit(ctx, model.BookRequest{Title: "Anything"})
	assert.ErrorIs(t, err, storage.ErrMalformedState)

	_, err = l.List(ctx)
	assert.ErrorIs(t, err, storage.ErrMalformedState)
}

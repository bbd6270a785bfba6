// Package request keeps the ledger of titles students asked the library to
// acquire. Requests are deduplicated by normalized title only: a second
// request for the same title is rejected whole, never merged.
package request

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/iliyamo/library-portal/internal/model"
	"github.com/iliyamo/library-portal/internal/storage"
)

// Rejection reasons reported in Result.
const (
	ReasonDuplicate = "duplicate"
)

// Result is the typed outcome of a Submit.
type Result struct {
	Accepted bool               `json:"accepted"`
	Reason   string             `json:"reason,omitempty"`
	Request  *model.BookRequest `json:"request,omitempty"`
}

// Ledger persists book requests behind the storage port.
type Ledger struct {
	store storage.Store
	now   func() time.Time
}

// NewLedger returns a ledger over the given storage port.
func NewLedger(st storage.Store) *Ledger {
	return &Ledger{store: st, now: time.Now}
}

// Submit records a request unless one with the same normalized title is
// already present. The duplicate check trims and case-folds the title; the
// stored request keeps the title exactly as submitted, stamped with the
// current UTC time. This is a write path: a malformed stored blob aborts
// with storage.ErrMalformedState.
func (l *Ledger) Submit(ctx context.Context, req model.BookRequest) (Result, error) {
	existing, err := l.load(ctx)
	if err != nil {
		return Result{}, err
	}

	norm := normalizeTitle(req.Title)
	for _, r := range existing {
		if normalizeTitle(r.Title) == norm {
			return Result{Accepted: false, Reason: ReasonDuplicate}, nil
		}
	}

	req.RequestedAt = l.now().UTC()
	existing = append(existing, req)
	buf, err := json.Marshal(existing)
	if err != nil {
		return Result{}, err
	}
	if err := l.store.Set(ctx, storage.KeyBookRequests, string(buf)); err != nil {
		return Result{}, err
	}
	return Result{Accepted: true, Request: &req}, nil
}

// List returns all stored requests in submission order.
func (l *Ledger) List(ctx context.Context) ([]model.BookRequest, error) {
	return l.load(ctx)
}

func (l *Ledger) load(ctx context.Context) ([]model.BookRequest, error) {
	raw, ok, err := l.store.Get(ctx, storage.KeyBookRequests)
	if err != nil {
		return nil, err
	}
	requests := []model.BookRequest{}
	if ok && strings.TrimSpace(raw) != "" {
		if err := json.Unmarshal([]byte(raw), &requests); err != nil {
			return nil, storage.ErrMalformedState
		}
	}
	return requests, nil
}

func normalizeTitle(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

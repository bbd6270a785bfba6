package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/iliyamo/library-portal/internal/model"
	"github.com/iliyamo/library-portal/internal/storage"
)

// Store merges the baseline catalog with the added books and reviews kept
// behind the storage port. Snapshots are assembled per call; the store is
// deliberately not reactive to writes from other processes, matching the
// last-writer-wins model of the storage port.
type Store struct {
	store storage.Store
}

// NewStore returns a catalog store over the given storage port.
func NewStore(st storage.Store) *Store {
	return &Store{store: st}
}

// Snapshot returns the full catalog: baseline books first in their fixed
// order, then added books in insertion order. Each book carries its merged
// review set. This is a read path: missing or malformed stored blobs are
// treated as empty and never surface as errors.
func (s *Store) Snapshot(ctx context.Context) []model.Book {
	added := s.readCustomBooks(ctx)
	reviews := s.readReviews(ctx)

	out := make([]model.Book, 0, len(baselineBooks)+len(added))
	for _, b := range baselineBooks {
		b.Reviews = mergeReviews(b.Reviews, reviews[strconv.Itoa(b.ID)])
		out = append(out, b)
	}
	for _, b := range added {
		b.Reviews = mergeReviews(b.Reviews, reviews[strconv.Itoa(b.ID)])
		out = append(out, b)
	}
	return out
}

// GetByID returns a single merged book from the current snapshot.
func (s *Store) GetByID(ctx context.Context, id int) (model.Book, bool) {
	for _, b := range s.Snapshot(ctx) {
		if b.ID == id {
			return b, true
		}
	}
	return model.Book{}, false
}

// BookDraft is the admin input for a new catalog entry. Title, Author,
// Branch and Subject are required; CoverImage defaults to a generated
// placeholder URL when blank.
type BookDraft struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	Summary    string `json:"summary"`
	CoverImage string `json:"coverImage"`
	Branch     string `json:"branch"`
	Subject    string `json:"subject"`
	Available  bool   `json:"available"`
}

// AddBook appends a new book to the stored catalog and returns it with its
// assigned id (max existing id + 1 across baseline and added books). This
// is a write path: a malformed customBooks blob aborts the operation with
// storage.ErrMalformedState instead of being silently replaced.
func (s *Store) AddBook(ctx context.Context, draft BookDraft) (model.Book, error) {
	raw, ok, err := s.store.Get(ctx, storage.KeyCustomBooks)
	if err != nil {
		return model.Book{}, err
	}
	added := []model.Book{}
	if ok && strings.TrimSpace(raw) != "" {
		if err := json.Unmarshal([]byte(raw), &added); err != nil {
			return model.Book{}, storage.ErrMalformedState
		}
	}

	maxID := 0
	for _, b := range baselineBooks {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	for _, b := range added {
		if b.ID > maxID {
			maxID = b.ID
		}
	}

	book := model.Book{
		ID:         maxID + 1,
		Title:      draft.Title,
		Author:     draft.Author,
		Summary:    draft.Summary,
		CoverImage: draft.CoverImage,
		Branch:     draft.Branch,
		Subject:    draft.Subject,
		Available:  draft.Available,
		Reviews:    []model.Review{},
	}
	if book.CoverImage == "" {
		book.CoverImage = fmt.Sprintf("https://picsum.photos/seed/book%d/300/400", book.ID)
	}

	added = append(added, book)
	buf, err := json.Marshal(added)
	if err != nil {
		return model.Book{}, err
	}
	if err := s.store.Set(ctx, storage.KeyCustomBooks, string(buf)); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// AddReview appends a review for the given book to the stored review map.
// Reviews are append-only; there is no edit or delete. The book must exist
// in the current snapshot and the rating must be 1..5.
func (s *Store) AddReview(ctx context.Context, bookID int, review model.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}
	if _, ok := s.GetByID(ctx, bookID); !ok {
		return ErrBookNotFound
	}

	raw, ok, err := s.store.Get(ctx, storage.KeyBookReviews)
	if err != nil {
		return err
	}
	byBook := map[string][]model.Review{}
	if ok && strings.TrimSpace(raw) != "" {
		if err := json.Unmarshal([]byte(raw), &byBook); err != nil {
			return storage.ErrMalformedState
		}
	}

	key := strconv.Itoa(bookID)
	byBook[key] = append(byBook[key], review)
	buf, err := json.Marshal(byBook)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, storage.KeyBookReviews, string(buf))
}

// readCustomBooks decodes the added-books blob, treating absence and decode
// failures as an empty catalog extension.
func (s *Store) readCustomBooks(ctx context.Context) []model.Book {
	raw, ok, err := s.store.Get(ctx, storage.KeyCustomBooks)
	if err != nil || !ok {
		return nil
	}
	var added []model.Book
	if err := json.Unmarshal([]byte(raw), &added); err != nil {
		return nil
	}
	return added
}

// readReviews decodes the stored review map, keyed by decimal book id.
func (s *Store) readReviews(ctx context.Context) map[string][]model.Review {
	raw, ok, err := s.store.Get(ctx, storage.KeyBookReviews)
	if err != nil || !ok {
		return nil
	}
	var byBook map[string][]model.Review
	if err := json.Unmarshal([]byte(raw), &byBook); err != nil {
		return nil
	}
	return byBook
}

// mergeReviews concatenates the two review sources and collapses entries
// that are structurally identical, keeping the first occurrence's position.
// Two independently written reviews with the same name, rating and comment
// therefore merge into one.
func mergeReviews(base, stored []model.Review) []model.Review {
	out := make([]model.Review, 0, len(base)+len(stored))
	seen := make(map[model.Review]struct{}, len(base)+len(stored))
	for _, r := range base {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	for _, r := range stored {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

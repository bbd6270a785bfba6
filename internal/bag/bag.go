// Package bag implements the bounded selection list a student fills before
// placing a pickup order. A bag holds at most Capacity books, unique by id,
// in insertion order. Operations are total: nothing here is an error, the
// typed Status tells the caller what happened so the presentation layer can
// decide how (or whether) to notify.
package bag

import (
	"sync"

	"github.com/iliyamo/library-portal/internal/model"
)

// Capacity is the maximum number of books a bag can hold at once.
const Capacity = 4

// Status classifies the outcome of an Add.
type Status string

const (
	StatusAdded     Status = "added"     // book appended to the bag
	StatusDuplicate Status = "duplicate" // already present; silent no-op
	StatusFull      Status = "full"      // bag at capacity; user-visible notice
)

// Bag is one user's selection. Safe for concurrent use; handlers for the
// same user may race on it when a client fires requests in parallel.
type Bag struct {
	mu    sync.Mutex
	items []model.Book
}

// New returns an empty bag.
func New() *Bag { return &Bag{} }

// Add appends the book unless the bag is full or the id is already present.
// The capacity check runs before the duplicate check, so a full bag reports
// StatusFull even for a book it already contains.
func (b *Bag) Add(book model.Book) Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.items) >= Capacity {
		return StatusFull
	}
	for _, it := range b.items {
		if it.ID == book.ID {
			return StatusDuplicate
		}
	}
	b.items = append(b.items, book)
	return StatusAdded
}

// Remove drops the book with the given id. Removing an absent id is a no-op.
func (b *Bag) Remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	kept := b.items[:0]
	for _, it := range b.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	b.items = kept
}

// Clear empties the bag unconditionally.
func (b *Bag) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = nil
}

// Items returns a copy of the bag contents in insertion order.
func (b *Bag) Items() []model.Book {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.Book, len(b.items))
	copy(out, b.items)
	return out
}

// Len reports the current number of books in the bag.
func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Package storage defines the key-value port behind which all portal state
// lives. The domain packages read and write whole JSON blobs under fixed
// keys; writes are last-writer-wins with no locking or transactions.
package storage

import (
	"context"
	"errors"
)

// Keys of the persisted blobs. Each value is a JSON document.
const (
	KeyCustomBooks  = "customBooks"  // []model.Book added through the admin surface
	KeyBookReviews  = "bookReviews"  // map[bookID][]model.Review
	KeyBookRequests = "bookRequests" // []model.BookRequest
)

// ErrMalformedState is returned by domain code when a stored blob fails to
// decode on a write path. Read paths treat the same condition as empty.
var ErrMalformedState = errors.New("stored state is malformed")

// Store is the storage port. Get reports whether the key was present; an
// absent key is not an error. Set overwrites unconditionally.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

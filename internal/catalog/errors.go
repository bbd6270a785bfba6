// Package catalog assembles the book catalog from the baseline seed data
// and the blobs behind the storage port, and implements search, review
// aggregation and the admin write paths over it.
package catalog

import "errors"

// ErrBookNotFound is returned when an operation references a book id that
// exists in neither the baseline nor the added catalog. Handlers should
// translate this into an HTTP 404 response.
var ErrBookNotFound = errors.New("book not found")

// ErrInvalidRating is returned when a review rating falls outside 1..5.
// Handlers should translate this into an HTTP 400 response.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

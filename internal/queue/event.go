// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into notification log lines.
package queue

// OrderPlacedEvent is published when a student places a pickup order. It
// carries enough for downstream consumers (email notifier, analytics) to
// act without querying portal state. The pickup slot is included verbatim;
// it is not persisted anywhere else.
type OrderPlacedEvent struct {
	LibraryID  string   `json:"library_id"`
	Email      string   `json:"email"`
	BookIDs    []int    `json:"book_ids"`
	BookTitles []string `json:"book_titles"`
	PickupSlot string   `json:"pickup_slot"`
	PlacedAt   string   `json:"placed_at"`
}

// BookRequestedEvent is published when a new title request is accepted into
// the ledger.
type BookRequestedEvent struct {
	LibraryID   string `json:"library_id"`
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	ISBN        string `json:"isbn,omitempty"`
	RequestedAt string `json:"requested_at"`
}

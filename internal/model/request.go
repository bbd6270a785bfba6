package model

import "time"

// BookRequest records a title a student searched for but the library does
// not hold. At most one open request exists per case-folded title; a second
// attempt is rejected outright rather than merged.
//
// Fields:
//  Title       – requested title, stored as typed by the student.
//  Author      – author if known (optional).
//  ISBN        – ISBN if known (optional).
//  Reason      – why the book is needed (optional).
//  RequestedAt – UTC time the request was accepted.
type BookRequest struct {
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	ISBN        string    `json:"isbn,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	RequestedAt time.Time `json:"requestedAt"`
}

package order

import (
	"fmt"
	"math/rand"
	"time"
)

// Slot is a half-hour pickup window on a given day. Slots are a randomized
// placeholder for a real scheduling system: generation is not idempotent,
// has no relation to staff availability, and the assigned slot is not
// persisted against any order.
type Slot struct {
	Day       time.Time `json:"-"`
	Date      string    `json:"date"`
	StartHour int       `json:"start_hour"`
}

// Pickup generates a pickup window from the current time. Orders placed
// before noon get a same-day slot at 14, 15 or 16; later orders get a
// next-day slot between 10 and 15. The hour is picked uniformly.
func Pickup(now time.Time) Slot {
	var day time.Time
	var hour int
	if now.Hour() < 12 {
		// Same-day afternoon, skipping the 13:00 lunch hour.
		day = now
		hour = 14 + rand.Intn(3)
	} else {
		day = now.AddDate(0, 0, 1)
		hour = 10 + rand.Intn(6)
	}
	return Slot{Day: day, Date: day.Format("02/01/2006"), StartHour: hour}
}

// String renders the window the way confirmations display it, e.g.
// "14:00 - 14:30 PM on 02/09/2026".
func (s Slot) String() string {
	meridiem := "PM"
	if s.StartHour < 12 {
		meridiem = "AM"
	}
	return fmt.Sprintf("%d:00 - %d:30 %s on %s", s.StartHour, s.StartHour, meridiem, s.Date)
}

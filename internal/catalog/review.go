package catalog

import (
	"fmt"

	"github.com/iliyamo/library-portal/internal/model"
)

// NoRating is returned by Average for books without reviews.
const NoRating = "N/A"

// Average returns the arithmetic mean of the review ratings rendered to one
// decimal place, or NoRating for an empty set.
func Average(reviews []model.Review) string {
	if len(reviews) == 0 {
		return NoRating
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return fmt.Sprintf("%.1f", float64(total)/float64(len(reviews)))
}

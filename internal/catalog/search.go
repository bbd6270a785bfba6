package catalog

import (
	"strings"

	"github.com/iliyamo/library-portal/internal/model"
)

// PageSize is the fixed number of books per result page.
const PageSize = 10

// Search modes reported back to the caller. An empty result set means
// different things depending on the mode: "none" is "nothing requested
// yet", the others are genuine zero-result searches.
const (
	ModeNone     = "none"
	ModeQuery    = "query"
	ModeCategory = "category"
)

// Query carries the search input. Text and the branch/subject pair are
// mutually exclusive selection modes: a non-empty Text wins and the
// selectors are ignored entirely for that call.
type Query struct {
	Text    string
	Branch  string
	Subject string
	Page    int
}

// Result is one page of matching books plus pagination metadata.
type Result struct {
	Items     []model.Book `json:"items"`
	Total     int          `json:"total"`
	Page      int          `json:"page"`
	PageCount int          `json:"page_count"`
	Mode      string       `json:"mode"`
}

// Search filters the given catalog snapshot. Precedence: a non-empty
// trimmed query matches title OR author as a case-insensitive substring;
// otherwise BOTH branch and subject must be set and match exactly. Branch
// without subject yields an empty set, not an error. The page index is
// clamped to [1, ceil(total/PageSize)], with a floor of page 1 when the
// result set is empty.
func Search(books []model.Book, q Query) Result {
	term := strings.ToLower(strings.TrimSpace(q.Text))

	matched := make([]model.Book, 0, len(books))
	mode := ModeNone
	switch {
	case term != "":
		mode = ModeQuery
		for _, b := range books {
			if strings.Contains(strings.ToLower(b.Title), term) ||
				strings.Contains(strings.ToLower(b.Author), term) {
				matched = append(matched, b)
			}
		}
	case q.Branch != "" && q.Subject != "":
		mode = ModeCategory
		for _, b := range books {
			if b.Branch == q.Branch && b.Subject == q.Subject {
				matched = append(matched, b)
			}
		}
	}

	total := len(matched)
	pageCount := (total + PageSize - 1) / PageSize

	page := q.Page
	if page < 1 {
		page = 1
	}
	if pageCount > 0 && page > pageCount {
		page = pageCount
	}
	if pageCount == 0 {
		page = 1
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Items:     matched[start:end],
		Total:     total,
		Page:      page,
		PageCount: pageCount,
		Mode:      mode,
	}
}

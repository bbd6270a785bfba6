package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-portal/internal/catalog"
	"github.com/iliyamo/library-portal/internal/request"
	"github.com/iliyamo/library-portal/internal/storage"
)

// AdminHandler serves the librarian surface: adding catalog entries and
// reviewing the request ledger. All routes require the LIBRARIAN role.
type AdminHandler struct {
	Catalog *catalog.Store
	Ledger  *request.Ledger
}

func NewAdminHandler(cs *catalog.Store, l *request.Ledger) *AdminHandler {
	return &AdminHandler{Catalog: cs, Ledger: l}
}

// AddBook handles POST /v1/admin/books. Title, author, branch and subject
// are required and the branch/subject pair must come from the taxonomy the
// browse filters offer; the new id is assigned by the catalog store.
func (h *AdminHandler) AddBook(c echo.Context) error {
	var draft catalog.BookDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	draft.Title = strings.TrimSpace(draft.Title)
	draft.Author = strings.TrimSpace(draft.Author)
	draft.Branch = strings.TrimSpace(draft.Branch)
	draft.Subject = strings.TrimSpace(draft.Subject)
	if draft.Title == "" || draft.Author == "" || draft.Branch == "" || draft.Subject == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title, author, branch and subject are required"})
	}

	subjects, ok := catalog.Subjects[draft.Branch]
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown branch"})
	}
	known := false
	for _, s := range subjects {
		if s == draft.Subject {
			known = true
			break
		}
	}
	if !known {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown subject for branch"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storageTimeout)
	defer cancel()

	book, err := h.Catalog.AddBook(ctx, draft)
	if err != nil {
		if errors.Is(err, storage.ErrMalformedState) {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save book, please try again"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save book, please try again"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"book":    book,
		"message": "Successfully added \"" + book.Title + "\" to the library!",
	})
}

// ListRequests handles GET /v1/admin/requests and returns the full ledger
// in submission order.
func (h *AdminHandler) ListRequests(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storageTimeout)
	defer cancel()

	requests, err := h.Ledger.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load requests"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": requests, "total": len(requests)})
}

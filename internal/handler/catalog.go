package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-portal/internal/catalog"
	"github.com/iliyamo/library-portal/internal/model"
	"github.com/iliyamo/library-portal/internal/order"
	"github.com/iliyamo/library-portal/internal/storage"
)

// CatalogHandler serves search, book details and the review write path.
type CatalogHandler struct {
	Catalog *catalog.Store
}

func NewCatalogHandler(cs *catalog.Store) *CatalogHandler {
	return &CatalogHandler{Catalog: cs}
}

// bookView decorates a book with its aggregate rating for list rendering.
type bookView struct {
	model.Book
	AverageRating string `json:"average_rating"`
	ReviewCount   int    `json:"review_count"`
}

func toView(b model.Book) bookView {
	return bookView{Book: b, AverageRating: catalog.Average(b.Reviews), ReviewCount: len(b.Reviews)}
}

// Search handles GET /v1/books/search. A non-empty query searches title and
// author and overrides the branch/subject selectors; without a query both
// selectors are required for a category match. The response mode field
// tells the client whether an empty result means "nothing requested yet"
// or a real miss (which is when it offers the request-a-book form).
func (h *CatalogHandler) Search(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))

	q := catalog.Query{
		Text:    c.QueryParam("query"),
		Branch:  strings.TrimSpace(c.QueryParam("branch")),
		Subject: strings.TrimSpace(c.QueryParam("subject")),
		Page:    page,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storageTimeout)
	defer cancel()

	res := catalog.Search(h.Catalog.Snapshot(ctx), q)

	items := make([]bookView, 0, len(res.Items))
	for _, b := range res.Items {
		items = append(items, toView(b))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"data":        items,
		"total":       res.Total,
		"page":        res.Page,
		"page_count":  res.PageCount,
		"page_size":   catalog.PageSize,
		"mode":        res.Mode,
		"window_open": order.IsOpen(time.Now()),
	})
}

// GetBook handles GET /v1/books/:id and returns the merged book with its
// aggregate rating plus the current ordering-window state.
func (h *CatalogHandler) GetBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid book id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storageTimeout)
	defer cancel()

	book, ok := h.Catalog.GetByID(ctx, id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"book":        toView(book),
		"window_open": order.IsOpen(time.Now()),
	})
}

type reviewReq struct {
	StudentName string `json:"student_name"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

// AddReview handles POST /v1/books/:id/reviews. Reviews are append-only.
func (h *CatalogHandler) AddReview(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid book id"})
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.StudentName = strings.TrimSpace(req.StudentName)
	if req.StudentName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "student_name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storageTimeout)
	defer cancel()

	review := model.Review{StudentName: req.StudentName, Rating: req.Rating, Comment: strings.TrimSpace(req.Comment)}
	if err := h.Catalog.AddReview(ctx, id, review); err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidRating):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, catalog.ErrBookNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
		case errors.Is(err, storage.ErrMalformedState):
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save review, please try again"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save review, please try again"})
		}
	}
	return c.NoContent(http.StatusCreated)
}

package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-portal/internal/model"
	"github.com/iliyamo/library-portal/internal/queue"
	"github.com/iliyamo/library-portal/internal/request"
)

// RequestHandler serves the request-a-book form shown when a search comes
// up empty.
type RequestHandler struct {
	Ledger *request.Ledger
}

func NewRequestHandler(l *request.Ledger) *RequestHandler {
	return &RequestHandler{Ledger: l}
}

type bookRequestReq struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
	Reason string `json:"reason"`
}

// Submit handles POST /v1/requests. A request for a title already in the
// ledger (compared case-insensitively) is rejected whole; the stored
// author/isbn/reason of the first request are never merged or overwritten.
func (h *RequestHandler) Submit(c echo.Context) error {
	id, err := libraryID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req bookRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "please enter a book title to request"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storageTimeout)
	defer cancel()

	res, err := h.Ledger.Submit(ctx, model.BookRequest{
		Title:  req.Title,
		Author: strings.TrimSpace(req.Author),
		ISBN:   strings.TrimSpace(req.ISBN),
		Reason: strings.TrimSpace(req.Reason),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save request, please try again"})
	}
	if !res.Accepted {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":   res.Reason,
			"message": "You have already requested \"" + req.Title + "\". We will notify you when it's available.",
		})
	}

	_ = queue.PublishBookRequested(c.Request().Context(), queue.BookRequestedEvent{
		LibraryID:   id,
		Title:       res.Request.Title,
		Author:      res.Request.Author,
		ISBN:        res.Request.ISBN,
		RequestedAt: res.Request.RequestedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Your request for \"" + req.Title + "\" has been submitted successfully!",
		"request": res.Request,
	})
}

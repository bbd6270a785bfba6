package handler

import (
	"context"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-portal/internal/bag"
	"github.com/iliyamo/library-portal/internal/catalog"
	"github.com/iliyamo/library-portal/internal/order"
	"github.com/iliyamo/library-portal/internal/queue"
	"github.com/iliyamo/library-portal/internal/session"
)

// emailRe matches the loose shape the order form accepts.
var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// BagHandler serves the college bag and order placement. The ordering
// window is re-derived from the wall clock at every decision point rather
// than cached; clients poll the window_open field for their indicators.
type BagHandler struct {
	Catalog  *catalog.Store
	Sessions *session.Manager
	now      func() time.Time
}

func NewBagHandler(cs *catalog.Store, s *session.Manager) *BagHandler {
	return &BagHandler{Catalog: cs, Sessions: s, now: time.Now}
}

func (h *BagHandler) bagState(b *bag.Bag) echo.Map {
	items := b.Items()
	return echo.Map{
		"items":       items,
		"count":       len(items),
		"capacity":    bag.Capacity,
		"window_open": order.IsOpen(h.now()),
	}
}

// Get handles GET /v1/bag.
func (h *BagHandler) Get(c echo.Context) error {
	id, err := libraryID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, h.bagState(h.Sessions.Bag(id)))
}

type addToBagReq struct {
	BookID int `json:"book_id"`
}

// Add handles POST /v1/bag/items. The ordering window must be open and the
// book must exist and be available. A duplicate add succeeds silently with
// the bag unchanged; a full bag is reported as a conflict the client shows
// to the user.
func (h *BagHandler) Add(c echo.Context) error {
	id, err := libraryID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req addToBagReq
	if err := c.Bind(&req); err != nil || req.BookID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "book_id required"})
	}

	if !order.IsOpen(h.now()) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "ordering closed (9am-5pm)"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storageTimeout)
	defer cancel()

	book, ok := h.Catalog.GetByID(ctx, req.BookID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
	}
	if !book.Available {
		return c.JSON(http.StatusConflict, echo.Map{"error": "book is out of stock"})
	}

	b := h.Sessions.Bag(id)
	switch b.Add(book) {
	case bag.StatusFull:
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "you can only add up to 4 books to your bag at a time",
		})
	case bag.StatusDuplicate:
		// Silent no-op: the bag already holds this book.
		return c.JSON(http.StatusOK, h.bagState(b))
	default:
		resp := h.bagState(b)
		resp["status"] = string(bag.StatusAdded)
		return c.JSON(http.StatusCreated, resp)
	}
}

// Remove handles DELETE /v1/bag/items/:id. Removing an absent id leaves
// the bag unchanged and still succeeds.
func (h *BagHandler) Remove(c echo.Context) error {
	id, err := libraryID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookID, err := strconv.Atoi(c.Param("id"))
	if err != nil || bookID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid book id"})
	}
	b := h.Sessions.Bag(id)
	b.Remove(bookID)
	return c.JSON(http.StatusOK, h.bagState(b))
}

// Clear handles DELETE /v1/bag.
func (h *BagHandler) Clear(c echo.Context) error {
	id, err := libraryID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	h.Sessions.Bag(id).Clear()
	return c.NoContent(http.StatusNoContent)
}

type placeOrderReq struct {
	Email string `json:"email"`
}

// PlaceOrder handles POST /v1/orders. It validates the confirmation email,
// requires an open window and a non-empty bag, generates a pickup slot and
// clears the bag. The order event is published fail-soft: notification
// problems never fail the order.
func (h *BagHandler) PlaceOrder(c echo.Context) error {
	id, err := libraryID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req placeOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if !emailRe.MatchString(req.Email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "please enter a valid email address"})
	}

	now := h.now()
	if !order.IsOpen(now) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "ordering closed (9am-5pm)"})
	}
	b := h.Sessions.Bag(id)
	items := b.Items()
	if len(items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "your bag is empty"})
	}

	slot := order.Pickup(now)

	ids := make([]int, 0, len(items))
	titles := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
		titles = append(titles, it.Title)
	}
	_ = queue.PublishOrderPlaced(c.Request().Context(), queue.OrderPlacedEvent{
		LibraryID:  id,
		Email:      req.Email,
		BookIDs:    ids,
		BookTitles: titles,
		PickupSlot: slot.String(),
		PlacedAt:   now.UTC().Format(time.RFC3339),
	})

	b.Clear()

	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "Order placed! A confirmation email has been sent to " + req.Email + ".",
		"pickup_slot": slot.String(),
		"slot":        slot,
	})
}

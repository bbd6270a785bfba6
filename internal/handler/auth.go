package handler

import (
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"     // token expiry in responses

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/library-portal/internal/config"  // app configuration
	"github.com/iliyamo/library-portal/internal/session" // demo-profile sessions
	"github.com/iliyamo/library-portal/internal/utils"   // token issuing helpers
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Sessions *session.Manager
}

func NewAuthHandler(cfg config.Config, s *session.Manager) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Sessions: s}
}

// ----- DTOs -----

type loginReq struct {
	LibraryID    string `json:"library_id"`
	MobileNumber string `json:"mobile_number"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type userPart struct {
	LibraryID string `json:"library_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}
type authResp struct {
	User   userPart  `json:"user"`
	Access tokenPart `json:"access"`
}

// Login matches the submitted library id and mobile number against the
// demo profiles and returns an access token. Wrong id and wrong number
// produce the same 401 response.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.LibraryID = strings.TrimSpace(req.LibraryID)
	req.MobileNumber = strings.TrimSpace(req.MobileNumber)
	if req.LibraryID == "" || req.MobileNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "library_id/mobile_number required"})
	}

	user, ok := h.Sessions.Login(req.LibraryID, req.MobileNumber)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid library id or mobile number"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user.LibraryID, user.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		User:   userPart{LibraryID: user.LibraryID, Name: user.Name, Email: user.Email, Role: user.Role},
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout discards the session state for the authenticated user. The bag is
// emptied; the token simply expires on its own.
func (h *AuthHandler) Logout(c echo.Context) error {
	id, err := libraryID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	h.Sessions.Logout(id)
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated user's profile including borrowing history
// and current loans, which the history page renders directly.
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := libraryID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	user, ok := h.Sessions.User(id)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user":      userPart{LibraryID: user.LibraryID, Name: user.Name, Email: user.Email, Role: user.Role},
		"current_books":     user.CurrentBooks,
		"borrowing_history": user.BorrowingHistory,
		"bag_count":         h.Sessions.Bag(id).Len(),
	})
}

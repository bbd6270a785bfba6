package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-portal/internal/catalog"
)

// ContentHandler serves the fixed reference data behind the static pages:
// the branch/subject taxonomy, the digital collection, study materials and
// the contact card. Everything here is read-only configuration.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler { return &ContentHandler{} }

// Branches handles GET /v1/branches.
func (h *ContentHandler) Branches(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": catalog.Branches})
}

// SubjectsForBranch handles GET /v1/subjects?branch=... and returns the
// subjects offered under one branch.
func (h *ContentHandler) SubjectsForBranch(c echo.Context) error {
	branch := strings.TrimSpace(c.QueryParam("branch"))
	if branch == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "branch required"})
	}
	subjects, ok := catalog.Subjects[branch]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown branch"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": subjects})
}

// EBooks handles GET /v1/ebooks.
func (h *ContentHandler) EBooks(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": catalog.EBooks})
}

// StudyMaterials handles GET /v1/study-materials.
func (h *ContentHandler) StudyMaterials(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": catalog.StudyMaterials})
}

// Contact handles GET /v1/contact.
func (h *ContentHandler) Contact(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.Contact)
}

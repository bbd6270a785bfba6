package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAddBook(t *testing.T) {
	env := newEnv(t)
	h := NewAdminHandler(env.catalog, env.ledger)

	rec := env.call(t, h.AddBook, http.MethodPost, "/v1/admin/books",
		`{"title":"Computer Networks","author":"Tanenbaum","branch":"Computer Engineering","subject":"Algorithms","available":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, `Successfully added "Computer Networks" to the library!`, body["message"])

	book := body["book"].(map[string]any)
	assert.Equal(t, float64(7), book["id"])

	// The new book is searchable immediately.
	catalogH := NewCatalogHandler(env.catalog)
	rec = env.call(t, catalogH.Search, http.MethodGet, "/v1/books/search?query=tanenbaum", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["total"])
}

func TestAdminAddBookValidatesTaxonomy(t *testing.T) {
	env := newEnv(t)
	h := NewAdminHandler(env.catalog, env.ledger)

	rec := env.call(t, h.AddBook, http.MethodPost, "/v1/admin/books",
		`{"title":"X","author":"Y","branch":"Astrology","subject":"Algorithms"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unknown branch", decode(t, rec)["error"])

	rec = env.call(t, h.AddBook, http.MethodPost, "/v1/admin/books",
		`{"title":"X","author":"Y","branch":"Computer Engineering","subject":"Astrology"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unknown subject for branch", decode(t, rec)["error"])

	rec = env.call(t, h.AddBook, http.MethodPost, "/v1/admin/books",
		`{"title":"","author":"Y","branch":"Computer Engineering","subject":"Algorithms"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminListRequests(t *testing.T) {
	env := newEnv(t)
	h := NewAdminHandler(env.catalog, env.ledger)
	reqH := NewRequestHandler(env.ledger)

	rec := env.call(t, h.ListRequests, http.MethodGet, "/v1/admin/requests", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decode(t, rec)["total"])

	env.call(t, reqH.Submit, http.MethodPost, "/v1/requests", `{"title":"Some Missing Book"}`)

	rec = env.call(t, h.ListRequests, http.MethodGet, "/v1/admin/requests", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(1), body["total"])
	data := body["data"].([]any)
	assert.Equal(t, "Some Missing Book", data[0].(map[string]any)["title"])
}

package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchByQuery(t *testing.T) {
	env := newEnv(t)
	h := NewCatalogHandler(env.catalog)

	rec := env.call(t, h.Search, http.MethodGet, "/v1/books/search?query=algorithms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "query", body["mode"])
	assert.Equal(t, float64(2), body["total"])
	assert.Equal(t, float64(10), body["page_size"])
}

func TestSearchByCategory(t *testing.T) {
	env := newEnv(t)
	h := NewCatalogHandler(env.catalog)

	rec := env.call(t, h.Search, http.MethodGet, "/v1/books/search?branch=Computer+Engineering&subject=Algorithms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "category", body["mode"])
	data := body["data"].([]any)
	require.Len(t, data, 1)
	book := data[0].(map[string]any)
	assert.Equal(t, "Introduction to Algorithms", book["title"])
	assert.Equal(t, "5.0", book["average_rating"])
}

func TestSearchBranchAloneMatchesNothing(t *testing.T) {
	env := newEnv(t)
	h := NewCatalogHandler(env.catalog)

	rec := env.call(t, h.Search, http.MethodGet, "/v1/books/search?branch=Computer+Engineering", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "none", body["mode"])
	assert.Equal(t, float64(0), body["total"])
}

func TestGetBookDetails(t *testing.T) {
	env := newEnv(t)
	h := NewCatalogHandler(env.catalog)

	rec := env.callParam(t, h.GetBook, http.MethodGet, "/v1/books/1", "", "id", "1")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	book := body["book"].(map[string]any)
	assert.Equal(t, "Data Structures & Algorithms in Java", book["title"])
	assert.Equal(t, float64(1), book["review_count"])

	rec = env.callParam(t, h.GetBook, http.MethodGet, "/v1/books/999", "", "id", "999")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.callParam(t, h.GetBook, http.MethodGet, "/v1/books/abc", "", "id", "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddReviewEndpoint(t *testing.T) {
	env := newEnv(t)
	h := NewCatalogHandler(env.catalog)

	rec := env.callParam(t, h.AddReview, http.MethodPost, "/v1/books/1/reviews",
		`{"student_name":"Kiran T.","rating":4,"comment":"Helped me through the semester."}`, "id", "1")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.callParam(t, h.GetBook, http.MethodGet, "/v1/books/1", "", "id", "1")
	book := decode(t, rec)["book"].(map[string]any)
	assert.Equal(t, float64(2), book["review_count"])
	assert.Equal(t, "4.5", book["average_rating"])
}

func TestAddReviewRejectsBadInput(t *testing.T) {
	env := newEnv(t)
	h := NewCatalogHandler(env.catalog)

	rec := env.callParam(t, h.AddReview, http.MethodPost, "/v1/books/1/reviews",
		`{"student_name":"Kiran T.","rating":9,"comment":"x"}`, "id", "1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.callParam(t, h.AddReview, http.MethodPost, "/v1/books/1/reviews",
		`{"student_name":"","rating":4,"comment":"x"}`, "id", "1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.callParam(t, h.AddReview, http.MethodPost, "/v1/books/999/reviews",
		`{"student_name":"Kiran T.","rating":4,"comment":"x"}`, "id", "999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

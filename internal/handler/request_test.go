package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRequestAndDuplicate(t *testing.T) {
	env := newEnv(t)
	h := NewRequestHandler(env.ledger)

	rec := env.call(t, h.Submit, http.MethodPost, "/v1/requests",
		`{"title":"Modern Compiler Implementation","author":"Appel","reason":"not in the catalog"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Contains(t, body["message"], "submitted successfully")

	// Same title, different case: rejected whole.
	rec = env.call(t, h.Submit, http.MethodPost, "/v1/requests",
		`{"title":"modern compiler implementation"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, "duplicate", body["error"])
	assert.Contains(t, body["message"], "already requested")
}

func TestSubmitRequestRequiresTitle(t *testing.T) {
	env := newEnv(t)
	h := NewRequestHandler(env.ledger)

	rec := env.call(t, h.Submit, http.MethodPost, "/v1/requests", `{"title":"   "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "book title")
}

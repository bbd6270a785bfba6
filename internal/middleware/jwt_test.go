package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/library-portal/internal/utils"
)

const testSecret = "test-secret"

func protected(t *testing.T, mw ...echo.MiddlewareFunc) (*echo.Echo, echo.HandlerFunc) {
	t.Helper()
	e := echo.New()
	h := func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"library_id": c.Get("library_id"),
			"role":       c.Get("role"),
		})
	}
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return e, h
}

func TestJWTAuthAcceptsIssuedToken(t *testing.T) {
	e, h := protected(t, JWTAuth(testSecret))

	access, err := utils.NewAccessToken(testSecret, "12345", "STUDENT", 15)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+access.Token)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"library_id":"12345"`)
	assert.Contains(t, rec.Body.String(), `"role":"STUDENT"`)
}

func TestJWTAuthRejectsMissingAndBadTokens(t *testing.T) {
	e, h := protected(t, JWTAuth(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	e, h := protected(t, JWTAuth(testSecret))

	access, err := utils.NewAccessToken("other-secret", "12345", "STUDENT", 15)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+access.Token)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	e, h := protected(t, JWTAuth(testSecret), RequireRole("LIBRARIAN"))

	student, err := utils.NewAccessToken(testSecret, "12345", "STUDENT", 15)
	require.NoError(t, err)
	librarian, err := utils.NewAccessToken(testSecret, "90001", "LIBRARIAN", 15)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+student.Token)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+librarian.Token)
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

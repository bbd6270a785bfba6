package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/library-portal/internal/catalog"
	"github.com/iliyamo/library-portal/internal/request"
	"github.com/iliyamo/library-portal/internal/session"
	"github.com/iliyamo/library-portal/internal/storage"
)

const testUser = "12345"

// testEnv wires the handler dependencies over an in-memory store the way
// main does over the configured backend.
type testEnv struct {
	echo     *echo.Echo
	store    *storage.Memory
	catalog  *catalog.Store
	ledger   *request.Ledger
	sessions *session.Manager
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	st := storage.NewMemory()
	sessions, err := session.NewManager(4)
	require.NoError(t, err)
	return &testEnv{
		echo:     echo.New(),
		store:    st,
		catalog:  catalog.NewStore(st),
		ledger:   request.NewLedger(st),
		sessions: sessions,
	}
}

// call invokes a handler directly with an authenticated context, bypassing
// the router and JWT middleware (covered by their own tests).
func (env *testEnv) call(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	c.Set("library_id", testUser)
	c.Set("role", session.RoleStudent)
	require.NoError(t, h(c))
	return rec
}

// callParam is call with one path parameter bound.
func (env *testEnv) callParam(t *testing.T, h echo.HandlerFunc, method, target, body, name, value string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	c.Set("library_id", testUser)
	c.Set("role", session.RoleStudent)
	c.SetParamNames(name)
	c.SetParamValues(value)
	require.NoError(t, h(c))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

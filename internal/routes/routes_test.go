package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"reference-service/internal/services"
	"reference-service/pkg/config"
	"reference-service/pkg/validation"
)

type testServer struct {
	echo      *echo.Echo
	reference pgxmock.PgxPoolIface
	auth      pgxmock.PgxPoolIface
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	reference, err := pgxmock.NewPool()
	require.NoError(t, err)
	auth, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(reference.Close)
	t.Cleanup(auth.Close)

	e := echo.New()
	e.Validator = validation.New()
	cfg := &config.Config{Session: config.SessionConfig{CookieName: "session"}}
	InitRouter(e, Stores{Reference: reference, Auth: auth}, cfg, zap.NewNop())

	return &testServer{echo: e, reference: reference, auth: auth}
}

func TestInitRouter_RegistersReferenceRoutes(t *testing.T) {
	srv := newTestServer(t)

	registered := make(map[string]bool)
	for _, r := range srv.echo.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	expected := []string{
		"GET /api/ref/objects",
		"GET /api/ref/objects/:id",
		"POST /api/ref/objects",
		"PATCH /api/ref/objects/:id",
		"GET /api/ref/persons",
		"GET /api/ref/persons/:id",
		"POST /api/ref/persons",
		"GET /api/ref/employees",
		"GET /api/ref/employees/internal",
		"GET /api/ref/employees/internal/departments",
		"GET /api/ref/employees/:id/objects",
		"POST /api/ref/employees",
		"GET /api/ref/counterparties",
		"GET /api/ref/counterparties/search",
		"GET /api/ref/counterparties/summary",
		"GET /api/ref/counterparties/summary/export",
		"GET /api/ref/counterparties/llc/:id",
		"GET /api/ref/counterparties/ip/:id",
		"GET /api/ref/counterparties/phys/:id",
		"GET /api/ref/counterparties/:id/full-profile",
		"GET /api/ref/counterparties/:id/employees",
		"GET /api/ref/counterparties/:id/bank-accounts",
		"POST /api/ref/counterparties",
		"POST /api/ref/counterparties/llc",
		"POST /api/ref/counterparties/ip",
		"POST /api/ref/counterparties/phys",
		"POST /api/ref/counterparties/additional-okved",
		"POST /api/ref/counterparties/:id/bank-accounts",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "маршрут не зарегистрирован: %s", route)
	}
}

func TestInitRouter_RejectsRequestWithoutSession(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ref/objects", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NoError(t, srv.auth.ExpectationsWereMet())
	assert.NoError(t, srv.reference.ExpectationsWereMet())
}

func TestInitRouter_DepartmentsWithSession(t *testing.T) {
	srv := newTestServer(t)

	srv.auth.ExpectQuery(regexp.QuoteMeta("FROM sessions WHERE token_hash = $1")).
		WithArgs(services.HashToken("dev-token"), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
	srv.reference.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT department FROM internal_employees")).
		WillReturnRows(pgxmock.NewRows([]string{"department"}).AddRow(nil))

	req := httptest.NewRequest(http.MethodGet, "/api/ref/employees/internal/departments", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "dev-token"})
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Status bool     `json:"status"`
		Body   []string `json:"body"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Equal(t, []string{services.NoDepartment}, resp.Body)

	assert.NoError(t, srv.auth.ExpectationsWereMet())
	assert.NoError(t, srv.reference.ExpectationsWereMet())
}

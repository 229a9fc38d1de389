package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cardfolio/cardfolio/internal/handlers"
	"github.com/cardfolio/cardfolio/internal/notify"
	"github.com/cardfolio/cardfolio/internal/routes"
)

// newTestApp returns a router backed by a mocked *sql.DB so handler tests
// can run the real request path without a live MySQL.
func newTestApp(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	gin.SetMode(gin.TestMode)
	h := &handlers.Handlers{
		DB:        db,
		Notifier:  notify.NewLogNotifier(zap.NewNop()),
		Logger:    zap.NewNop(),
		JWTSecret: "test-secret",
	}
	return routes.SetupRouter(h, nil), mock
}

// do performs a JSON request against the test router and decodes the body.
func do(t *testing.T, router *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]any
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w.Code, decoded
}

// doList is like do but for endpoints returning a JSON array.
func doList(t *testing.T, router *gin.Engine, path string) (int, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode list response %q: %v", w.Body.String(), err)
	}
	return w.Code, decoded
}

func expectationsMet(c *qt.C, mock sqlmock.Sqlmock) {
	c.Assert(mock.ExpectationsWereMet(), qt.IsNil)
}

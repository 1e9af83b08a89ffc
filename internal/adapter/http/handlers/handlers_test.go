package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"paintmarket/internal/adapter/http/middleware"
	"paintmarket/internal/infrastructure/auth"
	"paintmarket/internal/usecase"
	"paintmarket/pkg"

	"github.com/gin-gonic/gin"
)

var (
	testClient     = auth.Principal{UserID: "user-1", Email: "client@example.com", Role: auth.RoleClient}
	testContractor = auth.Principal{UserID: "user-c", Email: "pro@example.com", Role: auth.RoleContractor}
)

// newRouter returns a test engine whose requests run as p. A zero p leaves
// the request anonymous.
func newRouter(p auth.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if p.UserID != "" {
		r.Use(middleware.SetPrincipal(p))
	}
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestPing(t *testing.T) {
	r := newRouter(auth.Principal{})
	r.GET("/api/ping", Ping)

	w := doRequest(r, http.MethodGet, "/api/ping", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapAccessError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{usecase.ErrForbidden, http.StatusForbidden},
		{usecase.ErrContractorProfileReq, http.StatusForbidden},
		{usecase.ErrContractorNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := mapAccessError(tt.err).HTTPStatus; got != tt.want {
			t.Fatalf("mapAccessError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"careerPlatform/business/recommender"
	"careerPlatform/pkg/utils"

	"github.com/labstack/echo/v4"
)

func runMiddleware(m echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	handler := m(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	_ = handler(c)
	return rec, c
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/recommender/stats", nil)
	rec, _ := runMiddleware(AuthMiddleware("secret"), req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "UNAUTHORIZED") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestAuthMiddleware_BadFormat(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/recommender/stats", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec, _ := runMiddleware(AuthMiddleware("secret"), req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/recommender/stats", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec, _ := runMiddleware(AuthMiddleware("secret"), req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token, err := utils.GenerateJWT("admin-1", "admin", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/recommender/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec, c := runMiddleware(AuthMiddleware("secret"), req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if c.Get("user_id") != "admin-1" || c.Get("role") != "admin" {
		t.Errorf("context user_id=%v role=%v", c.Get("user_id"), c.Get("role"))
	}
}

func TestTraceMiddleware_GeneratesID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/careers", nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := TraceMiddleware()(func(c echo.Context) error {
		seen = recommender.TraceIDFromContext(c.Request().Context())
		return c.String(http.StatusOK, "ok")
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if seen == "" {
		t.Error("no trace id in request context")
	}
	if got := rec.Header().Get("X-Trace-ID"); got != seen {
		t.Errorf("response header trace id = %q, context has %q", got, seen)
	}
}

func TestTraceMiddleware_ReusesIncomingID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/careers", nil)
	req.Header.Set("X-Trace-ID", "caller-trace")

	rec, _ := runMiddleware(TraceMiddleware(), req)
	if got := rec.Header().Get("X-Trace-ID"); got != "caller-trace" {
		t.Errorf("trace id = %q, want the caller's id echoed back", got)
	}
}

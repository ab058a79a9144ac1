package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-booking/internal/auth"
	"github.com/BruksfildServices01/service-booking/internal/authz"
	"github.com/BruksfildServices01/service-booking/internal/infra/memstore"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMemoryLimiterWindow(t *testing.T) {
	l := NewMemoryLimiter(2, time.Minute)
	now := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if ok, _ := l.Allow(ctx, "k"); !ok {
			t.Fatalf("hit %d should pass", i)
		}
	}
	if ok, _ := l.Allow(ctx, "k"); ok {
		t.Fatalf("third hit should be limited")
	}
	if ok, _ := l.Allow(ctx, "other"); !ok {
		t.Fatalf("keys must be independent")
	}

	now = now.Add(61 * time.Second)
	if ok, _ := l.Allow(ctx, "k"); !ok {
		t.Fatalf("window should reset")
	}
}

func TestMemoryLimiterDropsExpiredKeys(t *testing.T) {
	l := NewMemoryLimiter(5, time.Minute)
	now := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 100; i++ {
		_, _ = l.Allow(ctx, fmt.Sprintf("10.0.0.%d:/api/auth/login", i))
	}
	if l.Len() != 100 {
		t.Fatalf("expected 100 tracked keys, got %d", l.Len())
	}

	now = now.Add(2 * time.Minute)
	if ok, _ := l.Allow(ctx, "10.0.1.1:/api/auth/login"); !ok {
		t.Fatalf("fresh key should pass")
	}
	if l.Len() != 1 {
		t.Fatalf("expired keys should be swept, %d left", l.Len())
	}
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware("https://app.example.com, https://admin.example.com/"))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://admin.example.com" {
		t.Fatalf("unexpected allow origin %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, PUT, DELETE" {
		t.Fatalf("unexpected allow methods %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Fatalf("credentials must not be enabled, got %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign preflight should be refused, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("foreign origin must not be allowed, got %q", got)
	}
}

func TestCORSExposesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware("*"))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("wildcard should reflect the origin, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Expose-Headers"); got != "X-Request-ID, Retry-After" {
		t.Fatalf("unexpected expose headers %q", got)
	}
}

func TestAuthMiddlewareResolvesRoleFromStore(t *testing.T) {
	store := memstore.New()
	tokens := auth.NewManager("secret", time.Hour, "test")

	u := models.User{Name: "Ana", Email: "ana@example.com", Role: "user"}
	if err := store.CreateUser(context.Background(), &u); err != nil {
		t.Fatalf("create user: %v", err)
	}

	// Token claims admin, the store says user.
	token, err := tokens.Issue(u.ID, "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	r := gin.New()
	r.GET("/admin", AuthMiddleware(tokens, store), RequirePermission(authz.ViewAllBookings), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/me", AuthMiddleware(tokens, store), func(c *gin.Context) {
		p := PrincipalFrom(c)
		if p.UserID != u.ID || p.Role != authz.RoleUser {
			c.Status(http.StatusTeapot)
			return
		}
		c.Status(http.StatusOK)
	})

	for path, want := range map[string]int{"/admin": http.StatusForbidden, "/me": http.StatusOK} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != want {
			t.Fatalf("%s: expected %d, got %d", path, want, w.Code)
		}
	}
}

func TestRequestIDGenerated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	id := w.Header().Get(HeaderRequestID)
	if len(id) != 36 || w.Body.String() != id {
		t.Fatalf("expected uuid request id, got header %q body %q", id, w.Body.String())
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blackash/todo-api/internal/crypto"
)

const testSecret = "test-secret"

func protectedHandler(t *testing.T, gotClaims **crypto.Claims) http.Handler {
	t.Helper()
	return JWTAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			t.Error("handler reached without claims in context")
		}
		*gotClaims = claims
		w.WriteHeader(http.StatusOK)
	}))
}

func TestJWTAuthMissingHeader(t *testing.T) {
	var claims *crypto.Claims
	req := httptest.NewRequest(http.MethodGet, "/api/user/todos", nil)
	rec := httptest.NewRecorder()

	protectedHandler(t, &claims).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if claims != nil {
		t.Error("handler should not have been reached")
	}
}

func TestJWTAuthBadFormat(t *testing.T) {
	var claims *crypto.Claims
	req := httptest.NewRequest(http.MethodGet, "/api/user/todos", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()

	protectedHandler(t, &claims).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	var claims *crypto.Claims
	req := httptest.NewRequest(http.MethodGet, "/api/user/todos", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	protectedHandler(t, &claims).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	token, err := crypto.GenerateToken("abc123", "alice", "a@x.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	var claims *crypto.Claims
	req := httptest.NewRequest(http.MethodGet, "/api/user/todos", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	protectedHandler(t, &claims).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if claims == nil {
		t.Fatal("expected claims in context")
	}
	if claims.UserID != "abc123" || claims.Email != "a@x.com" {
		t.Errorf("claims = %+v, want user abc123 / a@x.com", claims)
	}
}

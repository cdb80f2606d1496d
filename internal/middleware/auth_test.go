package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParseToken_RoundTrip(t *testing.T) {
	auth := NewJWTAuth("test-secret")
	userID := uuid.New()

	token, err := auth.GenerateAccessToken(userID, "membre@gliitz.app", "member")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	got, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if got != userID {
		t.Errorf("ParseToken = %s, want %s", got, userID)
	}
}

func TestParseToken_Rejects(t *testing.T) {
	auth := NewJWTAuth("test-secret")
	other := NewJWTAuth("other-secret")

	signed, err := other.GenerateAccessToken(uuid.New(), "membre@gliitz.app", "member")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"wrong secret", signed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := auth.ParseToken(tc.token); err == nil {
				t.Errorf("ParseToken(%q) accepted an invalid token", tc.token)
			}
		})
	}
}

func TestAuthMiddleware_MissingOrMalformedHeader(t *testing.T) {
	auth := NewJWTAuth("test-secret")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run without a valid token")
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"no bearer prefix", "token-without-scheme"},
		{"wrong scheme", "Basic abc123"},
		{"invalid token", "Bearer not-a-token"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/user/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			auth.Middleware(next).ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401, got %d", rr.Code)
			}
		})
	}
}

func TestAuthMiddleware_AttachesUserID(t *testing.T) {
	auth := NewJWTAuth("test-secret")
	userID := uuid.New()

	token, err := auth.GenerateAccessToken(userID, "membre@gliitz.app", "vip")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		got, ok := GetUserID(r)
		if !ok {
			t.Error("GetUserID found no user id in context")
		}
		if got != userID {
			t.Errorf("GetUserID = %s, want %s", got, userID)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	auth.Middleware(next).ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("next handler never ran for a valid token")
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.allow("10.0.0.1:1234") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("10.0.0.1:1234") {
		t.Error("request over the limit should be denied")
	}

	// Other clients are unaffected
	if !rl.allow("10.0.0.2:1234") {
		t.Error("separate client should have its own window")
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	if !rl.allow("10.0.0.3:1234") {
		t.Fatal("first request should be allowed")
	}
	if rl.allow("10.0.0.3:1234") {
		t.Fatal("second request in the window should be denied")
	}

	rl.mu.Lock()
	rl.clients["10.0.0.3:1234"].windowStart = time.Now().Add(-2 * time.Minute)
	rl.mu.Unlock()

	if !rl.allow("10.0.0.3:1234") {
		t.Error("request after the window expired should be allowed")
	}
}

func TestRateLimiter_MiddlewareResponse(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := rl.Middleware(next)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.RemoteAddr = "10.0.0.4:1234"

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("second request: expected 429, got %d", rr.Code)
	}
}

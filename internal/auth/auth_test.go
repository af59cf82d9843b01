package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	SetSecret("testsecret")
	token, err := NewToken(42)
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	uid, ok := ParseToken(token)
	if !ok {
		t.Fatal("expected token to parse")
	}
	if uid != 42 {
		t.Errorf("ParseToken user id = %d, want 42", uid)
	}
}

func TestParseToken_BadSignature(t *testing.T) {
	SetSecret("testsecret")
	token, err := NewToken(7)
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	SetSecret("othersecret")
	defer SetSecret("testsecret")
	if _, ok := ParseToken(token); ok {
		t.Error("expected token signed with a different key to be rejected")
	}
}

func TestParseSession_BearerHeader(t *testing.T) {
	SetSecret("testsecret")
	token, _ := NewToken(9)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	uid, ok := ParseSession(req)
	if !ok || uid != 9 {
		t.Errorf("ParseSession = (%d, %v), want (9, true)", uid, ok)
	}
}

func TestParseSession_Cookie(t *testing.T) {
	SetSecret("testsecret")
	token, _ := NewToken(5)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	uid, ok := ParseSession(req)
	if !ok || uid != 5 {
		t.Errorf("ParseSession = (%d, %v), want (5, true)", uid, ok)
	}
}

func TestRequireAuth(t *testing.T) {
	SetUserVerifier(nil)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// No user in context -> 401
	w := httptest.NewRecorder()
	RequireAuth(ok).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated: got %d, want 401", w.Code)
	}

	// User in context -> handler runs
	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	req = req.WithContext(WithUserID(req.Context(), 3))
	w = httptest.NewRecorder()
	RequireAuth(ok).ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("authenticated: got %d, want 200", w.Code)
	}
}

func TestRequireAuth_VerifierRejects(t *testing.T) {
	SetUserVerifier(func(ctx context.Context, uid uint) bool { return false })
	defer SetUserVerifier(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithUserID(req.Context(), 3))
	w := httptest.NewRecorder()
	RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for rejected user")
	})).ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("got %d, want 401", w.Code)
	}
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ananya/practiq/internal/engine"
	"github.com/ananya/practiq/internal/identity"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestTokenRoundTrip(t *testing.T) {
	u := identity.User{ID: "student-1", Role: identity.RoleAdmin}
	token, err := IssueToken(testSecret, u, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	got, err := parseToken(testSecret, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if got != u {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, u)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := IssueToken(testSecret, identity.User{ID: "student-1", Role: identity.RoleStudent}, -time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := parseToken(testSecret, token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := IssueToken(testSecret, identity.User{ID: "student-1", Role: identity.RoleStudent}, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	other := []byte("ffffffffffffffffffffffffffffffff")
	if _, err := parseToken(other, token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestUnknownRoleFallsBackToStudent(t *testing.T) {
	token, err := IssueToken(testSecret, identity.User{ID: "student-1", Role: identity.Role("superuser")}, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	got, err := parseToken(testSecret, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if got.Role != identity.RoleStudent {
		t.Errorf("unexpected role: %q", got.Role)
	}
}

func TestAuthMiddleware(t *testing.T) {
	var seen identity.User
	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = identity.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Auth(testSecret)(probe)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/entitlement", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}

	token, err := IssueToken(testSecret, identity.User{ID: "student-1", Role: identity.RoleStudent}, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/entitlement", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seen.ID != "student-1" {
		t.Errorf("user not attached to context: %+v", seen)
	}
}

func TestRequireAdmin(t *testing.T) {
	handler := requireAdmin(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/subtopics/x/questions", nil)
	req = req.WithContext(identity.WithUser(req.Context(), identity.User{ID: "s", Role: identity.RoleStudent}))
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("student status = %d, want 403", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/subtopics/x/questions", nil)
	req = req.WithContext(identity.WithUser(req.Context(), identity.User{ID: "a", Role: identity.RoleAdmin}))
	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", rec.Code)
	}
}

func TestRequireStudent(t *testing.T) {
	handler := requireStudent(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
	req = req.WithContext(identity.WithUser(req.Context(), identity.User{ID: "a", Role: identity.RoleAdmin}))
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("admin status = %d, want 403", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
	req = req.WithContext(identity.WithUser(req.Context(), identity.User{ID: "s", Role: identity.RoleStudent}))
	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("student status = %d, want 200", rec.Code)
	}
}

func TestRouterRejectsAdminSessionStart(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, testSecret, time.Hour)
	router := NewRouter(h, testSecret)

	token, err := IssueToken(testSecret, identity.User{ID: "admin-1", Role: identity.RoleAdmin}, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestEngineErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"limit", &engine.LimitError{SessionLimit: 3, SessionsToday: 3}, http.StatusTooManyRequests},
		{"validation", &engine.ValidationError{Field: "count", Reason: "must be positive"}, http.StatusBadRequest},
		{"unauthorized", engine.ErrUnauthorized, http.StatusForbidden},
		{"not found", engine.ErrNotFound, http.StatusNotFound},
		{"already completed", engine.ErrAlreadyCompleted, http.StatusConflict},
		{"empty pool", engine.ErrEmptyPool, http.StatusConflict},
		{"session active", engine.ErrSessionActive, http.StatusConflict},
		{"no active session", engine.ErrNoActiveSession, http.StatusNotFound},
		{"remote", &engine.RemoteError{Op: "create session", Err: errors.New("down")}, http.StatusBadGateway},
		{"unknown", errors.New("surprise"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondEngineError(rec, tt.err)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestLimitErrorCarriesNumbers(t *testing.T) {
	rec := httptest.NewRecorder()
	respondEngineError(rec, &engine.LimitError{SessionLimit: 3, SessionsToday: 3, RemainingSessions: 0})

	var body struct {
		SessionLimit  int `json:"sessionLimit"`
		SessionsToday int `json:"sessionsToday"`
		Remaining     int `json:"remaining"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.SessionLimit != 3 || body.SessionsToday != 3 || body.Remaining != 0 {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestLoginIssuesUsableToken(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, testSecret, time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"studentId":"student-1"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp loginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	user, err := parseToken(testSecret, resp.Token)
	if err != nil {
		t.Fatalf("issued token did not parse: %v", err)
	}
	if user.ID != "student-1" || user.Role != identity.RoleStudent {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestLoginRequiresStudentID(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, testSecret, time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRouterRejectsUnauthenticated(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, testSecret, time.Hour)
	router := NewRouter(h, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"newsroom-cms/internal/domain/entity"
	articleUC "newsroom-cms/internal/usecase/article"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func init() {
	// Middlewares capture the secret at construction time, so it has to be
	// in place before any test builds a handler chain.
	os.Setenv("JWT_SECRET", testSecret)
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func reporterToken(t *testing.T) string {
	t.Helper()
	now := time.Now()
	return signToken(t, jwt.MapClaims{
		"sub":  "alice",
		"role": string(entity.RoleReporter),
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	})
}

func callerEcho(got *articleUC.Caller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = CallerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

/* ──── Require ──── */

func TestRequireAttachesCaller(t *testing.T) {
	var got articleUC.Caller
	handler := Require(callerEcho(&got))

	req := httptest.NewRequest(http.MethodGet, "/articles/pending", nil)
	req.Header.Set("Authorization", "Bearer "+reporterToken(t))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got.PrincipalID != "alice" || got.Role != entity.RoleReporter {
		t.Errorf("caller = %+v, want alice/reporter", got)
	}
}

func TestRequireRejectsMissingToken(t *testing.T) {
	handler := Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/articles/pending", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRejectsExpiredToken(t *testing.T) {
	now := time.Now()
	token := signToken(t, jwt.MapClaims{
		"sub":  "alice",
		"role": string(entity.RoleReporter),
		"iat":  now.Add(-2 * time.Hour).Unix(),
		"exp":  now.Add(-time.Hour).Unix(),
	})

	handler := Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/articles/pending", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRejectsWrongSignature(t *testing.T) {
	now := time.Now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "alice",
		"role": string(entity.RoleReporter),
		"exp":  now.Add(time.Hour).Unix(),
	}).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	handler := Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/articles/pending", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireDegradesUnknownRole(t *testing.T) {
	now := time.Now()
	token := signToken(t, jwt.MapClaims{
		"sub":  "alice",
		"role": "superuser",
		"exp":  now.Add(time.Hour).Unix(),
	})

	var got articleUC.Caller
	handler := Require(callerEcho(&got))

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got.Role != entity.RolePublic {
		t.Errorf("role = %q, want public", got.Role)
	}
}

/* ──── Optional ──── */

func TestOptionalPassesAnonymous(t *testing.T) {
	var got articleUC.Caller
	handler := Optional(callerEcho(&got))

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got != articleUC.Public {
		t.Errorf("caller = %+v, want public", got)
	}
}

func TestOptionalAttachesCaller(t *testing.T) {
	var got articleUC.Caller
	handler := Optional(callerEcho(&got))

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.Header.Set("Authorization", "Bearer "+reporterToken(t))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got.PrincipalID != "alice" {
		t.Errorf("principal = %q, want alice", got.PrincipalID)
	}
}

// A present-but-broken token degrades to the anonymous caller on optional
// routes: the public read surface stays reachable for clients carrying stale
// sessions, and the degraded view can only be narrower than the real one.
func TestOptionalDegradesInvalidToken(t *testing.T) {
	var got articleUC.Caller
	handler := Optional(callerEcho(&got))

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got != articleUC.Public {
		t.Errorf("caller = %+v, want public", got)
	}
}

func TestOptionalDegradesExpiredToken(t *testing.T) {
	var got articleUC.Caller
	handler := Optional(callerEcho(&got))

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	expired := signToken(t, jwt.MapClaims{
		"sub":  "alice",
		"role": string(entity.RoleReporter),
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got != articleUC.Public {
		t.Errorf("caller = %+v, want public", got)
	}
}

/* ──── RequireEditor ──── */

func TestRequireEditorBlocksReporter(t *testing.T) {
	handler := RequireEditor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodPost, "/sections", nil)
	req.Header.Set("Authorization", "Bearer "+reporterToken(t))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestRequireEditorAllowsEditor(t *testing.T) {
	now := time.Now()
	token := signToken(t, jwt.MapClaims{
		"sub":  "erin",
		"role": string(entity.RoleEditor),
		"exp":  now.Add(time.Hour).Unix(),
	})

	var got articleUC.Caller
	handler := RequireEditor(callerEcho(&got))

	req := httptest.NewRequest(http.MethodPost, "/sections", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got.Role != entity.RoleEditor {
		t.Errorf("role = %q, want editor", got.Role)
	}
}

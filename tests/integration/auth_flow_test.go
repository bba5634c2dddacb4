package integration

import (
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"duitku/internal/config"
)

// enableAuth configures an owner password and reloads the cached config.
// Cleanup restores the auth-disabled default the other tests rely on.
func enableAuth(t *testing.T, password string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	t.Setenv("OWNER_PASSWORD_HASH", string(hash))
	if _, err := config.Load(); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	t.Cleanup(func() {
		t.Setenv("OWNER_PASSWORD_HASH", "")
		if _, err := config.Load(); err != nil {
			t.Errorf("failed to restore config: %v", err)
		}
	})
}

func TestAuthFlow_ProtectedRoutesRequireToken(t *testing.T) {
	enableAuth(t, "rahasia-banget")
	app := setupApp(t)

	// No token: rejected.
	rec := app.request("GET", "/api/v1/balances", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	// Wrong password: rejected.
	rec = app.request("POST", "/api/v1/auth/login", `{"password":"salah"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 on wrong password, got %d", rec.Code)
	}

	// Correct password yields a token that opens the protected routes.
	rec = app.request("POST", "/api/v1/auth/login", `{"password":"rahasia-banget"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on login, got %d: %s", rec.Code, rec.Body.String())
	}
	token := parseJSON(t, rec)["token"].(string)

	rec = app.request("GET", "/api/v1/balances", "", token)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with token, got %d: %s", rec.Code, rec.Body.String())
	}

	// A garbage token is rejected.
	rec = app.request("GET", "/api/v1/balances", "", "not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with garbage token, got %d", rec.Code)
	}
}

func TestAuthFlow_DisabledAuthPassesThrough(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/balances", "", "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with auth disabled, got %d", rec.Code)
	}

	rec = app.request("POST", "/api/v1/auth/login", `{"password":"anything"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 logging into disabled auth, got %d", rec.Code)
	}
}

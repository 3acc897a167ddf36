package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"streamflix/internal/handler"
)

type loginResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Admin   struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"admin"`
	Error string `json:"error"`
}

func seedAdmin(t *testing.T, env *testEnv, email, password string) {
	t.Helper()
	if _, err := env.app.AuthService.Register(context.Background(), email, password); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
}

func doLogin(t *testing.T, env *testEnv, body string) (int, loginResult) {
	t.Helper()
	router := handler.NewRouter(env.app)
	rec, _ := doRequest(t, router, http.MethodPost, "/api/auth/login", body, "")

	var result loginResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid login response %q: %v", rec.Body.String(), err)
	}
	return rec.Code, result
}

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv()
	seedAdmin(t, env, "admin@streamflix.com", "admin123")

	status, result := doLogin(t, env, `{"email": "admin@streamflix.com", "password": "admin123"}`)
	if status != http.StatusOK {
		t.Fatalf("got status %d, want 200", status)
	}
	if !result.Success || result.Token == "" {
		t.Fatalf("bad result: %+v", result)
	}
	if result.Admin.Email != "admin@streamflix.com" || result.Admin.Role != "admin" || result.Admin.ID == "" {
		t.Errorf("bad admin payload: %+v", result.Admin)
	}

	// the issued token must pass the gate's verification
	claims, err := env.tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.ID != result.Admin.ID || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginNormalizesEmail(t *testing.T) {
	env := newTestEnv()
	seedAdmin(t, env, "Admin@StreamFlix.com", "admin123")

	status, _ := doLogin(t, env, `{"email": "ADMIN@streamflix.COM", "password": "admin123"}`)
	if status != http.StatusOK {
		t.Errorf("got status %d, want 200", status)
	}
}

// Wrong password and unknown account answer identically, so the login
// endpoint cannot be used to probe which emails exist.
func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv()
	seedAdmin(t, env, "admin@streamflix.com", "admin123")

	wrongStatus, wrongResult := doLogin(t, env, `{"email": "admin@streamflix.com", "password": "nope"}`)
	unknownStatus, unknownResult := doLogin(t, env, `{"email": "ghost@streamflix.com", "password": "admin123"}`)

	if wrongStatus != http.StatusUnauthorized || unknownStatus != http.StatusUnauthorized {
		t.Fatalf("got statuses %d and %d, want 401", wrongStatus, unknownStatus)
	}
	if wrongResult.Error != unknownResult.Error {
		t.Errorf("messages differ: %q vs %q", wrongResult.Error, unknownResult.Error)
	}
	if wrongResult.Error != "Invalid email or password" {
		t.Errorf("error = %q", wrongResult.Error)
	}
}

func TestLoginMissingFields(t *testing.T) {
	env := newTestEnv()

	for _, body := range []string{
		`{}`,
		`{"email": "admin@streamflix.com"}`,
		`{"password": "admin123"}`,
		`not json`,
	} {
		status, result := doLogin(t, env, body)
		if status != http.StatusBadRequest {
			t.Errorf("body %q: got status %d, want 400", body, status)
		}
		if result.Error != "Email and password are required" {
			t.Errorf("body %q: error = %q", body, result.Error)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv()
	seedAdmin(t, env, "admin@streamflix.com", "admin123")

	if _, err := env.app.AuthService.Register(context.Background(), "admin@streamflix.com", "other-pass"); err == nil {
		t.Fatal("expected duplicate email to be rejected")
	}
}

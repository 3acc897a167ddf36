package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"streamflix/internal/handler"
	"streamflix/internal/security"
)

func TestRequireAdminReasons(t *testing.T) {
	env := newTestEnv()
	router := handler.NewRouter(env.app)

	expiredIssuer := security.NewTokenManager(testSecret, -time.Hour)
	expiredToken, err := expiredIssuer.Issue("507f1f77bcf86cd799439011", "admin")
	if err != nil {
		t.Fatalf("failed to issue expired token: %v", err)
	}

	wrongSecretIssuer := security.NewTokenManager("some-other-secret", time.Hour)
	forgedToken, err := wrongSecretIssuer.Issue("507f1f77bcf86cd799439011", "admin")
	if err != nil {
		t.Fatalf("failed to issue forged token: %v", err)
	}

	viewerToken, err := env.tokens.Issue("507f1f77bcf86cd799439011", "viewer")
	if err != nil {
		t.Fatalf("failed to issue viewer token: %v", err)
	}

	cases := []struct {
		name      string
		token     string
		wantError string
	}{
		{"no token", "", "No token provided"},
		{"garbage token", "not-a-jwt", "Invalid or expired token"},
		{"expired token", expiredToken, "Invalid or expired token"},
		{"wrong secret", forgedToken, "Invalid or expired token"},
		{"wrong role", viewerToken, "Unauthorized access"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp := doRequest(t, router, http.MethodPost, "/api/movies", movieBody("Blocked", "Drama", 2024), tc.token)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("got status %d, want 401", rec.Code)
			}
			if resp.Error != tc.wantError {
				t.Errorf("error = %q, want %q", resp.Error, tc.wantError)
			}
		})
	}
}

func TestMalformedAuthorizationHeader(t *testing.T) {
	env := newTestEnv()
	router := handler.NewRouter(env.app)

	req := httptest.NewRequest(http.MethodDelete, "/api/movies/507f1f77bcf86cd799439011", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", rec.Code)
	}
}

// Rejected mutations must never reach the store.
func TestUnauthorizedRequestsDoNotMutate(t *testing.T) {
	env := newTestEnv()
	router := handler.NewRouter(env.app)
	token := adminToken(t, env)

	rec, resp := doRequest(t, router, http.MethodPost, "/api/movies", movieBody("Keeper", "Drama", 2024), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed create failed: %d", rec.Code)
	}
	id := decodeMovie(t, resp.Data).ID

	doRequest(t, router, http.MethodPost, "/api/movies", movieBody("Intruder", "Drama", 2024), "")
	doRequest(t, router, http.MethodPut, "/api/movies/"+id, `{"title": "Hacked"}`, "bad-token")
	doRequest(t, router, http.MethodDelete, "/api/movies/"+id, "", "")

	_, listResp := doRequest(t, router, http.MethodGet, "/api/movies", "", "")
	movies := decodeMovies(t, listResp.Data)
	if len(movies) != 1 {
		t.Fatalf("store mutated: %d movies, want 1", len(movies))
	}
	if movies[0].Title != "Keeper" {
		t.Errorf("store mutated: title = %q", movies[0].Title)
	}
}

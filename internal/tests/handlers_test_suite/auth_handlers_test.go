package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/stockpile-io/stockpile/internal/http"
	handler "github.com/stockpile-io/stockpile/internal/http/handlers"
	"github.com/stockpile-io/stockpile/internal/http/rate_limiter"
	"github.com/stockpile-io/stockpile/internal/models"
)

func login(r http.Handler, email, password string) *httptest.ResponseRecorder {
	rate_limiter.CleanupAllVisitors()
	return doJSON(r, http.MethodPost, "/login", "", handler.CredentialsRequest{Email: email, Password: password})
}

func TestLoginHandler_Valid(t *testing.T) {
	r := api.NewRouter()

	w := login(r, "admin@stockpile.test", "secret123")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" || resp.RefreshToken == "" {
		t.Error("expected both access and refresh tokens")
	}
	if resp.User.Role != models.RoleAdmin {
		t.Errorf("expected admin role, got %v", resp.User.Role)
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	r := api.NewRouter()

	tests := []struct {
		name            string
		email, password string
	}{
		{"wrong password", "admin@stockpile.test", "wrong"},
		{"unknown user", "nobody@stockpile.test", "secret123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := login(r, tt.email, tt.password)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestRefreshHandler(t *testing.T) {
	r := api.NewRouter()

	w := login(r, "admin@stockpile.test", "secret123")
	var loginResp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&loginResp); err != nil {
		t.Fatalf("error decoding login response: %v", err)
	}

	w = doJSON(r, http.MethodPost, "/refresh", "", handler.RefreshRequest{RefreshToken: loginResp.RefreshToken})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a fresh access token")
	}
}

func TestLogoutHandler_RevokesRefreshToken(t *testing.T) {
	r := api.NewRouter()

	w := login(r, "admin@stockpile.test", "secret123")
	var loginResp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&loginResp); err != nil {
		t.Fatalf("error decoding login response: %v", err)
	}

	w = doJSON(r, http.MethodPost, "/logout", "", handler.RefreshRequest{RefreshToken: loginResp.RefreshToken})
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/refresh", "", handler.RefreshRequest{RefreshToken: loginResp.RefreshToken})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", w.Code)
	}
}

func TestMeHandler(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/me", associateToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp models.User
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Email != "clerk@stockpile.test" {
		t.Errorf("expected clerk@stockpile.test, got %v", resp.Email)
	}
	if resp.Role != models.RoleAssociate {
		t.Errorf("expected associate role, got %v", resp.Role)
	}
}

func TestRegisterUserHandler(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/admin/users", adminToken, handler.RegisterUserRequest{
		Email:    "new@stockpile.test",
		Password: "secret123",
		Role:     models.RoleAssociate,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	t.Run("duplicate email", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/admin/users", adminToken, handler.RegisterUserRequest{
			Email:    "new@stockpile.test",
			Password: "secret123",
			Role:     models.RoleAssociate,
		})
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/admin/users", adminToken, handler.RegisterUserRequest{
			Email:    "other@stockpile.test",
			Password: "secret123",
			Role:     "superuser",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forbidden for associate", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/admin/users", associateToken, handler.RegisterUserRequest{
			Email:    "blocked@stockpile.test",
			Password: "secret123",
			Role:     models.RoleAssociate,
		})
		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})
}

package authclient

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookcatalog/pkg/domain"
)

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			http.NotFound(w, r)
			return
		}
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode login body: %v", err)
		}
		if body.Username != "testuser" || body.Password != "Password1!" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok1", "role": "ADMIN"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	token, role, err := client.Login("testuser", "Password1!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "tok1" {
		t.Fatalf("expected token tok1, got %q", token)
	}
	if role != domain.RoleAdmin {
		t.Fatalf("expected role ADMIN, got %q", role)
	}
}

func TestLoginFailureComposesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"message": "Login failed",
			"details": "unknown user",
		})
	}))
	defer srv.Close()

	_, _, err := NewClient(srv.URL).Login("nobody", "Password1!")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", apiErr.Status)
	}
	if got := apiErr.Error(); got != "Login failed: unknown user" {
		t.Fatalf("unexpected composed message: %q", got)
	}
}

func TestLoginFailureWithoutBodyFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, _, err := NewClient(srv.URL).Login("testuser", "Password1!")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message == "" {
		t.Fatalf("expected non-empty fallback message")
	}
}

func TestSignUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/signup" {
			http.NotFound(w, r)
			return
		}
		var body struct {
			Email    string `json:"email"`
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode signup body: %v", err)
		}
		if body.Email == "" || body.Username == "" || body.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "missing fields"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "User registered successfully!"})
	}))
	defer srv.Close()

	msg, err := NewClient(srv.URL).SignUp("new@example.com", "newuser", "Password1!")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if msg != "User registered successfully!" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

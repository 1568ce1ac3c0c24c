package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"testing"
	"time"

	"golang.org/x/crypto/argon2"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/auth"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/store"
)

func signupBody() map[string]any {
	return map[string]any{
		"full_name": "Madhava Rao",
		"email":     "madhava@example.com",
		"mobile":    "9876501234",
		"password":  "secret123",
		"consent":   true,
	}
}

func TestSignupLoginLogoutFlow(t *testing.T) {
	srv, client := newTestServer(t)

	status, resp := postJSON(t, client, srv.URL+"/api/account/signup", signupBody())
	if status != http.StatusOK {
		t.Fatalf("signup: status %d, resp %v", status, resp)
	}
	user := resp["user"].(map[string]any)
	if user["email"] != "madhava@example.com" {
		t.Errorf("unexpected user: %v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Error("password hash must never be serialized")
	}

	// Signup opens a session.
	status, resp = getJSON(t, client, srv.URL+"/api/account/me")
	if status != http.StatusOK {
		t.Fatalf("me after signup: status %d, resp %v", status, resp)
	}

	status, _ = postJSON(t, client, srv.URL+"/api/account/logout", nil)
	if status != http.StatusOK {
		t.Fatalf("logout: status %d", status)
	}
	status, _ = getJSON(t, client, srv.URL+"/api/account/me")
	if status != http.StatusUnauthorized {
		t.Errorf("me after logout: expected 401, got %d", status)
	}

	status, _ = postJSON(t, client, srv.URL+"/api/account/login", map[string]any{
		"email":    "madhava@example.com",
		"password": "secret123",
	})
	if status != http.StatusOK {
		t.Fatalf("login: status %d", status)
	}
	status, _ = getJSON(t, client, srv.URL+"/api/account/me")
	if status != http.StatusOK {
		t.Errorf("me after login: expected 200, got %d", status)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	srv, client := newTestServer(t)

	if status, _ := postJSON(t, client, srv.URL+"/api/account/signup", signupBody()); status != http.StatusOK {
		t.Fatalf("first signup: status %d", status)
	}
	status, _ := postJSON(t, client, srv.URL+"/api/account/signup", signupBody())
	if status != http.StatusConflict {
		t.Errorf("duplicate signup: expected 409, got %d", status)
	}
}

func TestSignup_Validation(t *testing.T) {
	srv, client := newTestServer(t)

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing name", func(b map[string]any) { b["full_name"] = "" }},
		{"bad email", func(b map[string]any) { b["email"] = "not-an-email" }},
		{"short mobile", func(b map[string]any) { b["mobile"] = "12345" }},
		{"short password", func(b map[string]any) { b["password"] = "abc" }},
		{"no consent", func(b map[string]any) { b["consent"] = false }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := signupBody()
			tt.mutate(body)
			status, _ := postJSON(t, client, srv.URL+"/api/account/signup", body)
			if status != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", status)
			}
		})
	}
}

func TestLogin_UpgradesLegacyPasswordHash(t *testing.T) {
	env := newTestEnv(t)

	// Account stored with a hash from an older parameter set.
	salt := []byte("0123456789abcdef")
	digest := argon2.IDKey([]byte("secret123"), salt, 1, 64*1024, 4, 32)
	legacy := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, 64*1024, 1, 4,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest))
	if !auth.NeedsRehash(legacy) {
		t.Fatal("fixture hash must use outdated parameters")
	}

	now := time.Now().UTC()
	user, err := env.queries.CreateUser(context.Background(), store.CreateUserParams{
		Email:        "madhava@example.com",
		PasswordHash: legacy,
		FullName:     "Madhava Rao",
		Mobile:       "9876501234",
		Consent:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	status, _ := postJSON(t, env.client, env.srv.URL+"/api/account/login", map[string]any{
		"email":    "madhava@example.com",
		"password": "secret123",
	})
	if status != http.StatusOK {
		t.Fatalf("login: status %d", status)
	}

	stored, err := env.queries.GetUserByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.PasswordHash == legacy {
		t.Fatal("hash not upgraded on login")
	}
	if auth.NeedsRehash(stored.PasswordHash) {
		t.Error("upgraded hash still uses outdated parameters")
	}
	if ok, err := auth.CheckPassword("secret123", stored.PasswordHash); err != nil || !ok {
		t.Errorf("upgraded hash rejects the password: ok=%v err=%v", ok, err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	srv, client := newTestServer(t)

	if status, _ := postJSON(t, client, srv.URL+"/api/account/signup", signupBody()); status != http.StatusOK {
		t.Fatalf("signup: status %d", status)
	}
	if status, _ := postJSON(t, client, srv.URL+"/api/account/logout", nil); status != http.StatusOK {
		t.Fatalf("logout: status %d", status)
	}

	status, _ := postJSON(t, client, srv.URL+"/api/account/login", map[string]any{
		"email":    "madhava@example.com",
		"password": "wrongpass",
	})
	if status != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", status)
	}
}

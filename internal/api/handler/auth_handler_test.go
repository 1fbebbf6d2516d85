package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/minimart/storefront/internal/core/domain"
)

func TestAuthHandler_Register(t *testing.T) {
	var gotName, gotEmail, gotPassword string
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.PublicUser, error) {
			gotName, gotEmail, gotPassword = name, email, password
			return &domain.PublicUser{ID: "u1", Name: name, Email: email, Role: domain.RoleUser}, nil
		},
	})

	c, rec := newTestContext(http.MethodPost, "/register",
		`{"name":"Alice","email":"alice@example.com","password":"supersecret"}`, nil)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Status != "success" || env.Message != "Registration successful" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if gotName != "Alice" || gotEmail != "alice@example.com" || gotPassword != "supersecret" {
		t.Fatalf("service received %q %q %q", gotName, gotEmail, gotPassword)
	}
}

func TestAuthHandler_Register_BadPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := map[string]string{
		"malformed json":   `{"name":`,
		"missing name":     `{"email":"a@example.com","password":"supersecret"}`,
		"invalid email":    `{"name":"A","email":"not-an-email","password":"supersecret"}`,
		"short password":   `{"name":"A","email":"a@example.com","password":"short"}`,
		"missing password": `{"name":"A","email":"a@example.com"}`,
	}
	for name, body := range cases {
		c, _ := newTestContext(http.MethodPost, "/register", body, nil)
		err := h.Register(c)
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if code := httpErrorCode(t, err); code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, code)
		}
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.PublicUser, error) {
			return "signed-token", &domain.PublicUser{ID: "u1", Email: email, Role: domain.RoleUser}, nil
		},
	})

	c, rec := newTestContext(http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"supersecret"}`, nil)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %T", env.Data)
	}
	if data["token"] != "signed-token" {
		t.Fatalf("token missing from response: %+v", data)
	}
}

func TestAuthHandler_Login_BadCredentialsPropagate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.PublicUser, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newTestContext(http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"wrong-password"}`, nil)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("domain error must pass through for the error handler, got %v", err)
	}
}

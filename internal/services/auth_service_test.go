package services

import (
	"errors"
	"testing"

	"github.com/calotrack/backend/internal/dto"
)

func TestRegisterAndLogin(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("register returned empty access token")
	}
	if resp.User.Email != "alice@example.com" {
		t.Errorf("user email = %q, want alice@example.com", resp.User.Email)
	}

	login, err := svc.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != resp.User.ID {
		t.Errorf("login user id = %v, want %v", login.User.ID, resp.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db, testConfig())

	req := &dto.RegisterRequest{Email: "bob@example.com", Password: "supersecret"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(req)
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second register err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{Email: "carol@example.com", Password: "short"})
	if err == nil {
		t.Fatal("expected error for short password")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db, testConfig())

	if _, err := svc.Register(&dto.RegisterRequest{Email: "dave@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Login(&dto.LoginRequest{Email: "dave@example.com", Password: "wrongpassword"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("login err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "supersecret"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("login err = %v, want ErrInvalidCredentials", err)
	}
}

package services

import (
	"errors"
	"testing"
)

func TestCreateAndAuthenticateUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Create("reception", "s3cret", "Receptionist")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID == "" {
		t.Error("id was not assigned")
	}
	if user.Password == "s3cret" {
		t.Error("password stored in plaintext")
	}

	authed, token, err := svc.Authenticate("reception", "s3cret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authed.Role != "Receptionist" {
		t.Errorf("role = %q", authed.Role)
	}
	if len(token) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(token))
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	if _, err := svc.Create("reception", "s3cret", "Receptionist"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, _, err := svc.Authenticate("reception", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v", err)
	}
	if _, _, err := svc.Authenticate("nobody", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: err = %v", err)
	}
}

func TestCreateDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	if _, err := svc.Create("kitchen", "pw1", "Kitchen"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create("kitchen", "pw2", "Kitchen"); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("err = %v, want ErrDuplicateUsername", err)
	}
}

func TestUpdateAndDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Create("temp", "pw", "Kitchen")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(user.ID, "", "", "Admin")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Role != "Admin" || updated.Username != "temp" {
		t.Errorf("updated = %+v", updated)
	}

	if _, err := svc.Update("no-such-id", "", "", "Admin"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("update missing: err = %v", err)
	}

	if err := svc.Delete(user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("second delete: err = %v", err)
	}
}

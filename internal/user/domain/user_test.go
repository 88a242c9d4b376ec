package domain

import "testing"

func TestValidateOK(t *testing.T) {
	u := &User{ID: "user-1", Name: "User", Email: "user@nextmail.com", PasswordHash: "$2a$04$hash"}
	if err := u.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateMissingEmail(t *testing.T) {
	u := &User{ID: "user-1", PasswordHash: "$2a$04$hash"}
	if err := u.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidateMissingPasswordHash(t *testing.T) {
	u := &User{ID: "user-1", Email: "user@nextmail.com"}
	if err := u.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}

package utils

import (
	"testing"
	"time"
)

func TestJWT_RoundTrip(t *testing.T) {
	token, err := GenerateJWT("admin-1", "admin", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != "admin-1" || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("admin-1", "admin", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(token, "other-secret"); err == nil {
		t.Error("token signed with a different secret parsed successfully")
	}
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("admin-1", "admin", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Error("expired token parsed successfully")
	}
}

func TestParseJWT_Garbage(t *testing.T) {
	if _, err := ParseJWT("not-a-token", "secret"); err == nil {
		t.Error("malformed token parsed successfully")
	}
}

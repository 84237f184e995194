package utils

import "testing"

func TestJWTTokenRoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(7, "asha", "user", "secret")
	if err != nil {
		t.Fatalf("GenerateJWTToken failed: %v", err)
	}

	id, err := ParseJWTToken(token, "secret")
	if err != nil {
		t.Fatalf("ParseJWTToken failed: %v", err)
	}
	if id != 7 {
		t.Errorf("Expected user id 7, got %d", id)
	}
}

func TestJWTTokenWrongSecret(t *testing.T) {
	token, err := GenerateJWTToken(7, "asha", "user", "secret")
	if err != nil {
		t.Fatalf("GenerateJWTToken failed: %v", err)
	}

	if _, err := ParseJWTToken(token, "other-secret"); err == nil {
		t.Error("Expected parse to fail with the wrong secret")
	}
}

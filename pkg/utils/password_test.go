package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordNeverEqualsPlaintext(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword("secret1", hash) {
		t.Fatal("verify rejected the correct password")
	}
	if CheckPassword("secret2", hash) {
		t.Fatal("verify accepted the wrong password")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("same-input", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, err := HashPassword("same-input", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same input should differ (salt)")
	}
}

func TestHashPasswordInvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("secret1", -1)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !CheckPassword("secret1", hash) {
		t.Fatal("verify rejected password hashed with fallback cost")
	}
}

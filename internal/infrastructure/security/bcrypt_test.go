package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)
	hash, err := h.Hash("default-password-123")
	if err != nil {
		t.Fatalf("hash err: %v", err)
	}
	if hash == "default-password-123" {
		t.Fatalf("hash must not equal plaintext")
	}

	if err := h.Compare(hash, "default-password-123"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Fatalf("expected mismatch")
	}
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(0)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}
}

package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("correct horse battery")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if digest == "correct horse battery" {
		t.Fatalf("digest must not equal plaintext")
	}

	ok, err := h.Verify(digest, "correct horse battery")
	if err != nil || !ok {
		t.Fatalf("expected match, ok=%v err=%v", ok, err)
	}

	ok, err = h.Verify(digest, "wrong password")
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch")
	}
}

func TestHash_FreshSalt(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("same input")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	b, err := h.Hash("same input")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if a == b {
		t.Fatalf("expected different digests for the same input")
	}
}

func TestVerify_MalformedDigest(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	ok, err := h.Verify("not-a-hash", "whatever")
	if err == nil {
		t.Fatalf("expected error for malformed digest")
	}
	if ok {
		t.Fatalf("expected ok=false")
	}
}

func TestNewHasher_DefaultCost(t *testing.T) {
	h := NewHasher(0)

	digest, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("Cost error: %v", err)
	}
	if cost != 10 {
		t.Fatalf("cost=%d want 10", cost)
	}
}

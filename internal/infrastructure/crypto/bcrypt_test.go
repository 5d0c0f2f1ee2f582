package crypto

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-pw")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret-pw" {
		t.Fatalf("hash equals plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("hash is not self-describing bcrypt output: %q", hash)
	}

	if !h.Verify("s3cret-pw", hash) {
		t.Fatalf("Verify rejected the correct password")
	}
	if h.Verify("wrong-pw", hash) {
		t.Fatalf("Verify accepted a wrong password")
	}
}

func TestBcryptHasher_HashesDiffer(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	h1, _ := h.Hash("same")
	h2, _ := h.Hash("same")
	if h1 == h2 {
		t.Fatalf("expected distinct salts, got identical hashes")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	for _, malformed := range []string{"", "not-a-hash", "$2y$banana"} {
		if h.Verify("anything", malformed) {
			t.Fatalf("Verify accepted malformed hash %q", malformed)
		}
	}
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	h := NewBcryptHasher(999)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected fallback to default cost, got %d", h.cost)
	}
}

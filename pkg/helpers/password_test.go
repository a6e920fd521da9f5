package helpers

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("p1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "p1" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "p1") {
		t.Fatalf("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	// a malformed digest reads as a mismatch, never a panic or error
	if CheckPassword("not-a-bcrypt-digest", "p1") {
		t.Fatalf("malformed digest must not verify")
	}
	if CheckPassword("", "p1") {
		t.Fatalf("empty digest must not verify")
	}
}

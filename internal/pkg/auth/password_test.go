package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("HashPassword() returned the plaintext")
	}

	if !CheckPassword(hash, "hunter22") {
		t.Error("CheckPassword() rejected the correct password")
	}
	if CheckPassword(hash, "hunter23") {
		t.Error("CheckPassword() accepted a wrong password")
	}
	if CheckPassword(hash, "") {
		t.Error("CheckPassword() accepted an empty password")
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password are identical, salt is missing")
	}
}

package keystore

import (
	"bytes"
	"testing"
)

// fastKDFParams keeps Argon2id cheap in tests.
func fastKDFParams() KDFParams {
	return KDFParams{Memory: 64, Iterations: 1, Parallelism: 1}
}

func TestSealOpen(t *testing.T) {
	data := []byte("sixteen byte seed")
	password := []byte("correct horse")

	sealed, err := Seal(data, password, fastKDFParams())
	if err != nil {
		t.Fatalf("Seal() error: %v", err)
	}

	plaintext, err := Open(sealed, password)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if !bytes.Equal(plaintext, data) {
		t.Errorf("Open() = %q, want %q", plaintext, data)
	}
}

func TestOpen_WrongPassword(t *testing.T) {
	sealed, err := Seal([]byte("secret"), []byte("right"), fastKDFParams())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Open(sealed, []byte("wrong")); err == nil {
		t.Error("should fail with the wrong password")
	}
}

func TestOpen_Tampered(t *testing.T) {
	sealed, err := Seal([]byte("secret"), []byte("pw"), fastKDFParams())
	if err != nil {
		t.Fatal(err)
	}
	sealed[len(sealed)-1] ^= 0x01
	if _, err := Open(sealed, []byte("pw")); err == nil {
		t.Error("should detect a flipped ciphertext bit")
	}
}

func TestOpen_TooShort(t *testing.T) {
	if _, err := Open([]byte("short"), []byte("pw")); err == nil {
		t.Error("should reject a truncated blob")
	}
}

func TestSeal_UniqueOutput(t *testing.T) {
	// Fresh salt and nonce every call: sealing the same data twice must not
	// produce the same blob.
	data := []byte("secret")
	password := []byte("pw")
	s1, err := Seal(data, password, fastKDFParams())
	if err != nil {
		t.Fatal(err)
	}
	s2, err := Seal(data, password, fastKDFParams())
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(s1, s2) {
		t.Error("two seals of the same data should differ")
	}
}

package keys

import (
	"bytes"
	"crypto/rand"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/curve25519"

	kerrors "github.com/purrcrypt/purr/internal/errors"
)

func TestGenerate(t *testing.T) {
	kp, err := Generate(rand.Reader)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !kp.HasPrivate() {
		t.Fatal("Expected generated keypair to have a private half")
	}

	// The public half must be the basepoint multiple of the private scalar.
	pub, err := curve25519.X25519(kp.Private[:], curve25519.Basepoint)
	if err != nil {
		t.Fatalf("X25519 failed: %v", err)
	}
	if !bytes.Equal(pub, kp.Public[:]) {
		t.Error("Public key does not correspond to private scalar")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, KeySize)

	a, err := Generate(bytes.NewReader(seed))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	b, err := Generate(bytes.NewReader(seed))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if a.Public != b.Public {
		t.Error("Same randomness should produce the same keypair")
	}

	// Clamping per RFC 7748.
	if a.Private[0]&7 != 0 || a.Private[31]&128 != 0 || a.Private[31]&64 == 0 {
		t.Error("Private scalar is not clamped")
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "purr-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	kp, err := Generate(rand.Reader)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	pubPath := filepath.Join(tmpDir, "alice.pub")
	privPath := filepath.Join(tmpDir, "alice.key")

	if err := SavePublicKey(pubPath, kp.Public); err != nil {
		t.Fatalf("SavePublicKey failed: %v", err)
	}
	if err := SavePrivateKey(privPath, kp.Private); err != nil {
		t.Fatalf("SavePrivateKey failed: %v", err)
	}

	// Private key files must deny group and world access.
	info, err := os.Stat(privPath)
	if err != nil {
		t.Fatalf("Failed to stat private key: %v", err)
	}
	if mode := info.Mode().Perm(); mode&0077 != 0 {
		t.Errorf("Private key has permissions %o, expected no group/world access", mode)
	}

	loaded, err := LoadKeyPair(pubPath, privPath)
	if err != nil {
		t.Fatalf("LoadKeyPair failed: %v", err)
	}
	if loaded.Public != kp.Public {
		t.Error("Loaded public key does not match saved key")
	}
	if *loaded.Private != *kp.Private {
		t.Error("Loaded private key does not match saved key")
	}
}

func TestLoad_InvalidLength(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "purr-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	short := filepath.Join(tmpDir, "short.pub")
	if err := os.WriteFile(short, []byte("too short"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := LoadPublicKey(short); !errors.Is(err, kerrors.ErrInvalidKey) {
		t.Errorf("Expected ErrInvalidKey, got: %v", err)
	}
	if _, err := LoadPrivateKey(short); !errors.Is(err, kerrors.ErrInvalidKey) {
		t.Errorf("Expected ErrInvalidKey, got: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := LoadPublicKey("/nonexistent/nope.pub"); err == nil {
		t.Error("Expected error for missing file")
	}
}

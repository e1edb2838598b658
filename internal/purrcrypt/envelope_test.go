package purrcrypt

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/purrcrypt/purr/internal/dialect"
	kerrors "github.com/purrcrypt/purr/internal/errors"
	"github.com/purrcrypt/purr/internal/keys"
)

func generateKeyPair(t *testing.T) *keys.KeyPair {
	t.Helper()
	kp, err := keys.Generate(rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate keypair: %v", err)
	}
	return kp
}

func TestSealOpen_RoundTrip(t *testing.T) {
	recipient := generateKeyPair(t)
	plaintexts := [][]byte{
		{},
		[]byte("x"),
		[]byte("a short message"),
		bytes.Repeat([]byte("purr"), 4096),
	}

	for _, plaintext := range plaintexts {
		for _, d := range []dialect.Dialect{dialect.Cat, dialect.Dog} {
			env, err := Seal(plaintext, recipient.Public, d, rand.Reader)
			if err != nil {
				t.Fatalf("Seal failed: %v", err)
			}

			decrypted, err := env.Open(recipient)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if !bytes.Equal(decrypted, plaintext) {
				t.Errorf("Round trip mismatch for %d-byte plaintext in %s dialect", len(plaintext), d)
			}
		}
	}
}

func TestSeal_FreshEphemeralPerCall(t *testing.T) {
	recipient := generateKeyPair(t)

	a, err := Seal([]byte("same message"), recipient.Public, dialect.Cat, rand.Reader)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	b, err := Seal([]byte("same message"), recipient.Public, dialect.Cat, rand.Reader)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	if a.EphemeralPublic == b.EphemeralPublic {
		t.Error("Ephemeral key was reused across encryptions")
	}
	if bytes.Equal(a.Ciphertext, b.Ciphertext) {
		t.Error("Two encryptions of the same plaintext produced identical ciphertext")
	}
}

func TestOpen_WrongKeyFails(t *testing.T) {
	recipient := generateKeyPair(t)
	imposter := generateKeyPair(t)

	env, err := Seal([]byte("for recipient only"), recipient.Public, dialect.Cat, rand.Reader)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	if _, err := env.Open(imposter); !errors.Is(err, kerrors.ErrAuthentication) {
		t.Errorf("Expected ErrAuthentication with wrong key, got: %v", err)
	}
}

func TestOpen_PublicOnlyKeyFails(t *testing.T) {
	recipient := generateKeyPair(t)

	env, err := Seal([]byte("hello"), recipient.Public, dialect.Cat, rand.Reader)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	publicOnly := &keys.KeyPair{Public: recipient.Public}
	if _, err := env.Open(publicOnly); !errors.Is(err, kerrors.ErrInvalidKey) {
		t.Errorf("Expected ErrInvalidKey without private half, got: %v", err)
	}
}

func TestTamperDetection_EveryByte(t *testing.T) {
	recipient := generateKeyPair(t)

	env, err := Seal([]byte("tamper with me"), recipient.Public, dialect.Dog, rand.Reader)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	wire := env.Marshal()

	for offset := 0; offset < len(wire); offset++ {
		for bit := 0; bit < 8; bit++ {
			corrupted := append([]byte(nil), wire...)
			corrupted[offset] ^= 1 << bit

			parsed, err := Parse(corrupted)
			if err != nil {
				// The version byte is the only field rejected at parse time.
				if offset != 0 || !errors.Is(err, kerrors.ErrUnsupportedVersion) {
					t.Errorf("Unexpected parse error at offset %d bit %d: %v", offset, bit, err)
				}
				continue
			}

			plaintext, err := parsed.Open(recipient)
			if err == nil {
				t.Fatalf("Corruption at offset %d bit %d went undetected, plaintext released: %q",
					offset, bit, plaintext)
			}
			if !errors.Is(err, kerrors.ErrAuthentication) {
				t.Errorf("Expected ErrAuthentication at offset %d bit %d, got: %v", offset, bit, err)
			}
		}
	}
}

func TestParse_Truncated(t *testing.T) {
	if _, err := Parse([]byte{EnvelopeVersion, 0}); !errors.Is(err, kerrors.ErrDecode) {
		t.Errorf("Expected ErrDecode for truncated envelope, got: %v", err)
	}
	if _, err := Parse(nil); !errors.Is(err, kerrors.ErrDecode) {
		t.Errorf("Expected ErrDecode for empty envelope, got: %v", err)
	}
}

func TestParse_UnsupportedVersion(t *testing.T) {
	recipient := generateKeyPair(t)
	env, err := Seal([]byte("future proof"), recipient.Public, dialect.Cat, rand.Reader)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	wire := env.Marshal()
	wire[0] = 99
	if _, err := Parse(wire); !errors.Is(err, kerrors.ErrUnsupportedVersion) {
		t.Errorf("Expected ErrUnsupportedVersion, got: %v", err)
	}
}

func TestMarshalParse_RoundTrip(t *testing.T) {
	recipient := generateKeyPair(t)
	env, err := Seal([]byte("wire format"), recipient.Public, dialect.Dog, rand.Reader)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	parsed, err := Parse(env.Marshal())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed.Version != env.Version || parsed.Dialect != env.Dialect {
		t.Error("Header fields did not survive marshal/parse")
	}
	if parsed.EphemeralPublic != env.EphemeralPublic || parsed.Nonce != env.Nonce {
		t.Error("Key material fields did not survive marshal/parse")
	}
	if !bytes.Equal(parsed.Ciphertext, env.Ciphertext) {
		t.Error("Ciphertext did not survive marshal/parse")
	}
}

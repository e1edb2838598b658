package keys

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/curve25519"

	kerrors "github.com/purrcrypt/purr/internal/errors"
)

// KeySize is the length of both X25519 key halves in bytes.
const KeySize = 32

type PublicKey [KeySize]byte

type PrivateKey [KeySize]byte

// KeyPair holds an X25519 key. Private is nil when only the public half is
// loaded (recipient use). A present private half is assumed, not verified,
// to correspond to the public half; a mismatch surfaces as an
// authentication failure at decrypt time.
type KeyPair struct {
	Public  PublicKey
	Private *PrivateKey
}

// HasPrivate reports whether the private half is loaded.
func (kp *KeyPair) HasPrivate() bool {
	return kp.Private != nil
}

// Generate creates a fresh X25519 keypair from the given randomness source.
// Production callers pass crypto/rand.Reader; tests may pass a
// deterministic reader.
func Generate(random io.Reader) (*KeyPair, error) {
	var priv PrivateKey
	if _, err := io.ReadFull(random, priv[:]); err != nil {
		return nil, fmt.Errorf("%w: reading entropy: %v", kerrors.ErrKeyGeneration, err)
	}

	// Clamp per RFC 7748 so the stored scalar is already canonical.
	priv[0] &= 248
	priv[31] &= 127
	priv[31] |= 64

	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("%w: deriving public key: %v", kerrors.ErrKeyGeneration, err)
	}

	kp := &KeyPair{Private: &priv}
	copy(kp.Public[:], pub)
	return kp, nil
}

// LoadPublicKey reads a raw 32-byte public key file.
func LoadPublicKey(path string) (PublicKey, error) {
	var pub PublicKey
	data, err := os.ReadFile(path)
	if err != nil {
		return pub, fmt.Errorf("failed to read public key at %s: %w", path, err)
	}
	if len(data) != KeySize {
		return pub, fmt.Errorf("%w: public key at %s is %d bytes, expected %d",
			kerrors.ErrInvalidKey, path, len(data), KeySize)
	}
	copy(pub[:], data)
	return pub, nil
}

// LoadPrivateKey reads a raw 32-byte private key file.
func LoadPrivateKey(path string) (*PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key at %s: %w", path, err)
	}
	if len(data) != KeySize {
		return nil, fmt.Errorf("%w: private key at %s is %d bytes, expected %d",
			kerrors.ErrInvalidKey, path, len(data), KeySize)
	}
	var priv PrivateKey
	copy(priv[:], data)
	return &priv, nil
}

// LoadKeyPair reads both halves of a keypair. Decryption needs both: the
// public half is bound into the envelope's key derivation context.
func LoadKeyPair(publicPath, privatePath string) (*KeyPair, error) {
	pub, err := LoadPublicKey(publicPath)
	if err != nil {
		return nil, err
	}
	priv, err := LoadPrivateKey(privatePath)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Public: pub, Private: priv}, nil
}

// SavePublicKey writes the public half as raw bytes, world-readable.
func SavePublicKey(path string, pub PublicKey) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create directory for public key at %s: %w", path, err)
	}
	// #nosec G306 -- Public keys are meant to be shared.
	if err := os.WriteFile(path, pub[:], 0644); err != nil {
		return fmt.Errorf("failed to write public key to %s: %w", path, err)
	}
	return nil
}

// SavePrivateKey writes the private half as raw bytes, owner-only.
func SavePrivateKey(path string, priv *PrivateKey) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create directory for private key at %s: %w", path, err)
	}
	if err := os.WriteFile(path, priv[:], 0600); err != nil {
		return fmt.Errorf("failed to write private key to %s: %w", path, err)
	}
	return nil
}

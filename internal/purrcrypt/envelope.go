package purrcrypt

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"

	"github.com/purrcrypt/purr/internal/dialect"
	kerrors "github.com/purrcrypt/purr/internal/errors"
	"github.com/purrcrypt/purr/internal/keys"
)

const (
	// EnvelopeVersion is the only wire format this build reads or writes.
	EnvelopeVersion = 1

	kdfContext = "purr-envelope-v1"

	headerSize = 2 + keys.KeySize
	minimum    = headerSize + chacha20poly1305.NonceSizeX + chacha20poly1305.Overhead
)

// Envelope is the authenticated hybrid-encryption payload. The header
// fields (version, dialect tag, ephemeral public key) are covered by the
// AEAD tag as associated data, so tampering with any of them fails
// verification the same way ciphertext corruption does.
type Envelope struct {
	Version         byte
	Dialect         dialect.Dialect
	EphemeralPublic keys.PublicKey
	Nonce           [chacha20poly1305.NonceSizeX]byte
	Ciphertext      []byte
}

func (e *Envelope) header() []byte {
	h := make([]byte, 0, headerSize)
	h = append(h, e.Version, byte(e.Dialect))
	h = append(h, e.EphemeralPublic[:]...)
	return h
}

// deriveKey stretches the DH shared secret into an AEAD key. The info
// string binds both public keys and the dialect tag, so a ciphertext
// produced for one recipient/dialect pairing cannot be reinterpreted
// under another.
func deriveKey(shared []byte, ephemeral, recipient keys.PublicKey, d dialect.Dialect) ([]byte, error) {
	info := make([]byte, 0, len(kdfContext)+2*keys.KeySize+1)
	info = append(info, kdfContext...)
	info = append(info, ephemeral[:]...)
	info = append(info, recipient[:]...)
	info = append(info, byte(d))

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, shared, nil, info), key); err != nil {
		return nil, fmt.Errorf("key derivation failed: %w", err)
	}
	return key, nil
}

// Seal encrypts plaintext for the recipient using a fresh ephemeral
// keypair drawn from random. The ephemeral key is never reused: every
// call produces unlinkable ciphertext, even for the same recipient.
func Seal(plaintext []byte, recipient keys.PublicKey, d dialect.Dialect, random io.Reader) (*Envelope, error) {
	ephemeral, err := keys.Generate(random)
	if err != nil {
		return nil, err
	}

	shared, err := curve25519.X25519(ephemeral.Private[:], recipient[:])
	if err != nil {
		return nil, fmt.Errorf("key agreement failed: %w", err)
	}
	defer zero(shared)

	key, err := deriveKey(shared, ephemeral.Public, recipient, d)
	if err != nil {
		return nil, err
	}
	defer zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("cipher setup failed: %w", err)
	}

	env := &Envelope{
		Version:         EnvelopeVersion,
		Dialect:         d,
		EphemeralPublic: ephemeral.Public,
	}
	if _, err := io.ReadFull(random, env.Nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	env.Ciphertext = aead.Seal(nil, env.Nonce[:], plaintext, env.header())
	return env, nil
}

// Open verifies and decrypts the envelope with the recipient's keypair.
// Verification failure returns ErrAuthentication and no plaintext bytes,
// partial or otherwise. The public half must be present: it is part of
// the key derivation context.
func (e *Envelope) Open(kp *keys.KeyPair) ([]byte, error) {
	if e.Version != EnvelopeVersion {
		return nil, fmt.Errorf("%w: got version %d, support version %d",
			kerrors.ErrUnsupportedVersion, e.Version, EnvelopeVersion)
	}
	if !kp.HasPrivate() {
		return nil, fmt.Errorf("%w: private key half is required to decrypt", kerrors.ErrInvalidKey)
	}

	shared, err := curve25519.X25519(kp.Private[:], e.EphemeralPublic[:])
	if err != nil {
		return nil, fmt.Errorf("key agreement failed: %w", err)
	}
	defer zero(shared)

	key, err := deriveKey(shared, e.EphemeralPublic, kp.Public, e.Dialect)
	if err != nil {
		return nil, err
	}
	defer zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("cipher setup failed: %w", err)
	}

	plaintext, err := aead.Open(nil, e.Nonce[:], e.Ciphertext, e.header())
	if err != nil {
		return nil, kerrors.ErrAuthentication
	}
	return plaintext, nil
}

// Marshal serializes the envelope into its fixed-layout binary form:
// version | dialect | ephemeral public key | nonce | ciphertext+tag.
func (e *Envelope) Marshal() []byte {
	out := make([]byte, 0, headerSize+len(e.Nonce)+len(e.Ciphertext))
	out = append(out, e.header()...)
	out = append(out, e.Nonce[:]...)
	out = append(out, e.Ciphertext...)
	return out
}

// Parse reconstructs an envelope from its binary form. The version is
// checked here so future formats are rejected instead of misparsed.
func Parse(data []byte) (*Envelope, error) {
	if len(data) < minimum {
		return nil, fmt.Errorf("%w: envelope truncated at %d bytes", kerrors.ErrDecode, len(data))
	}
	if data[0] != EnvelopeVersion {
		return nil, fmt.Errorf("%w: got version %d, support version %d",
			kerrors.ErrUnsupportedVersion, data[0], EnvelopeVersion)
	}
	// The dialect tag is not validated here: it is associated data, so a
	// corrupted tag fails authentication in Open rather than parsing.
	env := &Envelope{
		Version: data[0],
		Dialect: dialect.Dialect(data[1]),
	}
	rest := data[2:]
	copy(env.EphemeralPublic[:], rest[:keys.KeySize])
	rest = rest[keys.KeySize:]
	copy(env.Nonce[:], rest[:chacha20poly1305.NonceSizeX])
	env.Ciphertext = append([]byte(nil), rest[chacha20poly1305.NonceSizeX:]...)
	return env, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

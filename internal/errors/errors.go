package errors

import "errors"

// Key errors indicate failures creating, locating, or parsing key material.
var (
	// ErrKeyGeneration indicates a keypair could not be generated or persisted.
	ErrKeyGeneration = errors.New("failed to generate keypair")

	// ErrKeyNotFound indicates a key name or path could not be resolved.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidKey indicates key material is malformed or the wrong length.
	ErrInvalidKey = errors.New("invalid key material")
)

// Storage errors indicate filesystem access or creation failures.
var (
	// ErrStorage indicates the keystore tree could not be created or accessed.
	ErrStorage = errors.New("keystore storage failure")
)

// Envelope errors indicate failures decoding or decrypting a .purr file.
var (
	// ErrDecode indicates the dialect codec encountered an out-of-vocabulary
	// or ambiguous token. Decoding never produces a partial result.
	ErrDecode = errors.New("failed to decode dialect text")

	// ErrUnsupportedVersion indicates the envelope version is not supported.
	ErrUnsupportedVersion = errors.New("unsupported envelope version")

	// ErrAuthentication indicates tag verification failed. No plaintext is
	// ever released when this occurs.
	ErrAuthentication = errors.New("envelope authentication failed")
)

// Package purrcrypt implements the hybrid encryption envelope behind .purr
// files: X25519 key agreement with a fresh ephemeral key per message,
// HKDF-SHA256 key derivation bound to both public keys and the dialect
// tag, and XChaCha20-Poly1305 authenticated encryption covering the
// envelope header as associated data.
package purrcrypt

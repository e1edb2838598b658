// Package keys defines the X25519 keypair value type and its raw 32-byte
// on-disk encoding. Key material is immutable once loaded; generation takes
// an explicit randomness source so tests can be deterministic.
package keys

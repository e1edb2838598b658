// Package dialect implements the bijective mapping between binary data and
// cat- or dog-themed token text. It is a pure transport encoding with no
// confidentiality of its own; authenticity of the encoded envelope comes
// from the AEAD tag it carries.
package dialect

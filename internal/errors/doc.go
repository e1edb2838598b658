// Package errors defines sentinel errors for purr operations.
//
// Callers wrap these with fmt.Errorf and %w to add context, and match them
// with errors.Is. The taxonomy is deliberately small: every error here is
// fatal to the running command except keystore permission warnings, which
// are reported out-of-band and never abort.
package errors

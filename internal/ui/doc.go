// Package ui provides semantic text formatting for CLI output with
// automatic color detection and NO_COLOR support.
package ui

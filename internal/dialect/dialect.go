package dialect

import (
	"fmt"
	"strings"

	kerrors "github.com/purrcrypt/purr/internal/errors"
)

// Dialect selects which themed vocabulary renders ciphertext as text.
// It is purely a presentation parameter and carries no cryptographic weight.
type Dialect int

const (
	Cat Dialect = iota
	Dog
)

func (d Dialect) String() string {
	switch d {
	case Cat:
		return "cat"
	case Dog:
		return "dog"
	default:
		return fmt.Sprintf("dialect(%d)", int(d))
	}
}

// Parse converts a user-supplied dialect name to a Dialect.
func Parse(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "cat":
		return Cat, nil
	case "dog":
		return Dog, nil
	default:
		return Cat, fmt.Errorf("invalid dialect %q: use 'cat' or 'dog'", s)
	}
}

// Each byte encodes as two tokens, one per nibble. Sixteen words per
// dialect cover the nibble range exactly, so the mapping is a bijection
// with no padding. The two vocabularies share no words: text encoded in
// one dialect always fails to decode in the other.
var catWords = [16]string{
	"meow", "purr", "mew", "nya",
	"miau", "mrrp", "trill", "hiss",
	"yowl", "chirp", "knead", "paws",
	"whisker", "tail", "nap", "pounce",
}

var dogWords = [16]string{
	"woof", "bark", "arf", "ruff",
	"bork", "yip", "growl", "howl",
	"awoo", "sniff", "wag", "fetch",
	"dig", "bone", "roll", "zoomies",
}

const tokensPerLine = 12

var (
	catIndex = buildIndex(catWords)
	dogIndex = buildIndex(dogWords)
)

func buildIndex(words [16]string) map[string]byte {
	m := make(map[string]byte, len(words))
	for i, w := range words {
		m[w] = byte(i)
	}
	return m
}

func (d Dialect) words() *[16]string {
	if d == Dog {
		return &dogWords
	}
	return &catWords
}

func (d Dialect) index() map[string]byte {
	if d == Dog {
		return dogIndex
	}
	return catIndex
}

// Encode renders data as dialect text. Output lines wrap at a fixed token
// count so .purr files stay readable; Decode ignores all whitespace.
func Encode(data []byte, d Dialect) string {
	if len(data) == 0 {
		return ""
	}

	words := d.words()
	var sb strings.Builder
	sb.Grow(len(data) * 12)

	written := 0
	for _, b := range data {
		for _, nibble := range [2]byte{b >> 4, b & 0x0f} {
			if written > 0 {
				if written%tokensPerLine == 0 {
					sb.WriteByte('\n')
				} else {
					sb.WriteByte(' ')
				}
			}
			sb.WriteString(words[nibble])
			written++
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Decode maps dialect text back to bytes. Matching is case-insensitive and
// tolerant of repeated separators, line wrapping, and surrounding
// whitespace. Any token outside the dialect's vocabulary fails the whole
// decode; there is no best-effort partial result.
func Decode(text string, d Dialect) ([]byte, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return []byte{}, nil
	}
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("%w: odd token count %d", kerrors.ErrDecode, len(tokens))
	}

	index := d.index()
	out := make([]byte, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		hi, ok := index[strings.ToLower(tokens[i])]
		if !ok {
			return nil, fmt.Errorf("%w: unknown %s token %q", kerrors.ErrDecode, d, tokens[i])
		}
		lo, ok := index[strings.ToLower(tokens[i+1])]
		if !ok {
			return nil, fmt.Errorf("%w: unknown %s token %q", kerrors.ErrDecode, d, tokens[i+1])
		}
		out = append(out, hi<<4|lo)
	}
	return out, nil
}

// Detect infers the dialect of encoded text from its first token. Sound
// because the vocabularies are disjoint: a token belongs to at most one
// dialect, and an unrecognized token fails rather than guessing.
func Detect(text string) (Dialect, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return Cat, fmt.Errorf("%w: empty input", kerrors.ErrDecode)
	}
	first := strings.ToLower(tokens[0])
	if _, ok := catIndex[first]; ok {
		return Cat, nil
	}
	if _, ok := dogIndex[first]; ok {
		return Dog, nil
	}
	return Cat, fmt.Errorf("%w: token %q is not in any dialect", kerrors.ErrDecode, tokens[0])
}

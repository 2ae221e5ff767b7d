// Package charclass expands the character-bearing parts of a pattern into
// the sets of code points they must match in polytonic Greek text.
package charclass

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedOption indicates a mode character other than 'i' or 'c'.
var ErrUnsupportedOption = errors.New("unsupported option")

// Mode is the set of matching modes active for one rewrite.
type Mode uint8

const (
	// CaseInsensitive adds the other-case form of every Greek letter in the
	// same tier. Option character 'i'.
	CaseInsensitive Mode = 1 << iota

	// DiacriticInsensitive folds every diacritic variant of a letter into
	// one class. Option character 'c' ("compatibility").
	DiacriticInsensitive
)

// ParseMode parses an option string made of 'i' and 'c' in any order. The
// empty string is the zero Mode.
func ParseMode(options string) (Mode, error) {
	var m Mode
	for _, c := range options {
		switch c {
		case 'i':
			m |= CaseInsensitive
		case 'c':
			m |= DiacriticInsensitive
		default:
			return 0, fmt.Errorf("%w: %q in %q", ErrUnsupportedOption, c, options)
		}
	}

	return m, nil
}

// Has reports whether every flag of f is set in m.
func (m Mode) Has(f Mode) bool {
	return m&f == f
}

// String returns the canonical option string, "c" before "i".
func (m Mode) String() string {
	var b strings.Builder
	if m.Has(DiacriticInsensitive) {
		b.WriteByte('c')
	}
	if m.Has(CaseInsensitive) {
		b.WriteByte('i')
	}

	return b.String()
}

// Package syntax splits a regular expression into atoms.
//
// The tokenizer understands only as much of RE2 and .NET syntax as is needed
// to find the character-bearing parts of a pattern: literals, character
// classes and their ranges, and the \w family of shorthands. Everything else
// (groups, quantifiers, anchors, other escapes) becomes an opaque atom that is
// copied through unchanged.
//
// Every atom keeps its exact source text, so [Join] of the atoms returned by
// [Tokenize] is always the input pattern.
package syntax

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedPattern indicates a pattern the tokenizer cannot split.
var ErrMalformedPattern = errors.New("malformed pattern")

// Kind tags an [Atom].
type Kind uint8

const (
	Literal Kind = iota
	ClassOpen
	ClassClose
	RangeDash
	ShorthandWord
	ShorthandNonWord
	ShorthandSpace
	ShorthandNonSpace
	ShorthandDigit
	WordBoundary
	Quantifier
	GroupBoundary
	Escape
	Other
)

var kindNames = [...]string{
	Literal:           "literal",
	ClassOpen:         "class-open",
	ClassClose:        "class-close",
	RangeDash:         "range-dash",
	ShorthandWord:     `\w`,
	ShorthandNonWord:  `\W`,
	ShorthandSpace:    `\s`,
	ShorthandNonSpace: `\S`,
	ShorthandDigit:    `\d`,
	WordBoundary:      `\b`,
	Quantifier:        "quantifier",
	GroupBoundary:     "group",
	Escape:            "escape",
	Other:             "other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", k)
}

// Unbounded is the Max of a quantifier without an upper bound.
const Unbounded = -1

// Atom is one syntactic unit of a pattern.
type Atom struct {
	Kind Kind

	// Text is the exact source text of the atom.
	Text string

	// Offset is the byte offset of Text in the pattern.
	Offset int

	// Rune is the character of a Literal, or the escaped character of a
	// single-character Escape.
	Rune rune

	// Negated is set on a ClassOpen written as "[^".
	Negated bool

	// Min and Max bound a Quantifier; Max is Unbounded for *, + and {m,}.
	Min, Max int
}

// Join reassembles atoms into pattern text.
func Join(atoms []Atom) string {
	var b strings.Builder
	for _, a := range atoms {
		b.WriteString(a.Text)
	}

	return b.String()
}

// Error describes where and why a pattern is malformed.
type Error struct {
	Offset int
	Text   string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s at offset %d: `%s`", ErrMalformedPattern, e.Reason, e.Offset, e.Text)
}

// Unwrap reports ErrMalformedPattern.
func (e *Error) Unwrap() error {
	return ErrMalformedPattern
}

package gregex

import (
	"errors"

	"go.dw1.io/gregex/charclass"
	"go.dw1.io/gregex/greek"
	"go.dw1.io/gregex/syntax"
)

var (
	// ErrUnsupportedOption indicates an option character other than 'i' or
	// 'c', or more than one options string.
	ErrUnsupportedOption = charclass.ErrUnsupportedOption

	// ErrMalformedPattern indicates a pattern that cannot be tokenized.
	ErrMalformedPattern = syntax.ErrMalformedPattern

	// ErrInvalidRange indicates a descending Greek range such as [ω-α].
	ErrInvalidRange = greek.ErrInvalidRange

	// ErrUnknownLetter indicates a rune that reached a Greek letter lookup
	// without being part of the alphabet.
	ErrUnknownLetter = greek.ErrUnknownLetter

	// ErrUnsupportedPattern indicates a pattern value that cannot be used as
	// pattern source.
	ErrUnsupportedPattern = errors.New("unsupported pattern type")

	// ErrUnknownEngine indicates an engine name other than auto, re2 or
	// backtrack.
	ErrUnknownEngine = errors.New("unknown engine")
)

package greek

import (
	"fmt"
	"slices"
	"unicode"
)

// Lookup resolves any form back to its base letter and tier.
func Lookup(r rune) (Form, error) {
	f, ok := tab.forms[r]
	if !ok {
		return Form{}, fmt.Errorf("%w: %q (%U)", ErrUnknownLetter, r, r)
	}

	return f, nil
}

// IsLetter reports whether r is a form of some letter of the alphabet.
func IsLetter(r rune) bool {
	_, ok := tab.forms[r]
	return ok
}

// Base returns the letter whose lowercase unmarked form is r.
func Base(r rune) (*Letter, error) {
	l, ok := tab.byBase[r]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a base letter", ErrUnknownLetter, r)
	}

	return l, nil
}

// LetterOf returns the letter any form r belongs to.
func LetterOf(r rune) (*Letter, error) {
	f, err := Lookup(r)
	if err != nil {
		return nil, err
	}

	return tab.byBase[f.Base], nil
}

// Letters returns the alphabet in alphabetical order.
func Letters() []*Letter {
	return slices.Clone(tab.letters)
}

// WordRunes returns every form of every letter, both cases, sorted.
func WordRunes() []rune {
	return slices.Clone(tab.word)
}

// Span walks the alphabet from the letter of lo to the letter of hi and
// collects the forms each letter has in their shared tier and case.
//
// Endpoints in different tiers or cases yield ErrTierMismatch; a span that
// runs backwards yields ErrInvalidRange.
func Span(lo, hi Form) ([]rune, error) {
	if lo.Tier != hi.Tier || lo.Upper != hi.Upper {
		return nil, fmt.Errorf("%w: %c is %s, %c is %s",
			ErrTierMismatch, lo.Rune, describe(lo), hi.Rune, describe(hi))
	}

	from, to := tab.byBase[lo.Base], tab.byBase[hi.Base]
	if from == nil || to == nil {
		return nil, fmt.Errorf("%w: %c-%c", ErrUnknownLetter, lo.Rune, hi.Rune)
	}
	if from.ordinal > to.ordinal {
		return nil, fmt.Errorf("%w: %c-%c runs backwards", ErrInvalidRange, lo.Rune, hi.Rune)
	}

	key := tierCase{lo.Tier, lo.Upper}
	var out []rune
	for _, l := range tab.letters[from.ordinal-1 : to.ordinal] {
		out = append(out, l.forms[key]...)
	}

	return out, nil
}

// Variants returns every form of r's letter in r's case, across all tiers.
func Variants(r rune) ([]rune, error) {
	f, err := Lookup(r)
	if err != nil {
		return nil, err
	}

	return tab.byBase[f.Base].All(f.Upper), nil
}

// CaseVariants returns the other forms that simple case folding equates with
// r within its tier: ά gives Ά, σ gives Σ and ς. Only forms of the alphabet
// are returned, so ι never yields the prosgegrammeni.
func CaseVariants(r rune) ([]rune, error) {
	f, err := Lookup(r)
	if err != nil {
		return nil, err
	}

	var out []rune
	for c := unicode.SimpleFold(r); c != r; c = unicode.SimpleFold(c) {
		g, ok := tab.forms[c]
		if !ok || g.Base != f.Base || g.Tier != f.Tier {
			continue
		}
		out = append(out, c)
	}
	slices.Sort(out)

	return out, nil
}

func describe(f Form) string {
	if f.Upper {
		return "upper " + f.Tier.String()
	}

	return f.Tier.String()
}

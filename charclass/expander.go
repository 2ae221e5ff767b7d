package charclass

import (
	"errors"
	"fmt"
	"slices"
	"unicode"

	"go.dw1.io/gregex/greek"
)

// ErrInvalidRange is greek.ErrInvalidRange, re-exported for callers of Expand.
var ErrInvalidRange = greek.ErrInvalidRange

// ItemKind tags an [Item].
type ItemKind uint8

const (
	// Word is the \w shorthand, redefined as "any Greek letter".
	Word ItemKind = iota

	// Literal is a single character.
	Literal

	// Range is lo-hi inside a bracketed class.
	Range

	// Verbatim is class syntax that is never expanded (\d, \s, [:alpha:]).
	Verbatim
)

// Item is one character-bearing unit handed to the expander. Text is the
// item's source text, used whenever the item passes through unchanged.
type Item struct {
	Kind   ItemKind
	Lo, Hi rune
	Text   string
}

// WordItem returns the \w item.
func WordItem() Item { return Item{Kind: Word, Text: `\w`} }

// LiteralItem returns a single-character item.
func LiteralItem(r rune, text string) Item {
	return Item{Kind: Literal, Lo: r, Hi: r, Text: text}
}

// RangeItem returns a lo-hi item.
func RangeItem(lo, hi rune, text string) Item {
	return Item{Kind: Range, Lo: lo, Hi: hi, Text: text}
}

// VerbatimItem returns an item that is never expanded.
func VerbatimItem(text string) Item { return Item{Kind: Verbatim, Text: text} }

var wordSet = newSet(greek.WordRunes(), nil)

// Expander applies the expansion rules for one Mode. It holds no other state
// and may be shared.
type Expander struct {
	mode Mode
}

// NewExpander returns an expander for mode.
func NewExpander(mode Mode) *Expander {
	return &Expander{mode: mode}
}

// Mode returns the mode the expander was built for.
func (e *Expander) Mode() Mode { return e.mode }

// Expand returns the set of code points it must match.
//
//   - Word expands to every form of every Greek letter.
//   - A range whose endpoints are letters of the same tier and case walks
//     the alphabet in that tier; a backwards walk is ErrInvalidRange. Other
//     ranges pass through.
//   - Each Greek member is then widened per letter: all diacritic variants
//     under DiacriticInsensitive, the same-tier other-case forms under
//     CaseInsensitive, every form of the letter under both.
//   - Under CaseInsensitive a non-Greek letter gains its simple case folds
//     and an ASCII letter range gains its other-case range.
func (e *Expander) Expand(it Item) (Set, error) {
	switch it.Kind {
	case Word:
		return wordSet, nil
	case Literal:
		return e.literal(it)
	case Range:
		return e.span(it)
	case Verbatim:
		return Set{verbatim: []string{it.Text}}, nil
	}

	return Set{}, fmt.Errorf("charclass: unknown item kind %d", it.Kind)
}

func (e *Expander) literal(it Item) (Set, error) {
	if greek.IsLetter(it.Lo) {
		return e.widen([]rune{it.Lo})
	}

	if e.mode.Has(CaseInsensitive) {
		if orbit := foldOrbit(it.Lo); len(orbit) > 1 {
			return newSet(orbit, nil), nil
		}
	}

	return Set{verbatim: []string{it.Text}}, nil
}

func (e *Expander) span(it Item) (Set, error) {
	lo, errLo := greek.Lookup(it.Lo)
	hi, errHi := greek.Lookup(it.Hi)
	if errLo == nil && errHi == nil {
		runes, err := greek.Span(lo, hi)
		if err == nil {
			return e.widen(runes)
		}
		if !errors.Is(err, greek.ErrTierMismatch) {
			return Set{}, err
		}
	}

	verbatim := []string{it.Text}
	if e.mode.Has(CaseInsensitive) {
		if mirror, ok := mirrorASCII(it.Lo, it.Hi); ok {
			verbatim = append(verbatim, mirror)
		}
	}

	return Set{verbatim: verbatim}, nil
}

func (e *Expander) widen(members []rune) (Set, error) {
	out := make([]rune, 0, len(members))
	for _, r := range members {
		switch {
		case e.mode.Has(CaseInsensitive | DiacriticInsensitive):
			l, err := greek.LetterOf(r)
			if err != nil {
				return Set{}, err
			}
			out = append(out, l.All(false)...)
			out = append(out, l.All(true)...)
		case e.mode.Has(DiacriticInsensitive):
			v, err := greek.Variants(r)
			if err != nil {
				return Set{}, err
			}
			out = append(out, v...)
		case e.mode.Has(CaseInsensitive):
			v, err := greek.CaseVariants(r)
			if err != nil {
				return Set{}, err
			}
			out = append(out, r)
			out = append(out, v...)
		default:
			out = append(out, r)
		}
	}

	return newSet(out, nil), nil
}

func foldOrbit(r rune) []rune {
	if !unicode.IsLetter(r) {
		return nil
	}

	orbit := []rune{r}
	for c := unicode.SimpleFold(r); c != r; c = unicode.SimpleFold(c) {
		orbit = append(orbit, c)
	}
	slices.Sort(orbit)

	return orbit
}

func mirrorASCII(lo, hi rune) (string, bool) {
	const delta = 'a' - 'A'

	switch {
	case 'a' <= lo && hi <= 'z':
		return string(lo-delta) + "-" + string(hi-delta), true
	case 'A' <= lo && hi <= 'Z':
		return string(lo+delta) + "-" + string(hi+delta), true
	}

	return "", false
}

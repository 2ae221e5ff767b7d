package greek

import (
	"errors"
	"fmt"
	"slices"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrUnknownLetter indicates a code point outside the supported alphabet.
	ErrUnknownLetter = errors.New("unknown greek letter")

	// ErrInvalidRange indicates a Greek range whose start comes after its end
	// in alphabetical order.
	ErrInvalidRange = errors.New("invalid greek range")

	// ErrTierMismatch indicates range endpoints that are both Greek letters
	// but differ in tier or case. Such a range is not a Greek range at all.
	ErrTierMismatch = errors.New("greek range endpoints differ in tier or case")
)

// alphabet in alphabetical order; ordinals are 1-based indices.
var alphabet = []struct {
	r     rune
	vowel bool
}{
	{'α', true}, {'β', false}, {'γ', false}, {'δ', false},
	{'ε', true}, {'ζ', false}, {'η', true}, {'θ', false},
	{'ι', true}, {'κ', false}, {'λ', false}, {'μ', false},
	{'ν', false}, {'ξ', false}, {'ο', true}, {'π', false},
	{'ρ', false}, {'σ', false}, {'τ', false}, {'υ', true},
	{'φ', false}, {'χ', false}, {'ψ', false}, {'ω', true},
}

// blocks scanned for precomposed forms.
var blocks = []struct{ lo, hi rune }{
	{0x0370, 0x03FF},
	{0x1F00, 0x1FFF},
}

// prosgegrammeni decomposes to a bare iota; it is a mark, not a letter form.
const prosgegrammeni = '\u1FBE'

const finalSigma = 'ς'

// Form is one code point of the alphabet.
type Form struct {
	Rune  rune
	Base  rune
	Tier  Tier
	Upper bool
}

type tierCase struct {
	tier  Tier
	upper bool
}

// Letter is a base letter together with every form attached to it.
type Letter struct {
	base    rune
	ordinal int
	vowel   bool
	forms   map[tierCase][]rune
	tiers   []Tier
}

// Rune returns the lowercase unmarked base letter.
func (l *Letter) Rune() rune { return l.base }

// Ordinal returns the position in the alphabet, α being 1 and ω 24.
func (l *Letter) Ordinal() int { return l.ordinal }

// IsVowel reports whether the letter carries diacritic tiers.
func (l *Letter) IsVowel() bool { return l.vowel }

// Tiers returns the tiers the letter has forms in, in ascending order.
func (l *Letter) Tiers() []Tier { return slices.Clone(l.tiers) }

// Forms returns the forms of the letter in tier t, in the requested case.
// The result is nil when the letter has no such form (there is no
// circumflex ε, and no capital with a smooth breathing for υ).
func (l *Letter) Forms(t Tier, upper bool) []rune {
	return slices.Clone(l.forms[tierCase{t, upper}])
}

// All returns every form of the letter in the requested case, sorted.
func (l *Letter) All(upper bool) []rune {
	var out []rune
	for _, t := range l.tiers {
		out = append(out, l.forms[tierCase{t, upper}]...)
	}
	slices.Sort(out)
	return out
}

func (l *Letter) add(f Form) {
	key := tierCase{f.Tier, f.Upper}
	if _, ok := l.forms[key]; !ok && !slices.Contains(l.tiers, f.Tier) {
		l.tiers = append(l.tiers, f.Tier)
		slices.Sort(l.tiers)
	}
	l.forms[key] = append(l.forms[key], f.Rune)
}

type table struct {
	letters []*Letter
	byBase  map[rune]*Letter
	forms   map[rune]Form
	word    []rune
}

var tab = build()

func build() *table {
	t := &table{
		letters: make([]*Letter, 0, len(alphabet)),
		byBase:  make(map[rune]*Letter, len(alphabet)),
		forms:   make(map[rune]Form, 512),
	}

	for i, a := range alphabet {
		l := &Letter{
			base:    a.r,
			ordinal: i + 1,
			vowel:   a.vowel,
			forms:   make(map[tierCase][]rune),
		}
		t.letters = append(t.letters, l)
		t.byBase[a.r] = l
	}

	for _, b := range blocks {
		for r := b.lo; r <= b.hi; r++ {
			if f, ok := t.classify(r); ok {
				t.insert(f)
			}
		}
	}
	t.insert(Form{Rune: finalSigma, Base: 'σ', Tier: Consonantal})

	t.word = make([]rune, 0, len(t.forms))
	for r := range t.forms {
		t.word = append(t.word, r)
	}
	slices.Sort(t.word)

	return t
}

// classify decomposes r and, when it is a base letter followed only by known
// marks, returns the form it represents.
func (t *table) classify(r rune) (Form, bool) {
	if r == prosgegrammeni || !unicode.IsLetter(r) {
		return Form{}, false
	}

	d := []rune(norm.NFD.String(string(r)))
	head := d[0]
	l, ok := t.byBase[unicode.ToLower(head)]
	if !ok {
		return Form{}, false
	}
	if head != l.base && head != unicode.ToUpper(l.base) {
		return Form{}, false // symbol variants such as ϴ
	}

	var tier Tier
	for _, m := range d[1:] {
		bit, ok := marks[m]
		if !ok {
			return Form{}, false
		}
		tier |= bit
	}
	if !l.vowel {
		tier = Consonantal
	}

	return Form{Rune: r, Base: l.base, Tier: tier, Upper: unicode.IsUpper(head)}, true
}

func (t *table) insert(f Form) {
	if prev, dup := t.forms[f.Rune]; dup {
		panic(fmt.Sprintf("greek: %U attached twice (%c and %c)", f.Rune, prev.Base, f.Base))
	}
	t.forms[f.Rune] = f
	t.byBase[f.Base].add(f)
}

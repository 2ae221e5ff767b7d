package charclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.dw1.io/gregex/greek"
)

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"":   0,
		"i":  CaseInsensitive,
		"c":  DiacriticInsensitive,
		"ic": CaseInsensitive | DiacriticInsensitive,
		"ci": CaseInsensitive | DiacriticInsensitive,
		"ii": CaseInsensitive,
	}

	for in, want := range cases {
		got, err := ParseMode(in)
		require.NoError(t, err, "ParseMode(%q)", in)
		assert.Equal(t, want, got, "ParseMode(%q)", in)
	}

	for _, bad := range []string{"x", "im", "I", " c"} {
		_, err := ParseMode(bad)
		assert.ErrorIs(t, err, ErrUnsupportedOption, "ParseMode(%q)", bad)
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "", Mode(0).String())
	assert.Equal(t, "i", CaseInsensitive.String())
	assert.Equal(t, "ci", (CaseInsensitive | DiacriticInsensitive).String())
	assert.True(t, (CaseInsensitive | DiacriticInsensitive).Has(DiacriticInsensitive))
	assert.False(t, CaseInsensitive.Has(DiacriticInsensitive))
}

func expand(t *testing.T, mode Mode, it Item) Set {
	t.Helper()

	s, err := NewExpander(mode).Expand(it)
	require.NoError(t, err)
	return s
}

func TestExpandWord(t *testing.T) {
	s := expand(t, 0, WordItem())
	assert.Equal(t, greek.WordRunes(), s.Runes())
	assert.Empty(t, s.Verbatim())

	for _, r := range "αΩᾀἈῥςΣ" {
		assert.True(t, s.Contains(r), "%c", r)
	}
	assert.False(t, s.Contains('a'))
	assert.False(t, s.Contains('_'))
	assert.False(t, s.Contains('1'))
}

func TestExpandLiteral(t *testing.T) {
	plain := expand(t, 0, LiteralItem('α', "α"))
	assert.Equal(t, []rune("α"), plain.Runes())

	upper := expand(t, CaseInsensitive, LiteralItem('α', "α"))
	assert.Equal(t, []rune("Αα"), upper.Runes())

	sigma := expand(t, CaseInsensitive, LiteralItem('Σ', "Σ"))
	assert.Equal(t, []rune("Σςσ"), sigma.Runes())

	latin := expand(t, CaseInsensitive, LiteralItem('a', "a"))
	assert.Equal(t, []rune("Aa"), latin.Runes())

	dot := expand(t, CaseInsensitive, LiteralItem(',', ","))
	assert.Zero(t, dot.Len())
	assert.Equal(t, []string{","}, dot.Verbatim())

	untouched := expand(t, 0, LiteralItem('a', "a"))
	assert.Equal(t, []string{"a"}, untouched.Verbatim())
}

func TestExpandDiacriticInsensitive(t *testing.T) {
	cases := map[rune]string{
		'α': "άὰἀἁᾶἄἂἃἅἆᾳ",
		'ε': "ἒ",
		'η': "ῇ",
		'ι': "ί",
		'ο': "ὸ",
		'υ': "ὖ",
		'ω': "ᾦ",
	}

	for base, variants := range cases {
		s := expand(t, DiacriticInsensitive, LiteralItem(base, string(base)))
		assert.True(t, s.Contains(base))
		for _, v := range variants {
			assert.True(t, s.Contains(v), "%c should cover %c", base, v)
		}
		assert.False(t, s.Contains('β'))
	}

	alpha := expand(t, DiacriticInsensitive, LiteralItem('α', "α"))
	assert.False(t, alpha.Contains('ε'))
	assert.False(t, alpha.Contains('Α'), "case is kept without i")

	accented := expand(t, DiacriticInsensitive, LiteralItem('ά', "ά"))
	assert.Equal(t, alpha.Runes(), accented.Runes(), "any variant folds to the whole letter")
}

func TestExpandClosure(t *testing.T) {
	s := expand(t, CaseInsensitive|DiacriticInsensitive, LiteralItem('ω', "ω"))

	l, err := greek.Base('ω')
	require.NoError(t, err)
	want := append(l.All(false), l.All(true)...)
	assert.ElementsMatch(t, want, s.Runes())
}

func TestExpandRange(t *testing.T) {
	vowels := expand(t, 0, RangeItem('α', 'ω', "α-ω"))
	assert.Equal(t, []rune("αεηιουω"), vowels.Runes())

	acute := expand(t, 0, RangeItem('ά', 'ώ', "ά-ώ"))
	for _, r := range "άέήίόύώ" {
		assert.True(t, acute.Contains(r))
	}
	for _, r := range "ὰὲὴὶὸὺὼᾶῆῖῦῶ" {
		assert.False(t, acute.Contains(r))
	}

	folded := expand(t, DiacriticInsensitive, RangeItem('α', 'ω', "α-ω"))
	assert.True(t, folded.Contains('ά'))
	assert.False(t, folded.Contains('β'))

	upper := expand(t, CaseInsensitive, RangeItem('α', 'ω', "α-ω"))
	assert.True(t, upper.Contains('Α'))
	assert.True(t, upper.Contains('Ω'))
}

func TestExpandRangePassThrough(t *testing.T) {
	digits := expand(t, 0, RangeItem('0', '9', "0-9"))
	assert.Zero(t, digits.Len())
	assert.Equal(t, []string{"0-9"}, digits.Verbatim())

	mixed := expand(t, 0, RangeItem('α', 'ώ', "α-ώ"))
	assert.Equal(t, []string{"α-ώ"}, mixed.Verbatim())

	latin := expand(t, CaseInsensitive, RangeItem('a', 'z', "a-z"))
	assert.Equal(t, []string{"a-z", "A-Z"}, latin.Verbatim())
}

func TestExpandInvalidRange(t *testing.T) {
	_, err := NewExpander(0).Expand(RangeItem('ω', 'α', "ω-α"))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExpandVerbatim(t *testing.T) {
	s := expand(t, CaseInsensitive|DiacriticInsensitive, VerbatimItem(`\d`))
	assert.Equal(t, []string{`\d`}, s.Verbatim())
}

func TestSetBody(t *testing.T) {
	assert.Equal(t, "α-γε", newSet([]rune("γαβε"), nil).Body())
	assert.Equal(t, "αβ0-9", newSet([]rune("βα"), []string{"0-9"}).Body())
	assert.Equal(t, `\-\]a`, newSet([]rune("a]-"), nil).Body())

	u := Union(newSet([]rune("β"), nil), newSet([]rune("α"), []string{`\d`}))
	assert.Equal(t, []rune("αβ"), u.Runes())
	assert.Equal(t, []string{`\d`}, u.Verbatim())
	assert.Equal(t, []Run{{'α', 'β'}}, u.Runs())
}

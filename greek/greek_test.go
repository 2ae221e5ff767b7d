package greek

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

var (
	plainVowels     = []rune("αειηουω")
	acuteVowels     = []rune("άέήίόύώ")
	graveVowels     = []rune("ὰὲὴὶὸὺὼ")
	circumflexVowel = []rune("ᾶῆῖῦῶ")
	consonants      = []rune("βγδζθκλμνξπρῥῤσςτφχψ")

	lowercase = strings.Join([]string{
		"αειηουω", "άέήίόύώ", "ὰὲὴὶὸὺὼ", "ᾶῆῖῦῶ", "ἂἒἲἢὂὒὢ",
		"ᾲᾳᾴᾷῂῃῄῇῲῳῴῷ", "ἀἐἠἰὀὐὠ", "ἄἔἴἤὄὔὤ", "ἆἶἦὖὦ", "ἁἑἡἱὁὑὡ",
		"ἇἷἧὗὧ", "ἃἣἓἳὃὓὣ", "ἅἥἕἵὅὕὥ",
		"ᾀᾁᾂᾃᾄᾅᾆᾇᾐᾑᾒᾓᾔᾕᾖᾗᾠᾡᾢᾣᾤᾥᾦᾧ",
		"βγδζθκλμνξπρῥῤσςτφχψ",
	}, "")

	capitals = strings.Join([]string{
		"ΑΕΗΙΟΥΩ",
		"ἈἉἊἋἌἍἎἏᾈᾉᾊᾋᾌᾍᾎᾏ",
		"ἘἙἚἛἜἝ",
		"ἨἩἪἫἬἭἮἯᾘᾙᾚᾛᾜᾝᾞᾟ",
		"ἸἹἺἻἼἽἾἿ",
		"ὈὉὊὋὌὍ",
		"ὙὛὝὟ",
		"ὨὩὪὫὬὭὮὯᾨᾩᾪᾫᾬᾭᾮᾯ",
	}, "")
)

func TestAlphabetOrder(t *testing.T) {
	letters := Letters()
	require.Len(t, letters, 24)

	assert.Equal(t, 'α', letters[0].Rune())
	assert.Equal(t, 'ω', letters[23].Rune())
	for i, l := range letters {
		assert.Equal(t, i+1, l.Ordinal(), "ordinal of %c", l.Rune())
	}

	vowels := 0
	for _, l := range letters {
		if l.IsVowel() {
			vowels++
		}
	}
	assert.Equal(t, 7, vowels)
}

func TestEveryLetterResolves(t *testing.T) {
	for _, r := range lowercase + capitals {
		f, err := Lookup(r)
		require.NoError(t, err, "lookup %c", r)
		assert.Equal(t, strings.ContainsRune(capitals, r), f.Upper, "case of %c", r)
		assert.True(t, IsLetter(r))
	}
}

func TestFormsAreDisjoint(t *testing.T) {
	seen := make(map[rune]rune)
	for _, l := range Letters() {
		for _, upper := range []bool{false, true} {
			for _, r := range l.All(upper) {
				prev, dup := seen[r]
				require.False(t, dup, "%c claimed by %c and %c", r, prev, l.Rune())
				seen[r] = l.Rune()
			}
		}
	}

	assert.Len(t, seen, len(WordRunes()))
}

func TestFormsAgreeWithDecomposition(t *testing.T) {
	for _, r := range WordRunes() {
		if r == finalSigma {
			continue
		}

		f, err := Lookup(r)
		require.NoError(t, err)

		head := []rune(norm.NFD.String(string(r)))[0]
		l, err := LetterOf(r)
		require.NoError(t, err)
		assert.Equal(t, f.Base, l.Rune())
		if f.Upper {
			assert.NotEqual(t, l.Rune(), head, "%c decomposes to lowercase", r)
		} else {
			assert.Equal(t, l.Rune(), head, "%c decomposes to %c", r, head)
		}
	}
}

func TestTiers(t *testing.T) {
	cases := []struct {
		r    rune
		tier Tier
		name string
	}{
		{'α', Plain, "plain"},
		{'\u03AC', Acute, "acute"},
		{'\u1F71', Acute, "acute"},
		{'ὰ', Grave, "grave"},
		{'ᾶ', Circumflex, "circumflex"},
		{'ἄ', Smooth | Acute, "smooth+acute"},
		{'ᾅ', Rough | Acute | IotaSubscript, "rough+acute+iota"},
		{'ΐ', Diaeresis | Acute, "diaeresis+acute"},
		{'ῥ', Consonantal, "consonantal"},
		{'ς', Consonantal, "consonantal"},
	}

	for _, tc := range cases {
		t.Run(string(tc.r), func(t *testing.T) {
			f, err := Lookup(tc.r)
			require.NoError(t, err)
			assert.Equal(t, tc.tier, f.Tier)
			assert.Equal(t, tc.name, f.Tier.String())
		})
	}
}

func TestUnknownLetter(t *testing.T) {
	for _, r := range []rune{'a', '1', 'ϴ', '\u1FBE', '\u0345', 'ϐ'} {
		_, err := Lookup(r)
		assert.ErrorIs(t, err, ErrUnknownLetter, "%U", r)
	}

	_, err := Base('ά')
	assert.ErrorIs(t, err, ErrUnknownLetter)

	l, err := Base('ω')
	require.NoError(t, err)
	assert.Equal(t, 24, l.Ordinal())
}

func span(t *testing.T, lo, hi rune) []rune {
	t.Helper()

	from, err := Lookup(lo)
	require.NoError(t, err)
	to, err := Lookup(hi)
	require.NoError(t, err)

	runes, err := Span(from, to)
	require.NoError(t, err)
	return runes
}

func TestSpanPlainVowels(t *testing.T) {
	got := span(t, 'α', 'ω')
	assert.ElementsMatch(t, plainVowels, got)
	for _, c := range consonants {
		assert.NotContains(t, got, c)
	}
}

func TestSpanStaysInTier(t *testing.T) {
	acute := span(t, 'ά', 'ώ')
	for _, r := range acuteVowels {
		assert.Contains(t, acute, r)
	}
	for _, r := range append(append([]rune{}, graveVowels...), circumflexVowel...) {
		assert.NotContains(t, acute, r)
	}

	assert.ElementsMatch(t, graveVowels, span(t, 'ὰ', 'ὼ'))
	assert.ElementsMatch(t, circumflexVowel, span(t, 'ᾶ', 'ῶ'))
}

func TestSpanConsonants(t *testing.T) {
	assert.ElementsMatch(t, consonants, span(t, 'β', 'ψ'))
	assert.Equal(t, []rune("ηι"), span(t, 'η', 'ι'))
}

func TestSpanErrors(t *testing.T) {
	omega, _ := Lookup('ω')
	alpha, _ := Lookup('α')
	_, err := Span(omega, alpha)
	assert.ErrorIs(t, err, ErrInvalidRange)

	acute, _ := Lookup('ά')
	_, err = Span(alpha, acute)
	assert.ErrorIs(t, err, ErrTierMismatch)

	upper, _ := Lookup('Ω')
	_, err = Span(alpha, upper)
	assert.ErrorIs(t, err, ErrTierMismatch)
}

func TestCaseVariants(t *testing.T) {
	cases := map[rune][]rune{
		'α': []rune("Α"),
		'\u03AC': []rune("\u0386"),
		'\u1F71': []rune("\u1FBB"),
		'ᾳ': []rune("ᾼ"),
		'σ': []rune("Σς"),
		'ς': []rune("Σσ"),
		'Σ': []rune("ςσ"),
		'ι': []rune("Ι"),
		'ὐ': nil,
	}

	for r, want := range cases {
		got, err := CaseVariants(r)
		require.NoError(t, err)
		assert.Equal(t, want, got, "case variants of %c", r)
	}
}

func TestVariants(t *testing.T) {
	got, err := Variants('α')
	require.NoError(t, err)
	for _, r := range []rune("άὰἀἁᾶἄἂἃἅἆᾳ") {
		assert.Contains(t, got, r)
	}
	assert.NotContains(t, got, 'Α')
	assert.NotContains(t, got, 'ε')

	upper, err := Variants('Ω')
	require.NoError(t, err)
	assert.Contains(t, upper, 'ᾯ')
	assert.NotContains(t, upper, 'ω')
}

func TestWordRunesCoverAlphabet(t *testing.T) {
	word := WordRunes()
	for _, r := range lowercase + capitals {
		assert.Contains(t, word, r)
	}
	assert.NotContains(t, word, 'a')
}

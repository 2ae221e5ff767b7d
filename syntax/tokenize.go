package syntax

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"go.dw1.io/gregex/greek"
	"go.dw1.io/safemath"
)

type tokenizer struct {
	src   string
	pos   int
	atoms []Atom
}

// Tokenize splits pattern into atoms.
//
// It fails with an [*Error] wrapping ErrMalformedPattern on an unterminated
// character class or group prefix, a trailing backslash, repeat bounds that
// are out of order or overflow, and a descending range that is not a Greek
// range. Greek ranges (both endpoints letters of the same tier and case) are
// left for the class expander to validate in alphabetical order.
func Tokenize(pattern string) ([]Atom, error) {
	t := &tokenizer{
		src:   pattern,
		atoms: make([]Atom, 0, len(pattern)),
	}

	for t.pos < len(t.src) {
		if err := t.next(); err != nil {
			return nil, err
		}
	}

	return t.atoms, nil
}

func (t *tokenizer) emit(kind Kind, end int) *Atom {
	t.atoms = append(t.atoms, Atom{Kind: kind, Text: t.src[t.pos:end], Offset: t.pos})
	t.pos = end

	return &t.atoms[len(t.atoms)-1]
}

func (t *tokenizer) fail(start, end int, reason string) error {
	return &Error{Offset: start, Text: t.src[start:end], Reason: reason}
}

func (t *tokenizer) literal(c rune, size int) {
	t.emit(Literal, t.pos+size).Rune = c
}

func (t *tokenizer) next() error {
	c, size := utf8.DecodeRuneInString(t.src[t.pos:])

	switch c {
	case '\\':
		return t.escape(false)
	case '[':
		return t.class()
	case '(':
		return t.group()
	case ')', '|':
		t.emit(GroupBoundary, t.pos+1)
	case '*':
		t.quantifier(t.pos+1, 0, Unbounded)
	case '+':
		t.quantifier(t.pos+1, 1, Unbounded)
	case '?':
		t.quantifier(t.pos+1, 0, 1)
	case '{':
		ok, err := t.counted()
		if err != nil {
			return err
		}
		if !ok {
			t.literal(c, size)
		}
	case '^', '$', '.':
		t.emit(Other, t.pos+1)
	default:
		t.literal(c, size)
	}

	return nil
}

func (t *tokenizer) quantifier(end, min, max int) {
	if end < len(t.src) && (t.src[end] == '?' || t.src[end] == '+') {
		end++ // lazy or possessive
	}

	a := t.emit(Quantifier, end)
	a.Min, a.Max = min, max
}

// counted handles {m}, {m,} and {m,n}. Anything else starting with '{' is a
// literal brace, as in RE2.
func (t *tokenizer) counted() (bool, error) {
	rest := t.src[t.pos+1:]
	closing := strings.IndexByte(rest, '}')
	if closing < 0 {
		return false, nil
	}

	lo, hi, comma := strings.Cut(rest[:closing], ",")
	if !isDigits(lo) || (hi != "" && !isDigits(hi)) {
		return false, nil
	}

	end := t.pos + 1 + closing + 1
	min, err := bound(lo)
	if err != nil {
		return false, t.fail(t.pos, end, "invalid repeat count")
	}

	max := min
	if comma {
		max = Unbounded
		if hi != "" {
			if max, err = bound(hi); err != nil {
				return false, t.fail(t.pos, end, "invalid repeat count")
			}
		}
	}
	if max != Unbounded && min > max {
		return false, t.fail(t.pos, end, "repeat bounds out of order")
	}

	t.quantifier(end, min, max)
	return true, nil
}

func bound(digits string) (int, error) {
	u, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, err
	}

	return safemath.ConvertAny[int](u)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

func (t *tokenizer) escape(inClass bool) error {
	start := t.pos
	if start+1 >= len(t.src) {
		return t.fail(start, len(t.src), "trailing backslash")
	}

	c, size := utf8.DecodeRuneInString(t.src[start+1:])
	end := start + 1 + size
	kind := Escape

	switch c {
	case 'w':
		kind = ShorthandWord
	case 'W':
		kind = ShorthandNonWord
	case 's':
		kind = ShorthandSpace
	case 'S':
		kind = ShorthandNonSpace
	case 'd', 'D':
		kind = ShorthandDigit
	case 'b', 'B':
		if !inClass {
			kind = WordBoundary
		}
	case 'p', 'P', 'x':
		switch {
		case end < len(t.src) && t.src[end] == '{':
			j := strings.IndexByte(t.src[end:], '}')
			if j < 0 {
				return t.fail(start, len(t.src), "missing closing }")
			}
			end += j + 1
		case c == 'x':
			for n := 0; n < 2 && end < len(t.src) && isHex(t.src[end]); n++ {
				end++
			}
		case end < len(t.src):
			_, n := utf8.DecodeRuneInString(t.src[end:])
			end += n
		}
	case 'Q':
		if j := strings.Index(t.src[end:], `\E`); j >= 0 {
			end += j + 2
		} else {
			end = len(t.src)
		}
	}

	a := t.emit(kind, end)
	if kind == Escape && end == start+1+size {
		a.Rune = c
	}

	return nil
}

func isHex(b byte) bool {
	return '0' <= b && b <= '9' || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}

func (t *tokenizer) class() error {
	open := t.pos
	end := open + 1
	negated := end < len(t.src) && t.src[end] == '^'
	if negated {
		end++
	}
	t.emit(ClassOpen, end).Negated = negated

	first := len(t.atoms)
	for {
		if t.pos >= len(t.src) {
			return t.fail(open, len(t.src), "missing closing ]")
		}

		c, size := utf8.DecodeRuneInString(t.src[t.pos:])
		switch {
		case c == ']' && len(t.atoms) > first:
			t.emit(ClassClose, t.pos+1)
			return t.checkRanges(first, len(t.atoms)-1)
		case c == '[' && t.posixClass() > 0:
			t.emit(Other, t.pos+t.posixClass())
		case c == '\\':
			if err := t.escape(true); err != nil {
				return err
			}
		case c == '-' && t.rangeable(first):
			t.emit(RangeDash, t.pos+1)
		default:
			t.literal(c, size)
		}
	}
}

// posixClass returns the length of a [:name:] or [:^name:] item at the
// current position, or 0.
func (t *tokenizer) posixClass() int {
	rest := t.src[t.pos:]
	if !strings.HasPrefix(rest, "[:") {
		return 0
	}

	i := 2
	if i < len(rest) && rest[i] == '^' {
		i++
	}
	for i < len(rest) && ('a' <= rest[i] && rest[i] <= 'z') {
		i++
	}
	if !strings.HasPrefix(rest[i:], ":]") {
		return 0
	}

	return i + 2
}

// rangeable reports whether a '-' at the current position joins the previous
// class member to the next one.
func (t *tokenizer) rangeable(first int) bool {
	next := t.pos + 1
	if next >= len(t.src) || t.src[next] == ']' {
		return false
	}

	n := len(t.atoms)
	if n <= first {
		return false
	}
	if prev := t.atoms[n-1].Kind; prev != Literal && prev != Escape {
		return false
	}

	return n-2 < first || t.atoms[n-2].Kind != RangeDash
}

func (t *tokenizer) checkRanges(first, closing int) error {
	for i := first + 1; i < closing-1; i++ {
		if t.atoms[i].Kind != RangeDash {
			continue
		}

		lo, hi := t.atoms[i-1], t.atoms[i+1]
		if lo.Kind != Literal || hi.Kind != Literal || lo.Rune <= hi.Rune {
			continue
		}
		if IsGreekRange(lo.Rune, hi.Rune) {
			continue
		}

		return t.fail(lo.Offset, hi.Offset+len(hi.Text), "invalid character class range")
	}

	return nil
}

// IsGreekRange reports whether lo-hi is resolved through the letter tables:
// both endpoints are Greek letters of the same tier and case.
func IsGreekRange(lo, hi rune) bool {
	from, err := greek.Lookup(lo)
	if err != nil {
		return false
	}
	to, err := greek.Lookup(hi)
	if err != nil {
		return false
	}

	return from.Tier == to.Tier && from.Upper == to.Upper
}

func (t *tokenizer) group() error {
	start := t.pos
	if !strings.HasPrefix(t.src[start:], "(?") {
		t.emit(GroupBoundary, start+1)
		return nil
	}

	i := start + 2
	rest := t.src[i:]
	var end int

	switch {
	case strings.HasPrefix(rest, "<=") || strings.HasPrefix(rest, "<!"):
		end = i + 2
	case strings.HasPrefix(rest, "P<") || strings.HasPrefix(rest, "<"):
		j := strings.IndexByte(rest, '>')
		if j < 0 {
			return t.fail(start, len(t.src), "missing > after group name")
		}
		end = i + j + 1
	case strings.HasPrefix(rest, "'"):
		j := strings.IndexByte(rest[1:], '\'')
		if j < 0 {
			return t.fail(start, len(t.src), "missing ' after group name")
		}
		end = i + j + 2
	case strings.HasPrefix(rest, "P=") || strings.HasPrefix(rest, "P>") ||
		strings.HasPrefix(rest, "&") || strings.HasPrefix(rest, "#"):
		j := strings.IndexByte(rest, ')')
		if j < 0 {
			return t.fail(start, len(t.src), "missing )")
		}
		end = i + j + 1
	case strings.HasPrefix(rest, "("):
		end = i // conditional; the condition is an ordinary group
	case rest != "" && strings.IndexByte("=!>|", rest[0]) >= 0:
		end = i + 1
	default:
		j := i
		for j < len(t.src) && isFlag(t.src[j]) {
			j++
		}
		if j == len(t.src) || (t.src[j] != ':' && t.src[j] != ')') {
			return t.fail(start, min(j+1, len(t.src)), "invalid group flags")
		}
		end = j + 1
	}

	t.emit(GroupBoundary, end)
	return nil
}

func isFlag(b byte) bool {
	return b == '-' || b == '+' ||
		'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9'
}

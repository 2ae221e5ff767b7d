package charclass

import (
	"slices"
	"strings"
)

// Set is the result of expanding one item: code points the item must match,
// plus fragments of class syntax that are passed through untouched because
// they are not Greek (such as a-z or \d).
type Set struct {
	runes    []rune
	verbatim []string
}

// Run is an inclusive range of consecutive code points.
type Run struct {
	Lo, Hi rune
}

func newSet(runes []rune, verbatim []string) Set {
	runes = slices.Clone(runes)
	slices.Sort(runes)

	return Set{runes: slices.Compact(runes), verbatim: verbatim}
}

// Union merges sets, keeping verbatim fragments in argument order.
func Union(sets ...Set) Set {
	var runes []rune
	var verbatim []string
	for _, s := range sets {
		runes = append(runes, s.runes...)
		verbatim = append(verbatim, s.verbatim...)
	}

	return newSet(runes, verbatim)
}

// Runes returns the expanded code points in ascending order.
func (s Set) Runes() []rune { return slices.Clone(s.runes) }

// Verbatim returns the pass-through fragments.
func (s Set) Verbatim() []string { return slices.Clone(s.verbatim) }

// Len returns the number of expanded code points.
func (s Set) Len() int { return len(s.runes) }

// Contains reports whether r is one of the expanded code points.
func (s Set) Contains(r rune) bool {
	_, ok := slices.BinarySearch(s.runes, r)
	return ok
}

// Runs groups the expanded code points into maximal consecutive runs.
func (s Set) Runs() []Run {
	var runs []Run
	for _, r := range s.runes {
		if n := len(runs); n > 0 && runs[n-1].Hi+1 == r {
			runs[n-1].Hi = r
			continue
		}
		runs = append(runs, Run{Lo: r, Hi: r})
	}

	return runs
}

// Body renders the set as the inside of a bracketed class: runs of three or
// more code points as lo-hi, shorter runs rune by rune, then the verbatim
// fragments.
func (s Set) Body() string {
	var b strings.Builder
	for _, run := range s.Runs() {
		switch {
		case run.Hi-run.Lo >= 2:
			writeClassRune(&b, run.Lo)
			b.WriteByte('-')
			writeClassRune(&b, run.Hi)
		default:
			for r := run.Lo; r <= run.Hi; r++ {
				writeClassRune(&b, r)
			}
		}
	}
	for _, v := range s.verbatim {
		b.WriteString(v)
	}

	return b.String()
}

func writeClassRune(b *strings.Builder, r rune) {
	if strings.ContainsRune(`\[]^-`, r) {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}

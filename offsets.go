package gregex

import "github.com/dlclark/regexp2"

// runeOffsets maps the rune indexes regexp2 reports onto byte offsets of s.
type runeOffsets []int

func newRuneOffsets(s string) runeOffsets {
	offs := make(runeOffsets, 0, len(s)+1)
	for i := range s {
		offs = append(offs, i)
	}

	return append(offs, len(s))
}

func (o runeOffsets) byteOffset(runeIndex int) int {
	switch {
	case runeIndex <= 0:
		return 0
	case runeIndex >= len(o):
		return o[len(o)-1]
	}

	return o[runeIndex]
}

// span returns the byte range of a regexp2 capture, or -1, -1 when it did
// not participate in the match.
func (o runeOffsets) span(index, length int) (int, int) {
	if index < 0 || length < 0 {
		return -1, -1
	}

	return o.byteOffset(index), o.byteOffset(index + length)
}

func (o runeOffsets) groups(s string, groups []regexp2.Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		if len(g.Captures) == 0 {
			continue
		}
		start, end := o.span(g.Index, g.Length)
		if start >= 0 {
			out[i] = s[start:end]
		}
	}

	return out
}

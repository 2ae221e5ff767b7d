// Package rewrite turns a regular expression into one that matches
// polytonic Greek text, by widening its character-level leaves and copying
// everything else through.
package rewrite

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"go.dw1.io/gregex/charclass"
	"go.dw1.io/gregex/syntax"
)

// tracer writes to trace with key 'gregex'.
func tracer() tracing.Trace {
	return tracing.Select("gregex")
}

// Pattern is a rewritten pattern.
type Pattern struct {
	// Expr is the rewritten expression, without Flags.
	Expr string

	// Flags are the letters of a leading inline flag group such as (?ms),
	// carried over verbatim for the host engine.
	Flags string
}

// String returns the full pattern for the host engine.
func (p Pattern) String() string {
	if p.Flags == "" {
		return p.Expr
	}

	return "(?" + p.Flags + ")" + p.Expr
}

var (
	wordClass    = "[" + mustExpand(charclass.WordItem()).Body() + "]"
	nonWordClass = "[^" + mustExpand(charclass.WordItem()).Body() + "]"
)

func mustExpand(it charclass.Item) charclass.Set {
	s, err := charclass.NewExpander(0).Expand(it)
	if err != nil {
		panic(err)
	}

	return s
}

// Rewrite tokenizes pattern and rewrites it for mode.
//
// Quantifiers, groups, alternation, anchors and escapes other than \w, \W,
// \b and \B are copied through in order, so the structure of the pattern
// and its capture groups are unchanged. A pattern without Greek letters or
// those shorthands rewrites to itself unless mode folds case.
//
// Errors from the tokenizer, the expander and the letter tables are returned
// as they are; there is no partial result.
func Rewrite(pattern string, mode charclass.Mode) (Pattern, error) {
	atoms, err := syntax.Tokenize(pattern)
	if err != nil {
		return Pattern{}, err
	}

	w := &writer{exp: charclass.NewExpander(mode)}
	var p Pattern
	if len(atoms) > 0 {
		if flags, ok := flagGroup(atoms[0]); ok {
			p.Flags = flags
			atoms = atoms[1:]
		}
	}

	if err := w.atoms(atoms); err != nil {
		return Pattern{}, err
	}
	p.Expr = w.buf.String()

	tracer().Debugf("rewrite %q mode=%q -> %q", pattern, mode.String(), p.String())
	return p, nil
}

// flagGroup recognises a standalone (?flags) group.
func flagGroup(a syntax.Atom) (string, bool) {
	if a.Kind != syntax.GroupBoundary || !strings.HasPrefix(a.Text, "(?") || !strings.HasSuffix(a.Text, ")") {
		return "", false
	}

	flags := a.Text[2 : len(a.Text)-1]
	if flags == "" {
		return "", false
	}
	for i := 0; i < len(flags); i++ {
		c := flags[i]
		if c != '-' && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return "", false
		}
	}

	return flags, true
}

type writer struct {
	exp *charclass.Expander
	buf strings.Builder
}

func (w *writer) atoms(atoms []syntax.Atom) error {
	for i := 0; i < len(atoms); i++ {
		a := atoms[i]

		switch a.Kind {
		case syntax.ClassOpen:
			end := closing(atoms, i)
			if err := w.class(atoms[i : end+1]); err != nil {
				return err
			}
			i = end
		case syntax.Literal:
			s, err := w.exp.Expand(charclass.LiteralItem(a.Rune, a.Text))
			if err != nil {
				return err
			}
			w.single(a, s)
		case syntax.ShorthandWord:
			w.buf.WriteString(wordClass)
		case syntax.ShorthandNonWord:
			w.buf.WriteString(nonWordClass)
		case syntax.WordBoundary:
			w.boundary(a.Text == `\B`)
		default:
			w.buf.WriteString(a.Text)
		}
	}

	return nil
}

// closing returns the index of the ClassClose matching the ClassOpen at i.
// The tokenizer guarantees it exists.
func closing(atoms []syntax.Atom, i int) int {
	for j := i + 1; j < len(atoms); j++ {
		if atoms[j].Kind == syntax.ClassClose {
			return j
		}
	}

	return len(atoms) - 1
}

// single writes a literal outside a class: its own text when it still
// stands for one character, a bracketed class otherwise.
func (w *writer) single(a syntax.Atom, s charclass.Set) {
	switch {
	case s.Len() == 0:
		w.buf.WriteString(a.Text)
	case s.Len() == 1 && s.Contains(a.Rune) && len(s.Verbatim()) == 0:
		w.buf.WriteString(a.Text)
	default:
		w.buf.WriteByte('[')
		w.buf.WriteString(s.Body())
		w.buf.WriteByte(']')
	}
}

// boundary writes \b or \B as lookaround over Greek letters, matching the
// meaning \w has after rewriting.
func (w *writer) boundary(negated bool) {
	if negated {
		w.buf.WriteString("(?:(?<=" + wordClass + ")(?=" + wordClass + ")|(?<!" + wordClass + ")(?!" + wordClass + "))")
		return
	}

	w.buf.WriteString("(?:(?<=" + wordClass + ")(?!" + wordClass + ")|(?<!" + wordClass + ")(?=" + wordClass + "))")
}

// class rewrites one bracketed class, atoms[0] being its ClassOpen and the
// last atom its ClassClose. Greek members are merged into a single run list
// written where the first of them stood; everything else keeps its text and
// order.
func (w *writer) class(atoms []syntax.Atom) error {
	open, inner := atoms[0], atoms[1:len(atoms)-1]

	var (
		pieces []string
		greek  []charclass.Set
		slot   = -1
	)

	for i := 0; i < len(inner); i++ {
		it, n := item(inner, i)
		s, err := w.exp.Expand(it)
		if err != nil {
			return err
		}
		i += n - 1

		if s.Len() == 0 {
			pieces = append(pieces, strings.Join(s.Verbatim(), ""))
			continue
		}
		if slot < 0 {
			slot = len(pieces)
			pieces = append(pieces, "")
		}
		greek = append(greek, s)
	}
	if slot >= 0 {
		pieces[slot] = charclass.Union(greek...).Body()
	}

	w.buf.WriteString(open.Text)
	for _, p := range pieces {
		w.buf.WriteString(p)
	}
	w.buf.WriteString(atoms[len(atoms)-1].Text)

	return nil
}

// item maps the class member starting at inner[i] to an expander item and
// reports how many atoms it spans.
func item(inner []syntax.Atom, i int) (charclass.Item, int) {
	a := inner[i]

	if i+2 < len(inner) && inner[i+1].Kind == syntax.RangeDash {
		lo, hi := a, inner[i+2]
		text := lo.Text + inner[i+1].Text + hi.Text
		if lo.Kind == syntax.Literal && hi.Kind == syntax.Literal {
			return charclass.RangeItem(lo.Rune, hi.Rune, text), 3
		}

		return charclass.VerbatimItem(text), 3
	}

	switch a.Kind {
	case syntax.Literal:
		return charclass.LiteralItem(a.Rune, a.Text), 1
	case syntax.ShorthandWord:
		return charclass.WordItem(), 1
	default:
		return charclass.VerbatimItem(a.Text), 1
	}
}

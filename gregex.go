package gregex

import (
	"fmt"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
	"github.com/npillmayer/schuko/tracing"

	"go.dw1.io/gregex/charclass"
	"go.dw1.io/gregex/rewrite"
)

// tracer writes to trace with key 'gregex'.
func tracer() tracing.Trace {
	return tracing.Select("gregex")
}

// Regexp is a compiled Greek-aware regular expression. It delegates matching
// to either coregex or regexp2, chosen when the pattern is compiled. A Regexp
// is safe for concurrent use.
type Regexp struct {
	pattern string
	expr    rewrite.Pattern
	mode    Mode
	engine  Engine
	core    *coregex.Regex
	back    *regexp2.Regexp
}

// Compile rewrites pattern for polytonic Greek and compiles the result.
//
// pattern is a string, a []byte or a fmt.Stringer such as a stdlib
// *regexp.Regexp. The optional options string combines 'i' (case-insensitive)
// and 'c' (diacritic-insensitive); passing more than one options string is
// ErrUnsupportedOption.
func Compile(pattern any, options ...string) (*Regexp, error) {
	cfg := DefaultConfig()
	switch len(options) {
	case 0:
	case 1:
		cfg.Mode = options[0]
	default:
		return nil, fmt.Errorf("%w: got %d option strings", ErrUnsupportedOption, len(options))
	}

	return CompileWithConfig(pattern, cfg)
}

// CompileWithConfig is like Compile with explicit configuration.
func CompileWithConfig(pattern any, cfg Config) (*Regexp, error) {
	src, err := patternSource(pattern)
	if err != nil {
		return nil, err
	}

	mode, err := charclass.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	expr, err := rewrite.Cached(src, mode)
	if err != nil {
		return nil, err
	}

	re := &Regexp{pattern: src, expr: expr, mode: mode, engine: cfg.Engine}
	if re.engine == EngineAuto {
		re.engine = EngineRE2
		if needsBacktracking(expr.String()) {
			re.engine = EngineBacktrack
		}
	}

	switch re.engine {
	case EngineRE2:
		re.core, err = coregex.Compile(expr.String())
	case EngineBacktrack:
		// RE2 keeps \d, \s and [[:name:]] ASCII, as on coregex.
		re.back, err = regexp2.Compile(expr.String(), regexp2.RE2)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownEngine, re.engine)
	}
	if err != nil {
		tracer().Errorf("compile %q on %v: %v", expr.String(), re.engine, err)
		return nil, err
	}

	return re, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern any, options ...string) *Regexp {
	re, err := Compile(pattern, options...)
	if err != nil {
		panic(err)
	}
	return re
}

// MatchString reports whether s contains any match of pattern.
func MatchString(pattern, s string, options ...string) (bool, error) {
	re, err := Compile(pattern, options...)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// QuoteMeta escapes all regular expression metacharacters in s. Greek
// letters are not metacharacters, so they are still widened by the options
// of the pattern they end up in.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// String returns the pattern as given to Compile.
func (r *Regexp) String() string {
	return r.pattern
}

// Rewritten returns the pattern handed to the engine.
func (r *Regexp) Rewritten() string {
	return r.expr.String()
}

// Flags returns the letters of the pattern's leading inline flag group, as
// in "ms" for (?ms). They are handed to the engine untouched.
func (r *Regexp) Flags() string {
	return r.expr.Flags
}

// Mode returns the options the pattern was rewritten with.
func (r *Regexp) Mode() Mode {
	return r.mode
}

// Engine returns the engine the pattern runs on; never EngineAuto.
func (r *Regexp) Engine() Engine {
	return r.engine
}

// Match reports whether b contains any match of the Regexp.
func (r *Regexp) Match(b []byte) bool {
	if r.core != nil {
		return r.core.Match(b)
	}

	return r.MatchString(string(b))
}

// MatchString reports whether s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.back.MatchString(s)
	return err == nil && matched
}

// FindString returns the leftmost match in s, or "".
func (r *Regexp) FindString(s string) string {
	if r.core != nil {
		return r.core.FindString(s)
	}

	m, err := r.back.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}

	return m.String()
}

// FindStringIndex returns the byte offsets of the leftmost match in s, or
// nil.
func (r *Regexp) FindStringIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringIndex(s)
	}

	m, err := r.back.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	start, end := newRuneOffsets(s).span(m.Index, m.Length)
	return []int{start, end}
}

// FindStringSubmatch returns the leftmost match in s and its submatches.
func (r *Regexp) FindStringSubmatch(s string) []string {
	if r.core != nil {
		return r.core.FindStringSubmatch(s)
	}

	m, err := r.back.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return newRuneOffsets(s).groups(s, m.Groups())
}

// FindAllString returns up to n successive matches in s; n < 0 means all.
func (r *Regexp) FindAllString(s string, n int) []string {
	if r.core != nil {
		return r.core.FindAllString(s, n)
	}

	var matches []string
	r.eachMatch(s, n, func(m *regexp2.Match) {
		matches = append(matches, m.String())
	})

	return matches
}

// FindAllStringIndex returns the byte offsets of up to n successive matches
// in s; n < 0 means all.
func (r *Regexp) FindAllStringIndex(s string, n int) [][]int {
	if r.core != nil {
		return r.core.FindAllStringIndex(s, n)
	}

	var (
		offs    = newRuneOffsets(s)
		matches [][]int
	)
	r.eachMatch(s, n, func(m *regexp2.Match) {
		start, end := offs.span(m.Index, m.Length)
		matches = append(matches, []int{start, end})
	})

	return matches
}

func (r *Regexp) eachMatch(s string, n int, fn func(*regexp2.Match)) {
	count := 0
	m, err := r.back.FindStringMatch(s)
	for err == nil && m != nil {
		if n >= 0 && count >= n {
			return
		}
		fn(m)
		count++
		m, err = r.back.FindNextMatch(m)
	}
}

// ReplaceAllString returns a copy of src with every match replaced by repl.
// $1 and ${name} in repl refer to submatches.
func (r *Regexp) ReplaceAllString(src, repl string) string {
	if r.core != nil {
		return r.core.ReplaceAllString(src, repl)
	}

	replaced, err := r.back.Replace(src, repl, -1, -1)
	if err != nil {
		tracer().Errorf("replace with %q: %v", r.expr.String(), err)
		return src
	}

	return replaced
}

// Split slices s into the substrings between matches, as regexp.Split does.
func (r *Regexp) Split(s string, n int) []string {
	if r.core != nil {
		return r.core.Split(s, n)
	}

	if n == 0 {
		return nil
	}
	if r.expr.Expr != "" && s == "" {
		return []string{""}
	}

	var (
		parts    []string
		beg, end int
	)
	for _, m := range r.FindAllStringIndex(s, -1) {
		if n > 0 && len(parts) == n-1 {
			break
		}

		end = m[0]
		// An empty match at the start does not split.
		if m[1] != 0 {
			parts = append(parts, s[beg:end])
		}
		beg = m[1]
	}
	if end != len(s) {
		parts = append(parts, s[beg:])
	}

	return parts
}

// NumSubexp returns the number of parenthesized subexpressions.
func (r *Regexp) NumSubexp() int {
	if r.core != nil {
		return r.core.NumSubexp()
	}

	return len(r.SubexpNames()) - 1
}

// SubexpNames returns the names of the parenthesized subexpressions; the
// name of the first one is names[1]. regexp2 reports unnamed groups by
// number.
func (r *Regexp) SubexpNames() []string {
	if r.core != nil {
		return r.core.SubexpNames()
	}

	top := 0
	for _, v := range r.back.GetGroupNumbers() {
		top = max(top, v)
	}

	names := make([]string, top+1)
	for i := 1; i <= top; i++ {
		names[i] = r.back.GroupNameFromNumber(i)
	}

	return names
}

// Longest makes future searches leftmost-longest on coregex. regexp2 is
// leftmost-first only, so it is a no-op there.
func (r *Regexp) Longest() {
	if r.core != nil {
		r.core.Longest()
	}
}

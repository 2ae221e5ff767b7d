package gregex

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.dw1.io/gregex/syntax"
)

// Engine names the regex engine a pattern runs on.
type Engine uint8

const (
	// EngineAuto picks EngineRE2 unless the rewritten pattern needs
	// backtracking.
	EngineAuto Engine = iota

	// EngineRE2 is coregex.
	EngineRE2

	// EngineBacktrack is regexp2.
	EngineBacktrack
)

var engineNames = [...]string{
	EngineAuto:      "auto",
	EngineRE2:       "re2",
	EngineBacktrack: "backtrack",
}

func (e Engine) String() string {
	if int(e) < len(engineNames) {
		return engineNames[e]
	}

	return fmt.Sprintf("Engine(%d)", e)
}

// ParseEngine parses an engine name as printed by [Engine.String].
func ParseEngine(name string) (Engine, error) {
	for e, n := range engineNames {
		if strings.EqualFold(n, name) {
			return Engine(e), nil
		}
	}

	return EngineAuto, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// Group prefixes RE2 cannot run.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var backtrackGroups = []string{
	"(?=", "(?!", "(?<=", "(?<!", // lookaround
	"(?>", // atomic group
	"(?|", // branch reset
	"(?#", // comment
	"(?(", // conditional
	"(?'", // .NET-style named group
	"(?P=", "(?P>", "(?&", "(?R)", // backreference, subroutine call
}

// Escapes RE2 rejects or reads differently.
var backtrackEscapes = map[byte]bool{
	'C': true, 'h': true, 'H': true, 'V': true, 'R': true, 'X': true,
	'N': true, 'K': true, 'e': true, 'o': true, 'g': true, 'k': true,
	'Z': true, 'G': true,
}

// needsBacktracking reports whether expr uses constructs only regexp2 can
// execute. It walks the atoms of expr, so brackets and escapes inside a
// character class are never mistaken for group syntax.
//
// Character classes with non-ASCII members go to regexp2 as well: coregex
// v0.10.2 mismatches them, e.g. [^αεηιουω] fails on β and \w{2} finds a
// single letter.
func needsBacktracking(expr string) bool {
	atoms, err := syntax.Tokenize(expr)
	if err != nil {
		// Let the RE2 engine report it.
		return false
	}

	inClass := false
	for i, a := range atoms {
		if inClass && a.Rune >= utf8.RuneSelf {
			return true
		}

		switch a.Kind {
		case syntax.ClassOpen:
			inClass = true
		case syntax.ClassClose:
			inClass = false
		case syntax.GroupBoundary:
			if isBacktrackGroup(a.Text) {
				return true
			}
			// Backtracking control verbs such as (*FAIL).
			if a.Text == "(" && i+1 < len(atoms) && strings.HasPrefix(atoms[i+1].Text, "*") {
				return true
			}
		case syntax.Escape:
			if len(a.Text) < 2 {
				continue
			}
			c := a.Text[1]
			if '1' <= c && c <= '9' || backtrackEscapes[c] {
				return true
			}
		}
	}

	return false
}

func isBacktrackGroup(text string) bool {
	for _, prefix := range backtrackGroups {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}

	// RE2 only knows the (?P<name>...) spelling.
	return strings.HasPrefix(text, "(?<") && !strings.HasPrefix(text, "(?P<")
}

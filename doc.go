// Package gregex compiles regular expressions that match polytonic Greek.
//
// A pattern is rewritten before it reaches the regex engine: \w and \W mean
// "Greek letter" and "anything else", a range such as [α-ω] walks the Greek
// alphabet instead of raw code points, and two options widen every Greek
// letter in the pattern:
//
//   - "i" adds the other-case form in the same diacritic tier, so ά also
//     matches Ά but not Α;
//   - "c" adds every diacritic variant of the letter, so ε also matches ἐ,
//     ἕ and ὲ.
//
// Both may be combined. Everything else in the pattern is passed through
// unchanged, and a pattern without Greek in it compiles exactly as it would
// natively.
//
// The rewritten pattern runs on coregex (an accelerated RE2-compatible
// engine). Patterns that need lookaround, backreferences or other
// backtracking-only features, including the rewritten \b and \B, run on
// [regexp2] instead, as do patterns whose character classes hold non-ASCII
// letters.
package gregex

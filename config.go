package gregex

import "go.dw1.io/gregex/charclass"

// Mode is the set of matching modes applied while rewriting.
type Mode = charclass.Mode

// Option characters 'i' and 'c'.
const (
	CaseInsensitive      = charclass.CaseInsensitive
	DiacriticInsensitive = charclass.DiacriticInsensitive
)

// Config controls how a pattern is compiled.
type Config struct {
	// Mode is an option string made of 'i' and 'c'.
	Mode string

	// Engine forces a regex engine. EngineAuto picks one per pattern.
	Engine Engine
}

// DefaultConfig returns the configuration used by [Compile] when no options
// are given.
func DefaultConfig() Config {
	return Config{Engine: EngineAuto}
}

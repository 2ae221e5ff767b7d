package gregex

import (
	"fmt"

	"github.com/spf13/cast"
)

// patternSource returns the pattern text of v, which may be a string, a
// []byte or any fmt.Stringer (a stdlib *regexp.Regexp included).
func patternSource(v any) (string, error) {
	switch v.(type) {
	case string, []byte, fmt.Stringer:
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedPattern, v)
	}

	src, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedPattern, err)
	}

	return src, nil
}

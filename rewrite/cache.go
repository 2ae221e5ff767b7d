package rewrite

import (
	"go.dw1.io/fastcache"

	"go.dw1.io/gregex/charclass"
)

// DefaultCacheSize is the capacity of the cache behind [Cached].
const DefaultCacheSize = 4_096

// Rewriter memoizes [Rewrite] results per (mode, pattern). Failed rewrites
// are not stored. A Rewriter is safe for concurrent use.
type Rewriter struct {
	cache *fastcache.Cache[string, Pattern]
}

// NewRewriter returns a Rewriter holding at most size entries.
func NewRewriter(size int) *Rewriter {
	return &Rewriter{cache: fastcache.New[string, Pattern](size)}
}

// Rewrite is [Rewrite] with memoization.
func (r *Rewriter) Rewrite(pattern string, mode charclass.Mode) (Pattern, error) {
	key := cacheKey(pattern, mode)
	if p, found := r.cache.Get(key); found {
		return p, nil
	}

	p, err := Rewrite(pattern, mode)
	if err != nil {
		return Pattern{}, err
	}
	r.cache.Set(key, p)

	return p, nil
}

func cacheKey(pattern string, mode charclass.Mode) string {
	return mode.String() + "\x00" + pattern
}

var shared = NewRewriter(DefaultCacheSize)

// Cached rewrites pattern through a process-wide [Rewriter].
func Cached(pattern string, mode charclass.Mode) (Pattern, error) {
	return shared.Rewrite(pattern, mode)
}

package cache

import (
	"errors"
	"fmt"
	"time"
)

// key names definition
const (
	MovieListKey = "movies:all" // the full catalog, newest first
	MovieKey     = "movie:%s"   // a single movie, '%s' is the hex id
)

// DefaultTTL bounds staleness for cached reads; every successful mutation
// also invalidates the affected keys eagerly.
const DefaultTTL = 5 * time.Minute

func MakeMovieKey(id string) string {
	return fmt.Sprintf(MovieKey, id)
}

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

package vecexpr

import "sync"

// A memo caches the result of an expensive reduction.
//
// The value is computed at most once, on first read, and may be read
// concurrently from multiple Goroutines.
//
// If the computation panics, the panic is recorded and repeated on every
// later read instead of returning a zero value.
type memo[T any] struct {
	once    sync.Once
	value   T
	failed  bool
	failure any
}

func (m *memo[T]) Get(f func() T) T {
	m.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				m.failed = true
				m.failure = r
			}
		}()
		m.value = f()
	})
	if m.failed {
		panic(m.failure)
	}
	return m.value
}

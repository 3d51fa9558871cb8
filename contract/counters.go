package contract

import "strconv"

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func (e *Engine) getCount(key string) uint64 {
	v, ok := e.state.Get(key)
	if !ok || v == "" {
		return 0
	}
	n, _ := strconv.ParseUint(v, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func (e *Engine) setCount(key string, n uint64) {
	e.state.Set(key, strconv.FormatUint(n, 10))
}

// nextID bumps the counter and returns the fresh id, ids start at 1.
func (e *Engine) nextID(key string) uint64 {
	n := e.getCount(key) + 1
	e.setCount(key, n)
	return n
}

package sdk

import "sync"

// State is the kv surface the host exposes for persisted governance records.
// Keys and values are opaque strings; the engine layers its own prefixes and
// codecs on top. The host guarantees single-writer access per key.
type State interface {
	Get(key string) (string, bool)
	Set(key string, value string)
	Delete(key string)
}

// MemoryState is the in-process State used by tests and the demo wiring. Safe
// for concurrent readers and writers.
type MemoryState struct {
	mu      sync.RWMutex
	objects map[string]string
}

// NewMemoryState builds an empty in-memory kv.
// Example payload: sdk.NewMemoryState()
func NewMemoryState() *MemoryState {
	return &MemoryState{objects: map[string]string{}}
}

// Get fetches a key and reports whether it was present.
func (s *MemoryState) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.objects[key]
	return v, ok
}

// Set stores a key/value string pair.
func (s *MemoryState) Set(key string, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = value
}

// Delete removes the key entirely, handy for cleanup.
func (s *MemoryState) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
}

// Len reports the number of stored objects, used by tests to assert cleanup.
func (s *MemoryState) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

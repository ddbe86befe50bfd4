package storage

// Memory is an in-memory KV implementation used in tests and anywhere a
// throwaway store is useful. It is not safe for concurrent use; the study
// flow is single-threaded by construction.
type Memory struct {
	m map[string]string

	// FailWrites makes Set and Remove return ErrWriteFailed, simulating a
	// full or broken backing store.
	FailWrites bool
}

var _ KV = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(key string) (string, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *Memory) Set(key, value string) error {
	if s.FailWrites {
		return ErrWriteFailed
	}
	s.m[key] = value
	return nil
}

func (s *Memory) Remove(key string) error {
	if s.FailWrites {
		return ErrWriteFailed
	}
	delete(s.m, key)
	return nil
}

// Len returns the number of stored keys.
func (s *Memory) Len() int {
	return len(s.m)
}

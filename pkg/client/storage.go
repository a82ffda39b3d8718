package client

import "sync"

// Storage is the same-origin shared key/value store backing the
// cross-tab relay. Writes are atomic per key; subscribers receive a
// change signal for keys written by other sessions.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Subscribe(fn func(key string))
}

// MemoryStorage is an in-process Storage shared between simulated
// sessions. Each Set fans the key out to every subscriber.
type MemoryStorage struct {
	mu          sync.Mutex
	data        map[string]string
	subscribers []func(key string)
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		data: make(map[string]string),
	}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) {
	s.mu.Lock()
	s.data[key] = value
	subs := make([]func(key string), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(key)
	}
}

func (s *MemoryStorage) Subscribe(fn func(key string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

package repositories

import "sync"

// Store is the key-value persistence boundary: opaque JSON blobs keyed by
// collection name. Get returns (nil, nil) when the key has never been
// written, which the typed repositories use to seed their defaults.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Collection keys persisted through the Store.
const (
	KeyItems        = "ecofeast_items"
	KeyReservations = "ecofeast_reservations"
	KeyTasks        = "ecofeast_tasks"
)

// MemoryStore is an in-memory implementation of Store.
type MemoryStore struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewMemoryStore creates a new instance of MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

// Get returns the blob stored under key, or (nil, nil) if absent.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores the blob under key, replacing any previous value.
func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

package pairing

import "sync"

// MemoryKeyStore is a thread-safe in-memory AccountKeyStore.
type MemoryKeyStore struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ AccountKeyStore = (*MemoryKeyStore)(nil)

// NewMemoryKeyStore creates an empty in-memory account key store.
func NewMemoryKeyStore() *MemoryKeyStore {
	return &MemoryKeyStore{data: make(map[string]string)}
}

func (s *MemoryKeyStore) SetKey(accountID, key string) {
	s.mu.Lock()
	s.data[accountID] = key
	s.mu.Unlock()
}

func (s *MemoryKeyStore) GetKey(accountID string) (string, bool) {
	s.mu.RLock()
	key, ok := s.data[accountID]
	s.mu.RUnlock()
	return key, ok
}

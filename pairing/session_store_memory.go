package pairing

import (
	"sync"

	"github.com/google/uuid"
)

// MemorySessionStore is a thread-safe in-memory SessionStore.
// Sessions live for the process lifetime and are lost on restart.
type MemorySessionStore struct {
	mu   sync.RWMutex
	data map[string]*Session
}

var _ SessionStore = (*MemorySessionStore)(nil)

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{data: make(map[string]*Session)}
}

func (s *MemorySessionStore) Create(publicKey string) string {
	// A random UUID gives 122 bits of entropy, enough that collisions
	// with previously issued tokens are negligible.
	id := uuid.New().String()
	s.mu.Lock()
	s.data[id] = &Session{ID: id, PublicKey: publicKey}
	s.mu.Unlock()
	return id
}

func (s *MemorySessionStore) Get(id string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.data[id]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

func (s *MemorySessionStore) MarkPaired(id, accountID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.data[id]
	if !ok || sess.LobbyProcessed {
		return false
	}
	sess.AccountID = accountID
	sess.LobbyProcessed = true
	return true
}

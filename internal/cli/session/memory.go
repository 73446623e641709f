package session

import "sync"

// MemoryStore keeps the session in memory only. Used by tests and by
// embedders that do not want durable local state. Safe for concurrent use:
// several in-flight calls may read or invalidate the session at once.
type MemoryStore struct {
	mu   sync.Mutex
	sess *Session
}

var _ Store = &MemoryStore{}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(token string, user UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = &Session{Token: token, User: user}
	return nil
}

func (s *MemoryStore) Load() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil {
		return nil, nil
	}
	sess := *s.sess
	return &sess, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
	return nil
}

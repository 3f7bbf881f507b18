package session

import "sync"

// MemoryStore is an in-process Store for tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Save(profile string, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[NormalizeProfile(profile)] = s
	return nil
}

func (m *MemoryStore) Load(profile string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[NormalizeProfile(profile)]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStore) Delete(profile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := NormalizeProfile(profile)
	if _, ok := m.sessions[key]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, key)
	return nil
}

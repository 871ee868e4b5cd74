package storage

import (
	"context"
	"sort"
	"spectrumconnect-service/internal/app/contracts"
	"sync"
)

type memorySessions struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

type memorySessionStorage struct {
	store     *memorySessions
	sessionID string
}

// NewMemorySessionStorage keeps one session's keys in process memory.
func NewMemorySessionStorage() contracts.SessionStorage {
	return &memorySessionStorage{store: newMemorySessions()}
}

// NewMemorySessionStorageFactory hands out views over one shared map, for tests
// and local development. A session is dropped once its last key is deleted;
// there is no TTL, so sessions that never log out stay until the process exits.
func NewMemorySessionStorageFactory() contracts.SessionStorageFactory {
	store := newMemorySessions()
	return func(sessionID string) contracts.SessionStorage {
		return &memorySessionStorage{store: store, sessionID: sessionID}
	}
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: make(map[string]map[string]string)}
}

func (m *memorySessionStorage) Get(ctx context.Context, key string) (string, bool, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	value, ok := m.store.sessions[m.sessionID][key]
	return value, ok, nil
}

func (m *memorySessionStorage) Set(ctx context.Context, key, value string) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	values, ok := m.store.sessions[m.sessionID]
	if !ok {
		values = make(map[string]string)
		m.store.sessions[m.sessionID] = values
	}
	values[key] = value
	return nil
}

func (m *memorySessionStorage) Delete(ctx context.Context, keys ...string) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	values, ok := m.store.sessions[m.sessionID]
	if !ok {
		return nil
	}
	for _, key := range keys {
		delete(values, key)
	}
	if len(values) == 0 {
		delete(m.store.sessions, m.sessionID)
	}
	return nil
}

func (m *memorySessionStorage) Keys(ctx context.Context) ([]string, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	values := m.store.sessions[m.sessionID]
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

package cart

import (
	"strings"
	"sync"
)

// Manager hands out one hydrated Store per guest id, each persisted
// under its own file in dir.
type Manager struct {
	mu     sync.Mutex
	dir    string
	stores map[string]*Store
}

func NewManager(dir string) *Manager {
	return &Manager{dir: dir, stores: make(map[string]*Store)}
}

// Get returns the store for a guest id, creating and hydrating it on
// first use.
func (m *Manager) Get(guestID string) *Store {
	id := sanitizeID(guestID)

	m.mu.Lock()
	store, ok := m.stores[id]
	if !ok {
		store = New(NewFileStorage(m.dir, StorageKey+"-"+id))
		m.stores[id] = store
	}
	m.mu.Unlock()

	store.Hydrate()
	return store
}

// sanitizeID keeps ids safe to embed in a file name.
func sanitizeID(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, id)
}

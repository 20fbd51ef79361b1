package entitysdk

import "sync"

// ──────────────────────────────────────────────
// KVStore — pluggable persistence backend
// ──────────────────────────────────────────────

// KVStore is the storage backend interface for persisted state.
//
// Data is organized by namespace ("global" for process-wide config,
// "conversation" for per-conversation state) and key (the conversation id,
// or "config" for the global slot). A missing key reads as "" with no error.
type KVStore interface {
	Get(namespace, key string) (string, error)
	Set(namespace, key, value string) error
	Delete(namespace, key string) error
	ListKeys(namespace string) ([]string, error)
}

// Namespaces used by StateStore.
const (
	NamespaceGlobal       = "global"
	NamespaceConversation = "conversation"

	globalConfigKey = "config"
)

// InMemoryKVStore is a thread-safe in-memory KVStore for development and
// tests. Data is lost on restart.
type InMemoryKVStore struct {
	mu sync.RWMutex
	kv map[string]map[string]string
}

// NewInMemoryKVStore creates a new in-memory store.
func NewInMemoryKVStore() *InMemoryKVStore {
	return &InMemoryKVStore{kv: make(map[string]map[string]string)}
}

func (s *InMemoryKVStore) Get(namespace, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ns, ok := s.kv[namespace]; ok {
		if v, ok := ns[key]; ok {
			return v, nil
		}
	}
	return "", nil
}

func (s *InMemoryKVStore) Set(namespace, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv[namespace] == nil {
		s.kv[namespace] = make(map[string]string)
	}
	s.kv[namespace][key] = value
	return nil
}

func (s *InMemoryKVStore) Delete(namespace, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ns, ok := s.kv[namespace]; ok {
		delete(ns, key)
	}
	return nil
}

func (s *InMemoryKVStore) ListKeys(namespace string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ns, ok := s.kv[namespace]
	if !ok {
		return []string{}, nil
	}
	keys := make([]string, 0, len(ns))
	for k := range ns {
		keys = append(keys, k)
	}
	return keys, nil
}

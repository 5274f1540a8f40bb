package dictionary

import "sync"

//go:generate mockgen -source=store.go -destination=../mocks/dictionary/mock_store.go -package=mock_dictionary

// Store defines operations for holding dictionary entries.
// Words passed to a Store must already be normalized.
type Store interface {
	// Insert appends an entry without checking for duplicates.
	Insert(word, definition string)
	Exists(word string) bool
	Lookup(word string) (string, bool)
	Count() int
}

// MemoryStore implements Store in process memory.
// Entries keep their insertion order.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
	index   map[string]int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		index: make(map[string]int),
	}
}

func (s *MemoryStore) Insert(word, definition string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, Entry{Word: word, Definition: definition})
	// Lookups resolve to the first entry for a word.
	if _, ok := s.index[word]; !ok {
		s.index[word] = len(s.entries) - 1
	}
}

func (s *MemoryStore) Exists(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.index[word]
	return ok
}

func (s *MemoryStore) Lookup(word string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[word]
	if !ok {
		return "", false
	}
	return s.entries[i].Definition, true
}

func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}


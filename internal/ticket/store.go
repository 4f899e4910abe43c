package ticket

import "sync"

// Store keeps rendered ticket documents in memory, keyed by ticket
// number.  Entries never expire and are lost when the process exits.
// A Put replaces any previous document for the same number.
type Store struct {
	mu   sync.RWMutex
	docs map[string]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{docs: make(map[string]string)}
}

// Put stores doc under number, replacing what was there.
func (s *Store) Put(number, doc string) {
	s.mu.Lock()
	s.docs[number] = doc
	s.mu.Unlock()
}

// Get returns the document for number or ErrTicketNotFound.
func (s *Store) Get(number string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[number]
	if !ok {
		return "", ErrTicketNotFound
	}
	return doc, nil
}

// Len reports how many tickets are held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

package cart

// MemoryStore keeps the cart record in process memory. Used in tests and as
// the fallback when no persistence path is configured.
type MemoryStore struct {
	items []Item
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() ([]Item, error) {
	return append([]Item{}, s.items...), nil
}

func (s *MemoryStore) Save(items []Item) error {
	s.items = append([]Item{}, items...)
	return nil
}

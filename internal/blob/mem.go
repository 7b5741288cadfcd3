package blob

import "sort"

// MemStore is an in-memory Store, used in tests and as a scratch target.
type MemStore struct {
	blobs map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

func (s *MemStore) Save(key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	s.blobs[key] = cp
	return nil
}

func (s *MemStore) Load(key string) ([]byte, bool, error) {
	data, ok := s.blobs[key]
	return data, ok, nil
}

func (s *MemStore) Delete(key string) error {
	delete(s.blobs, key)
	return nil
}

func (s *MemStore) Keys() ([]string, error) {
	keys := make([]string, 0, len(s.blobs))
	for k := range s.blobs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

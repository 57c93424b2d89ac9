package kvstore

import "context"

// MemoryStore хранит слоты в памяти. Используется в тестах и для локального
// запуска без базы данных.
type MemoryStore struct {
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

func (m *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	copied := make([]byte, len(value))
	copy(copied, value)
	m.data[key] = copied
	return nil
}

package session

// MockStore is an in-memory store for testing.
type MockStore struct {
	entries map[string]string
}

func NewMockStore() *MockStore {
	return &MockStore{entries: make(map[string]string)}
}

func (m *MockStore) Set(key, value string) error {
	m.entries[key] = value
	return nil
}

func (m *MockStore) Get(key string) (string, error) {
	value, ok := m.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *MockStore) Delete(key string) error {
	if _, ok := m.entries[key]; !ok {
		return ErrNotFound
	}
	delete(m.entries, key)
	return nil
}

package client

import (
	"slices"
	"sync"

	"taskkeeper/internal/domain/task"
)

// MemoryStorage - временное in-memory хранилище, когда SQLite недоступен
type MemoryStorage struct {
	mu      sync.Mutex
	values  map[string]string
	intents []task.Intent
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		values: make(map[string]string),
	}
}

func (m *MemoryStorage) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *MemoryStorage) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

func (m *MemoryStorage) Add(intent task.Intent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.intents = append(m.intents, intent)
	return nil
}

func (m *MemoryStorage) List() ([]task.Intent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]task.Intent{}, m.intents...), nil
}

func (m *MemoryStorage) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.intents = slices.DeleteFunc(m.intents, func(in task.Intent) bool {
		return in.ID == id
	})
	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}

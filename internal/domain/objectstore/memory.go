package objectstore

import (
	"context"
	"slices"
	"sync"

	"taskkeeper/internal/domain/object"
)

// MemoryRepository хранит объекты в памяти процесса
type MemoryRepository struct {
	mu      sync.RWMutex
	objects map[string]object.Object
	order   []string
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		objects: make(map[string]object.Object),
	}
}

func (m *MemoryRepository) List(_ context.Context, ids []string) ([]object.Object, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	objs := make([]object.Object, 0, len(m.order))
	for _, id := range m.order {
		if len(ids) > 0 && !slices.Contains(ids, id) {
			continue
		}
		objs = append(objs, m.objects[id])
	}
	return objs, nil
}

func (m *MemoryRepository) Get(_ context.Context, id string) (object.Object, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, ok := m.objects[id]
	if !ok {
		return object.Object{}, ErrNotFound
	}
	return obj, nil
}

func (m *MemoryRepository) Insert(_ context.Context, obj object.Object) (object.Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects[obj.ID] = obj
	m.order = append(m.order, obj.ID)
	return obj, nil
}

func (m *MemoryRepository) Update(_ context.Context, obj object.Object) (object.Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.objects[obj.ID]
	if !ok {
		return object.Object{}, ErrNotFound
	}
	obj.CreatedAt = current.CreatedAt
	m.objects[obj.ID] = obj
	return obj, nil
}

func (m *MemoryRepository) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.objects[id]; !ok {
		return ErrNotFound
	}
	delete(m.objects, id)
	m.order = slices.DeleteFunc(m.order, func(v string) bool { return v == id })
	return nil
}

// Ping всегда успешен: хранилище в памяти процесса
func (m *MemoryRepository) Ping(context.Context) error {
	return nil
}

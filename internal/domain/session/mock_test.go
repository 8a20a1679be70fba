package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/stretchr/testify/mock"

	"taskkeeper/internal/domain/object"
)

// MockRepository is a mock implementation of object.Repository for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, name string, data any) (object.Object, error) {
	args := m.Called(ctx, name, data)
	return args.Get(0).(object.Object), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id string) (object.Object, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(object.Object), args.Error(1)
}

func (m *MockRepository) GetMany(ctx context.Context, ids []string) ([]object.Object, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]object.Object), args.Error(1)
}

func (m *MockRepository) Replace(ctx context.Context, id, name string, data any) (object.Object, error) {
	args := m.Called(ctx, id, name, data)
	return args.Get(0).(object.Object), args.Error(1)
}

func (m *MockRepository) Patch(ctx context.Context, id string, data any) (object.Object, error) {
	args := m.Called(ctx, id, data)
	return args.Get(0).(object.Object), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mapStorage is an in-memory Storage for testing
type mapStorage struct {
	values map[string]string
	getErr error
	setErr error
}

func newMapStorage() *mapStorage {
	return &mapStorage{values: make(map[string]string)}
}

func (m *mapStorage) Get(key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mapStorage) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mapStorage) Delete(key string) error {
	delete(m.values, key)
	return nil
}

var errBoom = errors.New("boom")

func userObject(id, name string, data map[string]any) object.Object {
	raw, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return object.Object{ID: id, Name: name, Data: raw}
}

package objectstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"taskkeeper/internal/domain/object"
)

// MockRepository is a mock implementation of Repository for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, ids []string) ([]object.Object, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]object.Object), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id string) (object.Object, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(object.Object), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, obj object.Object) (object.Object, error) {
	args := m.Called(ctx, obj)
	return args.Get(0).(object.Object), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, obj object.Object) (object.Object, error) {
	args := m.Called(ctx, obj)
	return args.Get(0).(object.Object), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newMemoryService() *Service {
	service := NewService(NewMemoryRepository(), slog.Default())
	seq := 0
	service.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	service.now = func() time.Time {
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return service
}

func TestService_CreateAndGet(t *testing.T) {
	service := newMemoryService()
	ctx := context.Background()

	created, err := service.Create(ctx, "Ana", json.RawMessage(` {"email":"ana@example.com","tasks":[]} `))
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)
	require.NotNil(t, created.CreatedAt)
	assert.Nil(t, created.UpdatedAt)

	got, err := service.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.JSONEq(t, `{"email":"ana@example.com","tasks":[]}`, string(got.Data))
}

func TestService_CreateRejectsNonObjectData(t *testing.T) {
	service := newMemoryService()

	for _, data := range []string{`[1,2]`, `"text"`, `{"broken":`} {
		_, err := service.Create(context.Background(), "", json.RawMessage(data))
		assert.ErrorIs(t, err, ErrInvalidData, data)
	}

	obj, err := service.Create(context.Background(), "empty", nil)
	require.NoError(t, err)
	assert.Nil(t, obj.Data)
}

func TestService_ReplaceOverwrites(t *testing.T) {
	service := newMemoryService()
	ctx := context.Background()

	created, err := service.Create(ctx, "Ana", json.RawMessage(`{"email":"a","tasks":["t1"]}`))
	require.NoError(t, err)

	replaced, err := service.Replace(ctx, created.ID, "Ana B", json.RawMessage(`{"tasks":["t2"]}`))
	require.NoError(t, err)
	assert.Equal(t, "Ana B", replaced.Name)
	assert.JSONEq(t, `{"tasks":["t2"]}`, string(replaced.Data))
	assert.NotNil(t, replaced.UpdatedAt)
	assert.Equal(t, created.CreatedAt, replaced.CreatedAt)

	_, err = service.Replace(ctx, "missing", "x", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_PatchMergesData(t *testing.T) {
	service := newMemoryService()
	ctx := context.Background()

	created, err := service.Create(ctx, "Ana", json.RawMessage(`{"email":"a","password":"old","tasks":["t1"]}`))
	require.NoError(t, err)

	patched, err := service.Patch(ctx, created.ID, nil, json.RawMessage(`{"password":"new"}`))
	require.NoError(t, err)
	assert.Equal(t, "Ana", patched.Name)
	assert.JSONEq(t, `{"email":"a","password":"new","tasks":["t1"]}`, string(patched.Data))

	name := "Ana B"
	patched, err = service.Patch(ctx, created.ID, &name, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ana B", patched.Name)
	assert.JSONEq(t, `{"email":"a","password":"new","tasks":["t1"]}`, string(patched.Data))
}

func TestService_ListFiltersByID(t *testing.T) {
	service := newMemoryService()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := service.Create(ctx, name, nil)
		require.NoError(t, err)
	}

	all, err := service.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	some, err := service.List(ctx, []string{"id-3", "id-1", "unknown"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "id-1", some[0].ID)
	assert.Equal(t, "id-3", some[1].ID)
}

func TestService_DeleteThenGet(t *testing.T) {
	service := newMemoryService()
	ctx := context.Background()

	created, err := service.Create(ctx, "a", nil)
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))

	_, err = service.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = service.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_InvalidID(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())
	ctx := context.Background()

	_, err := service.Get(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, service.Delete(ctx, ""), ErrInvalidID)

	assert.Empty(t, mockRepo.Calls)
}

func TestService_RepositoryFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())
	dbErr := errors.New("connection reset")

	mockRepo.On("List", mock.Anything, []string(nil)).Return(nil, dbErr)
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("object.Object")).Return(object.Object{}, dbErr)

	_, err := service.List(context.Background(), nil)
	assert.ErrorIs(t, err, dbErr)

	_, err = service.Create(context.Background(), "x", nil)
	assert.ErrorIs(t, err, dbErr)

	mockRepo.AssertExpectations(t)
}

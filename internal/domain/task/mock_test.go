package task

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/stretchr/testify/mock"

	"taskkeeper/internal/domain/object"
	"taskkeeper/internal/domain/session"
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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

// sessionRecorder keeps the last cached session
type sessionRecorder struct {
	cached  *session.Session
	replace int
}

func (r *sessionRecorder) Replace(s session.Session) error {
	r.cached = &s
	r.replace++
	return nil
}

// memJournal is an in-memory Journal for testing
type memJournal struct {
	intents []Intent
}

func (j *memJournal) Add(intent Intent) error {
	j.intents = append(j.intents, intent)
	return nil
}

func (j *memJournal) List() ([]Intent, error) {
	return append([]Intent{}, j.intents...), nil
}

func (j *memJournal) Remove(id string) error {
	for i, in := range j.intents {
		if in.ID == id {
			j.intents = append(j.intents[:i], j.intents[i+1:]...)
			return nil
		}
	}
	return nil
}

var errBoom = errors.New("boom")

func taskObject(id, title, state string) object.Object {
	raw, _ := json.Marshal(Data{Title: title, State: state})
	return object.Object{ID: id, Data: raw}
}

func userObject(id, name string, tasks []string) object.Object {
	raw, _ := json.Marshal(session.Data{Password: "$2a$04$hash", Tasks: tasks})
	return object.Object{ID: id, Name: name, Data: raw}
}

func testSession(tasks ...string) session.Session {
	if tasks == nil {
		tasks = []string{}
	}
	return session.Session{
		ID:   "u1",
		Name: "Ana",
		Data: session.Data{Password: "$2a$04$hash", Tasks: tasks},
	}
}

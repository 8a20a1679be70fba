package client

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"taskkeeper/internal/app/client/config"
	"taskkeeper/internal/app/server/api"
	"taskkeeper/internal/domain/object"
	"taskkeeper/internal/domain/objectstore"
	"taskkeeper/internal/domain/session"
	"taskkeeper/internal/domain/task"
)

// newTestApp поднимает сервер объектов в памяти и собирает клиент поверх него
func newTestApp(t *testing.T) (*App, *objectstore.MemoryRepository) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := objectstore.NewMemoryRepository()
	srv := httptest.NewServer(api.New(repo, "memory", "", log))
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Env:            "local",
		APIURL:         srv.URL + "/objects",
		RequestTimeout: 5,
	}
	httpCl := NewHTTPClient(cfg, log)
	app := newApp(cfg, log, httpCl, NewMemoryStorage(), httpCl, false)
	t.Cleanup(app.Shutdown)
	return app, repo
}

func register(t *testing.T, app *App) session.Session {
	t.Helper()
	sess, err := app.Register(context.Background(), session.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret1",
		Extra:    map[string]any{"phone": "555"},
	})
	require.NoError(t, err)
	return sess
}

func TestApp_RegisterLoginLogout(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.CheckConnection(ctx))

	sess := register(t, app)
	assert.NotEmpty(t, sess.ID)
	assert.True(t, app.IsAuthenticated())

	require.NoError(t, app.Logout())
	assert.False(t, app.IsAuthenticated())
	_, err := app.CurrentSession()
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)

	_, err = app.Login(ctx, sess.ID, "wrong-password")
	assert.ErrorIs(t, err, session.ErrIncorrectPassword)

	_, err = app.Login(ctx, "missing", "secret1")
	assert.ErrorIs(t, err, session.ErrUserNotFound)

	loggedIn, err := app.Login(ctx, sess.ID, "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", loggedIn.Name)
	assert.Equal(t, "555", loggedIn.Data.Extra["phone"])
}

func TestApp_ChangePassword(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()
	sess := register(t, app)

	_, err := app.CreateTask(ctx, "keep me", "", task.StatePending)
	require.NoError(t, err)

	require.NoError(t, app.ChangePassword(ctx, session.ChangePasswordRequest{
		ID:              sess.ID,
		OldPassword:     "secret1",
		NewPassword:     "secret2",
		ConfirmPassword: "secret2",
	}))

	_, err = app.Login(ctx, sess.ID, "secret1")
	assert.ErrorIs(t, err, session.ErrIncorrectPassword)

	after, err := app.Login(ctx, sess.ID, "secret2")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", after.Data.Email)
	assert.Len(t, after.Data.Tasks, 1)
}

func TestApp_TaskLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()
	register(t, app)

	tasks, err := app.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	first, err := app.CreateTask(ctx, "buy milk", "2 liters", task.StatePending)
	require.NoError(t, err)
	second, err := app.CreateTask(ctx, "call mom", "", task.StateInProgress)
	require.NoError(t, err)

	tasks, err = app.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, first.ID, tasks[0].ID)
	assert.Equal(t, second.ID, tasks[1].ID)

	updated, err := app.UpdateTask(ctx, first.ID, "buy milk", "2 liters", task.StateDone)
	require.NoError(t, err)
	assert.Equal(t, task.StateDone, updated.State)

	got, err := app.GetTask(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StateDone, got.State)

	require.NoError(t, app.DeleteTask(ctx, second.ID))

	tasks, err = app.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, first.ID, tasks[0].ID)

	_, err = app.GetTask(ctx, second.ID)
	assert.ErrorIs(t, err, task.ErrNotOwned)
}

func TestApp_DeleteIsLocalUntilSync(t *testing.T) {
	app, repo := newTestApp(t)
	ctx := context.Background()
	sess := register(t, app)

	created, err := app.CreateTask(ctx, "temp", "", task.StatePending)
	require.NoError(t, err)
	require.NoError(t, app.DeleteTask(ctx, created.ID))

	// Запись пользователя в хранилище всё ещё ссылается на удалённую задачу
	stored, err := repo.Get(ctx, sess.ID)
	require.NoError(t, err)
	remote, err := session.FromObject(stored)
	require.NoError(t, err)
	assert.Contains(t, remote.Data.Tasks, created.ID)

	report, err := app.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{created.ID}, report.Dropped)
	assert.True(t, report.Updated)

	stored, err = repo.Get(ctx, sess.ID)
	require.NoError(t, err)
	remote, err = session.FromObject(stored)
	require.NoError(t, err)
	assert.NotContains(t, remote.Data.Tasks, created.ID)
}

func TestApp_ReconcileReattachesOrphan(t *testing.T) {
	app, repo := newTestApp(t)
	ctx := context.Background()
	sess := register(t, app)

	// Задача создана, но второй шаг не дошёл до хранилища
	orphan, err := repo.Insert(ctx, object.Object{ID: "orphan-1", Data: []byte(`{"title":"lost","description":"","state":"pending"}`)})
	require.NoError(t, err)
	require.NoError(t, app.storage.Add(task.Intent{
		ID:        "i1",
		Kind:      task.KindAttachTask,
		SessionID: sess.ID,
		TaskID:    orphan.ID,
	}))

	pending, err := app.PendingIntents()
	require.NoError(t, err)
	require.Len(t, pending, 1)

	report, err := app.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{orphan.ID}, report.Reattached)

	pending, err = app.PendingIntents()
	require.NoError(t, err)
	assert.Empty(t, pending)

	tasks, err := app.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "lost", tasks[0].Title)
}

func TestApp_RequiresLogin(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	_, err := app.ListTasks(ctx)
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)
	_, err = app.CreateTask(ctx, "x", "", task.StatePending)
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)
	_, err = app.Reconcile(ctx)
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)
}

func TestApp_APIKey(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(api.New(objectstore.NewMemoryRepository(), "memory", "k1", log))
	t.Cleanup(srv.Close)

	newClient := func(key string) *App {
		cfg := &config.Config{APIURL: srv.URL + "/objects", APIKey: key, RequestTimeout: 5}
		httpCl := NewHTTPClient(cfg, log)
		return newApp(cfg, log, httpCl, NewMemoryStorage(), httpCl, false)
	}
	req := session.RegisterRequest{Name: "Ana", Password: "secret1"}

	_, err := newClient("").Register(context.Background(), req)
	require.Error(t, err)
	assert.True(t, object.IsRemote(err))
	assert.Equal(t, "request failed, try again", UserMessage(err))

	_, err = newClient("k1").Register(context.Background(), req)
	require.NoError(t, err)
}

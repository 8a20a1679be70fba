package client

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"taskkeeper/internal/app/client/config"
	"taskkeeper/internal/domain/object"
	"taskkeeper/internal/domain/session"
	"taskkeeper/internal/domain/task"
)

// Storage - локальное хранилище клиента: кэш сессии и журнал намерений
type Storage interface {
	session.Storage
	task.Journal
	Close() error
}

type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *HTTPClient
	storage    Storage
	sessions   session.Servicer
	tasks      task.Servicer
	persistent bool
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("конфигурация не задана")
	}

	httpCl := NewHTTPClient(cfg, log)

	// Инициализируем локальное хранилище (используем SQLite)
	var storage Storage
	persistent := true
	sqliteStorage, err := NewSQLiteStorage(cfg.DataPath)
	if err != nil {
		log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
		storage = NewMemoryStorage()
		persistent = false
	} else {
		storage = sqliteStorage
	}

	return newApp(cfg, log, httpCl, storage, httpCl, persistent), nil
}

// newApp собирает сервисы поверх репозитория объектов; в тестах repo подменяется
func newApp(cfg *config.Config, log *slog.Logger, httpCl *HTTPClient, storage Storage, repo object.Repository, persistent bool) *App {
	sessions := session.NewService(repo, session.NewCache(storage, log), session.NewValidator(), log)
	tasks := task.NewService(repo, sessions, storage, log)

	return &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		storage:    storage,
		sessions:   sessions,
		tasks:      tasks,
		persistent: persistent,
	}
}

// Config возвращает конфигурацию клиента
func (a *App) Config() *config.Config {
	return a.config
}

// Persistent сообщает, сохраняется ли сессия между запусками
func (a *App) Persistent() bool {
	return a.persistent
}

// CheckConnection проверяет доступность удалённого хранилища
func (a *App) CheckConnection(ctx context.Context) error {
	if a.httpClient == nil {
		return errors.New("HTTP клиент не инициализирован")
	}
	return a.httpClient.HealthCheck(ctx)
}

func (a *App) Register(ctx context.Context, req session.RegisterRequest) (session.Session, error) {
	return a.sessions.Register(ctx, req)
}

func (a *App) Login(ctx context.Context, id, password string) (session.Session, error) {
	return a.sessions.Login(ctx, id, password)
}

func (a *App) ChangePassword(ctx context.Context, req session.ChangePasswordRequest) error {
	return a.sessions.ChangePassword(ctx, req)
}

func (a *App) Logout() error {
	return a.sessions.Logout()
}

func (a *App) IsAuthenticated() bool {
	return a.sessions.IsAuthenticated()
}

// CurrentSession возвращает закэшированную сессию
func (a *App) CurrentSession() (session.Session, error) {
	return a.sessions.Current()
}

// RefreshSession перечитывает запись пользователя из хранилища
func (a *App) RefreshSession(ctx context.Context) (session.Session, error) {
	return a.sessions.Refresh(ctx)
}

func (a *App) ListTasks(ctx context.Context) ([]task.Task, error) {
	sess, err := a.sessions.Current()
	if err != nil {
		return nil, err
	}
	return a.tasks.ListOwned(ctx, sess)
}

// GetTask возвращает одну задачу текущего пользователя
func (a *App) GetTask(ctx context.Context, taskID string) (task.Task, error) {
	sess, err := a.sessions.Current()
	if err != nil {
		return task.Task{}, err
	}
	if !sess.HasTask(taskID) {
		return task.Task{}, task.ErrNotOwned
	}
	return a.tasks.Find(ctx, taskID)
}

func (a *App) CreateTask(ctx context.Context, title, description, state string) (task.Task, error) {
	sess, err := a.sessions.Current()
	if err != nil {
		return task.Task{}, err
	}
	created, _, err := a.tasks.Create(ctx, sess, title, description, state)
	return created, err
}

func (a *App) UpdateTask(ctx context.Context, taskID, title, description, state string) (task.Task, error) {
	sess, err := a.sessions.Current()
	if err != nil {
		return task.Task{}, err
	}
	return a.tasks.Update(ctx, sess, taskID, title, description, state)
}

func (a *App) DeleteTask(ctx context.Context, taskID string) error {
	sess, err := a.sessions.Current()
	if err != nil {
		return err
	}
	_, err = a.tasks.Delete(ctx, sess, taskID)
	return err
}

// Reconcile приводит список задач пользователя в соответствие с хранилищем
func (a *App) Reconcile(ctx context.Context) (task.ReconcileReport, error) {
	sess, err := a.sessions.Current()
	if err != nil {
		return task.ReconcileReport{}, err
	}
	return a.tasks.Reconcile(ctx, sess)
}

// PendingIntents возвращает незавершённые операции текущего пользователя
func (a *App) PendingIntents() ([]task.Intent, error) {
	sess, err := a.sessions.Current()
	if err != nil {
		return nil, err
	}

	all, err := a.storage.List()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения журнала: %w", err)
	}

	intents := make([]task.Intent, 0, len(all))
	for _, in := range all {
		if in.SessionID == sess.ID {
			intents = append(intents, in)
		}
	}
	return intents, nil
}

func (a *App) Shutdown() {
	if err := a.storage.Close(); err != nil {
		a.log.Warn("Ошибка закрытия хранилища", "error", err)
	}
}

package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"taskkeeper/internal/domain/object"
	"taskkeeper/internal/domain/session"
)

// SessionReplacer заменяет закэшированную сессию
type SessionReplacer interface {
	Replace(s session.Session) error
}

type Servicer interface {
	ListOwned(ctx context.Context, sess session.Session) ([]Task, error)
	Find(ctx context.Context, taskID string) (Task, error)
	Create(ctx context.Context, sess session.Session, title, description, state string) (Task, session.Session, error)
	Update(ctx context.Context, sess session.Session, taskID, title, description, state string) (Task, error)
	Delete(ctx context.Context, sess session.Session, taskID string) (session.Session, error)
	Reconcile(ctx context.Context, sess session.Session) (ReconcileReport, error)
}

type Service struct {
	repo     object.Repository
	sessions SessionReplacer
	journal  Journal
	log      *slog.Logger
	now      func() time.Time
}

func NewService(repo object.Repository, sessions SessionReplacer, journal Journal, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		journal:  journal,
		log:      log.With("component", "task_service"),
		now:      time.Now,
	}
}

// ListOwned возвращает задачи пользователя. Пустой список не запрашивается у хранилища.
func (s *Service) ListOwned(ctx context.Context, sess session.Session) ([]Task, error) {
	if len(sess.Data.Tasks) == 0 {
		return []Task{}, nil
	}

	objs, err := s.repo.GetMany(ctx, sess.Data.Tasks)
	if err != nil {
		s.log.Error("failed to list tasks", "user_id", sess.ID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	tasks := make([]Task, 0, len(objs))
	for _, obj := range objs {
		t, err := FromObject(obj)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}

// Find возвращает задачу по id
func (s *Service) Find(ctx context.Context, taskID string) (Task, error) {
	if err := validateID(taskID); err != nil {
		return Task{}, err
	}

	obj, err := s.repo.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return Task{}, ErrNotFound
		}
		return Task{}, fmt.Errorf("get task: %w", err)
	}

	return FromObject(obj)
}

// Create создаёт задачу и добавляет её id в запись пользователя.
// Если второй шаг не удался, задача остаётся в хранилище, а намерение - в журнале.
func (s *Service) Create(ctx context.Context, sess session.Session, title, description, state string) (Task, session.Session, error) {
	if strings.TrimSpace(title) == "" {
		return Task{}, sess, &session.ValidationError{Field: "title", Message: "title is required"}
	}

	data := Data{Title: title, Description: description, State: state}
	obj, err := s.repo.Create(ctx, "", data)
	if err != nil {
		s.log.Error("failed to create task", "user_id", sess.ID, "error", err)
		return Task{}, sess, fmt.Errorf("create task: %w", err)
	}

	created, err := FromObject(obj)
	if err != nil {
		return Task{}, sess, err
	}

	intent := Intent{
		ID:        uuid.NewString(),
		Kind:      KindAttachTask,
		SessionID: sess.ID,
		TaskID:    created.ID,
		CreatedAt: s.now(),
	}
	if err := s.journal.Add(intent); err != nil {
		s.log.Warn("failed to journal intent", "task_id", created.ID, "error", err)
	}

	next := sess.WithTask(created.ID)
	userObj, err := s.repo.Replace(ctx, sess.ID, sess.Name, next.Data)
	if err != nil {
		s.log.Error("failed to attach task to user",
			"user_id", sess.ID, "task_id", created.ID, "error", err)
		return created, sess, &AttachError{TaskID: created.ID, Err: err}
	}

	updated, err := session.FromObject(userObj)
	if err != nil {
		return created, sess, &AttachError{TaskID: created.ID, Err: err}
	}

	if err := s.sessions.Replace(updated); err != nil {
		return created, sess, err
	}

	if err := s.journal.Remove(intent.ID); err != nil {
		s.log.Warn("failed to remove intent", "intent_id", intent.ID, "error", err)
	}

	s.log.Info("task created", "user_id", sess.ID, "task_id", created.ID)
	return created, updated, nil
}

// Update перезаписывает задачу; запись пользователя не меняется
func (s *Service) Update(ctx context.Context, sess session.Session, taskID, title, description, state string) (Task, error) {
	if err := validateID(taskID); err != nil {
		return Task{}, err
	}
	if !sess.HasTask(taskID) {
		return Task{}, ErrNotOwned
	}

	data := Data{Title: title, Description: description, State: state}
	obj, err := s.repo.Replace(ctx, taskID, "", data)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return Task{}, ErrNotFound
		}
		s.log.Error("failed to update task", "task_id", taskID, "error", err)
		return Task{}, fmt.Errorf("update task: %w", err)
	}

	return FromObject(obj)
}

// Delete удаляет задачу и убирает её id только из локальной сессии.
// Задача, которой уже нет в хранилище, тоже убирается из сессии.
func (s *Service) Delete(ctx context.Context, sess session.Session, taskID string) (session.Session, error) {
	if err := validateID(taskID); err != nil {
		return sess, err
	}
	if !sess.HasTask(taskID) {
		return sess, ErrNotOwned
	}

	if err := s.repo.Delete(ctx, taskID); err != nil {
		if !errors.Is(err, object.ErrNotFound) {
			s.log.Error("failed to delete task", "task_id", taskID, "error", err)
			return sess, fmt.Errorf("delete task: %w", err)
		}
		s.log.Info("task already absent remotely", "task_id", taskID)
	}

	updated := sess.WithoutTask(taskID)
	if err := s.sessions.Replace(updated); err != nil {
		return sess, err
	}

	s.log.Info("task deleted", "user_id", sess.ID, "task_id", taskID)
	return updated, nil
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" || strings.ContainsAny(id, "/?#") {
		return &session.ValidationError{Field: "id", Message: "invalid task id"}
	}
	return nil
}

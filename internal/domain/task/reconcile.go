package task

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"taskkeeper/internal/domain/object"
	"taskkeeper/internal/domain/session"
)

// ReconcileReport - результат сверки списка задач пользователя с хранилищем
type ReconcileReport struct {
	// Dropped - id из data.tasks, которых больше нет в хранилище
	Dropped []string `json:"dropped" yaml:"dropped"`
	// Reattached - задачи из журнала, вернувшиеся в data.tasks
	Reattached []string `json:"reattached" yaml:"reattached"`
	// Discarded - намерения, чьи задачи уже удалены
	Discarded []string `json:"discarded" yaml:"discarded"`
	Updated   bool     `json:"updated" yaml:"updated"`
}

// Reconcile перечитывает запись пользователя, убирает ссылки на несуществующие
// задачи и присоединяет осиротевшие задачи из журнала. Запись пишется обратно
// одним PUT только если список изменился.
func (s *Service) Reconcile(ctx context.Context, sess session.Session) (ReconcileReport, error) {
	var report ReconcileReport

	userObj, err := s.repo.Get(ctx, sess.ID)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return report, session.ErrUserNotFound
		}
		return report, fmt.Errorf("get user: %w", err)
	}

	remote, err := session.FromObject(userObj)
	if err != nil {
		return report, err
	}

	intents, err := s.pendingIntents(sess.ID)
	if err != nil {
		return report, err
	}

	candidates := append([]string{}, remote.Data.Tasks...)
	for _, in := range intents {
		if !slices.Contains(candidates, in.TaskID) {
			candidates = append(candidates, in.TaskID)
		}
	}

	existing := make(map[string]bool, len(candidates))
	if len(candidates) > 0 {
		objs, err := s.repo.GetMany(ctx, candidates)
		if err != nil {
			return report, fmt.Errorf("%w: %w", ErrLoadFailed, err)
		}
		for _, obj := range objs {
			existing[obj.ID] = true
		}
	}

	kept := make([]string, 0, len(remote.Data.Tasks))
	for _, id := range remote.Data.Tasks {
		if existing[id] {
			kept = append(kept, id)
		} else {
			report.Dropped = append(report.Dropped, id)
		}
	}

	for _, in := range intents {
		switch {
		case !existing[in.TaskID]:
			report.Discarded = append(report.Discarded, in.TaskID)
		case !slices.Contains(kept, in.TaskID):
			kept = append(kept, in.TaskID)
			report.Reattached = append(report.Reattached, in.TaskID)
		}
	}

	updated := remote
	if len(report.Dropped) > 0 || len(report.Reattached) > 0 {
		next := remote.WithTasks(kept)
		obj, err := s.repo.Replace(ctx, remote.ID, remote.Name, next.Data)
		if err != nil {
			s.log.Error("failed to write reconciled user", "user_id", remote.ID, "error", err)
			return report, fmt.Errorf("update user: %w", err)
		}
		if updated, err = session.FromObject(obj); err != nil {
			return report, err
		}
		report.Updated = true
	}

	if err := s.sessions.Replace(updated); err != nil {
		return report, err
	}

	for _, in := range intents {
		if err := s.journal.Remove(in.ID); err != nil {
			s.log.Warn("failed to remove intent", "intent_id", in.ID, "error", err)
		}
	}

	s.log.Info("reconciled tasks",
		"user_id", remote.ID,
		"dropped", len(report.Dropped),
		"reattached", len(report.Reattached),
		"discarded", len(report.Discarded),
	)
	return report, nil
}

func (s *Service) pendingIntents(sessionID string) ([]Intent, error) {
	all, err := s.journal.List()
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}

	intents := make([]Intent, 0, len(all))
	for _, in := range all {
		if in.Kind == KindAttachTask && in.SessionID == sessionID {
			intents = append(intents, in)
		}
	}
	return intents, nil
}

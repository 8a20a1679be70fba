package client

import (
	"errors"

	"taskkeeper/internal/domain/object"
	"taskkeeper/internal/domain/session"
	"taskkeeper/internal/domain/task"
)

// UserMessage переводит ошибку сервиса в сообщение для пользователя
func UserMessage(err error) string {
	var (
		validationErr *session.ValidationError
		attachErr     *task.AttachError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.Is(err, session.ErrUserNotFound):
		return "user not found"
	case errors.Is(err, session.ErrIncorrectPassword):
		return "incorrect password"
	case errors.Is(err, session.ErrNotAuthenticated):
		return "not logged in, run: taskkeeper auth login"
	case errors.As(err, &attachErr):
		return "task " + attachErr.TaskID + " was created but not added to your list, run: taskkeeper sync"
	case errors.Is(err, task.ErrNotFound), errors.Is(err, object.ErrNotFound):
		return "task not found"
	case errors.Is(err, task.ErrNotOwned):
		return "task does not belong to you"
	case errors.Is(err, task.ErrLoadFailed):
		return "could not load tasks, try again"
	case object.IsRemote(err), errors.Is(err, session.ErrMalformedRecord):
		return "request failed, try again"
	default:
		return err.Error()
	}
}

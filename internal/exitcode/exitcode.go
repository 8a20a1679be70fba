// Package exitcode defines exit codes for the CLI.
package exitcode

import (
	"errors"

	"taskkeeper/internal/domain/object"
	"taskkeeper/internal/domain/session"
	"taskkeeper/internal/domain/task"
)

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad input, not found, wrong password, not logged in).
	UserError = 1

	// ConfigError indicates a configuration or local storage error.
	ConfigError = 2

	// RemoteError indicates a remote store or network error.
	RemoteError = 3
)

// ConfigFailure marks errors that happen before any command logic runs.
type ConfigFailure struct {
	Err error
}

func (e *ConfigFailure) Error() string { return e.Err.Error() }

func (e *ConfigFailure) Unwrap() error { return e.Err }

// FromError maps a command error to its exit code.
func FromError(err error) int {
	var cfgErr *ConfigFailure

	switch {
	case err == nil:
		return Success
	case errors.As(err, &cfgErr):
		return ConfigError
	case object.IsRemote(err):
		return RemoteError
	case session.IsValidation(err),
		errors.Is(err, session.ErrUserNotFound),
		errors.Is(err, session.ErrIncorrectPassword),
		errors.Is(err, session.ErrNotAuthenticated),
		errors.Is(err, task.ErrNotFound),
		errors.Is(err, task.ErrNotOwned),
		errors.Is(err, object.ErrNotFound):
		return UserError
	case errors.Is(err, session.ErrMalformedRecord):
		return RemoteError
	default:
		return UserError
	}
}

package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"taskkeeper/internal/domain/object"
	"taskkeeper/internal/domain/session"
	"taskkeeper/internal/domain/task"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "validation", err: &session.ValidationError{Field: "password", Message: "passwords do not match"}, want: "passwords do not match"},
		{name: "user not found", err: session.ErrUserNotFound, want: "user not found"},
		{name: "incorrect password", err: session.ErrIncorrectPassword, want: "incorrect password"},
		{name: "task not found", err: fmt.Errorf("update: %w", task.ErrNotFound), want: "task not found"},
		{name: "remote", err: &object.RemoteError{Status: 503}, want: "request failed, try again"},
		{name: "load failed", err: fmt.Errorf("%w: %w", task.ErrLoadFailed, &object.RemoteError{}), want: "could not load tasks, try again"},
		{name: "attach", err: &task.AttachError{TaskID: "t1", Err: &object.RemoteError{Status: 500}}, want: "task t1 was created but not added to your list, run: taskkeeper sync"},
		{name: "other", err: errors.New("disk full"), want: "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

package exitcode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"taskkeeper/internal/domain/object"
	"taskkeeper/internal/domain/session"
	"taskkeeper/internal/domain/task"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: Success},
		{name: "validation", err: &session.ValidationError{Field: "password", Message: "passwords do not match"}, want: UserError},
		{name: "user not found", err: session.ErrUserNotFound, want: UserError},
		{name: "incorrect password", err: fmt.Errorf("login: %w", session.ErrIncorrectPassword), want: UserError},
		{name: "not logged in", err: session.ErrNotAuthenticated, want: UserError},
		{name: "task not owned", err: task.ErrNotOwned, want: UserError},
		{name: "remote", err: &object.RemoteError{Status: 500, Message: "internal"}, want: RemoteError},
		{name: "attach failure", err: &task.AttachError{TaskID: "t1", Err: &object.RemoteError{Status: 502}}, want: RemoteError},
		{name: "load failure", err: fmt.Errorf("%w: %w", task.ErrLoadFailed, &object.RemoteError{Message: "refused"}), want: RemoteError},
		{name: "config", err: &ConfigFailure{Err: errors.New("bad url")}, want: ConfigError},
		{name: "malformed record", err: session.ErrMalformedRecord, want: RemoteError},
		{name: "unknown", err: errors.New("boom"), want: UserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromError(tt.err))
		})
	}
}

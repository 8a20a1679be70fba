package task

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("task not found")
	ErrNotOwned     = errors.New("task does not belong to the current user")
	ErrLoadFailed   = errors.New("failed to load tasks")
	ErrAttachFailed = errors.New("task created but not attached to user")
)

// AttachError - задача создана в хранилище, но не добавлена в список пользователя
type AttachError struct {
	TaskID string
	Err    error
}

func (e *AttachError) Error() string {
	return fmt.Sprintf("%s: task %s: %v", ErrAttachFailed, e.TaskID, e.Err)
}

func (e *AttachError) Is(target error) bool {
	return target == ErrAttachFailed
}

func (e *AttachError) Unwrap() error {
	return e.Err
}

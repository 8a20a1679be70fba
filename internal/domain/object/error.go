package object

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("object not found")

// RemoteError - любой неуспешный ответ хранилища, кроме 404, или сбой транспорта (Status == 0)
type RemoteError struct {
	Status  int
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("remote store unavailable: %s", e.Message)
	}
	return fmt.Sprintf("remote store error (status %d): %s", e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsRemote сообщает, является ли err ошибкой удалённого хранилища
func IsRemote(err error) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr)
}

package objectstore

import "errors"

var (
	ErrNotFound    = errors.New("object not found")
	ErrInvalidData = errors.New("data must be a JSON object")
	ErrInvalidID   = errors.New("invalid object id")
)

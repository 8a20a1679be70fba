package api

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// errorBody повторяет формат ошибок api.restful-api.dev: {"error": "..."}
type errorBody struct {
	status  int
	Message string `json:"error"`
}

func (e *errorBody) Error() string {
	return e.Message
}

func (e *errorBody) GetStatus() int {
	return e.status
}

func newError(status int, msg string, errs ...error) huma.StatusError {
	details := make([]string, 0, len(errs)+1)
	details = append(details, msg)
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}

	return &errorBody{
		status:  status,
		Message: strings.Join(details, "; "),
	}
}

func init() {
	huma.NewError = newError
}

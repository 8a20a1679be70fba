package task

import (
	"fmt"

	"taskkeeper/internal/domain/object"
)

// Рекомендуемые состояния задачи; хранилище принимает любую строку
const (
	StatePending    = "pending"
	StateInProgress = "in-progress"
	StateDone       = "done"
)

var States = []string{StatePending, StateInProgress, StateDone}

type Task struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	State       string `json:"state" yaml:"state"`
}

// Data - содержимое поля data объекта задачи
type Data struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	State       string `json:"state"`
}

// FromObject строит задачу из объекта хранилища
func FromObject(obj object.Object) (Task, error) {
	var d Data
	if err := obj.DecodeData(&d); err != nil {
		return Task{}, fmt.Errorf("decode task %s: %w", obj.ID, err)
	}
	return Task{
		ID:          obj.ID,
		Title:       d.Title,
		Description: d.Description,
		State:       d.State,
	}, nil
}

package task

import "time"

const KindAttachTask = "attach-task"

// Intent - начатая, но не завершённая двухшаговая операция
type Intent struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	SessionID string    `json:"session_id"`
	TaskID    string    `json:"task_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Journal - локальный журнал намерений
type Journal interface {
	Add(intent Intent) error
	List() ([]Intent, error)
	Remove(id string) error
}

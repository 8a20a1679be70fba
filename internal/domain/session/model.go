package session

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Ключи атрибутов пользователя внутри data
const (
	keyEmail    = "email"
	keyPassword = "password"
	keyAddress  = "address"
	keyTasks    = "tasks"
)

// Session - текущий пользователь, закэшированная копия удалённой записи
type Session struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Data Data   `json:"data"`
}

// Data - атрибуты пользователя. Password хранит bcrypt-хэш.
// Неизвестные атрибуты сохраняются в Extra и возвращаются в хранилище как есть.
type Data struct {
	Email    string
	Password string
	Address  string
	Tasks    []string
	Extra    map[string]any
}

// HasTask проверяет, принадлежит ли задача пользователю
func (s Session) HasTask(taskID string) bool {
	return slices.Contains(s.Data.Tasks, taskID)
}

// WithTask возвращает копию сессии с добавленной задачей
func (s Session) WithTask(taskID string) Session {
	out := s.clone()
	if !out.HasTask(taskID) {
		out.Data.Tasks = append(out.Data.Tasks, taskID)
	}
	return out
}

// WithoutTask возвращает копию сессии без указанной задачи
func (s Session) WithoutTask(taskID string) Session {
	out := s.clone()
	out.Data.Tasks = slices.DeleteFunc(out.Data.Tasks, func(id string) bool {
		return id == taskID
	})
	return out
}

// WithTasks возвращает копию сессии с заменённым списком задач
func (s Session) WithTasks(tasks []string) Session {
	out := s.clone()
	out.Data.Tasks = append([]string{}, tasks...)
	return out
}

func (s Session) clone() Session {
	out := s
	out.Data.Tasks = append([]string{}, s.Data.Tasks...)
	if s.Data.Extra != nil {
		out.Data.Extra = make(map[string]any, len(s.Data.Extra))
		for k, v := range s.Data.Extra {
			out.Data.Extra[k] = v
		}
	}
	return out
}

func (d Data) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(d.Extra)+4)
	for k, v := range d.Extra {
		m[k] = v
	}
	m[keyEmail] = d.Email
	m[keyPassword] = d.Password
	m[keyAddress] = d.Address

	tasks := d.Tasks
	if tasks == nil {
		tasks = []string{}
	}
	m[keyTasks] = tasks

	return json.Marshal(m)
}

func (d *Data) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var out Data
	for key, value := range raw {
		var err error
		switch key {
		case keyEmail:
			err = unmarshalString(value, &out.Email)
		case keyPassword:
			err = unmarshalString(value, &out.Password)
		case keyAddress:
			err = unmarshalString(value, &out.Address)
		case keyTasks:
			err = unmarshalTasks(value, &out.Tasks)
		default:
			var v any
			if err = json.Unmarshal(value, &v); err == nil {
				if out.Extra == nil {
					out.Extra = make(map[string]any)
				}
				out.Extra[key] = v
			}
		}
		if err != nil {
			return fmt.Errorf("decode %q: %w", key, err)
		}
	}
	if out.Tasks == nil {
		out.Tasks = []string{}
	}

	*d = out
	return nil
}

func unmarshalString(b json.RawMessage, dst *string) error {
	if string(b) == "null" {
		return nil
	}
	return json.Unmarshal(b, dst)
}

func unmarshalTasks(b json.RawMessage, dst *[]string) error {
	if string(b) == "null" {
		*dst = []string{}
		return nil
	}
	return json.Unmarshal(b, dst)
}

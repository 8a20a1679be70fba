package object

import (
	"encoding/json"
	"time"
)

// Object - запись коллекции /objects в том виде, в котором её отдаёт хранилище
type Object struct {
	ID        string          `json:"id"`
	Name      string          `json:"name,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	CreatedAt *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}

// Body - тело запросов POST/PUT/PATCH
type Body struct {
	Name string `json:"name,omitempty"`
	Data any    `json:"data,omitempty"`
}

// DecodeData разбирает поле data в dst
func (o Object) DecodeData(dst any) error {
	if len(o.Data) == 0 || string(o.Data) == "null" {
		return nil
	}
	return json.Unmarshal(o.Data, dst)
}

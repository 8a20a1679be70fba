package objects

import "time"

type listInput struct {
	IDs []string `query:"id,explode" doc:"Вернуть только объекты с указанными id"`
}

type listOutput struct {
	Body []objectResponse
}

type findInput struct {
	ID string `path:"id" example:"ff8081819782e69e019c0ad2b1e3512a" doc:"ID объекта"`
}

type createInput struct {
	Body objectRequest
}

type replaceInput struct {
	ID   string `path:"id" doc:"ID объекта"`
	Body objectRequest
}

type patchInput struct {
	ID   string `path:"id" doc:"ID объекта"`
	Body patchRequest
}

type output struct {
	Body objectResponse
}

type deleteOutput struct {
	Body deleteResponse
}

type objectRequest struct {
	Name string `json:"name,omitempty" maxLength:"256" doc:"Имя объекта"`
	Data any    `json:"data,omitempty" doc:"Произвольный JSON-объект атрибутов"`
}

type patchRequest struct {
	Name *string `json:"name,omitempty" maxLength:"256" doc:"Новое имя объекта"`
	Data any     `json:"data,omitempty" doc:"Атрибуты, которые нужно добавить или заменить"`
}

type objectResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name,omitempty"`
	Data      any        `json:"data,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type deleteResponse struct {
	Message string `json:"message"`
}

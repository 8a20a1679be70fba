package objects

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const basePath = "/objects"

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "objects-list",
		Method:      http.MethodGet,
		Path:        basePath,
		Summary:     "Список объектов",
		Description: "Все объекты или только перечисленные в ?id=a&id=b. Несуществующие id пропускаются.",
		Tags:        []string{"objects"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "objects-find",
		Method:      http.MethodGet,
		Path:        basePath + "/{id}",
		Summary:     "Получить объект",
		Tags:        []string{"objects"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "objects-create",
		Method:        http.MethodPost,
		Path:          basePath,
		Summary:       "Создать объект",
		Tags:          []string{"objects"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) replaceOp() huma.Operation {
	return huma.Operation{
		OperationID: "objects-replace",
		Method:      http.MethodPut,
		Path:        basePath + "/{id}",
		Summary:     "Заменить объект целиком",
		Tags:        []string{"objects"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) patchOp() huma.Operation {
	return huma.Operation{
		OperationID: "objects-patch",
		Method:      http.MethodPatch,
		Path:        basePath + "/{id}",
		Summary:     "Частично обновить объект",
		Description: "Ключи data сливаются с сохранёнными, name меняется только если передан.",
		Tags:        []string{"objects"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "objects-delete",
		Method:      http.MethodDelete,
		Path:        basePath + "/{id}",
		Summary:     "Удалить объект",
		Tags:        []string{"objects"},
		Middlewares: h.middleware,
	}
}

package objects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"taskkeeper/internal/domain/object"
	"taskkeeper/internal/domain/objectstore"
)

type Handler struct {
	service    objectstore.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service objectstore.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "objects_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.replaceOp(), h.replace)
	huma.Register(api, h.patchOp(), h.patch)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	objs, err := h.service.List(ctx, input.IDs)
	if err != nil {
		return nil, h.toHTTPError("", err)
	}

	body := make([]objectResponse, 0, len(objs))
	for _, obj := range objs {
		resp, err := toResponse(obj)
		if err != nil {
			return nil, h.toHTTPError(obj.ID, err)
		}
		body = append(body, resp)
	}

	return &listOutput{Body: body}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*output, error) {
	obj, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, h.toHTTPError(input.ID, err)
	}
	return h.output(obj)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	data, err := rawData(input.Body.Data)
	if err != nil {
		return nil, h.toHTTPError("", err)
	}

	obj, err := h.service.Create(ctx, input.Body.Name, data)
	if err != nil {
		return nil, h.toHTTPError("", err)
	}
	return h.output(obj)
}

func (h *Handler) replace(ctx context.Context, input *replaceInput) (*output, error) {
	data, err := rawData(input.Body.Data)
	if err != nil {
		return nil, h.toHTTPError(input.ID, err)
	}

	obj, err := h.service.Replace(ctx, input.ID, input.Body.Name, data)
	if err != nil {
		return nil, h.toHTTPError(input.ID, err)
	}
	return h.output(obj)
}

func (h *Handler) patch(ctx context.Context, input *patchInput) (*output, error) {
	data, err := rawData(input.Body.Data)
	if err != nil {
		return nil, h.toHTTPError(input.ID, err)
	}

	obj, err := h.service.Patch(ctx, input.ID, input.Body.Name, data)
	if err != nil {
		return nil, h.toHTTPError(input.ID, err)
	}
	return h.output(obj)
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, h.toHTTPError(input.ID, err)
	}

	return &deleteOutput{
		Body: deleteResponse{
			Message: fmt.Sprintf("Object with id = %s has been deleted.", input.ID),
		},
	}, nil
}

func (h *Handler) output(obj object.Object) (*output, error) {
	resp, err := toResponse(obj)
	if err != nil {
		return nil, h.toHTTPError(obj.ID, err)
	}
	return &output{Body: resp}, nil
}

func (h *Handler) toHTTPError(id string, err error) error {
	switch {
	case errors.Is(err, objectstore.ErrNotFound):
		return huma.Error404NotFound(fmt.Sprintf("Object with id=%s was not found.", id))
	case errors.Is(err, objectstore.ErrInvalidData), errors.Is(err, objectstore.ErrInvalidID):
		return huma.Error400BadRequest(err.Error())
	default:
		h.log.Error("request failed", "id", id, "error", err)
		return huma.Error500InternalServerError("internal error")
	}
}

func rawData(data any) (json.RawMessage, error) {
	if data == nil {
		return nil, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, objectstore.ErrInvalidData
	}
	return raw, nil
}

func toResponse(obj object.Object) (objectResponse, error) {
	resp := objectResponse{
		ID:        obj.ID,
		Name:      obj.Name,
		CreatedAt: obj.CreatedAt,
		UpdatedAt: obj.UpdatedAt,
	}
	if err := obj.DecodeData(&resp.Data); err != nil {
		return objectResponse{}, fmt.Errorf("decode data of %s: %w", obj.ID, err)
	}
	return resp, nil
}

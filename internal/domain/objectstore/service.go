package objectstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"taskkeeper/internal/domain/object"
)

type Servicer interface {
	List(ctx context.Context, ids []string) ([]object.Object, error)
	Get(ctx context.Context, id string) (object.Object, error)
	Create(ctx context.Context, name string, data json.RawMessage) (object.Object, error)
	Replace(ctx context.Context, id, name string, data json.RawMessage) (object.Object, error)
	Patch(ctx context.Context, id string, name *string, data json.RawMessage) (object.Object, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo  Repository
	log   *slog.Logger
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		log:   log.With("component", "object_service"),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (s *Service) List(ctx context.Context, ids []string) ([]object.Object, error) {
	objs, err := s.repo.List(ctx, ids)
	if err != nil {
		s.log.Error("failed to list objects", "ids", len(ids), "error", err)
		return nil, fmt.Errorf("list objects: %w", err)
	}
	return objs, nil
}

func (s *Service) Get(ctx context.Context, id string) (object.Object, error) {
	if err := validateID(id); err != nil {
		return object.Object{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, name string, data json.RawMessage) (object.Object, error) {
	data, err := normalizeData(data)
	if err != nil {
		return object.Object{}, err
	}

	now := s.now()
	obj := object.Object{
		ID:        s.newID(),
		Name:      name,
		Data:      data,
		CreatedAt: &now,
	}

	created, err := s.repo.Insert(ctx, obj)
	if err != nil {
		s.log.Error("failed to create object", "error", err)
		return object.Object{}, fmt.Errorf("create object: %w", err)
	}

	s.log.Debug("object created", "id", created.ID)
	return created, nil
}

// Replace заменяет name и data целиком
func (s *Service) Replace(ctx context.Context, id, name string, data json.RawMessage) (object.Object, error) {
	if err := validateID(id); err != nil {
		return object.Object{}, err
	}
	data, err := normalizeData(data)
	if err != nil {
		return object.Object{}, err
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return object.Object{}, err
	}

	now := s.now()
	current.Name = name
	current.Data = data
	current.UpdatedAt = &now

	return s.update(ctx, current)
}

// Patch меняет name, если он передан, и сливает ключи верхнего уровня data
func (s *Service) Patch(ctx context.Context, id string, name *string, data json.RawMessage) (object.Object, error) {
	if err := validateID(id); err != nil {
		return object.Object{}, err
	}
	patch, err := normalizeData(data)
	if err != nil {
		return object.Object{}, err
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return object.Object{}, err
	}

	if name != nil {
		current.Name = *name
	}
	if patch != nil {
		merged, err := mergeData(current.Data, patch)
		if err != nil {
			return object.Object{}, err
		}
		current.Data = merged
	}

	now := s.now()
	current.UpdatedAt = &now

	return s.update(ctx, current)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error("failed to delete object", "id", id, "error", err)
		}
		return err
	}

	s.log.Debug("object deleted", "id", id)
	return nil
}

func (s *Service) update(ctx context.Context, obj object.Object) (object.Object, error) {
	updated, err := s.repo.Update(ctx, obj)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error("failed to update object", "id", obj.ID, "error", err)
		}
		return object.Object{}, err
	}
	return updated, nil
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidID
	}
	return nil
}

// normalizeData принимает только JSON-объект или null; null и пустое значение дают nil
func normalizeData(data json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, ErrInvalidData
	}
	return json.RawMessage(trimmed), nil
}

func mergeData(current, patch json.RawMessage) (json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	if len(current) > 0 {
		if err := json.Unmarshal(current, &fields); err != nil {
			return nil, fmt.Errorf("decode stored data: %w", err)
		}
	}

	var changes map[string]json.RawMessage
	if err := json.Unmarshal(patch, &changes); err != nil {
		return nil, ErrInvalidData
	}
	for k, v := range changes {
		fields[k] = v
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode merged data: %w", err)
	}
	return merged, nil
}

package objectstore

import (
	"context"

	"taskkeeper/internal/domain/object"
)

// Repository - постоянное хранилище объектов
type Repository interface {
	// List возвращает объекты в порядке создания; при непустом ids - только найденные из ids
	List(ctx context.Context, ids []string) ([]object.Object, error)
	Get(ctx context.Context, id string) (object.Object, error)
	Insert(ctx context.Context, obj object.Object) (object.Object, error)
	// Update перезаписывает name, data и updatedAt существующего объекта
	Update(ctx context.Context, obj object.Object) (object.Object, error)
	Delete(ctx context.Context, id string) error
}

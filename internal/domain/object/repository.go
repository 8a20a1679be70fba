package object

import "context"

// Repository - CRUD над одной коллекцией удалённого хранилища объектов
type Repository interface {
	Create(ctx context.Context, name string, data any) (Object, error)
	Get(ctx context.Context, id string) (Object, error)
	// GetMany возвращает существующие объекты из ids; порядок не гарантирован
	GetMany(ctx context.Context, ids []string) ([]Object, error)
	Replace(ctx context.Context, id, name string, data any) (Object, error)
	Patch(ctx context.Context, id string, data any) (Object, error)
	Delete(ctx context.Context, id string) error
}

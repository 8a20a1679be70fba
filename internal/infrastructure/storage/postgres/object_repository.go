package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"taskkeeper/internal/domain/object"
	"taskkeeper/internal/domain/objectstore"
)

type ObjectRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

var _ objectstore.Repository = (*ObjectRepository)(nil)

func NewObjectRepository(pool *pgxpool.Pool, log *slog.Logger) *ObjectRepository {
	return &ObjectRepository{
		pool: pool,
		log:  log.With("component", "object_repository"),
	}
}

func (r *ObjectRepository) List(ctx context.Context, ids []string) ([]object.Object, error) {
	query := `
		SELECT id, name, data, created_at, updated_at
		FROM objects
		ORDER BY seq`
	args := []any{}

	if len(ids) > 0 {
		query = `
			SELECT id, name, data, created_at, updated_at
			FROM objects
			WHERE id = ANY($1)
			ORDER BY seq`
		args = append(args, ids)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list objects", "error", err)
		return nil, fmt.Errorf("list objects: %w", err)
	}
	defer rows.Close()

	objs := []object.Object{}
	for rows.Next() {
		obj, err := scanObject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan object: %w", err)
		}
		objs = append(objs, obj)
	}

	return objs, rows.Err()
}

func (r *ObjectRepository) Get(ctx context.Context, id string) (object.Object, error) {
	const query = `
		SELECT id, name, data, created_at, updated_at
		FROM objects
		WHERE id = $1`

	obj, err := scanObject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return object.Object{}, objectstore.ErrNotFound
		}
		r.log.Error("failed to get object", "id", id, "error", err)
		return object.Object{}, fmt.Errorf("get object: %w", err)
	}

	return obj, nil
}

func (r *ObjectRepository) Insert(ctx context.Context, obj object.Object) (object.Object, error) {
	const query = `
		INSERT INTO objects (id, name, data, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, data, created_at, updated_at`

	created, err := scanObject(r.pool.QueryRow(ctx, query,
		obj.ID, obj.Name, nullableJSON(obj.Data), timeOrNow(obj.CreatedAt),
	))
	if err != nil {
		r.log.Error("failed to insert object", "id", obj.ID, "error", err)
		return object.Object{}, fmt.Errorf("insert object: %w", err)
	}

	return created, nil
}

func (r *ObjectRepository) Update(ctx context.Context, obj object.Object) (object.Object, error) {
	const query = `
		UPDATE objects
		SET name = $2, data = $3, updated_at = $4
		WHERE id = $1
		RETURNING id, name, data, created_at, updated_at`

	updated, err := scanObject(r.pool.QueryRow(ctx, query,
		obj.ID, obj.Name, nullableJSON(obj.Data), timeOrNow(obj.UpdatedAt),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return object.Object{}, objectstore.ErrNotFound
		}
		r.log.Error("failed to update object", "id", obj.ID, "error", err)
		return object.Object{}, fmt.Errorf("update object: %w", err)
	}

	return updated, nil
}

func (r *ObjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM objects WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete object", "id", id, "error", err)
		return fmt.Errorf("delete object: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return objectstore.ErrNotFound
	}
	return nil
}

func (r *ObjectRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func scanObject(row pgx.Row) (object.Object, error) {
	var (
		obj       object.Object
		data      []byte
		createdAt time.Time
		updatedAt *time.Time
	)

	if err := row.Scan(&obj.ID, &obj.Name, &data, &createdAt, &updatedAt); err != nil {
		return object.Object{}, err
	}

	if len(data) > 0 {
		obj.Data = data
	}
	createdAt = createdAt.UTC()
	obj.CreatedAt = &createdAt
	if updatedAt != nil {
		u := updatedAt.UTC()
		obj.UpdatedAt = &u
	}

	return obj, nil
}

// nullableJSON передаёт пустой data как SQL NULL
func nullableJSON(data []byte) any {
	if len(data) == 0 {
		return nil
	}
	return string(data)
}

func timeOrNow(t *time.Time) time.Time {
	if t == nil {
		return time.Now().UTC()
	}
	return *t
}

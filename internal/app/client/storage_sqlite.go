package client

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"taskkeeper/internal/domain/session"
	"taskkeeper/internal/domain/task"
)

// SQLiteStorage хранит сессию (таблица kv) и журнал намерений (таблица intents)
type SQLiteStorage struct {
	db *sql.DB
}

var (
	_ session.Storage = (*SQLiteStorage)(nil)
	_ task.Journal    = (*SQLiteStorage)(nil)
)

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("ошибка создания директории данных: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	// Создаем таблицы
	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS intents (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			session_id TEXT NOT NULL,
			task_id TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_intents_session ON intents(session_id);
	`)

	return err
}

func (s *SQLiteStorage) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("ошибка чтения ключа %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStorage) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("ошибка записи ключа %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("ошибка удаления ключа %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) Add(intent task.Intent) error {
	_, err := s.db.Exec(`
		INSERT INTO intents (id, kind, session_id, task_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, intent.ID, intent.Kind, intent.SessionID, intent.TaskID, intent.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("ошибка записи намерения: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) List() ([]task.Intent, error) {
	rows, err := s.db.Query(`
		SELECT id, kind, session_id, task_id, created_at
		FROM intents
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer rows.Close()

	intents := []task.Intent{}
	for rows.Next() {
		var in task.Intent
		if err := rows.Scan(&in.ID, &in.Kind, &in.SessionID, &in.TaskID, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования намерения: %w", err)
		}
		intents = append(intents, in)
	}

	return intents, rows.Err()
}

func (s *SQLiteStorage) Remove(id string) error {
	if _, err := s.db.Exec("DELETE FROM intents WHERE id = ?", id); err != nil {
		return fmt.Errorf("ошибка удаления намерения: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

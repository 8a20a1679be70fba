package session

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slog"
)

// StorageKey - ключ, под которым хранится текущая сессия
const StorageKey = "userSession"

// Cache хранит одну сериализованную сессию под фиксированным ключом
type Cache struct {
	storage Storage
	log     *slog.Logger
}

func NewCache(storage Storage, log *slog.Logger) *Cache {
	return &Cache{
		storage: storage,
		log:     log.With("component", "session_cache"),
	}
}

func (c *Cache) Save(s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := c.storage.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	return nil
}

func (c *Cache) Load() (Session, bool) {
	value, ok, err := c.storage.Get(StorageKey)
	if err != nil {
		c.log.Warn("failed to read session", "error", err)
		return Session{}, false
	}
	if !ok {
		return Session{}, false
	}

	var s Session
	if err := json.Unmarshal([]byte(value), &s); err != nil {
		c.log.Debug("stored session is malformed", "error", err)
		return Session{}, false
	}
	if s.ID == "" {
		c.log.Debug("stored session has no id")
		return Session{}, false
	}

	return s, true
}

func (c *Cache) Clear() error {
	if err := c.storage.Delete(StorageKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

package session

// Storage - key/value область хранения (аналог localStorage)
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Store - локальный кэш текущей сессии
type Store interface {
	Save(s Session) error
	// Load возвращает false, если сессии нет или её не удалось разобрать
	Load() (Session, bool)
	Clear() error
}

package session

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"taskkeeper/internal/domain/object"
)

type Servicer interface {
	Register(ctx context.Context, req RegisterRequest) (Session, error)
	Login(ctx context.Context, id, password string) (Session, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	Logout() error
	IsAuthenticated() bool
	Current() (Session, error)
	Refresh(ctx context.Context) (Session, error)
	Replace(s Session) error
}

type Service struct {
	repo      object.Repository
	store     Store
	validator Validator
	log       *slog.Logger
	hashCost  int
}

func NewService(repo object.Repository, store Store, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		store:     store,
		validator: validator,
		log:       log.With("component", "session_service"),
		hashCost:  bcrypt.DefaultCost,
	}
}

// Register создаёт пользователя в хранилище и сохраняет его как текущую сессию.
// Если запись создана, а сессия не сохранилась, возвращается и сессия, и ошибка.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (Session, error) {
	if err := s.validator.ValidateRegister(req); err != nil {
		s.log.Debug("validation failed", "error", err)
		return Session{}, err
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return Session{}, err
	}

	data := Data{
		Email:    req.Email,
		Password: hash,
		Address:  req.Address,
		Tasks:    []string{},
		Extra:    req.Extra,
	}

	obj, err := s.repo.Create(ctx, req.Name, data)
	if err != nil {
		s.log.Error("failed to create user", "error", err)
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	sess, err := FromObject(obj)
	if err != nil {
		return Session{}, err
	}

	if err := s.store.Save(sess); err != nil {
		s.log.Warn("user registered but session not cached", "user_id", sess.ID, "error", err)
		return sess, fmt.Errorf("save session for user %s: %w", sess.ID, err)
	}

	s.log.Info("user registered", "user_id", sess.ID)
	return sess, nil
}

// Login проверяет пароль пользователя id и кэширует его запись
func (s *Service) Login(ctx context.Context, id, password string) (Session, error) {
	if err := s.validator.ValidateID(id); err != nil {
		return Session{}, err
	}

	sess, err := s.fetch(ctx, id)
	if err != nil {
		if errors.Is(err, ErrMalformedRecord) {
			return Session{}, ErrIncorrectPassword
		}
		return Session{}, err
	}

	if !s.checkPassword(sess.Data.Password, password) {
		s.log.Debug("password mismatch", "user_id", id)
		return Session{}, ErrIncorrectPassword
	}

	if err := s.store.Save(sess); err != nil {
		return Session{}, err
	}

	s.log.Info("user logged in", "user_id", id)
	return sess, nil
}

// ChangePassword меняет пароль, сохраняя остальные атрибуты пользователя
func (s *Service) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return &ValidationError{Field: "confirm_password", Message: "new passwords do not match"}
	}
	if err := s.validator.ValidateID(req.ID); err != nil {
		return err
	}
	if err := s.validator.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	sess, err := s.fetch(ctx, req.ID)
	if err != nil {
		if errors.Is(err, ErrMalformedRecord) {
			return ErrIncorrectPassword
		}
		return err
	}

	if !s.checkPassword(sess.Data.Password, req.OldPassword) {
		return ErrIncorrectPassword
	}

	hash, err := s.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	data := sess.clone().Data
	data.Password = hash

	obj, err := s.repo.Patch(ctx, req.ID, data)
	if err != nil {
		s.log.Error("failed to update password", "user_id", req.ID, "error", err)
		return fmt.Errorf("update password: %w", err)
	}

	if cached, ok := s.store.Load(); ok && cached.ID == req.ID {
		updated, err := FromObject(obj)
		if err != nil {
			s.log.Warn("patched record is malformed, keeping cached session", "error", err)
			return nil
		}
		if err := s.store.Save(updated); err != nil {
			return err
		}
	}

	s.log.Info("password changed", "user_id", req.ID)
	return nil
}

func (s *Service) Logout() error {
	return s.store.Clear()
}

func (s *Service) IsAuthenticated() bool {
	_, ok := s.store.Load()
	return ok
}

func (s *Service) Current() (Session, error) {
	sess, ok := s.store.Load()
	if !ok {
		return Session{}, ErrNotAuthenticated
	}
	return sess, nil
}

// Refresh перечитывает запись текущего пользователя из хранилища
func (s *Service) Refresh(ctx context.Context) (Session, error) {
	cur, err := s.Current()
	if err != nil {
		return Session{}, err
	}

	sess, err := s.fetch(ctx, cur.ID)
	if err != nil {
		return Session{}, err
	}

	if err := s.store.Save(sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Replace заменяет закэшированную сессию
func (s *Service) Replace(sess Session) error {
	return s.store.Save(sess)
}

func (s *Service) fetch(ctx context.Context, id string) (Session, error) {
	obj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return Session{}, ErrUserNotFound
		}
		s.log.Error("failed to get user", "user_id", id, "error", err)
		return Session{}, fmt.Errorf("get user: %w", err)
	}

	return FromObject(obj)
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *Service) checkPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// FromObject строит сессию из объекта хранилища
func FromObject(obj object.Object) (Session, error) {
	sess := Session{ID: obj.ID, Name: obj.Name}
	if err := obj.DecodeData(&sess.Data); err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if sess.Data.Tasks == nil {
		sess.Data.Tasks = []string{}
	}
	return sess, nil
}

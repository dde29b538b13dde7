package service

import (
	"context"

	"github.com/agreetime/agreetime-backend/internal/domain/entity"
)

type UserStorage interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	GetMany(ctx context.Context, ids []string) ([]entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	GetSettings(ctx context.Context, userID string) (*entity.UserSettings, error)
	SaveSettings(ctx context.Context, settings *entity.UserSettings) (*entity.UserSettings, error)
}

// UpdateSettingsInput carries the fields a user may change. Nil pointers
// leave the current value untouched.
type UpdateSettingsInput struct {
	NotificationsEnabled *bool
	Language             *string
}

type UserService struct {
	storage UserStorage
}

func NewUserService(storage UserStorage) *UserService {
	return &UserService{
		storage: storage,
	}
}

func (s *UserService) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	return s.storage.Create(ctx, user)
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.storage.Get(ctx, id)
}

func (s *UserService) GetMany(ctx context.Context, ids []string) ([]entity.User, error) {
	return s.storage.GetMany(ctx, ids)
}

func (s *UserService) GetSettings(ctx context.Context, userID string) (*entity.UserSettings, error) {
	return s.storage.GetSettings(ctx, userID)
}

func (s *UserService) UpdateSettings(ctx context.Context, userID string, input UpdateSettingsInput) (*entity.UserSettings, error) {
	settings, err := s.storage.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if input.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *input.NotificationsEnabled
	}
	if input.Language != nil {
		settings.Language = *input.Language
	}
	return s.storage.SaveSettings(ctx, settings)
}

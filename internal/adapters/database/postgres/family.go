package postgres

import (
	"context"
	"errors"

	"github.com/agreetime/agreetime-backend/internal/domain/common/errorz"
	"github.com/agreetime/agreetime-backend/internal/domain/entity"
	"gorm.io/gorm"
)

type FamilyStorage struct {
	db *gorm.DB
}

func NewFamilyStorage(db *gorm.DB) *FamilyStorage {
	return &FamilyStorage{
		db: db,
	}
}

func (s *FamilyStorage) Create(ctx context.Context, family *entity.Family) (*entity.Family, error) {
	err := s.db.WithContext(ctx).Create(&family).Error
	return family, err
}

func (s *FamilyStorage) Get(ctx context.Context, id string) (*entity.Family, error) {
	var family entity.Family
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&family).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.NotFound
	}
	return &family, err
}

func (s *FamilyStorage) GetMembers(ctx context.Context, familyID string) ([]entity.User, error) {
	var users []entity.User
	err := s.db.WithContext(ctx).Where("family_id = ?", familyID).Find(&users).Error
	return users, err
}

package service

import (
	"context"

	"github.com/agreetime/agreetime-backend/internal/domain/entity"
)

type FamilyStorage interface {
	Create(ctx context.Context, family *entity.Family) (*entity.Family, error)
	Get(ctx context.Context, id string) (*entity.Family, error)
	GetMembers(ctx context.Context, familyID string) ([]entity.User, error)
}

type FamilyService struct {
	storage FamilyStorage
}

func NewFamilyService(storage FamilyStorage) *FamilyService {
	return &FamilyService{
		storage: storage,
	}
}

func (s *FamilyService) Create(ctx context.Context, family *entity.Family) (*entity.Family, error) {
	return s.storage.Create(ctx, family)
}

func (s *FamilyService) Get(ctx context.Context, id string) (*entity.Family, error) {
	return s.storage.Get(ctx, id)
}

func (s *FamilyService) GetMembers(ctx context.Context, familyID string) ([]entity.User, error) {
	return s.storage.GetMembers(ctx, familyID)
}

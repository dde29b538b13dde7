package postgres

import (
	"context"
	"errors"

	"github.com/agreetime/agreetime-backend/internal/domain/common/errorz"
	"github.com/agreetime/agreetime-backend/internal/domain/entity"
	"gorm.io/gorm"
)

type CommentStorage struct {
	db *gorm.DB
}

func NewCommentStorage(db *gorm.DB) *CommentStorage {
	return &CommentStorage{
		db: db,
	}
}

func (s *CommentStorage) Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error) {
	err := s.db.WithContext(ctx).Create(&comment).Error
	return comment, err
}

func (s *CommentStorage) Get(ctx context.Context, id string) (*entity.Comment, error) {
	var comment entity.Comment
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.NotFound
	}
	return &comment, err
}

func (s *CommentStorage) GetByEventID(ctx context.Context, eventID string) ([]entity.Comment, error) {
	var comments []entity.Comment
	err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at").
		Find(&comments).Error
	return comments, err
}

func (s *CommentStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Comment{}).Error
}

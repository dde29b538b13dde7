package service

import (
	"context"
	"strings"

	"github.com/agreetime/agreetime-backend/internal/domain/common/errorz"
	"github.com/agreetime/agreetime-backend/internal/domain/entity"
)

type CommentStorage interface {
	Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error)
	Get(ctx context.Context, id string) (*entity.Comment, error)
	GetByEventID(ctx context.Context, eventID string) ([]entity.Comment, error)
	Delete(ctx context.Context, id string) error
}

type commentEventStorage interface {
	Get(ctx context.Context, id string) (*entity.Event, error)
}

type CommentService struct {
	storage      CommentStorage
	eventStorage commentEventStorage
}

func NewCommentService(storage CommentStorage, eventStorage commentEventStorage) *CommentService {
	return &CommentService{
		storage:      storage,
		eventStorage: eventStorage,
	}
}

func (s *CommentService) Create(ctx context.Context, eventID, authorID, content string) (*entity.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errorz.Validation("comment content required")
	}
	if _, err := s.eventStorage.Get(ctx, eventID); err != nil {
		return nil, err
	}
	return s.storage.Create(ctx, &entity.Comment{
		EventID:  eventID,
		AuthorID: authorID,
		Content:  content,
	})
}

func (s *CommentService) GetByEventID(ctx context.Context, eventID string) ([]entity.Comment, error) {
	return s.storage.GetByEventID(ctx, eventID)
}

// Delete removes a comment if the actor is allowed to. Only the comment's
// author and the creator of its event may delete it.
func (s *CommentService) Delete(ctx context.Context, commentID, actorID string) error {
	comment, err := s.storage.Get(ctx, commentID)
	if err != nil {
		return err
	}
	event, err := s.eventStorage.Get(ctx, comment.EventID)
	if err != nil {
		return err
	}
	if !CanDeleteComment(actorID, comment, event) {
		return errorz.Forbidden
	}
	return s.storage.Delete(ctx, commentID)
}

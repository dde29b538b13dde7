package service

import "github.com/agreetime/agreetime-backend/internal/domain/entity"

// CanDeleteComment reports whether the actor may delete the comment:
// either its author or the creator of the event it belongs to.
func CanDeleteComment(actorID string, comment *entity.Comment, event *entity.Event) bool {
	if actorID == comment.AuthorID {
		return true
	}
	return event.CreatorID != nil && *event.CreatorID == actorID
}

// CanDeleteAttachment follows the same rule as CanDeleteComment with the
// uploader in place of the author.
func CanDeleteAttachment(actorID string, attachment *entity.Attachment, event *entity.Event) bool {
	if attachment.UploaderID != nil && *attachment.UploaderID == actorID {
		return true
	}
	return event.CreatorID != nil && *event.CreatorID == actorID
}

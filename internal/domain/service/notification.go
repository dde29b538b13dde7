package service

import (
	"context"
	"fmt"

	"github.com/agreetime/agreetime-backend/internal/adapters/logger"
	"github.com/agreetime/agreetime-backend/internal/domain/entity"
)

type NotificationStorage interface {
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
	GetByRecipient(ctx context.Context, recipientID string) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id, recipientID string) error
}

type notificationUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
	GetSettings(ctx context.Context, userID string) (*entity.UserSettings, error)
}

type notificationPublisher interface {
	Publish(ctx context.Context, notification *entity.Notification) error
}

type notificationSMTPClient interface {
	SendApprovalRequest(to, eventTitle string)
}

// NotificationService persists notifications and hands them to the
// delivery side (redis channel, e-mail). Everything here is
// fire-and-forget: delivery problems are logged, never propagated, so a
// flaky mail server cannot fail an event mutation.
type NotificationService struct {
	logger *logger.Logger

	storage     NotificationStorage
	userStorage notificationUserStorage
	publisher   notificationPublisher
	smtpClient  notificationSMTPClient
}

func NewNotificationService(
	logger *logger.Logger,
	storage NotificationStorage,
	userStorage notificationUserStorage,
	publisher notificationPublisher,
	smtpClient notificationSMTPClient,
) *NotificationService {
	return &NotificationService{
		logger: logger,

		storage:     storage,
		userStorage: userStorage,
		publisher:   publisher,
		smtpClient:  smtpClient,
	}
}

func (s *NotificationService) EventCreated(ctx context.Context, event *entity.Event, participantIDs []string) {
	message := fmt.Sprintf("%q was added to your family calendar", event.Title)
	for _, userID := range participantIDs {
		s.send(ctx, userID, event, entity.NotificationTypeEventCreated, message)
	}
}

func (s *NotificationService) ApprovalRequested(ctx context.Context, event *entity.Event, approverIDs []string) {
	message := fmt.Sprintf("%q is waiting for your approval", event.Title)
	for _, userID := range approverIDs {
		s.send(ctx, userID, event, entity.NotificationTypeApprovalRequest, message)
		s.sendApprovalEmail(ctx, userID, event)
	}
}

func (s *NotificationService) ApprovalResult(ctx context.Context, event *entity.Event) {
	if event.CreatorID == nil {
		return
	}

	var message string
	switch event.Status {
	case entity.EventStatusConfirmed:
		message = fmt.Sprintf("%q was confirmed by all approvers", event.Title)
	case entity.EventStatusCancelled:
		message = fmt.Sprintf("%q was not approved and has been cancelled", event.Title)
	default:
		return
	}

	s.send(ctx, *event.CreatorID, event, entity.NotificationTypeApprovalResult, message)
}

func (s *NotificationService) EventCancelled(ctx context.Context, event *entity.Event, participantIDs []string) {
	message := fmt.Sprintf("%q has been cancelled", event.Title)
	for _, userID := range participantIDs {
		s.send(ctx, userID, event, entity.NotificationTypeEventCancelled, message)
	}
}

func (s *NotificationService) GetByRecipient(ctx context.Context, recipientID string) ([]entity.Notification, error) {
	return s.storage.GetByRecipient(ctx, recipientID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, recipientID string) error {
	return s.storage.MarkRead(ctx, id, recipientID)
}

func (s *NotificationService) send(ctx context.Context, recipientID string, event *entity.Event, notificationType entity.NotificationType, message string) {
	settings, err := s.userStorage.GetSettings(ctx, recipientID)
	if err != nil {
		s.logger.Errorf("failed to get settings for user %s: %v", recipientID, err)
	} else if !settings.NotificationsEnabled {
		return
	}

	notification := &entity.Notification{
		RecipientID: recipientID,
		EventID:     &event.ID,
		Type:        notificationType,
		Message:     message,
	}
	notification, err = s.storage.Create(ctx, notification)
	if err != nil {
		s.logger.Errorf("failed to create %s notification for user %s: %v", notificationType, recipientID, err)
		return
	}

	if s.publisher == nil {
		return
	}
	if err = s.publisher.Publish(ctx, notification); err != nil {
		s.logger.Errorf("failed to publish notification %s: %v", notification.ID, err)
	}
}

func (s *NotificationService) sendApprovalEmail(ctx context.Context, userID string, event *entity.Event) {
	if s.smtpClient == nil {
		return
	}

	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		s.logger.Errorf("failed to get user %s for approval e-mail: %v", userID, err)
		return
	}
	if user.Email == "" {
		return
	}

	s.smtpClient.SendApprovalRequest(user.Email, event.Title)
}

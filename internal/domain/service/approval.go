package service

import (
	"context"
	"time"

	"github.com/agreetime/agreetime-backend/internal/adapters/logger"
	"github.com/agreetime/agreetime-backend/internal/domain/common/errorz"
	"github.com/agreetime/agreetime-backend/internal/domain/entity"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

type ApprovalStorage interface {
	Decide(ctx context.Context, eventID, approverID string, status entity.ApproverStatus, reason string, at time.Time) (*entity.EventApprover, *entity.Event, bool, error)
	ExpireEvent(ctx context.Context, eventID string, at time.Time) (*entity.Event, int, error)
}

type approvalEventStorage interface {
	GetPendingByApprover(ctx context.Context, approverID string) ([]entity.Event, error)
	GetExpirable(ctx context.Context, before time.Time) ([]entity.Event, error)
}

type approvalHistoryStorage interface {
	Create(ctx context.Context, record *entity.EventHistory) error
}

type approvalNotifier interface {
	ApprovalResult(ctx context.Context, event *entity.Event)
}

type ApprovalService struct {
	logger *logger.Logger

	storage        ApprovalStorage
	eventStorage   approvalEventStorage
	historyStorage approvalHistoryStorage
	notifier       approvalNotifier

	clock func() time.Time
}

func NewApprovalService(
	logger *logger.Logger,
	storage ApprovalStorage,
	eventStorage approvalEventStorage,
	historyStorage approvalHistoryStorage,
	notifier approvalNotifier,
) *ApprovalService {
	return &ApprovalService{
		logger: logger,

		storage:        storage,
		eventStorage:   eventStorage,
		historyStorage: historyStorage,
		notifier:       notifier,

		clock: time.Now,
	}
}

// Decide records one approver's decision on an event and returns the
// resulting approver status. The storage serializes the decision against
// concurrent ones on the same event and recomputes the event status from
// the full approver set: one rejection cancels the event, full approval
// confirms it, anything else leaves it pending. The creator is notified
// only when the event status actually changed.
func (s *ApprovalService) Decide(ctx context.Context, eventID, approverUserID string, decision Decision, reason string) (entity.ApproverStatus, error) {
	var status entity.ApproverStatus
	switch decision {
	case DecisionApprove:
		status = entity.ApproverStatusApproved
	case DecisionReject:
		status = entity.ApproverStatusRejected
	default:
		return "", errorz.Validation("unknown decision %q", decision)
	}

	approver, event, changed, err := s.storage.Decide(ctx, eventID, approverUserID, status, reason, s.clock())
	if err != nil {
		return "", err
	}

	action := entity.HistoryActionApproved
	if status == entity.ApproverStatusRejected {
		action = entity.HistoryActionRejected
	}
	s.recordHistory(ctx, eventID, &approverUserID, action, reason)

	if changed {
		s.notifier.ApprovalResult(ctx, event)
	}

	return approver.Status, nil
}

// PendingForUser lists events still waiting on a decision from the user.
func (s *ApprovalService) PendingForUser(ctx context.Context, userID string) ([]entity.Event, error) {
	return s.eventStorage.GetPendingByApprover(ctx, userID)
}

// StartExpiryScheduler starts the background sweep that expires approval
// requests of events whose start time has passed.
func (s *ApprovalService) StartExpiryScheduler(interval time.Duration) {
	s.logger.Info("Starting approval expiry scheduler")
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			ctx := context.Background()
			s.ExpireOverdue(ctx)
		}
	}()
}

// ExpireOverdue marks still-pending approver rows of overdue events as
// expired and cancels those events. An event that was never fully
// approved before it started can no longer be confirmed.
func (s *ApprovalService) ExpireOverdue(ctx context.Context) {
	now := s.clock()

	events, err := s.eventStorage.GetExpirable(ctx, now)
	if err != nil {
		s.logger.Errorf("failed to get expirable events: %v", err)
		return
	}

	for _, candidate := range events {
		event, expired, errExpire := s.storage.ExpireEvent(ctx, candidate.ID, now)
		if errExpire != nil {
			s.logger.Errorf("failed to expire approvals for event %s: %v", candidate.ID, errExpire)
			continue
		}
		if expired == 0 {
			continue
		}

		s.logger.Infof("Expired %d approval(s) for event (event_id=%s)", expired, event.ID)
		s.recordHistory(ctx, event.ID, nil, entity.HistoryActionExpired, "")
		s.notifier.ApprovalResult(ctx, event)
	}
}

func (s *ApprovalService) recordHistory(ctx context.Context, eventID string, actorID *string, action, details string) {
	record := &entity.EventHistory{
		EventID:    eventID,
		ActorID:    actorID,
		Action:     action,
		Details:    details,
		OccurredAt: s.clock(),
	}
	if err := s.historyStorage.Create(ctx, record); err != nil {
		s.logger.Errorf("failed to record %s history for event %s: %v", action, eventID, err)
	}
}

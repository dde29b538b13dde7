package service

import (
	"context"
	"time"

	"github.com/agreetime/agreetime-backend/internal/adapters/logger"
	"github.com/agreetime/agreetime-backend/internal/domain/common/errorz"
	"github.com/agreetime/agreetime-backend/internal/domain/entity"
	"github.com/agreetime/agreetime-backend/internal/domain/utils/validator"
)

type EventStorage interface {
	Create(ctx context.Context, event *entity.Event, participantIDs, approverIDs []string) (*entity.Event, error)
	Get(ctx context.Context, id string) (*entity.Event, error)
	GetByFamilyID(ctx context.Context, familyID string) ([]entity.Event, error)
	Update(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Delete(ctx context.Context, id string) error
}

type eventUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

type eventParticipantStorage interface {
	GetByEventID(ctx context.Context, eventID string) ([]entity.EventParticipant, error)
}

type eventHistoryStorage interface {
	Create(ctx context.Context, record *entity.EventHistory) error
	GetByEventID(ctx context.Context, eventID string) ([]entity.EventHistory, error)
}

type eventNotifier interface {
	EventCreated(ctx context.Context, event *entity.Event, participantIDs []string)
	ApprovalRequested(ctx context.Context, event *entity.Event, approverIDs []string)
	EventCancelled(ctx context.Context, event *entity.Event, participantIDs []string)
}

type EventService struct {
	logger *logger.Logger

	eventStorage       EventStorage
	userStorage        eventUserStorage
	participantStorage eventParticipantStorage
	historyStorage     eventHistoryStorage
	notifier           eventNotifier

	clock func() time.Time
}

func NewEventService(
	logger *logger.Logger,
	eventStorage EventStorage,
	userStorage eventUserStorage,
	participantStorage eventParticipantStorage,
	historyStorage eventHistoryStorage,
	notifier eventNotifier,
) *EventService {
	return &EventService{
		logger: logger,

		eventStorage:       eventStorage,
		userStorage:        userStorage,
		participantStorage: participantStorage,
		historyStorage:     historyStorage,
		notifier:           notifier,

		clock: time.Now,
	}
}

type CreateEventInput struct {
	Title          string
	Description    string
	Location       string
	StartTime      time.Time
	EndTime        time.Time
	ParticipantIDs []string
	ApproverIDs    []string
}

// Create validates the input, then commits the event together with its
// participant and approver rows as one transaction. The creator is always
// a participant; any event with more than one participant needs at least
// one approver and starts pending, everything else confirms immediately.
func (s *EventService) Create(ctx context.Context, familyID, creatorID string, input CreateEventInput) (*entity.Event, error) {
	creator, err := s.userStorage.Get(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if !creator.InFamily(familyID) {
		return nil, errorz.Forbidden
	}

	if err = validator.EventTitle(input.Title); err != nil {
		return nil, err
	}
	if err = validator.EventLocation(input.Location); err != nil {
		return nil, err
	}
	if err = validator.EventTimes(input.StartTime, input.EndTime); err != nil {
		return nil, err
	}
	if len(input.ParticipantIDs) == 0 {
		return nil, errorz.Validation("at least one participant required")
	}

	participantIDs := dedupIDs(append([]string{creatorID}, input.ParticipantIDs...))
	approverIDs := dedupIDs(input.ApproverIDs)

	if len(participantIDs) > 1 && len(approverIDs) == 0 {
		return nil, errorz.Validation("at least one approver required")
	}

	status := entity.EventStatusConfirmed
	if len(approverIDs) > 0 {
		status = entity.EventStatusPending
	}

	event := &entity.Event{
		FamilyID:    familyID,
		CreatorID:   &creator.ID,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Status:      status,
	}

	event, err = s.eventStorage.Create(ctx, event, participantIDs, approverIDs)
	if err != nil {
		return nil, err
	}

	s.recordHistory(ctx, event.ID, &creator.ID, entity.HistoryActionCreated, "")
	s.notifier.EventCreated(ctx, event, participantIDs)
	if len(approverIDs) > 0 {
		s.notifier.ApprovalRequested(ctx, event, approverIDs)
	}

	return event, nil
}

func (s *EventService) Get(ctx context.Context, eventID, actorID string) (*entity.Event, error) {
	event, err := s.eventStorage.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err = s.checkMembership(ctx, actorID, event.FamilyID); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) GetByFamilyID(ctx context.Context, familyID, actorID string) ([]entity.Event, error) {
	if err := s.checkMembership(ctx, actorID, familyID); err != nil {
		return nil, err
	}
	return s.eventStorage.GetByFamilyID(ctx, familyID)
}

type UpdateEventInput struct {
	Title       *string
	Description *string
	Location    *string
	StartTime   *time.Time
	EndTime     *time.Time
}

func (s *EventService) Update(ctx context.Context, eventID, actorID string, input UpdateEventInput) (*entity.Event, error) {
	event, err := s.eventStorage.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err = s.checkMembership(ctx, actorID, event.FamilyID); err != nil {
		return nil, err
	}
	if event.IsTerminal() {
		return nil, errorz.Validation("cannot update a %s event", event.Status)
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.StartTime != nil {
		event.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		event.EndTime = *input.EndTime
	}

	if err = validator.EventTitle(event.Title); err != nil {
		return nil, err
	}
	if err = validator.EventLocation(event.Location); err != nil {
		return nil, err
	}
	if err = validator.EventTimes(event.StartTime, event.EndTime); err != nil {
		return nil, err
	}

	event, err = s.eventStorage.Update(ctx, event)
	if err != nil {
		return nil, err
	}

	s.recordHistory(ctx, event.ID, &actorID, entity.HistoryActionUpdated, "")
	return event, nil
}

// Delete removes an event. A confirmed event is only cancelled so its
// history and notifications stay valid; anything else is removed for good
// together with its participant, approver, comment, attachment and
// history rows.
func (s *EventService) Delete(ctx context.Context, eventID, actorID string) error {
	event, err := s.eventStorage.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if err = s.checkMembership(ctx, actorID, event.FamilyID); err != nil {
		return err
	}

	if event.Status == entity.EventStatusConfirmed {
		participants, errParticipants := s.participantStorage.GetByEventID(ctx, eventID)
		if errParticipants != nil {
			return errParticipants
		}

		event.Status = entity.EventStatusCancelled
		if _, err = s.eventStorage.Update(ctx, event); err != nil {
			return err
		}

		s.recordHistory(ctx, event.ID, &actorID, entity.HistoryActionCancelled, "")

		participantIDs := make([]string, 0, len(participants))
		for _, participant := range participants {
			participantIDs = append(participantIDs, participant.UserID)
		}
		s.notifier.EventCancelled(ctx, event, participantIDs)
		return nil
	}

	return s.eventStorage.Delete(ctx, eventID)
}

func (s *EventService) History(ctx context.Context, eventID, actorID string) ([]entity.EventHistory, error) {
	event, err := s.eventStorage.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err = s.checkMembership(ctx, actorID, event.FamilyID); err != nil {
		return nil, err
	}
	return s.historyStorage.GetByEventID(ctx, eventID)
}

func (s *EventService) checkMembership(ctx context.Context, userID, familyID string) error {
	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !user.InFamily(familyID) {
		return errorz.Forbidden
	}
	return nil
}

// History rows are an audit trail, a write failure must not fail the
// operation it records.
func (s *EventService) recordHistory(ctx context.Context, eventID string, actorID *string, action, details string) {
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

func dedupIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

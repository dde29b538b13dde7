package service

import (
	"context"
	"sync"
	"time"

	"github.com/agreetime/agreetime-backend/internal/adapters/logger"
	"github.com/agreetime/agreetime-backend/internal/domain/common/errorz"
	"github.com/agreetime/agreetime-backend/internal/domain/entity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// fakeEventStore keeps events and their participant/approver rows in
// memory behind one mutex, mirroring the serialization the postgres
// adapter gets from its event row lock.
type fakeEventStore struct {
	mu           sync.Mutex
	events       map[string]*entity.Event
	participants map[string][]entity.EventParticipant
	approvers    map[string][]entity.EventApprover
	deleted      map[string]bool
	createErr    error
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{
		events:       make(map[string]*entity.Event),
		participants: make(map[string][]entity.EventParticipant),
		approvers:    make(map[string][]entity.EventApprover),
		deleted:      make(map[string]bool),
	}
}

func (f *fakeEventStore) Create(_ context.Context, event *entity.Event, participantIDs, approverIDs []string) (*entity.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	stored := *event
	f.events[event.ID] = &stored
	for _, userID := range participantIDs {
		f.participants[event.ID] = append(f.participants[event.ID], entity.EventParticipant{
			ID:      uuid.NewString(),
			EventID: event.ID,
			UserID:  userID,
		})
	}
	for _, userID := range approverIDs {
		f.approvers[event.ID] = append(f.approvers[event.ID], entity.EventApprover{
			ID:         uuid.NewString(),
			EventID:    event.ID,
			ApproverID: userID,
			Status:     entity.ApproverStatusPending,
		})
	}
	return event, nil
}

func (f *fakeEventStore) Get(_ context.Context, id string) (*entity.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return nil, errorz.NotFound
	}
	clone := *event
	clone.Participants = append([]entity.EventParticipant(nil), f.participants[id]...)
	clone.Approvers = append([]entity.EventApprover(nil), f.approvers[id]...)
	return &clone, nil
}

func (f *fakeEventStore) GetByFamilyID(_ context.Context, familyID string) ([]entity.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var events []entity.Event
	for _, event := range f.events {
		if event.FamilyID == familyID {
			events = append(events, *event)
		}
	}
	return events, nil
}

func (f *fakeEventStore) Update(_ context.Context, event *entity.Event) (*entity.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *event
	f.events[event.ID] = &stored
	return event, nil
}

func (f *fakeEventStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.events, id)
	delete(f.participants, id)
	delete(f.approvers, id)
	f.deleted[id] = true
	return nil
}

func (f *fakeEventStore) GetPendingByApprover(_ context.Context, approverID string) ([]entity.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var events []entity.Event
	for eventID, approvers := range f.approvers {
		for _, approver := range approvers {
			if approver.ApproverID == approverID && approver.Status == entity.ApproverStatusPending {
				events = append(events, *f.events[eventID])
			}
		}
	}
	return events, nil
}

func (f *fakeEventStore) GetExpirable(_ context.Context, before time.Time) ([]entity.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var events []entity.Event
	for _, event := range f.events {
		if event.Status == entity.EventStatusPending && event.StartTime.Before(before) {
			events = append(events, *event)
		}
	}
	return events, nil
}

func (f *fakeEventStore) Decide(_ context.Context, eventID, approverID string, status entity.ApproverStatus, reason string, at time.Time) (*entity.EventApprover, *entity.Event, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[eventID]
	if !ok {
		return nil, nil, false, errorz.NotFound
	}
	approvers := f.approvers[eventID]
	idx := -1
	for i := range approvers {
		if approvers[i].ApproverID == approverID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, false, errorz.NotAnApprover
	}
	if err := approvers[idx].Decide(status, reason, at); err != nil {
		return nil, nil, false, err
	}

	changed := false
	next := entity.ResolveEventStatus(approvers)
	if next != event.Status && !event.IsTerminal() {
		event.Status = next
		changed = true
	}
	approverClone := approvers[idx]
	eventClone := *event
	return &approverClone, &eventClone, changed, nil
}

func (f *fakeEventStore) ExpireEvent(_ context.Context, eventID string, at time.Time) (*entity.Event, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[eventID]
	if !ok {
		return nil, 0, errorz.NotFound
	}
	if event.IsTerminal() {
		clone := *event
		return &clone, 0, nil
	}
	expired := 0
	approvers := f.approvers[eventID]
	for i := range approvers {
		if approvers[i].Expire(at) {
			expired++
		}
	}
	if expired > 0 {
		event.Status = entity.EventStatusCancelled
	}
	clone := *event
	return &clone, expired, nil
}

func (f *fakeEventStore) GetByEventID(_ context.Context, eventID string) ([]entity.EventParticipant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.EventParticipant(nil), f.participants[eventID]...), nil
}

func (f *fakeEventStore) approverRow(eventID, approverID string) *entity.EventApprover {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.approvers[eventID] {
		if f.approvers[eventID][i].ApproverID == approverID {
			clone := f.approvers[eventID][i]
			return &clone
		}
	}
	return nil
}

func (f *fakeEventStore) eventStatus(eventID string) entity.EventStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[eventID]
	if !ok {
		return ""
	}
	return event.Status
}

type fakeUserStore struct {
	users    map[string]*entity.User
	settings map[string]*entity.UserSettings
}

func newFakeUserStore(users ...*entity.User) *fakeUserStore {
	store := &fakeUserStore{
		users:    make(map[string]*entity.User),
		settings: make(map[string]*entity.UserSettings),
	}
	for _, user := range users {
		store.users[user.ID] = user
	}
	return store
}

func (f *fakeUserStore) Get(_ context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errorz.NotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetSettings(_ context.Context, userID string) (*entity.UserSettings, error) {
	if settings, ok := f.settings[userID]; ok {
		return settings, nil
	}
	return &entity.UserSettings{UserID: userID, NotificationsEnabled: true}, nil
}

type fakeHistoryStore struct {
	mu      sync.Mutex
	records []entity.EventHistory
}

func (f *fakeHistoryStore) Create(_ context.Context, record *entity.EventHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeHistoryStore) GetByEventID(_ context.Context, eventID string) ([]entity.EventHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var records []entity.EventHistory
	for _, record := range f.records {
		if record.EventID == eventID {
			records = append(records, record)
		}
	}
	return records, nil
}

func (f *fakeHistoryStore) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var actions []string
	for _, record := range f.records {
		actions = append(actions, record.Action)
	}
	return actions
}

type fakeNotifier struct {
	mu                sync.Mutex
	created           [][]string
	approvalRequested [][]string
	cancelled         [][]string
	results           []entity.EventStatus
}

func (f *fakeNotifier) EventCreated(_ context.Context, _ *entity.Event, participantIDs []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, participantIDs)
}

func (f *fakeNotifier) ApprovalRequested(_ context.Context, _ *entity.Event, approverIDs []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.approvalRequested = append(f.approvalRequested, approverIDs)
}

func (f *fakeNotifier) EventCancelled(_ context.Context, _ *entity.Event, participantIDs []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, participantIDs)
}

func (f *fakeNotifier) ApprovalResult(_ context.Context, event *entity.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, event.Status)
}

func (f *fakeNotifier) resultCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.results)
}

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/agreetime/agreetime-backend/internal/domain/common/errorz"
	"github.com/agreetime/agreetime-backend/internal/domain/entity"
)

func newApprovalService(store *fakeEventStore, history *fakeHistoryStore, notifier *fakeNotifier) *ApprovalService {
	svc := NewApprovalService(testLogger(), store, store, history, notifier)
	svc.clock = func() time.Time {
		return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	}
	return svc
}

func seedPendingEvent(store *fakeEventStore, eventID string, approverIDs ...string) {
	creator := "creator"
	event := &entity.Event{
		ID:        eventID,
		FamilyID:  "fam",
		CreatorID: &creator,
		Title:     "Family trip",
		StartTime: time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
		Status:    entity.EventStatusPending,
	}
	_, _ = store.Create(context.Background(), event, []string{creator}, approverIDs)
}

func TestDecideApproveKeepsEventPending(t *testing.T) {
	store := newFakeEventStore()
	notifier := &fakeNotifier{}
	svc := newApprovalService(store, &fakeHistoryStore{}, notifier)
	seedPendingEvent(store, "evt", "a1", "a2")

	status, err := svc.Decide(context.Background(), "evt", "a1", DecisionApprove, "")
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if status != entity.ApproverStatusApproved {
		t.Fatalf("expected approved, got %s", status)
	}
	if got := store.eventStatus("evt"); got != entity.EventStatusPending {
		t.Fatalf("event must stay pending while a decision is outstanding, got %s", got)
	}
	if notifier.resultCount() != 0 {
		t.Fatal("no approval result may be sent while the event is still pending")
	}
}

func TestDecideAllApprovedConfirms(t *testing.T) {
	orders := [][]string{
		{"a1", "a2"},
		{"a2", "a1"},
	}
	for _, order := range orders {
		store := newFakeEventStore()
		notifier := &fakeNotifier{}
		svc := newApprovalService(store, &fakeHistoryStore{}, notifier)
		seedPendingEvent(store, "evt", "a1", "a2")

		for _, approver := range order {
			if _, err := svc.Decide(context.Background(), "evt", approver, DecisionApprove, ""); err != nil {
				t.Fatalf("decide %s: %v", approver, err)
			}
		}
		if got := store.eventStatus("evt"); got != entity.EventStatusConfirmed {
			t.Fatalf("order %v: expected confirmed, got %s", order, got)
		}
		if notifier.resultCount() != 1 {
			t.Fatalf("order %v: expected exactly one approval result, got %d", order, notifier.resultCount())
		}
	}
}

func TestDecideRejectionIsAbsorbing(t *testing.T) {
	store := newFakeEventStore()
	notifier := &fakeNotifier{}
	svc := newApprovalService(store, &fakeHistoryStore{}, notifier)
	seedPendingEvent(store, "evt", "a1", "a2", "a3")

	if _, err := svc.Decide(context.Background(), "evt", "a1", DecisionApprove, ""); err != nil {
		t.Fatalf("a1 approve: %v", err)
	}
	if got := store.eventStatus("evt"); got != entity.EventStatusPending {
		t.Fatalf("expected pending after first approval, got %s", got)
	}

	if _, err := svc.Decide(context.Background(), "evt", "a2", DecisionReject, "conflict"); err != nil {
		t.Fatalf("a2 reject: %v", err)
	}
	if got := store.eventStatus("evt"); got != entity.EventStatusCancelled {
		t.Fatalf("expected cancelled after rejection, got %s", got)
	}

	// A later approval updates its own row but can not revive the event.
	if _, err := svc.Decide(context.Background(), "evt", "a3", DecisionApprove, ""); err != nil {
		t.Fatalf("a3 approve: %v", err)
	}
	if got := store.eventStatus("evt"); got != entity.EventStatusCancelled {
		t.Fatalf("cancelled is terminal, got %s", got)
	}

	a1 := store.approverRow("evt", "a1")
	if a1 == nil || a1.Status != entity.ApproverStatusApproved {
		t.Fatalf("a1's row must stay approved, got %+v", a1)
	}
	a2 := store.approverRow("evt", "a2")
	if a2 == nil || a2.RejectionReason != "conflict" {
		t.Fatalf("rejection reason must be stored, got %+v", a2)
	}
}

func TestDecideTwiceReturnsAlreadyDecided(t *testing.T) {
	store := newFakeEventStore()
	svc := newApprovalService(store, &fakeHistoryStore{}, &fakeNotifier{})
	seedPendingEvent(store, "evt", "a1")

	if _, err := svc.Decide(context.Background(), "evt", "a1", DecisionApprove, ""); err != nil {
		t.Fatalf("first decide: %v", err)
	}
	_, err := svc.Decide(context.Background(), "evt", "a1", DecisionReject, "changed my mind")
	if !errors.Is(err, errorz.AlreadyDecided) {
		t.Fatalf("expected AlreadyDecided, got %v", err)
	}
	if got := store.eventStatus("evt"); got != entity.EventStatusConfirmed {
		t.Fatalf("second decision must not change the event, got %s", got)
	}
}

func TestDecideNotAnApprover(t *testing.T) {
	store := newFakeEventStore()
	svc := newApprovalService(store, &fakeHistoryStore{}, &fakeNotifier{})
	seedPendingEvent(store, "evt", "a1")

	_, err := svc.Decide(context.Background(), "evt", "stranger", DecisionApprove, "")
	if !errors.Is(err, errorz.NotAnApprover) {
		t.Fatalf("expected NotAnApprover, got %v", err)
	}
}

func TestDecideUnknownDecisionRejected(t *testing.T) {
	store := newFakeEventStore()
	svc := newApprovalService(store, &fakeHistoryStore{}, &fakeNotifier{})
	seedPendingEvent(store, "evt", "a1")

	_, err := svc.Decide(context.Background(), "evt", "a1", Decision("maybe"), "")
	if !errorz.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSingleApproverConfirmNotifiesCreatorOnce(t *testing.T) {
	store := newFakeEventStore()
	notifier := &fakeNotifier{}
	svc := newApprovalService(store, &fakeHistoryStore{}, notifier)
	seedPendingEvent(store, "evt", "a1")

	if _, err := svc.Decide(context.Background(), "evt", "a1", DecisionApprove, ""); err != nil {
		t.Fatalf("decide: %v", err)
	}
	if got := store.eventStatus("evt"); got != entity.EventStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", got)
	}
	if notifier.resultCount() != 1 {
		t.Fatalf("expected one approval result for the creator, got %d", notifier.resultCount())
	}
	if notifier.results[0] != entity.EventStatusConfirmed {
		t.Fatalf("expected confirmed result, got %s", notifier.results[0])
	}
}

func TestConcurrentDecisionsSerialize(t *testing.T) {
	for i := 0; i < 50; i++ {
		store := newFakeEventStore()
		notifier := &fakeNotifier{}
		svc := newApprovalService(store, &fakeHistoryStore{}, notifier)
		seedPendingEvent(store, "evt", "a1", "a2")

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = svc.Decide(context.Background(), "evt", "a1", DecisionApprove, "")
		}()
		go func() {
			defer wg.Done()
			_, _ = svc.Decide(context.Background(), "evt", "a2", DecisionReject, "busy")
		}()
		wg.Wait()

		// Either serial order ends with the rejection winning.
		if got := store.eventStatus("evt"); got != entity.EventStatusCancelled {
			t.Fatalf("expected cancelled regardless of interleaving, got %s", got)
		}
		if notifier.resultCount() != 1 {
			t.Fatalf("the status change must be notified exactly once, got %d", notifier.resultCount())
		}
	}
}

func TestPendingForUser(t *testing.T) {
	store := newFakeEventStore()
	svc := newApprovalService(store, &fakeHistoryStore{}, &fakeNotifier{})
	seedPendingEvent(store, "evt1", "a1", "a2")
	seedPendingEvent(store, "evt2", "a1")

	if _, err := svc.Decide(context.Background(), "evt2", "a1", DecisionApprove, ""); err != nil {
		t.Fatalf("decide: %v", err)
	}

	events, err := svc.PendingForUser(context.Background(), "a1")
	if err != nil {
		t.Fatalf("pending for user: %v", err)
	}
	if len(events) != 1 || events[0].ID != "evt1" {
		t.Fatalf("expected only evt1 pending for a1, got %+v", events)
	}
}

func TestExpireOverdueCancelsEvent(t *testing.T) {
	store := newFakeEventStore()
	notifier := &fakeNotifier{}
	history := &fakeHistoryStore{}
	svc := newApprovalService(store, history, notifier)
	seedPendingEvent(store, "evt", "a1", "a2")

	if _, err := svc.Decide(context.Background(), "evt", "a1", DecisionApprove, ""); err != nil {
		t.Fatalf("decide: %v", err)
	}

	// The clock is past the event's start time, the sweep must kick in.
	svc.clock = func() time.Time {
		return time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	}
	svc.ExpireOverdue(context.Background())

	if got := store.eventStatus("evt"); got != entity.EventStatusCancelled {
		t.Fatalf("expected cancelled after expiry, got %s", got)
	}
	a2 := store.approverRow("evt", "a2")
	if a2 == nil || a2.Status != entity.ApproverStatusExpired {
		t.Fatalf("pending approver must be expired, got %+v", a2)
	}
	a1 := store.approverRow("evt", "a1")
	if a1 == nil || a1.Status != entity.ApproverStatusApproved {
		t.Fatalf("decided approver must keep its status, got %+v", a1)
	}
	if notifier.resultCount() != 1 {
		t.Fatalf("expiry must notify the creator once, got %d", notifier.resultCount())
	}

	found := false
	for _, action := range history.actions() {
		if action == entity.HistoryActionExpired {
			found = true
		}
	}
	if !found {
		t.Fatal("expiry must leave a history record")
	}
}

func TestExpireOverdueSkipsFutureEvents(t *testing.T) {
	store := newFakeEventStore()
	notifier := &fakeNotifier{}
	svc := newApprovalService(store, &fakeHistoryStore{}, notifier)
	seedPendingEvent(store, "evt", "a1")

	svc.ExpireOverdue(context.Background())

	if got := store.eventStatus("evt"); got != entity.EventStatusPending {
		t.Fatalf("future event must stay pending, got %s", got)
	}
	if notifier.resultCount() != 0 {
		t.Fatal("nothing to notify when nothing expired")
	}
}

package activity

import (
	"fmt"
	"testing"
	"time"
)

func testClock() func() time.Time {
	base := time.Date(2024, 11, 28, 12, 0, 0, 0, time.UTC)
	calls := 0
	return func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
}

func TestNewServiceSeedsNotifications(t *testing.T) {
	svc := NewService(WithClock(testClock()))

	notifications := svc.Notifications()
	if len(notifications) != 3 {
		t.Fatalf("expected 3 seed notifications, got %d", len(notifications))
	}
	if svc.UnreadCount() != 1 {
		t.Fatalf("expected exactly the newest seed unread, got %d", svc.UnreadCount())
	}
}

func TestFeedCapsAtTenNewestFirst(t *testing.T) {
	svc := NewService(WithClock(testClock()))

	for i := 0; i < 15; i++ {
		svc.PushNotification(Notification{ID: fmt.Sprintf("n%d", i)})
		svc.PushEvent(Event{ID: fmt.Sprintf("e%d", i)})
	}

	notifications := svc.Notifications()
	if len(notifications) != FeedCapacity {
		t.Fatalf("expected %d notifications, got %d", FeedCapacity, len(notifications))
	}
	if notifications[0].ID != "n14" {
		t.Fatalf("expected newest first, got %s", notifications[0].ID)
	}
	if notifications[FeedCapacity-1].ID != "n5" {
		t.Fatalf("expected oldest surviving entry n5, got %s", notifications[FeedCapacity-1].ID)
	}

	events := svc.Events()
	if len(events) != FeedCapacity || events[0].ID != "e14" {
		t.Fatalf("event feed cap broken: len=%d first=%s", len(events), events[0].ID)
	}
}

func TestMarkRead(t *testing.T) {
	svc := NewService(WithClock(testClock()))
	svc.PushNotification(Notification{ID: "target"})

	if !svc.MarkRead("target") {
		t.Fatal("expected target to be found")
	}
	if svc.MarkRead("missing") {
		t.Fatal("missing id should report false")
	}

	svc.PushNotification(Notification{ID: "another"})
	svc.MarkAllRead()
	if svc.UnreadCount() != 0 {
		t.Fatalf("expected 0 unread after mark-all, got %d", svc.UnreadCount())
	}
}

func TestSyntheticNotificationUsesPool(t *testing.T) {
	svc := NewService(
		WithClock(testClock()),
		WithRand(func() float64 { return 0.9 }, func(n int) int { return 0 }),
	)

	n := svc.syntheticNotification()
	if n.ID == "" {
		t.Fatal("expected generated id")
	}
	if n.Title != notificationPool[0].Title || n.Type != notificationPool[0].Type {
		t.Fatalf("expected first pool template, got %+v", n)
	}
	if n.Read {
		t.Fatal("synthetic notifications start unread")
	}
}

func TestSyntheticEventDetails(t *testing.T) {
	pick := 0
	svc := NewService(
		WithClock(testClock()),
		WithRand(nil, func(n int) int { return pick % n }),
	)

	// eventTypes[0] is check-in: action only, no details.
	e := svc.syntheticEvent()
	if e.Type != "check-in" || e.Action != "checked in" || e.Details != "" {
		t.Fatalf("unexpected check-in event: %+v", e)
	}

	pick = 1
	e = svc.syntheticEvent()
	if e.Type != "task-complete" || e.Details == "" {
		t.Fatalf("task-complete should carry task details: %+v", e)
	}
}

package activity

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

func defaultRandFloat() float64 { return rand.Float64() }

func defaultRandInt(n int) int { return rand.Intn(n) }

type notificationTemplate struct {
	Type    string
	Title   string
	Message string
}

var notificationPool = []notificationTemplate{
	{NotificationInfo, "Team Meeting Reminder", "Sprint planning meeting starts in 15 minutes."},
	{NotificationSuccess, "Task Completed", "Your teammate completed the authentication module."},
}

var seedNotifications = []notificationTemplate{
	{NotificationInfo, "New Training Available", "Advanced React Certification course is now available for enrollment."},
	{NotificationWarning, "Task Deadline Approaching", "Database optimization task is due in 2 days."},
	{NotificationSuccess, "Goal Achievement", "Congratulations! You have completed 75% of your React certification goal."},
}

var eventUsers = []string{"John Smith", "Mike Davis", "Sarah Johnson", "Lisa Rodriguez", "Alex Thompson"}

var eventTaskDetails = []string{"Authentication API", "UI Component", "Database Update", "Code Review"}

var eventMeetingDetails = []string{"Daily Standup", "Sprint Review", "Client Call"}

var eventTypes = []string{"check-in", "task-complete", "message", "break", "meeting"}

func (s *Service) seed() {
	for i := len(seedNotifications) - 1; i >= 0; i-- {
		tmpl := seedNotifications[i]
		s.notifications = prependNotification(s.notifications, Notification{
			ID:        uuid.NewString(),
			Type:      tmpl.Type,
			Title:     tmpl.Title,
			Message:   tmpl.Message,
			Timestamp: s.now().Add(-time.Duration(i+1) * 2 * time.Hour),
			Read:      i > 0,
		})
	}
}

// Start launches the simulator tickers. Both stop when ctx is cancelled;
// there is no other teardown.
func (s *Service) Start(ctx context.Context, notificationInterval, eventInterval time.Duration) {
	if notificationInterval > 0 {
		go s.runNotifications(ctx, notificationInterval)
	}
	if eventInterval > 0 {
		go s.runEvents(ctx, eventInterval)
	}
}

func (s *Service) runNotifications(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Roughly 30% of ticks produce a notification.
			if s.randFloat() > 0.7 {
				s.PushNotification(s.syntheticNotification())
			}
		}
	}
}

func (s *Service) runEvents(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.PushEvent(s.syntheticEvent())
		}
	}
}

func (s *Service) syntheticNotification() Notification {
	tmpl := notificationPool[s.randInt(len(notificationPool))]
	return Notification{
		ID:        uuid.NewString(),
		Type:      tmpl.Type,
		Title:     tmpl.Title,
		Message:   tmpl.Message,
		Timestamp: s.now(),
	}
}

func (s *Service) syntheticEvent() Event {
	e := Event{
		ID:        uuid.NewString(),
		Type:      eventTypes[s.randInt(len(eventTypes))],
		User:      eventUsers[s.randInt(len(eventUsers))],
		Timestamp: s.now(),
	}
	switch e.Type {
	case "check-in":
		e.Action = "checked in"
	case "task-complete":
		e.Action = "completed task"
		e.Details = "Task: " + eventTaskDetails[s.randInt(len(eventTaskDetails))]
	case "message":
		e.Action = "sent message"
	case "break":
		e.Action = "took a break"
	case "meeting":
		e.Action = "joined meeting"
		e.Details = eventMeetingDetails[s.randInt(len(eventMeetingDetails))]
	}
	return e
}

// Package activity holds the session-local notification and activity
// feeds: bounded, newest-first ring buffers fed by cosmetic simulators.
// It is fully decoupled from the derived-metrics logic.
package activity

import (
	"sync"
	"time"
)

// FeedCapacity bounds both feeds to the 10 most recent entries; older
// entries are evicted FIFO.
const FeedCapacity = 10

const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationSuccess = "success"
	NotificationError   = "error"
)

type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Service struct {
	mu            sync.Mutex
	notifications []Notification
	events        []Event
	now           func() time.Time
	randFloat     func() float64
	randInt       func(n int) int
}

type Option func(*Service)

// WithClock injects the timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithRand injects the random sources used by the simulators.
func WithRand(randFloat func() float64, randInt func(n int) int) Option {
	return func(s *Service) {
		if randFloat != nil {
			s.randFloat = randFloat
		}
		if randInt != nil {
			s.randInt = randInt
		}
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{
		now:       time.Now,
		randFloat: defaultRandFloat,
		randInt:   defaultRandInt,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.seed()
	return s
}

func (s *Service) PushNotification(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = prependNotification(s.notifications, n)
}

func (s *Service) PushEvent(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = prependEvent(s.events, e)
}

func (s *Service) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *Service) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Service) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flags one notification as read; reports whether it was found.
func (s *Service) MarkRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return true
		}
	}
	return false
}

func (s *Service) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

func prependNotification(list []Notification, n Notification) []Notification {
	if len(list) >= FeedCapacity {
		list = list[:FeedCapacity-1]
	}
	return append([]Notification{n}, list...)
}

func prependEvent(list []Event, e Event) []Event {
	if len(list) >= FeedCapacity {
		list = list[:FeedCapacity-1]
	}
	return append([]Event{e}, list...)
}

package testdoubles

import (
	"sync"

	"github.com/AntonStoeckl/library-inventory-go/inventory"
)

// SpyNotification represents a recorded NotifyUser call.
type SpyNotification struct {
	UserID  string
	Message string
}

// NotificationSinkSpy is a NotificationSink that records notifications instead of delivering them.
type NotificationSinkSpy struct {
	notifications []SpyNotification
	mu            sync.Mutex
}

// NewNotificationSinkSpy creates a new NotificationSinkSpy.
func NewNotificationSinkSpy() *NotificationSinkSpy {
	return &NotificationSinkSpy{
		notifications: make([]SpyNotification, 0),
	}
}

// NotifyUser implements the NotificationSink interface.
func (s *NotificationSinkSpy) NotifyUser(userID string, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, SpyNotification{
		UserID:  userID,
		Message: message,
	})
}

// GetNotifications returns a copy of all recorded notifications.
func (s *NotificationSinkSpy) GetNotifications() []SpyNotification {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := make([]SpyNotification, len(s.notifications))
	copy(notifications, s.notifications)

	return notifications
}

// NotificationCount returns the number of recorded notifications.
func (s *NotificationSinkSpy) NotificationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.notifications)
}

// Ensure NotificationSinkSpy implements inventory.NotificationSink.
var _ inventory.NotificationSink = (*NotificationSinkSpy)(nil)

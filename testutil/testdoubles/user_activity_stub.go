package testdoubles

import (
	"sync"

	"github.com/AntonStoeckl/library-inventory-go/inventory"
)

// UserActivityStub is a UserActivityProvider with canned answers per user.
// Users without a canned answer are reported as inactive.
type UserActivityStub struct {
	activeUsers map[string]bool
	calls       []string
	mu          sync.Mutex
}

// NewUserActivityStub creates a new UserActivityStub where the given users are active.
func NewUserActivityStub(activeUserIDs ...string) *UserActivityStub {
	stub := &UserActivityStub{
		activeUsers: make(map[string]bool),
	}

	for _, userID := range activeUserIDs {
		stub.activeUsers[userID] = true
	}

	return stub
}

// WillReport sets the canned answer for the given user.
func (s *UserActivityStub) WillReport(userID string, isActive bool) *UserActivityStub {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeUsers[userID] = isActive

	return s
}

// IsUserActive implements the UserActivityProvider interface.
func (s *UserActivityStub) IsUserActive(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, userID)

	return s.activeUsers[userID]
}

// CallCount returns how often IsUserActive was called for the given user.
func (s *UserActivityStub) CallCount(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, calledWith := range s.calls {
		if calledWith == userID {
			count++
		}
	}

	return count
}

// Ensure UserActivityStub implements inventory.UserActivityProvider.
var _ inventory.UserActivityProvider = (*UserActivityStub)(nil)

package shell

import (
	"sync"

	"github.com/AntonStoeckl/library-inventory-go/inventory"
)

// UserDirectory is an in-memory register of readers and their contract status.
// Only registered readers whose contract was not canceled are active.
type UserDirectory struct {
	mu     sync.RWMutex
	active map[string]bool
}

// NewUserDirectory creates a UserDirectory with the given readers registered as active.
func NewUserDirectory(activeUserIDs ...string) *UserDirectory {
	d := &UserDirectory{
		active: make(map[string]bool, len(activeUserIDs)),
	}

	for _, userID := range activeUserIDs {
		d.active[userID] = true
	}

	return d
}

// RegisterReader registers a reader as active. Registering a canceled reader again reactivates it.
func (d *UserDirectory) RegisterReader(userID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.active[userID] = true
}

// CancelReaderContract deactivates a reader. Unknown readers are ignored.
func (d *UserDirectory) CancelReaderContract(userID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.active[userID]; ok {
		d.active[userID] = false
	}
}

// IsUserActive implements inventory.UserActivityProvider.
func (d *UserDirectory) IsUserActive(userID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.active[userID]
}

var _ inventory.UserActivityProvider = (*UserDirectory)(nil)

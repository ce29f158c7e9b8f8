package notifier

import (
	"context"
	"sync"
)

// MockNotifier records notifications instead of publishing them.
type MockNotifier struct {
	mu            sync.RWMutex
	notifications []Notification

	// NotifyFunc overrides the default recording behavior when set.
	NotifyFunc func(ctx context.Context, n Notification) error
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{
		notifications: make([]Notification, 0),
	}
}

func (m *MockNotifier) Notify(ctx context.Context, n Notification) error {
	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, n)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.notifications = append(m.notifications, n)

	return nil
}

// Sent returns a copy of all recorded notifications.
func (m *MockNotifier) Sent() []Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sent := make([]Notification, len(m.notifications))
	copy(sent, m.notifications)
	return sent
}

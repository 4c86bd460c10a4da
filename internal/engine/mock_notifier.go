package engine

import (
	"context"
	"sync"

	"github.com/Veraticus/ascend/internal/model"
)

// RecordingNotifier is a test implementation of service.NotificationSink
// that keeps every event it receives.
type RecordingNotifier struct {
	events []model.UnlockEvent
	mu     sync.Mutex
}

// NewRecordingNotifier creates an empty recorder.
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

// Notify records event.
func (r *RecordingNotifier) Notify(_ context.Context, event model.UnlockEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events.
func (r *RecordingNotifier) Events() []model.UnlockEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.UnlockEvent(nil), r.events...)
}

// Reset clears recorded events.
func (r *RecordingNotifier) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

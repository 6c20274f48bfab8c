package notification

import (
	"context"
	"sync"

	"storefront/internal/domain/service"
)

// Notice is one recorded notification.
type Notice struct {
	Level   service.NotificationLevel
	Message string
}

// Recorder keeps every notice in memory. It backs tests and non-interactive callers.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(_ context.Context, level service.NotificationLevel, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, Notice{Level: level, Message: message})
}

// Notices returns a copy of everything recorded so far.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Notice(nil), r.notices...)
}

// Messages returns the recorded messages in order.
func (r *Recorder) Messages() []string {
	notices := r.Notices()
	messages := make([]string, 0, len(notices))
	for _, notice := range notices {
		messages = append(messages, notice.Message)
	}

	return messages
}

// Last returns the most recent notice.
func (r *Recorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}

	return r.notices[len(r.notices)-1], true
}

// Reset forgets all notices.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = nil
}

var _ service.Notifier = (*Recorder)(nil)

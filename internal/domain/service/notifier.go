package service

import "context"

// NotificationLevel classifies a user-facing notice.
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
	NotificationInfo    NotificationLevel = "info"
)

// Notifier is the transient, user-visible notification channel (toasts in a browser,
// stderr lines in the CLI). Providers report outcomes here instead of failing loudly.
type Notifier interface {
	Notify(ctx context.Context, level NotificationLevel, message string)
}

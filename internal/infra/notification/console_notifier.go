// Package notification delivers transient user-facing notices.
package notification

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the console notifier, injected by Fx
type Params struct {
	fx.In

	Logger *slog.Logger
	Output io.Writer `name:"notifyOutput" optional:"true"`
}

// consoleNotifier prints notices for a terminal user and mirrors them to the log.
type consoleNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	logger *slog.Logger
}

// NewConsoleNotifier writes to stderr unless another writer is supplied.
func NewConsoleNotifier(params Params) service.Notifier {
	out := params.Output
	if out == nil {
		out = os.Stderr
	}

	return &consoleNotifier{out: out, logger: params.Logger}
}

func (n *consoleNotifier) Notify(ctx context.Context, level service.NotificationLevel, message string) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)
	if level == service.NotificationError {
		logger.Warn("Notification", slog.String("level", string(level)), slog.String("message", message))
	} else {
		logger.Debug("Notification", slog.String("level", string(level)), slog.String("message", message))
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintf(n.out, "%s %s\n", symbol(level), message)
}

func symbol(level service.NotificationLevel) string {
	switch level {
	case service.NotificationSuccess:
		return "✓"
	case service.NotificationError:
		return "✗"
	default:
		return "•"
	}
}

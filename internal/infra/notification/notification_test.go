package notification

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestConsoleNotifier_WritesOneLinePerNotice(t *testing.T) {
	var out bytes.Buffer
	notifier := NewConsoleNotifier(Params{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Output: &out,
	})

	ctx := context.Background()
	notifier.Notify(ctx, service.NotificationSuccess, "Cart cleared")
	notifier.Notify(ctx, service.NotificationError, "Failed to clear cart")
	notifier.Notify(ctx, service.NotificationInfo, "Please sign in to manage cart")

	assert.Equal(t, "✓ Cart cleared\n✗ Failed to clear cart\n• Please sign in to manage cart\n", out.String())
}

func TestRecorder(t *testing.T) {
	recorder := NewRecorder()
	_, ok := recorder.Last()
	assert.False(t, ok)

	recorder.Notify(context.Background(), service.NotificationSuccess, "Cart cleared")
	recorder.Notify(context.Background(), service.NotificationError, "Failed to clear cart")

	assert.Equal(t, []string{"Cart cleared", "Failed to clear cart"}, recorder.Messages())
	last, ok := recorder.Last()
	assert.True(t, ok)
	assert.Equal(t, Notice{Level: service.NotificationError, Message: "Failed to clear cart"}, last)

	recorder.Reset()
	assert.Empty(t, recorder.Notices())
}

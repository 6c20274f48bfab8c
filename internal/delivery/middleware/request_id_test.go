package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	const clientID = "6f1c2a8e-93b4-4d6a-9b1e-2f0c5d7e8a41"

	tests := []struct {
		name    string
		header  string
		adopted bool
	}{
		{name: "client UUID is adopted", header: clientID, adopted: true},
		{name: "uppercase UUID is adopted", header: "6F1C2A8E-93B4-4D6A-9B1E-2F0C5D7E8A41", adopted: true},
		{name: "missing header gets a fresh ID", header: ""},
		{name: "free text is replaced", header: "req-123"},
		{name: "header injection is replaced", header: clientID + "\nforged=1"},
	}

	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header[deliverycontext.HeaderXRequestID] = []string{tt.header}
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := m.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			echoed := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, seen, echoed)
			_, parseErr := uuid.Parse(echoed)
			require.NoError(t, parseErr)

			if tt.adopted {
				assert.Equal(t, clientID, echoed)
			} else {
				assert.NotEqual(t, tt.header, echoed)
			}
		})
	}
}

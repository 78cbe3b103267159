package calendar

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"job-tracker-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookExporter_Export(t *testing.T) {
	interview := &models.Interview{
		ID:              uuid.New(),
		Title:           "Technical screen",
		Date:            "2025-01-20",
		Time:            "09:00",
		DurationMinutes: 45,
		AttendeeEmail:   "recruiter@acme.com",
	}

	t.Run("Posts the event as JSON", func(t *testing.T) {
		var received map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		exporter := NewWebhookExporter(server.URL)
		err := exporter.Export(context.Background(), interview)
		require.NoError(t, err)

		assert.Equal(t, "Technical screen", received["title"])
		assert.Equal(t, "2025-01-20", received["date"])
		assert.Equal(t, "09:00", received["time"])
		assert.Equal(t, float64(45), received["duration_minutes"])
	})

	t.Run("Non-2xx status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		exporter := NewWebhookExporter(server.URL)
		err := exporter.Export(context.Background(), interview)
		assert.Error(t, err)
	})

	t.Run("Unreachable endpoint is an error", func(t *testing.T) {
		exporter := NewWebhookExporter("http://127.0.0.1:1/hook")
		err := exporter.Export(context.Background(), interview)
		assert.Error(t, err)
	})
}

func TestDisabled_Export(t *testing.T) {
	err := Disabled{}.Export(context.Background(), &models.Interview{})
	assert.NoError(t, err)
}

// internal/calendar/exporter.go
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"job-tracker-api/internal/models"
)

// Exporter pushes scheduled interviews to an external calendar. Export
// failures never affect the scheduling operation itself; callers log and
// move on.
type Exporter interface {
	Export(ctx context.Context, interview *models.Interview) error
}

// Disabled is the no-op exporter used when no calendar integration is
// configured.
type Disabled struct{}

// Export does nothing.
func (Disabled) Export(ctx context.Context, interview *models.Interview) error {
	return nil
}

// WebhookExporter POSTs each scheduled interview as JSON to a configured
// endpoint (e.g. a Zapier or n8n hook that creates the calendar event).
type WebhookExporter struct {
	url    string
	client *http.Client
}

// NewWebhookExporter creates an exporter targeting the given URL.
func NewWebhookExporter(url string) *WebhookExporter {
	return &WebhookExporter{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type webhookEvent struct {
	Title           string `json:"title"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Location        string `json:"location,omitempty"`
	AttendeeEmail   string `json:"attendee_email"`
	Description     string `json:"description,omitempty"`
}

// Export sends the interview to the webhook endpoint.
func (e *WebhookExporter) Export(ctx context.Context, interview *models.Interview) error {
	payload, err := json.Marshal(webhookEvent{
		Title:           interview.Title,
		Date:            interview.Date,
		Time:            interview.Time,
		DurationMinutes: interview.DurationMinutes,
		Location:        interview.Location,
		AttendeeEmail:   interview.AttendeeEmail,
		Description:     interview.Description,
	})
	if err != nil {
		return fmt.Errorf("failed to encode calendar event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build calendar request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach calendar webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("calendar webhook returned status %d", resp.StatusCode)
	}
	return nil
}

package outbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// LogNotifier writes events to the process log. Used when no webhook is
// configured, and as the delivery target in development.
type LogNotifier struct{}

func (LogNotifier) Send(_ context.Context, eventType EventType, payload BookingPayload) error {
	log.Printf("notify type=%s booking_id=%d slot_id=%s identity=%s released=%t",
		eventType, payload.StudentBookingID, payload.SlotID, payload.StudentIdentity, payload.SlotReleased)
	return nil
}

// WebhookNotifier POSTs each event to a configured URL. A non-2xx response
// counts as a failed delivery so the dispatcher retries it.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *WebhookNotifier) Send(ctx context.Context, eventType EventType, payload BookingPayload) error {
	body, err := json.Marshal(map[string]any{
		"type":    eventType,
		"payload": payload,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("webhook returned %d", res.StatusCode)
	}
	return nil
}

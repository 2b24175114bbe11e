package meet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client creates Google Calendar events with a Meet conference attached and
// returns the resulting conferencing URL. The engine never synthesizes links
// itself.
type Client struct {
	config *oauth2.Config
	token  *oauth2.Token
}

// NewClient builds a client from an OAuth2 app and a previously issued token
// (obtained out of band and stored as JSON).
func NewClient(clientID, clientSecret, tokenJSON string) (*Client, error) {
	if clientID == "" || clientSecret == "" || tokenJSON == "" {
		return nil, errors.New("google calendar credentials are not configured")
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(tokenJSON), &token); err != nil {
		return nil, fmt.Errorf("parse google token: %w", err)
	}

	return &Client{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Scopes:       []string{calendar.CalendarEventsScope},
			Endpoint:     google.Endpoint,
		},
		token: &token,
	}, nil
}

func (c *Client) CreateMeetLink(ctx context.Context, title string, attendees []string, start, end time.Time) (string, error) {
	httpClient := c.config.Client(ctx, c.token)
	srv, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return "", fmt.Errorf("calendar service: %w", err)
	}

	event := &calendar.Event{
		Summary: title,
		Start:   &calendar.EventDateTime{DateTime: start.Format(time.RFC3339)},
		End:     &calendar.EventDateTime{DateTime: end.Format(time.RFC3339)},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId:             uuid.NewString(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		},
	}
	for _, email := range attendees {
		if email == "" {
			continue
		}
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	created, err := srv.Events.Insert("primary", event).ConferenceDataVersion(1).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert event: %w", err)
	}
	if created.HangoutLink == "" {
		return "", errors.New("calendar returned no conference link")
	}
	return created.HangoutLink, nil
}

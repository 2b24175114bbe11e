package outbox

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Notifier delivers an event to the notification collaborator. Template
// rendering and per-recipient retry live on the collaborator's side.
type Notifier interface {
	Send(ctx context.Context, eventType EventType, payload BookingPayload) error
}

// MeetLinker returns an external conferencing URL for a confirmed booking.
type MeetLinker interface {
	CreateMeetLink(ctx context.Context, title string, attendees []string, start, end time.Time) (string, error)
}

// MeetContext is what the meet collaborator needs to build an invite.
type MeetContext struct {
	Title            string
	InterviewerEmail string
	StudentEmail     string
	Start            time.Time
	End              time.Time
	MeetLink         string
}

// BookingSource lets the dispatcher read and enrich confirmed bookings.
type BookingSource interface {
	MeetContext(ctx context.Context, studentBookingID int64) (*MeetContext, error)
	AttachMeetLink(ctx context.Context, studentBookingID int64, url string) error
}

type Dispatcher struct {
	repo        *Repository
	notifier    Notifier
	meet        MeetLinker
	bookings    BookingSource
	batchSize   int
	maxAttempts int
}

func NewDispatcher(repo *Repository, notifier Notifier, meet MeetLinker, bookings BookingSource) *Dispatcher {
	return &Dispatcher{
		repo:        repo,
		notifier:    notifier,
		meet:        meet,
		bookings:    bookings,
		batchSize:   50,
		maxAttempts: 10,
	}
}

// RunOnce drains one batch and returns how many events were dispatched.
// A failing event is marked failed and retried on a later pass; it never
// blocks the rest of the batch.
func (d *Dispatcher) RunOnce(ctx context.Context) (int, error) {
	events, err := d.repo.FetchPending(ctx, d.batchSize, d.maxAttempts)
	if err != nil {
		return 0, fmt.Errorf("fetch pending: %w", err)
	}

	dispatched := 0
	for _, ev := range events {
		if err := d.dispatch(ctx, &ev); err != nil {
			log.Printf("outbox_dispatch_failed event_id=%d type=%s attempts=%d error=%q", ev.ID, ev.Type, ev.Attempts+1, err)
			if merr := d.repo.MarkFailed(ctx, ev.ID, err); merr != nil {
				return dispatched, merr
			}
			continue
		}
		if err := d.repo.MarkDispatched(ctx, ev.ID); err != nil {
			return dispatched, err
		}
		dispatched++
	}
	return dispatched, nil
}

// Run polls until the context is cancelled.
func (d *Dispatcher) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n, err := d.RunOnce(ctx); err != nil {
				log.Printf("outbox_pass_failed error=%q", err)
			} else if n > 0 {
				log.Printf("outbox_pass_done dispatched=%d", n)
			}
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, ev *Event) error {
	payload, err := ev.DecodePayload()
	if err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	if ev.Type == EventSlotConfirmed && d.meet != nil {
		if err := d.ensureMeetLink(ctx, payload.StudentBookingID); err != nil {
			return err
		}
	}

	if err := d.notifier.Send(ctx, ev.Type, payload); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	return nil
}

func (d *Dispatcher) ensureMeetLink(ctx context.Context, bookingID int64) error {
	mc, err := d.bookings.MeetContext(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("meet context: %w", err)
	}
	if mc.MeetLink != "" {
		return nil
	}

	url, err := d.meet.CreateMeetLink(ctx, mc.Title, []string{mc.InterviewerEmail, mc.StudentEmail}, mc.Start, mc.End)
	if err != nil {
		return fmt.Errorf("create meet link: %w", err)
	}
	return d.bookings.AttachMeetLink(ctx, bookingID, url)
}

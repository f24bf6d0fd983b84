package calendar

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/nekogravitycat/meeting-booking-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/meeting-booking-backend/internal/schedule"
)

// primaryCalendarID is the provider's alias for the account's own calendar.
const primaryCalendarID = "primary"

// Client talks to the Google Calendar API on behalf of one authenticated
// user. A Client is built per request from the caller's OAuth token and
// holds no state beyond it.
type Client struct {
	oauthCfg *oauth2.Config
	logger   *zap.Logger
}

// NewClient creates a calendar Client factory bound to the app's OAuth config.
func NewClient(oauthCfg *oauth2.Config, logger *zap.Logger) *Client {
	return &Client{oauthCfg: oauthCfg, logger: logger}
}

func (c *Client) service(ctx context.Context, token *oauth2.Token) (*gcal.Service, error) {
	httpClient := c.oauthCfg.Client(ctx, token)
	svc, err := gcal.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, apperror.Wrap(err, http.StatusInternalServerError, "failed to initialize calendar service")
	}
	return svc, nil
}

// DayFetcher returns a schedule.BusyFetcher that lists the user's primary
// calendar events for one day at a time. day is midnight in the configured
// timezone; the listing window is [day, day+24h).
func (c *Client) DayFetcher(token *oauth2.Token) schedule.BusyFetcher {
	return schedule.BusyFetcherFunc(func(ctx context.Context, day time.Time) ([]schedule.ProviderEvent, error) {
		svc, err := c.service(ctx, token)
		if err != nil {
			return nil, err
		}

		dayEnd := day.AddDate(0, 0, 1)
		events, err := svc.Events.List(primaryCalendarID).
			TimeMin(day.Format(time.RFC3339)).
			TimeMax(dayEnd.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			Context(ctx).
			Do()
		if err != nil {
			return nil, err
		}

		raw := make([]schedule.ProviderEvent, 0, len(events.Items))
		for _, ev := range events.Items {
			raw = append(raw, toProviderEvent(ev))
		}
		return raw, nil
	})
}

func toProviderEvent(ev *gcal.Event) schedule.ProviderEvent {
	pe := schedule.ProviderEvent{
		Summary:     ev.Summary,
		Description: ev.Description,
		ID:          ev.Id,
	}
	if ev.Start != nil {
		pe.Start = schedule.EventTime{DateTime: ev.Start.DateTime, Date: ev.Start.Date}
	}
	if ev.End != nil {
		pe.End = schedule.EventTime{DateTime: ev.End.DateTime, Date: ev.End.Date}
	}
	if ev.Creator != nil {
		pe.CreatorEmail = ev.Creator.Email
	}
	return pe
}

// EventInput describes a new event to insert into the user's calendar.
type EventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Attendees   []string
}

// InsertEvent writes a new event into the user's primary calendar and
// returns the provider-assigned event ID.
func (c *Client) InsertEvent(ctx context.Context, token *oauth2.Token, input EventInput) (string, error) {
	svc, err := c.service(ctx, token)
	if err != nil {
		return "", err
	}

	attendees := make([]*gcal.EventAttendee, 0, len(input.Attendees))
	for _, email := range input.Attendees {
		if email == "" {
			continue
		}
		attendees = append(attendees, &gcal.EventAttendee{Email: email})
	}

	event := &gcal.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Start:       &gcal.EventDateTime{DateTime: input.Start.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: input.End.Format(time.RFC3339)},
		Attendees:   attendees,
	}

	created, err := svc.Events.Insert(primaryCalendarID, event).Context(ctx).Do()
	if err != nil {
		c.logger.Error("calendar event insert failed", zap.Error(err))
		return "", apperror.Wrap(err, http.StatusBadGateway, "failed to create calendar event")
	}

	return created.Id, nil
}

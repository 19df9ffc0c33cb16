package gservice

import (
	"context"
	"fmt"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/hal9000y/gmail-calendar-mcp/internal/auth"
)

const primaryCalendarID = "primary"

// NewGCalendar creates a Calendar client factory sharing the given token.
func NewGCalendar(tok *auth.Token) *GCalendar {
	return &GCalendar{tok: tok}
}

// GCalendar wraps Calendar API operations on the user's primary calendar.
type GCalendar struct {
	tok *auth.Token
}

// ListUpcoming lists events starting at or after timeMin (RFC 3339), with
// recurring events expanded to single occurrences, ordered by start time.
func (c *GCalendar) ListUpcoming(ctx context.Context, timeMin string, maxResults int64) (*calendar.Events, error) {
	svc, err := c.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	result, err := svc.Events.List(primaryCalendarID).
		TimeMin(timeMin).
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, fmt.Errorf("events.List failed: %w", err)
	}

	return result, nil
}

// InsertEvent creates an event on the primary calendar.
func (c *GCalendar) InsertEvent(ctx context.Context, event *calendar.Event) (*calendar.Event, error) {
	svc, err := c.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	created, err := svc.Events.Insert(primaryCalendarID, event).Do()
	if err != nil {
		return nil, fmt.Errorf("events.Insert failed: %w", err)
	}

	return created, nil
}

func (c *GCalendar) newSvc(ctx context.Context) (*calendar.Service, error) {
	ts, err := tokenSource(ctx, c.tok)
	if err != nil {
		return nil, fmt.Errorf("tokenSource failed: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("calendar.NewService failed: %w", err)
	}

	return svc, nil
}

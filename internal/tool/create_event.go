package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/calendar/v3"
)

// CreateEventRequest describes the event to create.
type CreateEventRequest struct {
	Summary     string `json:"summary" jsonschema:"event title"`
	StartTime   string `json:"start_time" jsonschema:"start time in ISO 8601 format"`
	EndTime     string `json:"end_time" jsonschema:"end time in ISO 8601 format"`
	Description string `json:"description,omitempty" jsonschema:"optional event description"`
}

// CreateEventResponse confirms the created event.
type CreateEventResponse struct {
	Result string `json:"result" jsonschema:"confirmation with a link to the event"`
}

type createEventSvc interface {
	InsertEvent(ctx context.Context, event *calendar.Event) (*calendar.Event, error)
}

// NewCreateEvent creates a new CreateEvent tool.
func NewCreateEvent(svc createEventSvc) *CreateEvent {
	return &CreateEvent{svc: svc}
}

// CreateEvent inserts an event on the primary calendar.
type CreateEvent struct {
	svc createEventSvc
}

// CreateEvent inserts the event with UTC timezone on both endpoints.
func (t *CreateEvent) CreateEvent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateEventRequest,
) (*mcp.CallToolResult, CreateEventResponse, error) {
	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Start:       &calendar.EventDateTime{DateTime: input.StartTime, TimeZone: "UTC"},
		End:         &calendar.EventDateTime{DateTime: input.EndTime, TimeZone: "UTC"},
	}

	created, err := t.svc.InsertEvent(ctx, event)
	if err != nil {
		return nil, CreateEventResponse{}, fmt.Errorf("svc.InsertEvent failed: %w", err)
	}

	return nil, CreateEventResponse{
		Result: fmt.Sprintf("Event created: %s", created.HtmlLink),
	}, nil
}

package tool

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/calendar/v3"
)

// ListEventsRequest bounds the listing.
type ListEventsRequest struct {
	MaxResults int64 `json:"max_results,omitempty" jsonschema:"max events to return, default 3"`
}

// ListEventsResponse lists upcoming events as text blocks.
type ListEventsResponse struct {
	Result string `json:"result" jsonschema:"one block per event with summary and start time"`
}

type listEventsSvc interface {
	ListUpcoming(ctx context.Context, timeMin string, maxResults int64) (*calendar.Events, error)
}

// NewListEvents creates a new ListEvents tool.
func NewListEvents(svc listEventsSvc) *ListEvents {
	return &ListEvents{svc: svc}
}

// ListEvents lists upcoming events on the primary calendar.
type ListEvents struct {
	svc listEventsSvc
}

// ListEvents returns events starting at or after now (UTC), recurring events
// expanded, ordered by start time.
func (t *ListEvents) ListEvents(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListEventsRequest,
) (*mcp.CallToolResult, ListEventsResponse, error) {
	input.MaxResults = normalizeMaxResults(input.MaxResults, 3)

	timeMin := time.Now().UTC().Format(time.RFC3339)

	result, err := t.svc.ListUpcoming(ctx, timeMin, input.MaxResults)
	if err != nil {
		return nil, ListEventsResponse{}, fmt.Errorf("svc.ListUpcoming failed: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, ListEventsResponse{Result: "No upcoming events found"}, nil
	}

	blocks := make([]string, 0, len(result.Items))

	for _, event := range result.Items {
		blocks = append(blocks, fmt.Sprintf("Event: %s\nTime: %s\n---", event.Summary, eventStart(event)))
	}

	return nil, ListEventsResponse{Result: strings.Join(blocks, "\n")}, nil
}

// eventStart falls back from the precise timestamp to the all-day date.
func eventStart(event *calendar.Event) string {
	if event.Start == nil {
		return ""
	}
	if event.Start.DateTime != "" {
		return event.Start.DateTime
	}

	return event.Start.Date
}

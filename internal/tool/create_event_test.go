package tool_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"

	"github.com/hal9000y/gmail-calendar-mcp/internal/tool"
)

func TestCreateEvent(t *testing.T) {
	var inserted *calendar.Event

	cal := &calendarSvcMock{
		InsertEventFunc: func(_ context.Context, event *calendar.Event) (*calendar.Event, error) {
			inserted = event
			return &calendar.Event{
				Summary:  event.Summary,
				HtmlLink: "https://calendar.google.com/event?eid=abc123",
			}, nil
		},
	}

	ctx, session := newTestSession(t, &mailSvcMock{}, cal)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "create_event",
		Arguments: tool.CreateEventRequest{
			Summary:   "Standup",
			StartTime: "2024-01-01T09:00:00",
			EndTime:   "2024-01-01T09:15:00",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.False(t, result.IsError, "unexpected error: %v", result.Content)

	var response tool.CreateEventResponse
	require.NoError(t, json.Unmarshal(
		[]byte(result.Content[0].(*mcp.TextContent).Text),
		&response,
	))
	assert.Equal(t, "Event created: https://calendar.google.com/event?eid=abc123", response.Result)

	require.NotNil(t, inserted)
	assert.Equal(t, "Standup", inserted.Summary)
	assert.Empty(t, inserted.Description)

	require.NotNil(t, inserted.Start)
	assert.Equal(t, "2024-01-01T09:00:00", inserted.Start.DateTime)
	assert.Equal(t, "UTC", inserted.Start.TimeZone)

	require.NotNil(t, inserted.End)
	assert.Equal(t, "2024-01-01T09:15:00", inserted.End.DateTime)
	assert.Equal(t, "UTC", inserted.End.TimeZone)
}

func TestCreateEventError(t *testing.T) {
	cal := &calendarSvcMock{
		InsertEventFunc: func(_ context.Context, _ *calendar.Event) (*calendar.Event, error) {
			return nil, fmt.Errorf("invalid start time")
		},
	}

	ctx, session := newTestSession(t, &mailSvcMock{}, cal)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "create_event",
		Arguments: tool.CreateEventRequest{
			Summary:   "Standup",
			StartTime: "not-a-time",
			EndTime:   "also-not-a-time",
		},
	})
	require.NoError(t, err)
	require.True(t, result.IsError, "Result should indicate error")

	errorText := result.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, errorText, "invalid start time")
}

package tool_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"

	"github.com/hal9000y/gmail-calendar-mcp/internal/tool"
)

func TestListEvents(t *testing.T) {
	cases := []struct {
		name     string
		events   []*calendar.Event
		expected string
	}{
		{
			name: "timed and all-day events",
			events: []*calendar.Event{
				{
					Summary: "Standup",
					Start:   &calendar.EventDateTime{DateTime: "2025-01-15T09:00:00Z"},
				},
				{
					Summary: "Company holiday",
					Start:   &calendar.EventDateTime{Date: "2025-01-16"},
				},
			},
			expected: "Event: Standup\nTime: 2025-01-15T09:00:00Z\n---\n" +
				"Event: Company holiday\nTime: 2025-01-16\n---",
		},
		{
			name:     "no events",
			events:   nil,
			expected: "No upcoming events found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotTimeMin string
			var gotMaxResults int64

			cal := &calendarSvcMock{
				ListUpcomingFunc: func(_ context.Context, timeMin string, maxResults int64) (*calendar.Events, error) {
					gotTimeMin = timeMin
					gotMaxResults = maxResults
					return &calendar.Events{Items: tc.events}, nil
				},
			}

			ctx, session := newTestSession(t, &mailSvcMock{}, cal)

			before := time.Now().UTC()

			result, err := session.CallTool(ctx, &mcp.CallToolParams{
				Name:      "list_events",
				Arguments: tool.ListEventsRequest{},
			})
			require.NoError(t, err)
			require.NotNil(t, result)
			require.False(t, result.IsError, "unexpected error: %v", result.Content)

			var response tool.ListEventsResponse
			require.NoError(t, json.Unmarshal(
				[]byte(result.Content[0].(*mcp.TextContent).Text),
				&response,
			))
			assert.Equal(t, tc.expected, response.Result)

			assert.Equal(t, int64(3), gotMaxResults, "default max_results")

			parsed, err := time.Parse(time.RFC3339, gotTimeMin)
			require.NoError(t, err, "timeMin must be RFC 3339")
			assert.Equal(t, time.UTC, parsed.Location())
			assert.WithinDuration(t, before, parsed, time.Minute)
		})
	}
}

func TestListEventsError(t *testing.T) {
	cal := &calendarSvcMock{
		ListUpcomingFunc: func(_ context.Context, _ string, _ int64) (*calendar.Events, error) {
			return nil, fmt.Errorf("calendar unavailable")
		},
	}

	ctx, session := newTestSession(t, &mailSvcMock{}, cal)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "list_events",
		Arguments: tool.ListEventsRequest{MaxResults: 5},
	})
	require.NoError(t, err)
	require.True(t, result.IsError, "Result should indicate error")

	errorText := result.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, errorText, "calendar unavailable")
}

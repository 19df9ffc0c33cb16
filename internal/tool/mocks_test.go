package tool_test

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"

	"github.com/hal9000y/gmail-calendar-mcp/internal/tool"
)

type mailSvcMock struct {
	ListMessagesFunc func(ctx context.Context, query string, maxResults int64) (*gmail.ListMessagesResponse, error)
	GetMessageFunc   func(ctx context.Context, msgID string) (*gmail.Message, error)
	SendMessageFunc  func(ctx context.Context, raw string) (*gmail.Message, error)
}

func (m *mailSvcMock) ListMessages(ctx context.Context, query string, maxResults int64) (*gmail.ListMessagesResponse, error) {
	return m.ListMessagesFunc(ctx, query, maxResults)
}

func (m *mailSvcMock) GetMessage(ctx context.Context, msgID string) (*gmail.Message, error) {
	return m.GetMessageFunc(ctx, msgID)
}

func (m *mailSvcMock) SendMessage(ctx context.Context, raw string) (*gmail.Message, error) {
	return m.SendMessageFunc(ctx, raw)
}

type calendarSvcMock struct {
	ListUpcomingFunc func(ctx context.Context, timeMin string, maxResults int64) (*calendar.Events, error)
	InsertEventFunc  func(ctx context.Context, event *calendar.Event) (*calendar.Event, error)
}

func (m *calendarSvcMock) ListUpcoming(ctx context.Context, timeMin string, maxResults int64) (*calendar.Events, error) {
	return m.ListUpcomingFunc(ctx, timeMin, maxResults)
}

func (m *calendarSvcMock) InsertEvent(ctx context.Context, event *calendar.Event) (*calendar.Event, error) {
	return m.InsertEventFunc(ctx, event)
}

func newTestSession(t *testing.T, mail *mailSvcMock, cal *calendarSvcMock) (context.Context, *mcp.ClientSession) {
	t.Helper()

	server := tool.NewServer(mail, cal)
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ctx := context.Background()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientSession.Close() })

	return ctx, clientSession
}

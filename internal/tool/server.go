package tool

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mailSvc interface {
	sendEmailSvc
	searchEmailsSvc
	getEmailContentSvc
	inboxSvc
}

type calendarSvc interface {
	listEventsSvc
	createEventSvc
}

// NewServer creates an MCP server with Gmail and Calendar tools.
func NewServer(mail mailSvc, cal calendarSvc) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "gmail-calendar", Version: "v1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "send_email",
		Description: "Send an email using Gmail",
	}, NewSendEmail(mail).SendEmail)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_emails",
		Description: "Search emails using Gmail search syntax",
	}, NewSearchEmails(mail).SearchEmails)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_email_content",
		Description: "Get the full content of a specific email",
	}, NewGetEmailContent(mail).GetEmailContent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_events",
		Description: "List upcoming calendar events",
	}, NewListEvents(cal).ListEvents)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_event",
		Description: "Create a new calendar event",
	}, NewCreateEvent(cal).CreateEvent)

	server.AddResource(&mcp.Resource{
		URI:         InboxURI,
		Name:        "inbox",
		Description: "Recent emails from the Gmail inbox",
		MIMEType:    "text/plain",
	}, NewInboxResource(mail).Read)

	return server
}

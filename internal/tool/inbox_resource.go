package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"
)

// InboxURI addresses the recent-inbox resource.
const InboxURI = "gmail://inbox"

const inboxMaxResults = 10

type inboxSvc interface {
	ListMessages(ctx context.Context, query string, maxResults int64) (*gmail.ListMessagesResponse, error)
	GetMessage(ctx context.Context, msgID string) (*gmail.Message, error)
}

// NewInboxResource creates the read-only inbox resource.
func NewInboxResource(svc inboxSvc) *InboxResource {
	return &InboxResource{svc: svc}
}

// InboxResource exposes the 10 most recent inbox messages as plain text.
type InboxResource struct {
	svc inboxSvc
}

// Read lists recent messages and renders their From/Subject headers.
func (r *InboxResource) Read(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result, err := r.svc.ListMessages(ctx, "", inboxMaxResults)
	if err != nil {
		return nil, fmt.Errorf("svc.ListMessages failed: %w", err)
	}

	text := "No messages found"
	if len(result.Messages) > 0 {
		blocks := make([]string, 0, len(result.Messages))

		for _, m := range result.Messages {
			msg, err := r.svc.GetMessage(ctx, m.Id)
			if err != nil {
				return nil, fmt.Errorf("get message %s failed: %w", m.Id, err)
			}

			sender := headerValue(msg.Payload, "From", fallbackSender)
			subject := headerValue(msg.Payload, "Subject", fallbackSubject)

			blocks = append(blocks, fmt.Sprintf("From: %s\nSubject: %s\n---", sender, subject))
		}

		text = strings.Join(blocks, "\n")
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: req.Params.URI, MIMEType: "text/plain", Text: text},
		},
	}, nil
}

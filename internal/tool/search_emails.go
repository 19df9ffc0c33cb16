package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"
)

// SearchEmailsRequest describes the search.
type SearchEmailsRequest struct {
	Query      string `json:"query" jsonschema:"the Gmail search query"`
	MaxResults int64  `json:"max_results,omitempty" jsonschema:"max messages to return, default 10"`
}

// SearchEmailsResponse lists matching messages as text blocks.
type SearchEmailsResponse struct {
	Result string `json:"result" jsonschema:"one block per message with ID, sender and subject"`
}

type searchEmailsSvc interface {
	ListMessages(ctx context.Context, query string, maxResults int64) (*gmail.ListMessagesResponse, error)
	GetMessage(ctx context.Context, msgID string) (*gmail.Message, error)
}

// NewSearchEmails creates a new SearchEmails tool.
func NewSearchEmails(svc searchEmailsSvc) *SearchEmails {
	return &SearchEmails{svc: svc}
}

// SearchEmails searches messages with Gmail query syntax.
type SearchEmails struct {
	svc searchEmailsSvc
}

// SearchEmails lists matching message IDs, then fetches each message for its
// From/Subject headers.
func (t *SearchEmails) SearchEmails(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchEmailsRequest,
) (*mcp.CallToolResult, SearchEmailsResponse, error) {
	input.MaxResults = normalizeMaxResults(input.MaxResults, 10)

	result, err := t.svc.ListMessages(ctx, input.Query, input.MaxResults)
	if err != nil {
		return nil, SearchEmailsResponse{}, fmt.Errorf("svc.ListMessages failed: %w", err)
	}

	if len(result.Messages) == 0 {
		return nil, SearchEmailsResponse{Result: "No emails found"}, nil
	}

	blocks := make([]string, 0, len(result.Messages))

	for _, m := range result.Messages {
		msg, err := t.svc.GetMessage(ctx, m.Id)
		if err != nil {
			return nil, SearchEmailsResponse{}, fmt.Errorf("get message %s failed: %w", m.Id, err)
		}

		sender := headerValue(msg.Payload, "From", fallbackSender)
		subject := headerValue(msg.Payload, "Subject", fallbackSubject)

		blocks = append(blocks, fmt.Sprintf("ID: %s\nFrom: %s\nSubject: %s\n---", m.Id, sender, subject))
	}

	return nil, SearchEmailsResponse{Result: strings.Join(blocks, "\n")}, nil
}

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"
)

// GetEmailContentRequest identifies the message to read.
type GetEmailContentRequest struct {
	EmailID string `json:"email_id" jsonschema:"the message ID to retrieve"`
}

// GetEmailContentResponse carries headers and the decoded body.
type GetEmailContentResponse struct {
	Result string `json:"result" jsonschema:"sender, subject and decoded message body"`
}

type getEmailContentSvc interface {
	GetMessage(ctx context.Context, msgID string) (*gmail.Message, error)
}

// NewGetEmailContent creates a new GetEmailContent tool.
func NewGetEmailContent(svc getEmailContentSvc) *GetEmailContent {
	return &GetEmailContent{svc: svc}
}

// GetEmailContent fetches one message and decodes its body.
type GetEmailContent struct {
	svc getEmailContentSvc
}

// GetEmailContent retrieves a message, extracts From/Subject and decodes the
// body payload: first part if multipart, top-level body otherwise.
func (t *GetEmailContent) GetEmailContent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetEmailContentRequest,
) (*mcp.CallToolResult, GetEmailContentResponse, error) {
	msg, err := t.svc.GetMessage(ctx, input.EmailID)
	if err != nil {
		return nil, GetEmailContentResponse{}, fmt.Errorf("get message %s failed: %w", input.EmailID, err)
	}

	sender := headerValue(msg.Payload, "From", fallbackSender)
	subject := headerValue(msg.Payload, "Subject", fallbackSubject)

	content := "No content"
	if data := bodyData(msg.Payload); data != "" {
		content, err = decodeBody(data)
		if err != nil {
			return nil, GetEmailContentResponse{}, fmt.Errorf("decodeBody failed: %w", err)
		}
	}

	return nil, GetEmailContentResponse{
		Result: fmt.Sprintf("From: %s\nSubject: %s\n\nContent:\n%s", sender, subject, content),
	}, nil
}

func bodyData(payload *gmail.MessagePart) string {
	if payload == nil {
		return ""
	}

	if len(payload.Parts) > 0 {
		if payload.Parts[0].Body == nil {
			return ""
		}
		return payload.Parts[0].Body.Data
	}

	if payload.Body == nil {
		return ""
	}

	return payload.Body.Data
}

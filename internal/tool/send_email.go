package tool

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"
)

// SendEmailRequest describes the message to send.
type SendEmailRequest struct {
	To      string `json:"to" jsonschema:"recipient email address"`
	Subject string `json:"subject" jsonschema:"email subject"`
	Body    string `json:"body" jsonschema:"plain text email body"`
}

// SendEmailResponse confirms the sent message.
type SendEmailResponse struct {
	Result string `json:"result" jsonschema:"confirmation with the sent message ID"`
}

type sendEmailSvc interface {
	SendMessage(ctx context.Context, raw string) (*gmail.Message, error)
}

// NewSendEmail creates a new SendEmail tool.
func NewSendEmail(svc sendEmailSvc) *SendEmail {
	return &SendEmail{svc: svc}
}

// SendEmail sends a single-part text email via Gmail.
type SendEmail struct {
	svc sendEmailSvc
}

// SendEmail builds an RFC 2822 message and submits it as the authenticated user.
func (t *SendEmail) SendEmail(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SendEmailRequest,
) (*mcp.CallToolResult, SendEmailResponse, error) {
	raw := buildRawMessage(input.To, input.Subject, input.Body)

	msg, err := t.svc.SendMessage(ctx, raw)
	if err != nil {
		return nil, SendEmailResponse{}, fmt.Errorf("svc.SendMessage failed: %w", err)
	}

	return nil, SendEmailResponse{
		Result: fmt.Sprintf("Email sent successfully (Message ID: %s)", msg.Id),
	}, nil
}

func buildRawMessage(to, subject, body string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return base64.RawURLEncoding.EncodeToString([]byte(b.String()))
}

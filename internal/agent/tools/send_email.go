package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"eva-assistant/internal/agent"
	pkgLog "eva-assistant/pkg/log"
)

// MailClient abstracts Gmail for mocking.
type MailClient interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SendEmailTool sends an email through the connected Gmail account.
type SendEmailTool struct {
	mail MailClient
	l    pkgLog.Logger
}

func NewSendEmailTool(mail MailClient, l pkgLog.Logger) *SendEmailTool {
	return &SendEmailTool{mail: mail, l: l}
}

func (t *SendEmailTool) Name() string {
	return "send_gmail"
}

func (t *SendEmailTool) Description() string {
	return "Sends an email using the user's Gmail account."
}

func (t *SendEmailTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"to": map[string]interface{}{
				"type":        "string",
				"description": "Recipient email address",
			},
			"subject": map[string]interface{}{
				"type":        "string",
				"description": "Email subject line",
			},
			"body": map[string]interface{}{
				"type":        "string",
				"description": "The plain text content of the email",
			},
		},
		"required": []string{"to", "subject", "body"},
	}
}

type sendEmailInput struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (t *SendEmailTool) Execute(ctx context.Context, args map[string]interface{}) string {
	if t.mail == nil {
		return "❌ Error: Gmail is not configured."
	}

	inputBytes, err := json.Marshal(args)
	if err != nil {
		return fmt.Sprintf("❌ Failed to read arguments: %v", err)
	}

	var params sendEmailInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return fmt.Sprintf("❌ Failed to parse arguments: %v", err)
	}

	if params.To == "" {
		return "❌ Error: recipient email is required."
	}

	t.l.Infof(ctx, "send_gmail: to=%s subject=%q", params.To, params.Subject)

	if err := t.mail.Send(ctx, params.To, params.Subject, params.Body); err != nil {
		t.l.Errorf(ctx, "send_gmail failed: %v", err)
		return fmt.Sprintf("❌ Failed to send email: %v", err)
	}

	return fmt.Sprintf("✅ Email sent successfully to %s", params.To)
}

var _ agent.Tool = (*SendEmailTool)(nil)

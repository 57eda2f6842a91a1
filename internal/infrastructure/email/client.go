// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"
	"os"

	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/email/templates"
	"github.com/resendlabs/resend-go"
)

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendFormSubmissionEmail(toEmail, formTitle, submittedAt string, values []templates.SubmissionValue) error
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
}

// NewService creates a new email service client for a tenant. An empty
// apiKey falls back to the RESEND_API_KEY environment variable.
func NewService(apiKey string) (Service, error) {
	if apiKey == "" {
		apiKey = os.Getenv("RESEND_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no Resend API key configured")
	}

	fromEmail := os.Getenv("NOTIFY_EMAIL_FROM")
	if fromEmail == "" {
		fromEmail = "noreply@sitepanel.dev" // Default from address
	}

	fromName := os.Getenv("NOTIFY_EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "SitePanel" // Default from name
	}

	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}, nil
}

// SendFormSubmissionEmail composes and sends a form submission notification.
func (c *ResendClient) SendFormSubmissionEmail(toEmail, formTitle, submittedAt string, values []templates.SubmissionValue) error {
	subject := fmt.Sprintf("New submission: %s", formTitle)

	content := templates.GetSubmissionEmailContent(templates.SubmissionEmailProps{
		FormTitle:   formTitle,
		Values:      values,
		SubmittedAt: submittedAt,
	})

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: subject,
		Content:   content,
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    htmlContent,
	}

	_, err := c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send submission email via Resend: %w", err)
	}

	return nil
}

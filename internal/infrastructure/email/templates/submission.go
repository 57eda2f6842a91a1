// Package templates provides email template content builders
package templates

import (
	"strings"
)

// SubmissionValue is one answered field in a form submission email.
type SubmissionValue struct {
	Label string
	Value string
}

// SubmissionEmailProps carries the data for a form submission notification.
type SubmissionEmailProps struct {
	FormTitle   string
	SiteURL     string
	Values      []SubmissionValue
	SubmittedAt string
}

// GetSubmissionEmailContent builds the HTML body for a form submission
// notification. All field values are treated as untrusted text.
func GetSubmissionEmailContent(props SubmissionEmailProps) string {
	var b strings.Builder

	b.WriteString(GetParagraphWithHTML("You have a new submission on <strong>" + sanitizeTextAttribute(props.FormTitle) + "</strong>."))

	for _, v := range props.Values {
		b.WriteString(GetParagraphWithHTML("<strong>" + sanitizeTextAttribute(v.Label) + ":</strong> " + sanitizeTextAttribute(v.Value)))
	}

	if props.SubmittedAt != "" {
		b.WriteString(GetParagraph("Submitted at " + props.SubmittedAt))
	}

	if props.SiteURL != "" {
		b.WriteString(GetButton(ButtonProps{
			Text: "Open admin panel",
			URL:  props.SiteURL,
		}))
	}

	return b.String()
}

// Package template provides confirmation-mail body rendering.
//
// Supported variables:
//
//	{{user.email}}, {{confirm.url}}, {{confirm.max_age}}
package template

import (
	"fmt"
	"strings"
	"time"
)

// ConfirmationData carries the values substituted into a mail template.
type ConfirmationData struct {
	Email  string
	URL    string
	MaxAge time.Duration
}

// DefaultConfirmationBody is used when no custom template is configured.
const DefaultConfirmationBody = `Welcome to the cocktail bar!

Please confirm your email address by opening the link below within {{confirm.max_age}}:

{{confirm.url}}

If you did not register with {{user.email}}, ignore this message.`

// RenderConfirmation substitutes the template variables with actual values.
// Unknown variables are left untouched.
func RenderConfirmation(body string, data ConfirmationData) string {
	maxAge := ""
	if data.MaxAge > 0 {
		maxAge = formatMaxAge(data.MaxAge)
	}

	return strings.NewReplacer(
		"{{user.email}}", data.Email,
		"{{confirm.url}}", data.URL,
		"{{confirm.max_age}}", maxAge,
	).Replace(body)
}

func formatMaxAge(d time.Duration) string {
	if d%time.Hour == 0 {
		hours := int(d / time.Hour)
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d minutes", int(d/time.Minute))
}

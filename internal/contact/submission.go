// Package contact turns contact form submissions into outbound notifications.
package contact

import (
	"net/url"
	"strings"
)

// Submission is a single contact form submission. It lives for one request.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// FromForm reads a submission from url-encoded form values
func FromForm(values url.Values) Submission {
	return Submission{
		Name:    values.Get("name"),
		Email:   values.Get("email"),
		Message: values.Get("message"),
	}
}

// Missing returns the names of blank fields, in form order.
// Only the no-JS form path checks this; the JSON endpoint accepts anything.
func (s Submission) Missing() []string {
	var missing []string
	if strings.TrimSpace(s.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(s.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(s.Message) == "" {
		missing = append(missing, "message")
	}
	return missing
}

// Receipt identifies a delivered submission
type Receipt struct {
	ID       string
	Notifier string
}

package contact

import (
	"embed"
	"fmt"
	"net/mail"
	"strings"

	"github.com/aymerick/raymond"

	"github.com/knorx/knorx-site/internal/config"
)

//go:embed templates/*.hbs
var templateFS embed.FS

func init() {
	// Escapes the text, then turns newlines into <br>
	raymond.RegisterHelper("breaklines", func(text string) raymond.SafeString {
		escaped := raymond.Escape(strings.ReplaceAll(text, "\r\n", "\n"))
		return raymond.SafeString(strings.ReplaceAll(escaped, "\n", "<br>\n"))
	})
}

// Notification is the rendered message sent for one submission
type Notification struct {
	ID      string
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Renderer builds notifications from submissions using Handlebars templates
type Renderer struct {
	from          string
	to            string
	subjectPrefix string
	html          *raymond.Template
	text          *raymond.Template
}

// NewRenderer parses the embedded lead templates
func NewRenderer(cfg config.ContactConfig) (*Renderer, error) {
	html, err := parseTemplate("lead.html.hbs")
	if err != nil {
		return nil, err
	}
	text, err := parseTemplate("lead.txt.hbs")
	if err != nil {
		return nil, err
	}

	return &Renderer{
		from:          cfg.From,
		to:            cfg.To,
		subjectPrefix: cfg.SubjectPrefix,
		html:          html,
		text:          text,
	}, nil
}

func parseTemplate(name string) (*raymond.Template, error) {
	content, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("template not found: %s", name)
	}
	tmpl, err := raymond.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return tmpl, nil
}

// Render produces the notification for sub. User fields are escaped in the HTML body.
func (r *Renderer) Render(id string, sub Submission) (Notification, error) {
	data := map[string]string{
		"name":    sub.Name,
		"email":   sub.Email,
		"message": sub.Message,
	}

	html, err := r.html.Exec(data)
	if err != nil {
		return Notification{}, fmt.Errorf("render html body: %w", err)
	}
	text, err := r.text.Exec(data)
	if err != nil {
		return Notification{}, fmt.Errorf("render text body: %w", err)
	}

	return Notification{
		ID:      id,
		From:    r.from,
		To:      r.to,
		ReplyTo: replyTo(sub.Email),
		Subject: r.subjectPrefix + singleLine(sub.Name),
		HTML:    html,
		Text:    text,
	}, nil
}

// replyTo returns the bare address when email parses, or "". The raw value
// still appears in the body.
func replyTo(email string) string {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return ""
	}
	return addr.Address
}

// singleLine keeps header values on one line
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

package contact

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knorx/knorx-site/internal/config"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(config.ContactConfig{
		From:          "KNORX Contact <onboarding@resend.dev>",
		To:            "leads@knorx.tech",
		SubjectPrefix: "New Lead: ",
	})
	require.NoError(t, err)
	return r
}

func TestRenderer_Render(t *testing.T) {
	r := newTestRenderer(t)

	msg, err := r.Render("sub-1", Submission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Message: "We need an ERP.\nSoon.",
	})
	require.NoError(t, err)

	assert.Equal(t, "sub-1", msg.ID)
	assert.Equal(t, "KNORX Contact <onboarding@resend.dev>", msg.From)
	assert.Equal(t, "leads@knorx.tech", msg.To)
	assert.Equal(t, "ada@example.com", msg.ReplyTo)
	assert.Equal(t, "New Lead: Ada Lovelace", msg.Subject)

	assert.Contains(t, msg.HTML, "<p><strong>Name:</strong> Ada Lovelace</p>")
	assert.Contains(t, msg.HTML, "<p><strong>Email:</strong> ada@example.com</p>")
	assert.Contains(t, msg.HTML, "We need an ERP.<br>\nSoon.")

	assert.Contains(t, msg.Text, "Name: Ada Lovelace")
	assert.Contains(t, msg.Text, "Message:\nWe need an ERP.\nSoon.")
}

func TestRenderer_ReplyTo(t *testing.T) {
	r := newTestRenderer(t)

	tests := []struct {
		name      string
		email     string
		wantReply string
	}{
		{"plain address", "ada@example.com", "ada@example.com"},
		{"surrounding space", "  ada@example.com \n", "ada@example.com"},
		{"display name", "Ada Lovelace <ada@example.com>", "ada@example.com"},
		{"not an address", "not-an-email", ""},
		{"header injection", "ada@example.com\r\nBcc: victim@example.com", ""},
		{"blank", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := r.Render("sub-r", Submission{Name: "Ada", Email: tt.email, Message: "Hi"})
			require.NoError(t, err)
			assert.Equal(t, tt.wantReply, msg.ReplyTo)
		})
	}
}

func TestRenderer_InvalidEmailStaysInBody(t *testing.T) {
	r := newTestRenderer(t)

	msg, err := r.Render("sub-4", Submission{Name: "Ada", Email: "not-an-email", Message: "Call me"})
	require.NoError(t, err)

	assert.Empty(t, msg.ReplyTo)
	assert.Contains(t, msg.HTML, "<p><strong>Email:</strong> not-an-email</p>")
	assert.Contains(t, msg.Text, "Email: not-an-email")
}

func TestRenderer_EscapesUserFields(t *testing.T) {
	r := newTestRenderer(t)

	msg, err := r.Render("sub-2", Submission{
		Name:    `<img src=x onerror=alert(1)>`,
		Email:   "a@b.c",
		Message: `<script>alert("hi")</script> & more`,
	})
	require.NoError(t, err)

	assert.NotContains(t, msg.HTML, "<script>")
	assert.NotContains(t, msg.HTML, "<img")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
	assert.Contains(t, msg.HTML, "&amp; more")

	// The text body is not HTML, so it keeps the input as typed
	assert.Contains(t, msg.Text, `<script>alert("hi")</script> & more`)
}

func TestRenderer_SubjectStaysOnOneLine(t *testing.T) {
	r := newTestRenderer(t)

	msg, err := r.Render("sub-3", Submission{Name: "Ada\r\nBcc: victim@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "New Lead: Ada Bcc: victim@example.com", msg.Subject)
	assert.Empty(t, msg.ReplyTo)
}

func TestSubmission_Missing(t *testing.T) {
	tests := []struct {
		name string
		sub  Submission
		want []string
	}{
		{"complete", Submission{Name: "Ada", Email: "ada@example.com", Message: "Hi"}, nil},
		{"all blank", Submission{}, []string{"name", "email", "message"}},
		{"whitespace only", Submission{Name: "  ", Email: "ada@example.com", Message: "\n\t"}, []string{"name", "message"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sub.Missing())
		})
	}
}

func TestFromForm(t *testing.T) {
	values := url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello"},
		"extra":   {"ignored"},
	}

	assert.Equal(t, Submission{Name: "Ada", Email: "ada@example.com", Message: "Hello"}, FromForm(values))
}

package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	// ContactSuccessText is shown after a delivered submission
	ContactSuccessText = "Message sent successfully."
	// ContactErrorText is the only failure message users ever see
	ContactErrorText = "Something went wrong. Please try again."
)

// ContactSection renders the contact form. The form posts to /contact without
// JavaScript; contact.js intercepts it and posts JSON to /api/contact instead.
func ContactSection(form ContactForm) g.Node {
	return Section(
		ID("contact"),
		Class("section"),
		Div(
			Class("container"),
			Div(
				Class("contact-container"),
				H2(Class("section-title"), g.Text("Start a Conversation")),
				P(
					Class("contact-intro"),
					g.Text("Ready to modernize your infrastructure? Let’s discuss your objectives."),
				),
				Form(
					ID("contact-form"),
					Class("contact-form"),
					Action("/contact"),
					Method("post"),
					g.Attr("data-endpoint", "/api/contact"),

					Input(
						Name("name"),
						Type("text"),
						Placeholder("Full Name"),
						g.Attr("autocomplete", "name"),
						Required(),
						Class("input"),
						Value(form.Name),
					),
					Input(
						Name("email"),
						Type("email"),
						Placeholder("Email"),
						g.Attr("autocomplete", "email"),
						Required(),
						Class("input"),
						Value(form.Email),
					),
					Textarea(
						Name("message"),
						Placeholder("How can we help?"),
						Required(),
						Class("textarea"),
						g.Text(form.Message),
					),
					Button(
						Type("submit"),
						Class("btn btn-primary btn-block"),
						g.Attr("data-idle-label", "Send Message"),
						g.Attr("data-loading-label", "Sending..."),
						g.Text("Send Message"),
					),

					P(
						ID("contact-success"),
						Class("form-status form-status-success"),
						g.Attr("role", "status"),
						g.If(!form.Success, g.Attr("hidden")),
						g.Raw(checkIcon),
						g.Text(" "+ContactSuccessText),
					),
					P(
						ID("contact-error"),
						Class("form-status form-status-error"),
						g.Attr("role", "alert"),
						g.Attr("data-default-message", ContactErrorText),
						g.If(form.Error == "", g.Attr("hidden")),
						g.Text(form.Error),
					),
				),
			),
		),
	)
}

func PageFooter(year int) g.Node {
	return Footer(
		Class("site-footer"),
		g.Textf("© %d KNORX Technologies. All rights reserved.", year),
	)
}

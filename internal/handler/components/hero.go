package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return Section(
		Class("hero"),
		ID("hero"),

		Div(Class("hero-glow"), g.Attr("aria-hidden", "true")),

		Div(
			Class("container hero-content"),
			P(Class("hero-eyebrow"), g.Text("Knowledge-Driven Execution")),
			H1(
				Class("hero-title"),
				g.Text("Technology that "),
				Span(Class("hero-highlight"), g.Text("moves your business forward")),
			),
			P(
				Class("hero-subtitle"),
				g.Text("We design, automate, and optimize business operations with modern, scalable technology, from digital platforms to enterprise systems."),
			),
			Div(
				Class("hero-actions"),
				A(Href("#contact"), Class("btn btn-primary"), g.Text("Work with Us")),
				A(Href("#services"), Class("btn btn-secondary"), g.Text("View Services")),
			),
		),
	)
}

func About() g.Node {
	return Section(
		ID("about"),
		Class("section section-alt"),
		Div(
			Class("container about"),
			H2(Class("section-title"), g.Text("About Knorx")),
			P(
				Class("about-text"),
				Strong(g.Text("Knorx Technologies")),
				g.Text(" is a remote-first technology solutions provider. We help organizations design, automate, and optimize their business operations using modern, scalable technology."),
			),
			P(
				Class("about-text"),
				g.Text("We specialize in building next-generation digital solutions that are practical, secure, and aligned with real business outcomes. Our approach combines deep domain understanding with knowledge-driven execution, ensuring every solution is optimized for performance, reliability, and growth."),
			),
			P(
				Class("about-text"),
				g.Text("From process automation and low-code platforms to data-driven decision systems, we work closely with our clients to deliver "),
				Strong(g.Text("results, not just technology.")),
				g.Text(" Whether you are a growing organization or an enterprise team, Knorx provides optimized, results-driven solutions that help you operate smarter, move faster, and scale with confidence."),
			),
		),
	)
}

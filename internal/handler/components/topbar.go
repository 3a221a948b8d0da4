package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SiteHeader renders the sticky header, desktop nav, hamburger toggle and mobile overlay
func SiteHeader() g.Node {
	return g.Group([]g.Node{
		Header(
			Class("site-header"),
			Div(
				Class("nav"),
				Logo(),

				Nav(
					Class("desktop-nav"),
					g.Attr("aria-label", "Primary"),
					g.Map(navLinks, navLink),
				),

				Button(
					Type("button"),
					Class("mobile-toggle"),
					ID("mobile-toggle"),
					g.Attr("aria-label", "Toggle menu"),
					g.Attr("aria-controls", "mobile-menu"),
					g.Attr("aria-expanded", "false"),
					Span(Class("icon-open"), g.Raw(hamburgerIcon)),
					Span(Class("icon-close"), g.Attr("hidden"), g.Raw(closeIcon)),
				),
			),
		),

		Div(
			ID("mobile-menu"),
			Class("mobile-menu"),
			g.Attr("hidden"),
			Nav(
				Class("mobile-menu-links"),
				g.Attr("aria-label", "Mobile"),
				g.Map(navLinks, navLink),
			),
		),
	})
}

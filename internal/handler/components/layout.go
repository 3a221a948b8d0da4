package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	defaultTitle       = "KNORX Technologies | Knowledge-Driven Execution"
	defaultDescription = "Remote-first technology solutions provider specializing in digital platforms, application engineering, and enterprise automation."
	ogTitle            = "KNORX Technologies"
	ogDescription      = "We help organizations design, automate, and optimize business operations."
)

// PageConfig carries per-page head metadata
type PageConfig struct {
	Title       string
	Description string
	URL         string // absolute URL of the page, used for og:url
	OGImage     string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = defaultTitle
	}

	if config.Description == "" {
		config.Description = defaultDescription
	}

	if config.OGImage == "" {
		config.OGImage = "/static/images/logo.svg"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(ogTitle)),
				Meta(g.Attr("property", "og:description"), Content(ogDescription)),
				g.If(config.URL != "", Meta(g.Attr("property", "og:url"), Content(config.URL))),
				Meta(g.Attr("property", "og:site_name"), Content("KNORX")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),
				Meta(g.Attr("property", "og:image:width"), Content("800")),
				Meta(g.Attr("property", "og:image:height"), Content("600")),
				Meta(g.Attr("property", "og:locale"), Content("en_US")),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("icon"), Type("image/svg+xml"), Href("/static/images/favicon.svg")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
			),
			Body(
				Main(
					Class("site"),
					g.Group(content),
				),

				Script(Src("/static/js/menu.js"), Defer()),
				Script(Src("/static/js/contact.js"), Defer()),
			),
		),
	})
}

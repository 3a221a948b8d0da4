package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// component adapts a gomponents node to templ.Component so handlers can use
// templ.Handler for status codes and content type.
func component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return node.Render(w)
	})
}

// HomePage renders the landing page
func HomePage(view HomeView) templ.Component {
	return component(Layout(
		view.Page,
		SiteHeader(),
		Hero(),
		About(),
		ServicesSection(GetAllServices()),
		ContactSection(view.Contact),
		PageFooter(view.Year),
	))
}

// NotFoundPage renders the 404 page
func NotFoundPage(year int) templ.Component {
	return component(Layout(
		PageConfig{Title: "Page not found | KNORX Technologies"},
		SiteHeader(),
		Section(
			Class("section not-found"),
			Div(
				Class("container"),
				H1(Class("section-title"), g.Text("Page not found")),
				P(g.Text("The page you are looking for does not exist.")),
				A(Href("/"), Class("btn btn-primary"), g.Text("Back to home")),
			),
		),
		PageFooter(year),
	))
}

package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return A(
		Class("logo"),
		Href("/"),
		Span(Class("logo-text"), g.Text("KNORX")),
	)
}

const (
	hamburgerIcon = `<svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><line x1="3" y1="12" x2="21" y2="12"></line><line x1="3" y1="6" x2="21" y2="6"></line><line x1="3" y1="18" x2="21" y2="18"></line></svg>`
	closeIcon     = `<svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><line x1="18" y1="6" x2="6" y2="18"></line><line x1="6" y1="6" x2="18" y2="18"></line></svg>`
	checkIcon     = `<svg width="18" height="18" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><polyline points="20 6 9 17 4 12"></polyline></svg>`
)

type navItem struct {
	Label string
	Href  string
	CTA   bool
}

// navLinks are shared by the desktop nav and the mobile overlay
var navLinks = []navItem{
	{"About", "#about", false},
	{"Services", "#services", false},
	{"Get Started", "#contact", true},
}

func navLink(item navItem) g.Node {
	class := "nav-link"
	if item.CTA {
		class = "nav-button"
	}
	return A(Href(item.Href), Class(class), g.Text(item.Label))
}

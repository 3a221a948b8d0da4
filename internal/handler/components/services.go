package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// GetAllServices returns the service areas in display order
func GetAllServices() []ServiceArea {
	return []ServiceArea{
		{
			Slug:  "digital-platforms",
			Title: "Digital Platforms & Web Development",
			Items: []string{"Corporate websites", "Enterprise web platforms", "E-commerce systems", "Secure client portals", "API integrations"},
		},
		{
			Slug:  "application-engineering",
			Title: "Application Engineering",
			Items: []string{"Custom web & mobile apps (iOS & Android)", "Business automation tools", "Low-code platform solutions", "SaaS system development"},
		},
		{
			Slug:  "enterprise-systems",
			Title: "Enterprise Systems & Solutions",
			Items: []string{"ERP implementation & customization", "Workflow automation", "Business process optimization", "Intelligent operational platforms"},
		},
		{
			Slug:  "digital-transformation",
			Title: "Digital Transformation",
			Items: []string{"Technology strategy & execution", "Process reengineering", "End-to-end automation of operations"},
		},
		{
			Slug:  "consulting",
			Title: "Consulting & Knowledge Services",
			Items: []string{"Strategic advisory for modernization", "Execution frameworks", "Optimization of enterprise resources"},
		},
	}
}

func ServicesSection(services []ServiceArea) g.Node {
	return Section(
		ID("services"),
		Class("section"),
		Div(
			Class("container"),
			H2(Class("section-title"), g.Text("Our Services")),
			Div(
				Class("services-grid"),
				g.Map(services, serviceCard),
			),
		),
	)
}

func serviceCard(s ServiceArea) g.Node {
	return Article(
		ID("service-"+s.Slug),
		Class("card"),
		H3(Class("card-title"), g.Text(s.Title)),
		Ul(
			Class("card-list"),
			g.Map(s.Items, func(item string) g.Node {
				return Li(Class("card-item"), g.Text(item))
			}),
		),
	)
}

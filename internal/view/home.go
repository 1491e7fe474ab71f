package view

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// HomePage is the body of the landing page.
func HomePage(header HeaderData) []cmp.Node {
	return []cmp.Node{
		Header(header),
		g.Main(
			g.Class("container mx-auto p-8"),
			g.H1(g.Class("text-3xl mb-3"), cmp.Text("Welcome to Ecommerce")),
			g.P(
				cmp.Text("Already a customer? "),
				g.A(g.Href("/login"), cmp.Text("Sign in")),
			),
		),
	}
}

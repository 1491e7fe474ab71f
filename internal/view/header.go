package view

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// HeaderData is what the site header needs to know about the visitor.
type HeaderData struct {
	// Language is the display name of the visitor's preferred language.
	Language string
}

// Header is the static site header shown above every page.
func Header(data HeaderData) cmp.Node {
	return g.Header(
		g.Class("site-header"),
		g.Div(g.A(g.Href("/"), cmp.Text("ECOMMERCE"))),
		g.Div(cmp.Text("Delivery To Indonesia")),
		g.Div(
			g.Class("flex items-center"),
			g.Div(cmp.Text("select")),
			g.Div(g.Input(g.Type("text"), g.Name("q"), g.Aria("label", "Search"))),
			g.Div(g.Button(g.Type("button"), cmp.Text("search"))),
		),
		g.Div(g.ID("header-language"), cmp.Text(data.Language)),
		g.Div(
			g.A(g.Href("/login"),
				g.Div(cmp.Text("hello, sign in")),
				g.Div(cmp.Text("Account & List")),
			),
		),
		g.Div(
			g.Div(cmp.Text("Return")),
			g.Div(cmp.Text("Order")),
		),
		g.Div(cmp.Text("Cart")),
	)
}

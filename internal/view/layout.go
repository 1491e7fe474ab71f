package view

import (
	"github.com/a-h/templ"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Ecommerce"
	}
	return "Ecommerce"
}

// Base wraps body in the full HTML document shared by every page.
func Base(title, lang string, body ...cmp.Node) templ.Component {
	return AdaptGomponentToTempl(g.Doctype(
		g.HTML(
			g.Lang(lang),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Link(g.Rel("stylesheet"), g.Href("/static/app.css")),
				g.Script(g.Src(htmxSrc), g.Defer()),
			),
			g.Body(body...),
		),
	))
}

package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// GomponentToTemplAdapter wraps a gomponents.Node to satisfy the templ.Component interface.
// This allows gomponents markup to be handed to anything expecting a templ component.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements the templ.Component interface by delegating the writing to the
// underlying gomponents.Node.
func (a *GomponentToTemplAdapter) Render(ctx context.Context, w io.Writer) error {
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

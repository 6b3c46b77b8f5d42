package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// GomponentToTemplAdapter wraps a gomponents node so it can be rendered where a
// templ.Component is expected.
type GomponentToTemplAdapter struct {
	Node g.Node
}

// Render writes the node. The context is not used by gomponents.
func (a *GomponentToTemplAdapter) Render(_ context.Context, w io.Writer) error {
	if a.Node == nil {
		return nil
	}
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents node into a templ.Component.
func AdaptGomponentToTempl(node g.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// TemplToGomponentAdapter wraps a templ.Component so it can be placed inside a
// gomponents tree. The context captured at construction is handed to templ.
type TemplToGomponentAdapter struct {
	Ctx       context.Context
	Component templ.Component
}

// Render implements gomponents.Node.
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	if a.Component == nil {
		return nil
	}
	ctx := a.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return a.Component.Render(ctx, w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents node that
// renders with ctx.
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) g.Node {
	return &TemplToGomponentAdapter{Ctx: ctx, Component: component}
}

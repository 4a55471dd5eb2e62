package compkit

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/compkit/lib/markup"
)

// Text returns an escaped text node, the usual way to pass plain strings
// as content:
//
//	List.Render(compkit.Call{Content: compkit.Text("Content")})
func Text(s string) templ.Component {
	return markup.Text(s)
}

// Raw returns trusted markup written verbatim.
func Raw(html string) templ.Component {
	return markup.Raw(html)
}

// Fragment groups nodes without a wrapping element.
func Fragment(nodes ...templ.Component) templ.Component {
	return markup.Fragment(nodes...)
}

// RenderString renders a node to a string with a background context.
func RenderString(node templ.Component) (string, error) {
	return markup.String(context.Background(), node)
}

// Write renders a component call straight to w.
//
//	if err := compkit.Write(ctx, w, List, compkit.Call{Content: compkit.Text("x")}); err != nil {
//	    return err
//	}
func Write(ctx context.Context, w io.Writer, r Renderer, call Call) error {
	node, err := r.Render(call)
	if err != nil {
		return err
	}
	return node.Render(ctx, w)
}

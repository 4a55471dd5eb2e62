package compkit

import (
	"github.com/a-h/templ"

	"github.com/pthm/compkit/lib/markup"
)

// Backend supplies the element primitives the engine composes.
//
// The engine treats whatever the backend returns as an opaque node: it
// never inspects or serializes node contents itself. markup.HTML is the
// default implementation.
//
// Implementations must be safe for concurrent use; the engine calls them
// from any goroutine that renders.
type Backend interface {
	// Tag builds a void element (no children).
	Tag(name string, attrs templ.Attributes) templ.Component
	// ContentTag builds an element wrapping children.
	ContentTag(name string, children templ.Component, attrs templ.Attributes) templ.Component
}

var _ Backend = markup.HTML{}

// Renderer is implemented by anything that renders a call to a node.
// *Component satisfies it; tests and higher-level helpers accept it so a
// stub can stand in.
type Renderer interface {
	Render(call Call) (templ.Component, error)
}

// Package components is a small component library built with compkit,
// used by the example page.
package components

import (
	"github.com/a-h/templ"

	"github.com/pthm/compkit"
	"github.com/pthm/compkit/lib/markup"
)

// C holds all component instances.
// Usage: components.C.Button.Render(compkit.Call{Content: compkit.Text("Save")})
var C struct {
	Page     *compkit.Component
	Card     *compkit.Component
	TodoList *compkit.Component
	TodoItem *compkit.Component
	Button   *compkit.Component
	NavLink  *compkit.Component
	Divider  *compkit.Component
	Badge    *compkit.Component
}

var html = markup.HTML{}

// Link renders an anchor around its children.
var Link = compkit.DelegateFunc(func(children templ.Component, attrs templ.Attributes) templ.Component {
	return html.ContentTag("a", children, attrs)
}).Named("link")

// Init defines all components and registers them. Call this once at
// start-up; it panics if a definition is invalid.
func Init(reg *compkit.Registry) {
	reg.Add(
		Definition("page"),
		Definition("card"),
		Definition("todo-list"),
		Definition("todo-item"),
		Definition("button"),
		Definition("nav-link"),
		Definition("divider"),
		Definition("badge"),
	)

	C.Page = mustGet(reg, "page")
	C.Card = mustGet(reg, "card")
	C.TodoList = mustGet(reg, "todo-list")
	C.TodoItem = mustGet(reg, "todo-item")
	C.Button = mustGet(reg, "button")
	C.NavLink = mustGet(reg, "nav-link")
	C.Divider = mustGet(reg, "divider")
	C.Badge = mustGet(reg, "badge")
}

func mustGet(reg *compkit.Registry, name string) *compkit.Component {
	c, ok := reg.Get(name)
	if !ok {
		panic("components: " + name + " not registered")
	}
	return c
}

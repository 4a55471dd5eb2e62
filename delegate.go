package compkit

import "github.com/a-h/templ"

// Delegate is an external render function a component hands off to
// instead of building its own element. The call shape is fixed when the
// delegate is created:
//
//	link := compkit.DelegateFunc(func(children templ.Component, attrs templ.Attributes) templ.Component {
//	    return markup.HTML{}.ContentTag("a", children, attrs)
//	})
//
//	heading := compkit.DelegateTagFunc(func(tag string, children templ.Component, attrs templ.Attributes) templ.Component {
//	    return markup.HTML{}.ContentTag(tag, children, attrs)
//	})
type Delegate struct {
	name      string
	render    func(children templ.Component, attrs templ.Attributes) templ.Component
	renderTag func(tag string, children templ.Component, attrs templ.Attributes) templ.Component
}

// DelegateFunc creates a delegate called as fn(children, attrs).
func DelegateFunc(fn func(children templ.Component, attrs templ.Attributes) templ.Component) *Delegate {
	return &Delegate{render: fn}
}

// DelegateTagFunc creates a delegate called as fn(tag, children, attrs).
func DelegateTagFunc(fn func(tag string, children templ.Component, attrs templ.Attributes) templ.Component) *Delegate {
	return &Delegate{renderTag: fn}
}

// Named returns a copy of the delegate carrying a name for logs and
// catalog lookups.
func (d *Delegate) Named(name string) *Delegate {
	cp := *d
	cp.name = name
	return &cp
}

// Name returns the delegate's name, empty when unnamed.
func (d *Delegate) Name() string {
	return d.name
}

// Arity reports how many arguments the delegate takes: 2 or 3.
// An empty delegate reports 0.
func (d *Delegate) Arity() int {
	switch {
	case d == nil:
		return 0
	case d.renderTag != nil:
		return 3
	case d.render != nil:
		return 2
	default:
		return 0
	}
}

func (d *Delegate) call(tag string, children templ.Component, attrs templ.Attributes) templ.Component {
	if d.renderTag != nil {
		return d.renderTag(tag, children, attrs)
	}
	return d.render(children, attrs)
}

// Tag names either an element or a delegate. Siblings and wraps use it so
// a whole other component can stand where an element would.
type Tag struct {
	Name     string
	Delegate *Delegate
}

// El returns an element tag.
func El(name string) Tag {
	return Tag{Name: name}
}

// Via returns a tag that renders through a delegate. The optional name is
// passed as the tag argument to three-argument delegates.
func Via(d *Delegate, name ...string) Tag {
	t := Tag{Delegate: d}
	if len(name) > 0 {
		t.Name = name[0]
	}
	return t
}

func (t Tag) valid() bool {
	switch {
	case t.Delegate == nil:
		return t.Name != ""
	case t.Delegate.Arity() == 3:
		return t.Name != ""
	default:
		return t.Delegate.Arity() != 0
	}
}

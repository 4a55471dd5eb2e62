package compkit

import "github.com/a-h/templ"

// Target is what a strategy renders into: the resolved tag name and, for
// the delegate strategy, the delegate.
type Target struct {
	Tag      string
	Delegate *Delegate
}

// Dispatch builds the component node for a strategy. Void ignores
// children; Delegate calls the delegate with the shape it was created
// with.
func Dispatch(b Backend, s Strategy, target Target, children templ.Component, attrs templ.Attributes) templ.Component {
	switch s {
	case StrategyVoid:
		return b.Tag(target.Tag, attrs)
	case StrategyDelegate:
		return target.Delegate.call(target.Tag, children, attrs)
	default:
		return b.ContentTag(target.Tag, children, attrs)
	}
}

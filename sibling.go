package compkit

import (
	"maps"

	"github.com/a-h/templ"
)

type siblingShape uint8

const (
	siblingNone siblingShape = iota
	siblingPrebuilt
	siblingBare
	siblingAttrs
	siblingContent
	siblingContentAttrs
)

// Sibling is content attached before (prepend) or after (append) a
// component's own content. Build one with Prebuilt, Bare, TagAttrs,
// TagContent or TagContentAttrs.
type Sibling struct {
	shape   siblingShape
	node    templ.Component
	tag     Tag
	content templ.Component
	attrs   templ.Attributes
}

// Prebuilt passes an already rendered node through unchanged, such as the
// output of another component.
func Prebuilt(node templ.Component) Sibling {
	return Sibling{shape: siblingPrebuilt, node: node}
}

// Bare renders the tag with no attributes and no content.
func Bare(tag Tag) Sibling {
	return Sibling{shape: siblingBare, tag: tag}
}

// TagAttrs renders the tag as a void element with attributes.
func TagAttrs(tag Tag, attrs templ.Attributes) Sibling {
	return Sibling{shape: siblingAttrs, tag: tag, attrs: attrs}
}

// TagContent renders the tag around content, without attributes.
func TagContent(tag Tag, content templ.Component) Sibling {
	return Sibling{shape: siblingContent, tag: tag, content: content}
}

// TagContentAttrs renders the tag around content, with attributes.
func TagContentAttrs(tag Tag, content templ.Component, attrs templ.Attributes) Sibling {
	return Sibling{shape: siblingContentAttrs, tag: tag, content: content, attrs: attrs}
}

func (s Sibling) valid() bool {
	switch s.shape {
	case siblingPrebuilt:
		return s.node != nil
	case siblingBare, siblingAttrs, siblingContent, siblingContentAttrs:
		return s.tag.valid()
	default:
		return false
	}
}

func (s Sibling) clone() Sibling {
	s.attrs = maps.Clone(s.attrs)
	return s
}

// BuildSibling turns a sibling into a node. Delegate tags are invoked with
// the sibling's content and attributes instead of building an element.
func BuildSibling(b Backend, s Sibling) templ.Component {
	switch s.shape {
	case siblingPrebuilt:
		return s.node
	case siblingBare:
		return buildTag(b, s.tag, nil, templ.Attributes{}, false)
	case siblingAttrs:
		return buildTag(b, s.tag, nil, attrsOrEmpty(s.attrs), false)
	case siblingContent:
		return buildTag(b, s.tag, s.content, templ.Attributes{}, true)
	case siblingContentAttrs:
		return buildTag(b, s.tag, s.content, attrsOrEmpty(s.attrs), true)
	default:
		return nil
	}
}

func buildTag(b Backend, tag Tag, content templ.Component, attrs templ.Attributes, hasContent bool) templ.Component {
	if tag.Delegate != nil {
		return tag.Delegate.call(tag.Name, content, attrs)
	}
	if hasContent {
		return b.ContentTag(tag.Name, content, attrs)
	}
	return b.Tag(tag.Name, attrs)
}

func attrsOrEmpty(attrs templ.Attributes) templ.Attributes {
	if attrs == nil {
		return templ.Attributes{}
	}
	return maps.Clone(attrs)
}

// Wrap is an element placed around a node: around the whole rendered
// component (parent) or around the caller's content alone (wrap content).
type Wrap struct {
	tag   Tag
	attrs templ.Attributes
	fn    func(templ.Component) templ.Component
}

// WrapTag wraps with the tag and no attributes.
func WrapTag(tag Tag) Wrap {
	return Wrap{tag: tag}
}

// WrapTagAttrs wraps with the tag and attributes.
func WrapTagAttrs(tag Tag, attrs templ.Attributes) Wrap {
	return Wrap{tag: tag, attrs: attrs}
}

// WrapFunc wraps by calling fn with the inner node.
func WrapFunc(fn func(inner templ.Component) templ.Component) Wrap {
	return Wrap{fn: fn}
}

func (w Wrap) valid() bool {
	if w.fn != nil {
		return true
	}
	return w.tag.valid()
}

func (w Wrap) clone() Wrap {
	w.attrs = maps.Clone(w.attrs)
	return w
}

func (w Wrap) apply(b Backend, inner templ.Component) templ.Component {
	if w.fn != nil {
		return w.fn(inner)
	}
	return buildTag(b, w.tag, inner, attrsOrEmpty(w.attrs), true)
}

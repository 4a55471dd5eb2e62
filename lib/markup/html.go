// Package markup is the HTML backend for compkit: element primitives,
// text and fragment nodes, all expressed as templ components.
package markup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// HTML builds elements as templ components that write markup directly.
// The zero value is ready to use.
type HTML struct{}

// Tag returns a void element such as <hr> or <input>.
func (HTML) Tag(name string, attrs templ.Attributes) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return openTag(ctx, w, name, attrs)
	})
}

// ContentTag returns an element wrapping children. A nil children node
// renders an empty element.
func (HTML) ContentTag(name string, children templ.Component, attrs templ.Attributes) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := openTag(ctx, w, name, attrs); err != nil {
			return err
		}
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+name+">")
		return err
	})
}

// Text returns an escaped text node.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Raw returns markup that is written verbatim. Only use it for trusted
// content such as the output of another render.
func Raw(html string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

// Fragment renders nodes in order without a wrapping element. Nil nodes
// are skipped.
func Fragment(nodes ...templ.Component) templ.Component {
	kept := make([]templ.Component, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			kept = append(kept, n)
		}
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, n := range kept {
			if err := n.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// String renders a node to a string.
func String(ctx context.Context, node templ.Component) (string, error) {
	if node == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := node.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func openTag(ctx context.Context, w io.Writer, name string, attrs templ.Attributes) error {
	ordered, err := orderAttrs(attrs)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<"+name); err != nil {
		return err
	}
	if err := templ.RenderAttributes(ctx, w, ordered); err != nil {
		return err
	}
	_, err = io.WriteString(w, ">")
	return err
}

// orderAttrs puts class first and the remaining keys in sorted order so
// output is stable regardless of map iteration. Values templ does not
// render natively are formatted with fmt.Sprint.
func orderAttrs(attrs templ.Attributes) (templ.OrderedAttributes, error) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if !ValidAttrName(k) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAttrName, k)
		}
		if k != "class" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := attrs["class"]; ok {
		keys = append([]string{"class"}, keys...)
	}

	ordered := make(templ.OrderedAttributes, 0, len(keys))
	for _, k := range keys {
		v := attrs[k]
		switch v.(type) {
		case nil:
			continue
		case string, bool, *string, *bool,
			int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
		default:
			v = fmt.Sprint(v)
		}
		ordered = append(ordered, templ.KV(k, v))
	}
	return ordered, nil
}

// ErrInvalidAttrName is returned when rendering an element whose
// attributes include a name that cannot be written safely.
var ErrInvalidAttrName = errors.New("markup: invalid attribute name")

// ValidAttrName reports whether name can be written as an attribute name:
// non-empty, without whitespace, control characters, quotes, '<', '>', '/'
// or '='.
func ValidAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r <= ' ' || r == 0x7f || strings.ContainsRune("\"'<>/=", r) {
			return false
		}
	}
	return true
}

package components

import (
	"github.com/a-h/templ"

	"github.com/pthm/compkit"
)

// Definition returns the definition of a library component by name.
func Definition(name string) compkit.Definition {
	switch name {
	case "page":
		return compkit.Definition{
			Name:        "page",
			Class:       "page",
			Tag:         "main",
			Block:       compkit.BlockRequired,
			WrapContent: ptr(compkit.WrapTagAttrs(compkit.El("div"), templ.Attributes{"class": "page-inner"})),
		}
	case "card":
		return compkit.Definition{
			Name:        "card",
			Class:       "card",
			Tag:         "section",
			WrapContent: ptr(compkit.WrapTagAttrs(compkit.El("div"), templ.Attributes{"class": "card-body"})),
			Variants: map[string]compkit.Variant{
				"raised": {Class: "raised"},
				"plain":  {Class: "card-plain", Replace: true, Prefix: compkit.PrefixOff()},
			},
		}
	case "todo-list":
		return compkit.Definition{
			Name:  "todo-list",
			Class: "todo-list",
			Tag:   "ul",
			Attrs: templ.Attributes{"role": "list"},
			Variants: map[string]compkit.Variant{
				"compact": {Class: "compact"},
			},
		}
	case "todo-item":
		return compkit.Definition{
			Name:  "todo-item",
			Class: "todo-item",
			Tag:   "li",
			Options: map[string]compkit.Option{
				"done":     {Class: "done", Prefix: compkit.PrefixBase()},
				"priority": {Class: "priority"},
			},
		}
	case "button":
		return compkit.Definition{
			Name:  "button",
			Class: "btn",
			Tag:   "button",
			Attrs: templ.Attributes{"type": "button"},
			Variants: map[string]compkit.Variant{
				"primary": {Class: "primary"},
				"danger":  {Class: "danger"},
			},
			Options: map[string]compkit.Option{
				"size": {Class: "size", Prefix: compkit.PrefixBase()},
			},
		}
	case "nav-link":
		return compkit.Definition{
			Name:               "nav-link",
			Class:              "nav-link",
			Delegate:           Link,
			VariantClassPrefix: compkit.PrefixWith("nav"),
			Variants: map[string]compkit.Variant{
				"active": {Class: "active"},
			},
		}
	case "divider":
		return compkit.Definition{Name: "divider", Class: "divider", Tag: "hr", Void: true}
	case "badge":
		return compkit.Definition{
			Name:   "badge",
			Class:  "badge",
			Tag:    "span",
			Parent: ptr(compkit.WrapTagAttrs(compkit.El("small"), templ.Attributes{"class": "badge-wrap"})),
		}
	default:
		return compkit.Definition{}
	}
}

func ptr[T any](v T) *T { return &v }

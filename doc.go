// Package compkit renders reusable markup components from declarative
// definitions.
//
// A component definition names a base class, an element tag (or a
// delegate render function), optional variants and options that add
// classes, default attributes, and optional sibling and wrapper content.
// Each render call merges that definition with per-call overrides and
// produces a templ.Component.
//
// # Definitions
//
// Definitions are validated once by Define (or Registry.Add) and frozen.
// Configuration mistakes such as a missing class, a missing tag or a
// variant without a class fail there, not on first render:
//
//	var Button = compkit.MustDefine(compkit.Definition{
//	    Class: "btn",
//	    Tag:   "button",
//	    Attrs: templ.Attributes{"type": "button"},
//	    Variants: map[string]compkit.Variant{
//	        "primary": {Class: "primary"},
//	        "link":    {Class: "btn-link", Replace: true, Prefix: compkit.PrefixOff()},
//	    },
//	    Options: map[string]compkit.Option{
//	        "size": {Class: "size", Prefix: compkit.PrefixBase()},
//	    },
//	})
//
// # Class composition
//
// The class attribute is built in a fixed order: the base class, one
// class per active variant in the order the caller listed them, one class
// per option present in the call, then the caller's own class. Variant
// classes are prefixed with the base class unless the variant (or the
// definition's VariantClassPrefix) says otherwise. A variant with Replace
// set drops the base class, unless another active variant keeps it.
// Options given true add their class; options given a value add
// "{class}-{value}". Tokens are never de-duplicated.
//
//	Button.Render(compkit.Call{
//	    Content:  compkit.Text("Save"),
//	    Variants: []string{"primary"},
//	    Options:  compkit.Options{"size": "lg", "class": "wide"},
//	})
//	// <button class="btn btn-primary btn-size-lg wide" type="button">Save</button>
//
// # Assembly
//
// For components with content, the caller's content is first wrapped by
// wrapContent, then prepend and append siblings are placed around it, the
// element (or delegate) is rendered with the merged attributes, and the
// result is wrapped by parent. Each of these can be overridden per call
// through the reserved option keys; an override replaces the default.
// Reserved keys and option names never appear as attributes.
//
// # Errors
//
// Definition problems wrap ErrConfig. Call problems wrap ErrUsage; an
// undeclared variant wraps the more specific ErrUnknownVariant. There are
// no other failure modes on the render path.
//
// # Catalogs
//
// Definitions can also live in YAML, TOML or MessagePack catalogs (see
// package lib/encoding) loaded with OpenCatalog or LoadCatalog into a
// Registry. Delegates are registered in Go and referenced by name.
//
// Engines, components and registries are safe for concurrent use; a render
// call shares no mutable state with any other.
package compkit

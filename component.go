package compkit

import (
	"github.com/a-h/templ"
)

// Component is a validated, immutable component definition bound to the
// engine that validated it.
//
// Components are created once, usually at package level, and rendered
// many times:
//
//	var List = compkit.MustDefine(compkit.Definition{
//	    Class: "list",
//	    Tag:   "ul",
//	    Variants: map[string]compkit.Variant{
//	        "flush":      {Class: "flush"},
//	        "horizontal": {Class: "horizontal"},
//	    },
//	})
//
//	node, err := List.Render(compkit.Call{
//	    Content:  compkit.Text("Content"),
//	    Variants: []string{"flush"},
//	})
//	// <ul class="list list-flush">Content</ul>
//
// A Component is safe for concurrent use.
type Component struct {
	def      Definition
	strategy Strategy
	engine   *Engine
}

// Name returns the component's name.
func (c *Component) Name() string {
	return c.def.Name
}

// Strategy returns the render strategy chosen at definition time.
func (c *Component) Strategy() Strategy {
	return c.strategy
}

// Definition returns a copy of the frozen definition.
func (c *Component) Definition() Definition {
	return c.def.freeze()
}

// Call is one normalized invocation of a component: optional positional
// content or a block, the variants to activate and per-call options.
type Call struct {
	// Content is positional content.
	Content templ.Component
	// Block produces content lazily. A call sets at most one of Content
	// and Block.
	Block func() templ.Component
	// Variants are appended after any variants already in Options.
	Variants []string
	Options  Options

	// bound holds variants fixed by Component.Variant. They come first.
	bound []string
}

// RenderFunc renders a call.
type RenderFunc func(call Call) (templ.Component, error)

// Render validates the call shape against the component and renders it.
//
// Supplying both content and a block, a block to a BlockForbidden
// component, positional content to a BlockRequired component, or any
// content to a void component returns an error wrapping ErrUsage.
func (c *Component) Render(call Call) (templ.Component, error) {
	content, opts, err := call.normalize(c)
	if err != nil {
		c.engine.log.Debug().Err(err).Str("component", c.def.Name).Msg("call rejected")
		return nil, err
	}
	return c.engine.Render(content, opts, c)
}

// Variant returns a render function with the named variant always active,
// ahead of the variants the call passes in Options or Variants.
//
//	flush := List.Variant("flush")
//	node, err := flush(compkit.Call{Content: compkit.Text("Content")})
func (c *Component) Variant(name string) RenderFunc {
	return func(call Call) (templ.Component, error) {
		call.bound = append([]string{name}, call.bound...)
		return c.Render(call)
	}
}

func (call Call) normalize(c *Component) (templ.Component, Options, error) {
	name := c.def.Name
	hasContent := call.Content != nil
	hasBlock := call.Block != nil

	switch {
	case hasContent && hasBlock:
		return nil, nil, usageErrorf(name, "content and block are exclusive")
	case c.strategy == StrategyVoid && (hasContent || hasBlock):
		return nil, nil, usageErrorf(name, "void component does not accept content")
	case hasBlock && c.def.Block == BlockForbidden:
		return nil, nil, usageErrorf(name, "component does not accept a block")
	case hasContent && c.def.Block == BlockRequired:
		return nil, nil, usageErrorf(name, "component requires a block, not positional content")
	}

	content := call.Content
	if hasBlock {
		content = call.Block()
	}

	opts := call.Options
	if len(call.bound) > 0 || len(call.Variants) > 0 {
		existing, err := opts.variantNames(name)
		if err != nil {
			return nil, nil, err
		}
		merged := make([]string, 0, len(call.bound)+len(existing)+len(call.Variants))
		merged = append(merged, call.bound...)
		merged = append(merged, existing...)
		merged = append(merged, call.Variants...)
		opts = opts.With(KeyVariants, merged)
	}
	return content, opts, nil
}

package compkit

import (
	"github.com/a-h/templ"
	"github.com/rs/zerolog"

	"github.com/pthm/compkit/lib/markup"
)

// Engine validates definitions and renders calls against them. An Engine
// holds no per-call state and is safe for concurrent use.
type Engine struct {
	backend  Backend
	reserved Reserved
	log      zerolog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithBackend replaces the HTML backend.
func WithBackend(b Backend) EngineOption {
	return func(e *Engine) { e.backend = b }
}

// WithReserved adds keys to the reserved table. Reserved keys are
// stripped from emitted attributes and cannot be used as option names.
func WithReserved(keys ...string) EngineOption {
	return func(e *Engine) { e.reserved = e.reserved.With(keys...) }
}

// WithLogger sets the logger used for render and validation events.
func WithLogger(l zerolog.Logger) EngineOption {
	return func(e *Engine) { e.log = l }
}

// NewEngine creates an engine with the HTML backend, the default reserved
// table and a no-op logger.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		backend:  markup.HTML{},
		reserved: DefaultReserved(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// Define validates def on the default engine.
func Define(def Definition) (*Component, error) {
	return defaultEngine.Define(def)
}

// MustDefine is like Define but panics on a configuration error. Use it
// for package-level component declarations.
func MustDefine(def Definition) *Component {
	c, err := Define(def)
	if err != nil {
		panic(err)
	}
	return c
}

// Reserved returns a copy of the engine's reserved table.
func (e *Engine) Reserved() Reserved {
	return e.reserved.With()
}

// Define validates def and returns an immutable component bound to e.
func (e *Engine) Define(def Definition) (*Component, error) {
	frozen := def.freeze()
	if err := frozen.validate(e.reserved); err != nil {
		e.log.Debug().Err(err).Str("component", frozen.Name).Msg("definition rejected")
		return nil, err
	}
	return &Component{
		def:      frozen,
		strategy: frozen.Strategy(),
		engine:   e,
	}, nil
}

// Render composes one call. content must be nil for void components.
//
// Content-bearing components are assembled in this order: content is
// wrapped by wrapContent, prepend and append siblings are attached around
// it, the element is built with the merged attributes and composed class,
// and the result is wrapped by parent.
func (e *Engine) Render(content templ.Component, opts Options, c *Component) (templ.Component, error) {
	def := &c.def

	if c.strategy == StrategyVoid {
		if content != nil {
			return nil, usageErrorf(def.Name, "void component does not accept content")
		}
		for _, key := range []string{KeyPrepend, KeyAppend, KeyWrapContent} {
			if v, ok := opts[key]; ok && v != nil {
				return nil, usageErrorf(def.Name, "void component does not accept %s", key)
			}
		}
	}

	target, err := e.target(c, opts)
	if err != nil {
		return nil, err
	}

	var children templ.Component
	if c.strategy != StrategyVoid {
		children, err = e.children(def, content, opts)
		if err != nil {
			return nil, err
		}
	}

	class, err := ComposeClass(def, opts)
	if err != nil {
		e.log.Debug().Err(err).Str("component", def.Name).Msg("call rejected")
		return nil, err
	}
	attrs := e.reserved.Merge(def, opts, class)
	for _, k := range sortedKeys(attrs) {
		if !markup.ValidAttrName(k) {
			return nil, usageErrorf(def.Name, "invalid attribute name %q", k)
		}
	}

	node := Dispatch(e.backend, c.strategy, target, children, attrs)

	parent, err := opts.wrap(def.Name, KeyParent, def.Parent)
	if err != nil {
		return nil, err
	}
	if parent != nil {
		node = parent.apply(e.backend, node)
	}

	e.log.Debug().
		Str("component", def.Name).
		Stringer("strategy", c.strategy).
		Str("class", class).
		Msg("rendered")
	return node, nil
}

func (e *Engine) target(c *Component, opts Options) (Target, error) {
	def := &c.def
	tag, err := opts.tagOverride(def.Name, def.Tag)
	if err != nil {
		return Target{}, err
	}
	if c.strategy != StrategyDelegate {
		if v, ok := opts[KeyDelegate]; ok && v != nil {
			return Target{}, usageErrorf(def.Name, "%s strategy does not take a delegate", c.strategy)
		}
		return Target{Tag: tag}, nil
	}
	d, err := opts.delegateOverride(def.Name, def.Delegate)
	if err != nil {
		return Target{}, err
	}
	return Target{Tag: tag, Delegate: d}, nil
}

// children wraps content first so wrapContent never touches siblings.
func (e *Engine) children(def *Definition, content templ.Component, opts Options) (templ.Component, error) {
	wrap, err := opts.wrap(def.Name, KeyWrapContent, def.WrapContent)
	if err != nil {
		return nil, err
	}
	prepend, err := opts.sibling(def.Name, KeyPrepend, def.Prepend)
	if err != nil {
		return nil, err
	}
	appendix, err := opts.sibling(def.Name, KeyAppend, def.Append)
	if err != nil {
		return nil, err
	}

	inner := content
	if wrap != nil {
		inner = wrap.apply(e.backend, content)
	}
	if prepend == nil && appendix == nil {
		return inner, nil
	}

	var before, after templ.Component
	if prepend != nil {
		before = BuildSibling(e.backend, *prepend)
	}
	if appendix != nil {
		after = BuildSibling(e.backend, *appendix)
	}
	return markup.Fragment(before, inner, after), nil
}

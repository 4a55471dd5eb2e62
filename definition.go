package compkit

import (
	"maps"
	"sort"

	"github.com/a-h/templ"

	"github.com/pthm/compkit/lib/markup"
)

// Strategy is how a component turns its tag, children and attributes into
// a node. It is fixed when the definition is validated.
type Strategy uint8

const (
	StrategyContent  Strategy = iota // <tag attrs>children</tag>
	StrategyVoid                     // <tag attrs>
	StrategyDelegate                 // delegate(children, attrs) or delegate(tag, children, attrs)
)

// String returns the string representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyContent:
		return "content"
	case StrategyVoid:
		return "void"
	case StrategyDelegate:
		return "delegate"
	default:
		return "unknown"
	}
}

// BlockMode controls whether a component accepts positional content, a
// block, or neither.
type BlockMode uint8

const (
	BlockAllowed   BlockMode = iota // content or block
	BlockForbidden                  // positional content only
	BlockRequired                   // block only
)

// String returns the string representation of the BlockMode.
func (b BlockMode) String() string {
	switch b {
	case BlockAllowed:
		return "allowed"
	case BlockForbidden:
		return "forbidden"
	case BlockRequired:
		return "required"
	default:
		return "unknown"
	}
}

type prefixMode uint8

const (
	prefixDefault prefixMode = iota
	prefixBase
	prefixOff
	prefixCustom
)

// Prefix controls what is placed in front of a variant or option class.
// The zero value is the default for the context it appears in: variants
// default to the base class, options default to no prefix.
type Prefix struct {
	mode  prefixMode
	value string
}

// PrefixBase prefixes with the component's base class.
func PrefixBase() Prefix { return Prefix{mode: prefixBase} }

// PrefixOff emits the class verbatim.
func PrefixOff() Prefix { return Prefix{mode: prefixOff} }

// PrefixWith prefixes with a custom string.
func PrefixWith(s string) Prefix { return Prefix{mode: prefixCustom, value: s} }

// IsDefault reports whether the prefix was left unset.
func (p Prefix) IsDefault() bool { return p.mode == prefixDefault }

// Variant is a declared modifier selected by name at call time.
type Variant struct {
	Class string
	// Replace drops the base class from the composed output when this
	// variant is active (merge: false).
	Replace bool
	Prefix  Prefix
}

// Option is a declared flag or value selected by a call-option key of the
// same name. Options contribute a class and never reach the emitted
// attributes.
type Option struct {
	Class  string
	Prefix Prefix
}

// Definition is the static configuration for one component. It is
// validated and frozen by Define; mutating it afterwards has no effect on
// the returned Component.
type Definition struct {
	// Name identifies the component in errors, logs and registries.
	// Defaults to Tag.
	Name string

	Class    string
	Tag      string
	Delegate *Delegate
	Void     bool
	Block    BlockMode

	Variants map[string]Variant
	Options  map[string]Option

	// Attrs are forwarded to the element unless the call overrides them.
	Attrs templ.Attributes

	Prepend     *Sibling
	Append      *Sibling
	Parent      *Wrap
	WrapContent *Wrap

	// VariantClassPrefix replaces the base class as the default variant
	// prefix for every variant that leaves its own Prefix unset.
	VariantClassPrefix Prefix
}

// Strategy returns the render strategy the definition selects.
func (d *Definition) Strategy() Strategy {
	switch {
	case d.Delegate != nil:
		return StrategyDelegate
	case d.Void:
		return StrategyVoid
	default:
		return StrategyContent
	}
}

func (d *Definition) validate(reserved Reserved) error {
	name := d.Name
	if d.Class == "" {
		return configErrorf(name, "missing class")
	}

	switch d.Strategy() {
	case StrategyDelegate:
		if d.Void {
			return configErrorf(name, "void and delegate are exclusive")
		}
		switch d.Delegate.Arity() {
		case 0:
			return configErrorf(name, "delegate has no render function")
		case 3:
			if d.Tag == "" {
				return configErrorf(name, "three-argument delegate requires a tag")
			}
		}
	default:
		if d.Tag == "" {
			return configErrorf(name, "missing tag")
		}
	}

	if d.Void {
		if d.Block == BlockRequired {
			return configErrorf(name, "void component cannot require a block")
		}
		if d.Prepend != nil || d.Append != nil || d.WrapContent != nil {
			return configErrorf(name, "void component cannot take siblings or wrap content")
		}
	}

	for _, vname := range sortedKeys(d.Variants) {
		if vname == "" {
			return configErrorf(name, "variant with empty name")
		}
		if d.Variants[vname].Class == "" {
			return configErrorf(name, "variant %q missing class", vname)
		}
	}
	for _, oname := range sortedKeys(d.Options) {
		if oname == "" {
			return configErrorf(name, "option with empty name")
		}
		if d.Options[oname].Class == "" {
			return configErrorf(name, "option %q missing class", oname)
		}
		if reserved.Has(oname) {
			return configErrorf(name, "option %q shadows a reserved key", oname)
		}
	}

	for _, k := range sortedKeys(d.Attrs) {
		if !markup.ValidAttrName(k) {
			return configErrorf(name, "invalid attribute name %q", k)
		}
	}

	for label, s := range map[string]*Sibling{"prepend": d.Prepend, "append": d.Append} {
		if s != nil && !s.valid() {
			return configErrorf(name, "invalid %s sibling", label)
		}
	}
	for label, w := range map[string]*Wrap{"parent": d.Parent, "wrap_content": d.WrapContent} {
		if w != nil && !w.valid() {
			return configErrorf(name, "invalid %s wrap", label)
		}
	}
	return nil
}

// freeze returns a copy that shares no maps with the caller.
func (d Definition) freeze() Definition {
	if d.Name == "" {
		d.Name = d.Tag
	}
	d.Variants = maps.Clone(d.Variants)
	d.Options = maps.Clone(d.Options)
	d.Attrs = maps.Clone(d.Attrs)
	if d.Prepend != nil {
		s := d.Prepend.clone()
		d.Prepend = &s
	}
	if d.Append != nil {
		s := d.Append.clone()
		d.Append = &s
	}
	if d.Parent != nil {
		w := d.Parent.clone()
		d.Parent = &w
	}
	if d.WrapContent != nil {
		w := d.WrapContent.clone()
		d.WrapContent = &w
	}
	return d
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package compkit

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/pthm/compkit/lib/encoding"
)

// LoadCatalog builds a registry from a catalog document. delegates
// supplies the render functions the catalog refers to by name; the
// document's reserved keys extend the engine's reserved table.
//
//	doc, err := compkit.ReadDocument("components.yaml")
//	if err != nil {
//	    return err
//	}
//	reg, err := compkit.LoadCatalog(doc, map[string]*compkit.Delegate{"link": link})
func LoadCatalog(doc *Document, delegates map[string]*Delegate, opts ...EngineOption) (*Registry, error) {
	opts = append(opts, WithReserved(doc.Reserved...))
	reg := NewRegistry(opts...)
	for _, name := range sortedKeys(delegates) {
		if delegates[name].Arity() == 0 {
			return nil, fmt.Errorf("%w: delegate %q has no render function", ErrCatalog, name)
		}
		reg.Delegate(name, delegates[name])
	}
	if err := reg.Load(doc); err != nil {
		return nil, err
	}
	return reg, nil
}

// OpenCatalog reads a catalog file and builds a registry from it.
func OpenCatalog(path string, delegates map[string]*Delegate, opts ...EngineOption) (*Registry, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return LoadCatalog(doc, delegates, opts...)
}

// Load registers every component in doc. The document's reserved keys
// must already be reserved by the registry's engine; use LoadCatalog to
// build a registry that honors them.
func (reg *Registry) Load(doc *Document) error {
	for _, key := range doc.Reserved {
		if !reg.engine.reserved.Has(key) {
			return fmt.Errorf("%w: reserved key %q is not reserved by this registry", ErrCatalog, key)
		}
	}
	for _, name := range doc.Names() {
		def, err := reg.definitionFromDoc(name, doc.Components[name])
		if err != nil {
			return err
		}
		if _, err := reg.Define(def); err != nil {
			return err
		}
	}
	return nil
}

func (reg *Registry) definitionFromDoc(name string, cd encoding.ComponentDoc) (Definition, error) {
	def := Definition{
		Name:  name,
		Class: cd.Class,
		Tag:   cd.Tag,
		Void:  cd.Void,
		Attrs: templ.Attributes(cd.Attributes),
	}

	var err error
	if cd.Delegate != "" {
		if def.Delegate, err = reg.delegate(name, cd.Delegate); err != nil {
			return Definition{}, err
		}
	}

	switch cd.Block {
	case "", "allowed":
		def.Block = BlockAllowed
	case "forbidden":
		def.Block = BlockForbidden
	case "required":
		def.Block = BlockRequired
	default:
		return Definition{}, fmt.Errorf("%w: component %q: unknown block mode %q", ErrCatalog, name, cd.Block)
	}

	if def.VariantClassPrefix, err = prefixFromDoc(cd.VariantClassPrefix); err != nil {
		return Definition{}, fmt.Errorf("component %q: variant_class_prefix: %w", name, wrapEncodingError(err))
	}

	if len(cd.Variants) > 0 {
		def.Variants = make(map[string]Variant, len(cd.Variants))
	}
	for vname, vd := range cd.Variants {
		p, err := prefixFromDoc(vd.Prefix)
		if err != nil {
			return Definition{}, fmt.Errorf("component %q: variant %q: %w", name, vname, wrapEncodingError(err))
		}
		def.Variants[vname] = Variant{
			Class:   vd.Class,
			Replace: vd.Merge != nil && !*vd.Merge,
			Prefix:  p,
		}
	}

	if len(cd.Options) > 0 {
		def.Options = make(map[string]Option, len(cd.Options))
	}
	for oname, od := range cd.Options {
		p, err := prefixFromDoc(od.Prefix)
		if err != nil {
			return Definition{}, fmt.Errorf("component %q: option %q: %w", name, oname, wrapEncodingError(err))
		}
		def.Options[oname] = Option{Class: od.Class, Prefix: p}
	}

	if def.Prepend, err = reg.siblingFromDoc(name, cd.Prepend); err != nil {
		return Definition{}, err
	}
	if def.Append, err = reg.siblingFromDoc(name, cd.Append); err != nil {
		return Definition{}, err
	}
	if def.Parent, err = reg.wrapFromDoc(name, cd.Parent); err != nil {
		return Definition{}, err
	}
	if def.WrapContent, err = reg.wrapFromDoc(name, cd.WrapContent); err != nil {
		return Definition{}, err
	}
	return def, nil
}

func (reg *Registry) delegate(component, name string) (*Delegate, error) {
	d, ok := reg.LookupDelegate(name)
	if !ok {
		return nil, fmt.Errorf("%w: component %q: unknown delegate %q", ErrCatalog, component, name)
	}
	return d, nil
}

func (reg *Registry) tagFromDoc(component, tag, delegate string) (Tag, error) {
	if delegate == "" {
		return El(tag), nil
	}
	d, err := reg.delegate(component, delegate)
	if err != nil {
		return Tag{}, err
	}
	return Via(d, tag), nil
}

func (reg *Registry) siblingFromDoc(component string, v any) (*Sibling, error) {
	sd, err := encoding.ParseSibling(v)
	if err != nil {
		return nil, fmt.Errorf("component %q: %w", component, wrapEncodingError(err))
	}
	if sd == nil {
		return nil, nil
	}
	tag, err := reg.tagFromDoc(component, sd.Tag, sd.Delegate)
	if err != nil {
		return nil, err
	}

	var s Sibling
	switch {
	case sd.HasContent && sd.Attributes != nil:
		s = TagContentAttrs(tag, Text(sd.Content), sd.Attributes)
	case sd.HasContent:
		s = TagContent(tag, Text(sd.Content))
	case sd.Attributes != nil:
		s = TagAttrs(tag, sd.Attributes)
	default:
		s = Bare(tag)
	}
	return &s, nil
}

func (reg *Registry) wrapFromDoc(component string, v any) (*Wrap, error) {
	wd, err := encoding.ParseWrap(v)
	if err != nil {
		return nil, fmt.Errorf("component %q: %w", component, wrapEncodingError(err))
	}
	if wd == nil {
		return nil, nil
	}
	tag, err := reg.tagFromDoc(component, wd.Tag, wd.Delegate)
	if err != nil {
		return nil, err
	}
	var w Wrap
	if wd.Attributes != nil {
		w = WrapTagAttrs(tag, wd.Attributes)
	} else {
		w = WrapTag(tag)
	}
	return &w, nil
}

func prefixFromDoc(v any) (Prefix, error) {
	pd, err := encoding.ParsePrefix(v)
	if err != nil {
		return Prefix{}, err
	}
	switch {
	case !pd.Set:
		return Prefix{}, nil
	case !pd.Enabled:
		return PrefixOff(), nil
	case pd.Value != "":
		return PrefixWith(pd.Value), nil
	default:
		return PrefixBase(), nil
	}
}

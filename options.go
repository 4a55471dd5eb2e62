package compkit

import (
	"fmt"
	"reflect"

	"github.com/a-h/templ"
)

// Reserved call-option keys. Each overrides the matching definition field
// for a single call and never reaches the emitted attributes.
const (
	KeyTag         = "tag"
	KeyClass       = "class"
	KeyVariants    = "variants"
	KeyAppend      = "append"
	KeyPrepend     = "prepend"
	KeyParent      = "parent"
	KeyWrapContent = "wrapContent"
	KeyDelegate    = "delegate"
)

// Options are the per-call overrides: arbitrary attributes plus the
// reserved keys above plus any declared option names.
//
// Value shapes accepted for reserved keys:
//
//	tag          string
//	class        string or []string
//	variants     string or []string
//	prepend      Sibling, *Sibling, templ.Component (prebuilt) or string (bare tag)
//	append       same as prepend
//	parent       Wrap, *Wrap, func(templ.Component) templ.Component or string (tag)
//	wrapContent  same as parent
//	delegate     *Delegate
//
// A reserved key present with a nil value clears the definition default
// for that call.
type Options map[string]any

// With returns a copy of o with key set to value.
func (o Options) With(key string, value any) Options {
	cp := make(Options, len(o)+1)
	for k, v := range o {
		cp[k] = v
	}
	cp[key] = value
	return cp
}

// variantNames returns the active variants in caller order with
// duplicates removed.
func (o Options) variantNames(component string) ([]string, error) {
	raw, ok := o[KeyVariants]
	if !ok || raw == nil {
		return nil, nil
	}

	var names []string
	switch v := raw.(type) {
	case string:
		names = []string{v}
	case []string:
		names = v
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, usageErrorf(component, "variant name %v is not a string", item)
			}
			names = append(names, s)
		}
	default:
		return nil, usageErrorf(component, "variants must be a string or []string, got %T", raw)
	}

	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			return nil, fmt.Errorf("%w %q for component %q", ErrUnknownVariant, n, component)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out, nil
}

func (o Options) classOverride(component string) ([]string, error) {
	raw, ok := o[KeyClass]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	default:
		return nil, usageErrorf(component, "class must be a string or []string, got %T", raw)
	}
}

func (o Options) tagOverride(component, fallback string) (string, error) {
	raw, ok := o[KeyTag]
	if !ok || raw == nil {
		return fallback, nil
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", usageErrorf(component, "tag must be a non-empty string, got %v", raw)
	}
	return s, nil
}

func (o Options) delegateOverride(component string, fallback *Delegate) (*Delegate, error) {
	raw, ok := o[KeyDelegate]
	if !ok || raw == nil {
		return fallback, nil
	}
	d, ok := raw.(*Delegate)
	if !ok || d.Arity() == 0 {
		return nil, usageErrorf(component, "delegate must be a *Delegate with a render function, got %T", raw)
	}
	return d, nil
}

// sibling resolves a prepend/append override, falling back to the
// definition default when the key is absent.
func (o Options) sibling(component, key string, fallback *Sibling) (*Sibling, error) {
	raw, ok := o[key]
	if !ok {
		return fallback, nil
	}

	var s Sibling
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case Sibling:
		s = v
	case *Sibling:
		if v == nil {
			return nil, nil
		}
		s = *v
	case string:
		s = Bare(El(v))
	case templ.Component:
		s = Prebuilt(v)
	default:
		return nil, usageErrorf(component, "%s has unsupported type %T", key, raw)
	}
	if !s.valid() {
		return nil, usageErrorf(component, "invalid %s sibling", key)
	}
	return &s, nil
}

// wrap resolves a parent/wrapContent override. Overrides replace the
// default, they never merge with it.
func (o Options) wrap(component, key string, fallback *Wrap) (*Wrap, error) {
	raw, ok := o[key]
	if !ok {
		return fallback, nil
	}

	var w Wrap
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case Wrap:
		w = v
	case *Wrap:
		if v == nil {
			return nil, nil
		}
		w = *v
	case string:
		w = WrapTag(El(v))
	case func(templ.Component) templ.Component:
		w = WrapFunc(v)
	default:
		return nil, usageErrorf(component, "%s has unsupported type %T", key, raw)
	}
	if !w.valid() {
		return nil, usageErrorf(component, "invalid %s wrap", key)
	}
	return &w, nil
}

// formatOptionValue renders a scalar option value as a class suffix.
// It reports false for composite values.
func formatOptionValue(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case fmt.Stringer:
		return val.String(), true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

package compkit

import (
	"maps"

	"github.com/a-h/templ"
)

// Reserved is the set of call-option keys that configure rendering and
// must never be emitted as attributes.
type Reserved map[string]struct{}

// DefaultReserved returns the standard reserved keys.
func DefaultReserved() Reserved {
	return NewReserved(KeyTag, KeyClass, KeyVariants, KeyAppend, KeyPrepend, KeyParent, KeyWrapContent, KeyDelegate)
}

// NewReserved builds a table from keys.
func NewReserved(keys ...string) Reserved {
	r := make(Reserved, len(keys))
	for _, k := range keys {
		r[k] = struct{}{}
	}
	return r
}

// Has reports whether key is reserved.
func (r Reserved) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// With returns a copy of the table extended with keys.
func (r Reserved) With(keys ...string) Reserved {
	cp := maps.Clone(r)
	if cp == nil {
		cp = make(Reserved, len(keys))
	}
	for _, k := range keys {
		cp[k] = struct{}{}
	}
	return cp
}

// Merge computes the attributes for the emitted element: definition
// defaults overlaid by call options, minus reserved keys and declared
// option names, with class set to the composed class.
func (r Reserved) Merge(def *Definition, opts Options, class string) templ.Attributes {
	out := make(templ.Attributes, len(def.Attrs)+len(opts)+1)
	for k, v := range def.Attrs {
		out[k] = v
	}
	for k, v := range opts {
		out[k] = v
	}
	for k := range out {
		if r.Has(k) {
			delete(out, k)
			continue
		}
		if _, ok := def.Options[k]; ok {
			delete(out, k)
		}
	}
	out[KeyClass] = class
	return out
}

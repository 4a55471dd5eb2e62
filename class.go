package compkit

import (
	"fmt"
	"strings"
)

// ComposeClass derives the class string for one call:
//
//  1. the base class, unless every active variant replaces it
//  2. one class per active variant, in the order the caller listed them
//  3. one class per declared option present in opts, by option name
//  4. the caller's class override, always last
//
// Tokens are not de-duplicated: a class supplied twice appears twice.
// Naming an undeclared variant returns an error wrapping ErrUnknownVariant.
func ComposeClass(def *Definition, opts Options) (string, error) {
	names, err := opts.variantNames(def.Name)
	if err != nil {
		return "", err
	}

	includeBase := len(names) == 0
	variantClasses := make([]string, 0, len(names))
	for _, name := range names {
		v, ok := def.Variants[name]
		if !ok {
			return "", fmt.Errorf("%w %q for component %q", ErrUnknownVariant, name, def.Name)
		}
		if !v.Replace {
			includeBase = true
		}
		variantClasses = append(variantClasses, prefixed(variantPrefix(def, v), v.Class))
	}

	parts := make([]string, 0, len(variantClasses)+2)
	if includeBase {
		parts = append(parts, def.Class)
	}
	parts = append(parts, variantClasses...)

	for _, name := range sortedKeys(def.Options) {
		c, err := optionClass(def, name, def.Options[name], opts[name])
		if err != nil {
			return "", err
		}
		if c != "" {
			parts = append(parts, c)
		}
	}

	extra, err := opts.classOverride(def.Name)
	if err != nil {
		return "", err
	}
	parts = append(parts, extra...)

	return joinClasses(parts), nil
}

func variantPrefix(def *Definition, v Variant) string {
	p := v.Prefix
	if p.IsDefault() {
		p = def.VariantClassPrefix
	}
	switch p.mode {
	case prefixOff:
		return ""
	case prefixCustom:
		return p.value
	default:
		return def.Class
	}
}

func optionPrefix(def *Definition, o Option) string {
	switch o.Prefix.mode {
	case prefixBase:
		return def.Class
	case prefixCustom:
		return o.Prefix.value
	default:
		return ""
	}
}

// optionClass returns the class an option contributes for value: nothing
// for nil, false or "", the bare class for true, "{class}-{value}" for any
// other scalar. Slices, maps and other composite values are rejected.
func optionClass(def *Definition, name string, o Option, value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case bool:
		if !v {
			return "", nil
		}
		return prefixed(optionPrefix(def, o), o.Class), nil
	default:
		s, ok := formatOptionValue(v)
		if !ok {
			return "", usageErrorf(def.Name, "option %q has unsupported value type %T", name, value)
		}
		if s == "" {
			return "", nil
		}
		return prefixed(optionPrefix(def, o), o.Class+"-"+s), nil
	}
}

func prefixed(prefix, class string) string {
	if prefix == "" {
		return class
	}
	return prefix + "-" + class
}

func joinClasses(parts []string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

package encoding

import "fmt"

// SiblingDoc is the normalized form of a prepend or append entry.
type SiblingDoc struct {
	Tag        string
	Delegate   string
	Content    string
	HasContent bool
	Attributes map[string]any
}

// WrapDoc is the normalized form of a parent or wrap_content entry.
type WrapDoc struct {
	Tag        string
	Delegate   string
	Attributes map[string]any
}

// PrefixDoc is the normalized form of a prefix entry. Set is false when
// the entry was absent.
type PrefixDoc struct {
	Set     bool
	Enabled bool
	Value   string
}

// ParseSibling normalizes a sibling entry. A nil entry returns nil.
func ParseSibling(v any) (*SiblingDoc, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		if val == "" {
			return nil, fmt.Errorf("%w: empty sibling tag", ErrInvalidDocument)
		}
		return &SiblingDoc{Tag: val}, nil
	case map[string]any:
		s := &SiblingDoc{}
		var err error
		if s.Tag, s.Delegate, err = tagFields(val); err != nil {
			return nil, err
		}
		if c, ok := val["content"]; ok {
			s.Content = fmt.Sprint(c)
			s.HasContent = true
		}
		if s.Attributes, err = attributes(val); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: sibling must be a tag name or a table, got %T", ErrInvalidDocument, v)
	}
}

// ParseWrap normalizes a wrap entry. A nil entry returns nil.
func ParseWrap(v any) (*WrapDoc, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		if val == "" {
			return nil, fmt.Errorf("%w: empty wrap tag", ErrInvalidDocument)
		}
		return &WrapDoc{Tag: val}, nil
	case map[string]any:
		w := &WrapDoc{}
		var err error
		if w.Tag, w.Delegate, err = tagFields(val); err != nil {
			return nil, err
		}
		if w.Attributes, err = attributes(val); err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("%w: wrap must be a tag name or a table, got %T", ErrInvalidDocument, v)
	}
}

// ParsePrefix normalizes a prefix entry: absent, a bool, or a string.
func ParsePrefix(v any) (PrefixDoc, error) {
	switch val := v.(type) {
	case nil:
		return PrefixDoc{}, nil
	case bool:
		return PrefixDoc{Set: true, Enabled: val}, nil
	case string:
		return PrefixDoc{Set: true, Enabled: true, Value: val}, nil
	default:
		return PrefixDoc{}, fmt.Errorf("%w: prefix must be a bool or a string, got %T", ErrInvalidDocument, v)
	}
}

func tagFields(m map[string]any) (string, string, error) {
	tag, err := optionalString(m, "tag")
	if err != nil {
		return "", "", err
	}
	delegate, err := optionalString(m, "delegate")
	if err != nil {
		return "", "", err
	}
	if tag == "" && delegate == "" {
		return "", "", fmt.Errorf("%w: entry needs a tag or a delegate", ErrInvalidDocument)
	}
	return tag, delegate, nil
}

func optionalString(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidDocument, key, v)
	}
	return s, nil
}

func attributes(m map[string]any) (map[string]any, error) {
	v, ok := m["attributes"]
	if !ok || v == nil {
		return nil, nil
	}
	attrs, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: attributes must be a table, got %T", ErrInvalidDocument, v)
	}
	return attrs, nil
}

// Package encoding reads and writes component catalogs: data files that
// declare component definitions. YAML and TOML are the authoring formats;
// MessagePack is the compact form for shipping a catalog with a binary.
package encoding

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is a catalog serialization format.
type Format string

const (
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatMsgpack Format = "msgpack"
)

var (
	ErrInvalidFormat   = errors.New("encoding: unknown catalog format")
	ErrInvalidDocument = errors.New("encoding: invalid catalog document")
)

// Document is the root of a catalog file.
type Document struct {
	// Reserved lists extra call-option keys that must never be emitted as
	// attributes.
	Reserved   []string                `yaml:"reserved,omitempty" toml:"reserved,omitempty" msgpack:"reserved,omitempty"`
	Components map[string]ComponentDoc `yaml:"components" toml:"components" msgpack:"components"`
}

// ComponentDoc declares one component.
//
// Prepend and Append take either a tag name or a table with tag (or
// delegate), content and attributes. Parent and WrapContent take a tag
// name or a table with tag (or delegate) and attributes.
// VariantClassPrefix and the variant/option prefixes take a bool or a
// string. Their msgpack tags omit omitempty since msgpack treats a boxed
// false as empty.
type ComponentDoc struct {
	Class              string                `yaml:"class" toml:"class" msgpack:"class"`
	Tag                string                `yaml:"tag,omitempty" toml:"tag,omitempty" msgpack:"tag,omitempty"`
	Delegate           string                `yaml:"delegate,omitempty" toml:"delegate,omitempty" msgpack:"delegate,omitempty"`
	Void               bool                  `yaml:"void,omitempty" toml:"void,omitempty" msgpack:"void,omitempty"`
	Block              string                `yaml:"block,omitempty" toml:"block,omitempty" msgpack:"block,omitempty"`
	Variants           map[string]VariantDoc `yaml:"variants,omitempty" toml:"variants,omitempty" msgpack:"variants,omitempty"`
	Options            map[string]OptionDoc  `yaml:"options,omitempty" toml:"options,omitempty" msgpack:"options,omitempty"`
	Attributes         map[string]any        `yaml:"attributes,omitempty" toml:"attributes,omitempty" msgpack:"attributes,omitempty"`
	Prepend            any                   `yaml:"prepend,omitempty" toml:"prepend,omitempty" msgpack:"prepend,omitempty"`
	Append             any                   `yaml:"append,omitempty" toml:"append,omitempty" msgpack:"append,omitempty"`
	Parent             any                   `yaml:"parent,omitempty" toml:"parent,omitempty" msgpack:"parent,omitempty"`
	WrapContent        any                   `yaml:"wrap_content,omitempty" toml:"wrap_content,omitempty" msgpack:"wrap_content,omitempty"`
	VariantClassPrefix any                   `yaml:"variant_class_prefix,omitempty" toml:"variant_class_prefix,omitempty" msgpack:"variant_class_prefix"`
}

// VariantDoc declares a variant. Merge defaults to true.
type VariantDoc struct {
	Class  string `yaml:"class" toml:"class" msgpack:"class"`
	Merge  *bool  `yaml:"merge,omitempty" toml:"merge,omitempty" msgpack:"merge,omitempty"`
	Prefix any    `yaml:"prefix,omitempty" toml:"prefix,omitempty" msgpack:"prefix"`
}

// OptionDoc declares an option.
type OptionDoc struct {
	Class  string `yaml:"class" toml:"class" msgpack:"class"`
	Prefix any    `yaml:"prefix,omitempty" toml:"prefix,omitempty" msgpack:"prefix"`
}

// Names returns the component names in sorted order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Components))
	for name := range d.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".msgpack", ".mpk", ".mp":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, path)
	}
}

// Decode parses a catalog.
func Decode(data []byte, f Format) (*Document, error) {
	var doc Document
	var err error

	switch f {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// Encode serializes a catalog.
func Encode(doc *Document, f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTOML:
		return toml.Marshal(doc)
	case FormatMsgpack:
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetSortMapKeys(true)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, f)
	}
}

// ReadFile reads a catalog, choosing the format from the extension.
func ReadFile(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, f)
}

// WriteFile writes a catalog, choosing the format from the extension.
func WriteFile(path string, doc *Document) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(doc, f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

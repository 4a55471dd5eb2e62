package compkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classDefinition() *Definition {
	return &Definition{
		Name:  "list",
		Class: "list",
		Tag:   "ul",
		Variants: map[string]Variant{
			"flush":      {Class: "flush"},
			"horizontal": {Class: "horizontal"},
			"bare":       {Class: "bare", Replace: true},
			"naked":      {Class: "naked", Replace: true, Prefix: PrefixOff()},
			"plain":      {Class: "plain", Prefix: PrefixOff()},
			"custom":     {Class: "c", Prefix: PrefixWith("x")},
			"based":      {Class: "b", Prefix: PrefixBase()},
		},
		Options: map[string]Option{
			"size":   {Class: "size"},
			"active": {Class: "active", Prefix: PrefixBase()},
			"tone":   {Class: "tone", Prefix: PrefixWith("t")},
		},
	}
}

func TestComposeClass(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"base only", nil, "list"},
		{"empty options", Options{}, "list"},
		{"single variant", Options{KeyVariants: []string{"flush"}}, "list list-flush"},
		{"variant as string", Options{KeyVariants: "flush"}, "list list-flush"},
		{"variant as []any", Options{KeyVariants: []any{"flush", "horizontal"}}, "list list-flush list-horizontal"},
		{"variants keep caller order", Options{KeyVariants: []string{"horizontal", "flush"}}, "list list-horizontal list-flush"},
		{"duplicate variants collapse", Options{KeyVariants: []string{"flush", "flush"}}, "list list-flush"},
		{"caller class last", Options{KeyVariants: []string{"flush", "horizontal"}, KeyClass: "extra"}, "list list-flush list-horizontal extra"},
		{"caller class list", Options{KeyClass: []string{"a", "b"}}, "list a b"},
		{"caller class not de-duplicated", Options{KeyClass: "list"}, "list list"},
		{"empty caller class dropped", Options{KeyClass: ""}, "list"},

		{"replace drops base", Options{KeyVariants: "bare"}, "list-bare"},
		{"replace without prefix", Options{KeyVariants: "naked"}, "naked"},
		{"merging sibling keeps base once", Options{KeyVariants: []string{"bare", "flush"}}, "list list-bare list-flush"},
		{"merging sibling before replace", Options{KeyVariants: []string{"flush", "bare"}}, "list list-flush list-bare"},
		{"all replace", Options{KeyVariants: []string{"bare", "naked"}}, "list-bare naked"},

		{"prefix off", Options{KeyVariants: "plain"}, "list plain"},
		{"prefix custom", Options{KeyVariants: "custom"}, "list x-c"},
		{"prefix base", Options{KeyVariants: "based"}, "list list-b"},

		{"option true", Options{"size": true}, "list size"},
		{"option value", Options{"size": "lg"}, "list size-lg"},
		{"option number", Options{"size": 3}, "list size-3"},
		{"option nil", Options{"size": nil}, "list"},
		{"option false", Options{"size": false}, "list"},
		{"option empty string", Options{"size": ""}, "list"},
		{"option base prefix true", Options{"active": true}, "list list-active"},
		{"option base prefix value", Options{"active": "on"}, "list list-active-on"},
		{"option custom prefix true", Options{"tone": true}, "list t-tone"},
		{"option custom prefix value", Options{"tone": 2}, "list t-tone-2"},
		{"options by name", Options{"tone": true, "size": true, "active": true}, "list list-active size t-tone"},
		{"undeclared key is not an option", Options{"id": "x"}, "list"},

		{"everything", Options{KeyVariants: []string{"flush"}, "size": "lg", KeyClass: "extra"}, "list list-flush size-lg extra"},
		{"caller class after replace", Options{KeyVariants: "bare", KeyClass: "extra"}, "list-bare extra"},
	}

	def := classDefinition()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComposeClass(def, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComposeClassVariantClassPrefix(t *testing.T) {
	tests := []struct {
		name    string
		prefix  Prefix
		variant string
		want    string
	}{
		{"off", PrefixOff(), "flush", "list flush"},
		{"custom", PrefixWith("l"), "flush", "list l-flush"},
		{"base", PrefixBase(), "flush", "list list-flush"},
		{"variant prefix wins over definition", PrefixWith("l"), "custom", "list x-c"},
		{"variant prefix off wins", PrefixWith("l"), "plain", "list plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := classDefinition()
			def.VariantClassPrefix = tt.prefix
			got, err := ComposeClass(def, Options{KeyVariants: tt.variant})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComposeClassUnknownVariant(t *testing.T) {
	_, err := ComposeClass(classDefinition(), Options{KeyVariants: []string{"flush", "missing"}})
	require.Error(t, err)
	assert.True(t, IsUnknownVariant(err))
	assert.True(t, IsUsageError(err))
	assert.False(t, IsConfigError(err))
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestComposeClassEmptyVariantName(t *testing.T) {
	for _, variants := range []any{"", []string{"", "flush"}, []any{"flush", ""}} {
		_, err := ComposeClass(classDefinition(), Options{KeyVariants: variants})
		require.Error(t, err, "%#v", variants)
		assert.True(t, IsUnknownVariant(err))
		assert.Contains(t, err.Error(), `""`)
	}
}

func TestComposeClassOptionValueKinds(t *testing.T) {
	type size int
	got, err := ComposeClass(classDefinition(), Options{"size": size(2), "tone": 1.5})
	require.NoError(t, err)
	assert.Equal(t, "list size-2 t-tone-1.5", got)

	_, err = ComposeClass(classDefinition(), Options{"size": []string{"a", "b"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `option "size" has unsupported value type []string`)
}

func TestComposeClassBadShapes(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"variants number", Options{KeyVariants: 3}},
		{"variants mixed list", Options{KeyVariants: []any{"flush", 1}}},
		{"class number", Options{KeyClass: 3}},
		{"option slice value", Options{"size": []string{"a", "b"}}},
		{"option map value", Options{"size": map[string]int{"a": 1}}},
		{"option struct value", Options{"tone": struct{ N int }{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComposeClass(classDefinition(), tt.opts)
			require.Error(t, err)
			assert.True(t, IsUsageError(err))
			assert.False(t, IsUnknownVariant(err))
		})
	}
}

func TestComposeClassDoesNotMutateCallerClasses(t *testing.T) {
	extra := []string{" a ", "", "b"}
	got, err := ComposeClass(classDefinition(), Options{KeyClass: extra})
	require.NoError(t, err)
	assert.Equal(t, "list a b", got)
	assert.Equal(t, []string{" a ", "", "b"}, extra)
}

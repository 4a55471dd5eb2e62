package compkit

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		want string
	}{
		{"missing class", Definition{Tag: "ul"}, "missing class"},
		{"missing tag", Definition{Class: "list"}, "missing tag"},
		{"void missing tag", Definition{Class: "divider", Void: true}, "missing tag"},
		{"void and delegate", Definition{Class: "x", Void: true, Delegate: linkDelegate}, "exclusive"},
		{"unsafe attribute name", Definition{Class: "list", Tag: "ul", Attrs: templ.Attributes{"a b": "x"}}, `invalid attribute name "a b"`},
		{"empty delegate", Definition{Class: "x", Delegate: &Delegate{}}, "no render function"},
		{"three argument delegate without tag", Definition{Class: "x", Delegate: elementDelegate}, "requires a tag"},
		{"void requiring block", Definition{Class: "x", Tag: "hr", Void: true, Block: BlockRequired}, "cannot require a block"},
		{"void with prepend", Definition{Class: "x", Tag: "hr", Void: true, Prepend: ptr(Bare(El("br")))}, "cannot take siblings"},
		{"void with wrap content", Definition{Class: "x", Tag: "hr", Void: true, WrapContent: ptr(WrapTag(El("div")))}, "cannot take siblings"},
		{"variant without class", Definition{Class: "x", Tag: "div", Variants: map[string]Variant{"big": {}}}, `variant "big" missing class`},
		{"variant without name", Definition{Class: "x", Tag: "div", Variants: map[string]Variant{"": {Class: "a"}}}, "variant with empty name"},
		{"option without class", Definition{Class: "x", Tag: "div", Options: map[string]Option{"size": {}}}, `option "size" missing class`},
		{"option shadows reserved key", Definition{Class: "x", Tag: "div", Options: map[string]Option{"class": {Class: "c"}}}, "shadows a reserved key"},
		{"invalid prepend", Definition{Class: "x", Tag: "div", Prepend: &Sibling{}}, "invalid prepend sibling"},
		{"invalid append", Definition{Class: "x", Tag: "div", Append: ptr(Bare(El("")))}, "invalid append sibling"},
		{"invalid parent", Definition{Class: "x", Tag: "div", Parent: &Wrap{}}, "invalid parent wrap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Define(tt.def)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, IsConfigError(err))
			assert.False(t, IsUsageError(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDefineRejectsEngineReservedOption(t *testing.T) {
	e := NewEngine(WithReserved("data-internal"))
	_, err := e.Define(Definition{Class: "x", Tag: "div", Options: map[string]Option{"data-internal": {Class: "i"}}})
	assert.True(t, IsConfigError(err))
}

func TestDefineStrategy(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		want Strategy
	}{
		{"content", Definition{Class: "list", Tag: "ul"}, StrategyContent},
		{"void", Definition{Class: "divider", Tag: "hr", Void: true}, StrategyVoid},
		{"delegate", Definition{Class: "link", Delegate: linkDelegate}, StrategyDelegate},
		{"three argument delegate", Definition{Class: "title", Tag: "h1", Delegate: elementDelegate}, StrategyDelegate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Define(tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Strategy())
		})
	}
}

func TestDefineNameDefaultsToTag(t *testing.T) {
	c := MustDefine(Definition{Class: "list", Tag: "ul"})
	assert.Equal(t, "ul", c.Name())

	named := MustDefine(Definition{Name: "menu", Class: "menu", Tag: "ul"})
	assert.Equal(t, "menu", named.Name())
}

func TestDefineFreezesDefinition(t *testing.T) {
	def := listDefinition()
	def.Attrs = templ.Attributes{"role": "list"}
	c := MustDefine(def)

	def.Class = "changed"
	def.Variants["flush"] = Variant{Class: "changed"}
	def.Attrs["role"] = "changed"

	node, err := c.Render(Call{Content: Text("Content"), Variants: []string{"flush"}})
	require.NoError(t, err)
	assert.Equal(t, `<ul class="list list-flush" role="list">Content</ul>`, html(t, node))
}

func TestDefinitionCopyIsIndependent(t *testing.T) {
	c := MustDefine(listDefinition())

	cp := c.Definition()
	cp.Variants["flush"] = Variant{Class: "changed"}

	node, err := c.Render(Call{Content: Text("Content"), Variants: []string{"flush"}})
	require.NoError(t, err)
	assert.Equal(t, `<ul class="list list-flush">Content</ul>`, html(t, node))
}

func TestMustDefinePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustDefine(Definition{Tag: "ul"})
	})
}

func TestPrefixIsDefault(t *testing.T) {
	assert.True(t, Prefix{}.IsDefault())
	assert.False(t, PrefixOff().IsDefault())
	assert.False(t, PrefixBase().IsDefault())
	assert.False(t, PrefixWith("x").IsDefault())
}

func TestBlockModeString(t *testing.T) {
	assert.Equal(t, "allowed", BlockAllowed.String())
	assert.Equal(t, "forbidden", BlockForbidden.String())
	assert.Equal(t, "required", BlockRequired.String())
}

func ptr[T any](v T) *T {
	return &v
}

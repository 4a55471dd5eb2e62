package compkit

import (
	"sync"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAddAndRender(t *testing.T) {
	reg := NewRegistry()

	list := listDefinition()
	list.Name = "list"
	reg.Add(list, Definition{Name: "divider", Class: "divider", Tag: "hr", Void: true})

	assert.Equal(t, []string{"divider", "list"}, reg.Names())

	c, ok := reg.Get("list")
	require.True(t, ok)
	assert.Equal(t, "list", c.Name())

	node, err := reg.Render("list", Call{Content: Text("x"), Variants: []string{"flush"}})
	require.NoError(t, err)
	assert.Equal(t, `<ul class="list list-flush">x</ul>`, html(t, node))

	node, err = reg.Render("divider", Call{})
	require.NoError(t, err)
	assert.Equal(t, `<hr class="divider">`, html(t, node))
}

func TestRegistryNotFound(t *testing.T) {
	reg := NewRegistry()

	_, ok := reg.Get("missing")
	assert.False(t, ok)

	_, err := reg.Render("missing", Call{})
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestRegistryNameCollision(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Define(listDefinition())
	require.NoError(t, err)

	_, err = reg.Define(listDefinition())
	assert.True(t, IsConfigError(err))
	assert.Contains(t, err.Error(), "name collision")

	assert.Panics(t, func() { reg.Add(listDefinition()) })
}

func TestRegistryAddPanicsOnInvalid(t *testing.T) {
	reg := NewRegistry()
	assert.Panics(t, func() { reg.Add(Definition{Tag: "ul"}) })
	assert.Empty(t, reg.Names())
}

func TestRegistryDelegates(t *testing.T) {
	reg := NewRegistry()
	reg.Delegate("link", linkDelegate)

	d, ok := reg.LookupDelegate("link")
	require.True(t, ok)
	assert.Equal(t, "link", d.Name())
	assert.Equal(t, 2, d.Arity())

	_, ok = reg.LookupDelegate("missing")
	assert.False(t, ok)

	assert.Panics(t, func() { reg.Delegate("link", linkDelegate) })
	assert.Panics(t, func() { reg.Delegate("empty", &Delegate{}) })
	assert.Panics(t, func() { reg.Delegate("nil", nil) })
}

func TestRegistryUsesEngineOptions(t *testing.T) {
	reg := NewRegistry(WithReserved("hx-target"))
	assert.True(t, reg.Engine().Reserved().Has("hx-target"))

	reg.Add(Definition{Name: "box", Class: "box", Tag: "div", Attrs: templ.Attributes{"hx-target": "#x", "id": "b"}})
	node, err := reg.Render("box", Call{})
	require.NoError(t, err)
	assert.Equal(t, `<div class="box" id="b"></div>`, html(t, node))
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := NewRegistry()
	reg.Add(listDefinition())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := reg.Render("ul", Call{Content: Text("x")}); err != nil {
					t.Error(err)
					return
				}
				reg.Names()
			}
		}()
	}
	wg.Wait()
}

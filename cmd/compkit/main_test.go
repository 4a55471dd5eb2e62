package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/compkit"
	"github.com/pthm/compkit/lib/encoding"
)

const testCatalog = `
components:
  list:
    class: list
    tag: ul
    variants:
      flush: {class: flush}
  divider:
    class: divider
    tag: hr
    void: true
  nav:
    class: nav-link
    delegate: link
    attributes: {href: /}
  badge:
    class: badge
    tag: span
    options:
      pill: {class: pill}
      tone: {class: tone}
`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "components.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	catalog := writeCatalog(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"content and variant", []string{"render", "list", "Content", "-c", catalog, "--variant", "flush"}, `<ul class="list list-flush">Content</ul>`},
		{"void with class", []string{"render", "divider", "-c", catalog, "--class", "extra"}, `<hr class="divider extra">`},
		{"tag and attribute", []string{"render", "list", "x", "-c", catalog, "--tag", "ol", "--attr", "id=l"}, `<ol class="list" id="l">x</ol>`},
		{"escaped text", []string{"render", "list", "<b>", "-c", catalog}, `<ul class="list">&lt;b&gt;</ul>`},
		{"raw content", []string{"render", "list", "<b>x</b>", "-c", catalog, "--raw"}, `<ul class="list"><b>x</b></ul>`},
		{"delegate", []string{"render", "nav", "Home", "-c", catalog}, `<a class="nav-link" href="/">Home</a>`},
		{"options", []string{"render", "badge", "n", "-c", catalog, "--option", "pill", "--option", "tone=red"}, `<span class="badge pill tone-red">n</span>`},
		{"option switched off", []string{"render", "badge", "n", "-c", catalog, "--option", "pill=false"}, `<span class="badge">n</span>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestRenderCommandErrors(t *testing.T) {
	catalog := writeCatalog(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown component", []string{"render", "missing", "-c", catalog}},
		{"unknown variant", []string{"render", "list", "x", "-c", catalog, "--variant", "big"}},
		{"content on void", []string{"render", "divider", "x", "-c", catalog}},
		{"bad attribute", []string{"render", "list", "x", "-c", catalog, "--attr", "novalue"}},
		{"missing catalog", []string{"render", "list", "-c", filepath.Join(t.TempDir(), "none.yaml")}},
		{"no component", []string{"render", "-c", catalog}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestEngineLoggerTagsComponentOnce(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	reg, err := compkit.OpenCatalog(writeCatalog(t), builtinDelegates(), compkit.WithLogger(engineLogger()))
	require.NoError(t, err)
	_, err = reg.Render("list", compkit.Call{Content: compkit.Text("x")})
	require.NoError(t, err)

	var rendered string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(line, `"message":"rendered"`) {
			rendered = line
		}
	}
	require.NotEmpty(t, rendered, buf.String())
	assert.Equal(t, 1, strings.Count(rendered, `"component":`), rendered)
	assert.Contains(t, rendered, `"component":"list"`)
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", writeCatalog(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"badge", "content"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"divider", "void"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"list", "content"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"nav", "delegate"}, strings.Fields(lines[3]))
}

func TestValidateCommandRejectsInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("components:\n  a: {tag: div}\n"), 0o644))

	_, err := run(t, "validate", path)
	assert.Error(t, err)
}

func TestConvertCommand(t *testing.T) {
	in := writeCatalog(t)
	out := filepath.Join(t.TempDir(), "components.msgpack")

	_, err := run(t, "convert", in, out)
	require.NoError(t, err)

	doc, err := encoding.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"badge", "divider", "list", "nav"}, doc.Names())

	rendered, err := run(t, "render", "list", "x", "-c", out, "--variant", "flush")
	require.NoError(t, err)
	assert.Equal(t, "<ul class=\"list list-flush\">x</ul>\n", rendered)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "compkit version "+version+"\n", out)
}

func TestOptionValue(t *testing.T) {
	assert.Equal(t, true, optionValue("", false))
	assert.Equal(t, false, optionValue("false", true))
	assert.Equal(t, true, optionValue("1", true))
	assert.Equal(t, "lg", optionValue("lg", true))
}

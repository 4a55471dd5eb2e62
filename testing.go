package compkit

import (
	"bytes"
	"context"
	"strings"
)

// TestResult holds the result of rendering a component for testing.
type TestResult struct {
	HTML string
}

// TestRender renders a call and returns testable output.
//
// Use this for unit tests of component definitions:
//
//	result, err := compkit.TestRender(List, compkit.Call{
//	    Content:  compkit.Text("Content"),
//	    Variants: []string{"flush"},
//	})
//	if !result.HTMLContains(`class="list list-flush"`) {
//	    t.Fatal("missing variant class")
//	}
func TestRender(r Renderer, call Call) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), r, call)
}

// TestRenderWithContext renders a call with a custom context, for
// delegates or content that read values from context.
func TestRenderWithContext(ctx context.Context, r Renderer, call Call) (*TestResult, error) {
	node, err := r.Render(call)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := node.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return &TestResult{HTML: buf.String()}, nil
}

// HTMLContains returns true if the HTML contains the given substring.
func (r *TestResult) HTMLContains(s string) bool {
	return strings.Contains(r.HTML, s)
}

// Count returns how many times s occurs in the HTML.
func (r *TestResult) Count(s string) int {
	return strings.Count(r.HTML, s)
}

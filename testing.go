package lucid

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
)

// TestResult holds the result of rendering a component for testing.
//
// Provides convenience methods for asserting on HTML content and on prop
// type warnings emitted during the render.
type TestResult struct {
	HTML     string
	Warnings []Warning
}

// Warning is a prop type warning captured by TestRender.
type Warning struct {
	Component string `json:"component"`
	Prop      string `json:"prop"`
	Message   string `json:"message"`
}

// TestRender renders a component and returns testable output.
//
// Warnings logged during the render are captured instead of written out:
//
//	result, err := lucid.TestRender(components.Legend.New(props, items...))
//	if !result.HTMLContains("lucid-Legend-is-vertical") {
//	    t.Fatal("missing orientation class")
//	}
func TestRender(component templ.Component) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), component)
}

// TestRenderWithContext renders a component with a custom context. Any
// logger already attached to ctx is replaced for the duration of the render.
func TestRenderWithContext(ctx context.Context, component templ.Component) (*TestResult, error) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.WarnLevel)
	ctx = logger.WithContext(ctx)

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return nil, err
	}

	return &TestResult{
		HTML:     buf.String(),
		Warnings: parseWarnings(&logs),
	}, nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// Count returns the number of non-overlapping occurrences of substr.
func (r *TestResult) Count(substr string) int {
	return strings.Count(r.HTML, substr)
}

// HasWarning checks if a warning was logged for the given component prop.
func (r *TestResult) HasWarning(component, prop string) bool {
	for _, w := range r.Warnings {
		if w.Component == component && w.Prop == prop {
			return true
		}
	}
	return false
}

// parseWarnings decodes zerolog JSON lines. Lines that are not JSON are
// ignored.
func parseWarnings(logs *bytes.Buffer) []Warning {
	var warnings []Warning
	scanner := bufio.NewScanner(logs)
	for scanner.Scan() {
		var w Warning
		if err := json.Unmarshal(scanner.Bytes(), &w); err != nil {
			continue
		}
		warnings = append(warnings, w)
	}
	return warnings
}

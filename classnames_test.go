package lucid

import (
	"testing"

	"github.com/a-h/templ"
)

func TestCx(t *testing.T) {
	cx := Bind("Widget").Cx

	tests := []struct {
		name   string
		args   []any
		expect string
	}{
		{"no arguments", nil, ""},
		{"root and literal", []any{"&", "Foo"}, "Widget Foo"},
		{"scoped suffix", []any{"&-Item"}, "Widget-Item"},
		{"toggles keep order", []any{Classes{{"&-active", true}, {"&-disabled", false}}}, "Widget-active"},
		{"nil is skipped", []any{nil, "&", nil}, "Widget"},
		{"empty string is skipped", []any{"", "&"}, "Widget"},
		{"duplicates are kept", []any{"&", "&"}, "Widget Widget"},
		{"unsupported types are skipped", []any{42, struct{}{}, "&"}, "Widget"},
		{"templ KV", []any{templ.KV("&-on", true), templ.KV("&-off", false)}, "Widget-on"},
		{"templ KV slice", []any{[]templ.KeyValue[string, bool]{templ.KV("&-a", true), templ.KV("&-b", true)}}, "Widget-a Widget-b"},
		{"map is sorted", []any{map[string]bool{"&-z": true, "&-a": true, "&-m": false}}, "Widget-a Widget-z"},
		{"string slice", []any{[]string{"&-x", "plain"}}, "Widget-x plain"},
		{"nested any slice", []any{[]any{"&", []any{"&-deep", nil}}}, "Widget Widget-deep"},
		{"single toggle", []any{Toggle("&-is-on", true)}, "Widget-is-on"},
		{"marker only at start", []any{"a&b"}, "a&b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cx(tt.args...)
			if result != tt.expect {
				t.Errorf("Cx(%v) = %q, want %q", tt.args, result, tt.expect)
			}
		})
	}
}

func TestCx_ClassNameBeforeRoot(t *testing.T) {
	cx := Bind("Legend").Cx
	result := cx("custom", "&", Classes{
		{"&-is-horizontal", false},
		{"&-is-vertical", true},
		{"&-has-borders", true},
	})
	want := "custom Legend Legend-is-vertical Legend-has-borders"
	if result != want {
		t.Errorf("Cx() = %q, want %q", result, want)
	}
}

func TestNamespaceBind(t *testing.T) {
	b := Namespace("lucid").Bind("&-Legend")

	if b.Root() != "lucid-Legend" {
		t.Errorf("Root() = %q, want %q", b.Root(), "lucid-Legend")
	}
	if got := b.Cx("&-Item-indicator"); got != "lucid-Legend-Item-indicator" {
		t.Errorf("Cx() = %q, want %q", got, "lucid-Legend-Item-indicator")
	}
}

func TestBindersAreIndependent(t *testing.T) {
	a := Bind("A")
	b := Bind("B")

	if got := a.Cx("&"); got != "A" {
		t.Errorf("a.Cx() = %q, want %q", got, "A")
	}
	if got := b.Cx("&"); got != "B" {
		t.Errorf("b.Cx() = %q, want %q", got, "B")
	}
}

func TestBinderClass(t *testing.T) {
	class := Bind("Box").Class("&", "&-big")
	if class.ClassName() != "Box Box-big" {
		t.Errorf("Class().ClassName() = %q, want %q", class.ClassName(), "Box Box-big")
	}
}

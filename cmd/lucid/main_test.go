package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pthm/lucid/lib/catalog"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LUCID_CONFIG", "")

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "lucid dev")
	require.Contains(t, out, "commit: none")
}

func TestCatalogCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "catalog", "--format", "json")
	require.NoError(t, err)

	var cat catalog.Catalog
	require.NoError(t, json.Unmarshal([]byte(out), &cat))

	legend, err := cat.Lookup("Legend")
	require.NoError(t, err)
	require.Equal(t, []string{"Legend.Item"}, legend.Children)
	require.Contains(t, cat.Names(), "IconBox.Icon")
}

func TestCatalogCommand_DefaultFormatFromConfig(t *testing.T) {
	home := t.TempDir()
	cfg := filepath.Join(home, "lucid.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("format: json\n"), 0o644))

	t.Setenv("HOME", home)
	t.Setenv("LUCID_CONFIG", cfg)

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"catalog"})
	require.NoError(t, root.Execute())

	require.True(t, strings.HasPrefix(buf.String(), "{"), "expected JSON output, got %q", buf.String())
}

func TestCatalogCommand_UnknownFormat(t *testing.T) {
	_, err := executeCommand(t, "catalog", "-f", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown format")
}

func TestCatalogCommand_List(t *testing.T) {
	out, err := executeCommand(t, "catalog", "--list")
	require.NoError(t, err)
	require.Contains(t, out, "chart primitives")
	require.Contains(t, out, "Legend")
	require.Contains(t, out, "uncategorized")
}

func TestShowCommand(t *testing.T) {
	out, err := executeCommand(t, "show", "Legend")
	require.NoError(t, err)
	require.Contains(t, out, "Made from: Point, Line")
	require.Contains(t, out, "Children: Legend.Item")
	require.Contains(t, out, `orient (string) = "vertical" [oneof=horizontal vertical]`)
	require.Contains(t, out, "Examples: basic, horizontal")
}

func TestShowCommand_NotFound(t *testing.T) {
	_, err := executeCommand(t, "show", "Legnd")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
	require.Contains(t, err.Error(), `did you mean "Legend"?`)
}

func TestRenderCommand_Props(t *testing.T) {
	out, err := executeCommand(t, "render", "Icon", "-p", "size=24", "-p", "isBadge=true", "-p", "id=main")
	require.NoError(t, err)
	require.Contains(t, out, `<svg class="lucid-Icon lucid-Icon-is-badge lucid-Icon-color-primary" height="24" id="main"`)
}

func TestRenderCommand_Text(t *testing.T) {
	out, err := executeCommand(t, "render", "IconBox", "--prop", "kind=radio", "--text", "Pick <me>")
	require.NoError(t, err)
	require.Contains(t, out, "lucid-IconBox-radio")
	require.Contains(t, out, "Pick &lt;me&gt;")
}

func TestRenderCommand_Example(t *testing.T) {
	out, err := executeCommand(t, "render", "Legend", "--example", "horizontal")
	require.NoError(t, err)
	require.Contains(t, out, "lucid-Legend-is-horizontal")
	require.Contains(t, out, "Passed")
}

func TestRenderCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"unknown component", []string{"render", "Chart"}, "not found"},
		{"unknown example", []string{"render", "Legend", "-e", "fancy"}, "have basic, horizontal"},
		{"no examples", []string{"render", "Point", "-e", "any"}, "has no examples"},
		{"bad prop", []string{"render", "Icon", "-p", "size"}, "expected key=value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestRenderCommand_WarnsOnInvalidProps(t *testing.T) {
	out, err := executeCommand(t, "render", "Legend", "-p", "orient=diagonal")
	require.NoError(t, err)
	require.Contains(t, out, "Failed prop type")
	require.Contains(t, out, "<ul")
}

func TestShowcaseCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "showcase.html")

	_, err := executeCommand(t, "showcase", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(data)
	require.True(t, strings.HasPrefix(page, "<html>"))
	require.Contains(t, page, `<section id="Legend">`)
	require.Contains(t, page, `<section id="IconBox">`)
	require.NotContains(t, page, `<section id="Point">`)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"false", false},
		{"null", nil},
		{"12", 12.0},
		{"-0.5", -0.5},
		{"#123abc", "#123abc"},
		{"", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, parseValue(tt.in), "parseValue(%q)", tt.in)
	}
}

func TestIsTerminal(t *testing.T) {
	require.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer f.Close()
	require.False(t, isTerminal(f))
}

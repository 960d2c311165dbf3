package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/lucid"
)

type renderOptions struct {
	example string
	props   []string
	text    string
}

func newRenderCmd(a *app) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <component>",
		Short: "Render a component or one of its examples to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, a, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.example, "example", "e", "", "Render the named example instead of a bare element")
	cmd.Flags().StringArrayVarP(&opts.props, "prop", "p", nil, "Set a prop as key=value (repeatable)")
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Text child")

	return cmd
}

func runRender(cmd *cobra.Command, a *app, name string, opts *renderOptions) error {
	comp, err := a.registry.Get(name)
	if err != nil {
		return err
	}

	var el *lucid.Element
	if opts.example != "" {
		el, err = findExample(comp, opts.example)
		if err != nil {
			return err
		}
	} else {
		props, err := parseProps(opts.props)
		if err != nil {
			return err
		}
		declared := lucid.PickProps(props, comp.PropTypes())
		passthrough := lucid.OmitProps(props, comp.PropTypes())
		a.log.Debug(fmt.Sprintf("%s: declared props %v, pass-through props %v", name, declared.Keys(), passthrough.Keys()))

		var children []any
		if opts.text != "" {
			children = append(children, opts.text)
		}
		el = comp.New(props, children...)
	}

	ctx := a.log.WithContext(cmd.Context())
	if err := el.Render(ctx, cmd.OutOrStdout()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

func findExample(comp *lucid.Component, name string) (*lucid.Element, error) {
	var names []string
	for _, ex := range comp.Peek().Examples {
		if ex.Name == name {
			return ex.Render(comp), nil
		}
		names = append(names, ex.Name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s has no examples", lucid.ErrNotFound, comp.DisplayName())
	}
	return nil, fmt.Errorf("%w: example %q of %s (have %s)", lucid.ErrNotFound, name, comp.DisplayName(), strings.Join(names, ", "))
}

// parseProps turns key=value pairs into props. Values "true", "false" and
// "null" and numbers are converted; everything else stays a string.
func parseProps(pairs []string) (lucid.Props, error) {
	props := lucid.Props{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid prop %q: expected key=value", pair)
		}
		props[key] = parseValue(value)
	}
	return props, nil
}

func parseValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	return s
}

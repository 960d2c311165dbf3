package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pthm/lucid/lib/catalog"
	"github.com/pthm/lucid/lib/encoding"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Faint(true)
)

type catalogOptions struct {
	format string
	list   bool
}

func newCatalogCmd(a *app) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Export the component catalog",
		Long:  "Export every registered component's documentation as JSON, YAML or msgpack, or list them by category.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: json, yaml or msgpack (default from config)")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "List component names grouped by category")

	return cmd
}

func runCatalog(cmd *cobra.Command, a *app, opts *catalogOptions) error {
	cat := catalog.Build(a.registry)
	a.log.Debug(fmt.Sprintf("catalog built with %d components", len(cat.Entries)))

	if opts.list {
		return printCategories(cmd, cat)
	}

	name := opts.format
	if name == "" {
		name = a.cfg.Format
	}
	format, err := encoding.ParseFormat(name)
	if err != nil {
		return err
	}
	enc, err := encoding.NewEncoder(format)
	if err != nil {
		return err
	}
	return enc.Encode(cmd.OutOrStdout(), cat)
}

func printCategories(cmd *cobra.Command, cat catalog.Catalog) error {
	groups := cat.Categories()
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	slices.Sort(names)

	out := cmd.OutOrStdout()
	for _, name := range names {
		fmt.Fprintln(out, headingStyle.Render(name))
		fmt.Fprintf(out, "  %s\n", strings.Join(groups[name], ", "))
	}
	return nil
}

func printEntry(cmd *cobra.Command, e catalog.Entry) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headingStyle.Render(e.Name))
	if len(e.Categories) > 0 {
		fmt.Fprintln(out, categoryStyle.Render(strings.Join(e.Categories, " / ")))
	}
	if e.Description != "" {
		fmt.Fprintf(out, "\n%s\n", e.Description)
	}
	if e.Extend != "" {
		fmt.Fprintf(out, "\nExtends: %s\n", e.Extend)
	}
	if len(e.MadeFrom) > 0 {
		fmt.Fprintf(out, "Made from: %s\n", strings.Join(e.MadeFrom, ", "))
	}
	if len(e.Children) > 0 {
		fmt.Fprintf(out, "Children: %s\n", strings.Join(e.Children, ", "))
	}
	if len(e.Props) > 0 {
		fmt.Fprintf(out, "\n%s\n", headingStyle.Render("Props"))
		for _, p := range e.Props {
			line := fmt.Sprintf("  %s (%s)", p.Name, p.Kind)
			if p.Required {
				line += " required"
			}
			if p.Default != "" {
				line += " = " + p.Default
			}
			if p.Rule != "" {
				line += " [" + p.Rule + "]"
			}
			fmt.Fprintln(out, line)
			if p.Doc != "" {
				fmt.Fprintf(out, "      %s\n", p.Doc)
			}
		}
	}
	if len(e.Examples) > 0 {
		fmt.Fprintf(out, "\nExamples: %s\n", strings.Join(e.Examples, ", "))
	}
}

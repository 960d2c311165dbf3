package main

import (
	"github.com/spf13/cobra"

	"github.com/pthm/lucid/lib/catalog"
)

func newShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <component>",
		Short: "Show a component's documentation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := catalog.Build(a.registry).Lookup(args[0])
			if err != nil {
				return err
			}
			printEntry(cmd, entry)
			return nil
		},
	}

	return cmd
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pthm/lucid"
	"github.com/pthm/lucid/components"
	"github.com/pthm/lucid/internal/logger"
)

// app is shared by every subcommand.
type app struct {
	cfg      Config
	log      *logger.Logger
	registry *lucid.Registry
}

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	a := &app{}

	cmd := &cobra.Command{
		Use:           "lucid",
		Short:         "Inspect, document and render lucid components",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newCatalogCmd(a))
	cmd.AddCommand(newShowCmd(a))
	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newShowcaseCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *app) init(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Pretty && isTerminal(cmd.ErrOrStderr()),
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	reg := lucid.NewRegistry()
	components.Register(reg)

	a.cfg = cfg
	a.log = log
	a.registry = reg
	return nil
}

// isTerminal reports whether w is an interactive terminal. Console-formatted
// logs are only used there; pipes and files get JSON lines.
func isTerminal(w any) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tablekit/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tablekit",
		Short:         "Tablekit resolves and previews declarative data tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newExploreCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger writes to the command's stderr so output stays pipeable.
func (f *rootFlags) logger(cmd *cobra.Command) (*logger.Logger, error) {
	level := "warn"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <table.yaml>",
		Short: "Check a table document without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.logger(cmd)
			if err != nil {
				return err
			}
			t, err := loadTable("validate", args[0], log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid (%d columns, %d rows)\n", args[0], len(t.Config.Headers), len(t.Config.Data))
			return nil
		},
	}

	return cmd
}

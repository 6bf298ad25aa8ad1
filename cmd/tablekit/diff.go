package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tablekit/pkg/diff"
)

type diffOptions struct {
	from int
	to   int
	page int
}

func newDiffCmd(flags *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <table.yaml>",
		Short: "Show how a table changes between two screen widths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.logger(cmd)
			if err != nil {
				return err
			}
			t, err := loadTable("diff", args[0], log)
			if err != nil {
				return err
			}
			inst := newInstance(t, nil, log)
			defer func() { _ = inst.Close() }()

			render := func(width int) ([]byte, error) {
				v, err := resolveView(cmd.Context(), inst, width, opts.page, time.Second)
				if err != nil {
					return nil, newCommandError("diff", fmt.Sprintf("resolving at %dpx", width), err, "Run tablekit resolve for details.")
				}
				var buf bytes.Buffer
				enc := yaml.NewEncoder(&buf)
				enc.SetIndent(2)
				if err := enc.Encode(v); err != nil {
					return nil, err
				}
				return buf.Bytes(), enc.Close()
			}

			before, err := render(opts.from)
			if err != nil {
				return err
			}
			after, err := render(opts.to)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			unified := diff.Unified(before, after, fmt.Sprintf("%dpx", opts.from), fmt.Sprintf("%dpx", opts.to))
			if unified == "" {
				fmt.Fprintln(out, "No differences")
				return nil
			}
			added, removed := diff.Stats(before, after)
			fmt.Fprint(out, unified)
			fmt.Fprintf(out, "%d lines added, %d removed\n", added, removed)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.from, "from", 1600, "First screen width in pixels")
	cmd.Flags().IntVar(&opts.to, "to", 500, "Second screen width in pixels")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Page to compare, starting at 1")

	return cmd
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/itchyny/gojq"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	apptable "github.com/alexisbeaulieu97/tablekit/internal/app/table"
	"github.com/alexisbeaulieu97/tablekit/internal/logger"
)

type resolveOptions struct {
	width   int
	page    int
	output  string
	query   string
	timeout time.Duration
}

func newResolveCmd(flags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <table.yaml>",
		Short: "Print the resolved table view at a screen width",
		Long: `Resolve a table document at the given pixel width and print the result:
visible and folded columns, per-cell class names, action behaviors and
pagination state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.logger(cmd)
			if err != nil {
				return err
			}
			return runResolve(cmd, args[0], opts, log)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 1280, "Screen width in pixels")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Page to resolve, starting at 1")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "jq expression applied to the view (implies JSON output)")
	cmd.Flags().DurationVar(&opts.timeout, "icon-timeout", 2*time.Second, "How long to wait for icons to load")

	return cmd
}

func runResolve(cmd *cobra.Command, path string, opts *resolveOptions, log *logger.Logger) error {
	if opts.output != "yaml" && opts.output != "json" {
		return newCommandError("resolve", "choosing output format", fmt.Errorf("unknown format %q", opts.output), "Use --output yaml or --output json.")
	}

	t, err := loadTable("resolve", path, log)
	if err != nil {
		return err
	}
	inst := newInstance(t, nil, log)
	defer func() { _ = inst.Close() }()

	v, err := resolveView(cmd.Context(), inst, opts.width, opts.page, opts.timeout)
	if err != nil {
		return newCommandError("resolve", fmt.Sprintf("resolving %q at %dpx", path, opts.width), err, "Retry with a longer --icon-timeout.")
	}
	if opts.query != "" {
		if err := queryView(cmd, v, opts.query); err != nil {
			return newCommandError("resolve", "running --query", err, "Check the jq expression, for example '.rows[].id'.")
		}
		return nil
	}
	return encodeView(cmd, v, opts.output)
}

// queryView runs a jq expression over the JSON form of v and prints each
// result on its own line.
func queryView(cmd *cobra.Command, v *apptable.View, query string) error {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return fmt.Errorf("invalid --query: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return fmt.Errorf("invalid --query: %w", err)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	iter := code.Run(data)
	for {
		result, ok := iter.Next()
		if !ok {
			return nil
		}
		if err, isErr := result.(error); isErr {
			return fmt.Errorf("query error: %w", err)
		}
		if err := enc.Encode(result); err != nil {
			return err
		}
	}
}

func encodeView(cmd *cobra.Command, v *apptable.View, format string) error {
	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func resolveView(ctx context.Context, inst *apptable.Instance, width, page int, timeout time.Duration) (*apptable.View, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return inst.View(ctx, apptable.ViewRequest{Width: width, Page: max(page-1, 0)})
}

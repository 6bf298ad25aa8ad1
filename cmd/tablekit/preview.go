package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	apptable "github.com/alexisbeaulieu97/tablekit/internal/app/table"
	"github.com/alexisbeaulieu97/tablekit/internal/config"
	"github.com/alexisbeaulieu97/tablekit/internal/logger"
	"github.com/alexisbeaulieu97/tablekit/internal/tui"
)

const fallbackColumns = 120

type previewOptions struct {
	width   int
	page    int
	plain   bool
	noColor bool
	watch   bool
}

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <table.yaml>",
		Short: "Render a table once to the terminal",
		Long: `Render a table document once. The breakpoint follows the terminal
width unless --width is given in pixels. With --watch the table is rendered
again every time the file changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.logger(cmd)
			if err != nil {
				return err
			}
			if opts.noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			if err := runPreview(cmd, args[0], opts, log); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchFile(ctx, tablePath(args[0]), log, func() {
				fmt.Fprintln(cmd.OutOrStdout())
				if err := runPreview(cmd, args[0], opts, log); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
			})
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Screen width in pixels (defaults to the terminal width)")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Page to render, starting at 1")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Draw an ASCII grid without styling")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colors")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Render again whenever the file changes")

	return cmd
}

func runPreview(cmd *cobra.Command, arg string, opts *previewOptions, log *logger.Logger) error {
	t, err := loadTable("preview", arg, log)
	if err != nil {
		return err
	}
	inst := newInstance(t, nil, log)
	defer func() { _ = inst.Close() }()

	width := opts.width
	if width <= 0 {
		width = terminalColumns() * tui.PixelsPerCell
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Second)
	defer cancel()
	v, err := inst.View(ctx, apptable.ViewRequest{Width: width, Page: max(opts.page-1, 0)})
	if err != nil {
		return newCommandError("preview", fmt.Sprintf("resolving %q", arg), err, "Run tablekit resolve for details.")
	}

	out := cmd.OutOrStdout()
	if opts.plain {
		renderPlain(out, t, v)
		return nil
	}

	fmt.Fprintln(out, tui.RenderTable(v, tui.RenderState{}))
	label := ""
	if t.Config.ItemPerPage.IsShow {
		label = t.Config.ItemPerPage.Label
	}
	if footer := tui.RenderFooter(v, label); footer != "" {
		fmt.Fprintln(out, footer)
	}
	return nil
}

// renderPlain draws the visible columns as an ASCII grid. Folded columns are
// not shown.
func renderPlain(w io.Writer, t *config.Table, v *apptable.View) {
	grid := tablewriter.NewWriter(w)
	grid.SetAutoFormatHeaders(false)
	grid.SetAutoWrapText(false)

	var header []string
	if v.SerialNo {
		header = append(header, "#")
	}
	for _, h := range v.Headers {
		header = append(header, h.Label)
	}
	grid.SetHeader(header)

	for _, row := range v.Rows {
		var cells []string
		if v.SerialNo {
			cells = append(cells, strconv.Itoa(row.Serial))
		}
		for _, cell := range row.Cells {
			cells = append(cells, tui.PlainText(cell))
		}
		grid.Append(cells)
	}

	if v.Total != nil {
		footer := make([]string, len(header))
		footer[0] = "Total"
		offset := len(header) - len(v.Headers)
		for i, h := range v.Headers {
			if h.Key == t.Config.TotalColumn {
				footer[offset+i] = strconv.FormatFloat(*v.Total, 'f', -1, 64)
			}
		}
		grid.SetFooter(footer)
	}
	grid.Render()
}

var terminalColumns = func() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackColumns
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		return fallbackColumns
	}
	return cols
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tablekit/internal/tui"
)

func newExploreCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore <table.yaml>",
		Short: "Browse a table interactively",
		Long: `Open a table document in an interactive explorer. Rows can be
selected, sorted and paged; actions navigate or open dialogs, and clicking
outside an open dialog closes it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return newCommandError("explore", "starting the explorer", fmt.Errorf("stdout is not a terminal"), "Use tablekit preview or tablekit resolve when piping output.")
			}

			log, err := flags.logger(cmd)
			if err != nil {
				return err
			}
			t, err := loadTable("explore", args[0], log)
			if err != nil {
				return err
			}

			history := &tui.History{}
			inst := newInstance(t, history, log)
			defer func() { _ = inst.Close() }()

			title := t.Name
			if title == "" {
				title = args[0]
			}
			program := tea.NewProgram(
				tui.NewModel(title, inst, history, terminalColumns()),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			if _, err := program.Run(); err != nil {
				return newCommandError("explore", "running the explorer", err, "Try a larger terminal window.")
			}
			for _, path := range history.Paths {
				log.WithFields(map[string]any{"path": path}).Info("navigated")
			}
			return nil
		},
	}

	return cmd
}

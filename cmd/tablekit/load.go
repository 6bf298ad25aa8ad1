package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	apptable "github.com/alexisbeaulieu97/tablekit/internal/app/table"
	"github.com/alexisbeaulieu97/tablekit/internal/config"
	"github.com/alexisbeaulieu97/tablekit/internal/domain/style"
	"github.com/alexisbeaulieu97/tablekit/internal/logger"
	"github.com/alexisbeaulieu97/tablekit/internal/ports"
	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

const configDirName = "tablekit"

// tablePath returns arg when it names a file. A bare name such as "users" is
// looked up as tablekit/tables/users.yaml (or .toml) in the XDG config dirs.
func tablePath(arg string) string {
	if _, err := os.Stat(arg); err == nil || filepath.Ext(arg) != "" || filepath.Base(arg) != arg {
		return arg
	}
	for _, ext := range []string{".yaml", ".yml", ".toml"} {
		if found, err := xdg.SearchConfigFile(filepath.Join(configDirName, "tables", arg+ext)); err == nil {
			return found
		}
	}
	return arg
}

// loadTable parses, validates and builds the document at path.
func loadTable(operation, arg string, log *logger.Logger) (*config.Table, error) {
	path := tablePath(arg)
	doc, err := config.ParseConfig(path)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("loading table %q", path), err, suggestionFor(err))
	}

	built, err := doc.Build(log)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("building table %q", path), err, suggestionFor(err))
	}

	log.WithFields(map[string]any{
		"path":    path,
		"headers": len(built.Config.Headers),
		"rows":    len(built.Config.Data),
	}).Debug("table loaded")
	return built, nil
}

func newInstance(t *config.Table, nav ports.Navigator, log *logger.Logger) *apptable.Instance {
	return apptable.New(apptable.Options{
		Config:     t.Config,
		Styles:     t.Styles,
		Responsive: t.Responsive,
		Navigator:  nav,
		Logger:     log,
	})
}

func suggestionFor(err error) string {
	var parseErr *tkerrors.ParseError
	var validationErr *tkerrors.ValidationError
	var configErr *tkerrors.ConfigurationError

	switch {
	case errors.As(err, &parseErr) && parseErr.Line == 0:
		return "Check that the file exists and you have permission to read it."
	case errors.As(err, &parseErr):
		return "Check the YAML syntax near the reported line."
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Fix the %q field and try again.", validationErr.Field)
	case errors.As(err, &configErr):
		if closest, ok := style.Closest(configErr.Path); ok && string(closest) != configErr.Path {
			return fmt.Sprintf("Did you mean %s?", closest)
		}
		return "Use a style path from the default style tree, for example td.item."
	default:
		return "Run tablekit validate on the file for details."
	}
}

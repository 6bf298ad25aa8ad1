package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/tablekit/internal/domain/action"
	"github.com/alexisbeaulieu97/tablekit/internal/domain/responsive"
	"github.com/alexisbeaulieu97/tablekit/internal/domain/style"
	"github.com/alexisbeaulieu97/tablekit/internal/domain/table"
	"github.com/alexisbeaulieu97/tablekit/internal/logger"
	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

// Table is the domain form of a document.
type Table struct {
	Name       string
	Config     *table.Config
	Styles     *style.Tree
	Responsive *responsive.Config
}

// Build converts a validated document into domain objects. Style paths are
// checked here; an unknown path fails the whole build.
func (c *Config) Build(log *logger.Logger) (*Table, error) {
	cfg := table.NewConfig()
	cfg.UpdateIDIndex(c.IDIndex)

	headers := make([]table.Header, 0, len(c.Headers))
	for _, h := range c.Headers {
		label := h.Label
		if label == "" {
			label = h.Key
		}
		headers = append(headers, table.Header{Key: h.Key, Label: label})
	}
	cfg.UpdateHeaders(headers)

	rows := make([]table.Row, 0, len(c.Rows))
	for _, row := range c.Rows {
		rows = append(rows, table.Row(row))
	}
	cfg.UpdateData(rows)

	if len(c.Columns.Multiple) > 0 {
		cfg.UpdateMultipleColumns(c.Columns.Multiple...)
	}
	if len(c.Columns.Specific) > 0 {
		cfg.UpdateSpecificColumns(c.Columns.Specific...)
	}
	if len(c.Columns.Skip) > 0 {
		cfg.UpdateSkipColumns(c.Columns.Skip...)
	}
	if len(c.Columns.Sortable) > 0 {
		cfg.UpdateSortingColumns(c.Columns.Sortable...)
	}
	cfg.UpdateTotalColumn(c.TotalColumn)
	cfg.UpdateIsSerialNoShow(c.SerialNo)
	cfg.UpdateSelectShow(c.Select)

	for i, column := range c.Actions {
		kind, err := action.ParseActivityType(column.ActivityType)
		if err != nil {
			return nil, tkerrors.NewValidationError(fieldFor("actions", i, "activity_type"), err.Error(), err)
		}
		activities := make([]*action.Action, 0, len(column.Activities))
		for j, activity := range column.Activities {
			a, err := buildActivity(activity)
			if err != nil {
				field := fmt.Sprintf("actions[%d].activities[%d]", i, j)
				return nil, tkerrors.NewValidationError(field, err.Error(), err)
			}
			activities = append(activities, a)
		}
		cfg.UpdateActionColumn(column.Column, kind, activities...)
	}

	if ipp := c.ItemPerPage; ipp != nil {
		if ipp.Show {
			cfg.UpdateItemPerPage()
		}
		if ipp.Label != "" {
			cfg.ItemPerPage.Label = ipp.Label
		}
		if len(ipp.Options) > 0 {
			cfg.ItemPerPage.Options = append([]int(nil), ipp.Options...)
			if ipp.Value == 0 {
				cfg.ItemPerPage.Value = ipp.Options[0]
			}
		}
		if ipp.Value != 0 {
			if err := cfg.UpdateItemPerPageValue(ipp.Value); err != nil {
				return nil, tkerrors.NewValidationError("item_per_page.value", err.Error(), err)
			}
		}
	}

	if p := c.Pagination; p != nil {
		if p.Show {
			cfg.UpdatePagination()
		}
		if p.Type == "load_more" || p.Type == "loadMore" {
			cfg.UpdatePaginationLoadMore()
		}
		if len(p.Data) > 0 {
			cfg.UpdatePaginationData(p.Data)
		}
	}

	budgets, err := c.buildResponsive(len(headers), log)
	if err != nil {
		return nil, err
	}

	styles, err := c.buildStyles()
	if err != nil {
		return nil, err
	}

	return &Table{Name: c.Name, Config: cfg, Styles: styles, Responsive: budgets}, nil
}

func buildActivity(a Activity) (*action.Action, error) {
	behavior := action.Route
	if a.Behavior != "" {
		parsed, err := action.ParseBehavior(a.Behavior)
		if err != nil {
			return nil, err
		}
		behavior = parsed
	}

	if a.Button != "" {
		out, err := action.Button(a.Button, a.Value, a.Content)
		if err != nil {
			return nil, err
		}
		out.UpdatePopUpOrRoute(behavior, a.Module)
		return out, nil
	}

	opts := []action.IconOption{action.WithBehavior(behavior, a.Module)}
	if a.Content != "" {
		opts = append(opts, action.WithContent(a.Content))
	}
	if a.NoWrapper {
		opts = append(opts, action.WithoutWrapper())
	}
	out, err := action.Icon(a.Preset, opts...)
	if err != nil {
		return nil, err
	}
	if a.IconType != "" {
		out.UpdateIconType(a.IconType)
	}
	if a.Value != 0 {
		out.Value = a.Value
	}
	return out, nil
}

func (c *Config) buildResponsive(columns int, log *logger.Logger) (*responsive.Config, error) {
	r := c.Responsive
	if r == nil {
		return responsive.New(columns, log), nil
	}

	columnToShow := r.ColumnToShow
	if columnToShow == 0 {
		columnToShow = columns
	}
	budgets := responsive.New(columnToShow, log)
	if len(r.Breakpoints) > 0 {
		budgets.UpdateBreakpoints(r.Breakpoints)
	}
	for name, n := range r.Budgets {
		if err := budgets.SetColumnToShow(name, n); err != nil {
			return nil, tkerrors.NewValidationError("responsive.budgets."+name, "breakpoint is not in the configured order", err)
		}
	}
	return budgets, nil
}

func (c *Config) buildStyles() (*style.Tree, error) {
	tree := style.NewTree()
	for _, o := range c.Styles {
		scope := style.Global()
		switch {
		case o.Row != "":
			scope = style.Cell(o.Row, o.Column)
		case o.Column != "":
			scope = style.Column(o.Column)
		}

		var err error
		switch {
		case len(o.Paths) > 0:
			var p style.Path
			if p, err = style.ParsePath(o.Path); err == nil {
				err = tree.SetPaths(p, o.Paths, scope)
			}
		case o.Append:
			var p style.Path
			if p, err = style.ParsePath(o.Path); err == nil {
				err = tree.Append(p, o.Value, scope)
			}
		default:
			err = tree.SetDotted(o.Path, o.Value, scope)
		}
		if err != nil {
			return nil, err
		}
	}

	for _, icon := range c.Icons {
		bundle, err := style.ParseComposite(icon.Bundle)
		if err != nil {
			return nil, err
		}
		if err := tree.SetIcon(bundle, style.IconShape{Icon: icon.Icon, Paths: icon.Path}); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

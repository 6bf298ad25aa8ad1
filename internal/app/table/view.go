package table

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/tablekit/internal/domain/action"
	"github.com/alexisbeaulieu97/tablekit/internal/domain/responsive"
	"github.com/alexisbeaulieu97/tablekit/internal/domain/style"
	domain "github.com/alexisbeaulieu97/tablekit/internal/domain/table"
	"github.com/alexisbeaulieu97/tablekit/internal/iconcache"
)

// ViewRequest selects the screen width and page to resolve.
type ViewRequest struct {
	Width int
	// Page is zero-based; it is ignored unless pagination is shown.
	Page int
}

// HeaderView is a resolved column header.
type HeaderView struct {
	Key      string `json:"key" yaml:"key"`
	Label    string `json:"label" yaml:"label"`
	Mode     string `json:"mode" yaml:"mode"`
	Sortable bool   `json:"sortable" yaml:"sortable"`
	Class    string `json:"class" yaml:"class"`
}

// ActivityView is a resolved action of one cell.
type ActivityView struct {
	Value    int    `json:"value" yaml:"value"`
	Content  string `json:"content" yaml:"content"`
	Behavior string `json:"behavior" yaml:"behavior"`
	Module   string `json:"module,omitempty" yaml:"module,omitempty"`
	IconType string `json:"iconType,omitempty" yaml:"iconType,omitempty"`
	Glyph    string `json:"glyph,omitempty" yaml:"glyph,omitempty"`
	Class    string `json:"class" yaml:"class"`
}

// CellView is everything a renderer needs for one cell.
type CellView struct {
	Key        string            `json:"key" yaml:"key"`
	Mode       string            `json:"mode" yaml:"mode"`
	Text       string            `json:"text,omitempty" yaml:"text,omitempty"`
	Values     []string          `json:"values,omitempty" yaml:"values,omitempty"`
	Classes    map[string]string `json:"classes" yaml:"classes"`
	Activities []ActivityView    `json:"activities,omitempty" yaml:"activities,omitempty"`
}

// RowView is one resolved row. Expanded holds the cells folded away by the
// responsive budget.
type RowView struct {
	ID       string     `json:"id" yaml:"id"`
	Serial   int        `json:"serial,omitempty" yaml:"serial,omitempty"`
	Selected bool       `json:"selected" yaml:"selected"`
	Class    string     `json:"class" yaml:"class"`
	Cells    []CellView `json:"cells" yaml:"cells"`
	Expanded []CellView `json:"expanded,omitempty" yaml:"expanded,omitempty"`
}

// PageView describes the pager below the table.
type PageView struct {
	Show        bool   `json:"show" yaml:"show"`
	Type        string `json:"type" yaml:"type"`
	Page        int    `json:"page" yaml:"page"`
	Pages       int    `json:"pages" yaml:"pages"`
	PerPage     int    `json:"perPage" yaml:"perPage"`
	ButtonClass string `json:"buttonClass,omitempty" yaml:"buttonClass,omitempty"`
}

// View is the fully resolved table at one width.
type View struct {
	Breakpoint      string            `json:"breakpoint,omitempty" yaml:"breakpoint,omitempty"`
	ColumnToShow    int               `json:"columnToShow" yaml:"columnToShow"`
	SerialNo        bool              `json:"serialNo" yaml:"serialNo"`
	Select          bool              `json:"select" yaml:"select"`
	AllSelected     bool              `json:"allSelected" yaml:"allSelected"`
	Headers         []HeaderView      `json:"headers" yaml:"headers"`
	ExpandedHeaders []HeaderView      `json:"expandedHeaders,omitempty" yaml:"expandedHeaders,omitempty"`
	Rows            []RowView         `json:"rows" yaml:"rows"`
	Total           *float64          `json:"total,omitempty" yaml:"total,omitempty"`
	Pagination      PageView          `json:"pagination" yaml:"pagination"`
	Classes         map[string]string `json:"classes" yaml:"classes"`
}

// Budget returns the number of visible columns at width, or zero when every
// column shows.
func (i *Instance) Budget(width int) (string, int) {
	name, ok := responsive.Match(width, i.Responsive)
	if !ok {
		return "", 0
	}
	budget, _ := responsive.Resolve(width, i.Responsive)
	return name, budget.ColumnToShow
}

// View resolves the table for req. Icon glyphs are waited for until ctx ends;
// icons still loading are left without a glyph.
func (i *Instance) View(ctx context.Context, req ViewRequest) (*View, error) {
	if i.isClosed() {
		return nil, ErrClosed
	}

	cfg := i.Config
	name, columnToShow := i.Budget(req.Width)
	visible, expanded := cfg.SplitColumns(columnToShow)

	v := &View{
		Breakpoint:   name,
		ColumnToShow: columnToShow,
		SerialNo:     cfg.IsSerialNoShow,
		Select:       cfg.SelectShow,
		AllSelected:  cfg.SelectedItem.IsAllSelected,
		Classes: map[string]string{
			string(style.Main):   i.Styles.Get(style.Main, style.Global()),
			string(style.Head):   i.Styles.Get(style.Head, style.Global()),
			string(style.HeadTr): i.Styles.Get(style.HeadTr, style.Global()),
			string(style.Body):   i.Styles.Get(style.Body, style.Global()),
		},
	}
	for _, h := range visible {
		v.Headers = append(v.Headers, i.header(h))
	}
	for _, h := range expanded {
		v.ExpandedHeaders = append(v.ExpandedHeaders, i.header(h))
	}
	if total, ok := cfg.Total(); ok {
		v.Total = &total
	}

	start, end := i.page(req.Page, &v.Pagination)
	for index := start; index < end; index++ {
		row := cfg.Data[index]
		id := cfg.RowID(row)
		rv := RowView{
			ID:       id,
			Selected: cfg.IsSelected(id),
			Class:    i.Styles.Get(style.BodyTr, style.Global()),
		}
		if cfg.IsSerialNoShow {
			rv.Serial = index + 1
		}
		for _, h := range visible {
			rv.Cells = append(rv.Cells, i.cell(ctx, row, id, h.Key, false))
		}
		for _, h := range expanded {
			rv.Expanded = append(rv.Expanded, i.cell(ctx, row, id, h.Key, true))
		}
		v.Rows = append(v.Rows, rv)
	}
	return v, nil
}

func (i *Instance) header(h domain.Header) HeaderView {
	sortable := i.Config.Sorting.IsSorting && i.Config.Sorting.ColumnIndex.Has(h.Key)
	class := i.Styles.Get(style.HeadTh, style.Global())
	if sortable {
		class = style.JoinClasses(class, i.Styles.Get(style.HeadThSortItem, style.Global()))
	}
	return HeaderView{
		Key:      h.Key,
		Label:    h.Label,
		Mode:     domain.Classify(h.Key, i.Config).String(),
		Sortable: sortable,
		Class:    class,
	}
}

func (i *Instance) page(page int, pv *PageView) (int, int) {
	cfg := i.Config
	rows := len(cfg.Data)
	pv.Show = cfg.Pagination.IsShow
	pv.Type = cfg.Pagination.PaginationType.String()
	pv.PerPage = cfg.ItemPerPage.Value
	pv.Pages = 1

	if !cfg.Pagination.IsShow || pv.PerPage <= 0 {
		return 0, rows
	}
	pv.Pages = (rows + pv.PerPage - 1) / pv.PerPage
	if pv.Pages == 0 {
		pv.Pages = 1
	}
	page = min(max(page, 0), pv.Pages-1)
	pv.Page = page

	if cfg.Pagination.PaginationType == domain.LoadMore {
		pv.ButtonClass = i.Styles.Get(style.LoadMoreButton, style.Global())
		return 0, min((page+1)*pv.PerPage, rows)
	}
	return page * pv.PerPage, min((page+1)*pv.PerPage, rows)
}

func (i *Instance) cell(ctx context.Context, row domain.Row, rowID, key string, folded bool) CellView {
	scope := style.Cell(rowID, key)
	mode := domain.Classify(key, i.Config)
	cv := CellView{Key: key, Mode: mode.String(), Classes: map[string]string{}}
	put := func(p style.Path) {
		cv.Classes[string(p)] = i.Styles.Get(p, scope)
	}

	switch mode {
	case domain.ActionColumn:
		column := i.Config.Actions.ColumnIndex[key]
		if folded {
			put(style.ExpandActionColumnWrapper)
			put(style.ExpandActionColumnContainer)
		} else {
			put(style.ActionColumnWrapper)
			put(style.ActionColumnContainer)
		}
		cv.Activities = i.activities(ctx, column)
	case domain.Specific:
		put(style.SpecificColumn)
		cv.Text = text(row[key])
	case domain.Multiple:
		if folded {
			put(style.ExpandMultipleContainer)
			put(style.ExpandMultipleContainerValue)
		} else {
			put(style.MultipleContainer)
			put(style.MultipleContainerValue)
		}
		cv.Values = values(row[key])
	default:
		if folded {
			put(style.ExpandNormalWrapper)
			put(style.ExpandNormalData)
		} else {
			put(style.BodyTd)
			put(style.TdWrapper)
			put(style.TdItem)
		}
		cv.Text = text(row[key])
	}
	return cv
}

func (i *Instance) activities(ctx context.Context, column *action.Column) []ActivityView {
	if column == nil {
		return nil
	}

	var handles []*iconcache.Handle
	if column.ActivityType == action.ActivityIcon {
		handles = i.Icons.ResolveColumn(column)
	}

	out := make([]ActivityView, 0, len(column.ActivityList))
	for idx, a := range column.ActivityList {
		if a == nil {
			continue
		}
		av := ActivityView{
			Value:    a.Value,
			Content:  a.Content,
			Behavior: a.PopUpOrRoute.IsPopUpOrRoute.String(),
			Module:   a.PopUpOrRoute.Module,
			IconType: a.IconType,
			Class:    a.ButtonClass,
		}
		if a.IconClasses != nil && column.ActivityType == action.ActivityIcon {
			av.Class = a.IconClasses.Icon
		}
		if idx < len(handles) && handles[idx] != nil {
			if component, err := handles[idx].Wait(ctx); err == nil {
				av.Glyph = component.Glyph
			}
		}
		out = append(out, av)
	}
	return out
}

func text(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func values(v any) []string {
	switch list := v.(type) {
	case nil:
		return nil
	case []string:
		return append([]string(nil), list...)
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, text(item))
		}
		return out
	default:
		return []string{text(v)}
	}
}

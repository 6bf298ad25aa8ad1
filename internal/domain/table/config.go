// Package table holds the configuration model a host builds to describe a
// data table: columns, rows, per-column behaviors, selection, sorting and
// pagination.
package table

import (
	"fmt"

	"github.com/alexisbeaulieu97/tablekit/internal/domain/action"
)

// Header is one column of the table. Key indexes into each Row.
type Header struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// Row is one record of table data keyed by column.
type Row map[string]any

// KeySet is a set of column keys.
type KeySet map[string]struct{}

func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s KeySet) add(keys ...string) {
	for _, key := range keys {
		s[key] = struct{}{}
	}
}

// MultipleColumns marks columns whose cell stacks several values.
type MultipleColumns struct {
	IsMultipleColumns bool   `json:"isMultipleColumns" yaml:"isMultipleColumns"`
	ColumnIndex       KeySet `json:"columnIndex" yaml:"columnIndex"`
}

// Actions maps action columns to their activities.
type Actions struct {
	IsActions   bool                      `json:"isActions" yaml:"isActions"`
	ColumnIndex map[string]*action.Column `json:"columnIndex" yaml:"columnIndex"`
}

// SpecificColumn marks columns that receive conditional styling.
type SpecificColumn struct {
	IsSpecific  bool   `json:"isSpecific" yaml:"isSpecific"`
	ColumnIndex KeySet `json:"columnIndex" yaml:"columnIndex"`
}

// SkipColumn marks columns left out of rendering.
type SkipColumn struct {
	IsSkip      bool   `json:"isSkip" yaml:"isSkip"`
	ColumnIndex KeySet `json:"columnIndex" yaml:"columnIndex"`
}

// Sorting marks columns whose header sorts the rows.
type Sorting struct {
	IsSorting   bool   `json:"isSorting" yaml:"isSorting"`
	ColumnIndex KeySet `json:"columnIndex" yaml:"columnIndex"`
}

// PaginationType selects numbered pages or a load-more button.
type PaginationType int

const (
	Numbered PaginationType = 1
	LoadMore PaginationType = 2
)

func (p PaginationType) String() string {
	switch p {
	case Numbered:
		return "numbered"
	case LoadMore:
		return "loadMore"
	default:
		return fmt.Sprintf("pagination(%d)", int(p))
	}
}

// Pagination configures the pager below the table. Data carries host page
// metadata such as the total or the current page.
type Pagination struct {
	IsShow         bool           `json:"isShow" yaml:"isShow"`
	PaginationType PaginationType `json:"paginationType" yaml:"paginationType"`
	Data           map[string]any `json:"data" yaml:"data"`
}

// ItemPerPage configures the page size selector.
type ItemPerPage struct {
	IsShow  bool   `json:"isShow" yaml:"isShow"`
	Label   string `json:"label" yaml:"label"`
	Options []int  `json:"options" yaml:"options"`
	Value   int    `json:"value" yaml:"value"`
}

// SelectedItem tracks the rows picked through checkboxes.
type SelectedItem struct {
	IsAllSelected bool     `json:"isAllSelected" yaml:"isAllSelected"`
	IDs           []string `json:"ids" yaml:"ids"`
}

// Config is the full description of one table. It is mutated only through
// its update methods.
type Config struct {
	Headers         []Header        `json:"headers" yaml:"headers"`
	Data            []Row           `json:"data" yaml:"data"`
	IDIndex         string          `json:"idIndex" yaml:"idIndex"`
	MultipleColumns MultipleColumns `json:"multipleColumns" yaml:"multipleColumns"`
	Actions         Actions         `json:"actions" yaml:"actions"`
	SpecificColumn  SpecificColumn  `json:"specificColumn" yaml:"specificColumn"`
	SkipColumn      SkipColumn      `json:"skipColumn" yaml:"skipColumn"`
	Sorting         Sorting         `json:"sorting" yaml:"sorting"`
	IsSerialNoShow  bool            `json:"isSerialNoShow" yaml:"isSerialNoShow"`
	SelectShow      bool            `json:"selectShow" yaml:"selectShow"`
	TotalColumn     string          `json:"totalColumn" yaml:"totalColumn"`
	ItemPerPage     ItemPerPage     `json:"itemPerPage" yaml:"itemPerPage"`
	Pagination      Pagination      `json:"pagination" yaml:"pagination"`
	SelectedItem    SelectedItem    `json:"selectedItem" yaml:"selectedItem"`
}

// DefaultItemPerPageOptions are the page sizes offered when none are configured.
var DefaultItemPerPageOptions = []int{5, 10, 20, 50, 100}

// NewConfig returns an empty table with the default page size selector and
// numbered pagination.
func NewConfig() *Config {
	return &Config{
		MultipleColumns: MultipleColumns{ColumnIndex: KeySet{}},
		Actions:         Actions{ColumnIndex: map[string]*action.Column{}},
		SpecificColumn:  SpecificColumn{ColumnIndex: KeySet{}},
		SkipColumn:      SkipColumn{ColumnIndex: KeySet{}},
		Sorting:         Sorting{ColumnIndex: KeySet{}},
		ItemPerPage: ItemPerPage{
			Label:   "Show",
			Options: append([]int(nil), DefaultItemPerPageOptions...),
			Value:   5,
		},
		Pagination:   Pagination{PaginationType: Numbered, Data: map[string]any{}},
		SelectedItem: SelectedItem{IDs: []string{}},
	}
}

func (c *Config) UpdateHeaders(headers []Header) {
	c.Headers = append([]Header(nil), headers...)
}

func (c *Config) UpdateData(rows []Row) {
	c.Data = append([]Row(nil), rows...)
}

func (c *Config) UpdateIDIndex(key string) {
	c.IDIndex = key
}

// UpdateMultipleColumns enables stacked cells for keys.
func (c *Config) UpdateMultipleColumns(keys ...string) {
	c.MultipleColumns.IsMultipleColumns = true
	c.MultipleColumns.ColumnIndex.add(keys...)
}

// UpdateActionColumn makes key an action column showing activities.
func (c *Config) UpdateActionColumn(key string, activityType action.ActivityType, activities ...*action.Action) {
	c.Actions.IsActions = true
	c.Actions.ColumnIndex[key] = &action.Column{
		ActivityType: activityType,
		ActivityList: activities,
	}
}

// UpdateSpecificColumns marks keys for conditional styling.
func (c *Config) UpdateSpecificColumns(keys ...string) {
	c.SpecificColumn.IsSpecific = true
	c.SpecificColumn.ColumnIndex.add(keys...)
}

// UpdateSkipColumns hides keys from rendering.
func (c *Config) UpdateSkipColumns(keys ...string) {
	c.SkipColumn.IsSkip = true
	c.SkipColumn.ColumnIndex.add(keys...)
}

// UpdateSortingColumns makes keys sortable.
func (c *Config) UpdateSortingColumns(keys ...string) {
	c.Sorting.IsSorting = true
	c.Sorting.ColumnIndex.add(keys...)
}

func (c *Config) UpdateIsSerialNoShow(show bool) {
	c.IsSerialNoShow = show
}

func (c *Config) UpdateSelectShow(show bool) {
	c.SelectShow = show
}

func (c *Config) UpdateTotalColumn(key string) {
	c.TotalColumn = key
}

// UpdateItemPerPage shows the page size selector.
func (c *Config) UpdateItemPerPage() {
	c.ItemPerPage.IsShow = true
}

// UpdateItemPerPageValue sets the page size. The value must be one of the
// configured options.
func (c *Config) UpdateItemPerPageValue(value int) error {
	for _, option := range c.ItemPerPage.Options {
		if option == value {
			c.ItemPerPage.Value = value
			return nil
		}
	}
	return fmt.Errorf("page size %d is not one of %v", value, c.ItemPerPage.Options)
}

// NextItemPerPage cycles the page size to the following option.
func (c *Config) NextItemPerPage() int {
	options := c.ItemPerPage.Options
	if len(options) == 0 {
		return c.ItemPerPage.Value
	}
	next := options[0]
	for i, option := range options {
		if option == c.ItemPerPage.Value {
			next = options[(i+1)%len(options)]
			break
		}
	}
	c.ItemPerPage.Value = next
	return next
}

// UpdatePagination shows the pager.
func (c *Config) UpdatePagination() {
	c.Pagination.IsShow = true
}

func (c *Config) UpdatePaginationLoadMore() {
	c.Pagination.PaginationType = LoadMore
}

func (c *Config) UpdatePaginationNumber() {
	c.Pagination.PaginationType = Numbered
}

// UpdatePaginationData stores host page metadata and shows the pager.
func (c *Config) UpdatePaginationData(data map[string]any) {
	c.Pagination.IsShow = true
	c.Pagination.Data = data
}

// RowID returns the id of row under IDIndex, formatted as a string.
func (c *Config) RowID(row Row) string {
	value, ok := row[c.IDIndex]
	if !ok || value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

// RenderableHeaders returns the headers that are not skipped, in order.
func (c *Config) RenderableHeaders() []Header {
	out := make([]Header, 0, len(c.Headers))
	for _, header := range c.Headers {
		if c.SkipColumn.IsSkip && c.SkipColumn.ColumnIndex.Has(header.Key) {
			continue
		}
		out = append(out, header)
	}
	return out
}

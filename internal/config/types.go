package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is a table definition document.
type Config struct {
	Version     string           `yaml:"version" validate:"required,semver"`
	Name        string           `yaml:"name" validate:"omitempty,max=100"`
	Description string           `yaml:"description,omitempty"`
	IDIndex     string           `yaml:"id_index" validate:"required"`
	Headers     []Header         `yaml:"headers" validate:"required,min=1,dive"`
	Rows        []map[string]any `yaml:"rows,omitempty"`
	Columns     Columns          `yaml:"columns,omitempty"`
	Actions     []ActionColumn   `yaml:"actions,omitempty" validate:"omitempty,dive"`
	TotalColumn string           `yaml:"total_column,omitempty"`
	SerialNo    bool             `yaml:"serial_no,omitempty"`
	Select      bool             `yaml:"select,omitempty"`
	ItemPerPage *ItemPerPage     `yaml:"item_per_page,omitempty"`
	Pagination  *Pagination      `yaml:"pagination,omitempty"`
	Responsive  *Responsive      `yaml:"responsive,omitempty"`
	Styles      []StyleOverride  `yaml:"styles,omitempty" validate:"omitempty,dive"`
	Icons       []IconOverride   `yaml:"icons,omitempty" validate:"omitempty,dive"`
}

// Header declares one column.
type Header struct {
	Key   string `yaml:"key" validate:"required"`
	Label string `yaml:"label,omitempty"`
}

// Columns lists the column keys that get a special behavior.
type Columns struct {
	Multiple []string `yaml:"multiple,omitempty"`
	Specific []string `yaml:"specific,omitempty"`
	Skip     []string `yaml:"skip,omitempty"`
	Sortable []string `yaml:"sortable,omitempty"`
}

// ActionColumn attaches activities to a column.
type ActionColumn struct {
	Column       string     `yaml:"column" validate:"required"`
	ActivityType string     `yaml:"activity_type" validate:"required,activity_type"`
	Activities   []Activity `yaml:"activities" validate:"required,min=1,dive"`
}

// Activity is one icon or button. Icons name a preset, buttons a button
// variant.
type Activity struct {
	Preset    string `yaml:"preset,omitempty" validate:"omitempty,icon_preset"`
	Button    string `yaml:"button,omitempty" validate:"omitempty,button_preset"`
	Value     int    `yaml:"value,omitempty"`
	Content   string `yaml:"content,omitempty"`
	IconType  string `yaml:"icon_type,omitempty"`
	Behavior  string `yaml:"behavior,omitempty" validate:"omitempty,behavior"`
	Module    string `yaml:"module,omitempty"`
	NoWrapper bool   `yaml:"no_wrapper,omitempty"`
}

// ItemPerPage configures the page size selector.
type ItemPerPage struct {
	Show    bool   `yaml:"show"`
	Label   string `yaml:"label,omitempty"`
	Options []int  `yaml:"options,omitempty" validate:"omitempty,dive,min=1"`
	Value   int    `yaml:"value,omitempty" validate:"omitempty,min=1"`
}

// Pagination configures the pager.
type Pagination struct {
	Show bool           `yaml:"show"`
	Type string         `yaml:"type,omitempty" validate:"omitempty,pagination_type"`
	Data map[string]any `yaml:"data,omitempty"`
}

// Responsive configures visible-column budgets per breakpoint.
type Responsive struct {
	ColumnToShow int            `yaml:"column_to_show" validate:"min=0"`
	Breakpoints  []string       `yaml:"breakpoints,omitempty" validate:"omitempty,dive,breakpoint"`
	Budgets      map[string]int `yaml:"budgets,omitempty" validate:"omitempty,dive,keys,breakpoint,endkeys,min=0"`
}

// StyleOverride writes one leaf of the style tree. Value is either a class
// string or, for SVG path leaves, a list of classes.
type StyleOverride struct {
	Path   string   `yaml:"path" validate:"required"`
	Value  string   `yaml:"-"`
	Paths  []string `yaml:"-"`
	Column string   `yaml:"column,omitempty"`
	Row    string   `yaml:"row,omitempty"`
	Append bool     `yaml:"append,omitempty"`
}

// UnmarshalYAML accepts value as a scalar or a sequence.
func (s *StyleOverride) UnmarshalYAML(value *yaml.Node) error {
	type baseOverride struct {
		Path   string    `yaml:"path"`
		Value  yaml.Node `yaml:"value"`
		Column string    `yaml:"column"`
		Row    string    `yaml:"row"`
		Append bool      `yaml:"append"`
	}

	var base baseOverride
	if err := value.Decode(&base); err != nil {
		return err
	}

	s.Path = base.Path
	s.Column = base.Column
	s.Row = base.Row
	s.Append = base.Append
	s.Value = ""
	s.Paths = nil

	switch base.Value.Kind {
	case 0:
	case yaml.ScalarNode:
		s.Value = base.Value.Value
	case yaml.SequenceNode:
		if err := base.Value.Decode(&s.Paths); err != nil {
			return err
		}
	default:
		return fmt.Errorf("line %d: style value must be a string or a list", base.Value.Line)
	}
	return nil
}

// IconOverride replaces a sort or expand icon bundle.
type IconOverride struct {
	Bundle string   `yaml:"bundle" validate:"required"`
	Icon   string   `yaml:"icon"`
	Path   []string `yaml:"path,omitempty"`
}

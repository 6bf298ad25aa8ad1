package table

import "slices"

// Select adds id to the selection once. Selecting the last unselected row
// marks the table as all-selected.
func (c *Config) Select(id string) {
	if !slices.Contains(c.SelectedItem.IDs, id) {
		c.SelectedItem.IDs = append(c.SelectedItem.IDs, id)
	}
	if len(c.SelectedItem.IDs) == len(c.Data) {
		c.SelectedItem.IsAllSelected = true
	}
}

// Deselect removes id from the selection. The all-selected flag is always
// cleared, without recounting what remains.
func (c *Config) Deselect(id string) {
	if i := slices.Index(c.SelectedItem.IDs, id); i >= 0 {
		c.SelectedItem.IDs = slices.Delete(c.SelectedItem.IDs, i, i+1)
	}
	c.SelectedItem.IsAllSelected = false
}

// SelectAll selects every row in row order.
func (c *Config) SelectAll() {
	ids := make([]string, 0, len(c.Data))
	for _, row := range c.Data {
		ids = append(ids, c.RowID(row))
	}
	c.SelectedItem.IDs = ids
	c.SelectedItem.IsAllSelected = true
}

func (c *Config) DeselectAll() {
	c.SelectedItem.IDs = []string{}
	c.SelectedItem.IsAllSelected = false
}

// UpdateCheckBox applies a checkbox toggle. A nil id is the header checkbox.
// index is the row position and is not used by selection.
func (c *Config) UpdateCheckBox(id *string, index int, checked bool) {
	switch {
	case id != nil && checked:
		c.Select(*id)
	case id != nil:
		c.Deselect(*id)
	case checked:
		c.SelectAll()
	default:
		c.DeselectAll()
	}
}

// IsSelected reports whether id is part of the selection.
func (c *Config) IsSelected(id string) bool {
	return slices.Contains(c.SelectedItem.IDs, id)
}

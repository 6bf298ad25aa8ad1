package table

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SplitColumns divides the renderable headers into those shown in the row
// and those folded into the expandable row. A budget of zero or less, or one
// at least as large as the column count, shows everything.
func (c *Config) SplitColumns(columnToShow int) (visible, expanded []Header) {
	headers := c.RenderableHeaders()
	if columnToShow <= 0 || columnToShow >= len(headers) {
		return headers, nil
	}
	return headers[:columnToShow], headers[columnToShow:]
}

// Total sums TotalColumn over every row. Values that are not numbers are
// ignored; the boolean is false when no total column is configured.
func (c *Config) Total() (float64, bool) {
	if c.TotalColumn == "" {
		return 0, false
	}
	var sum float64
	for _, row := range c.Data {
		if n, ok := number(row[c.TotalColumn]); ok {
			sum += n
		}
	}
	return sum, true
}

// SortBy orders the rows by a sortable column. Numbers compare numerically,
// everything else by its text; ties keep their order.
func (c *Config) SortBy(key string, descending bool) error {
	if !c.Sorting.IsSorting || !c.Sorting.ColumnIndex.Has(key) {
		return fmt.Errorf("column %q is not sortable", key)
	}
	sort.SliceStable(c.Data, func(i, j int) bool {
		a, b := c.Data[i][key], c.Data[j][key]
		if descending {
			a, b = b, a
		}
		return less(a, b)
	})
	return nil
}

func less(a, b any) bool {
	na, aok := number(a)
	nb, bok := number(b)
	if aok && bok {
		return na < nb
	}
	return strings.Compare(text(a), text(b)) < 0
}

func text(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

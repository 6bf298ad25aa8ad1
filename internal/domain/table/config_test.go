package table

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tablekit/internal/domain/action"
)

func fixture(t *testing.T) *Config {
	t.Helper()

	cfg := NewConfig()
	cfg.UpdateIDIndex("id")
	cfg.UpdateHeaders([]Header{
		{Key: "id", Label: "ID"},
		{Key: "name", Label: "Name"},
		{Key: "amount", Label: "Amount"},
		{Key: "contact", Label: "Contact"},
		{Key: "secret", Label: "Secret"},
		{Key: "actions", Label: "Actions"},
	})
	cfg.UpdateData([]Row{
		{"id": 1, "name": "Carol", "amount": 30},
		{"id": 2, "name": "alice", "amount": "12.5"},
		{"id": 3, "name": "Bob", "amount": 7},
	})
	return cfg
}

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	require.Equal(t, "Show", cfg.ItemPerPage.Label)
	require.Equal(t, []int{5, 10, 20, 50, 100}, cfg.ItemPerPage.Options)
	require.Equal(t, 5, cfg.ItemPerPage.Value)
	require.False(t, cfg.ItemPerPage.IsShow)
	require.Equal(t, Numbered, cfg.Pagination.PaginationType)
	require.False(t, cfg.Pagination.IsShow)
	require.Empty(t, cfg.SelectedItem.IDs)
	require.False(t, cfg.SelectedItem.IsAllSelected)
}

func TestClassifyPrecedence(t *testing.T) {
	t.Parallel()

	cfg := fixture(t)
	view, err := action.Icon("view")
	require.NoError(t, err)

	cfg.UpdateActionColumn("contact", action.ActivityIcon, view)
	cfg.UpdateSpecificColumns("contact")
	cfg.UpdateMultipleColumns("contact")
	require.Equal(t, ActionColumn, Classify("contact", cfg))

	delete(cfg.Actions.ColumnIndex, "contact")
	require.Equal(t, Specific, Classify("contact", cfg))

	delete(cfg.SpecificColumn.ColumnIndex, "contact")
	require.Equal(t, Multiple, Classify("contact", cfg))

	delete(cfg.MultipleColumns.ColumnIndex, "contact")
	require.Equal(t, Normal, Classify("contact", cfg))
	require.True(t, IsNormalColumn("contact", cfg))
}

func TestClassifyRespectsEnableFlags(t *testing.T) {
	t.Parallel()

	cfg := fixture(t)
	cfg.UpdateMultipleColumns("name")
	cfg.MultipleColumns.IsMultipleColumns = false

	require.Equal(t, Normal, Classify("name", cfg))
	require.False(t, IsNormalColumn("name", cfg))
	require.Equal(t, Normal, Classify("name", nil))
}

func TestRenderableHeadersOmitSkipped(t *testing.T) {
	t.Parallel()

	cfg := fixture(t)
	cfg.UpdateSkipColumns("secret", "id")

	var keys []string
	for _, h := range cfg.RenderableHeaders() {
		keys = append(keys, h.Key)
	}
	require.Equal(t, []string{"name", "amount", "contact", "actions"}, keys)
}

func TestSelectionStateMachine(t *testing.T) {
	t.Parallel()

	cfg := fixture(t)

	cfg.Select("1")
	cfg.Select("1")
	require.Equal(t, []string{"1"}, cfg.SelectedItem.IDs)
	require.False(t, cfg.SelectedItem.IsAllSelected)

	cfg.Select("2")
	cfg.Select("3")
	require.True(t, cfg.SelectedItem.IsAllSelected)

	cfg.Deselect("9")
	require.Len(t, cfg.SelectedItem.IDs, 3)
	require.False(t, cfg.SelectedItem.IsAllSelected, "deselect never recounts")

	cfg.Deselect("2")
	require.Equal(t, []string{"1", "3"}, cfg.SelectedItem.IDs)
	require.False(t, cfg.IsSelected("2"))

	cfg.SelectAll()
	require.Equal(t, []string{"1", "2", "3"}, cfg.SelectedItem.IDs)
	require.True(t, cfg.SelectedItem.IsAllSelected)

	cfg.DeselectAll()
	require.Empty(t, cfg.SelectedItem.IDs)
	require.False(t, cfg.SelectedItem.IsAllSelected)
}

func TestUpdateCheckBoxDispatch(t *testing.T) {
	t.Parallel()

	id := "2"
	cases := []struct {
		name    string
		id      *string
		checked bool
		wantIDs []string
		wantAll bool
	}{
		{name: "row checked", id: &id, checked: true, wantIDs: []string{"1", "2"}},
		{name: "row unchecked", id: &id, checked: false, wantIDs: []string{"1"}},
		{name: "header checked", checked: true, wantIDs: []string{"1", "2", "3"}, wantAll: true},
		{name: "header unchecked", checked: false, wantIDs: []string{}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := fixture(t)
			cfg.Select("1")
			cfg.UpdateCheckBox(tc.id, 4, tc.checked)

			require.Equal(t, tc.wantIDs, cfg.SelectedItem.IDs)
			require.Equal(t, tc.wantAll, cfg.SelectedItem.IsAllSelected)
		})
	}
}

func TestItemPerPage(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	require.NoError(t, cfg.UpdateItemPerPageValue(20))
	require.Equal(t, 20, cfg.ItemPerPage.Value)
	require.Error(t, cfg.UpdateItemPerPageValue(7))
	require.Equal(t, 20, cfg.ItemPerPage.Value)

	require.Equal(t, 50, cfg.NextItemPerPage())
	require.Equal(t, 100, cfg.NextItemPerPage())
	require.Equal(t, 5, cfg.NextItemPerPage())
}

func TestPaginationUpdates(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.UpdatePaginationLoadMore()
	require.Equal(t, LoadMore, cfg.Pagination.PaginationType)
	cfg.UpdatePaginationNumber()
	require.Equal(t, Numbered, cfg.Pagination.PaginationType)

	cfg.UpdatePaginationData(map[string]any{"total": 40})
	require.True(t, cfg.Pagination.IsShow)
	require.Equal(t, 40, cfg.Pagination.Data["total"])
}

func TestSplitColumns(t *testing.T) {
	t.Parallel()

	cfg := fixture(t)
	cfg.UpdateSkipColumns("secret")

	visible, expanded := cfg.SplitColumns(2)
	require.Len(t, visible, 2)
	require.Equal(t, "name", visible[1].Key)
	require.Len(t, expanded, 3)

	visible, expanded = cfg.SplitColumns(0)
	require.Len(t, visible, 5)
	require.Empty(t, expanded)

	visible, expanded = cfg.SplitColumns(10)
	require.Len(t, visible, 5)
	require.Empty(t, expanded)
}

func TestTotal(t *testing.T) {
	t.Parallel()

	cfg := fixture(t)
	_, ok := cfg.Total()
	require.False(t, ok)

	cfg.UpdateTotalColumn("amount")
	cfg.Data = append(cfg.Data, Row{"id": 4, "amount": "n/a"})
	total, ok := cfg.Total()
	require.True(t, ok)
	require.InDelta(t, 49.5, total, 0.0001)
}

func TestSortBy(t *testing.T) {
	t.Parallel()

	cfg := fixture(t)
	require.Error(t, cfg.SortBy("amount", false))

	cfg.UpdateSortingColumns("amount", "name")
	require.NoError(t, cfg.SortBy("amount", false))
	require.Equal(t, []string{"3", "2", "1"}, rowIDs(cfg))

	require.NoError(t, cfg.SortBy("amount", true))
	require.Equal(t, []string{"1", "2", "3"}, rowIDs(cfg))

	require.NoError(t, cfg.SortBy("name", false))
	require.Equal(t, []string{"3", "1", "2"}, rowIDs(cfg))
}

func rowIDs(cfg *Config) []string {
	ids := make([]string, 0, len(cfg.Data))
	for _, row := range cfg.Data {
		ids = append(ids, cfg.RowID(row))
	}
	return ids
}

func TestConfigToggleKeysRoundTrip(t *testing.T) {
	t.Parallel()

	host := `{
		"specificColumn": {"isSpecific": true, "columnIndex": {"status": {}}},
		"skipColumn": {"isSkip": true, "columnIndex": {"secret": {}}},
		"sorting": {"isSorting": true, "columnIndex": {"amount": {}}}
	}`
	cfg := NewConfig()
	require.NoError(t, json.Unmarshal([]byte(host), cfg))
	require.True(t, cfg.SpecificColumn.IsSpecific)
	require.True(t, cfg.SkipColumn.IsSkip)
	require.True(t, cfg.Sorting.IsSorting)
	require.Equal(t, Specific, Classify("status", cfg))

	configured := fixture(t)
	configured.UpdateSpecificColumns("contact")
	configured.UpdateSkipColumns("secret")
	configured.UpdateSortingColumns("amount")
	out, err := json.Marshal(configured)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &decoded))
	for key, toggle := range map[string]string{
		"specificColumn": "isSpecific",
		"skipColumn":     "isSkip",
		"sorting":        "isSorting",
	} {
		var section map[string]any
		require.NoError(t, json.Unmarshal(decoded[key], &section), key)
		require.Equal(t, true, section[toggle], key)
		require.NotContains(t, section, "enabled", key)
	}
}

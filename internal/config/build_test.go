package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tablekit/internal/domain/action"
	"github.com/alexisbeaulieu97/tablekit/internal/domain/responsive"
	"github.com/alexisbeaulieu97/tablekit/internal/domain/style"
	"github.com/alexisbeaulieu97/tablekit/internal/domain/table"
	"github.com/alexisbeaulieu97/tablekit/internal/logger"
	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

func TestBuildExampleTable(t *testing.T) {
	t.Parallel()

	doc, err := ParseConfig(filepath.Join("..", "..", "examples", "tables", "users.yaml"))
	require.NoError(t, err)

	built, err := doc.Build(logger.Nop())
	require.NoError(t, err)
	cfg := built.Config

	require.Equal(t, "users", built.Name)
	require.Equal(t, "id", cfg.IDIndex)
	require.Len(t, cfg.Headers, 7)
	require.Len(t, cfg.RenderableHeaders(), 6)
	require.Equal(t, table.Multiple, table.Classify("teams", cfg))
	require.Equal(t, table.Specific, table.Classify("status", cfg))
	require.Equal(t, table.ActionColumn, table.Classify("actions", cfg))
	require.True(t, cfg.IsSerialNoShow)
	require.True(t, cfg.SelectShow)
	require.True(t, cfg.ItemPerPage.IsShow)
	require.Equal(t, 4, cfg.ItemPerPage.Value)
	require.True(t, cfg.Pagination.IsShow)
	require.Equal(t, table.Numbered, cfg.Pagination.PaginationType)

	activities := cfg.Actions.ColumnIndex["actions"].ActivityList
	require.Len(t, activities, 3)
	require.Equal(t, action.Route, activities[0].PopUpOrRoute.IsPopUpOrRoute)
	require.Equal(t, "/users/view", activities[0].PopUpOrRoute.Module)
	require.Equal(t, action.PopUp, activities[1].PopUpOrRoute.IsPopUpOrRoute)
	require.Equal(t, action.Neither, activities[2].PopUpOrRoute.IsPopUpOrRoute)

	total, ok := cfg.Total()
	require.True(t, ok)
	require.InDelta(t, 155.5, total, 0.001)

	name, ok := responsive.Match(700, built.Responsive)
	require.True(t, ok)
	require.Equal(t, "sm", name)
	n, ok := built.Responsive.ColumnToShow("sm")
	require.True(t, ok)
	require.Equal(t, 3, n)

	styles := built.Styles
	require.Equal(t, "table__main table--striped", styles.Get(style.Main, style.Global()))
	require.Equal(t, "status__badge", styles.Get(style.SpecificColumn, style.Column("status")))
	require.Equal(t, "highlight", styles.Get(style.TdItem, style.Cell("3", "name")))
	require.Equal(t, []string{"sort__up", "sort__down"}, styles.PathClasses(style.SortingPath, style.Global()))
	require.Equal(t, "expand__plus", styles.Icon(style.ExpandIconPlus).Icon)
	require.True(t, styles.IsUpdated(style.ExpandIconGroup))
}

func TestBuildButtonsAndLoadMore(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(minimalYAML + `actions:
  - column: name
    activity_type: button
    activities:
      - button: cancelOutline
        value: 9
        content: Cancel
        behavior: popup
        module: confirm
pagination:
  show: true
  type: load_more
item_per_page:
  options: [3, 6]
responsive:
  column_to_show: 0
  breakpoints: [md, xxsm]
`))
	require.NoError(t, err)

	built, err := doc.Build(nil)
	require.NoError(t, err)

	column := built.Config.Actions.ColumnIndex["name"]
	require.Equal(t, action.ActivityButton, column.ActivityType)
	b := column.ActivityList[0]
	require.Equal(t, "customTable__button__cancel__outline", b.ButtonClass)
	require.Equal(t, 9, b.Value)
	require.Equal(t, action.PopUp, b.PopUpOrRoute.IsPopUpOrRoute)

	require.Equal(t, table.LoadMore, built.Config.Pagination.PaginationType)
	require.Equal(t, 3, built.Config.ItemPerPage.Value)
	require.Equal(t, []string{"md", "xxsm"}, built.Responsive.Breakpoints())
	require.Equal(t, 1, built.Responsive.Default())
}

func TestBuildIconOverrides(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(minimalYAML + `actions:
  - column: name
    activity_type: icon
    activities:
      - preset: list
        icon_type: iconLock
        content: lock
        value: 42
        no_wrapper: true
`))
	require.NoError(t, err)

	built, err := doc.Build(nil)
	require.NoError(t, err)
	icon := built.Config.Actions.ColumnIndex["name"].ActivityList[0]
	require.Equal(t, "iconLock", icon.IconType)
	require.Equal(t, "lock", icon.Content)
	require.Equal(t, 42, icon.Value)
	require.Empty(t, icon.IconClasses.Wrapper)
	require.Equal(t, action.Route, icon.PopUpOrRoute.IsPopUpOrRoute)
}

func TestBuildRejectsStylePaths(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		styles      string
		wantSegment string
	}{
		{
			name: "unknown segment",
			styles: `styles:
  - path: body.bodyTx
    value: x
`,
			wantSegment: "bodyTx",
		},
		{
			name: "region instead of leaf",
			styles: `styles:
  - path: pagination.loadMore
    value: x
`,
		},
		{
			name: "row without column",
			styles: `styles:
  - path: td.item
    row: "1"
    value: x
`,
		},
		{
			name: "row tier on column-only leaf",
			styles: `styles:
  - path: specificColumn
    column: name
    row: "1"
    value: x
`,
		},
		{
			name: "unknown icon bundle",
			styles: `icons:
  - bundle: head.headTh
    icon: x
`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse([]byte(minimalYAML + tc.styles))
			require.NoError(t, err)

			_, err = doc.Build(nil)
			var cfgErr *tkerrors.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			if tc.wantSegment != "" {
				require.Equal(t, tc.wantSegment, cfgErr.Segment)
			}
		})
	}
}

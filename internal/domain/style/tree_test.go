package style

import (
	"testing"

	"github.com/stretchr/testify/require"

	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

func TestGetReturnsDefaultsWithoutOverrides(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	require.Equal(t, "table__main", tree.Get(Main, Global()))
	require.Equal(t, "table__body__td", tree.Get(BodyTd, Cell("7", "name")))
	require.Equal(t, []string{"table__pagination__icon__path1", "table__pagination__icon__path2"}, tree.PathClasses(PaginationPath, Global()))
	require.Equal(t, "table__head__th__0Index", tree.Get(HeadThIndex, Column("0")))
	require.Equal(t, "", tree.Get(HeadThIndex, Column("1")))
}

func TestSetThenGetRoundTripsEveryLeaf(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	for _, p := range Paths() {
		value := "custom-" + p.String()
		require.NoError(t, tree.SetDotted(p.String(), value, Global()), p)
		require.Equal(t, value, tree.Get(p, Global()), p)
	}
}

func TestOverridePrecedence(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	require.NoError(t, tree.Set(TdItem, "global", Global()))
	require.NoError(t, tree.Set(TdItem, "column", Column("email")))
	require.NoError(t, tree.Set(TdItem, "cell", Cell("42", "email")))

	require.Equal(t, "cell", tree.Get(TdItem, Cell("42", "email")))
	require.Equal(t, "column", tree.Get(TdItem, Cell("43", "email")))
	require.Equal(t, "column", tree.Get(TdItem, Column("email")))
	require.Equal(t, "global", tree.Get(TdItem, Column("name")))
	require.Equal(t, "global", tree.Get(TdItem, Global()))
}

func TestWritesNeverDeleteBroaderTiers(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	require.NoError(t, tree.Set(BodyTd, "column", Column("name")))
	require.NoError(t, tree.Set(BodyTd, "cell", Cell("1", "name")))
	require.NoError(t, tree.Clear(BodyTd, Cell("1", "name")))

	require.Equal(t, "column", tree.Get(BodyTd, Cell("1", "name")))
	require.NoError(t, tree.Clear(BodyTd, Column("name")))
	require.Equal(t, "table__body__td", tree.Get(BodyTd, Cell("1", "name")))
}

func TestReadingUnsupportedTierFallsBackToGlobal(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	require.NoError(t, tree.Set(Main, "wrapper", Global()))
	require.Equal(t, "wrapper", tree.Get(Main, Cell("1", "name")))
}

func TestSetDottedUnknownSegmentFailsWithoutWriting(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	before := tree.Overrides()

	err := tree.SetDotted("pagination.loadMore.buton", "x", Global())

	var cfgErr *tkerrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "buton", cfgErr.Segment)
	require.Equal(t, before, tree.Overrides())
	require.Equal(t, "table__pagination__loadMore__button", tree.Get(LoadMoreButton, Global()))
}

func TestSetRejectsUnknownPathConstant(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	err := tree.Set(Path("head.headThh"), "x", Global())

	var cfgErr *tkerrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "headThh", cfgErr.Segment)
}

func TestParsePathRejectsRegions(t *testing.T) {
	t.Parallel()

	_, err := ParsePath("pagination.loadMore")
	var cfgErr *tkerrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Empty(t, cfgErr.Segment)

	_, err = ParsePath("  ")
	require.ErrorAs(t, err, &cfgErr)
}

func TestSetRejectsUnsupportedTier(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	cases := []struct {
		name  string
		path  Path
		scope Scope
	}{
		{name: "global only leaf with column", path: Main, scope: Column("name")},
		{name: "column only leaf with cell", path: ActionColumnWrapper, scope: Cell("1", "actions")},
		{name: "row without column", path: TdItem, scope: Scope{RowID: "1"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tree.Set(tc.path, "x", tc.scope)
			var cfgErr *tkerrors.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
		})
	}
	require.Empty(t, tree.Overrides())
}

func TestSetChecksLeafKind(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	require.Error(t, tree.Set(PaginationPath, "x", Global()))
	require.Error(t, tree.SetPaths(Main, []string{"x"}, Global()))
	require.NoError(t, tree.SetPaths(PaginationPath, []string{"a", "b", "c"}, Global()))
	require.Equal(t, "a b c", tree.Get(PaginationPath, Global()))
}

func TestSetPathAtGrowsList(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	require.NoError(t, tree.SetPathAt(SortingPath, 3, "p4"))
	require.Equal(t, []string{"table__action__wrapper__icon__path1", "table__action__wrapper__icon__path2", "", "p4"}, tree.PathClasses(SortingPath, Global()))
	require.Error(t, tree.SetPathAt(SortingPath, -1, "x"))
	require.Error(t, tree.SetPathAt(SortingIcon, 0, "x"))
}

func TestAppendAddsToEffectiveClass(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	require.NoError(t, tree.Set(TdItem, "base", Column("amount")))
	require.NoError(t, tree.Append(TdItem, "negative", Cell("9", "amount")))

	require.Equal(t, "base negative", tree.Get(TdItem, Cell("9", "amount")))
	require.Equal(t, "base", tree.Get(TdItem, Column("amount")))
}

func TestIconShapeMarksGroupUpdated(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	require.False(t, tree.IsUpdated(SortIconGroup))

	shape := IconShape{Icon: "sort", Paths: []string{"up", "down"}}
	require.NoError(t, tree.SetIcon(SortIconNormal, shape))

	require.True(t, tree.IsUpdated(SortIconGroup))
	require.False(t, tree.IsUpdated(ExpandIconGroup))
	require.Equal(t, shape, tree.Icon(SortIconNormal))

	require.NoError(t, tree.Set(ExpandPlusIcon, "plus", Global()))
	require.True(t, tree.IsUpdated(ExpandIconGroup))
}

func TestWrapperLeavesDoNotMarkIconGroup(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	require.NoError(t, tree.Set(ExpandPlusWrapper, "wrap", Global()))
	require.False(t, tree.IsUpdated(ExpandIconGroup))
}

func TestParseComposite(t *testing.T) {
	t.Parallel()

	c, err := ParseComposite("expandColumn.icon.minus")
	require.NoError(t, err)
	require.Equal(t, ExpandIconMinus, c)

	_, err = ParseComposite("expandColumn.icon.minuss")
	var cfgErr *tkerrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "minuss", cfgErr.Segment)

	_, err = ParseComposite("main")
	require.ErrorAs(t, err, &cfgErr)
}

func TestDefaultStyleTableIsACopy(t *testing.T) {
	t.Parallel()

	table := DefaultStyleTable()
	table[Main] = Entry{Class: "mutated"}

	require.Equal(t, "table__main", DefaultStyleTable()[Main].Class)
	require.Equal(t, "table__main", NewTree().Get(Main, Global()))
}

func TestLoadMoreSwapRestoresSnapshot(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	require.NoError(t, tree.Set(LoadMoreContent, "host-content", Global()))
	swap := NewLoadMoreSwap(tree)

	swap.Start()
	require.True(t, swap.Active())
	require.Equal(t, "table__pagination__loadMore__buttonClick", tree.Get(LoadMoreButton, Global()))
	require.Equal(t, "table__pagination__loadMore__animation__contentClick", tree.Get(LoadMoreContent, Global()))

	swap.Start()
	swap.Stop()
	require.False(t, swap.Active())
	require.Equal(t, "table__pagination__loadMore__button", tree.Get(LoadMoreButton, Global()))
	require.Equal(t, "host-content", tree.Get(LoadMoreContent, Global()))
}

package style

const (
	cellTiers   = TierGlobal | TierColumn | TierRow
	columnTiers = TierGlobal | TierColumn
)

// defaultLeaves is the shape of the tree together with the class names every
// table starts from.
var defaultLeaves = []leafSpec{
	{path: Main, class: "table__main"},

	{path: PaginationWrapper, class: "table__pagination__wrapper"},
	{path: PaginationContainer, class: "table__pagination__container"},
	{path: PaginationItemLink, class: "table__pagination__itemLink"},
	{path: PaginationItemLinkClicked, class: "table__pagination__itemLinkClicked"},
	{path: PaginationIcon, class: "table__pagination__icon__icon"},
	{path: PaginationPath, kind: kindPaths, paths: []string{"table__pagination__icon__path1", "table__pagination__icon__path2"}},
	{path: LoadMoreWrapper, class: "table__pagination__loadMore__wrapper"},
	{path: LoadMoreButton, class: "table__pagination__loadMore__button"},
	{path: LoadMoreButtonClick, class: "table__pagination__loadMore__buttonClick"},
	{path: LoadMoreContainer, class: "table__pagination__loadMore__container"},
	{path: LoadMoreAnimation, class: "table__pagination__loadMore__animation"},
	{path: LoadMoreContent, class: "table__pagination__loadMore__animation__content"},
	{path: LoadMoreContentClick, class: "table__pagination__loadMore__animation__contentClick"},

	{path: ItemPerPageWrapper, class: "table__itemPerPage__wrapper"},
	{path: ItemPerPageLabel, class: "table__itemPerPage__label"},
	{path: ItemPerPageField, class: "table__itemPerPage__field"},

	{path: Head, class: "table__head"},
	{path: HeadTr, class: "table__head__tr"},
	{path: HeadTh, class: "table__head__th"},
	{path: HeadThSortItem, class: "table__head__th__sortItem"},
	{path: HeadSortNormalIcon, class: "table__head__th__sortIcon__icon", group: SortIconGroup},
	{path: HeadSortNormalPath, kind: kindPaths, group: SortIconGroup, paths: []string{"table__head__th__sortIcon__icon__path1", "table__head__th__sortIcon__icon__path2"}},
	{path: HeadSortClickIcon, class: "table__head__th__sortIcon__click__icon", group: SortIconGroup},
	{path: HeadSortClickPath, kind: kindPaths, group: SortIconGroup, paths: []string{"table__head__th__sortIcon__click__icon__path"}},
	{path: HeadThItem, class: "table__head__th__item"},
	{path: HeadThIndex, tiers: columnTiers, columnClass: map[string]string{"0": "table__head__th__0Index"}},

	{path: Body, class: "table__body"},
	{path: BodyTr, class: "table__body__tr"},
	{path: BodyTd, class: "table__body__td", tiers: cellTiers},

	{path: MultipleContainer, class: "table__body__td__multipleColumn__wrapper", tiers: cellTiers},
	{path: MultipleContainerValue, class: "table__body__td__multipleColumn__value", tiers: cellTiers},

	{path: ActionColumnWrapper, class: "table__body__td__actionColumn__wrapper", tiers: columnTiers},
	{path: ActionColumnContainer, class: "table__body__td__actionColumn__container", tiers: columnTiers},
	{path: ActionIconHoverWrapper, class: "table__body__td__actionColumn__iconHover__wrapper"},
	{path: ActionIconHoverContainer, class: "table__body__td__actionColumn__iconHover__container"},
	{path: ActionIconHoverCaret, class: "table__body__td__actionColumn__iconHover__caret"},
	{path: ActionIconHoverValue, class: "table__body__td__actionColumn__iconHover__value"},

	{path: TdWrapper, class: "table__body__td__normal__wrapper", tiers: cellTiers},
	{path: TdItem, class: "table__body__td__normal__item", tiers: cellTiers},

	{path: SpecificColumn, tiers: columnTiers},
	{path: ListViewComponent},

	{path: ExpandPlusWrapper, class: "table__expandColumn__icon__plus__wrapper"},
	{path: ExpandPlusIcon, class: "table__expandColumn__icon__plus__icon", group: ExpandIconGroup},
	{path: ExpandPlusPath, kind: kindPaths, group: ExpandIconGroup, paths: []string{"table__expandColumn__icon__plus__icon__path1", "table__expandColumn__icon__plus__icon__path2"}},
	{path: ExpandMinusWrapper, class: "table__expandColumn__icon__minus__wrapper"},
	{path: ExpandMinusIcon, class: "table__expandColumn__icon__minus__icon", group: ExpandIconGroup},
	{path: ExpandMinusPath, kind: kindPaths, group: ExpandIconGroup, paths: []string{"table__expandColumn__icon__minus__icon__path1", "table__expandColumn__icon__minus__icon__path2"}},
	{path: ExpandTr, class: "table__expandColumn__tr"},
	{path: ExpandTd, class: "table__expandColumn__td"},
	{path: ExpandMainDiv, class: "table__expandColumn__td__mainDiv", tiers: columnTiers},
	{path: ExpandHeader, class: "table__expandColumn__td__mainDiv__header", tiers: columnTiers},
	{path: ExpandData, class: "table__expandColumn__td__mainDiv__data__main", tiers: columnTiers},
	{path: ExpandNormalWrapper, class: "table__expandColumn__td__mainDiv__data__wrapper", tiers: cellTiers},
	{path: ExpandNormalData, class: "table__expandColumn__td__mainDiv__data__normal", tiers: cellTiers},
	{path: ExpandMultipleContainer, class: "table__expandColumn__td__multipleColumn__wrapper", tiers: cellTiers},
	{path: ExpandMultipleContainerValue, class: "table__expandColumn__td__multipleColumn__value", tiers: cellTiers},
	{path: ExpandActionColumnWrapper, class: "table__expandColumn__td__actionColumn__wrapper", tiers: columnTiers},
	{path: ExpandActionColumnContainer, class: "table__expandColumn__td__actionColumn__container", tiers: columnTiers},
	{path: ExpandIconHoverWrapper, class: "table__expandColumn__td__actionColumn__iconHover__wrapper"},
	{path: ExpandIconHoverContainer, class: "table__expandColumn__td__actionColumn__iconHover__container"},
	{path: ExpandIconHoverCaret, class: "table__expandColumn__td__actionColumn__iconHover__caret"},
	{path: ExpandIconHoverValue, class: "table__expandColumn__td__actionColumn__iconHover__value"},

	{path: SortingIcon, class: "table__action__wrapper__icon"},
	{path: SortingPath, kind: kindPaths, paths: []string{"table__action__wrapper__icon__path1", "table__action__wrapper__icon__path2"}},
	{path: SortingPathClick, kind: kindPaths, paths: []string{"table__action__wrapper__icon__path1", "table__action__wrapper__icon__path2"}},
}

// Entry is the value stored at one leaf: a class string, or a list of path
// classes for SVG leaves.
type Entry struct {
	Class string   `json:"class,omitempty" yaml:"class,omitempty"`
	Paths []string `json:"paths,omitempty" yaml:"paths,omitempty"`
}

// String joins the entry into a single class attribute value.
func (e Entry) String() string {
	if len(e.Paths) > 0 {
		return JoinClasses(e.Paths...)
	}
	return e.Class
}

func (e Entry) clone() Entry {
	return Entry{Class: e.Class, Paths: append([]string(nil), e.Paths...)}
}

// DefaultStyleTable returns a copy of the global defaults keyed by path. The
// copy can be modified freely; the defaults themselves never change.
func DefaultStyleTable() map[Path]Entry {
	out := make(map[Path]Entry, len(defaultLeaves))
	for _, spec := range defaultLeaves {
		out[spec.path] = spec.defaultEntry()
	}
	return out
}

func (s leafSpec) defaultEntry() Entry {
	if s.kind == kindPaths {
		return Entry{Paths: append([]string(nil), s.paths...)}
	}
	return Entry{Class: s.class}
}

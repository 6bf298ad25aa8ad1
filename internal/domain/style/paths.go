package style

import (
	"sort"
	"strings"

	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

// Path names one leaf of the style tree. The set of valid paths is closed:
// every constant below is a leaf, and ParsePath is the only way to turn a
// dotted string into a Path.
type Path string

// String returns the dotted form of the path.
func (p Path) String() string { return string(p) }

const (
	Main Path = "main"

	PaginationWrapper         Path = "pagination.wrapper"
	PaginationContainer       Path = "pagination.container"
	PaginationItemLink        Path = "pagination.itemLink"
	PaginationItemLinkClicked Path = "pagination.itemLinkClicked"
	PaginationIcon            Path = "pagination.icon"
	PaginationPath            Path = "pagination.path"
	LoadMoreWrapper           Path = "pagination.loadMore.wrapper"
	LoadMoreButton            Path = "pagination.loadMore.button"
	LoadMoreButtonClick       Path = "pagination.loadMore.buttonClick"
	LoadMoreContainer         Path = "pagination.loadMore.container"
	LoadMoreAnimation         Path = "pagination.loadMore.animation"
	LoadMoreContent           Path = "pagination.loadMore.content"
	LoadMoreContentClick      Path = "pagination.loadMore.contentClick"

	ItemPerPageWrapper Path = "itemPerPage.wrapper"
	ItemPerPageLabel   Path = "itemPerPage.label"
	ItemPerPageField   Path = "itemPerPage.field"

	Head               Path = "head.head"
	HeadTr             Path = "head.headTr"
	HeadTh             Path = "head.headTh"
	HeadThSortItem     Path = "head.headThSortItem"
	HeadSortNormalIcon Path = "head.headThSortIcon.normal.icon"
	HeadSortNormalPath Path = "head.headThSortIcon.normal.path"
	HeadSortClickIcon  Path = "head.headThSortIcon.onClick.icon"
	HeadSortClickPath  Path = "head.headThSortIcon.onClick.path"
	HeadThItem         Path = "head.headThItem"
	HeadThIndex        Path = "head.headThIndex"

	Body   Path = "body.body"
	BodyTr Path = "body.bodyTr"
	BodyTd Path = "body.bodyTd"

	MultipleContainer      Path = "multipleColumn.multipleContainer"
	MultipleContainerValue Path = "multipleColumn.multipleContainerValue"

	ActionColumnWrapper      Path = "actionColumn.actionColumnWrapper"
	ActionColumnContainer    Path = "actionColumn.actionColumnContainer"
	ActionIconHoverWrapper   Path = "actionColumn.iconHover.wrapper"
	ActionIconHoverContainer Path = "actionColumn.iconHover.container"
	ActionIconHoverCaret     Path = "actionColumn.iconHover.caret"
	ActionIconHoverValue     Path = "actionColumn.iconHover.value"

	TdWrapper Path = "td.wrapper"
	TdItem    Path = "td.item"

	SpecificColumn    Path = "specificColumn"
	ListViewComponent Path = "listViewComponent"

	ExpandPlusWrapper            Path = "expandColumn.icon.plus.wrapper"
	ExpandPlusIcon               Path = "expandColumn.icon.plus.icon"
	ExpandPlusPath               Path = "expandColumn.icon.plus.path"
	ExpandMinusWrapper           Path = "expandColumn.icon.minus.wrapper"
	ExpandMinusIcon              Path = "expandColumn.icon.minus.icon"
	ExpandMinusPath              Path = "expandColumn.icon.minus.path"
	ExpandTr                     Path = "expandColumn.tr"
	ExpandTd                     Path = "expandColumn.td.td"
	ExpandMainDiv                Path = "expandColumn.td.mainDiv"
	ExpandHeader                 Path = "expandColumn.td.header"
	ExpandData                   Path = "expandColumn.td.data"
	ExpandNormalWrapper          Path = "expandColumn.td.normal.wrapper"
	ExpandNormalData             Path = "expandColumn.td.normal.data"
	ExpandMultipleContainer      Path = "expandColumn.multipleColumn.multipleContainer"
	ExpandMultipleContainerValue Path = "expandColumn.multipleColumn.multipleContainerValue"
	ExpandActionColumnWrapper    Path = "expandColumn.actionColumn.actionColumnWrapper"
	ExpandActionColumnContainer  Path = "expandColumn.actionColumn.actionColumnContainer"
	ExpandIconHoverWrapper       Path = "expandColumn.actionColumn.iconHover.wrapper"
	ExpandIconHoverContainer     Path = "expandColumn.actionColumn.iconHover.container"
	ExpandIconHoverCaret         Path = "expandColumn.actionColumn.iconHover.caret"
	ExpandIconHoverValue         Path = "expandColumn.actionColumn.iconHover.value"

	SortingIcon      Path = "sorting.icon"
	SortingPath      Path = "sorting.path"
	SortingPathClick Path = "sorting.pathClick"
)

// Tier is a bit set of the override levels a leaf accepts.
type Tier uint8

const (
	TierGlobal Tier = 1 << iota
	TierColumn
	TierRow
)

type leafKind int

const (
	kindClass leafKind = iota
	kindPaths
)

// IconGroup identifies a family of icon leaves whose "updated" flag flips
// whenever one of its shape leaves is written.
type IconGroup string

const (
	SortIconGroup   IconGroup = "head.headThSortIcon"
	ExpandIconGroup IconGroup = "expandColumn.icon"
)

type leafSpec struct {
	path        Path
	kind        leafKind
	tiers       Tier
	class       string
	paths       []string
	columnClass map[string]string
	group       IconGroup
}

var (
	leafIndex map[Path]leafSpec
	pathTrie  *trieNode
)

type trieNode struct {
	children map[string]*trieNode
	leaf     bool
}

func init() {
	leafIndex = make(map[Path]leafSpec, len(defaultLeaves))
	pathTrie = &trieNode{children: map[string]*trieNode{}}
	for _, spec := range defaultLeaves {
		if spec.tiers == 0 {
			spec.tiers = TierGlobal
		}
		leafIndex[spec.path] = spec

		node := pathTrie
		for _, segment := range strings.Split(string(spec.path), ".") {
			next, ok := node.children[segment]
			if !ok {
				next = &trieNode{children: map[string]*trieNode{}}
				node.children[segment] = next
			}
			node = next
		}
		node.leaf = true
	}
}

// ParsePath resolves a dotted path such as "pagination.loadMore.button". An
// unknown segment produces a ConfigurationError that names it; a path that
// stops at a region instead of a leaf is rejected as well.
func ParsePath(dotted string) (Path, error) {
	trimmed := strings.TrimSpace(dotted)
	if trimmed == "" {
		return "", tkerrors.NewConfigurationError(dotted, "", "empty style path")
	}

	node := pathTrie
	for _, segment := range strings.Split(trimmed, ".") {
		next, ok := node.children[segment]
		if !ok {
			return "", tkerrors.NewConfigurationError(trimmed, segment, "")
		}
		node = next
	}
	if !node.leaf {
		return "", tkerrors.NewConfigurationError(trimmed, "", "path names a region, not a leaf")
	}
	return Path(trimmed), nil
}

// Paths lists every leaf in sorted order.
func Paths() []Path {
	out := make([]Path, 0, len(leafIndex))
	for p := range leafIndex {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Tiers reports which override levels the leaf accepts. Unknown paths report
// zero.
func (p Path) Tiers() Tier {
	return leafIndex[p].tiers
}

// IsPathList reports whether the leaf holds a list of SVG path classes rather
// than a single class string.
func (p Path) IsPathList() bool {
	return leafIndex[p].kind == kindPaths
}

func lookupLeaf(p Path) (leafSpec, error) {
	spec, ok := leafIndex[p]
	if ok {
		return spec, nil
	}
	if _, err := ParsePath(string(p)); err != nil {
		return leafSpec{}, err
	}
	return leafSpec{}, tkerrors.NewConfigurationError(string(p), "", "unknown style path")
}

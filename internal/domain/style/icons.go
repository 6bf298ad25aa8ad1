package style

import (
	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

// Composite names an icon bundle that is replaced as a whole.
type Composite string

const (
	SortIconNormal  Composite = "head.headThSortIcon.normal"
	SortIconOnClick Composite = "head.headThSortIcon.onClick"
	ExpandIconPlus  Composite = "expandColumn.icon.plus"
	ExpandIconMinus Composite = "expandColumn.icon.minus"
)

// IconShape is the class bundle of an SVG icon: the class on the svg element
// and one class per path/stroke element.
type IconShape struct {
	Icon  string   `json:"icon" yaml:"icon"`
	Paths []string `json:"path" yaml:"path"`
}

type compositeLeaves struct {
	icon  Path
	paths Path
}

var composites = map[Composite]compositeLeaves{
	SortIconNormal:  {icon: HeadSortNormalIcon, paths: HeadSortNormalPath},
	SortIconOnClick: {icon: HeadSortClickIcon, paths: HeadSortClickPath},
	ExpandIconPlus:  {icon: ExpandPlusIcon, paths: ExpandPlusPath},
	ExpandIconMinus: {icon: ExpandMinusIcon, paths: ExpandMinusPath},
}

// ParseComposite resolves a dotted composite name.
func ParseComposite(dotted string) (Composite, error) {
	c := Composite(dotted)
	if _, ok := composites[c]; !ok {
		if _, err := ParsePath(dotted); err != nil {
			return "", err
		}
		return "", tkerrors.NewConfigurationError(dotted, "", "not an icon bundle")
	}
	return c, nil
}

// SetIcon replaces both leaves of the bundle and marks its icon group as
// updated. Either both leaves change or neither does.
func (t *Tree) SetIcon(c Composite, shape IconShape) error {
	leaves, ok := composites[c]
	if !ok {
		return tkerrors.NewConfigurationError(string(c), "", "not an icon bundle")
	}
	iconSpec, err := t.writable(leaves.icon, Global())
	if err != nil {
		return err
	}
	pathSpec, err := t.writable(leaves.paths, Global())
	if err != nil {
		return err
	}

	t.store(iconSpec, Global(), Entry{Class: shape.Icon})
	t.store(pathSpec, Global(), Entry{Paths: append([]string(nil), shape.Paths...)})
	return nil
}

// Icon returns the effective bundle.
func (t *Tree) Icon(c Composite) IconShape {
	leaves, ok := composites[c]
	if !ok {
		return IconShape{}
	}
	return IconShape{
		Icon:  t.Get(leaves.icon, Global()),
		Paths: t.PathClasses(leaves.paths, Global()),
	}
}

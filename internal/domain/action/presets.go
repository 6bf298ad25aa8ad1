package action

import (
	"fmt"
	"sort"
)

// IconPreset holds the constant defaults of a standard icon action.
type IconPreset struct {
	Value     int
	Content   string
	IconType  string
	BaseClass string
}

// IconPresets are the standard icon actions keyed by name.
var IconPresets = map[string]IconPreset{
	"view":    {Value: 1, Content: "view", IconType: "iconView", BaseClass: "table__action"},
	"edit":    {Value: 2, Content: "edit", IconType: "iconEdit", BaseClass: "table__action"},
	"destroy": {Value: 3, Content: "delete", IconType: "iconDestroy", BaseClass: "table__action"},
	"sms":     {Value: 4, Content: "sms", IconType: "iconPhoneText", BaseClass: "table__action"},
	"message": {Value: 5, Content: "Message", IconType: "iconMessage", BaseClass: "table__action"},
	"email":   {Value: 6, Content: "email", IconType: "iconEmail", BaseClass: "table__action"},
	"list":    {Value: 7, Content: "click", IconType: "iconList", BaseClass: "table__action"},
	"addUser": {Value: 19, Content: "add user", IconType: "iconAddUser", BaseClass: "table__action"},
}

// ButtonPresets maps a button variant to its class.
var ButtonPresets = map[string]string{
	"primaryNormal":    "customTable__button__primary__normal",
	"primaryOutline":   "customTable__button__primary__outline",
	"secondaryNormal":  "customTable__button__secondary__normal",
	"secondaryOutline": "customTable__button__secondary__outline",
	"disableNormal":    "customTable__button__disable__normal",
	"disableOutline":   "customTable__button__disable__outline",
	"cancelNormal":     "customTable__button__cancel__normal",
	"cancelOutline":    "customTable__button__cancel__outline",
}

// IconOption adjusts an icon action while it is built.
type IconOption func(*Action, *iconBuild)

type iconBuild struct {
	noWrapper bool
}

// WithoutWrapper leaves the wrapper class empty.
func WithoutWrapper() IconOption {
	return func(_ *Action, b *iconBuild) { b.noWrapper = true }
}

// WithBehavior sets what the icon does when clicked.
func WithBehavior(behavior Behavior, module string) IconOption {
	return func(a *Action, _ *iconBuild) { a.UpdatePopUpOrRoute(behavior, module) }
}

// WithContent overrides the preset label.
func WithContent(content string) IconOption {
	return func(a *Action, _ *iconBuild) { a.Content = content }
}

// BuildIcon creates an icon action from a preset. Icons route to an empty
// module unless a behavior option says otherwise.
func BuildIcon(preset IconPreset, opts ...IconOption) *Action {
	a := &Action{
		Family:       IconFamily,
		Value:        preset.Value,
		Content:      preset.Content,
		IconType:     preset.IconType,
		PopUpOrRoute: PopUpOrRoute{IsPopUpOrRoute: Route},
	}
	var build iconBuild
	for _, opt := range opts {
		opt(a, &build)
	}
	a.IconClasses = iconClasses(preset.BaseClass, !build.noWrapper)
	return a
}

// Icon builds the named icon preset.
func Icon(name string, opts ...IconOption) (*Action, error) {
	preset, ok := IconPresets[name]
	if !ok {
		return nil, fmt.Errorf("unknown icon preset %q", name)
	}
	return BuildIcon(preset, opts...), nil
}

// Button builds a button action of the named variant.
func Button(variant string, value int, content string) (*Action, error) {
	class, ok := ButtonPresets[variant]
	if !ok {
		return nil, fmt.Errorf("unknown button preset %q", variant)
	}
	return &Action{
		Family:       ButtonFamily,
		Value:        value,
		Content:      content,
		ButtonClass:  class,
		PopUpOrRoute: PopUpOrRoute{IsPopUpOrRoute: Route},
	}, nil
}

// PresetNames lists icon or button preset names in sorted order.
func PresetNames(family Family) []string {
	var names []string
	if family == IconFamily {
		for name := range IconPresets {
			names = append(names, name)
		}
	} else {
		for name := range ButtonPresets {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func iconClasses(baseClass string, useWrapper bool) *IconClasses {
	prefix := baseClass + "__wrapper"
	classes := &IconClasses{
		Icon:   prefix + "__icon",
		Path:   []string{prefix + "__icon__path1", prefix + "__icon__path2"},
		Stroke: []string{prefix + "__icon__stroke1", prefix + "__icon__stroke2"},
	}
	if useWrapper {
		classes.Wrapper = prefix
	}
	return classes
}

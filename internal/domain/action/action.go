// Package action describes the clickable icons and buttons of an action
// column and what each one does when triggered.
package action

import (
	"fmt"
	"strings"
)

// Behavior selects what triggering an action does. The numeric values match
// the popUpOrRoute discriminant hosts already use.
type Behavior int

const (
	Route Behavior = iota
	PopUp
	Neither
)

func (b Behavior) String() string {
	switch b {
	case Route:
		return "route"
	case PopUp:
		return "popup"
	case Neither:
		return "neither"
	default:
		return fmt.Sprintf("behavior(%d)", int(b))
	}
}

// ParseBehavior accepts the names used in table documents.
func ParseBehavior(name string) (Behavior, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "route":
		return Route, nil
	case "popup", "pop_up", "dialog":
		return PopUp, nil
	case "", "neither", "none":
		return Neither, nil
	default:
		return Neither, fmt.Errorf("unknown behavior %q", name)
	}
}

// PopUpOrRoute is the behavior variant of an action. Module is the route path
// for Route and the dialog key for PopUp.
type PopUpOrRoute struct {
	IsPopUpOrRoute Behavior `json:"isPopUpOrRoute" yaml:"isPopUpOrRoute"`
	Module         string   `json:"module" yaml:"module"`
}

// Family distinguishes icon actions from button actions.
type Family int

const (
	IconFamily Family = iota
	ButtonFamily
)

// ActivityType is how an action column presents its activity list. Values
// match the host-facing actionActivityType discriminant.
type ActivityType int

const (
	ActivityIcon ActivityType = iota
	ActivityButton
)

func (t ActivityType) String() string {
	if t == ActivityButton {
		return "button"
	}
	return "icon"
}

// ParseActivityType accepts "icon" or "button".
func ParseActivityType(name string) (ActivityType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "icon":
		return ActivityIcon, nil
	case "button":
		return ActivityButton, nil
	default:
		return ActivityIcon, fmt.Errorf("unknown activity type %q", name)
	}
}

// HoverClasses styles the tooltip shown when hovering an icon.
type HoverClasses struct {
	Wrapper   string `json:"wrapper" yaml:"wrapper"`
	Container string `json:"container" yaml:"container"`
	Caret     string `json:"caret" yaml:"caret"`
	Value     string `json:"value" yaml:"value"`
}

// IconClasses is the style bundle of an icon action.
type IconClasses struct {
	Wrapper         string       `json:"wrapper" yaml:"wrapper"`
	Icon            string       `json:"icon" yaml:"icon"`
	Path            []string     `json:"path" yaml:"path"`
	Stroke          []string     `json:"stroke" yaml:"stroke"`
	IconHover       HoverClasses `json:"iconHover" yaml:"iconHover"`
	ExpandIconHover HoverClasses `json:"expandIconHover" yaml:"expandIconHover"`
}

// Action is one activity of an action column. Icon actions carry IconType and
// IconClasses; button actions carry ButtonClass.
type Action struct {
	Family       Family       `json:"-" yaml:"-"`
	Value        int          `json:"value" yaml:"value"`
	Content      string       `json:"content" yaml:"content"`
	IconType     string       `json:"iconType,omitempty" yaml:"iconType,omitempty"`
	PopUpOrRoute PopUpOrRoute `json:"popUpOrRoute" yaml:"popUpOrRoute"`
	IconClasses  *IconClasses `json:"styleClasses,omitempty" yaml:"styleClasses,omitempty"`
	ButtonClass  string       `json:"buttonClasses,omitempty" yaml:"buttonClasses,omitempty"`
}

// IsIcon reports whether the action belongs to the icon family.
func (a *Action) IsIcon() bool {
	return a != nil && a.Family == IconFamily
}

// UpdatePopUpOrRoute sets both the behavior and its module.
func (a *Action) UpdatePopUpOrRoute(behavior Behavior, module string) {
	a.PopUpOrRoute = PopUpOrRoute{IsPopUpOrRoute: behavior, Module: module}
}

// UpdateIconType swaps the icon an icon action shows.
func (a *Action) UpdateIconType(iconType string) {
	a.IconType = iconType
}

// UpdateContent changes the label or tooltip text.
func (a *Action) UpdateContent(content string) {
	a.Content = content
}

// UpdateButtonClass replaces the class of a button action.
func (a *Action) UpdateButtonClass(class string) {
	a.ButtonClass = class
}

// UpdateIconClass sets one class of an icon action's bundle. Known
// properties are wrapper and icon.
func (a *Action) UpdateIconClass(property, class string) error {
	if a.IconClasses == nil {
		a.IconClasses = &IconClasses{}
	}
	switch property {
	case "wrapper":
		a.IconClasses.Wrapper = class
	case "icon":
		a.IconClasses.Icon = class
	default:
		return fmt.Errorf("unknown icon class property %q", property)
	}
	return nil
}

// Column is the action configuration of one column.
type Column struct {
	ActivityType ActivityType `json:"actionActivityType" yaml:"actionActivityType"`
	ActivityList []*Action    `json:"activityList" yaml:"activityList"`
}

// Package dispatch turns a triggered action into a navigation or a dialog
// opening.
package dispatch

import (
	"fmt"

	"github.com/alexisbeaulieu97/tablekit/internal/domain/action"
	"github.com/alexisbeaulieu97/tablekit/internal/logger"
	"github.com/alexisbeaulieu97/tablekit/internal/ports"
)

// Outcome records what a dispatch did.
type Outcome struct {
	Behavior action.Behavior
	Module   string
	Handled  bool
}

// Dispatcher executes actions against one table instance's dialogs.
type Dispatcher struct {
	dialogs ports.DialogRegistry
	log     *logger.Logger
}

// New returns a Dispatcher that opens popups in dialogs.
func New(dialogs ports.DialogRegistry, log *logger.Logger) *Dispatcher {
	return &Dispatcher{dialogs: dialogs, log: log}
}

// Dispatch runs a: routes call navigate with the module, popups open the
// module's dialog and anything else does nothing. Navigation errors are
// returned unchanged.
func (d *Dispatcher) Dispatch(a *action.Action, navigate ports.Navigator) (Outcome, error) {
	if a == nil {
		return Outcome{Behavior: action.Neither}, nil
	}

	target := a.PopUpOrRoute
	out := Outcome{Behavior: target.IsPopUpOrRoute, Module: target.Module}
	fields := map[string]any{
		"behavior": target.IsPopUpOrRoute.String(),
		"module":   target.Module,
		"value":    a.Value,
	}

	switch target.IsPopUpOrRoute {
	case action.Route:
		if navigate == nil {
			return out, fmt.Errorf("route %q: no navigator configured", target.Module)
		}
		if err := navigate.Navigate(target.Module); err != nil {
			d.log.WithFields(fields).Error(err, "navigation failed")
			return out, err
		}
		out.Handled = true
	case action.PopUp:
		if d.dialogs == nil {
			return out, fmt.Errorf("popup %q: no dialog registry configured", target.Module)
		}
		d.dialogs.Open(target.Module)
		out.Handled = true
	default:
		d.log.WithFields(fields).Debug("action has no behavior")
		return out, nil
	}

	d.log.WithFields(fields).Debug("action dispatched")
	return out, nil
}

// HandleClick is the entry point for a clicked activity. Icons and buttons
// dispatch the same way; unknown activity types are ignored. rowID and index
// identify the clicked row for logging.
func (d *Dispatcher) HandleClick(a *action.Action, rowID string, index int, activityType action.ActivityType, navigate ports.Navigator) (Outcome, error) {
	switch activityType {
	case action.ActivityIcon, action.ActivityButton:
	default:
		d.log.WithFields(map[string]any{"activity_type": int(activityType)}).Warn("unknown activity type")
		return Outcome{Behavior: action.Neither}, nil
	}

	d.log.WithFields(map[string]any{
		"row_id":        rowID,
		"row_index":     index,
		"activity_type": activityType.String(),
	}).Debug("activity clicked")
	return d.Dispatch(a, navigate)
}

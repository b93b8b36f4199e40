// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/retouch-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the action menu.
	ViewMenu ViewType = iota
	// ViewForm collects the parameters of an action.
	ViewForm
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewForm:
		return "form"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// Action identifies an editing action offered by the menu.
type Action int

// Actions in menu order.
const (
	ActionLoad Action = iota
	ActionFilter
	ActionResize
	ActionRotate
	ActionAdjust
	ActionCrop
	ActionSave
	ActionReset
	ActionHelp
	ActionQuit
)

// String returns the menu label of the action.
func (a Action) String() string {
	switch a {
	case ActionLoad:
		return "Load Image"
	case ActionFilter:
		return "Apply Filter"
	case ActionResize:
		return "Resize"
	case ActionRotate:
		return "Rotate"
	case ActionAdjust:
		return "Adjust Brightness and Contrast"
	case ActionCrop:
		return "Crop"
	case ActionSave:
		return "Save"
	case ActionReset:
		return "Reset All Changes"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ActionSelected is sent when a menu entry is chosen.
type ActionSelected struct {
	Action Action
}

// FormSubmitted carries the raw field values of a completed form, keyed
// by field name.
type FormSubmitted struct {
	Action Action
	Values map[string]string
}

// OperationCompleted reports the outcome of a session operation.
type OperationCompleted struct {
	Action Action

	// Summary is shown in the status bar on success.
	Summary string

	Err error
}

// SourceChanged signals the loaded file changed on disk.
type SourceChanged struct {
	Event domain.FileEvent
}

// WatchStopped signals the source watch ended.
type WatchStopped struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Package input turns raw key and pointer events into high-level intents.
package input

import (
	"sort"
	"strconv"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DevicePointer
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Directional (board slides, menu navigation)
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Focus traversal
	ActionFocusNext
	ActionFocusPrev

	ActionActivate // Activate the focused control (Enter/Space)
	ActionSelect   // Pick a specific cell or pad; Intent.Index says which

	// Meta / UI
	ActionRestart
	ActionNext
	ActionSettings
	ActionBack
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
	Index  int // Cell or pad index for ActionSelect, -1 otherwise
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "3", "pointer").
// Index carries the hit cell for pointer events.
type RawInput struct {
	Device    Device
	Code      string
	Index     int
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Every front-end already reports key presses as discrete edges, so this is
// a thin copy that keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
	Index  int
}

// CodePointer is the raw code for a pointer click on an indexed control
const CodePointer = "pointer"

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
		Index:  raw.Index,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action. Digits are handled separately.
var bindings = map[string]Action{
	// Directional (arrows, Vim)
	KeyArrowUp:    ActionMoveUp,
	"k":           ActionMoveUp,
	KeyArrowDown:  ActionMoveDown,
	"j":           ActionMoveDown,
	KeyArrowLeft:  ActionMoveLeft,
	"h":           ActionMoveLeft,
	KeyArrowRight: ActionMoveRight,
	"l":           ActionMoveRight,

	// Focus
	KeyTab:      ActionFocusNext,
	KeyShiftTab: ActionFocusPrev,

	// Activation
	KeyEnter: ActionActivate,
	KeySpace: ActionActivate,

	// Meta
	"r":          ActionRestart,
	"n":          ActionNext,
	"s":          ActionSettings,
	KeyEscape:    ActionBack,
	KeyBackspace: ActionBack,
	"b":          ActionBack,
	"q":          ActionQuit,
	KeyCtrlC:     ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if ev.Code == CodePointer {
		if ev.Index < 0 {
			return Intent{Action: ActionNone, Index: -1}
		}
		return Intent{Action: ActionSelect, Index: ev.Index}
	}
	if idx, ok := digitIndex(ev.Code); ok {
		return Intent{Action: ActionSelect, Index: idx}
	}
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act, Index: -1}
	}
	return Intent{Action: ActionNone, Index: -1}
}

// digitIndex maps "1".."9" to the zero-based indices 0..8
func digitIndex(code string) (int, bool) {
	if len(code) != 1 || code[0] < '1' || code[0] > '9' {
		return 0, false
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return 0, false
	}
	return n - 1, true
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Up"
	case ActionMoveDown:
		return "Down"
	case ActionMoveLeft:
		return "Left"
	case ActionMoveRight:
		return "Right"
	case ActionFocusNext:
		return "Next control"
	case ActionFocusPrev:
		return "Previous control"
	case ActionActivate:
		return "Activate"
	case ActionSelect:
		return "Select"
	case ActionRestart:
		return "Restart"
	case ActionNext:
		return "Continue"
	case ActionSettings:
		return "Settings"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

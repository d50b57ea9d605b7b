package menu

import (
	"fmt"
	"strings"

	engineinput "puzzleadventure/pkg/engine/input"
	"puzzleadventure/pkg/game/i18n"
)

// BindingMenuItem shows the keys bound to one action.
type BindingMenuItem struct {
	Action engineinput.Action
}

// GetLabel returns the action name and its keys.
func (b *BindingMenuItem) GetLabel() string {
	name := engineinput.ActionName(b.Action)
	codes := engineinput.GetBindingsByAction()[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = i18n.T("CONTROLS_UNBOUND")
	}
	return fmt.Sprintf("%s: %s", name, codeText)
}

// IsSelectable returns whether this binding can be selected.
func (b *BindingMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this binding.
func (b *BindingMenuItem) GetHelpText() string {
	return ""
}

// digitsMenuItem describes the 1-9 shortcuts, which are not in the
// bindings table.
type digitsMenuItem struct{}

func (digitsMenuItem) GetLabel() string {
	return fmt.Sprintf("%s: 1-9", engineinput.ActionName(engineinput.ActionSelect))
}

func (digitsMenuItem) IsSelectable() bool { return true }
func (digitsMenuItem) GetHelpText() string { return i18n.T("CONTROLS_DIGITS_HELP") }

// BindingsMenuHandler lists the key bindings. It is read-only.
type BindingsMenuHandler struct {
	items []MenuItem
}

// NewBindingsMenuHandler creates a new bindings menu handler.
func NewBindingsMenuHandler() *BindingsMenuHandler {
	actions := []engineinput.Action{
		engineinput.ActionMoveUp,
		engineinput.ActionMoveDown,
		engineinput.ActionMoveLeft,
		engineinput.ActionMoveRight,
		engineinput.ActionFocusNext,
		engineinput.ActionFocusPrev,
		engineinput.ActionActivate,
		engineinput.ActionRestart,
		engineinput.ActionNext,
		engineinput.ActionSettings,
		engineinput.ActionBack,
		engineinput.ActionQuit,
	}

	h := &BindingsMenuHandler{}
	for _, act := range actions {
		h.items = append(h.items, &BindingMenuItem{Action: act})
	}
	h.items = append(h.items, digitsMenuItem{})
	return h
}

// GetTitle returns the menu title.
func (h *BindingsMenuHandler) GetTitle() string {
	return i18n.T("CONTROLS_TITLE")
}

// GetInstructions returns the menu instructions.
func (h *BindingsMenuHandler) GetInstructions(selected MenuItem) string {
	return i18n.T("CONTROLS_INSTRUCTIONS")
}

// OnSelect is called when an item is selected.
func (h *BindingsMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate closes the list; bindings are fixed.
func (h *BindingsMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	return true, ""
}

// OnExit is called when the menu is exited.
func (h *BindingsMenuHandler) OnExit() {}

// GetMenuItems returns the menu items for the bindings menu.
func (h *BindingsMenuHandler) GetMenuItems() []MenuItem {
	return h.items
}

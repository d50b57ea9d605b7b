package menu

import (
	"puzzleadventure/pkg/game/i18n"
)

// MainMenuAction represents the action type for main menu items.
type MainMenuAction int

const (
	MainMenuActionNone MainMenuAction = iota
	MainMenuActionStart
	MainMenuActionSettings
	MainMenuActionControls
	MainMenuActionQuit
)

// MainMenuItem represents a menu item in the main menu.
type MainMenuItem struct {
	LabelKey string
	Action   MainMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *MainMenuItem) GetLabel() string {
	return i18n.T(m.LabelKey)
}

// IsSelectable returns whether this item can be selected.
func (m *MainMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *MainMenuItem) GetHelpText() string {
	return i18n.T(m.LabelKey + "_HELP")
}

// MainMenuHandler handles the title screen menu.
type MainMenuHandler struct {
	items          []MenuItem
	selectedAction MainMenuAction
}

// NewMainMenuHandler creates a new main menu handler.
func NewMainMenuHandler() *MainMenuHandler {
	return &MainMenuHandler{
		items: []MenuItem{
			&MainMenuItem{LabelKey: "MENU_START", Action: MainMenuActionStart},
			&MainMenuItem{LabelKey: "MENU_SETTINGS", Action: MainMenuActionSettings},
			&MainMenuItem{LabelKey: "MENU_CONTROLS", Action: MainMenuActionControls},
			&MainMenuItem{LabelKey: "MENU_QUIT", Action: MainMenuActionQuit},
		},
	}
}

// GetTitle returns the menu title.
func (h *MainMenuHandler) GetTitle() string {
	return i18n.T("TITLE")
}

// GetInstructions returns the menu instructions.
func (h *MainMenuHandler) GetInstructions(selected MenuItem) string {
	return i18n.T("MENU_TITLE_INSTRUCTIONS")
}

// OnSelect is called when an item is selected.
func (h *MainMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate records the chosen action and closes the menu.
func (h *MainMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	if mainItem, ok := item.(*MainMenuItem); ok {
		h.selectedAction = mainItem.Action
		return true, ""
	}
	return false, ""
}

// OnExit is called when the menu is exited.
func (h *MainMenuHandler) OnExit() {}

// GetMenuItems returns the menu items for the main menu.
func (h *MainMenuHandler) GetMenuItems() []MenuItem {
	return h.items
}

// GetSelectedAction returns the activated action, or MainMenuActionNone if
// the menu was left without choosing.
func (h *MainMenuHandler) GetSelectedAction() MainMenuAction {
	return h.selectedAction
}

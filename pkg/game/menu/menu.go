// Package menu provides a generic menu system for the game. Menus are driven
// one intent at a time by the session and keep focus trapped inside their
// own items: moving past either end wraps around.
package menu

import (
	engineinput "puzzleadventure/pkg/engine/input"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item selection and activation.
type MenuHandler interface {
	// OnSelect is called when an item is selected (navigated to).
	OnSelect(item MenuItem, index int)
	// OnActivate is called when an item is activated (e.g., Enter pressed).
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
	// OnExit is called when the menu is exited.
	OnExit()
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the menu instructions.
	GetInstructions(selected MenuItem) string
	// GetMenuItems returns the current items. It is called on every
	// intent so labels can reflect changed state.
	GetMenuItems() []MenuItem
}

// ItemView is a render-ready menu item
type ItemView struct {
	Label      string
	Help       string
	Selectable bool
	Selected   bool
}

// View is a render-ready snapshot of a menu
type View struct {
	Title        string
	Instructions string
	HelpText     string
	Items        []ItemView
	Selected     int
}

// Menu is an open menu driven by intents
type Menu struct {
	handler  MenuHandler
	selected int
	helpText string
	closed   bool
}

// New opens a menu with focus on the first selectable item
func New(handler MenuHandler) *Menu {
	m := &Menu{handler: handler}
	m.selected = firstSelectable(handler.GetMenuItems())
	return m
}

// Handler returns the menu's handler
func (m *Menu) Handler() MenuHandler {
	return m.handler
}

// Handle applies one intent and reports whether the menu closed
func (m *Menu) Handle(intent engineinput.Intent) bool {
	if m.closed {
		return true
	}
	items := m.handler.GetMenuItems()
	if m.selected >= len(items) {
		m.selected = firstSelectable(items)
	}

	switch intent.Action {
	case engineinput.ActionMoveUp, engineinput.ActionMoveLeft, engineinput.ActionFocusPrev:
		m.move(items, -1)
	case engineinput.ActionMoveDown, engineinput.ActionMoveRight, engineinput.ActionFocusNext:
		m.move(items, 1)
	case engineinput.ActionActivate:
		m.activate(items)
	case engineinput.ActionSelect:
		// Direct pick (digit key or click) focuses then activates
		if intent.Index >= 0 && intent.Index < len(items) && items[intent.Index].IsSelectable() {
			m.selected = intent.Index
			m.handler.OnSelect(items[m.selected], m.selected)
			m.activate(items)
		}
	case engineinput.ActionBack:
		m.close()
	case engineinput.ActionNone:
		// Ignore
	default:
		// Ignore other actions while in menu
	}
	return m.closed
}

// move shifts focus to the next selectable item in step direction,
// wrapping around at either end
func (m *Menu) move(items []MenuItem, step int) {
	n := len(items)
	if n == 0 {
		return
	}
	for i := 1; i <= n; i++ {
		idx := ((m.selected+step*i)%n + n) % n
		if items[idx].IsSelectable() {
			m.selected = idx
			m.helpText = "" // Clear help text when navigating
			m.handler.OnSelect(items[idx], idx)
			return
		}
	}
}

func (m *Menu) activate(items []MenuItem) {
	if m.selected < 0 || m.selected >= len(items) || !items[m.selected].IsSelectable() {
		return
	}
	shouldClose, helpText := m.handler.OnActivate(items[m.selected], m.selected)
	m.helpText = helpText
	if shouldClose {
		m.close()
	}
}

func (m *Menu) close() {
	if m.closed {
		return
	}
	m.closed = true
	m.handler.OnExit()
}

// View returns a render-ready snapshot
func (m *Menu) View() View {
	items := m.handler.GetMenuItems()
	var selectedItem MenuItem
	if m.selected >= 0 && m.selected < len(items) {
		selectedItem = items[m.selected]
	}

	v := View{
		Title:        m.handler.GetTitle(),
		Instructions: m.handler.GetInstructions(selectedItem),
		HelpText:     m.helpText,
		Items:        make([]ItemView, len(items)),
		Selected:     m.selected,
	}
	if v.HelpText == "" && selectedItem != nil {
		v.HelpText = selectedItem.GetHelpText()
	}
	for i, item := range items {
		v.Items[i] = ItemView{
			Label:      item.GetLabel(),
			Help:       item.GetHelpText(),
			Selectable: item.IsSelectable(),
			Selected:   i == m.selected,
		}
	}
	return v
}

func firstSelectable(items []MenuItem) int {
	for i, item := range items {
		if item.IsSelectable() {
			return i
		}
	}
	return 0
}

package menu

import (
	"puzzleadventure/pkg/game/i18n"
	"puzzleadventure/pkg/game/settings"
)

// SettingMenuItem is a checkbox for one boolean setting
type SettingMenuItem struct {
	Option  settings.Option
	handler *SettingsMenuHandler
}

// GetLabel returns the option name and its pending value.
func (s *SettingMenuItem) GetLabel() string {
	return i18n.T("SETTING_VALUE", i18n.T(s.Option.LabelKey()), i18n.OnOff(s.handler.draft.Get(s.Option)))
}

// IsSelectable returns whether this item can be selected.
func (s *SettingMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this option.
func (s *SettingMenuItem) GetHelpText() string {
	return i18n.T(s.Option.HelpKey())
}

// SettingsButton is one of the panel's buttons
type SettingsButton int

const (
	SettingsButtonApply SettingsButton = iota
	SettingsButtonBack
)

// ButtonMenuItem is the Apply or Back button
type ButtonMenuItem struct {
	Button SettingsButton
}

// GetLabel returns the button label.
func (b *ButtonMenuItem) GetLabel() string {
	if b.Button == SettingsButtonApply {
		return i18n.T("SETTINGS_APPLY")
	}
	return i18n.T("SETTINGS_BACK")
}

// IsSelectable returns whether this item can be selected.
func (b *ButtonMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this button.
func (b *ButtonMenuItem) GetHelpText() string {
	if b.Button == SettingsButtonApply {
		return i18n.T("SETTINGS_APPLY_HELP")
	}
	return i18n.T("SETTINGS_BACK_HELP")
}

// SettingsMenuHandler edits a draft copy of the settings. Nothing reaches
// the store until Apply is activated; Back and Escape discard the draft.
type SettingsMenuHandler struct {
	store   *settings.Store
	draft   settings.Settings
	items   []MenuItem
	applied bool
}

// NewSettingsMenuHandler creates a settings panel seeded from the store.
func NewSettingsMenuHandler(store *settings.Store) *SettingsMenuHandler {
	h := &SettingsMenuHandler{
		store: store,
		draft: store.Current(),
	}
	for _, o := range settings.Options() {
		h.items = append(h.items, &SettingMenuItem{Option: o, handler: h})
	}
	h.items = append(h.items,
		&ButtonMenuItem{Button: SettingsButtonApply},
		&ButtonMenuItem{Button: SettingsButtonBack},
	)
	return h
}

// GetTitle returns the menu title.
func (h *SettingsMenuHandler) GetTitle() string {
	return i18n.T("SETTINGS_TITLE")
}

// GetInstructions returns the menu instructions.
func (h *SettingsMenuHandler) GetInstructions(selected MenuItem) string {
	return i18n.T("SETTINGS_INSTRUCTIONS")
}

// OnSelect is called when an item is selected.
func (h *SettingsMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate toggles an option, or applies / discards the draft.
func (h *SettingsMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	switch it := item.(type) {
	case *SettingMenuItem:
		h.draft = h.draft.Toggle(it.Option)
		return false, ""
	case *ButtonMenuItem:
		if it.Button == SettingsButtonApply {
			h.store.Apply(h.draft)
			h.applied = true
		}
		return true, ""
	}
	return false, ""
}

// OnExit is called when the menu is exited.
func (h *SettingsMenuHandler) OnExit() {}

// GetMenuItems returns the checkboxes followed by Apply and Back.
func (h *SettingsMenuHandler) GetMenuItems() []MenuItem {
	return h.items
}

// Applied reports whether the panel was closed with Apply.
func (h *SettingsMenuHandler) Applied() bool {
	return h.applied
}

package i18n

import (
	"errors"
	"testing"
)

func TestT_KnownKey(t *testing.T) {
	if got := T("CAPTION_MOVED"); got != "Moved tile." {
		t.Errorf("T(CAPTION_MOVED) = %q, want %q", got, "Moved tile.")
	}
}

func TestT_FormatsArgs(t *testing.T) {
	if got := T("CAPTION_CORRECT", 2, 3); got != "Correct, 2 of 3." {
		t.Errorf("T(CAPTION_CORRECT, 2, 3) = %q, want %q", got, "Correct, 2 of 3.")
	}
}

func TestT_NoArgsLeavesVerbsAlone(t *testing.T) {
	if got := T("SETTING_VALUE"); got != "%s: %s" {
		t.Errorf("T(SETTING_VALUE) = %q, want the raw template", got)
	}
}

func TestT_StringArgs(t *testing.T) {
	if got := T("SETTING_VALUE", "Captions", OnOff(true)); got != "Captions: on" {
		t.Errorf("T(SETTING_VALUE, ...) = %q, want %q", got, "Captions: on")
	}
}

func TestT_UnknownKeyPassesThrough(t *testing.T) {
	if got := T("NOT_A_KEY"); got != "NOT_A_KEY" {
		t.Errorf("T(NOT_A_KEY) = %q, want key back", got)
	}
}

func TestLoad_UnknownLanguage(t *testing.T) {
	err := Load("xx_XX")
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("Load(xx_XX) = %v, want ErrUnknownLanguage", err)
	}
	// The previous catalog stays active.
	if got := T("MENU_QUIT"); got != "Quit" {
		t.Errorf("T(MENU_QUIT) after failed load = %q, want %q", got, "Quit")
	}
}

func TestOnOff(t *testing.T) {
	if OnOff(true) != "on" || OnOff(false) != "off" {
		t.Errorf("OnOff = %q/%q, want on/off", OnOff(true), OnOff(false))
	}
}

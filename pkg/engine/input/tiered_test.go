package input

import (
	"io"
	"strings"
	"testing"
)

func intentFor(code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: DeviceTerminal, Code: code, Index: -1}))
}

func TestMapToIntent_Bindings(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{KeyArrowUp, ActionMoveUp},
		{"k", ActionMoveUp},
		{KeyArrowDown, ActionMoveDown},
		{KeyArrowLeft, ActionMoveLeft},
		{KeyArrowRight, ActionMoveRight},
		{KeyTab, ActionFocusNext},
		{KeyShiftTab, ActionFocusPrev},
		{KeyEnter, ActionActivate},
		{KeySpace, ActionActivate},
		{"r", ActionRestart},
		{"n", ActionNext},
		{"s", ActionSettings},
		{KeyEscape, ActionBack},
		{"q", ActionQuit},
		{KeyCtrlC, ActionQuit},
		{"x", ActionNone},
		{"0", ActionNone},
	}
	for _, tt := range tests {
		if got := intentFor(tt.code).Action; got != tt.want {
			t.Errorf("MapToIntent(%q).Action = %v, want %v", tt.code, ActionName(got), ActionName(tt.want))
		}
	}
}

func TestMapToIntent_DigitsSelectZeroBasedIndex(t *testing.T) {
	for d := 1; d <= 9; d++ {
		code := string(rune('0' + d))
		got := intentFor(code)
		if got.Action != ActionSelect || got.Index != d-1 {
			t.Errorf("MapToIntent(%q) = %+v, want Select index %d", code, got, d-1)
		}
	}
}

func TestMapToIntent_Pointer(t *testing.T) {
	got := MapToIntent(NewDebouncedInput(RawInput{Device: DevicePointer, Code: CodePointer, Index: 4}))
	if got.Action != ActionSelect || got.Index != 4 {
		t.Errorf("pointer on 4 = %+v, want Select 4", got)
	}
	miss := MapToIntent(NewDebouncedInput(RawInput{Device: DevicePointer, Code: CodePointer, Index: -1}))
	if miss.Action != ActionNone {
		t.Errorf("pointer miss = %+v, want None", miss)
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionQuit]
	if len(codes) != 2 || codes[0] != KeyCtrlC || codes[1] != "q" {
		t.Errorf("Quit bindings = %v, want [ctrl_c q]", codes)
	}
}

func readAll(t *testing.T, raw string) []string {
	t.Helper()
	k := NewKeyReader(strings.NewReader(raw))
	var keys []string
	for {
		code, err := k.ReadKey()
		if err == io.EOF {
			return keys
		}
		if err != nil {
			t.Fatalf("ReadKey: %v", err)
		}
		keys = append(keys, code)
	}
}

func TestKeyReader_DecodesSequences(t *testing.T) {
	got := readAll(t, "\x1b[A\x1b[B\x1bOC\x1b[D\x1b[Z\tA1 \r\x7f\x03")
	want := []string{
		KeyArrowUp, KeyArrowDown, KeyArrowRight, KeyArrowLeft, KeyShiftTab,
		KeyTab, "a", "1", KeySpace, KeyEnter, KeyBackspace, KeyCtrlC,
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

func TestKeyReader_LoneEscapeAndUnknownSequence(t *testing.T) {
	// Unknown CSI (F5: ESC [ 1 5 ~) is swallowed; trailing lone ESC is Escape
	got := readAll(t, "\x1b[15~q\x1b")
	want := []string{"q", KeyEscape}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

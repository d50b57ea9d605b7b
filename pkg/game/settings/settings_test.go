package settings

import "testing"

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.HighContrast || d.DyslexiaFont {
		t.Errorf("Defaults() display modes = %+v, want both off", d)
	}
	if !d.AudioCues || !d.Captions {
		t.Errorf("Defaults() cues = %+v, want audio and captions on", d)
	}
}

func TestFromEnv_UsesDefaultsWhenUnset(t *testing.T) {
	got, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if got != Defaults() {
		t.Errorf("FromEnv() = %+v, want %+v", got, Defaults())
	}
}

func TestFromEnv_ReadsVariables(t *testing.T) {
	t.Setenv("PUZZLE_HIGH_CONTRAST", "true")
	t.Setenv("PUZZLE_CAPTIONS", "false")

	got, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	want := Settings{HighContrast: true, AudioCues: true}
	if got != want {
		t.Errorf("FromEnv() = %+v, want %+v", got, want)
	}
}

func TestFromEnv_BadValueReturnsDefaults(t *testing.T) {
	t.Setenv("PUZZLE_AUDIO_CUES", "loud")

	got, err := FromEnv()
	if err == nil {
		t.Fatal("FromEnv() error = nil, want parse error")
	}
	if got != Defaults() {
		t.Errorf("FromEnv() = %+v, want defaults on error", got)
	}
}

func TestToggleAndGet(t *testing.T) {
	s := Defaults()
	for _, o := range Options() {
		toggled := s.Toggle(o)
		if toggled.Get(o) == s.Get(o) {
			t.Errorf("Toggle(%v) did not flip the option", o.LabelKey())
		}
		for _, other := range Options() {
			if other != o && toggled.Get(other) != s.Get(other) {
				t.Errorf("Toggle(%v) changed %v", o.LabelKey(), other.LabelKey())
			}
		}
	}
}

func TestStore_ApplyNotifies(t *testing.T) {
	store := NewStore(Defaults())
	var seen []Settings
	store.OnApply(func(s Settings) { seen = append(seen, s) })

	next := Defaults().With(OptionHighContrast, true)
	if !store.Apply(next) {
		t.Error("Apply(changed) = false, want true")
	}
	if store.Apply(next) {
		t.Error("Apply(same) = true, want false")
	}
	if store.Current() != next {
		t.Errorf("Current() = %+v, want %+v", store.Current(), next)
	}
	if len(seen) != 2 {
		t.Errorf("listener called %d times, want 2", len(seen))
	}
}

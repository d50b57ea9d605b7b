// Package tui renders the adventure to an ANSI terminal and reads keys from it.
package tui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/gookit/color"

	"puzzleadventure/pkg/engine/input"
	"puzzleadventure/pkg/engine/terminal"
	"puzzleadventure/pkg/game/i18n"
	"puzzleadventure/pkg/game/memory"
	"puzzleadventure/pkg/game/renderer"
	"puzzleadventure/pkg/game/session"
)

// Layout constants
const (
	minWidth    = 40
	tileWidth   = 5
	clearScreen = "\x1b[H\x1b[2J"
)

// palette maps text styles to terminal colours
type palette map[renderer.TextStyle]color.Style

func normalPalette() palette {
	return palette{
		renderer.StyleTitle:       color.Style{color.FgCyan, color.OpBold},
		renderer.StyleStory:       color.Style{color.FgWhite},
		renderer.StyleSubtle:      color.Style{color.FgGray},
		renderer.StyleSelected:    color.Style{color.FgMagenta, color.OpBold},
		renderer.StyleCaption:     color.Style{color.FgYellow, color.OpBold},
		renderer.StyleTile:        color.Style{color.FgBlue},
		renderer.StyleTileMovable: color.Style{color.FgBlue, color.OpBold},
		renderer.StyleTileEmpty:   color.Style{color.FgGray},
		renderer.StyleFocus:       color.Style{color.FgBlack, color.BgCyan},
		renderer.StyleSuccess:     color.Style{color.FgGreen, color.OpBold},
	}
}

// highContrastPalette keeps every style bold white or yellow on black
func highContrastPalette() palette {
	return palette{
		renderer.StyleTitle:       color.Style{color.FgLightWhite, color.BgBlack, color.OpBold, color.OpUnderscore},
		renderer.StyleStory:       color.Style{color.FgLightWhite, color.BgBlack},
		renderer.StyleSubtle:      color.Style{color.FgLightWhite, color.BgBlack},
		renderer.StyleSelected:    color.Style{color.FgBlack, color.BgLightYellow, color.OpBold},
		renderer.StyleCaption:     color.Style{color.FgLightYellow, color.BgBlack, color.OpBold},
		renderer.StyleTile:        color.Style{color.FgLightWhite, color.BgBlack, color.OpBold},
		renderer.StyleTileMovable: color.Style{color.FgLightYellow, color.BgBlack, color.OpBold},
		renderer.StyleTileEmpty:   color.Style{color.FgLightWhite, color.BgBlack},
		renderer.StyleFocus:       color.Style{color.FgBlack, color.BgLightYellow, color.OpBold},
		renderer.StyleSuccess:     color.Style{color.FgLightYellow, color.BgBlack, color.OpBold},
	}
}

// padStyles returns the dark and lit style of a colour pad
func padStyles(c memory.Color) (dark, lit color.Style) {
	switch c {
	case memory.Red:
		return color.Style{color.FgRed, color.OpBold}, color.Style{color.FgLightWhite, color.BgRed, color.OpBold}
	case memory.Green:
		return color.Style{color.FgGreen, color.OpBold}, color.Style{color.FgBlack, color.BgGreen, color.OpBold}
	case memory.Blue:
		return color.Style{color.FgBlue, color.OpBold}, color.Style{color.FgLightWhite, color.BgBlue, color.OpBold}
	default:
		return color.Style{color.FgYellow, color.OpBold}, color.Style{color.FgBlack, color.BgYellow, color.OpBold}
	}
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	in  *os.File
	out io.Writer

	normal   palette
	contrast palette

	intents chan input.Intent
	done    chan struct{}
	restore func() error

	mu     sync.Mutex
	closed bool
	width  int
}

// New creates a terminal renderer reading keys from in and drawing to out
func New(in *os.File, out io.Writer) *TUIRenderer {
	return &TUIRenderer{
		in:       in,
		out:      out,
		normal:   normalPalette(),
		contrast: highContrastPalette(),
		intents:  make(chan input.Intent, 16),
		done:     make(chan struct{}),
		width:    terminal.DefaultWidth,
	}
}

// Init switches the terminal to raw mode and starts reading keys.
// When raw mode is unavailable keys are read line by line instead.
func (t *TUIRenderer) Init() error {
	if t.in == nil {
		return nil
	}
	if terminal.IsInteractive(t.in) {
		restore, err := input.MakeRaw(t.in)
		if err != nil {
			log.Printf("tui: raw mode unavailable, falling back to line input: %v", err)
		} else {
			t.restore = restore
		}
	}
	if f, ok := t.out.(*os.File); ok {
		t.width = terminal.GetWidth(f)
	}
	go t.readLoop(input.NewKeyReader(t.in))
	return nil
}

// readLoop turns key presses into intents until input ends
func (t *TUIRenderer) readLoop(keys *input.KeyReader) {
	defer close(t.intents)
	for {
		code, err := keys.ReadKey()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("tui: read key: %v", err)
			}
			t.send(input.Intent{Action: input.ActionQuit, Index: -1})
			return
		}
		raw := input.RawInput{Device: input.DeviceTerminal, Code: code}
		intent := input.MapToIntent(input.NewDebouncedInput(raw))
		if intent.Action == input.ActionNone {
			continue
		}
		if !t.send(intent) {
			return
		}
	}
}

func (t *TUIRenderer) send(intent input.Intent) bool {
	select {
	case t.intents <- intent:
		return true
	case <-t.done:
		return false
	}
}

// Intents delivers decoded key presses
func (t *TUIRenderer) Intents() <-chan input.Intent {
	return t.intents
}

// Close restores the terminal
func (t *TUIRenderer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	close(t.done)
	if t.restore != nil {
		if err := t.restore(); err != nil {
			return fmt.Errorf("restore terminal: %w", err)
		}
	}
	return nil
}

// RenderFrame redraws the whole screen from a snapshot
func (t *TUIRenderer) RenderFrame(snap session.Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	f := newFrame(t.paletteFor(snap), snap.Settings.DyslexiaFont, t.width)
	f.render(snap)
	// Raw mode needs explicit carriage returns
	out := strings.ReplaceAll(f.String(), "\n", "\r\n")
	if _, err := io.WriteString(t.out, clearScreen+out); err != nil {
		log.Printf("tui: write frame: %v", err)
	}
}

func (t *TUIRenderer) paletteFor(snap session.Snapshot) palette {
	if snap.Settings.HighContrast {
		return t.contrast
	}
	return t.normal
}

// Goodbye prints the farewell line after the terminal is restored
func (t *TUIRenderer) Goodbye() {
	fmt.Fprintln(t.out, i18n.T("GOODBYE"))
}

package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gookit/color"

	"puzzleadventure/pkg/game/i18n"
	"puzzleadventure/pkg/game/renderer"
	"puzzleadventure/pkg/game/session"
)

// frame builds one screenful of text
type frame struct {
	strings.Builder
	pal    palette
	spaced bool
	width  int
}

func newFrame(pal palette, spaced bool, width int) *frame {
	if width < minWidth {
		width = minWidth
	}
	return &frame{pal: pal, spaced: spaced, width: width}
}

// style colours already-prepared text
func (f *frame) style(s renderer.TextStyle, text string) string {
	if st, ok := f.pal[s]; ok {
		return st.Sprint(text)
	}
	return text
}

// text prepares display text, letter-spacing it in dyslexia mode
func (f *frame) text(s string) string {
	if !f.spaced {
		return s
	}
	return spaceLetters(s)
}

func (f *frame) println(parts ...string) {
	f.WriteString(strings.Join(parts, ""))
	f.WriteString("\n")
}

// paragraph prints wrapped text in one style
func (f *frame) paragraph(s renderer.TextStyle, text string) {
	for _, line := range wrap(f.text(text), f.width-2) {
		f.println("  ", f.style(s, line))
	}
}

func (f *frame) render(snap session.Snapshot) {
	f.println()
	f.println("  ", f.style(renderer.StyleTitle, f.text(snap.Title)))
	f.println()

	story := renderer.StyleStory
	if snap.Complete {
		story = renderer.StyleSuccess
	}

	switch {
	case snap.Menu != nil:
		f.renderMenu(snap)
	case snap.Puzzle != nil:
		f.paragraph(story, snap.Story)
		f.println()
		f.renderPuzzle(snap.Puzzle)
	case snap.Memory != nil:
		f.paragraph(story, snap.Story)
		f.println()
		f.renderMemory(snap.Memory)
	default:
		f.paragraph(story, snap.Story)
	}

	f.println()
	if snap.Caption != "" {
		f.paragraph(renderer.StyleCaption, snap.Caption)
	} else {
		f.println()
	}
	f.renderMessages(snap.Messages)
	if snap.Help != "" {
		f.paragraph(renderer.StyleSubtle, snap.Help)
	}
	if snap.Screen == session.ScreenTitle {
		f.paragraph(renderer.StyleSubtle, i18n.T("VERSION", renderer.Version, renderer.ShortCommit()))
	}
}

func (f *frame) renderMenu(snap session.Snapshot) {
	m := snap.Menu
	f.paragraph(renderer.StyleSubtle, m.Instructions)
	f.println()
	for i, item := range m.Items {
		label := fmt.Sprintf("%d. %s", i+1, f.text(item.Label))
		if item.Selected {
			f.println("  ", f.style(renderer.StyleSelected, "> "+label))
			continue
		}
		st := renderer.StyleNormal
		if !item.Selectable {
			st = renderer.StyleSubtle
		}
		f.println("    ", f.style(st, label))
	}
	if m.HelpText != "" {
		f.println()
		f.paragraph(renderer.StyleSubtle, m.HelpText)
	}
}

func (f *frame) renderPuzzle(p *session.PuzzleView) {
	for row := 0; row < p.Size; row++ {
		var cells []string
		for col := 0; col < p.Size; col++ {
			cells = append(cells, f.tile(p.Tiles[row*p.Size+col], p.Solved))
		}
		f.println("    ", strings.Join(cells, " "))
	}
}

func (f *frame) tile(tile session.TileView, solved bool) string {
	label := " "
	if !tile.Empty {
		label = fmt.Sprint(tile.Value)
	}
	cell := center(label, tileWidth)
	if tile.Focused {
		cell = "[" + center(label, tileWidth-2) + "]"
	}

	switch {
	case tile.Focused:
		return f.style(renderer.StyleFocus, cell)
	case solved:
		return f.style(renderer.StyleSuccess, cell)
	case tile.Empty:
		return f.style(renderer.StyleTileEmpty, center("·", tileWidth))
	case tile.Movable:
		return f.style(renderer.StyleTileMovable, cell)
	default:
		return f.style(renderer.StyleTile, cell)
	}
}

func (f *frame) renderMemory(m *session.MemoryView) {
	var pads []string
	for i, pad := range m.Pads {
		label := fmt.Sprintf("%d %s", i+1, f.text(pad.Label))
		if pad.Focused {
			label = "[" + label + "]"
		} else {
			label = " " + label + " "
		}
		dark, lit := padStyles(pad.Color)
		if pad.Lit {
			pads = append(pads, lit.Sprint(" "+strings.ToUpper(label)+" "))
		} else {
			pads = append(pads, dark.Sprint(" "+label+" "))
		}
	}
	f.println("  ", strings.Join(pads, "  "))
	f.println()
	f.println("  ", f.style(renderer.StyleSelected, f.text(m.PhaseLabel)), "  ", f.style(renderer.StyleSubtle, f.text(m.Progress)))
}

// renderMessages draws the recent caption log between two rules
func (f *frame) renderMessages(messages []string) {
	label := f.text(i18n.T("MESSAGES_LABEL"))
	labelLen := len([]rune(label)) + 2
	sideLen := (f.width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := f.width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	f.println()
	f.println(f.style(renderer.StyleSubtle, strings.Repeat("─", sideLen)+" "+label+" "+strings.Repeat("─", rightLen)))
	if len(messages) == 0 {
		f.println("  ", f.style(renderer.StyleSubtle, f.text(i18n.T("MESSAGES_EMPTY"))))
	} else {
		for _, msg := range messages {
			f.println("  ", f.text(msg))
		}
	}
	f.println(f.style(renderer.StyleSubtle, strings.Repeat("─", f.width)))
}

// spaceLetters puts a space between letters and widens gaps between words
func spaceLetters(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		b.WriteRune(r)
		if i == len(runes)-1 {
			break
		}
		next := runes[i+1]
		switch {
		case unicode.IsSpace(r):
			b.WriteString("  ")
		case !unicode.IsSpace(next):
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// wrap breaks text into lines of at most width runes
func wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var line strings.Builder
	lineLen := 0
	for _, word := range strings.Split(text, " ") {
		wordLen := len([]rune(word))
		if lineLen > 0 && lineLen+1+wordLen > width {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(word)
		lineLen += wordLen
	}
	if lineLen > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// center pads s with spaces to width
func center(s string, width int) string {
	n := len([]rune(color.ClearCode(s)))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

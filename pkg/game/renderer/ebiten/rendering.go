package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"puzzleadventure/pkg/game/i18n"
	"puzzleadventure/pkg/game/renderer"
	"puzzleadventure/pkg/game/session"
)

// Draw renders the latest snapshot (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	snap, ok := e.currentSnapshot()
	th := themeFor(snap.Settings.HighContrast)
	screen.Fill(th.background)
	e.hits = e.hits[:0]

	if !ok || e.sansFontSource == nil {
		// Can't draw without a snapshot or fonts
		return
	}

	dyslexia := snap.Settings.DyslexiaFont
	y := float32(margin)
	drawText(screen, snap.Title, e.titleFace(dyslexia), margin, float64(y), th.title)
	y += titleSize + 20

	switch {
	case snap.Menu != nil:
		y = e.drawMenu(screen, th, snap, y) + 20
	case snap.Puzzle != nil:
		y = e.drawStory(screen, th, snap, y)
		y = e.drawPuzzle(screen, th, snap, y)
	case snap.Memory != nil:
		y = e.drawStory(screen, th, snap, y)
		y = e.drawMemory(screen, th, snap, y)
	default:
		y = e.drawStory(screen, th, snap, y)
	}

	e.drawMessages(screen, th, snap, y)
	e.drawFooter(screen, th, snap)
}

// drawText draws str with its top-left corner at (x, y)
func drawText(screen *ebiten.Image, str string, face text.Face, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawCentered draws str centred on (cx, cy)
func drawCentered(screen *ebiten.Image, str string, face text.Face, cx, cy float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, str, face, op)
}

func (e *EbitenRenderer) drawStory(screen *ebiten.Image, th theme, snap session.Snapshot, y float32) float32 {
	face := e.bodyFace(snap.Settings.DyslexiaFont, bodySize)
	col := th.text
	if snap.Complete {
		col = th.success
	}
	width := float64(e.windowWidth - 2*margin)
	for _, line := range wrapText(snap.Story, width, func(s string) float64 { return textWidth(s, face) }) {
		drawText(screen, line, face, margin, float64(y), col)
		y += bodySize * 1.5
	}
	return y + 20
}

// boardOrigin returns the top-left corner of a centred square grid
func boardOrigin(windowWidth int, top float32, n, cell, gap int) (float32, float32) {
	size := n*cell + (n-1)*gap
	return float32(windowWidth-size) / 2, top
}

func (e *EbitenRenderer) drawPuzzle(screen *ebiten.Image, th theme, snap session.Snapshot, top float32) float32 {
	p := snap.Puzzle
	face := e.face(faceBold, tileSize/2)
	ox, oy := boardOrigin(e.windowWidth, top, p.Size, tileSize, tileGap)

	for i, tile := range p.Tiles {
		x := ox + float32((i%p.Size)*(tileSize+tileGap))
		y := oy + float32((i/p.Size)*(tileSize+tileGap))

		fill := th.tile
		switch {
		case tile.Empty:
			fill = th.tileEmpty
		case p.Solved:
			fill = th.success
		case tile.Movable:
			fill = th.tileMovable
		}
		vector.DrawFilledRect(screen, x, y, tileSize, tileSize, fill, false)
		if !tile.Empty {
			drawCentered(screen, fmt.Sprint(tile.Value), face, float64(x+tileSize/2), float64(y+tileSize/2), th.tileText)
		}
		if tile.Focused {
			vector.StrokeRect(screen, x-3, y-3, tileSize+6, tileSize+6, 4, th.focus, false)
		}
		e.hits = append(e.hits, hitbox{x: x, y: y, w: tileSize, h: tileSize, index: i})
	}
	return oy + float32(p.Size*(tileSize+tileGap)) + 12
}

func (e *EbitenRenderer) drawMemory(screen *ebiten.Image, th theme, snap session.Snapshot, top float32) float32 {
	m := snap.Memory
	dyslexia := snap.Settings.DyslexiaFont
	face := e.bodyFace(dyslexia, bodySize)
	const cols = 2
	ox, oy := boardOrigin(e.windowWidth, top, cols, padSize, padGap)

	for i, pad := range m.Pads {
		x := ox + float32((i%cols)*(padSize+padGap))
		y := oy + float32((i/cols)*(padSize+padGap))

		dark, lit := padColors(pad.Color)
		fill, label := dark, th.text
		if pad.Lit {
			fill, label = lit, color.Black
		}
		vector.DrawFilledRect(screen, x, y, padSize, padSize, fill, false)
		if pad.Lit && snap.Settings.HighContrast {
			vector.StrokeRect(screen, x, y, padSize, padSize, 6, color.White, false)
		}
		drawCentered(screen, fmt.Sprintf("%d %s", i+1, pad.Label), face, float64(x+padSize/2), float64(y+padSize/2), label)
		if pad.Focused {
			vector.StrokeRect(screen, x-3, y-3, padSize+6, padSize+6, 4, th.focus, false)
		}
		e.hits = append(e.hits, hitbox{x: x, y: y, w: padSize, h: padSize, index: i})
	}

	rows := (len(m.Pads) + cols - 1) / cols
	y := oy + float32(rows*(padSize+padGap)) + 8
	drawText(screen, m.PhaseLabel+"   "+m.Progress, face, float64(ox), float64(y), th.subtle)
	return y + bodySize*2
}

// drawMessages lists the recent captions under the content
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, th theme, snap session.Snapshot, y float32) {
	if len(snap.Messages) == 0 {
		return
	}
	face := e.bodyFace(snap.Settings.DyslexiaFont, smallSize)
	drawText(screen, i18n.T("MESSAGES_LABEL"), face, margin, float64(y), th.subtle)
	y += smallSize * 1.6
	for _, msg := range snap.Messages {
		drawText(screen, msg, face, margin+12, float64(y), th.text)
		y += smallSize * 1.4
	}
}

// drawFooter draws the live caption box and the help line along the bottom
func (e *EbitenRenderer) drawFooter(screen *ebiten.Image, th theme, snap session.Snapshot) {
	dyslexia := snap.Settings.DyslexiaFont
	small := e.bodyFace(dyslexia, smallSize)
	bottom := float32(e.windowHeight - margin)

	help := snap.Help
	if snap.Screen == session.ScreenTitle {
		help = i18n.T("VERSION", renderer.Version, renderer.ShortCommit())
	}
	if help != "" {
		drawText(screen, help, small, margin, float64(bottom-smallSize*1.5), th.subtle)
		bottom -= smallSize * 2.5
	}

	if snap.Caption == "" {
		return
	}
	face := e.bodyFace(dyslexia, bodySize)
	w := float32(e.windowWidth - 2*margin)
	h := float32(bodySize * 2.5)
	drawPanel(screen, th, snap.Settings.HighContrast, margin, bottom-h, w, h)
	drawCentered(screen, snap.Caption, face, float64(margin+w/2), float64(bottom-h/2), th.caption)
}

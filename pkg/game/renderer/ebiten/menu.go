package ebiten

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"puzzleadventure/pkg/game/session"
)

// appendRoundedRect adds a rounded rectangle to the path. (x, y) is top-left; w, h are size; r is corner radius.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	appendRoundedRectDir(p, x, y, w, h, r, vector.Clockwise)
}

// appendRoundedRectDir adds a rounded rectangle with the given winding direction.
// CounterClockwise creates a hole when combined with an outer clockwise rect.
func appendRoundedRectDir(p *vector.Path, x, y, w, h, r float32, dir vector.Direction) {
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, dir)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, dir)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, dir)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, dir)
	p.Close()
}

// drawPanel draws a rounded panel with a soft drop shadow and a border.
// High contrast panels get a thicker border and no shadow.
func drawPanel(screen *ebiten.Image, th theme, highContrast bool, x, y, w, h float32) {
	var path vector.Path
	borderWidth := float32(2)

	if highContrast {
		borderWidth = 4
	} else {
		const shadowSpread = 6
		for i := shadowSpread; i >= 1; i-- {
			path.Reset()
			appendRoundedRect(&path, x-float32(i), y-float32(i), w+float32(i*2), h+float32(i*2), cornerRadius+float32(i))
			appendRoundedRectDir(&path, x-float32(i-1), y-float32(i-1), w+float32((i-1)*2), h+float32((i-1)*2),
				cornerRadius+float32(i-1), vector.CounterClockwise)
			opts := &vector.DrawPathOptions{AntiAlias: true}
			opts.ColorScale.ScaleWithColor(color.RGBA{8, 8, 12, uint8(12 + i*7)})
			vector.FillPath(screen, &path, nil, opts)
		}
	}

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	opts := &vector.DrawPathOptions{AntiAlias: true}
	opts.ColorScale.ScaleWithColor(th.panel)
	vector.FillPath(screen, &path, nil, opts)

	opts = &vector.DrawPathOptions{AntiAlias: true}
	opts.ColorScale.ScaleWithColor(th.border)
	vector.StrokePath(screen, &path, &vector.StrokeOptions{Width: borderWidth, MiterLimit: 10}, opts)
}

// drawMenu draws the open menu as a centred panel and records a hitbox
// per item. It returns the y below the panel.
func (e *EbitenRenderer) drawMenu(screen *ebiten.Image, th theme, snap session.Snapshot, top float32) float32 {
	m := snap.Menu
	dyslexia := snap.Settings.DyslexiaFont
	body := e.bodyFace(dyslexia, bodySize)
	small := e.bodyFace(dyslexia, smallSize)

	panelW := float32(menuWidth)
	if limit := float32(e.windowWidth - 2*margin); panelW > limit {
		panelW = limit
	}
	inner := float64(panelW) - 2*24
	measureSmall := func(s string) float64 { return textWidth(s, small) }

	instructions := wrapText(m.Instructions, inner, measureSmall)
	help := wrapText(m.HelpText, inner, measureSmall)
	lineH := float32(smallSize * 1.5)
	panelH := 24 + float32(len(instructions))*lineH + 12 + float32(len(m.Items)*menuRowH) + 12 + float32(len(help))*lineH + 24

	x := (float32(e.windowWidth) - panelW) / 2
	drawPanel(screen, th, snap.Settings.HighContrast, x, top, panelW, panelH)

	y := top + 24
	for _, line := range instructions {
		drawText(screen, line, small, float64(x+24), float64(y), th.subtle)
		y += lineH
	}
	y += 12

	for i, item := range m.Items {
		rowX, rowW := x+12, panelW-24
		col := th.text
		if !item.Selectable {
			col = th.subtle
		}
		if item.Selected {
			vector.DrawFilledRect(screen, rowX, y, rowW, menuRowH-4, th.selectedBg, false)
			col = th.selected
		}
		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		drawText(screen, label, body, float64(rowX+12), float64(y)+(menuRowH-4-bodySize)/2-2, col)
		e.hits = append(e.hits, hitbox{x: rowX, y: y, w: rowW, h: menuRowH - 4, index: i})
		y += menuRowH
	}
	y += 12

	for _, line := range help {
		drawText(screen, line, small, float64(x+24), float64(y), th.subtle)
		y += lineH
	}
	return top + panelH
}

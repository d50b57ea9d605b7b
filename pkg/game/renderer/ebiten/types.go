// Package ebiten provides an Ebiten-based 2D graphical renderer for the adventure.
package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "puzzleadventure/pkg/engine/input"
	"puzzleadventure/pkg/game/session"
)

// hitbox is a clickable rectangle mapped to a control index
type hitbox struct {
	x, y, w, h float32
	index      int
}

func (h hitbox) contains(x, y float32) bool {
	return x >= h.x && x < h.x+h.w && y >= h.y && y < h.y+h.h
}

// faceKind selects one of the loaded typefaces
type faceKind int

const (
	faceSans faceKind = iota
	faceBold
	faceMono
)

type faceKey struct {
	kind faceKind
	size float64
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Font sources for text rendering
	sansFontSource *text.GoTextFaceSource // Go Regular for UI text
	boldFontSource *text.GoTextFaceSource // Go Bold for titles
	monoFontSource *text.GoTextFaceSource // Go Mono, the alternate reading face

	faces map[faceKey]*text.GoTextFace

	// Latest snapshot (set by RenderFrame from the game loop goroutine)
	snapshot      session.Snapshot
	valid         bool
	snapshotMutex sync.RWMutex

	// Clickable regions from the last Draw. Draw and Update share the
	// Ebiten goroutine so these need no lock.
	hits []hitbox

	intents   chan engineinput.Intent
	done      chan struct{}
	closeOnce sync.Once
}

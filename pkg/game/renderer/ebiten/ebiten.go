package ebiten

import (
	"bytes"
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	engineinput "puzzleadventure/pkg/engine/input"
	"puzzleadventure/pkg/game/i18n"
	"puzzleadventure/pkg/game/session"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		faces:        make(map[faceKey]*text.GoTextFace),
		intents:      make(chan engineinput.Intent, 32),
		done:         make(chan struct{}),
	}
}

// Init loads the typefaces and configures the window
func (e *EbitenRenderer) Init() error {
	var err error
	if e.sansFontSource, err = loadFace(goregular.TTF); err != nil {
		return fmt.Errorf("load regular font: %w", err)
	}
	if e.boldFontSource, err = loadFace(gobold.TTF); err != nil {
		return fmt.Errorf("load bold font: %w", err)
	}
	if e.monoFontSource, err = loadFace(gomono.TTF); err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(i18n.T("TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

func loadFace(ttf []byte) (*text.GoTextFaceSource, error) {
	return text.NewGoTextFaceSource(bytes.NewReader(ttf))
}

// Run starts the Ebiten game loop. It must be called from the main
// goroutine and returns when the window closes or Close is called.
func (e *EbitenRenderer) Run() error {
	defer close(e.intents)
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run ebiten: %w", err)
	}
	return nil
}

// RenderFrame stores the snapshot drawn by the next Draw
func (e *EbitenRenderer) RenderFrame(snap session.Snapshot) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.snapshot = snap
	e.valid = true
}

func (e *EbitenRenderer) currentSnapshot() (session.Snapshot, bool) {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.snapshot, e.valid
}

// Intents delivers keyboard and mouse intents. Closed when Run returns.
func (e *EbitenRenderer) Intents() <-chan engineinput.Intent {
	return e.intents
}

// emit queues an intent without blocking the Ebiten goroutine
func (e *EbitenRenderer) emit(intent engineinput.Intent) {
	select {
	case e.intents <- intent:
	default:
		log.Printf("ebiten: intent queue full, dropping %s", engineinput.ActionName(intent.Action))
	}
}

// Close asks the game loop to stop at the next Update
func (e *EbitenRenderer) Close() error {
	e.closeOnce.Do(func() { close(e.done) })
	return nil
}

func (e *EbitenRenderer) closing() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

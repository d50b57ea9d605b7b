// Package renderer defines the contract between the session and its
// front-ends. A renderer draws session snapshots and reports intents; it
// never touches game state directly.
package renderer

import (
	"puzzleadventure/pkg/engine/input"
	"puzzleadventure/pkg/game/session"
)

// Build information, set with -ldflags at release time
var (
	Version = "dev"
	Commit  = "unknown"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleStory
	StyleSubtle
	StyleSelected
	StyleCaption
	StyleTile
	StyleTileMovable
	StyleTileEmpty
	StyleFocus
	StyleSuccess
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init prepares the output device (raw mode, window, fonts)
	Init() error

	// RenderFrame draws a snapshot. It may be called from any goroutine.
	RenderFrame(snap session.Snapshot)

	// Intents delivers player intents. The channel is closed when the
	// renderer shuts down.
	Intents() <-chan input.Intent

	// Close releases the output device
	Close() error
}

// ShortCommit returns the first seven characters of Commit
func ShortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}

// Package ebitenaudio plays synthesized tones through Ebiten's audio
// context. Only the binary imports it, so library packages build without
// a sound stack.
package ebitenaudio

import (
	"fmt"
	"sync"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"puzzleadventure/pkg/engine/audio"
)

var _ audio.Player = (*Player)(nil)

// Player plays tones through Ebiten's audio context
type Player struct {
	ctx *ebaudio.Context

	// Players are kept alive until they finish so they are not collected mid-tone
	mu     sync.Mutex
	active []*ebaudio.Player
}

// New returns a player bound to the process-wide Ebiten audio
// context, creating the context on first use.
func New() *Player {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(audio.SampleRate)
	}
	return &Player{ctx: ctx}
}

// PlayTone synthesizes the tone and starts playing it without blocking
func (p *Player) PlayTone(t audio.Tone) error {
	pcm, err := audio.Synthesize(t, p.ctx.SampleRate())
	if err != nil {
		return err
	}

	player := p.ctx.NewPlayerFromBytes(pcm)
	player.Play()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.prune()
	p.active = append(p.active, player)
	return nil
}

// Close stops and releases every active player
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var firstErr error
	for _, player := range p.active {
		if err := player.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close audio player: %w", err)
		}
	}
	p.active = nil
	return firstErr
}

// prune drops players that have finished playing. Callers hold p.mu.
func (p *Player) prune() {
	kept := p.active[:0]
	for _, player := range p.active {
		if player.IsPlaying() {
			kept = append(kept, player)
			continue
		}
		player.Close()
	}
	p.active = kept
}

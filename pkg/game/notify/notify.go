// Package notify turns game events into audio cues and timed captions,
// honouring the player's accessibility settings.
package notify

import (
	"log"
	"time"

	"puzzleadventure/pkg/engine/audio"
	"puzzleadventure/pkg/engine/schedule"
	"puzzleadventure/pkg/game/settings"
)

// Category selects the pitch of an audio cue
type Category int

const (
	Neutral Category = iota
	Move
	Invalid
	Win
	Pattern
)

// Cue parameters shared by every category
const (
	ToneDuration    = 160 * time.Millisecond
	ToneGain        = 0.11
	CaptionDuration = 2500 * time.Millisecond
)

// String returns the category name
func (c Category) String() string {
	switch c {
	case Neutral:
		return "neutral"
	case Move:
		return "move"
	case Invalid:
		return "invalid"
	case Win:
		return "win"
	case Pattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// Frequency returns the cue pitch in Hz
func (c Category) Frequency() float64 {
	switch c {
	case Move:
		return 440
	case Invalid:
		return 220
	case Win:
		return 660
	case Pattern:
		return 550
	default:
		return 330
	}
}

// Tone returns the cue for this category
func (c Category) Tone() audio.Tone {
	return audio.Tone{
		Frequency: c.Frequency(),
		Duration:  ToneDuration,
		Gain:      ToneGain,
		Waveform:  audio.Triangle,
	}
}

// CaptionSink displays captions
type CaptionSink interface {
	ShowCaption(msg string)
	ClearCaption()
}

// Notifier plays cues and shows captions. It must be used from the goroutine
// that owns the scheduler.
type Notifier struct {
	settings settings.Source
	player   audio.Player
	captions CaptionSink
	clear    *schedule.Slot
	logger   *log.Logger
}

type discardCaptions struct{}

func (discardCaptions) ShowCaption(string) {}
func (discardCaptions) ClearCaption()      {}

// New creates a notifier. A nil player is treated as muted and a nil caption
// sink drops captions.
func New(src settings.Source, player audio.Player, captions CaptionSink, sched schedule.Scheduler) *Notifier {
	if player == nil {
		player = audio.Mute{}
	}
	if captions == nil {
		captions = discardCaptions{}
	}
	return &Notifier{
		settings: src,
		player:   player,
		captions: captions,
		clear:    schedule.NewSlot(sched),
		logger:   log.Default(),
	}
}

// SetLogger replaces the logger used for playback errors
func (n *Notifier) SetLogger(l *log.Logger) {
	if l != nil {
		n.logger = l
	}
}

// Notify plays the category's cue and shows msg as a caption, subject to the
// current settings. An empty msg plays the cue only.
func (n *Notifier) Notify(c Category, msg string) {
	current := n.settings.Current()

	if current.AudioCues {
		if err := n.player.PlayTone(c.Tone()); err != nil {
			n.logger.Printf("notify: play %v cue: %v", c, err)
		}
	}

	if !current.Captions || msg == "" {
		return
	}

	n.captions.ShowCaption(msg)
	n.clear.Schedule(CaptionDuration, n.captions.ClearCaption)
}

func (n *Notifier) captionPending() bool {
	return n.clear.Pending()
}

// Stop cancels the pending caption clear
func (n *Notifier) Stop() {
	n.clear.Stop()
}

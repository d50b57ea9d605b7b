package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"puzzleadventure/pkg/engine/audio"
	"puzzleadventure/pkg/engine/audio/ebitenaudio"
	"puzzleadventure/pkg/engine/schedule"
	"puzzleadventure/pkg/game/app"
	"puzzleadventure/pkg/game/i18n"
	"puzzleadventure/pkg/game/renderer"
	ebitenrenderer "puzzleadventure/pkg/game/renderer/ebiten"
	"puzzleadventure/pkg/game/renderer/tui"
	"puzzleadventure/pkg/game/session"
	"puzzleadventure/pkg/game/settings"
)

var (
	rendererName = flag.String("renderer", "tui", "front-end: tui or ebiten")
	audioName    = flag.String("audio", "auto", "tone output: auto, ebiten, bell or none")
	lang         = flag.String("lang", "", "catalog language (default $PUZZLE_LANG, then en_GB)")
	highContrast = flag.Bool("high-contrast", false, "start with the high contrast palette")
	dyslexiaFont = flag.Bool("dyslexia-font", false, "start with the alternate reading face")
	audioCues    = flag.Bool("audio-cues", true, "start with audio cues on")
	captions     = flag.Bool("captions", true, "start with captions on")
	seed         = flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	logPath      = flag.String("log", "", "append logs to this file (the terminal front-end logs nowhere otherwise)")
	debug        = flag.Bool("debug", false, "Enable debug logging")
	version      = flag.Bool("version", false, "Show version information")
)

// environment holds process settings that are not player options
type environment struct {
	Lang string `env:"PUZZLE_LANG" envDefault:"en_GB"`
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Player options default from PUZZLE_HIGH_CONTRAST, PUZZLE_DYSLEXIA_FONT,\n")
		fmt.Fprintf(os.Stderr, "PUZZLE_AUDIO_CUES and PUZZLE_CAPTIONS; flags override them.\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Printf("puzzleadventure %s (%s)\n", renderer.Version, renderer.ShortCommit())
		return
	}

	closeLog, err := setupLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(); err != nil {
		log.Printf("exit: %v", err)
		closeLog()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging points the standard logger at the right place for the
// chosen front-end. The terminal front-end owns stdout and stderr.
func setupLogging() (func(), error) {
	if *debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		return func() { f.Close() }, nil
	}
	if *rendererName == "tui" {
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}

func run() error {
	var envCfg environment
	if err := env.Parse(&envCfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	language := envCfg.Lang
	if *lang != "" {
		language = *lang
	}
	if err := i18n.Load(language); err != nil {
		return err
	}

	initial, err := settings.FromEnv()
	if err != nil {
		log.Printf("settings: %v", err)
	}
	store := settings.NewStore(applyFlags(initial))
	store.OnApply(func(s settings.Settings) {
		log.Printf("settings applied: %+v", s)
	})

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	if *debug {
		log.Printf("seed %d, language %s, settings %+v", rngSeed, language, store.Current())
	}

	clock := schedule.NewManual()
	player, closePlayer := newPlayer()
	defer closePlayer()

	sess, err := session.New(session.Config{
		Settings:  store,
		Scheduler: clock,
		Player:    player,
		Rand:      rand.New(rand.NewSource(rngSeed)),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *rendererName {
	case "tui":
		return runTUI(ctx, sess, clock)
	case "ebiten":
		return runEbiten(ctx, sess, clock)
	default:
		return fmt.Errorf("unknown renderer %q", *rendererName)
	}
}

// applyFlags overrides settings with the option flags given on the command line
func applyFlags(s settings.Settings) settings.Settings {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "high-contrast":
			s = s.With(settings.OptionHighContrast, *highContrast)
		case "dyslexia-font":
			s = s.With(settings.OptionDyslexiaFont, *dyslexiaFont)
		case "audio-cues":
			s = s.With(settings.OptionAudioCues, *audioCues)
		case "captions":
			s = s.With(settings.OptionCaptions, *captions)
		}
	})
	return s
}

// newPlayer picks the tone output. "auto" uses real tones with the window
// front-end and the terminal bell otherwise.
func newPlayer() (audio.Player, func()) {
	name := *audioName
	if name == "auto" {
		name = "bell"
		if *rendererName == "ebiten" {
			name = "ebiten"
		}
	}

	switch name {
	case "ebiten":
		p := ebitenaudio.New()
		return p, func() {
			if err := p.Close(); err != nil {
				log.Printf("audio: %v", err)
			}
		}
	case "bell":
		return audio.Bell{W: os.Stdout}, func() {}
	case "none":
		return audio.Mute{}, func() {}
	default:
		log.Printf("audio: unknown output %q, muting", name)
		return audio.Mute{}, func() {}
	}
}

func runTUI(ctx context.Context, sess *session.Session, clock *schedule.Manual) error {
	r := tui.New(os.Stdin, os.Stdout)
	if err := r.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}

	loop := &app.Loop{Session: sess, Clock: clock, Frontend: r}
	err := loop.Run(ctx)
	if cerr := r.Close(); cerr != nil {
		log.Printf("tui: %v", cerr)
	}
	r.Goodbye()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runEbiten keeps the window on the main goroutine and runs the session
// loop beside it
func runEbiten(ctx context.Context, sess *session.Session, clock *schedule.Manual) error {
	r := ebitenrenderer.New()
	if err := r.Init(); err != nil {
		return fmt.Errorf("init window: %w", err)
	}

	loopDone := make(chan error, 1)
	go func() {
		loop := &app.Loop{Session: sess, Clock: clock, Frontend: r}
		loopDone <- loop.Run(ctx)
		// Quitting from the game closes the window
		r.Close()
	}()

	if err := r.Run(); err != nil {
		return err
	}
	// The window is gone; the loop sees the closed intent channel
	err := <-loopDone
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

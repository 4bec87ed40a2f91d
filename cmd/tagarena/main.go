package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/chessdroid108/TagArena/audio"
	"github.com/chessdroid108/TagArena/config"
	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/engine"
	"github.com/chessdroid108/TagArena/event"
	"github.com/chessdroid108/TagArena/input"
	"github.com/chessdroid108/TagArena/level"
	"github.com/chessdroid108/TagArena/render"
	"github.com/chessdroid108/TagArena/systems"
)

// Game wires the terminal, audio and simulation together
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	tracker  *input.Tracker
	world    *engine.World
	sound    *audio.SoundManager
	log      zerolog.Logger
}

func newGame(cfg config.Config, log zerolog.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		tracker:  input.NewTracker(input.DefaultKeymap(), cfg.Players),
		log:      log,
	}

	sinks := event.Fanout{newLogSink(log)}
	if cfg.Audio.Enabled {
		g.sound = audio.NewSoundManager()
		if err := g.sound.Initialize(); err != nil {
			// The game runs fine without sound
			log.Warn().Err(err).Msg("audio init failed, continuing silent")
			g.sound = nil
		} else {
			sinks = append(sinks, g.sound)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	lv := level.ByName(cfg.Level)
	g.world = engine.NewWorld(lv, cfg.Players,
		engine.WithSink(sinks),
		engine.WithRand(rand.New(rand.NewSource(seed))),
		engine.WithRoundSeconds(float64(cfg.RoundSeconds)),
		engine.WithScoreToWin(cfg.ScoreToWin),
	)
	systems.Attach(g.world)

	log.Info().
		Str("level", lv.Name).
		Int("players", cfg.Players).
		Int64("seed", seed).
		Msg("round start")

	return g, nil
}

// newLogSink forwards notable game events into the structured log
func newLogSink(log zerolog.Logger) event.Sink {
	return event.SinkFunc(func(ev event.Event) {
		switch p := ev.Payload.(type) {
		case *event.TagPayload:
			log.Info().
				Int("tagger", p.Tagger).
				Int("tagged", p.Tagged).
				Int("score", p.NewScore).
				Int64("tick", ev.Tick).
				Msg("tag")
		case *event.GameOverPayload:
			log.Info().
				Int("winner", p.Winner).
				Bool("timeUp", p.TimeUp).
				Ints("scores", p.Scores).
				Int64("tick", ev.Tick).
				Msg("game over")
		}
	})
}

func (g *Game) run() {
	ticker := time.NewTicker(time.Second / constants.TicksPerSecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				if tev.Key() == tcell.KeyEscape || tev.Key() == tcell.KeyCtrlC {
					return
				}
				if g.world.Over {
					// Any bound key leaves the results screen
					if _, ok := input.DefaultKeymap().Lookup(tev); ok {
						return
					}
					continue
				}
				g.tracker.Press(tev, time.Now())
			case *tcell.EventResize:
				g.screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			for i := range g.world.Players {
				g.world.SetIntent(i, g.tracker.Intent(i, now))
			}
			g.world.Step(dt)
			g.renderer.Draw(g.world)
		}
	}
}

func (g *Game) cleanup() {
	if g.sound != nil {
		g.sound.Cleanup()
	}
	g.screen.Fini()
}

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	// The terminal belongs to the game, so logs go to a file
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log := zerolog.New(logFile).Level(logLevel).With().Timestamp().Logger()

	game, err := newGame(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}

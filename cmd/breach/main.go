package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/breach/audio"
	"github.com/lixenwraith/breach/config"
	"github.com/lixenwraith/breach/engine"
	"github.com/lixenwraith/breach/entity"
	"github.com/lixenwraith/breach/input"
	"github.com/lixenwraith/breach/level"
	"github.com/lixenwraith/breach/render"
	"github.com/lixenwraith/breach/world"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config (empty uses defaults)")
	levelFlag  = flag.String("level", "", "Path to YAML arena, overrides [level] path")
	debugFlag  = flag.Bool("debug", false, "Force debug logging")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "breach: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Logging.Level = "debug"
	}
	if *levelFlag != "" {
		cfg.Level.Path = *levelFlag
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	arena := level.Default()
	if cfg.Level.Path != "" {
		if arena, err = level.Load(cfg.Level.Path); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// The crash handler and the normal exit path share one finalisation
	finish := sync.OnceFunc(screen.Fini)
	defer finish()
	engine.SetCrashHandler(finish)
	defer func() {
		if r := recover(); r != nil {
			engine.HandleCrash(r)
		}
	}()

	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	termW, termH := screen.Size()
	canvas := arena.Canvas(termW, termH)
	player := entity.NewPlayer(arena.StartFor(canvas), cfg.PlayerStats())
	w := world.New(canvas, player)
	if err := arena.Populate(w); err != nil {
		return fmt.Errorf("populate %s: %w", arena.Name, err)
	}

	log.Info("starting",
		zap.String("arena", arena.Name),
		zap.Int("width", int(canvas.W)),
		zap.Int("height", int(canvas.H)),
		zap.Int("enemies", len(w.Enemies())),
	)

	q := input.NewQueue(cfg.Engine.IntentQueue)
	engine.Go(func() { input.Pump(screen, q, log.Named("input")) })

	sound, err := audio.New(cfg.Audio.Enabled, cfg.Audio.Volume)
	if err != nil {
		log.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	defer sound.Close()

	loop := engine.NewLoop(w, q, engine.Options{
		TickRate: cfg.Engine.TickRate,
		Renderer: render.New(screen),
		Cues:     sound,
		Director: arena.Director(log),
		Canvas:   arena.Canvas,
		Logger:   log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx); err != nil {
		return err
	}
	log.Info("exiting", zap.Uint64("tick", w.Tick()), zap.Int("kills", w.Kills()), zap.Stringer("mode", w.Mode()))
	return nil
}

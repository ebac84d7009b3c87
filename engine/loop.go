// Package engine drives the world at a fixed cadence.
//
// Each tick consumes at most one intent from the input queue, applies it to
// the world, runs one frame while playing, fans world events out to the cue
// player, and renders. The loop goroutine is the world's only writer.
package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/breach/geometry"
	"github.com/lixenwraith/breach/input"
	"github.com/lixenwraith/breach/world"
)

// DefaultTickRate is the frame interval used when Options.TickRate is unset
const DefaultTickRate = 8 * time.Millisecond

// Renderer draws a world snapshot between frames
type Renderer interface {
	Render(w *world.World) error
}

// CuePlayer reacts to gameplay events, typically with sound
type CuePlayer interface {
	Cue(ev world.Event)
}

// Director injects enemies over time; called once per played tick before the frame
type Director interface {
	Advance(w *world.World)
}

// CanvasFunc maps a terminal size to the playfield, e.g. keeping a fixed arena size
type CanvasFunc func(termW, termH int) geometry.Rect

// Options configures a Loop; nil collaborators are skipped.
// A nil Canvas makes the playfield follow the terminal size
type Options struct {
	TickRate time.Duration
	Renderer Renderer
	Cues     CuePlayer
	Director Director
	Canvas   CanvasFunc
	Logger   *zap.Logger
}

// Loop owns the world for the duration of Run
type Loop struct {
	world  *world.World
	queue  *input.Queue
	opts   Options
	log    *zap.Logger
	frames uint64
}

func NewLoop(w *world.World, q *input.Queue, opts Options) *Loop {
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}
	if opts.Canvas == nil {
		opts.Canvas = func(termW, termH int) geometry.Rect {
			return geometry.Canvas(float64(termW), float64(termH))
		}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		world: w,
		queue: q,
		opts:  opts,
		log:   log.Named("engine"),
	}
}

// World returns the simulated world
func (l *Loop) World() *world.World { return l.world }

// Step runs one tick without rendering. It returns false when a quit intent was consumed
func (l *Loop) Step() bool {
	if it, ok := l.queue.Poll(); ok {
		if !l.apply(it) {
			return false
		}
	}

	if l.world.Mode() == world.ModePlay {
		if l.opts.Director != nil {
			l.opts.Director.Advance(l.world)
		}
		l.world.Frame()
		l.frames++
	}

	l.dispatch()
	return true
}

// apply routes one intent to the matching world mutator
func (l *Loop) apply(it input.Intent) bool {
	w := l.world

	// Control intents are honoured in every mode
	switch it.Type {
	case input.IntentQuit:
		l.log.Info("quit requested", zap.Uint64("tick", w.Tick()))
		return false
	case input.IntentPause:
		w.Pause()
		return true
	case input.IntentResume:
		w.Resume()
		return true
	case input.IntentResize:
		canvas := l.opts.Canvas(it.Width, it.Height)
		w.Resize(canvas)
		l.log.Debug("resized",
			zap.Int("term_width", it.Width),
			zap.Int("term_height", it.Height),
			zap.Float64("canvas_width", w.Canvas().W),
			zap.Float64("canvas_height", w.Canvas().H),
		)
		return true
	}

	if w.Mode() != world.ModePlay {
		return true
	}

	switch it.Type {
	case input.IntentMove:
		w.MovePlayer(it.Delta.X, it.Delta.Y)
	case input.IntentAim:
		w.AimAt(it.Target)
	case input.IntentShoot:
		w.Shoot()
	case input.IntentAbility:
		w.ActivateAbility(it.Ability)
	}
	return true
}

// dispatch drains world events into the cue player and the debug log
func (l *Loop) dispatch() {
	for _, ev := range l.world.DrainEvents() {
		if l.opts.Cues != nil {
			l.opts.Cues.Cue(ev)
		}
		l.log.Debug("event",
			zap.Stringer("kind", ev.Kind),
			zap.String("subject", ev.Subject),
			zap.Int("amount", ev.Amount),
			zap.Uint64("tick", l.world.Tick()),
		)
		if ev.Kind == world.EventDeath {
			l.log.Info("player died", zap.Uint64("tick", l.world.Tick()), zap.Int("kills", l.world.Kills()))
		}
	}
}

// Run ticks until quit, context cancellation, or a render failure
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.opts.TickRate)
	defer ticker.Stop()

	l.log.Info("loop started", zap.Duration("tick_rate", l.opts.TickRate))
	if err := l.render(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			l.log.Info("loop cancelled", zap.Uint64("frames", l.frames))
			return nil
		case <-ticker.C:
			if !l.Step() {
				l.log.Info("loop stopped", zap.Uint64("frames", l.frames))
				return nil
			}
			if err := l.render(); err != nil {
				return err
			}
		}
	}
}

func (l *Loop) render() error {
	if l.opts.Renderer == nil {
		return nil
	}
	if err := l.opts.Renderer.Render(l.world); err != nil {
		return fmt.Errorf("render tick %d: %w", l.world.Tick(), err)
	}
	return nil
}

// Package level loads arena definitions and feeds enemies into a world.
package level

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/breach/entity"
	"github.com/lixenwraith/breach/geometry"
	"github.com/lixenwraith/breach/physics"
	"github.com/lixenwraith/breach/world"
)

//go:embed levels/training.yaml
var trainingArena []byte

var (
	ErrUnknownKind = errors.New("unknown enemy kind")
	ErrUnknownEdge = errors.New("unknown edge")
)

// Edge names accepted by waves
const (
	EdgeLeft   = "left"
	EdgeRight  = "right"
	EdgeTop    = "top"
	EdgeBottom = "bottom"
)

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Spawn places one enemy when the arena is populated
type Spawn struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Wave spawns Count enemies along Edge at Tick, then every Every ticks if non-zero
type Wave struct {
	Tick  uint64 `yaml:"tick"`
	Every uint64 `yaml:"every"`
	Kind  string `yaml:"kind"`
	Count int    `yaml:"count"`
	Edge  string `yaml:"edge"`
}

// Arena is a level definition
type Arena struct {
	Name       string  `yaml:"name"`
	Width      int     `yaml:"width"`  // 0 follows the terminal
	Height     int     `yaml:"height"` // 0 follows the terminal
	Start      *Point  `yaml:"start"`  // nil centers the player
	Spawns     []Spawn `yaml:"spawns"`
	Waves      []Wave  `yaml:"waves"`
	MaxEnemies int     `yaml:"max_enemies"` // 0 is unlimited
}

// Load reads an arena from a YAML file
func Load(path string) (*Arena, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	a, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return a, nil
}

// Default returns the built-in training arena
func Default() *Arena {
	a, err := parse(trainingArena)
	if err != nil {
		panic(fmt.Sprintf("level: embedded arena: %v", err))
	}
	return a
}

func parse(data []byte) (*Arena, error) {
	var a Arena
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

func (a *Arena) validate() error {
	if a.Width < 0 || a.Height < 0 {
		return fmt.Errorf("negative size %dx%d", a.Width, a.Height)
	}
	for i, s := range a.Spawns {
		if !knownKind(s.Kind) {
			return fmt.Errorf("spawn %d: %w: %q", i, ErrUnknownKind, s.Kind)
		}
	}
	for i, wv := range a.Waves {
		if !knownKind(wv.Kind) {
			return fmt.Errorf("wave %d: %w: %q", i, ErrUnknownKind, wv.Kind)
		}
		switch wv.Edge {
		case EdgeLeft, EdgeRight, EdgeTop, EdgeBottom:
		default:
			return fmt.Errorf("wave %d: %w: %q", i, ErrUnknownEdge, wv.Edge)
		}
		if wv.Count <= 0 {
			return fmt.Errorf("wave %d: count must be positive, got %d", i, wv.Count)
		}
	}
	return nil
}

func knownKind(kind string) bool {
	_, err := entity.NewEnemy(kind, geometry.Pos{})
	return err == nil
}

// StatusRows is the number of terminal rows below the arena kept for the status line
const StatusRows = 1

// Canvas returns the arena area, falling back to the terminal size per axis.
// A terminal-sized arena leaves the status rows out so nothing simulates off screen
func (a *Arena) Canvas(termW, termH int) geometry.Rect {
	w, h := a.Width, a.Height
	if w == 0 {
		w = termW
	}
	if h == 0 {
		h = max(termH-StatusRows, 1)
	}
	return geometry.Canvas(float64(w), float64(h))
}

// StartFor returns the player origin on canvas
func (a *Arena) StartFor(canvas geometry.Rect) geometry.Pos {
	if a.Start == nil {
		return entity.CenteredStart(canvas)
	}
	return physics.Clamp(canvas, geometry.Pos{X: a.Start.X, Y: a.Start.Y}, entity.PlayerWidth, entity.PlayerHeight)
}

// Populate spawns the arena's initial enemies into w
func (a *Arena) Populate(w *world.World) error {
	for i, s := range a.Spawns {
		e, err := entity.NewEnemy(s.Kind, geometry.Pos{X: s.X, Y: s.Y})
		if err != nil {
			return fmt.Errorf("spawn %d: %w", i, err)
		}
		w.SpawnEnemy(e)
	}
	return nil
}

package input

import (
	"github.com/lixenwraith/breach/entity"
	"github.com/lixenwraith/breach/geometry"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Player intents
	IntentMove    // Delta
	IntentAim     // Target
	IntentShoot   // Fire along current aim
	IntentAbility // Ability

	// Game intents
	IntentPause
	IntentResume
	IntentResize // Width, Height
	IntentQuit
)

func (t IntentType) String() string {
	switch t {
	case IntentMove:
		return "move"
	case IntentAim:
		return "aim"
	case IntentShoot:
		return "shoot"
	case IntentAbility:
		return "ability"
	case IntentPause:
		return "pause"
	case IntentResume:
		return "resume"
	case IntentResize:
		return "resize"
	case IntentQuit:
		return "quit"
	default:
		return "none"
	}
}

// Intent is a discrete instruction for the simulation, consumed at most one per tick
type Intent struct {
	Type    IntentType
	Delta   geometry.Pos   // IntentMove
	Target  geometry.Pos   // IntentAim
	Ability entity.Ability // IntentAbility
	Width   int            // IntentResize
	Height  int            // IntentResize
}

func Move(dx, dy float64) Intent {
	return Intent{Type: IntentMove, Delta: geometry.Pos{X: dx, Y: dy}}
}

func Aim(target geometry.Pos) Intent {
	return Intent{Type: IntentAim, Target: target}
}

func Shoot() Intent { return Intent{Type: IntentShoot} }

func UseAbility(a entity.Ability) Intent {
	return Intent{Type: IntentAbility, Ability: a}
}

func Pause() Intent  { return Intent{Type: IntentPause} }
func Resume() Intent { return Intent{Type: IntentResume} }
func Quit() Intent   { return Intent{Type: IntentQuit} }

func Resize(width, height int) Intent {
	return Intent{Type: IntentResize, Width: width, Height: height}
}

package input

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/breach/entity"
	"github.com/lixenwraith/breach/geometry"
)

// Movement steps per key press; columns are half as tall as rows are wide
const (
	stepX = 2.0
	stepY = 1.0
)

// runeTable maps plain keys to intents
var runeTable = map[rune]Intent{
	'w': Move(0, -stepY),
	'a': Move(-stepX, 0),
	's': Move(0, stepY),
	'd': Move(stepX, 0),
	' ': Shoot(),
	'e': UseAbility(entity.AbilityBlink),
	'p': Pause(),
	'r': Resume(),
	'q': Quit(),
}

// keyTable maps special keys to intents
var keyTable = map[tcell.Key]Intent{
	tcell.KeyUp:     Move(0, -stepY),
	tcell.KeyLeft:   Move(-stepX, 0),
	tcell.KeyDown:   Move(0, stepY),
	tcell.KeyRight:  Move(stepX, 0),
	tcell.KeyEscape: Quit(),
	tcell.KeyCtrlC:  Quit(),
}

// Translator maps terminal events to intents.
// It tracks mouse button state so a held button fires once
type Translator struct {
	buttons tcell.ButtonMask
}

func NewTranslator() *Translator {
	return &Translator{}
}

// Translate returns the intents produced by ev, possibly none
func (t *Translator) Translate(ev tcell.Event) []Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			if it, ok := runeTable[ev.Rune()]; ok {
				return []Intent{it}
			}
			return nil
		}
		if it, ok := keyTable[ev.Key()]; ok {
			return []Intent{it}
		}
		return nil

	case *tcell.EventResize:
		w, h := ev.Size()
		return []Intent{Resize(w, h)}

	case *tcell.EventFocus:
		if !ev.Focused {
			return []Intent{Pause()}
		}
		return nil

	case *tcell.EventMouse:
		x, y := ev.Position()
		target := geometry.Pos{X: float64(x), Y: float64(y)}
		pressed := ev.Buttons()&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0
		t.buttons = ev.Buttons()
		if pressed {
			return []Intent{Aim(target), Shoot()}
		}
		return []Intent{Aim(target)}
	}
	return nil
}

// EventSource yields terminal events; a nil event means the source is closed
type EventSource interface {
	PollEvent() tcell.Event
}

// Pump translates events from src into q until src is closed.
// A full queue stalls the pump until the tick loop catches up; nothing is dropped
func Pump(src EventSource, q *Queue, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	tr := NewTranslator()
	for {
		ev := src.PollEvent()
		if ev == nil {
			log.Debug("input source closed")
			return
		}
		for _, it := range tr.Translate(ev) {
			if !q.Offer(it) {
				log.Debug("queue full, waiting", zap.Stringer("intent", it.Type), zap.Int("cap", q.Cap()))
				q.Put(it)
			}
		}
	}
}

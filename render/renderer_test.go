package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breach/entity"
	"github.com/lixenwraith/breach/geometry"
	"github.com/lixenwraith/breach/world"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

// newCenteredWorld places the player hitbox center on cell (40,12)
func newCenteredWorld() *world.World {
	canvas := geometry.Canvas(80, 24)
	p := entity.NewPlayer(entity.CenteredStart(canvas), entity.DefaultPlayerStats())
	return world.New(canvas, p)
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func fgAt(screen tcell.Screen, x, y int) (int32, int32, int32) {
	_, _, style, _ := screen.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return fg.RGB()
}

func readRow(screen tcell.Screen, y, from, n int) string {
	out := make([]rune, 0, n)
	for x := from; x < from+n; x++ {
		out = append(out, runeAt(screen, x, y))
	}
	return string(out)
}

func TestRenderPlayerAndCrosshair(t *testing.T) {
	screen := newSimScreen(t)
	w := newCenteredWorld()

	if err := New(screen).Render(w); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if got := readRow(screen, 11, 39, 3); got != "╭━╮" {
		t.Errorf("Expected player top at row 11, got %q", got)
	}
	if got := readRow(screen, 12, 39, 3); got != "╰━╯" {
		t.Errorf("Expected player bottom at row 12, got %q", got)
	}
	// Aim 0 points right: crosshair 10 columns from center
	if got := runeAt(screen, 50, 12); got != '⌖' {
		t.Errorf("Expected crosshair at (50,12), got %q", got)
	}
}

func TestRenderStatusLine(t *testing.T) {
	screen := newSimScreen(t)
	w := newCenteredWorld()
	w.Log("hello")

	if err := New(screen).Render(w); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := " HP 100/100  kills 0  | hello"
	if got := readRow(screen, 23, 0, len([]rune(want))); got != want {
		t.Errorf("Expected status %q, got %q", want, got)
	}
}

func TestRenderDimsOutsideFOV(t *testing.T) {
	screen := newSimScreen(t)
	w := newCenteredWorld()
	near, _ := entity.NewEnemy(entity.KindGoblin, geometry.Pos{X: 44, Y: 12})
	far, _ := entity.NewEnemy(entity.KindGoblin, geometry.Pos{X: 1, Y: 1})
	w.SpawnEnemy(near)
	w.SpawnEnemy(far)

	if err := New(screen).Render(w); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if r, g, b := fgAt(screen, 44, 12); r != 133 || g != 200 || b != 0 {
		t.Errorf("Expected near goblin at full color, got (%d,%d,%d)", r, g, b)
	}
	dim := entity.RGBGreen.Scale(dimFactor)
	if r, g, b := fgAt(screen, 1, 1); r != int32(dim.R) || g != int32(dim.G) || b != int32(dim.B) {
		t.Errorf("Expected far goblin dimmed to %v, got (%d,%d,%d)", dim, r, g, b)
	}
}

func TestRenderBanners(t *testing.T) {
	screen := newSimScreen(t)
	w := newCenteredWorld()
	r := New(screen)

	w.Pause()
	if err := r.Render(w); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := readRow(screen, 11, 37, 6); got != "PAUSED" {
		t.Errorf("Expected PAUSED banner, got %q", got)
	}

	w.Resume()
	if err := r.Render(w); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := readRow(screen, 11, 37, 6); got == "PAUSED" {
		t.Error("Expected banner cleared after resume")
	}
}

func TestPainterClips(t *testing.T) {
	screen := newSimScreen(t)
	p := &screenPainter{screen: screen, width: 80, height: 23, fade: 1}

	// Partially visible text keeps its on-screen runes
	p.Put(-1, 0, "abc", entity.RGBWhite)
	if got := readRow(screen, 0, 0, 2); got != "bc" {
		t.Errorf("Expected clipped prefix, got %q", got)
	}
	p.Put(78, 1, "xyz", entity.RGBWhite)
	if got := readRow(screen, 1, 78, 2); got != "xy" {
		t.Errorf("Expected clipped suffix, got %q", got)
	}

	// Rows outside the drawable area are ignored
	p.Put(0, 23, "s", entity.RGBWhite)
	if got := runeAt(screen, 0, 23); got == 's' {
		t.Error("Expected status row untouched by arena painter")
	}
}

package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestRectCenter(t *testing.T) {
	r := NewRect(Pos{X: 10, Y: 4}, 3, 3)
	c := r.Center()
	if !near(c.X, 11.5) || !near(c.Y, 5.5) {
		t.Errorf("Expected center (11.5, 5.5), got (%v, %v)", c.X, c.Y)
	}
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := Canvas(80, 24)

	cases := []struct {
		p    Pos
		want bool
	}{
		{Pos{0, 0}, true},
		{Pos{79.9, 23.9}, true},
		{Pos{80, 10}, false},
		{Pos{10, 24}, false},
		{Pos{-0.1, 5}, false},
		// y is checked against the height, not the width
		{Pos{5, 30}, false},
		{Nowhere, false},
	}

	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v): expected %v, got %v", tc.p, tc.want, got)
		}
	}
}

func TestAngle(t *testing.T) {
	origin := Pos{X: 40, Y: 12}

	if a := origin.Angle(Pos{X: 50, Y: 12}); !near(a, 0) {
		t.Errorf("Expected angle 0 towards +x, got %v", a)
	}
	if a := origin.Angle(Pos{X: 40, Y: 20}); !near(a, math.Pi/2) {
		t.Errorf("Expected angle pi/2 towards +y, got %v", a)
	}
	if a := origin.Angle(Pos{X: 30, Y: 12}); !near(math.Abs(a), math.Pi) {
		t.Errorf("Expected angle pi towards -x, got %v", a)
	}
}

func TestStepIsAnisotropic(t *testing.T) {
	p := Pos{X: 0, Y: 0}.Step(math.Pi/4, 0.2, 0.1)
	want := Pos{X: math.Cos(math.Pi/4) * 0.2, Y: math.Sin(math.Pi/4) * 0.1}
	if !near(p.X, want.X) || !near(p.Y, want.Y) {
		t.Errorf("Expected %v, got %v", want, p)
	}
}

func TestTranslateAndDist(t *testing.T) {
	p := Pos{X: 1, Y: 2}.Translate(Pos{X: 3, Y: 4})
	if p != (Pos{X: 4, Y: 6}) {
		t.Errorf("Expected (4, 6), got %v", p)
	}
	if d := (Pos{}).Dist(Pos{X: 3, Y: 4}); !near(d, 5) {
		t.Errorf("Expected distance 5, got %v", d)
	}
	if s := p.Sub(Pos{X: 1, Y: 1}); s != (Pos{X: 3, Y: 5}) {
		t.Errorf("Expected (3, 5), got %v", s)
	}
}

func TestCellFloors(t *testing.T) {
	x, y := Pos{X: 3.9, Y: -0.5}.Cell()
	if x != 3 || y != -1 {
		t.Errorf("Expected (3, -1), got (%d, %d)", x, y)
	}
}

func TestNowhereIsNotFinite(t *testing.T) {
	if Nowhere.Finite() {
		t.Error("Expected Nowhere to be non-finite")
	}
	if !(Pos{X: 1, Y: 1}).Finite() {
		t.Error("Expected (1, 1) to be finite")
	}
}

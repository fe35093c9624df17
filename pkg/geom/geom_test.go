package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestWrapAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
	}
	for _, c := range cases {
		if got := WrapAngle(c.in); math.Abs(got-c.want) > eps {
			t.Errorf("WrapAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRotateToStopsAtTarget(t *testing.T) {
	a := RotateTo(0, 0.05, 0.1)
	if a != 0.05 {
		t.Fatalf("expected to snap to target, got %v", a)
	}
	a = RotateTo(math.Pi-0.05, -math.Pi+0.05, 0.02)
	if math.Abs(a-(math.Pi-0.03)) > eps {
		t.Fatalf("expected rotation across the wrap point, got %v", a)
	}
}

func TestArcContains(t *testing.T) {
	arc := Arc{
		Center:    V(100, 100),
		Facing:    math.Pi / 2, // facing down the screen
		HalfAngle: DegToRad(45),
		Radius:    40,
		Thickness: 8,
	}
	if !arc.Contains(V(100, 150)) {
		t.Errorf("point straight ahead inside reach should be contained")
	}
	if arc.Contains(V(100, 50)) {
		t.Errorf("point behind the shield must not be contained")
	}
	if arc.Contains(V(100, 100+arc.Reach()+1)) {
		t.Errorf("point beyond reach must not be contained")
	}
	// 44 degrees off facing is still inside a 90 degree arc.
	p := arc.Center.Add(FromAngle(math.Pi/2 + DegToRad(44)).Scale(30))
	if !arc.Contains(p) {
		t.Errorf("point at 44 degrees should be contained")
	}
	p = arc.Center.Add(FromAngle(math.Pi/2 + DegToRad(46)).Scale(30))
	if arc.Contains(p) {
		t.Errorf("point at 46 degrees should not be contained")
	}
}

func TestArcContainsAcrossWrap(t *testing.T) {
	arc := Arc{Center: V(0, 0), Facing: math.Pi, HalfAngle: DegToRad(30), Radius: 10}
	if !arc.Contains(V(-5, 1)) || !arc.Contains(V(-5, -1)) {
		t.Fatalf("arc facing pi should contain points on both sides of the wrap")
	}
}

func TestRayCircleHitNearest(t *testing.T) {
	origin := V(0, 0)
	dir := V(0, -1)
	d, ok := RayCircleHit(origin, dir, V(0, -100), 10, 500)
	if !ok || math.Abs(d-90) > eps {
		t.Fatalf("expected hit at 90, got %v %v", d, ok)
	}
	if _, ok := RayCircleHit(origin, dir, V(0, 100), 10, 500); ok {
		t.Fatalf("circle behind the origin must be missed")
	}
	if _, ok := RayCircleHit(origin, dir, V(30, -100), 10, 500); ok {
		t.Fatalf("circle off the ray must be missed")
	}
	if _, ok := RayCircleHit(origin, dir, V(0, -700), 10, 500); ok {
		t.Fatalf("circle beyond max length must be missed")
	}
}

func TestDistanceToRectEdge(t *testing.T) {
	d := DistanceToRectEdge(V(400, 500), V(0, -1), 800, 600, 1000)
	if math.Abs(d-500) > eps {
		t.Fatalf("expected 500, got %v", d)
	}
	d = DistanceToRectEdge(V(400, 500), V(0, -1), 800, 600, 300)
	if d != 300 {
		t.Fatalf("expected cap at 300, got %v", d)
	}
	dir := FromAngle(-math.Pi / 4)
	d = DistanceToRectEdge(V(700, 500), dir, 800, 600, 1000)
	if math.Abs(d-100*math.Sqrt2) > 1e-6 {
		t.Fatalf("expected right edge exit, got %v", d)
	}
}

package geo

import (
	"testing"

	"github.com/robosketch/engine/pkg/core"
)

func TestSmooth_ZeroFactorIsIdentity(t *testing.T) {
	points := []core.RawPoint{{X: 0, Y: 0}, {X: 5, Y: 3}, {X: 10, Y: 0}}

	out := Smooth(points, 0)

	if len(out) != len(points) {
		t.Fatalf("expected %d points, got %d", len(points), len(out))
	}
	for i := range points {
		if out[i] != points[i] {
			t.Errorf("point %d changed: expected %+v, got %+v", i, points[i], out[i])
		}
	}
}

func TestSmooth_FewerThanThreePointsIsIdentity(t *testing.T) {
	points := []core.RawPoint{{X: 1, Y: 2}, {X: 3, Y: 4}}

	out := Smooth(points, 0.8)

	for i := range points {
		if out[i] != points[i] {
			t.Errorf("point %d changed: expected %+v, got %+v", i, points[i], out[i])
		}
	}
}

func TestSmooth_EndpointsPassThrough(t *testing.T) {
	points := []core.RawPoint{{X: 0, Y: 0}, {X: 5, Y: 10}, {X: 10, Y: 0}}

	out := Smooth(points, 0.5)

	if out[0] != points[0] {
		t.Errorf("first point changed: %+v", out[0])
	}
	if out[2] != points[2] {
		t.Errorf("last point changed: %+v", out[2])
	}
}

func TestSmooth_FullFactorMovesToMidpoint(t *testing.T) {
	points := []core.RawPoint{{X: 0, Y: 0}, {X: 5, Y: 10}, {X: 10, Y: 0}}

	out := Smooth(points, 1)

	if out[1].X != 5 || out[1].Y != 0 {
		t.Errorf("expected interior point at neighbor midpoint (5,0), got (%f,%f)",
			out[1].X, out[1].Y)
	}
}

func TestSmooth_HalfFactorBlends(t *testing.T) {
	points := []core.RawPoint{{X: 0, Y: 0}, {X: 5, Y: 10}, {X: 10, Y: 0}}

	out := Smooth(points, 0.5)

	// curr*(1-f) + mid*f = (5,10)*0.5 + (5,0)*0.5 = (5,5)
	if out[1].X != 5 || out[1].Y != 5 {
		t.Errorf("expected (5,5), got (%f,%f)", out[1].X, out[1].Y)
	}
}

func TestSmooth_DoesNotMutateInput(t *testing.T) {
	points := []core.RawPoint{{X: 0, Y: 0}, {X: 5, Y: 10}, {X: 10, Y: 0}}

	Smooth(points, 1)

	if points[1].Y != 10 {
		t.Errorf("input mutated: %+v", points[1])
	}
}

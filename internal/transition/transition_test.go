package transition

import (
	"testing"

	"github.com/robosketch/engine/pkg/core"
)

func twoPaths() (*core.Path, *core.Path) {
	from := &core.Path{
		ProcessedPoints: []core.ProcessedPoint{{X: 0, Y: 0}, {X: 10, Y: 10}},
	}
	to := &core.Path{
		ProcessedPoints: []core.ProcessedPoint{{X: 20, Y: 20}, {X: 30, Y: 30}},
	}
	return from, to
}

func TestDefault_Structure(t *testing.T) {
	tr := Default(core.PlaneXY, 5, 200)

	if len(tr.Points) != 3 {
		t.Fatalf("expected 3 mandatory slots, got %d", len(tr.Points))
	}
	if tr.Exit().OffsetZ != 5 || tr.Entry().OffsetZ != 5 {
		t.Errorf("expected clearance 5 on perpendicular axis, got exit %+v entry %+v",
			tr.Exit(), tr.Entry())
	}
	start := tr.Start()
	if start.OffsetX != 0 || start.OffsetY != 0 || start.OffsetZ != 0 {
		t.Errorf("start offset must be zero, got %+v", start)
	}
	for i, p := range tr.Points {
		if p.Velocity != 200 {
			t.Errorf("point %d: expected velocity 200, got %f", i, p.Velocity)
		}
	}
}

func TestResolve_DefaultAnchors(t *testing.T) {
	from, to := twoPaths()
	tr := Default(core.PlaneXY, 5, 200)

	out := Resolve(tr, from, to, core.PlaneXY)

	if len(out) != 3 {
		t.Fatalf("expected 3 resolved points, got %d", len(out))
	}
	// Exit: last point of from, lifted by the clearance.
	if out[0].X != 10 || out[0].Y != 10 || out[0].Z != 5 {
		t.Errorf("exit: expected (10,10,5), got (%f,%f,%f)", out[0].X, out[0].Y, out[0].Z)
	}
	// Entry: first point of to, lifted by the clearance.
	if out[1].X != 20 || out[1].Y != 20 || out[1].Z != 5 {
		t.Errorf("entry: expected (20,20,5), got (%f,%f,%f)", out[1].X, out[1].Y, out[1].Z)
	}
	// Start: first point of to exactly.
	if out[2].X != 20 || out[2].Y != 20 || out[2].Z != 0 {
		t.Errorf("start: expected (20,20,0), got (%f,%f,%f)", out[2].X, out[2].Y, out[2].Z)
	}
}

func TestResolve_PlanePermutation(t *testing.T) {
	from, to := twoPaths()

	// On the XZ plane the perpendicular clearance rides the OffsetY slot.
	tr := Default(core.PlaneXZ, 7, 200)
	if tr.Exit().OffsetY != 7 {
		t.Fatalf("expected clearance on OffsetY for XZ plane, got %+v", tr.Exit())
	}

	out := Resolve(tr, from, to, core.PlaneXZ)
	if out[0].Z != 7 {
		t.Errorf("expected perpendicular depth 7, got %f", out[0].Z)
	}
}

func TestResolve_EmptyPaths(t *testing.T) {
	from, to := twoPaths()
	from.ProcessedPoints = nil
	tr := Default(core.PlaneXY, 5, 200)

	if out := Resolve(tr, from, to, core.PlaneXY); out != nil {
		t.Errorf("expected nil for a path without processed points, got %d", len(out))
	}
}

func TestInsertIntermediate(t *testing.T) {
	tr := Default(core.PlaneXY, 5, 200)

	err := InsertIntermediate(tr, 1, core.TransitionPoint{OffsetX: 3, Velocity: 150})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tr.Points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(tr.Points))
	}
	if tr.Points[1].OffsetX != 3 {
		t.Errorf("intermediate not at index 1: %+v", tr.Points)
	}
	// Mandatory slots still in place.
	if tr.Entry().OffsetZ != 5 || tr.Start().OffsetZ != 0 {
		t.Errorf("mandatory slots displaced: %+v", tr.Points)
	}
}

func TestInsertIntermediate_BadIndex(t *testing.T) {
	tr := Default(core.PlaneXY, 5, 200)

	if err := InsertIntermediate(tr, 0, core.TransitionPoint{}); err != ErrBadIndex {
		t.Errorf("expected ErrBadIndex before exit, got %v", err)
	}
	if err := InsertIntermediate(tr, 2, core.TransitionPoint{}); err != ErrBadIndex {
		t.Errorf("expected ErrBadIndex after entry, got %v", err)
	}
}

func TestRemoveIntermediate_MandatorySlotsProtected(t *testing.T) {
	tr := Default(core.PlaneXY, 5, 200)

	for _, idx := range []int{0, 1, 2} {
		if err := RemoveIntermediate(tr, idx); err != ErrMandatorySlot {
			t.Errorf("index %d: expected ErrMandatorySlot, got %v", idx, err)
		}
	}
	if len(tr.Points) != 3 {
		t.Errorf("mandatory slots removed: %d points left", len(tr.Points))
	}
}

func TestRemoveIntermediate(t *testing.T) {
	tr := Default(core.PlaneXY, 5, 200)
	if err := InsertIntermediate(tr, 1, core.TransitionPoint{OffsetX: 3}); err != nil {
		t.Fatal(err)
	}

	if err := RemoveIntermediate(tr, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tr.Points) != 3 {
		t.Errorf("expected 3 points after removal, got %d", len(tr.Points))
	}
}

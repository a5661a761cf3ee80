package parser

import (
	"errors"
	"testing"
)

func TestParseStroke_CoordinateArrays(t *testing.T) {
	points, err := ParseStroke([]byte(`[[0,0,100],[10,5,150],[20,0,200]]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[1].X != 10 || points[1].Y != 5 || points[1].Timestamp != 150 {
		t.Errorf("unexpected point: %+v", points[1])
	}
}

func TestParseStroke_ArraysWithoutTimestamp(t *testing.T) {
	points, err := ParseStroke([]byte(`[[0,0],[10,5]]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if points[1].Timestamp != 0 {
		t.Errorf("expected zero timestamp, got %d", points[1].Timestamp)
	}
}

func TestParseStroke_Objects(t *testing.T) {
	input := `[{"x":1.5,"y":2.5,"timestamp":42},{"x":3,"y":4}]`

	points, err := ParseStroke([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if points[0].X != 1.5 || points[0].Y != 2.5 || points[0].Timestamp != 42 {
		t.Errorf("unexpected point: %+v", points[0])
	}
}

func TestParseStroke_TooFewPoints(t *testing.T) {
	if _, err := ParseStroke([]byte(`[[1,2]]`)); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("expected ErrTooFewPoints, got %v", err)
	}
}

func TestParseStroke_ShortCoordinate(t *testing.T) {
	if _, err := ParseStroke([]byte(`[[1,2],[3]]`)); !errors.Is(err, ErrBadCoordinate) {
		t.Errorf("expected ErrBadCoordinate, got %v", err)
	}
}

func TestParseStroke_InvalidJSON(t *testing.T) {
	if _, err := ParseStroke([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestToLineString(t *testing.T) {
	points, err := ParseStroke([]byte(`[[0,0],[10,0],[10,10]]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ls, err := ToLineString(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq := ls.Coordinates()
	if seq.Length() != 3 {
		t.Errorf("expected 3 coordinates, got %d", seq.Length())
	}
}

func TestToLineString_Length(t *testing.T) {
	// 3-4-5 triangle legs: arc length is exact.
	points, err := ParseStroke([]byte(`[[0,0],[3,0],[3,4]]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ls, err := ToLineString(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ls.Length(); got != 7 {
		t.Errorf("expected stroke length 7, got %f", got)
	}
}

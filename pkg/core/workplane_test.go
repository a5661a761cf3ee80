package core

import "testing"

func TestParseWorkPlane(t *testing.T) {
	cases := []struct {
		in   string
		want WorkPlane
		ok   bool
	}{
		{"XY", PlaneXY, true},
		{"yz", PlaneYZ, true},
		{" xz ", PlaneXZ, true},
		{"ZZ", PlaneXY, false},
	}
	for _, c := range cases {
		got, err := ParseWorkPlane(c.in)
		if c.ok && err != nil {
			t.Errorf("ParseWorkPlane(%q): unexpected error: %v", c.in, err)
			continue
		}
		if !c.ok {
			if err == nil {
				t.Errorf("ParseWorkPlane(%q): expected error", c.in)
			}
			continue
		}
		if got != c.want {
			t.Errorf("ParseWorkPlane(%q): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestWorkPlane_OffsetRoundTrip(t *testing.T) {
	// For every plane, the perpendicular clearance built by
	// PerpendicularOffset must come back as the perp component of
	// SplitOffsets.
	for _, plane := range []WorkPlane{PlaneXY, PlaneYZ, PlaneXZ} {
		offset := plane.PerpendicularOffset(7, 200)
		h, v, perp := plane.SplitOffsets(offset)
		if h != 0 || v != 0 {
			t.Errorf("%v: expected in-plane components zero, got %f/%f", plane, h, v)
		}
		if perp != 7 {
			t.Errorf("%v: expected perpendicular 7, got %f", plane, perp)
		}
	}
}

func TestWorkPlane_ToWorld(t *testing.T) {
	cases := []struct {
		plane   WorkPlane
		x, y, z float64
	}{
		{PlaneXY, 1, 2, 3},
		{PlaneYZ, 3, 1, 2},
		{PlaneXZ, 1, 3, 2},
	}
	for _, c := range cases {
		x, y, z := c.plane.ToWorld(1, 2, 3)
		if x != c.x || y != c.y || z != c.z {
			t.Errorf("%v.ToWorld(1,2,3): expected (%g,%g,%g), got (%g,%g,%g)",
				c.plane, c.x, c.y, c.z, x, y, z)
		}
	}
}

func TestWorkPlane_String(t *testing.T) {
	if PlaneYZ.String() != "YZ" {
		t.Errorf("expected YZ, got %s", PlaneYZ.String())
	}
}

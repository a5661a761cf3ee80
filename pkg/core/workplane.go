package core

import (
	"fmt"
	"strings"
)

// WorkPlane selects which two world axes the 2D canvas spans. The remaining
// axis is the perpendicular, used for clearance and approach offsets.
type WorkPlane int

const (
	PlaneXY WorkPlane = iota
	PlaneYZ
	PlaneXZ
)

// String returns the plane name ("XY", "YZ" or "XZ").
func (p WorkPlane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneYZ:
		return "YZ"
	case PlaneXZ:
		return "XZ"
	default:
		return fmt.Sprintf("WorkPlane(%d)", int(p))
	}
}

// ParseWorkPlane parses a plane name, case-insensitively.
func ParseWorkPlane(s string) (WorkPlane, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "XY":
		return PlaneXY, nil
	case "YZ":
		return PlaneYZ, nil
	case "XZ":
		return PlaneXZ, nil
	default:
		return PlaneXY, fmt.Errorf("unknown work plane: %q", s)
	}
}

// SplitOffsets maps a transition offset triple onto (horizontal, vertical,
// perpendicular) components for this plane. Horizontal and vertical are the
// canvas axes; perpendicular is the world axis the canvas does not span.
func (p WorkPlane) SplitOffsets(t TransitionPoint) (h, v, perp float64) {
	switch p {
	case PlaneYZ:
		return t.OffsetY, t.OffsetZ, t.OffsetX
	case PlaneXZ:
		return t.OffsetX, t.OffsetZ, t.OffsetY
	default: // PlaneXY
		return t.OffsetX, t.OffsetY, t.OffsetZ
	}
}

// PerpendicularOffset builds a transition offset triple whose only non-zero
// component is the perpendicular axis for this plane.
func (p WorkPlane) PerpendicularOffset(clearance, velocity float64) TransitionPoint {
	switch p {
	case PlaneYZ:
		return TransitionPoint{OffsetX: clearance, Velocity: velocity}
	case PlaneXZ:
		return TransitionPoint{OffsetY: clearance, Velocity: velocity}
	default:
		return TransitionPoint{OffsetZ: clearance, Velocity: velocity}
	}
}

// ToWorld maps a canvas coordinate pair plus perpendicular depth onto world
// X/Y/Z for this plane.
func (p WorkPlane) ToWorld(h, v, perp float64) (x, y, z float64) {
	switch p {
	case PlaneYZ:
		return perp, h, v
	case PlaneXZ:
		return h, perp, v
	default:
		return h, v, perp
	}
}

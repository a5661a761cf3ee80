// Package transition synthesizes the connector motion between two adjacent
// paths: a mandatory Exit/Entry/Start triple plus optional intermediate
// points, each carrying a per-axis offset and its own feed velocity.
package transition

import (
	"errors"

	"github.com/robosketch/engine/pkg/core"
)

// ErrMandatorySlot is returned when a caller tries to remove one of the
// Exit/Entry/Start slots.
var ErrMandatorySlot = errors.New("exit, entry and start points cannot be removed")

// ErrBadIndex is returned when an intermediate insert or remove targets a
// position outside the Exit..Entry range.
var ErrBadIndex = errors.New("intermediate points must sit between exit and entry")

// minSlots is the mandatory transition structure: Exit, Entry, Start.
const minSlots = 3

// Default builds the three-point transition used when a new adjacent path
// pair appears: Exit and Entry offset by the clearance along the plane's
// perpendicular axis, Start fixed at zero offset.
func Default(plane core.WorkPlane, clearance, velocity float64) *core.Transition {
	return &core.Transition{
		Points: []core.TransitionPoint{
			plane.PerpendicularOffset(clearance, velocity), // Exit
			plane.PerpendicularOffset(clearance, velocity), // Entry
			{Velocity: velocity},                           // Start, offset always zero
		},
	}
}

// Resolve computes literal world coordinates for every transition point. The
// Exit offset is applied relative to the last processed point of from; every
// other offset is applied relative to the first processed point of to. The
// result is empty when either path has no processed points.
func Resolve(t *core.Transition, from, to *core.Path, plane core.WorkPlane) []core.WorldPoint {
	if t == nil || len(t.Points) < minSlots ||
		len(from.ProcessedPoints) == 0 || len(to.ProcessedPoints) == 0 {
		return nil
	}

	exitAnchor := from.ProcessedPoints[len(from.ProcessedPoints)-1]
	entryAnchor := to.ProcessedPoints[0]

	out := make([]core.WorldPoint, len(t.Points))
	for i, p := range t.Points {
		anchor := entryAnchor
		if i == 0 {
			anchor = exitAnchor
		}
		h, v, perp := plane.SplitOffsets(p)
		out[i] = core.WorldPoint{
			X:        anchor.X + h,
			Y:        anchor.Y + v,
			Z:        anchor.Z + perp,
			Velocity: p.Velocity,
		}
	}
	return out
}

// InsertIntermediate inserts a point at position idx, which must land between
// Exit and Entry (1 <= idx <= len-2).
func InsertIntermediate(t *core.Transition, idx int, p core.TransitionPoint) error {
	if idx < 1 || idx > len(t.Points)-2 {
		return ErrBadIndex
	}
	t.Points = append(t.Points, core.TransitionPoint{})
	copy(t.Points[idx+1:], t.Points[idx:])
	t.Points[idx] = p
	return nil
}

// RemoveIntermediate removes the point at position idx. Removing Exit, Entry
// or Start is refused.
func RemoveIntermediate(t *core.Transition, idx int) error {
	if idx <= 0 || idx >= len(t.Points)-2 {
		return ErrMandatorySlot
	}
	t.Points = append(t.Points[:idx], t.Points[idx+1:]...)
	return nil
}

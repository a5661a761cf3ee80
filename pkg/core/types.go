// Package core holds the plain domain types shared between the trajectory
// pipeline, the emitters and the storage layer. Types here carry no behavior
// beyond trivial accessors so that every package can depend on them without
// dragging in pipeline logic.
package core

// RawPoint is a single captured pointer sample of a stroke, in work units.
// Raw points are immutable once the stroke that produced them has ended.
type RawPoint struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Timestamp int64   `json:"timestamp"` // monotonic capture time, milliseconds
}

// ProcessedPoint is a point on the canonical motion path. Z is zero unless a
// transition offset introduces depth. Velocity is a feed-rate scalar (>0),
// defaulted from configuration and editable afterward. Curvature is the
// normalized turn angle estimated during resampling (0 straight, 1 reversal);
// it is informational and zero for interpolated points.
type ProcessedPoint struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	Velocity  float64 `json:"velocity"`
	Curvature float64 `json:"curvature,omitempty"`
}

// Path is one drawn segment. RawPoints is the frozen smoothing input;
// ProcessedPoints is derived and may be recomputed without discarding
// RawPoints. Invariant: ProcessedPoints is empty iff len(RawPoints) < 2.
type Path struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	RawPoints       []RawPoint       `json:"rawPoints"`
	ProcessedPoints []ProcessedPoint `json:"processedPoints"`
	Color           string           `json:"color"`
	Visible         bool             `json:"visible"`
	Locked          bool             `json:"locked"`
	Velocity        float64          `json:"velocity"` // default feed for this path
}

// TransitionPoint is one offset record inside a transition. Offsets are
// expressed per world axis; the workplane decides which component carries the
// perpendicular clearance.
type TransitionPoint struct {
	OffsetX  float64 `json:"offsetX"`
	OffsetY  float64 `json:"offsetY"`
	OffsetZ  float64 `json:"offsetZ"`
	Velocity float64 `json:"velocity"`
}

// Transition is the connector between two adjacent paths. It always has three
// mandatory slots: Exit (index 0, anchored to the end of the previous path),
// Entry (second to last) and Start (last, offset fixed at zero), both anchored
// to the start of the next path. Intermediate points may only exist between
// Exit and Entry.
type Transition struct {
	Points []TransitionPoint `json:"points"`
}

// Exit returns the exit slot of the transition.
func (t *Transition) Exit() TransitionPoint { return t.Points[0] }

// Entry returns the entry slot of the transition.
func (t *Transition) Entry() TransitionPoint { return t.Points[len(t.Points)-2] }

// Start returns the start slot of the transition.
func (t *Transition) Start() TransitionPoint { return t.Points[len(t.Points)-1] }

// WorldPoint is a fully resolved coordinate handed to the renderer and the
// emitters: canvas position plus perpendicular depth, with feed velocity.
type WorldPoint struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Velocity float64 `json:"velocity"`
}

// MotionPath is one element of the flattened motion list consumed by the
// emitters: the processed points of a visible path plus the resolved connector
// that follows it (nil for the last path).
type MotionPath struct {
	Name      string
	Points    []ProcessedPoint
	Connector []WorldPoint
}

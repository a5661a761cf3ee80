package geo

import (
	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/robosketch/engine/pkg/core"
)

// Envelope is the rectangular working envelope of the robot in canvas
// coordinates. A zero Envelope is disabled and contains everything.
type Envelope struct {
	box     geom.Envelope
	enabled bool
}

// NewEnvelope builds an enabled envelope from two opposite corners. Corners
// may be given in any order; the envelope is their bounding box.
func NewEnvelope(minX, minY, maxX, maxY float64) Envelope {
	return Envelope{
		box:     geom.NewEnvelope(geom.XY{X: minX, Y: minY}, geom.XY{X: maxX, Y: maxY}),
		enabled: true,
	}
}

// Enabled reports whether the envelope check is active.
func (e Envelope) Enabled() bool { return e.enabled }

// Contains reports whether the coordinate lies inside the envelope, borders
// included. A disabled envelope contains everything.
func (e Envelope) Contains(x, y float64) bool {
	if !e.enabled {
		return true
	}
	return e.box.Contains(geom.XY{X: x, Y: y})
}

// Split partitions processed points into in-bounds and out-of-bounds slices,
// preserving order. The caller decides what to do with a partially
// out-of-bounds path; Split never drops points on its own.
func (e Envelope) Split(points []core.ProcessedPoint) (in, out []core.ProcessedPoint) {
	if !e.enabled {
		return points, nil
	}
	for _, p := range points {
		if e.Contains(p.X, p.Y) {
			in = append(in, p)
		} else {
			out = append(out, p)
		}
	}
	return in, out
}

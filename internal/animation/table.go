// Package animation drives feed-rate-aware traversal of the drawing: it
// samples the spline of every visible path into an arc-length table and maps
// elapsed wall-clock time (or a raw progress fraction) back to a position.
package animation

import (
	"math"
	"sort"

	"github.com/robosketch/engine/internal/spline"
	"github.com/robosketch/engine/pkg/core"
)

// SamplesPerSegment is the fixed sampling resolution of the spline per source
// segment when building the arc-length table.
const SamplesPerSegment = 50

// Sample is one row of the arc-length table. Distance and Time accumulate
// monotonically over the whole drawing.
type Sample struct {
	X        float64
	Y        float64
	Velocity float64
	Distance float64
	Time     float64 // seconds
}

// Table is the immutable arc-length sampling of one drawing state. It is
// replaced wholesale on rebuild, never mutated in place, so an in-flight
// query never observes a partial update.
type Table struct {
	Samples     []Sample
	TotalLength float64
	TotalTime   float64
}

// BuildTable samples every motion path at SamplesPerSegment and integrates
// traversal time using the trapezoidal average of the bracketing velocities.
func BuildTable(paths []core.MotionPath) *Table {
	t := &Table{}

	for _, mp := range paths {
		pts := mp.Points
		if len(pts) == 0 {
			continue
		}
		steps := (len(pts) - 1) * SamplesPerSegment
		if steps == 0 {
			steps = 1
		}
		for k := 0; k <= steps; k++ {
			sp := spline.At(pts, float64(k)/float64(steps))
			t.push(sp)
		}
	}

	if n := len(t.Samples); n > 0 {
		t.TotalLength = t.Samples[n-1].Distance
		t.TotalTime = t.Samples[n-1].Time
	}
	return t
}

// push appends a spline sample, accumulating distance and time from the
// previous row. A zero average velocity contributes distance but no time.
func (t *Table) push(sp spline.Point) {
	s := Sample{X: sp.X, Y: sp.Y, Velocity: sp.Velocity}
	if n := len(t.Samples); n > 0 {
		prev := t.Samples[n-1]
		d := math.Hypot(sp.X-prev.X, sp.Y-prev.Y)
		s.Distance = prev.Distance + d
		s.Time = prev.Time
		if avg := (prev.Velocity + sp.Velocity) / 2; avg > 0 {
			s.Time += d / avg
		}
	}
	t.Samples = append(t.Samples, s)
}

// PositionAt maps a progress fraction in [0,1] to a position by target
// arc-length: binary search on Distance, then linear interpolation between
// the bracketing samples.
func (t *Table) PositionAt(progress float64) Sample {
	progress = math.Max(0, math.Min(1, progress))
	return t.lookup(progress*t.TotalLength, func(s Sample) float64 { return s.Distance })
}

// PositionAtTime maps elapsed seconds to a position using the integrated
// traversal time.
func (t *Table) PositionAtTime(elapsed float64) Sample {
	elapsed = math.Max(0, math.Min(t.TotalTime, elapsed))
	return t.lookup(elapsed, func(s Sample) float64 { return s.Time })
}

func (t *Table) lookup(target float64, key func(Sample) float64) Sample {
	n := len(t.Samples)
	if n == 0 {
		return Sample{}
	}
	i := sort.Search(n, func(i int) bool { return key(t.Samples[i]) >= target })
	if i == 0 {
		return t.Samples[0]
	}
	if i >= n {
		return t.Samples[n-1]
	}

	a, b := t.Samples[i-1], t.Samples[i]
	span := key(b) - key(a)
	if span == 0 {
		return b
	}
	f := (target - key(a)) / span
	return Sample{
		X:        a.X + (b.X-a.X)*f,
		Y:        a.Y + (b.Y-a.Y)*f,
		Velocity: a.Velocity + (b.Velocity-a.Velocity)*f,
		Distance: a.Distance + (b.Distance-a.Distance)*f,
		Time:     a.Time + (b.Time-a.Time)*f,
	}
}

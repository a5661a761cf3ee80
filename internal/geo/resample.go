package geo

import (
	"math"

	"github.com/robosketch/engine/pkg/core"
)

const (
	// skipFactor scales minDist into the spacing below which a non-corner
	// point is dropped instead of emitted.
	skipFactor = 0.3
	// endpointTolerance is the maximum drift allowed between the last emitted
	// point and the last input point before the original is re-appended.
	endpointTolerance = 0.01
)

// Resample redistributes the points of a smoothed stroke so that local
// spacing adapts to geometric complexity: half of minDist at corners, minDist
// next to corners, maxDist on straight runs. Corners are always emitted; a
// non-corner point closer than 0.3*minDist to the last emitted point is
// dropped. The first input point is always present, and the last is restored
// if floating point drift moved the tail beyond 0.01 units. Velocity is left
// zero for the caller to annotate; curvature is carried onto surviving input
// points (interpolated fill-in points keep curvature 0).
func Resample(points []core.RawPoint, cfg core.PipelineConfig) []core.ProcessedPoint {
	if len(points) < 2 {
		return nil
	}

	curvatures := Curvatures(points, cfg.MinDist)
	corners := Corners(curvatures, cfg.CurvatureThreshold)

	out := make([]core.ProcessedPoint, 0, len(points))
	out = append(out, core.ProcessedPoint{X: points[0].X, Y: points[0].Y, Curvature: curvatures[0]})

	for i := 1; i < len(points); i++ {
		p := points[i]
		target := targetSpacing(corners, i, cfg)

		last := out[len(out)-1]
		d := math.Hypot(p.X-last.X, p.Y-last.Y)

		if d > target {
			// Fill the gap with evenly spaced linear interpolants.
			n := int(math.Ceil(d / target))
			for k := 1; k < n; k++ {
				t := float64(k) / float64(n)
				out = append(out, core.ProcessedPoint{
					X: last.X + (p.X-last.X)*t,
					Y: last.Y + (p.Y-last.Y)*t,
				})
			}
		} else if d < skipFactor*cfg.MinDist && !corners[i] {
			continue
		}

		out = append(out, core.ProcessedPoint{X: p.X, Y: p.Y, Curvature: curvatures[i]})
	}

	// Floating point drift can lose the stroke tail; restore it.
	lastIn := points[len(points)-1]
	lastOut := out[len(out)-1]
	if math.Hypot(lastIn.X-lastOut.X, lastIn.Y-lastOut.Y) > endpointTolerance {
		out = append(out, core.ProcessedPoint{X: lastIn.X, Y: lastIn.Y})
	}

	return out
}

// targetSpacing picks the maximum allowed gap for the segment arriving at
// point i.
func targetSpacing(corners []bool, i int, cfg core.PipelineConfig) float64 {
	switch {
	case corners[i]:
		return 0.5 * cfg.MinDist
	case i > 0 && corners[i-1], i < len(corners)-1 && corners[i+1]:
		return cfg.MinDist
	default:
		return cfg.MaxDist
	}
}

package geo

import (
	"math"

	"github.com/robosketch/engine/pkg/core"
)

// significantNeighborFactor scales minDist into the distance a neighbor must
// clear before it participates in curvature estimation. Walking out to a
// significant neighbor suppresses curvature noise from dense, nearly
// duplicate samples.
const significantNeighborFactor = 1.5

func dist(a, b core.RawPoint) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Curvatures estimates the normalized turn angle at every point of the
// sequence: 0 for a straight continuation, 0.5 for a right angle, 1 for a
// full reversal. Endpoints and points without a significant neighbor on both
// sides have curvature 0.
func Curvatures(points []core.RawPoint, minDist float64) []float64 {
	curv := make([]float64, len(points))
	if len(points) < 3 {
		return curv
	}

	threshold := significantNeighborFactor * minDist
	for i := 1; i < len(points)-1; i++ {
		prev, okPrev := significantBefore(points, i, threshold)
		next, okNext := significantAfter(points, i, threshold)
		if !okPrev || !okNext {
			continue
		}
		curv[i] = turnAngle(points[prev], points[i], points[next])
	}
	return curv
}

// significantBefore walks backward from the immediate neighbor of i until it
// finds a point at least threshold away. The boolean is false when the
// sequence boundary is reached without satisfying the threshold.
func significantBefore(points []core.RawPoint, i int, threshold float64) (int, bool) {
	for j := i - 1; j >= 0; j-- {
		if dist(points[j], points[i]) >= threshold {
			return j, true
		}
	}
	return 0, false
}

// significantAfter is the forward counterpart of significantBefore.
func significantAfter(points []core.RawPoint, i int, threshold float64) (int, bool) {
	for j := i + 1; j < len(points); j++ {
		if dist(points[j], points[i]) >= threshold {
			return j, true
		}
	}
	return len(points) - 1, false
}

// turnAngle computes the normalized angle between the incoming and outgoing
// direction at curr. Zero-length vectors yield 0 rather than NaN.
func turnAngle(prev, curr, next core.RawPoint) float64 {
	v1x, v1y := curr.X-prev.X, curr.Y-prev.Y
	v2x, v2y := next.X-curr.X, next.Y-curr.Y

	l1 := math.Hypot(v1x, v1y)
	l2 := math.Hypot(v2x, v2y)
	if l1 == 0 || l2 == 0 {
		return 0
	}

	dot := (v1x*v2x + v1y*v2y) / (l1 * l2)
	dot = math.Max(-1, math.Min(1, dot))
	return math.Acos(dot) / math.Pi
}

// Corners marks every point whose curvature exceeds the threshold and is a
// local maximum among its immediate neighbors. Ties count as maxima.
func Corners(curvatures []float64, threshold float64) []bool {
	corners := make([]bool, len(curvatures))
	for i := 1; i < len(curvatures)-1; i++ {
		c := curvatures[i]
		if c > threshold && c >= curvatures[i-1] && c >= curvatures[i+1] {
			corners[i] = true
		}
	}
	return corners
}

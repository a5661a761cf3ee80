// Package geo implements the planar geometry stages of the trajectory
// pipeline: stroke smoothing, curvature estimation, curvature-adaptive
// resampling and the working-envelope boundary check.
package geo

import "github.com/robosketch/engine/pkg/core"

// Smooth low-pass filters a raw stroke. Endpoints pass through unchanged;
// each interior point is blended with the midpoint of its neighbors:
//
//	smoothed[i] = curr*(1-f) + ((prev+next)/2)*f
//
// This is a single Laplacian pass, not an iterative relaxation. A factor of 0
// or fewer than 3 points returns a copy of the input.
func Smooth(points []core.RawPoint, factor float64) []core.RawPoint {
	out := make([]core.RawPoint, len(points))
	copy(out, points)
	if factor <= 0 || len(points) < 3 {
		return out
	}
	if factor > 1 {
		factor = 1
	}

	for i := 1; i < len(points)-1; i++ {
		prev, curr, next := points[i-1], points[i], points[i+1]
		midX := (prev.X + next.X) / 2
		midY := (prev.Y + next.Y) / 2
		out[i].X = curr.X*(1-factor) + midX*factor
		out[i].Y = curr.Y*(1-factor) + midY*factor
	}
	return out
}

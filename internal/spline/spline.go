// Package spline evaluates a Catmull-Rom curve through an ordered processed
// point sequence. It serves two consumers: the renderer, which tessellates
// each source segment into straight pieces, and the animation clock, which
// needs random access via a global parameter over the whole sequence.
package spline

import (
	"math"

	"github.com/robosketch/engine/pkg/core"
)

// Point is an evaluated curve sample. Velocity is linearly interpolated
// between the bracketing source points.
type Point struct {
	X        float64
	Y        float64
	Velocity float64
}

// catmullRom evaluates the uniform Catmull-Rom basis for one coordinate.
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// Segment evaluates the curve on segment i (between points[i] and
// points[i+1]) at local parameter t in [0,1]. Control points outside the
// sequence are clamped to the boundary point rather than extrapolated.
func Segment(points []core.ProcessedPoint, i int, t float64) Point {
	n := len(points)
	p0 := points[clampIndex(i-1, n)]
	p1 := points[clampIndex(i, n)]
	p2 := points[clampIndex(i+1, n)]
	p3 := points[clampIndex(i+2, n)]

	return Point{
		X:        catmullRom(p0.X, p1.X, p2.X, p3.X, t),
		Y:        catmullRom(p0.Y, p1.Y, p2.Y, p3.Y, t),
		Velocity: p1.Velocity + (p2.Velocity-p1.Velocity)*t,
	}
}

// At evaluates the curve at global parameter t in [0,1] over the whole
// sequence. Degenerate inputs follow the rendering contract: one point
// returns that point, two points interpolate linearly, and an empty sequence
// returns the zero Point.
func At(points []core.ProcessedPoint, t float64) Point {
	n := len(points)
	switch n {
	case 0:
		return Point{}
	case 1:
		p := points[0]
		return Point{X: p.X, Y: p.Y, Velocity: p.Velocity}
	}

	t = math.Max(0, math.Min(1, t))

	if n == 2 {
		a, b := points[0], points[1]
		return Point{
			X:        a.X + (b.X-a.X)*t,
			Y:        a.Y + (b.Y-a.Y)*t,
			Velocity: a.Velocity + (b.Velocity-a.Velocity)*t,
		}
	}

	scaled := t * float64(n-1)
	seg := int(math.Floor(scaled))
	if seg > n-2 {
		seg = n - 2
	}
	return Segment(points, seg, scaled-float64(seg))
}

// Tessellate flattens the curve into straight pieces, perSegment per source
// segment, including both endpoints. With fewer than three points the source
// points are returned as-is (a line needs no curve fitting).
func Tessellate(points []core.ProcessedPoint, perSegment int) []Point {
	n := len(points)
	if n == 0 {
		return nil
	}
	if n < 3 || perSegment < 2 {
		out := make([]Point, n)
		for i, p := range points {
			out[i] = Point{X: p.X, Y: p.Y, Velocity: p.Velocity}
		}
		return out
	}

	out := make([]Point, 0, (n-1)*perSegment+1)
	for i := 0; i < n-1; i++ {
		for k := 0; k < perSegment; k++ {
			out = append(out, Segment(points, i, float64(k)/float64(perSegment)))
		}
	}
	last := points[n-1]
	out = append(out, Point{X: last.X, Y: last.Y, Velocity: last.Velocity})
	return out
}

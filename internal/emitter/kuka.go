package emitter

import (
	"fmt"
	"strings"

	"github.com/robosketch/engine/pkg/core"
)

// kukaEmitter generates KUKA KRL .src programs. Path points are declared as
// indexed E6POS arrays (SP) with parallel velocity arrays (SPVEL) and moved
// inside one SPLINE..ENDSPLINE block per path (blended motion); transition
// points (TP/TPVEL) are moved as sequential SLIN statements so the geometry
// at connectors stays exact. Approach and exit points bracket the whole
// program with joint moves.
type kukaEmitter struct{}

func (e *kukaEmitter) Dialect() core.Dialect { return core.DialectKUKA }

// kukaVelocity converts a feed in work units per second to the $VEL.CP m/s
// figure, three decimals.
func kukaVelocity(v float64) string {
	return fmt.Sprintf("%.3f", v/1000.0)
}

// e6pos formats a world coordinate as an E6POS literal with the configured
// fixed orientation, status and turn.
func e6pos(x, y, z float64, k core.KukaConfig) string {
	return fmt.Sprintf("{X %.3f, Y %.3f, Z %.3f, A %g, B %g, C %g, S %d, T %d}",
		x, y, z, k.AngleA, k.AngleB, k.AngleC, k.Status, k.Turn)
}

func (e *kukaEmitter) Generate(job Job) (Program, error) {
	pathPoints, connectorPoints := job.pointCount()
	if pathPoints == 0 {
		return Program{}, ErrNoPoints
	}

	k := job.Robot.Kuka
	plane := job.Plane
	name := strings.ToUpper(job.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "DEF %s()\n", name)
	fmt.Fprintf(&b, "   DECL E6POS SP[%d]\n", pathPoints)
	fmt.Fprintf(&b, "   DECL REAL SPVEL[%d]\n", pathPoints)
	if connectorPoints > 0 {
		fmt.Fprintf(&b, "   DECL E6POS TP[%d]\n", connectorPoints)
		fmt.Fprintf(&b, "   DECL REAL TPVEL[%d]\n", connectorPoints)
	}
	b.WriteString("   DECL E6POS AP\n")
	b.WriteString("   DECL E6POS EP\n")
	b.WriteString("\n")
	b.WriteString("   BAS(#INITMOV, 0)\n")
	fmt.Fprintf(&b, "   $TOOL = TOOL_DATA[%d]\n", k.ToolIndex)
	fmt.Fprintf(&b, "   $BASE = BASE_DATA[%d]\n", k.BaseIndex)
	b.WriteString("\n")

	// Point and velocity declarations, numbered continuously across paths.
	sp, tp := 0, 0
	for _, mp := range job.Paths {
		for _, p := range mp.Points {
			sp++
			x, y, z := plane.ToWorld(p.X, p.Y, p.Z)
			fmt.Fprintf(&b, "   SP[%d] = %s\n", sp, e6pos(x, y, z, k))
			fmt.Fprintf(&b, "   SPVEL[%d] = %s\n", sp, kukaVelocity(p.Velocity))
		}
		for _, w := range mp.Connector {
			tp++
			x, y, z := plane.ToWorld(w.X, w.Y, w.Z)
			fmt.Fprintf(&b, "   TP[%d] = %s\n", tp, e6pos(x, y, z, k))
			fmt.Fprintf(&b, "   TPVEL[%d] = %s\n", tp, kukaVelocity(w.Velocity))
		}
	}

	// Approach and exit: the first/last path point lifted by the approach
	// offset along the perpendicular axis. Empty paths are skipped; the
	// pathPoints guard above ensures at least one path has points.
	var firstPath, lastPath core.MotionPath
	for _, mp := range job.Paths {
		if len(mp.Points) == 0 {
			continue
		}
		if len(firstPath.Points) == 0 {
			firstPath = mp
		}
		lastPath = mp
	}
	first := firstPath.Points[0]
	last := lastPath.Points[len(lastPath.Points)-1]
	ax, ay, az := plane.ToWorld(first.X, first.Y, first.Z+k.ApproachOffset)
	ex, ey, ez := plane.ToWorld(last.X, last.Y, last.Z+k.ApproachOffset)
	fmt.Fprintf(&b, "   AP = %s\n", e6pos(ax, ay, az, k))
	fmt.Fprintf(&b, "   EP = %s\n", e6pos(ex, ey, ez, k))
	b.WriteString("\n")
	b.WriteString("   PTP AP\n")

	sp, tp = 0, 0
	for _, mp := range job.Paths {
		if len(mp.Points) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n   ; %s\n", mp.Name)

		// Blend into the path with a linear move onto the first spline point.
		firstIdx := sp + 1
		fmt.Fprintf(&b, "   SLIN SP[%d] WITH $VEL.CP = SPVEL[%d]\n", firstIdx, firstIdx)

		if k.OutputSignal {
			fmt.Fprintf(&b, "   $OUT[%d] = TRUE\n", k.OutputSignalID)
		}
		b.WriteString("   SPLINE\n")
		for range mp.Points {
			sp++
			fmt.Fprintf(&b, "      SPL SP[%d] WITH $VEL.CP = SPVEL[%d]\n", sp, sp)
		}
		b.WriteString("   ENDSPLINE\n")
		if k.OutputSignal {
			fmt.Fprintf(&b, "   $OUT[%d] = FALSE\n", k.OutputSignalID)
		}

		// Connector moves stay unblended: sequential linear moves keep the
		// geometry exact between paths.
		for range mp.Connector {
			tp++
			fmt.Fprintf(&b, "   SLIN TP[%d] WITH $VEL.CP = TPVEL[%d]\n", tp, tp)
		}
	}

	b.WriteString("\n   PTP EP\n")
	b.WriteString("END\n")

	total := pathPoints + connectorPoints
	recordProgram(core.DialectKUKA, total)
	return Program{
		Dialect:    core.DialectKUKA,
		FileName:   strings.ToLower(name) + core.DialectKUKA.FileExtension(),
		Text:       b.String(),
		PointCount: total,
	}, nil
}

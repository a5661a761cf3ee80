package emitter

import (
	"fmt"
	"math"
	"strings"

	"github.com/robosketch/engine/pkg/core"
)

// duplicateTolerance is the coincidence distance under which consecutive
// FANUC points are collapsed: the earlier point is forced to a precise stop
// and the duplicate is dropped.
const duplicateTolerance = 0.01

// fanucEmitter generates FANUC TP .ls programs: an /ATTR header, numbered
// motion lines in /MN referencing a /POS table of fixed-width position
// blocks. The first point of every path terminates FINE so arrival is
// deterministic before blended motion begins; velocities are rounded to
// integer feed units.
type fanucEmitter struct{}

func (e *fanucEmitter) Dialect() core.Dialect { return core.DialectFANUC }

// fanucMove is one resolved motion record before text generation.
type fanucMove struct {
	joint    bool // J move (percent speed) instead of L (mm/sec)
	x, y, z  float64
	velocity float64
	fine     bool
}

// collectMoves flattens the job into motion records, applying the coincident
// point collapse and the per-path precise-stop rules.
func (e *fanucEmitter) collectMoves(job Job) []fanucMove {
	plane := job.Plane
	var moves []fanucMove

	push := func(m fanucMove) {
		if n := len(moves); n > 0 {
			prev := &moves[n-1]
			if math.Hypot(m.x-prev.x, m.y-prev.y)+math.Abs(m.z-prev.z) < duplicateTolerance {
				// Coincident with the previous point: precise stop there,
				// drop the duplicate.
				prev.fine = true
				return
			}
		}
		moves = append(moves, m)
	}

	for _, mp := range job.Paths {
		for i, p := range mp.Points {
			x, y, z := plane.ToWorld(p.X, p.Y, p.Z)
			push(fanucMove{
				joint:    len(moves) == 0, // program entry is a joint move
				x:        x,
				y:        y,
				z:        z,
				velocity: p.Velocity,
				fine:     i == 0, // deterministic arrival before blending
			})
		}
		for _, w := range mp.Connector {
			x, y, z := plane.ToWorld(w.X, w.Y, w.Z)
			// Connector moves stop precisely so geometry stays exact.
			push(fanucMove{x: x, y: y, z: z, velocity: w.Velocity, fine: true})
		}
	}
	return moves
}

func (e *fanucEmitter) Generate(job Job) (Program, error) {
	moves := e.collectMoves(job)
	if len(moves) == 0 {
		return Program{}, ErrNoPoints
	}

	f := job.Robot.Fanuc
	name := strings.ToUpper(job.Name)
	now := job.timestamp()
	date := now.Format("06-01-02")
	clock := now.Format("15:04:05")

	var b strings.Builder
	fmt.Fprintf(&b, "/PROG  %s\n", name)
	b.WriteString("/ATTR\n")
	b.WriteString("OWNER\t\t= MNEDITOR;\n")
	fmt.Fprintf(&b, "COMMENT\t\t= \"%s\";\n", name)
	b.WriteString("PROG_SIZE\t= 0;\n")
	fmt.Fprintf(&b, "CREATE\t\t= DATE %s  TIME %s;\n", date, clock)
	fmt.Fprintf(&b, "MODIFIED\t= DATE %s  TIME %s;\n", date, clock)
	b.WriteString("FILE_NAME\t= ;\n")
	b.WriteString("VERSION\t\t= 0;\n")
	fmt.Fprintf(&b, "LINE_COUNT\t= %d;\n", len(moves))
	b.WriteString("MEMORY_SIZE\t= 0;\n")
	b.WriteString("PROTECT\t= READ_WRITE;\n")
	b.WriteString("TCD:  STACK_SIZE\t= 0,\n")
	b.WriteString("      TASK_PRIORITY\t= 50,\n")
	b.WriteString("      TIME_SLICE\t= 0,\n")
	b.WriteString("      BUSY_LAMP_OFF\t= 0,\n")
	b.WriteString("      ABORT_REQUEST\t= 0,\n")
	b.WriteString("      PAUSE_REQUEST\t= 0;\n")
	b.WriteString("DEFAULT_GROUP\t= 1,*,*,*,*;\n")
	b.WriteString("CONTROL_CODE\t= 00000000 00000000;\n")

	b.WriteString("/MN\n")
	for i, m := range moves {
		term := "FINE"
		if !m.fine {
			term = fmt.Sprintf("CNT%d", f.CNT)
		}
		vel := int(math.Round(m.velocity))
		if m.joint {
			fmt.Fprintf(&b, "%4d:J P[%d] 100%% %s ;\n", i+1, i+1, term)
		} else {
			fmt.Fprintf(&b, "%4d:L P[%d] %dmm/sec %s ;\n", i+1, i+1, vel, term)
		}
	}

	b.WriteString("/POS\n")
	for i, m := range moves {
		fmt.Fprintf(&b, "P[%d]{\n", i+1)
		b.WriteString("   GP1:\n")
		fmt.Fprintf(&b, "\tUF : %d, UT : %d,\t\tCONFIG : '%s',\n",
			f.UserFrame, f.UserTool, f.Config)
		fmt.Fprintf(&b, "\tX = %9.3f  mm,\tY = %9.3f  mm,\tZ = %9.3f  mm,\n",
			m.x, m.y, m.z)
		fmt.Fprintf(&b, "\tW = %9.3f deg,\tP = %9.3f deg,\tR = %9.3f deg\n",
			f.AngleW, f.AngleP, f.AngleR)
		b.WriteString("};\n")
	}
	b.WriteString("/END\n")

	recordProgram(core.DialectFANUC, len(moves))
	return Program{
		Dialect:    core.DialectFANUC,
		FileName:   strings.ToLower(name) + core.DialectFANUC.FileExtension(),
		Text:       b.String(),
		PointCount: len(moves),
	}, nil
}

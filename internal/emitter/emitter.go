// Package emitter translates the flattened motion list into dialect-specific
// robot program text. Each dialect owns its declaration syntax, coordinate
// remapping, motion vocabulary and termination semantics; unsupported
// dialects are explicit stub variants, never absent cases.
package emitter

import (
	"errors"
	"fmt"
	"time"

	"github.com/robosketch/engine/pkg/core"
)

// ErrNoPoints is returned when the motion list contains no exportable points.
// It is a distinct condition from a successful export of an empty program.
var ErrNoPoints = errors.New("no exportable points")

// ErrDialectStub is returned alongside the placeholder program of a stub
// dialect so callers can tell it apart from a real export.
var ErrDialectStub = errors.New("dialect not implemented, placeholder generated")

// Job carries everything one generation run needs. Now stamps date fields in
// dialects that carry them; the zero value means time.Now.
type Job struct {
	Name  string
	Paths []core.MotionPath
	Robot core.RobotConfig
	Plane core.WorkPlane
	Now   time.Time
}

// timestamp returns the effective generation time of the job.
func (j Job) timestamp() time.Time {
	if j.Now.IsZero() {
		return time.Now()
	}
	return j.Now
}

// pointCount returns the total number of path and connector points.
func (j Job) pointCount() (paths, connectors int) {
	for _, p := range j.Paths {
		paths += len(p.Points)
		connectors += len(p.Connector)
	}
	return paths, connectors
}

// Program is a generated motion program.
type Program struct {
	Dialect    core.Dialect
	FileName   string
	Text       string
	PointCount int
}

// Emitter generates program text for one dialect.
type Emitter interface {
	Dialect() core.Dialect
	Generate(job Job) (Program, error)
}

// New creates the emitter for a dialect. ABB and Yaskawa return stub emitters
// whose Generate yields a marked placeholder plus ErrDialectStub.
func New(dialect core.Dialect) (Emitter, error) {
	if err := initMetrics(); err != nil {
		return nil, err
	}
	switch dialect {
	case core.DialectKUKA:
		return &kukaEmitter{}, nil
	case core.DialectFANUC:
		return &fanucEmitter{}, nil
	case core.DialectABB, core.DialectYaskawa:
		return &stubEmitter{dialect: dialect}, nil
	default:
		return nil, fmt.Errorf("unknown robot dialect: %v", dialect)
	}
}

package emitter

import (
	"fmt"
	"strings"

	"github.com/robosketch/engine/pkg/core"
)

// stubEmitter stands in for dialects that are planned but not implemented.
// Generate never panics and never produces a silently empty file: it returns
// a clearly marked placeholder program together with ErrDialectStub.
type stubEmitter struct {
	dialect core.Dialect
}

func (e *stubEmitter) Dialect() core.Dialect { return e.dialect }

func (e *stubEmitter) Generate(job Job) (Program, error) {
	pathPoints, connectorPoints := job.pointCount()
	if pathPoints == 0 {
		return Program{}, ErrNoPoints
	}

	name := strings.ToUpper(job.Name)
	var b strings.Builder
	fmt.Fprintf(&b, "! %s program generation is not implemented\n",
		strings.ToUpper(e.dialect.String()))
	fmt.Fprintf(&b, "! placeholder for program %q\n", name)
	fmt.Fprintf(&b, "! %d path points, %d transition points withheld\n",
		pathPoints, connectorPoints)

	return Program{
		Dialect:    e.dialect,
		FileName:   strings.ToLower(name) + e.dialect.FileExtension(),
		Text:       b.String(),
		PointCount: 0,
	}, ErrDialectStub
}

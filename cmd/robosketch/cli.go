package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robosketch/engine/internal/animation"
	"github.com/robosketch/engine/internal/config"
	"github.com/robosketch/engine/internal/emitter"
	"github.com/robosketch/engine/internal/geo"
	"github.com/robosketch/engine/internal/logging"
	"github.com/robosketch/engine/internal/model"
	"github.com/robosketch/engine/internal/parser"
	"github.com/robosketch/engine/internal/session"
	"github.com/robosketch/engine/internal/storage"
)

const usage = `usage: robosketch <command> [args]

commands:
  process <stroke.json>...   run the pipeline and print a path summary
  export  <stroke.json>...   generate a program in the configured dialect
  timing  <stroke.json>...   print traversal length and time
  list                       list archived programs
`

type cli struct {
	logger zerolog.Logger
}

func newCLI(logger zerolog.Logger) *cli {
	return &cli{logger: logger}
}

func (c *cli) run(args []string) error {
	if len(args) == 0 {
		fmt.Print(usage)
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "process":
		return c.process(args[1:], func(s *session.Session) error {
			for i, p := range s.Paths() {
				var length float64
				if ls, err := parser.ToLineString(p.RawPoints); err == nil {
					length = ls.Length()
				}
				fmt.Printf("%s: %d raw -> %d processed points, %.3f units\n",
					p.Name, len(p.RawPoints), len(p.ProcessedPoints), length)
				if t := s.Transition(i); t != nil {
					fmt.Printf("  transition: %d points\n", len(t.Points))
				}
			}
			return nil
		})
	case "export":
		return c.process(args[1:], c.export)
	case "timing":
		return c.process(args[1:], c.timing)
	case "list":
		return c.list()
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

// newSession builds a session from the loaded configuration.
func (c *cli) newSession() (*session.Session, error) {
	plane, err := config.WorkPlane()
	if err != nil {
		return nil, err
	}
	robot, err := config.Robot()
	if err != nil {
		return nil, err
	}

	var envelope geo.Envelope
	if config.EnvelopeEnabled() {
		envelope = geo.NewEnvelope(config.EnvelopeBounds())
	}

	return session.New(session.Options{
		Pipeline:           config.Pipeline(),
		Plane:              plane,
		Envelope:           envelope,
		Clearance:          robot.Clearance,
		TransitionVelocity: robot.TransitionVelocity,
		Logger:             logging.NewZerologAdapter(c.logger),
	})
}

// process parses every stroke file into the session, then hands it to fn.
func (c *cli) process(files []string, fn func(*session.Session) error) error {
	if len(files) == 0 {
		return fmt.Errorf("no stroke files provided")
	}

	s, err := c.newSession()
	if err != nil {
		return err
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		raw, err := parser.ParseStroke(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", file, err)
		}

		report, err := s.CompleteStroke(raw)
		if err != nil {
			return err
		}
		if report == nil {
			continue
		}
		switch {
		case report.Rejected:
			c.logger.Warn().Str("file", file).Int("outOfBounds", report.OutOfBounds).
				Msg("stroke rejected: every point outside working envelope")
		case report.Pending:
			// The envelope decision belongs to this layer: keep the in-bounds
			// remainder and say so.
			c.logger.Warn().Str("file", file).
				Int("inBounds", report.InBounds).Int("outOfBounds", report.OutOfBounds).
				Msg("stroke crosses working envelope, keeping in-bounds points")
			s.Commit(report, true)
		}
	}

	return fn(s)
}

// export generates the program for the configured dialect and archives it.
func (c *cli) export(s *session.Session) error {
	robot, err := config.Robot()
	if err != nil {
		return err
	}

	em, err := emitter.New(robot.Dialect)
	if err != nil {
		return err
	}

	job := emitter.Job{
		Name:  robot.ProgramName,
		Paths: s.Flatten(),
		Robot: robot,
		Plane: s.Plane(),
	}

	program, err := em.Generate(job)
	switch {
	case err == nil:
	case err == emitter.ErrNoPoints:
		return fmt.Errorf("nothing to export: %w", err)
	case err == emitter.ErrDialectStub:
		c.logger.Warn().Str("dialect", robot.Dialect.String()).
			Msg("dialect not implemented, archiving placeholder")
	default:
		return err
	}

	backend, err := storage.NewBackend(config.Storage())
	if err != nil {
		return err
	}
	if err := backend.Init(); err != nil {
		return err
	}
	defer backend.Close()

	rec := &model.ProgramRecord{
		SessionName: robot.ProgramName,
		Dialect:     program.Dialect.String(),
		FileName:    program.FileName,
		PointCount:  program.PointCount,
		Text:        program.Text,
	}
	if err := backend.SaveProgram(rec); err != nil {
		return err
	}

	c.logger.Info().Str("file", program.FileName).Int("points", program.PointCount).
		Msg("program exported")
	fmt.Print(program.Text)
	return nil
}

// timing prints the arc-length and feed-aware traversal time of the drawing.
func (c *cli) timing(s *session.Session) error {
	table := animation.BuildTable(s.Flatten())
	fmt.Printf("length: %.3f units\ntime:   %.3f s\n", table.TotalLength, table.TotalTime)
	return nil
}

// list prints the archived programs.
func (c *cli) list() error {
	backend, err := storage.NewBackend(config.Storage())
	if err != nil {
		return err
	}
	if err := backend.Init(); err != nil {
		return err
	}
	defer backend.Close()

	records, err := backend.ListPrograms()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no archived programs")
		return nil
	}
	for _, r := range records {
		fmt.Printf("%4d  %-8s %-24s %5d points  %s\n",
			r.ID, r.Dialect, r.FileName, r.PointCount, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

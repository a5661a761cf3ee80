// Package session holds the explicit, passable application state: the ordered
// paths, the transitions between them, and the pipeline configuration driving
// reprocessing. The geometry stages themselves are pure functions in geo,
// spline and transition; Session owns lifecycle and mutation.
package session

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/robosketch/engine/internal/geo"
	"github.com/robosketch/engine/internal/logging"
	"github.com/robosketch/engine/internal/transition"
	"github.com/robosketch/engine/pkg/core"
)

// palette cycles path colors in creation order.
var palette = []string{"#e6194b", "#3cb44b", "#4363d8", "#f58231", "#911eb4", "#46f0f0"}

// Options configures a new Session.
type Options struct {
	Pipeline           core.PipelineConfig
	Plane              core.WorkPlane
	Envelope           geo.Envelope
	Clearance          float64 // perpendicular clearance for default transitions
	TransitionVelocity float64 // feed on synthesized transition points
	Logger             logging.Logger
}

// Session is the long-lived drawing state. All mutation is synchronous and
// mutex-guarded; the pipeline never suspends mid-operation.
type Session struct {
	mu   sync.RWMutex
	opts Options

	paths       []*core.Path
	transitions []*core.Transition
	nextID      int

	// OTEL metrics
	pathsCreated    metric.Int64Counter
	pointsProcessed metric.Int64Counter
}

// StrokeReport describes the outcome of a completed stroke. When Pending is
// true some processed points fell outside the working envelope and the caller
// must decide via Commit whether to keep the in-bounds remainder; the core
// never truncates silently.
type StrokeReport struct {
	Path        *core.Path
	InBounds    int
	OutOfBounds int
	Committed   bool // path already added, no decision needed
	Rejected    bool // every point was out of bounds
	Pending     bool // awaiting Commit
}

// New creates a Session. Uses the global OTel meter for metrics (no-op if not
// configured).
func New(opts Options) (*Session, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	s := &Session{opts: opts, nextID: 1}

	m := meter()
	var err error

	s.pathsCreated, err = m.Int64Counter(
		"session.paths.created",
		metric.WithDescription("Total paths committed to the session"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating paths counter: %w", err)
	}

	s.pointsProcessed, err = m.Int64Counter(
		"session.points.processed",
		metric.WithDescription("Total processed points produced by the pipeline"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating points counter: %w", err)
	}

	return s, nil
}

// process runs smoothing and resampling over a raw stroke and annotates the
// default feed.
func (s *Session) process(raw []core.RawPoint, velocity float64) []core.ProcessedPoint {
	smoothed := geo.Smooth(raw, s.opts.Pipeline.SmoothingFactor)
	processed := geo.Resample(smoothed, s.opts.Pipeline)
	for i := range processed {
		processed[i].Velocity = velocity
	}
	return processed
}

// CompleteStroke finishes a drawing gesture. Fewer than two raw points is a
// silent no-op returning (nil, nil). When the working envelope is enabled and
// some points land outside it, the returned report is Pending and the path is
// only added once the caller accepts it via Commit.
func (s *Session) CompleteStroke(raw []core.RawPoint) (*StrokeReport, error) {
	if len(raw) < 2 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The ID is reserved here, not at commit time: a pending report must not
	// collide with paths committed while the decision is outstanding.
	path := &core.Path{
		ID:       s.nextID,
		Name:     fmt.Sprintf("Path %d", s.nextID),
		Color:    palette[(s.nextID-1)%len(palette)],
		Visible:  true,
		Velocity: s.opts.Pipeline.DefaultVelocity,
	}
	s.nextID++
	path.RawPoints = append(path.RawPoints, raw...)
	processed := s.process(path.RawPoints, path.Velocity)
	s.pointsProcessed.Add(context.Background(), int64(len(processed)))

	in, out := s.opts.Envelope.Split(processed)
	report := &StrokeReport{Path: path, InBounds: len(in), OutOfBounds: len(out)}

	switch {
	case len(in) == 0:
		report.Rejected = true
		report.Path = nil
		s.opts.Logger.Info("stroke rejected, all points outside envelope",
			"outOfBounds", len(out))
		return report, nil
	case len(out) > 0:
		path.ProcessedPoints = in
		report.Pending = true
		s.opts.Logger.Info("stroke crosses envelope, decision required",
			"inBounds", len(in), "outOfBounds", len(out))
		return report, nil
	default:
		path.ProcessedPoints = processed
		s.addPathLocked(path)
		report.Committed = true
		return report, nil
	}
}

// Commit resolves a pending report. Accepting adds the path with its
// out-of-bounds points removed; rejecting drops it. Returns the committed
// path or nil.
func (s *Session) Commit(report *StrokeReport, accept bool) *core.Path {
	if report == nil || !report.Pending || report.Path == nil {
		return nil
	}
	report.Pending = false
	if !accept {
		report.Rejected = true
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.addPathLocked(report.Path)
	report.Committed = true
	return report.Path
}

func (s *Session) addPathLocked(path *core.Path) {
	s.paths = append(s.paths, path)
	s.ensureTransitionsLocked()
	s.pathsCreated.Add(context.Background(), 1)
	s.opts.Logger.Debug("path added", "id", path.ID, "points", len(path.ProcessedPoints))
}

// quantKey is the lossy position key used to carry edited velocities across
// reprocessing: same rounded x,y means same velocity. A point that resampling
// moves by more than the quantization step silently reverts to the default
// feed. This is an accepted limitation, not a bug to widen.
func quantKey(x, y float64) string {
	return fmt.Sprintf("%.1f,%.1f", x, y)
}

// SetPipeline replaces the processing thresholds and reprocesses every path.
func (s *Session) SetPipeline(cfg core.PipelineConfig) {
	s.mu.Lock()
	s.opts.Pipeline = cfg
	s.mu.Unlock()
	s.Reprocess()
}

// Reprocess reruns smoothing and resampling on every path from its frozen raw
// points, carrying edited velocities over by quantized position key.
func (s *Session) Reprocess() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, path := range s.paths {
		if len(path.RawPoints) < 2 {
			path.ProcessedPoints = nil
			continue
		}

		velocities := make(map[string]float64, len(path.ProcessedPoints))
		for _, p := range path.ProcessedPoints {
			velocities[quantKey(p.X, p.Y)] = p.Velocity
		}

		processed := s.process(path.RawPoints, path.Velocity)
		for i := range processed {
			if v, ok := velocities[quantKey(processed[i].X, processed[i].Y)]; ok {
				processed[i].Velocity = v
			}
		}
		path.ProcessedPoints = processed
		s.pointsProcessed.Add(context.Background(), int64(len(processed)))
	}
}

// SetPointVelocity edits the feed of one processed point.
func (s *Session) SetPointVelocity(pathID, pointIdx int, velocity float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.findLocked(pathID)
	if path == nil {
		return fmt.Errorf("unknown path id %d", pathID)
	}
	if pointIdx < 0 || pointIdx >= len(path.ProcessedPoints) {
		return fmt.Errorf("point index %d out of range", pointIdx)
	}
	path.ProcessedPoints[pointIdx].Velocity = velocity
	return nil
}

// SetVisible toggles a path's visibility.
func (s *Session) SetVisible(pathID int, visible bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.findLocked(pathID)
	if path == nil {
		return fmt.Errorf("unknown path id %d", pathID)
	}
	path.Visible = visible
	return nil
}

// DeletePath removes a path and rebuilds ALL transitions from defaults. Any
// transition edits are discarded; re-anchoring edited transitions across a
// path-count change is intentionally not attempted.
func (s *Session) DeletePath(pathID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, path := range s.paths {
		if path.ID == pathID {
			s.paths = append(s.paths[:i], s.paths[i+1:]...)
			s.transitions = nil
			s.ensureTransitionsLocked()
			s.opts.Logger.Info("path deleted, transitions rebuilt",
				"id", pathID, "transitions", len(s.transitions))
			return nil
		}
	}
	return fmt.Errorf("unknown path id %d", pathID)
}

func (s *Session) findLocked(pathID int) *core.Path {
	for _, p := range s.paths {
		if p.ID == pathID {
			return p
		}
	}
	return nil
}

// EnsureTransitions lazily creates default transitions for new adjacent path
// pairs and truncates excess ones beyond len(paths)-1.
func (s *Session) EnsureTransitions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureTransitionsLocked()
}

func (s *Session) ensureTransitionsLocked() {
	want := len(s.paths) - 1
	if want < 0 {
		want = 0
	}
	for len(s.transitions) < want {
		s.transitions = append(s.transitions,
			transition.Default(s.opts.Plane, s.opts.Clearance, s.opts.TransitionVelocity))
	}
	if len(s.transitions) > want {
		s.transitions = s.transitions[:want]
	}
}

// Transition returns the connector following the path at position idx.
func (s *Session) Transition(idx int) *core.Transition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx < 0 || idx >= len(s.transitions) {
		return nil
	}
	return s.transitions[idx]
}

// Paths returns the ordered paths. The slice is a copy; the paths are shared.
func (s *Session) Paths() []*core.Path {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*core.Path, len(s.paths))
	copy(out, s.paths)
	return out
}

// Plane returns the active work plane.
func (s *Session) Plane() core.WorkPlane {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts.Plane
}

// Flatten produces the ordered motion list for the emitters and the animation
// clock: the processed points of every visible path, each followed by its
// resolved connector when the neighboring path is also visible.
func (s *Session) Flatten() []core.MotionPath {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.MotionPath
	for i, path := range s.paths {
		if !path.Visible || len(path.ProcessedPoints) == 0 {
			continue
		}
		mp := core.MotionPath{Name: path.Name, Points: path.ProcessedPoints}
		if i+1 < len(s.paths) && i < len(s.transitions) && s.paths[i+1].Visible {
			mp.Connector = transition.Resolve(
				s.transitions[i], path, s.paths[i+1], s.opts.Plane)
		}
		out = append(out, mp)
	}
	return out
}

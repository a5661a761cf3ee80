package animation

import (
	"sync"
	"time"
)

// RebuildInterval is how often a running clock refreshes its arc-length table
// so that live edits to geometry or velocities are picked up. The current
// progress fraction is preserved across a rebuild; the same fraction may land
// on a slightly different spatial point if the total length changed.
const RebuildInterval = 2 * time.Second

// State is the explicit animation lifecycle state.
type State int

const (
	Stopped State = iota
	Running
	Paused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Clock is a cooperative animation driver: the caller invokes Tick once per
// frame and the clock maps accumulated wall-clock time onto the arc-length
// table. Pause freezes elapsed-time accounting without discarding the table;
// Stop resets progress to zero.
type Clock struct {
	mu sync.Mutex

	build func() *Table
	table *Table

	state       State
	accumulated time.Duration // elapsed before the last resume
	resumedAt   time.Time
	rebuiltAt   time.Time
}

// NewClock creates a stopped clock. build produces a fresh table from the
// current drawing state and is called on Start and at every rebuild boundary.
func NewClock(build func() *Table) *Clock {
	return &Clock{build: build}
}

// State returns the current lifecycle state.
func (c *Clock) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start builds the table and begins the traversal at progress zero.
func (c *Clock) Start(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table = c.build()
	c.accumulated = 0
	c.resumedAt = now
	c.rebuiltAt = now
	c.state = Running
}

// Pause freezes elapsed-time accounting, keeping the built table.
func (c *Clock) Pause(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Running {
		return
	}
	c.accumulated += now.Sub(c.resumedAt)
	c.state = Paused
}

// Resume continues a paused traversal from its preserved progress.
func (c *Clock) Resume(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Paused {
		return
	}
	c.resumedAt = now
	c.state = Running
}

// Stop halts the traversal and resets progress to zero.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Stopped
	c.accumulated = 0
}

// Tick computes the current position for the frame at now. It returns the
// interpolated sample, the progress fraction in [0,1] and whether the
// traversal has finished. A stopped clock reports progress zero.
func (c *Clock) Tick(now time.Time) (Sample, float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.table == nil || c.state == Stopped {
		return Sample{}, 0, false
	}

	elapsed := c.accumulated
	if c.state == Running {
		elapsed += now.Sub(c.resumedAt)

		if now.Sub(c.rebuiltAt) >= RebuildInterval {
			elapsed = c.rebuildLocked(now, elapsed)
		}
	}

	seconds := elapsed.Seconds()
	pos := c.table.PositionAtTime(seconds)

	progress := 1.0
	if c.table.TotalTime > 0 {
		progress = seconds / c.table.TotalTime
		if progress > 1 {
			progress = 1
		}
	}
	return pos, progress, seconds >= c.table.TotalTime
}

// rebuildLocked swaps in a fresh table, remapping the elapsed time so the
// progress fraction is preserved. This is a re-synchronization, not a
// positional continuity guarantee.
func (c *Clock) rebuildLocked(now time.Time, elapsed time.Duration) time.Duration {
	progress := 0.0
	if c.table.TotalTime > 0 {
		progress = elapsed.Seconds() / c.table.TotalTime
		if progress > 1 {
			progress = 1
		}
	}

	c.table = c.build()
	c.rebuiltAt = now

	remapped := time.Duration(progress * c.table.TotalTime * float64(time.Second))
	c.accumulated = remapped
	c.resumedAt = now
	return remapped
}

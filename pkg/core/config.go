package core

// PipelineConfig carries the geometry-processing thresholds. All distances are
// in work units.
type PipelineConfig struct {
	SmoothingFactor    float64 // Laplacian blend factor, 0..1
	MinDist            float64 // minimum point spacing after resampling
	MaxDist            float64 // maximum point spacing on straight runs
	CurvatureThreshold float64 // normalized turn angle above which a peak is a corner
	DefaultVelocity    float64 // feed attached to new processed points
}

// KukaConfig holds the KUKA KRL generation parameters.
type KukaConfig struct {
	ToolIndex      int
	BaseIndex      int
	AngleA         float64
	AngleB         float64
	AngleC         float64
	Status         int
	Turn           int
	ApproachOffset float64 // perpendicular offset of the AP/EP bracket points
	OutputSignal   bool    // toggle $OUT around each path's spline block
	OutputSignalID int
}

// FanucConfig holds the FANUC TP generation parameters.
type FanucConfig struct {
	UserFrame int
	UserTool  int
	Config    string  // CONFIG string written verbatim, e.g. "N U T, 0, 0, 0"
	CNT       int     // blend value for non-precise terminations, 0..100
	AngleW    float64 // fixed tool orientation, degrees
	AngleP    float64
	AngleR    float64
}

// RobotConfig aggregates the per-dialect parameters plus the selected dialect.
type RobotConfig struct {
	Dialect            Dialect
	ProgramName        string
	TransitionVelocity float64 // default feed on synthesized transition points
	Clearance          float64 // default perpendicular clearance for transitions
	Kuka               KukaConfig
	Fanuc              FanucConfig
}

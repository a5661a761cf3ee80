// Package config loads application configuration from a JSON file via viper
// and exposes typed views of it for the pipeline, the emitters and storage.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/robosketch/engine/pkg/core"
)

// StorageConfig selects and parameterizes the program archive backend.
type StorageConfig struct {
	Type   string       // "memory" or "sqlite"
	Memory MemoryConfig
	Sqlite SqliteConfig
}

// MemoryConfig holds in-memory archive settings.
type MemoryConfig struct {
	OutputDir string `json:"outputDir" mapstructure:"outputDir"`
}

// SqliteConfig holds SQLite archive settings.
type SqliteConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// Load reads configuration from the JSON config file and sets default values.
// configDir is the directory containing the config file. A missing file is
// not an error; defaults apply.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./robosketch-logs")

	viper.SetDefault("smoothing.factor", 0.5)
	viper.SetDefault("resampling.minDist", 2.0)
	viper.SetDefault("resampling.maxDist", 10.0)
	viper.SetDefault("resampling.curvatureThreshold", 0.1)

	viper.SetDefault("defaults.velocity", 100.0)
	viper.SetDefault("defaults.transitionVelocity", 200.0)

	viper.SetDefault("workplane", "XY")
	viper.SetDefault("transition.clearance", 50.0)

	viper.SetDefault("envelope.enabled", false)
	viper.SetDefault("envelope.minX", 0.0)
	viper.SetDefault("envelope.minY", 0.0)
	viper.SetDefault("envelope.maxX", 1000.0)
	viper.SetDefault("envelope.maxY", 1000.0)

	viper.SetDefault("robot.dialect", "kuka")
	viper.SetDefault("robot.programName", "ROBOSKETCH")

	viper.SetDefault("kuka.toolIndex", 1)
	viper.SetDefault("kuka.baseIndex", 1)
	viper.SetDefault("kuka.angles.a", 0.0)
	viper.SetDefault("kuka.angles.b", 90.0)
	viper.SetDefault("kuka.angles.c", 0.0)
	viper.SetDefault("kuka.status", 2)
	viper.SetDefault("kuka.turn", 35)
	viper.SetDefault("kuka.approachOffset", 100.0)
	viper.SetDefault("kuka.outputSignal.enabled", false)
	viper.SetDefault("kuka.outputSignal.id", 1)

	viper.SetDefault("fanuc.userFrame", 1)
	viper.SetDefault("fanuc.userTool", 1)
	viper.SetDefault("fanuc.config", "N U T, 0, 0, 0")
	viper.SetDefault("fanuc.cnt", 100)
	viper.SetDefault("fanuc.angles.w", 0.0)
	viper.SetDefault("fanuc.angles.p", 0.0)
	viper.SetDefault("fanuc.angles.r", 0.0)

	viper.SetDefault("storage.type", "memory")
	viper.SetDefault("storage.memory.outputDir", "./programs")
	viper.SetDefault("storage.sqlite.path", "./robosketch.db")

	viper.SetConfigName("robosketch.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// Pipeline returns the geometry processing thresholds.
func Pipeline() core.PipelineConfig {
	return core.PipelineConfig{
		SmoothingFactor:    viper.GetFloat64("smoothing.factor"),
		MinDist:            viper.GetFloat64("resampling.minDist"),
		MaxDist:            viper.GetFloat64("resampling.maxDist"),
		CurvatureThreshold: viper.GetFloat64("resampling.curvatureThreshold"),
		DefaultVelocity:    viper.GetFloat64("defaults.velocity"),
	}
}

// Robot returns the dialect selection and per-dialect parameters.
func Robot() (core.RobotConfig, error) {
	dialect, err := core.ParseDialect(viper.GetString("robot.dialect"))
	if err != nil {
		return core.RobotConfig{}, err
	}
	return core.RobotConfig{
		Dialect:            dialect,
		ProgramName:        viper.GetString("robot.programName"),
		TransitionVelocity: viper.GetFloat64("defaults.transitionVelocity"),
		Clearance:          viper.GetFloat64("transition.clearance"),
		Kuka: core.KukaConfig{
			ToolIndex:      viper.GetInt("kuka.toolIndex"),
			BaseIndex:      viper.GetInt("kuka.baseIndex"),
			AngleA:         viper.GetFloat64("kuka.angles.a"),
			AngleB:         viper.GetFloat64("kuka.angles.b"),
			AngleC:         viper.GetFloat64("kuka.angles.c"),
			Status:         viper.GetInt("kuka.status"),
			Turn:           viper.GetInt("kuka.turn"),
			ApproachOffset: viper.GetFloat64("kuka.approachOffset"),
			OutputSignal:   viper.GetBool("kuka.outputSignal.enabled"),
			OutputSignalID: viper.GetInt("kuka.outputSignal.id"),
		},
		Fanuc: core.FanucConfig{
			UserFrame: viper.GetInt("fanuc.userFrame"),
			UserTool:  viper.GetInt("fanuc.userTool"),
			Config:    viper.GetString("fanuc.config"),
			CNT:       viper.GetInt("fanuc.cnt"),
			AngleW:    viper.GetFloat64("fanuc.angles.w"),
			AngleP:    viper.GetFloat64("fanuc.angles.p"),
			AngleR:    viper.GetFloat64("fanuc.angles.r"),
		},
	}, nil
}

// WorkPlane returns the configured drawing plane.
func WorkPlane() (core.WorkPlane, error) {
	return core.ParseWorkPlane(viper.GetString("workplane"))
}

// EnvelopeEnabled reports whether the working-envelope boundary check is on.
func EnvelopeEnabled() bool {
	return viper.GetBool("envelope.enabled")
}

// EnvelopeBounds returns the working envelope corners (minX, minY, maxX, maxY).
func EnvelopeBounds() (float64, float64, float64, float64) {
	return viper.GetFloat64("envelope.minX"),
		viper.GetFloat64("envelope.minY"),
		viper.GetFloat64("envelope.maxX"),
		viper.GetFloat64("envelope.maxY")
}

// Storage returns the program archive settings.
func Storage() StorageConfig {
	return StorageConfig{
		Type: viper.GetString("storage.type"),
		Memory: MemoryConfig{
			OutputDir: viper.GetString("storage.memory.outputDir"),
		},
		Sqlite: SqliteConfig{
			Path: viper.GetString("storage.sqlite.path"),
		},
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// Package storage archives generated programs behind a pluggable backend:
// in-memory with file output, or SQLite for a durable history.
package storage

import (
	"github.com/robosketch/engine/internal/model"
)

// Backend is the interface all archive implementations satisfy.
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Archival
	SaveProgram(rec *model.ProgramRecord) error
	ListPrograms() ([]model.ProgramRecord, error)
}

// Package memory implements the archive backend in memory, optionally writing
// each program to a file in the configured output directory.
package memory

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/robosketch/engine/internal/model"
)

// Backend keeps archived programs in memory and mirrors them to disk.
type Backend struct {
	mu        sync.Mutex
	outputDir string
	records   []model.ProgramRecord
	nextID    uint
}

// New creates a memory backend. outputDir may be empty to skip file output.
func New(outputDir string) *Backend {
	return &Backend{outputDir: outputDir, nextID: 1}
}

// Init creates the output directory if file output is enabled.
func (b *Backend) Init() error {
	if b.outputDir == "" {
		return nil
	}
	if err := os.MkdirAll(b.outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// Close is a no-op for the memory backend.
func (b *Backend) Close() error { return nil }

// SaveProgram records the program and writes it next to earlier exports.
func (b *Backend) SaveProgram(rec *model.ProgramRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	rec.ID = b.nextID
	b.nextID++
	b.records = append(b.records, *rec)

	if b.outputDir == "" {
		return nil
	}
	path := filepath.Join(b.outputDir, rec.FileName)
	if err := os.WriteFile(path, []byte(rec.Text), 0o644); err != nil {
		return fmt.Errorf("writing program file: %w", err)
	}
	return nil
}

// ListPrograms returns the archived programs in save order.
func (b *Backend) ListPrograms() ([]model.ProgramRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.ProgramRecord, len(b.records))
	copy(out, b.records)
	return out, nil
}

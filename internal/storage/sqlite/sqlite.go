// Package sqlite implements the archive backend on a SQLite database file.
package sqlite

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/robosketch/engine/internal/model"
)

// Backend stores archived programs in SQLite via GORM.
type Backend struct {
	db   *gorm.DB
	path string
}

// New opens (or creates) the database at path. An empty path uses a shared
// in-memory database, useful in tests.
func New(path string) (*Backend, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return &Backend{db: db, path: path}, nil
}

// Init migrates the schema.
func (b *Backend) Init() error {
	if err := b.db.AutoMigrate(&model.ProgramRecord{}); err != nil {
		return fmt.Errorf("migrating program records: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (b *Backend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveProgram inserts one archived export.
func (b *Backend) SaveProgram(rec *model.ProgramRecord) error {
	if err := b.db.Create(rec).Error; err != nil {
		return fmt.Errorf("saving program record: %w", err)
	}
	return nil
}

// ListPrograms returns all archived exports, oldest first.
func (b *Backend) ListPrograms() ([]model.ProgramRecord, error) {
	var records []model.ProgramRecord
	if err := b.db.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("listing program records: %w", err)
	}
	return records, nil
}

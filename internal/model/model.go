// Package model holds the persisted record types of the program archive.
package model

import "gorm.io/gorm"

// ProgramRecord is one archived program export.
type ProgramRecord struct {
	gorm.Model
	SessionName string
	Dialect     string
	FileName    string
	PointCount  int
	Text        string
}

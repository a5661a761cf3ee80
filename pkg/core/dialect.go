package core

import (
	"fmt"
	"strings"
)

// Dialect identifies a robot-controller program dialect. KUKA and FANUC are
// fully implemented; ABB and Yaskawa are explicit stub variants that generate
// a marked placeholder rather than being absent cases.
type Dialect int

const (
	DialectKUKA Dialect = iota
	DialectFANUC
	DialectABB
	DialectYaskawa
)

// String returns the lowercase dialect name.
func (d Dialect) String() string {
	switch d {
	case DialectKUKA:
		return "kuka"
	case DialectFANUC:
		return "fanuc"
	case DialectABB:
		return "abb"
	case DialectYaskawa:
		return "yaskawa"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// FileExtension returns the program file extension for the dialect, including
// the leading dot.
func (d Dialect) FileExtension() string {
	switch d {
	case DialectKUKA:
		return ".src"
	case DialectFANUC:
		return ".ls"
	case DialectABB:
		return ".mod"
	case DialectYaskawa:
		return ".jbi"
	default:
		return ".txt"
	}
}

// ParseDialect parses a dialect name, case-insensitively.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kuka":
		return DialectKUKA, nil
	case "fanuc":
		return DialectFANUC, nil
	case "abb":
		return DialectABB, nil
	case "yaskawa":
		return DialectYaskawa, nil
	default:
		return DialectKUKA, fmt.Errorf("unknown robot dialect: %q", s)
	}
}

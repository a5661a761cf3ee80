// Package parser reads raw stroke samples from JSON input. Two shapes are
// accepted: bare coordinate arrays "[[x,y,t],...]" (t optional) and object
// arrays "[{"x":..,"y":..,"timestamp":..},...]".
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/robosketch/engine/pkg/core"
)

// ErrTooFewPoints is returned when a stroke has fewer than 2 samples.
var ErrTooFewPoints = errors.New("stroke must have at least 2 points")

// ErrBadCoordinate is returned for non-finite or malformed coordinates.
var ErrBadCoordinate = errors.New("invalid coordinate")

// strokeSample mirrors the object form of a stroke sample.
type strokeSample struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Timestamp int64   `json:"timestamp"`
}

// ParseStroke parses one stroke from JSON.
func ParseStroke(input []byte) ([]core.RawPoint, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(input, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse stroke JSON: %w", err)
	}
	if len(raw) < 2 {
		return nil, ErrTooFewPoints
	}

	points := make([]core.RawPoint, 0, len(raw))
	for i, elem := range raw {
		p, err := parseSample(elem)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return nil, fmt.Errorf("sample %d: %w", i, ErrBadCoordinate)
		}
		points = append(points, p)
	}
	return points, nil
}

// parseSample accepts either a coordinate array or a sample object.
func parseSample(elem json.RawMessage) (core.RawPoint, error) {
	var coords []float64
	if err := json.Unmarshal(elem, &coords); err == nil {
		if len(coords) < 2 {
			return core.RawPoint{}, ErrBadCoordinate
		}
		p := core.RawPoint{X: coords[0], Y: coords[1]}
		if len(coords) > 2 {
			p.Timestamp = int64(coords[2])
		}
		return p, nil
	}

	var s strokeSample
	if err := json.Unmarshal(elem, &s); err != nil {
		return core.RawPoint{}, fmt.Errorf("%w: %v", ErrBadCoordinate, err)
	}
	return core.RawPoint{X: s.X, Y: s.Y, Timestamp: s.Timestamp}, nil
}

// ToLineString builds a geometry line string from a stroke for display and
// measurement.
func ToLineString(points []core.RawPoint) (geom.LineString, error) {
	if len(points) < 2 {
		return geom.LineString{}, ErrTooFewPoints
	}
	flat := make([]float64, 0, len(points)*2)
	for _, p := range points {
		flat = append(flat, p.X, p.Y)
	}
	seq := geom.NewSequence(flat, geom.DimXY)
	return geom.NewLineString(seq), nil
}

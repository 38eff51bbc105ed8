// Package arch solves the geometry of a segmented timber arch bridge.
//
// A bridge is built from identical square-section stobs. Each segment of
// the arch is one stob seated on two cross timbers, so the polygonal arch
// is fixed by the stob length, its width and the depth of the rebate cut
// to locate the cross timbers. Solve finds the arch radius and segment
// angle for a stob; Compute turns them into span, rise and a bill of
// materials for a given layout.
package arch

import (
	"fmt"
	"math"
)

// TimberSpec describes one stob (all dimensions in mm)
type TimberSpec struct {
	PostLength  float64 `json:"post_length"`
	PostWidth   float64 `json:"post_width"`
	RebateDepth float64 `json:"rebate_depth"` // slot depth locating the cross timber
}

// Validate checks the stob dimensions the solver relies on
func (t TimberSpec) Validate() error {
	switch {
	case !finite(t.PostLength) || t.PostLength <= 0:
		return &DegenerateGeometryError{Reason: fmt.Sprintf("post length must be positive, got %.2f", t.PostLength)}
	case !finite(t.PostWidth) || t.PostWidth <= 0:
		return &DegenerateGeometryError{Reason: fmt.Sprintf("post width must be positive, got %.2f", t.PostWidth)}
	case !finite(t.RebateDepth) || t.RebateDepth < 0:
		return &DegenerateGeometryError{Reason: fmt.Sprintf("rebate depth must not be negative, got %.2f", t.RebateDepth)}
	case t.RebateDepth >= t.PostWidth:
		return &DegenerateGeometryError{Reason: fmt.Sprintf("rebate depth %.2f must be less than post width %.2f", t.RebateDepth, t.PostWidth)}
	}
	return nil
}

// SegmentGeometry is the solved shape of one arch segment
type SegmentGeometry struct {
	InternalRadius float64 `json:"internal_radius"` // mm, to the base of the cross member
	SegmentAngle   float64 `json:"segment_angle"`   // radians subtended by one stob

	// Iterations taken by the solver to converge
	Iterations int `json:"iterations,omitempty"`
}

// BridgeLayout is the caller's choice of arch size
type BridgeLayout struct {
	Segments  int `json:"segments"`   // segments per arch
	DeckWidth int `json:"deck_width"` // posts across the deck
}

// Validate checks that the layout describes at least one segment and one post across
func (l BridgeLayout) Validate() error {
	if l.Segments < 1 {
		return fmt.Errorf("%w: segments per arch must be at least 1, got %d", ErrInvalidLayout, l.Segments)
	}
	if l.DeckWidth < 1 {
		return fmt.Errorf("%w: posts across must be at least 1, got %d", ErrInvalidLayout, l.DeckWidth)
	}
	return nil
}

// PieceCounts is the stob estimate broken down by use.
// Counts are estimator arithmetic and may be fractional.
type PieceCounts struct {
	Longs       float64 `json:"longs"`
	Ends        float64 `json:"ends"`
	CrossPieces float64 `json:"cross_pieces"`
	Uprights    float64 `json:"uprights"`
}

// Total returns the number of stobs required
func (p PieceCounts) Total() float64 {
	return p.Longs + p.Ends + p.CrossPieces + p.Uprights
}

// BridgeMetrics holds the derived overall dimensions and quantities
type BridgeMetrics struct {
	EndAngle      float64     `json:"end_angle"` // half-arch angle (radians)
	Span          float64     `json:"span"`      // mm
	Rise          float64     `json:"rise"`      // soffit height (mm)
	Pieces        PieceCounts `json:"pieces"`
	PostsRequired float64     `json:"posts_required"`
	IsOverarched  bool        `json:"is_overarched"`
}

// PostsToOrder rounds the fractional estimate up to whole stobs
func (m BridgeMetrics) PostsToOrder() int {
	return int(math.Ceil(m.PostsRequired))
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

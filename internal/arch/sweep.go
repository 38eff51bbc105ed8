package arch

import (
	"errors"
	"math"
)

// SweepRow is the outcome for one segment count
type SweepRow struct {
	Segments int
	Metrics  BridgeMetrics // zero unless the row is feasible
	Err      error         // *OverarchedError for infeasible rows
}

// Feasible reports whether the segment count gives a valid arch
func (r SweepRow) Feasible() bool {
	return r.Err == nil
}

// Sweep computes metrics for 1..maxSegments segments with the same stobs.
// Overarched rows are kept, with Err set, so callers can show where the
// construction stops working.
func Sweep(geometry SegmentGeometry, deckWidth, maxSegments int) []SweepRow {
	if maxSegments < 1 {
		return nil
	}
	rows := make([]SweepRow, 0, maxSegments)
	for n := 1; n <= maxSegments; n++ {
		metrics, err := Compute(geometry, BridgeLayout{Segments: n, DeckWidth: deckWidth})
		row := SweepRow{Segments: n, Err: err}
		if err == nil {
			row.Metrics = metrics
		} else {
			row.Metrics.IsOverarched = errors.Is(err, ErrOverarched)
		}
		rows = append(rows, row)
	}
	return rows
}

// SegmentLimit caps the segment count reported by MaxSegments
const SegmentLimit = math.MaxInt32

// MaxSegments returns the largest segment count whose half-arch stays
// below vertical, or 0 if the segment angle is not positive. Angles so
// small that the count would exceed SegmentLimit return SegmentLimit.
func MaxSegments(geometry SegmentGeometry) int {
	if geometry.SegmentAngle <= 0 || !finite(geometry.SegmentAngle) {
		return 0
	}
	k := math.Pi / geometry.SegmentAngle
	if math.IsInf(k, 0) || k >= SegmentLimit {
		return SegmentLimit
	}

	// Ceil(k)-1 is exact up to rounding in k, so at most one step either way
	n := int(math.Ceil(k)) - 1
	for i := 0; i < 2 && n > 0 && IsOverarched(geometry, BridgeLayout{Segments: n}); i++ {
		n--
	}
	for i := 0; i < 2 && n < SegmentLimit && !IsOverarched(geometry, BridgeLayout{Segments: n + 1}); i++ {
		n++
	}
	return n
}

package arch

import (
	"fmt"
	"math"
)

// Compute derives span, rise and stob counts for a layout of solved
// segments. Zero segments give the flat limit; negative counts return
// ErrInvalidLayout. An arch whose half angle reaches 90° returns an
// *OverarchedError and no metrics.
func Compute(geometry SegmentGeometry, layout BridgeLayout) (BridgeMetrics, error) {
	if layout.Segments < 0 || layout.DeckWidth < 0 {
		return BridgeMetrics{}, fmt.Errorf("%w: negative count (segments %d, posts across %d)",
			ErrInvalidLayout, layout.Segments, layout.DeckWidth)
	}

	segments := float64(layout.Segments)
	endAngle := segments * geometry.SegmentAngle / 2
	if endAngle >= math.Pi/2 {
		return BridgeMetrics{}, &OverarchedError{Segments: layout.Segments, EndAngle: endAngle, Geometry: geometry}
	}

	pieces := CountPieces(layout)
	return BridgeMetrics{
		EndAngle:      endAngle,
		Span:          2 * geometry.InternalRadius * math.Sin(endAngle),
		Rise:          geometry.InternalRadius * (1 - math.Cos(endAngle)),
		Pieces:        pieces,
		PostsRequired: pieces.Total(),
	}, nil
}

// CountPieces estimates the stobs needed for a layout. No rounding is
// applied, so an odd segment count gives half a cross piece.
func CountPieces(layout BridgeLayout) PieceCounts {
	segments := float64(layout.Segments)
	return PieceCounts{
		Longs:       float64(layout.DeckWidth) * segments / 2,
		Ends:        2,
		CrossPieces: (segments - 1) / 2,
		Uprights:    segments + 1,
	}
}

// IsOverarched reports whether the layout carries the arch to or past vertical
func IsOverarched(geometry SegmentGeometry, layout BridgeLayout) bool {
	return float64(layout.Segments)*geometry.SegmentAngle/2 >= math.Pi/2
}

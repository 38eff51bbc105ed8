package arch

import "math"

// Point is a 2-D coordinate in the plane of the arch (mm).
// X runs along the bridge, Y is up.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Profile is the cross-section outline of one timber piece, drawn in
// the plane of the arch and extruded across the deck
type Profile struct {
	Name      string  `json:"name"`
	Vertices  []Point `json:"vertices"`  // closed implicitly, last joins first
	Extrusion float64 `json:"extrusion"` // mm
}

// Area returns the outline area (mm²) using the shoelace formula
func (p Profile) Area() float64 {
	area, _, _ := p.areaAndCentroid()
	return area
}

// Centroid returns the centroid of the outline (mm)
func (p Profile) Centroid() Point {
	_, cx, cy := p.areaAndCentroid()
	return Point{X: cx, Y: cy}
}

// Volume returns the extruded volume (mm³)
func (p Profile) Volume() float64 {
	return p.Area() * p.Extrusion
}

func (p Profile) areaAndCentroid() (area, cx, cy float64) {
	n := len(p.Vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
		signedArea += cross
		sumX += (p.Vertices[i].X + p.Vertices[j].X) * cross
		sumY += (p.Vertices[i].Y + p.Vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// Profile names
const (
	DeckPiece     = "Deck piece"
	EndDeckPiece  = "End deck piece"
	CrossPiece    = "Cross piece"
	EndCrossPiece = "End cross piece"
)

// Profiles returns the outlines of the four piece types, positioned at
// the crown of an arch of the solved radius. Long pieces are chamfered
// underneath by the segment angle so neighbouring segments meet.
func Profiles(spec TimberSpec, geometry SegmentGeometry) []Profile {
	return []Profile{
		deckPieceProfile(spec, geometry),
		endDeckPieceProfile(spec, geometry),
		crossPieceProfile(spec, geometry),
		endCrossPieceProfile(spec, geometry),
	}
}

func deckPieceProfile(spec TimberSpec, g SegmentGeometry) Profile {
	w, r, rebate := spec.PostWidth, g.InternalRadius, spec.RebateDepth
	fillet := math.Tan(g.SegmentAngle) * w
	topHalf := spec.PostLength / 2
	bottomHalf := topHalf - fillet
	slot := w / 2
	return Profile{
		Name: DeckPiece,
		Vertices: []Point{
			{-topHalf, w + r},
			{-slot, w + r},
			{-slot, w + r - rebate},
			{slot, w + r - rebate},
			{slot, w + r},
			{topHalf, w + r},
			{bottomHalf, r},
			{-bottomHalf, r},
		},
		Extrusion: w,
	}
}

func endDeckPieceProfile(spec TimberSpec, g SegmentGeometry) Profile {
	w, r, rebate := spec.PostWidth, g.InternalRadius, spec.RebateDepth
	fillet := math.Tan(g.SegmentAngle) * w
	topHalf := spec.PostLength / 2
	bottomHalf := topHalf - fillet
	return Profile{
		Name: EndDeckPiece,
		Vertices: []Point{
			{-topHalf, w + r},
			{-w, w + r},
			{-w, w + r - rebate},
			{0, w + r - rebate},
			{-bottomHalf, r},
		},
		Extrusion: w,
	}
}

func crossPieceProfile(spec TimberSpec, g SegmentGeometry) Profile {
	w := spec.PostWidth
	halfWidth := w / 2
	side := w - math.Tan(g.SegmentAngle)*halfWidth
	base := g.InternalRadius + w - spec.RebateDepth
	return Profile{
		Name: CrossPiece,
		Vertices: []Point{
			{0, w + base},
			{-halfWidth, side + base},
			{-halfWidth, base},
			{halfWidth, base},
			{halfWidth, side + base},
		},
		Extrusion: spec.PostLength / 2,
	}
}

func endCrossPieceProfile(spec TimberSpec, g SegmentGeometry) Profile {
	w := spec.PostWidth
	side := w - math.Tan(g.SegmentAngle)*w
	base := g.InternalRadius + w - spec.RebateDepth
	return Profile{
		Name: EndCrossPiece,
		Vertices: []Point{
			{0, w + base},
			{0, base},
			{-w, base},
			{-w, side + base},
		},
		Extrusion: spec.PostLength,
	}
}

// Nodes returns the vertices of the polygonal arch soffit, from one
// springing point to the other, relative to the springing line. The
// first and last nodes are at (∓Span/2, 0).
func Nodes(geometry SegmentGeometry, layout BridgeLayout) []Point {
	if layout.Segments < 1 {
		return nil
	}
	r := geometry.InternalRadius
	endAngle := float64(layout.Segments) * geometry.SegmentAngle / 2
	baseline := r * math.Cos(endAngle)

	nodes := make([]Point, layout.Segments+1)
	for i := range nodes {
		theta := -endAngle + float64(i)*geometry.SegmentAngle
		nodes[i] = Point{X: r * math.Sin(theta), Y: r*math.Cos(theta) - baseline}
	}
	return nodes
}

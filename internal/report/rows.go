// Package report exports a bridge design as a spreadsheet or PDF.
package report

import (
	"fmt"

	"github.com/alexiusacademia/gotab/internal/arch"
	"github.com/alexiusacademia/gotab/internal/timber"
)

// Options controls what goes into a report
type Options struct {
	Name    string  // bridge name, shown as the title when set
	Density float64 // kg/m³ for profile masses; zero means timber.Density
}

func (o Options) density() float64 {
	if o.Density > 0 {
		return o.Density
	}
	return timber.Density
}

func (o Options) title() string {
	if o.Name != "" {
		return o.Name
	}
	return "Timber Arch Bridge"
}

// Section headings
const (
	SectionInput    = "Input"
	SectionGeometry = "Geometry"
	SectionOverall  = "Overall"
	SectionMaterial = "Bill of materials"
)

// Row is one reported quantity
type Row struct {
	Section   string
	Label     string
	Value     float64
	Unit      string
	Precision int // decimal places shown
}

// Formatted returns the value with its unit at the row's precision
func (r Row) Formatted() string {
	switch r.Unit {
	case "":
		return fmt.Sprintf("%.*f", r.Precision, r.Value)
	case "°":
		return fmt.Sprintf("%.*f°", r.Precision, r.Value)
	}
	return fmt.Sprintf("%.*f %s", r.Precision, r.Value, r.Unit)
}

// Rows lists the reported quantities of a design in display order
func Rows(r *arch.Result) []Row {
	m := r.Metrics
	return []Row{
		{SectionInput, "Post length", r.Timber.PostLength, "mm", 0},
		{SectionInput, "Post width", r.Timber.PostWidth, "mm", 0},
		{SectionInput, "Rebate", r.Timber.RebateDepth, "mm", 0},
		{SectionInput, "Segments per arch", float64(r.Layout.Segments), "", 0},
		{SectionInput, "Posts across", float64(r.Layout.DeckWidth), "", 0},

		{SectionGeometry, "Radius", r.Geometry.InternalRadius / 1000, "m", 3},
		{SectionGeometry, "Segment angle", timber.Degrees(r.Geometry.SegmentAngle), "°", 3},
		{SectionGeometry, "Iterations", float64(r.Geometry.Iterations), "", 0},

		{SectionOverall, "Span", m.Span / 1000, "m", 3},
		{SectionOverall, "Soffit height", m.Rise / 1000, "m", 3},
		{SectionOverall, "Half-arch angle", timber.Degrees(m.EndAngle), "°", 3},

		{SectionMaterial, "Longs", m.Pieces.Longs, "", 1},
		{SectionMaterial, "Ends", m.Pieces.Ends, "", 1},
		{SectionMaterial, "Cross pieces", m.Pieces.CrossPieces, "", 1},
		{SectionMaterial, "Uprights", m.Pieces.Uprights, "", 1},
		{SectionMaterial, "Posts needed", m.PostsRequired, "", 1},
		{SectionMaterial, "Posts to order", float64(m.PostsToOrder()), "", 0},
		{SectionMaterial, "Timber mass", r.TimberMass, "kg", 1},
	}
}

// ProfileRow is the reported size of one piece type
type ProfileRow struct {
	Name      string
	Area      float64 // mm²
	Extrusion float64 // mm
	Volume    float64 // m³
	Mass      float64 // kg
}

// ProfileRows summarises piece outlines at the report density
func ProfileRows(profiles []arch.Profile, opts Options) []ProfileRow {
	rows := make([]ProfileRow, len(profiles))
	for i, p := range profiles {
		volume := p.Volume()
		rows[i] = ProfileRow{
			Name:      p.Name,
			Area:      p.Area(),
			Extrusion: p.Extrusion,
			Volume:    volume / 1e9,
			Mass:      timber.MassAt(volume, opts.density()),
		}
	}
	return rows
}

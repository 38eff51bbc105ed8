package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Outline is a closed timber piece outline for export
type Outline struct {
	Name     string
	Vertices []Point
}

var (
	timberColor  = color.RGBA{R: 139, G: 90, B: 43, A: 255}
	timberFill   = color.RGBA{R: 222, G: 184, B: 135, A: 200}
	circleColor  = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	baselineGray = color.Gray{Y: 128}
)

// ExportElevation exports the arch elevation to an image file.
// The format follows the extension (png, svg, pdf); anything else gets .png appended.
func ExportElevation(data ElevationData, filename string) error {
	if len(data.Nodes) < 2 {
		return fmt.Errorf("elevation needs at least 2 nodes, got %d", len(data.Nodes))
	}

	p := plot.New()
	p.Title.Text = "Timber Arch Elevation"
	p.X.Label.Text = "Distance from centre (mm)"
	p.Y.Label.Text = "Height above springing (mm)"

	// Circle the polygon approximates, through the nodes
	if data.Radius > 0 {
		endAngle := math.Asin(math.Min(1, data.Span/(2*data.Radius)))
		baseline := data.Radius * math.Cos(endAngle)
		const samples = 90
		arc := make(plotter.XYs, samples+1)
		for i := range arc {
			theta := -endAngle + 2*endAngle*float64(i)/samples
			arc[i] = plotter.XY{X: data.Radius * math.Sin(theta), Y: data.Radius*math.Cos(theta) - baseline}
		}
		arcLine, err := plotter.NewLine(arc)
		if err != nil {
			return err
		}
		arcLine.LineStyle.Width = vg.Points(1)
		arcLine.LineStyle.Color = circleColor
		arcLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(arcLine)
	}

	// Springing line
	baseLine, err := plotter.NewLine(plotter.XYs{
		{X: -data.Span/2 - data.Span*0.05, Y: 0},
		{X: data.Span/2 + data.Span*0.05, Y: 0},
	})
	if err != nil {
		return err
	}
	baseLine.LineStyle.Width = vg.Points(1)
	baseLine.LineStyle.Color = baselineGray
	p.Add(baseLine)

	// Polygonal arch
	soffit := make(plotter.XYs, len(data.Nodes))
	for i, n := range data.Nodes {
		soffit[i] = plotter.XY{X: n.X, Y: n.Y}
	}
	archLine, err := plotter.NewLine(soffit)
	if err != nil {
		return err
	}
	archLine.LineStyle.Width = vg.Points(2)
	archLine.LineStyle.Color = timberColor
	p.Add(archLine)

	crossTimbers, err := plotter.NewScatter(soffit)
	if err != nil {
		return err
	}
	crossTimbers.GlyphStyle.Color = timberColor
	crossTimbers.GlyphStyle.Radius = vg.Points(4)
	crossTimbers.GlyphStyle.Shape = draw.BoxGlyph{}
	p.Add(crossTimbers)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: 0, Y: data.Rise},
			{X: 0, Y: 0},
		},
		Labels: []string{
			fmt.Sprintf("rise %.3f m", data.Rise/1000),
			fmt.Sprintf("span %.3f m", data.Span/1000),
		},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	return save(p, 10*vg.Inch, 5*vg.Inch, filename)
}

// ExportProfiles exports the timber piece outlines side by side
func ExportProfiles(outlines []Outline, filename string) error {
	if len(outlines) == 0 {
		return fmt.Errorf("no profiles to export")
	}

	p := plot.New()
	p.Title.Text = "Timber Piece Profiles"
	p.X.Label.Text = "mm"
	p.Y.Label.Text = "mm"

	// Shift each outline so they sit next to each other on a common base
	offsetX := 0.0
	for _, o := range outlines {
		if len(o.Vertices) < 3 {
			continue
		}
		minX, maxX, minY := o.Vertices[0].X, o.Vertices[0].X, o.Vertices[0].Y
		for _, v := range o.Vertices {
			minX = math.Min(minX, v.X)
			maxX = math.Max(maxX, v.X)
			minY = math.Min(minY, v.Y)
		}

		pts := make(plotter.XYs, len(o.Vertices))
		for i, v := range o.Vertices {
			pts[i] = plotter.XY{X: v.X - minX + offsetX, Y: v.Y - minY}
		}
		poly, err := plotter.NewPolygon(pts)
		if err != nil {
			return err
		}
		poly.Color = timberFill
		poly.LineStyle.Color = timberColor
		poly.LineStyle.Width = vg.Points(1)
		p.Add(poly)

		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: offsetX, Y: -20}},
			Labels: []string{o.Name},
		})
		if err != nil {
			return err
		}
		p.Add(label)

		offsetX += maxX - minX + 100
	}

	return save(p, 10*vg.Inch, 4*vg.Inch, filename)
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

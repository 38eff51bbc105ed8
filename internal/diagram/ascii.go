package diagram

import (
	"fmt"
	"math"
	"strings"
)

// Point represents a 2D coordinate in the arch elevation (mm)
type Point struct {
	X float64
	Y float64
}

// ElevationData holds data for drawing the side view of an arch
type ElevationData struct {
	// Arch soffit vertices from springing to springing,
	// relative to the springing line
	Nodes []Point

	// Overall dimensions (mm)
	Span   float64
	Rise   float64
	Radius float64 // to base of cross member

	// Segment angle (radians)
	SegmentAngle float64
}

const (
	nodeMark    = '●'
	segmentMark = '·'
)

// DrawASCIIElevation creates an ASCII side view of the polygonal arch
func DrawASCIIElevation(data ElevationData, widthChars int) string {
	var sb strings.Builder

	if len(data.Nodes) < 2 || data.Span <= 0 {
		return ""
	}
	if widthChars < 20 {
		widthChars = 20
	}

	// Terminal cells are roughly twice as tall as they are wide
	scale := float64(widthChars-1) / data.Span
	heightChars := int(math.Round(data.Rise*scale/2)) + 1
	if heightChars < 2 {
		heightChars = 2
	}
	yScale := 0.0
	if data.Rise > 0 {
		yScale = float64(heightChars-1) / data.Rise
	}

	grid := make([][]rune, heightChars)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", widthChars))
	}

	cell := func(p Point) (row, col int) {
		col = int(math.Round((p.X + data.Span/2) * scale))
		row = heightChars - 1 - int(math.Round(p.Y*yScale))
		col = clamp(col, 0, widthChars-1)
		row = clamp(row, 0, heightChars-1)
		return row, col
	}

	// Segments first so nodes are drawn over them
	for i := 1; i < len(data.Nodes); i++ {
		a, b := data.Nodes[i-1], data.Nodes[i]
		r0, c0 := cell(a)
		r1, c1 := cell(b)
		steps := 2*max(abs(r1-r0), abs(c1-c0)) + 1
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			row, col := cell(Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)})
			grid[row][col] = segmentMark
		}
	}
	for _, n := range data.Nodes {
		row, col := cell(n)
		grid[row][col] = nodeMark
	}

	sb.WriteString("\n")
	sb.WriteString("  ARCH ELEVATION\n")
	sb.WriteString("  ──────────────\n\n")
	for _, line := range grid {
		sb.WriteString("  ")
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("▔", widthChars)))

	spanLabel := fmt.Sprintf(" Span = %.3f m ", data.Span/1000)
	arrow := widthChars - 2 - len([]rune(spanLabel))
	if arrow < 2 {
		arrow = 2
	}
	left := arrow / 2
	sb.WriteString(fmt.Sprintf("  ◄%s%s%s►\n", strings.Repeat("─", left), spanLabel, strings.Repeat("─", arrow-left)))

	// Legend
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %c = Cross timber (%d)\n", nodeMark, len(data.Nodes)))
	sb.WriteString(fmt.Sprintf("  Rise (soffit height) = %.3f m\n", data.Rise/1000))
	if data.Radius > 0 {
		sb.WriteString(fmt.Sprintf("  Radius = %.3f m, segment angle = %.3f°\n", data.Radius/1000, data.SegmentAngle*180/math.Pi))
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to width runes
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

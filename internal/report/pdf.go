package report

import (
	"fmt"
	"time"

	"github.com/alexiusacademia/gotab/internal/arch"
	"github.com/phpdave11/gofpdf"
)

// WritePDF saves a one-page design summary
func WritePDF(result *arch.Result, profiles []arch.Profile, opts Options, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(opts.title()))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section := ""
	for _, row := range Rows(result) {
		if row.Section != section {
			section = row.Section
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 12)
			pdf.Cell(0, 7, tr(section))
			pdf.Ln(7)
			pdf.SetFont("Helvetica", "", 11)
		}
		pdf.CellFormat(60, 6, tr(row.Label), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, tr(row.Formatted()), "", 1, "R", false, 0, "")
	}

	if len(profiles) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Piece profiles")
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "B", 10)
		for _, h := range []string{"Piece", "Area (mm²)", "Length (mm)", "Volume (m³)", "Mass (kg)"} {
			pdf.CellFormat(36, 6, tr(h), "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
		for _, p := range ProfileRows(profiles, opts) {
			pdf.CellFormat(36, 6, tr(p.Name), "", 0, "L", false, 0, "")
			pdf.CellFormat(36, 6, fmt.Sprintf("%.0f", p.Area), "", 0, "L", false, 0, "")
			pdf.CellFormat(36, 6, fmt.Sprintf("%.0f", p.Extrusion), "", 0, "L", false, 0, "")
			pdf.CellFormat(36, 6, fmt.Sprintf("%.5f", p.Volume), "", 0, "L", false, 0, "")
			pdf.CellFormat(36, 6, fmt.Sprintf("%.2f", p.Mass), "", 1, "L", false, 0, "")
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

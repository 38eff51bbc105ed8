package report

import (
	"fmt"

	"github.com/alexiusacademia/gotab/internal/arch"
	"github.com/xuri/excelize/v2"
)

// Sheet names
const (
	SheetBridge   = "Bridge"
	SheetProfiles = "Profiles"
)

// WriteXLSX saves the design and piece profiles as an Excel workbook
func WriteXLSX(result *arch.Result, profiles []arch.Profile, opts Options, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetBridge); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	numFmts := map[int]int{}
	numStyle := func(precision int) (int, error) {
		if id, ok := numFmts[precision]; ok {
			return id, nil
		}
		format := "0"
		if precision > 0 {
			format = fmt.Sprintf("0.%0*d", precision, 0)
		}
		id, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
		if err != nil {
			return 0, err
		}
		numFmts[precision] = id
		return id, nil
	}

	// Bridge sheet
	if err := f.SetCellValue(SheetBridge, "A1", opts.title()); err != nil {
		return err
	}
	header := []interface{}{"Section", "Item", "Value", "Unit"}
	if err := f.SetSheetRow(SheetBridge, "A2", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetBridge, "A1", "D2", bold); err != nil {
		return err
	}
	for i, row := range Rows(result) {
		line := i + 3
		values := []interface{}{row.Section, row.Label, row.Value, row.Unit}
		if err := f.SetSheetRow(SheetBridge, fmt.Sprintf("A%d", line), &values); err != nil {
			return err
		}
		style, err := numStyle(row.Precision)
		if err != nil {
			return err
		}
		cell := fmt.Sprintf("C%d", line)
		if err := f.SetCellStyle(SheetBridge, cell, cell, style); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetBridge, "A", "B", 20); err != nil {
		return err
	}

	// Profiles sheet
	if _, err := f.NewSheet(SheetProfiles); err != nil {
		return err
	}
	header = []interface{}{"Piece", "Area (mm²)", "Length (mm)", "Volume (m³)", "Mass (kg)"}
	if err := f.SetSheetRow(SheetProfiles, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetProfiles, "A1", "E1", bold); err != nil {
		return err
	}
	for i, p := range ProfileRows(profiles, opts) {
		values := []interface{}{p.Name, p.Area, p.Extrusion, p.Volume, p.Mass}
		if err := f.SetSheetRow(SheetProfiles, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetProfiles, "A", "E", 16); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

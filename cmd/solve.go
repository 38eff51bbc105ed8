package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gotab/internal/arch"
	"github.com/alexiusacademia/gotab/internal/diagram"
	"github.com/alexiusacademia/gotab/internal/report"
	"github.com/alexiusacademia/gotab/internal/timber"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	solveShowDiagram bool
	solveExportFile  string
	solveXLSXFile    string
	solvePDFFile     string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve arch geometry and quantities for a bridge",
	Long: `Solve the arch radius and segment angle for the given stobs, then
compute the span, soffit height and number of stobs needed.

A bridge whose segments would carry the arch to or past vertical is
reported as OVERARCHED and no quantities are produced.

Examples:
  # Default bridge: 6 segments, 7 across, 1800 x 75 stobs, 9 mm rebate
  gotab solve

  # Longer stobs with a deeper rebate
  gotab solve --length 2400 --width 100 --rebate 15 --segments 8 --across 5

  # From a config file, with diagram and reports
  gotab solve --config bridge.yaml --diagram -o arch.png --xlsx bridge.xlsx --pdf bridge.pdf`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	addTimberFlags(solveCmd)
	addLayoutFlags(solveCmd)

	// Output options
	solveCmd.Flags().BoolVar(&solveShowDiagram, "diagram", false, "Show ASCII arch elevation")
	solveCmd.Flags().StringVarP(&solveExportFile, "output", "o", "", "Export elevation to file (png, svg, pdf)")
	solveCmd.Flags().StringVar(&solveXLSXFile, "xlsx", "", "Write bill of materials workbook")
	solveCmd.Flags().StringVar(&solvePDFFile, "pdf", "", "Write PDF design summary")
}

func runSolve(cmd *cobra.Command, args []string) error {
	if err := applyFlags(cmd); err != nil {
		return err
	}

	spec := conf.TimberSpec()
	layout := conf.BridgeLayout()
	solver := conf.NewSolver(logger)

	result, err := arch.Design(solver, spec, layout, conf.Density)
	if err != nil {
		if errors.Is(err, arch.ErrOverarched) {
			printOverarched(layout, err)
		}
		return err
	}

	printDesign(result)

	profiles := arch.Profiles(spec, result.Geometry)
	elevation := elevationData(result)

	if solveShowDiagram {
		fmt.Println(diagram.DrawASCIIElevation(elevation, 60))
	}

	if solveExportFile != "" {
		if err := diagram.ExportElevation(elevation, solveExportFile); err != nil {
			logger.Error("failed to export diagram", zap.String("op", "cmd.solve"), zap.Error(err))
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Printf("Diagram exported to: %s\n", solveExportFile)
	}

	opts := report.Options{Name: conf.Name, Density: conf.Density}
	if solveXLSXFile != "" {
		if err := report.WriteXLSX(result, profiles, opts, solveXLSXFile); err != nil {
			logger.Error("failed to write workbook", zap.String("op", "cmd.solve"), zap.Error(err))
			return err
		}
		fmt.Printf("Workbook written to: %s\n", solveXLSXFile)
	}
	if solvePDFFile != "" {
		if err := report.WritePDF(result, profiles, opts, solvePDFFile); err != nil {
			logger.Error("failed to write pdf", zap.String("op", "cmd.solve"), zap.Error(err))
			return err
		}
		fmt.Printf("PDF written to: %s\n", solvePDFFile)
	}

	return nil
}

func printDesign(result *arch.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     TIMBER ARCH BRIDGE GEOMETRY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if conf.Name != "" {
		fmt.Printf("  Bridge: %s\n\n", conf.Name)
	}

	section := ""
	var w *tabwriter.Writer
	for _, row := range report.Rows(result) {
		if row.Section != section {
			if w != nil {
				w.Flush()
				fmt.Println()
			}
			section = row.Section
			fmt.Printf("%s:\n", strings.ToUpper(section))
			fmt.Println("───────────────────────────────────────────────────────────────")
			w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		}
		fmt.Fprintf(w, "  %s:\t%s\n", row.Label, row.Formatted())
	}
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("BRIDGE", []string{
		fmt.Sprintf("Radius : %.3f m", result.Geometry.InternalRadius/1000),
		fmt.Sprintf("Segment Angle : %.3f°", timber.Degrees(result.Geometry.SegmentAngle)),
		fmt.Sprintf("Span : %.3f m", result.Metrics.Span/1000),
		fmt.Sprintf("Soffit height : %.3f m", result.Metrics.Rise/1000),
		fmt.Sprintf("%.1f posts needed", result.Metrics.PostsRequired),
	}))
	fmt.Println()

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  %s Half-arch angle %.3f° is below 90°\n", color.GreenString("✓ OK"), timber.Degrees(result.Metrics.EndAngle))
	fmt.Println()
}

func printOverarched(layout arch.BridgeLayout, err error) {
	fmt.Println()
	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  %s %v\n", color.RedString("✗ OVERARCHED"), err)

	var over *arch.OverarchedError
	if errors.As(err, &over) {
		fmt.Printf("  These stobs allow at most %d segments (requested %d).\n",
			arch.MaxSegments(over.Geometry), layout.Segments)
	}
	fmt.Println()
}

func elevationData(result *arch.Result) diagram.ElevationData {
	nodes := arch.Nodes(result.Geometry, result.Layout)
	points := make([]diagram.Point, len(nodes))
	for i, n := range nodes {
		points[i] = diagram.Point{X: n.X, Y: n.Y}
	}
	return diagram.ElevationData{
		Nodes:        points,
		Span:         result.Metrics.Span,
		Rise:         result.Metrics.Rise,
		Radius:       result.Geometry.InternalRadius,
		SegmentAngle: result.Geometry.SegmentAngle,
	}
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gotab/internal/arch"
	"github.com/alexiusacademia/gotab/internal/timber"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var sweepMax int

// sweepDefaultCap bounds the default table length for very shallow arches
const sweepDefaultCap = 50

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Tabulate span, rise and stobs for each segment count",
	Long: `Solve the geometry once for the given stobs and list the bridge
produced by every segment count from 1 up to --max, marking the counts
that would overarch.

Examples:
  gotab sweep
  gotab sweep --length 2400 --width 100 --rebate 15 --across 5 --max 14`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	addTimberFlags(sweepCmd)
	sweepCmd.Flags().IntVarP(&flagAcross, "across", "a", timber.DefaultDeckWidth, "Number of posts across")
	sweepCmd.Flags().IntVar(&sweepMax, "max", 0, "Largest segment count to list (default: first overarched count)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	if err := applyFlags(cmd); err != nil {
		return err
	}

	geometry, err := conf.NewSolver(logger).Solve(conf.TimberSpec())
	if err != nil {
		return err
	}

	limit := arch.MaxSegments(geometry)
	maxSegments := sweepMax
	if maxSegments <= 0 {
		maxSegments = min(limit+1, sweepDefaultCap)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SEGMENT COUNT SWEEP")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Radius:\t%.3f m\n", geometry.InternalRadius/1000)
	fmt.Fprintf(w, "  Segment angle:\t%.3f°\n", timber.Degrees(geometry.SegmentAngle))
	fmt.Fprintf(w, "  Maximum segments:\t%d\n", limit)
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Segments\tSpan (m)\tRise (m)\tPosts\tStatus\t\n")
	fmt.Fprintf(w, "  ────────\t────────\t────────\t─────\t──────\t\n")
	for _, row := range arch.Sweep(geometry, conf.Layout.DeckWidth, maxSegments) {
		if !row.Feasible() {
			fmt.Fprintf(w, "  %d\t-\t-\t-\t%s\t\n", row.Segments, color.RedString("OVERARCHED"))
			continue
		}
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%.1f\t%s\t\n",
			row.Segments, row.Metrics.Span/1000, row.Metrics.Rise/1000, row.Metrics.PostsRequired, color.GreenString("OK"))
	}
	w.Flush()
	fmt.Println()

	return nil
}

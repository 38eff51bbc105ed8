package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gotab/internal/arch"
	"github.com/alexiusacademia/gotab/internal/diagram"
	"github.com/alexiusacademia/gotab/internal/timber"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var profileExportFile string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "List timber piece profiles with volumes and mass",
	Long: `List the cross-section outlines of the deck piece, end deck piece,
cross piece and end cross piece for the solved arch, with their areas,
volumes and masses.

Examples:
  gotab profile
  gotab profile --rebate 12 -o profiles.svg`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)

	addTimberFlags(profileCmd)
	profileCmd.Flags().StringVarP(&profileExportFile, "output", "o", "", "Export outlines to file (png, svg, pdf)")
}

func runProfile(cmd *cobra.Command, args []string) error {
	if err := applyFlags(cmd); err != nil {
		return err
	}

	spec := conf.TimberSpec()
	geometry, err := conf.NewSolver(logger).Solve(spec)
	if err != nil {
		return err
	}
	profiles := arch.Profiles(spec, geometry)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     TIMBER PIECE PROFILES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Piece\tArea (mm²)\tLength (mm)\tVolume (m³)\tMass (kg)\n")
	fmt.Fprintf(w, "  ─────\t──────────\t───────────\t───────────\t─────────\n")
	for _, p := range profiles {
		volume := p.Volume()
		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%.5f\t%.2f\n",
			p.Name, p.Area(), p.Extrusion, volume/1e9, timber.MassAt(volume, conf.Density))
	}
	w.Flush()
	fmt.Println()

	fmt.Println("VERTICES (mm):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, p := range profiles {
		fmt.Printf("  %s\n", p.Name)
		for _, v := range p.Vertices {
			fmt.Printf("    (%9.2f, %9.2f)\n", v.X, v.Y)
		}
	}
	fmt.Println()

	if profileExportFile != "" {
		outlines := make([]diagram.Outline, len(profiles))
		for i, p := range profiles {
			points := make([]diagram.Point, len(p.Vertices))
			for j, v := range p.Vertices {
				points[j] = diagram.Point{X: v.X, Y: v.Y}
			}
			outlines[i] = diagram.Outline{Name: p.Name, Vertices: points}
		}
		if err := diagram.ExportProfiles(outlines, profileExportFile); err != nil {
			logger.Error("failed to export profiles", zap.String("op", "cmd.profile"), zap.Error(err))
			return fmt.Errorf("export profiles: %w", err)
		}
		fmt.Printf("Profiles exported to: %s\n", profileExportFile)
	}

	return nil
}

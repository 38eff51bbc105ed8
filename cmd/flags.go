package cmd

import (
	"github.com/alexiusacademia/gotab/internal/timber"
	"github.com/spf13/cobra"
)

var (
	// Stob dimensions (mm)
	flagLength float64
	flagWidth  float64
	flagRebate float64

	// Layout
	flagSegments int
	flagAcross   int

	// Solver
	flagTolerance float64
	flagMaxIter   int
	flagSeed      string
)

func addTimberFlags(c *cobra.Command) {
	c.Flags().Float64VarP(&flagLength, "length", "l", timber.DefaultPostLength, "Post length (mm)")
	c.Flags().Float64VarP(&flagWidth, "width", "w", timber.DefaultPostWidth, "Post width (mm)")
	c.Flags().Float64VarP(&flagRebate, "rebate", "r", timber.DefaultRebateDepth, "Rebate depth (mm)")

	c.Flags().Float64Var(&flagTolerance, "tolerance", 0, "Solver tolerance (radians, default 1 second of arc)")
	c.Flags().IntVar(&flagMaxIter, "max-iter", 0, "Solver iteration cap (default 100)")
	c.Flags().StringVar(&flagSeed, "seed", "", "Solver seed: fixed (18°) or first-order")
}

func addLayoutFlags(c *cobra.Command) {
	c.Flags().IntVarP(&flagSegments, "segments", "n", timber.DefaultSegments, "Number of bridge segments")
	c.Flags().IntVarP(&flagAcross, "across", "a", timber.DefaultDeckWidth, "Number of posts across")
}

// applyFlags overrides the loaded configuration with any flags given
// explicitly on the command line, then revalidates it.
func applyFlags(c *cobra.Command) error {
	set := func(name string, apply func()) {
		if f := c.Flags().Lookup(name); f != nil && f.Changed {
			apply()
		}
	}

	set("length", func() { conf.Timber.PostLength = flagLength })
	set("width", func() { conf.Timber.PostWidth = flagWidth })
	set("rebate", func() { conf.Timber.RebateDepth = flagRebate })
	set("segments", func() { conf.Layout.Segments = flagSegments })
	set("across", func() { conf.Layout.DeckWidth = flagAcross })
	set("tolerance", func() { conf.Solver.Tolerance = flagTolerance })
	set("max-iter", func() { conf.Solver.MaxIterations = flagMaxIter })
	set("seed", func() { conf.Solver.Seed = flagSeed })

	return conf.Validate()
}

// Package config loads bridge parameters from a YAML file and GOTAB_*
// environment variables, in place of answering prompts one at a time.
package config

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gotab/internal/arch"
	"github.com/alexiusacademia/gotab/internal/timber"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix is prepended to environment overrides, e.g. GOTAB_LAYOUT_SEGMENTS
const EnvPrefix = "GOTAB"

// Seed modes for the solver
const (
	SeedFixed      = "fixed"
	SeedFirstOrder = "first-order"

	defaultSeedDegrees = 18.0
)

// Configuration holds everything needed to design one bridge.
type Configuration struct {
	Name    string
	Timber  Timber
	Layout  Layout
	Solver  Solver
	Density float64 // kg/m³
}

// Timber holds the stob dimensions (mm).
type Timber struct {
	PostLength  float64 `mapstructure:"post_length"`
	PostWidth   float64 `mapstructure:"post_width"`
	RebateDepth float64 `mapstructure:"rebate_depth"`
}

// Layout holds the segment count and deck width.
type Layout struct {
	Segments  int `mapstructure:"segments"`
	DeckWidth int `mapstructure:"deck_width"`
}

// Solver holds the iteration settings.
type Solver struct {
	Tolerance     float64 `mapstructure:"tolerance"`      // radians
	MaxIterations int     `mapstructure:"max_iterations"` // iteration cap
	Seed          string  `mapstructure:"seed"`           // fixed or first-order
	SeedDegrees   float64 `mapstructure:"seed_degrees"`   // starting angle for the fixed seed
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "")
	v.SetDefault("timber.post_length", timber.DefaultPostLength)
	v.SetDefault("timber.post_width", timber.DefaultPostWidth)
	v.SetDefault("timber.rebate_depth", timber.DefaultRebateDepth)
	v.SetDefault("layout.segments", timber.DefaultSegments)
	v.SetDefault("layout.deck_width", timber.DefaultDeckWidth)
	v.SetDefault("solver.tolerance", arch.DefaultTolerance)
	v.SetDefault("solver.max_iterations", arch.DefaultMaxIterations)
	v.SetDefault("solver.seed", SeedFixed)
	v.SetDefault("solver.seed_degrees", defaultSeedDegrees)
	v.SetDefault("density", timber.Density)
}

// Default returns the configuration of the standard 1800 × 75 stob bridge.
func Default() *Configuration {
	return &Configuration{
		Timber: Timber{
			PostLength:  timber.DefaultPostLength,
			PostWidth:   timber.DefaultPostWidth,
			RebateDepth: timber.DefaultRebateDepth,
		},
		Layout: Layout{
			Segments:  timber.DefaultSegments,
			DeckWidth: timber.DefaultDeckWidth,
		},
		Solver: Solver{
			Tolerance:     arch.DefaultTolerance,
			MaxIterations: arch.DefaultMaxIterations,
			Seed:          SeedFixed,
			SeedDegrees:   defaultSeedDegrees,
		},
		Density: timber.Density,
	}
}

// LoadConfiguration reads the YAML file at configPath, if any, over the
// built-in defaults and applies GOTAB_* environment overrides.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := configuration.Validate(); err != nil {
		return nil, err
	}

	return &configuration, nil
}

// Validate checks the values that the solver does not check for itself.
func (c *Configuration) Validate() error {
	if err := c.TimberSpec().Validate(); err != nil {
		return fmt.Errorf("invalid timber: %w", err)
	}
	if err := c.BridgeLayout().Validate(); err != nil {
		return err
	}
	if c.Solver.Tolerance <= 0 {
		return fmt.Errorf("solver tolerance must be positive, got %g", c.Solver.Tolerance)
	}
	if c.Solver.MaxIterations < 1 {
		return fmt.Errorf("solver max_iterations must be at least 1, got %d", c.Solver.MaxIterations)
	}
	switch c.Solver.Seed {
	case SeedFixed:
		if c.Solver.SeedDegrees <= 0 || c.Solver.SeedDegrees >= 90 {
			return fmt.Errorf("solver seed_degrees must be between 0 and 90, got %g", c.Solver.SeedDegrees)
		}
	case SeedFirstOrder:
	default:
		return fmt.Errorf("unknown solver seed %q (want %q or %q)", c.Solver.Seed, SeedFixed, SeedFirstOrder)
	}
	if c.Density <= 0 {
		return fmt.Errorf("density must be positive, got %g", c.Density)
	}
	return nil
}

// TimberSpec returns the stob dimensions for the solver.
func (c *Configuration) TimberSpec() arch.TimberSpec {
	return arch.TimberSpec{
		PostLength:  c.Timber.PostLength,
		PostWidth:   c.Timber.PostWidth,
		RebateDepth: c.Timber.RebateDepth,
	}
}

// BridgeLayout returns the configured layout.
func (c *Configuration) BridgeLayout() arch.BridgeLayout {
	return arch.BridgeLayout{
		Segments:  c.Layout.Segments,
		DeckWidth: c.Layout.DeckWidth,
	}
}

// NewSolver builds a solver with the configured iteration settings.
func (c *Configuration) NewSolver(logger *zap.Logger) *arch.Solver {
	solver := arch.NewSolver(logger)
	solver.Tolerance = c.Solver.Tolerance
	solver.MaxIterations = c.Solver.MaxIterations
	solver.SeedAngle = timber.Radians(c.Solver.SeedDegrees)
	solver.FirstOrderSeed = c.Solver.Seed == SeedFirstOrder
	return solver
}

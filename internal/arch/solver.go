package arch

import (
	"math"

	"github.com/alexiusacademia/gotab/internal/timber"
	"go.uber.org/zap"
)

const (
	// DefaultTolerance is one second of arc in radians
	DefaultTolerance = 0.000_005

	// DefaultMaxIterations bounds the fixed-point iteration
	DefaultMaxIterations = 100
)

// DefaultSeedAngle is the starting segment angle (18°), close to typical solutions
var DefaultSeedAngle = timber.Radians(18)

// Solver finds the segment geometry for a stob by successive substitution.
// A Solver is not modified by Solve and may be shared between goroutines.
type Solver struct {
	Tolerance     float64 // radians; zero means DefaultTolerance
	MaxIterations int     // zero means DefaultMaxIterations
	SeedAngle     float64 // radians; zero means DefaultSeedAngle

	// FirstOrderSeed seeds each solve from FirstOrderSeed instead of SeedAngle
	FirstOrderSeed bool

	logger *zap.Logger
}

// NewSolver creates a solver with default tolerance, iteration cap and seed
func NewSolver(logger *zap.Logger) *Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		SeedAngle:     DefaultSeedAngle,
		logger:        logger,
	}
}

// Solve finds the segment geometry for a stob using a default solver
func Solve(spec TimberSpec) (SegmentGeometry, error) {
	return NewSolver(nil).Solve(spec)
}

// Solve iterates the segment angle until successive values agree within
// the tolerance. The returned radius is to the base of the cross member,
// one post width inside the radius used by the iteration.
func (s *Solver) Solve(spec TimberSpec) (SegmentGeometry, error) {
	logger := s.log()

	if err := spec.Validate(); err != nil {
		return SegmentGeometry{}, err
	}

	tolerance := s.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	maxIter := s.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	angle := s.seed(spec)

	residual := math.Inf(1)
	for i := 1; i <= maxIter; i++ {
		radius, next := spec.step(angle)
		if !finite(radius) || radius <= 0 {
			return SegmentGeometry{}, &DegenerateGeometryError{
				Iteration: i,
				Radius:    radius,
				Reason:    "iteration produced a non-positive radius",
			}
		}

		residual = math.Abs(angle - next)
		angle = next

		logger.Debug("solver iteration",
			zap.String("op", "arch.Solve"),
			zap.Int("iteration", i),
			zap.Float64("radius", radius),
			zap.Float64("angle", angle),
			zap.Float64("residual", residual),
		)

		if residual <= tolerance {
			internal := radius - spec.PostWidth
			if internal <= 0 {
				return SegmentGeometry{}, &DegenerateGeometryError{
					Iteration: i,
					Radius:    internal,
					Reason:    "arch radius is smaller than the post width",
				}
			}
			return SegmentGeometry{
				InternalRadius: internal,
				SegmentAngle:   angle,
				Iterations:     i,
			}, nil
		}
	}

	return SegmentGeometry{}, &ConvergenceError{
		Iterations: maxIter,
		Residual:   residual,
		Tolerance:  tolerance,
	}
}

func (s *Solver) seed(spec TimberSpec) float64 {
	if s.FirstOrderSeed {
		return FirstOrderSeed(spec)
	}
	if s.SeedAngle > 0 {
		return s.SeedAngle
	}
	return DefaultSeedAngle
}

func (s *Solver) log() *zap.Logger {
	if s.logger == nil {
		return zap.NewNop()
	}
	return s.logger
}

// FirstOrderSeed estimates the segment angle with the secant term taken at
// zero angle. It falls back to DefaultSeedAngle when that estimate has no
// positive radius.
func FirstOrderSeed(spec TimberSpec) float64 {
	halfPost := spec.PostLength / 2
	extra := 2*spec.PostWidth - spec.RebateDepth
	if extra <= 0 {
		return DefaultSeedAngle
	}
	radius := (halfPost*halfPost - extra*extra) / (2 * extra)
	if !finite(radius) || radius <= 0 {
		return DefaultSeedAngle
	}
	return math.Atan(halfPost / radius)
}

// step performs one substitution: the neutral radius implied by the given
// segment angle, and the segment angle that radius implies in turn.
func (t TimberSpec) step(angle float64) (radius, next float64) {
	halfPost := t.PostLength / 2
	extra := t.PostWidth*(1+1/math.Cos(angle)) - t.RebateDepth
	radius = (halfPost*halfPost - extra*extra) / (2 * extra)
	return radius, math.Atan(halfPost / radius)
}

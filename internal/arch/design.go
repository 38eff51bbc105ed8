package arch

import (
	"github.com/alexiusacademia/gotab/internal/timber"
	"go.uber.org/zap"
)

// Result is a complete bridge design
type Result struct {
	Timber   TimberSpec      `json:"timber"`
	Layout   BridgeLayout    `json:"layout"`
	Geometry SegmentGeometry `json:"geometry"`
	Metrics  BridgeMetrics   `json:"metrics"`

	// TimberMass estimates the stob mass (kg) for the fractional post count
	TimberMass float64 `json:"timber_mass"`
}

// Design solves the stob geometry and computes the bridge quantities.
// The timber mass is estimated at density (kg/m³); zero means timber.Density.
// Any failure is terminal and no partial result is returned; use
// errors.Is with ErrDegenerateGeometry, ErrConvergenceFailure or
// ErrOverarched to tell them apart.
func Design(solver *Solver, spec TimberSpec, layout BridgeLayout, density float64) (*Result, error) {
	if solver == nil {
		solver = NewSolver(nil)
	}
	logger := solver.log()

	if err := layout.Validate(); err != nil {
		return nil, err
	}

	geometry, err := solver.Solve(spec)
	if err != nil {
		logger.Warn("failed to solve segment geometry",
			zap.String("op", "arch.Design"),
			zap.Error(err),
		)
		return nil, err
	}

	metrics, err := Compute(geometry, layout)
	if err != nil {
		logger.Warn("failed to compute bridge metrics",
			zap.String("op", "arch.Design"),
			zap.Int("segments", layout.Segments),
			zap.Error(err),
		)
		return nil, err
	}

	result := &Result{
		Timber:   spec,
		Layout:   layout,
		Geometry: geometry,
		Metrics:  metrics,
	}
	if density <= 0 {
		density = timber.Density
	}
	result.TimberMass = result.MassAt(density)

	logger.Info("bridge designed",
		zap.String("op", "arch.Design"),
		zap.Float64("radius", geometry.InternalRadius),
		zap.Float64("segment_angle", geometry.SegmentAngle),
		zap.Float64("span", metrics.Span),
		zap.Float64("rise", metrics.Rise),
		zap.Float64("posts_required", metrics.PostsRequired),
	)

	return result, nil
}

// MassAt estimates the stob mass (kg) at the given density (kg/m³)
func (r *Result) MassAt(density float64) float64 {
	volume := r.Metrics.PostsRequired * timber.PostVolume(r.Timber.PostLength, r.Timber.PostWidth)
	return timber.MassAt(volume, density)
}

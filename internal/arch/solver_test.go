package arch

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var defaultStob = TimberSpec{PostLength: 1800, PostWidth: 75, RebateDepth: 9}

func TestSolveDefaultStob(t *testing.T) {
	g, err := Solve(defaultStob)
	require.NoError(t, err)

	assert.InDelta(t, 2645.661027648567, g.InternalRadius, 1e-6)
	assert.InDelta(t, 0.3194705907662585, g.SegmentAngle, 1e-12)
	assert.Equal(t, 4, g.Iterations)

	// As reported: radius 2.646 m, segment angle 18.304°
	assert.Equal(t, "2.646", fmt.Sprintf("%.3f", g.InternalRadius/1000))
	assert.Equal(t, "18.304", fmt.Sprintf("%.3f", g.SegmentAngle*180/math.Pi))
}

func TestSolveIsDeterministic(t *testing.T) {
	first, err := Solve(defaultStob)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Solve(defaultStob)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func stobGrid() []TimberSpec {
	var specs []TimberSpec
	for _, length := range []float64{1200, 1500, 1800, 2100, 2400} {
		for _, width := range []float64{50, 75, 100} {
			for rebate := 0.0; rebate < width; rebate += 5 {
				specs = append(specs, TimberSpec{PostLength: length, PostWidth: width, RebateDepth: rebate})
			}
		}
	}
	return specs
}

func TestSolveIsFixedPoint(t *testing.T) {
	for _, spec := range stobGrid() {
		g, err := Solve(spec)
		require.NoError(t, err, "spec %+v", spec)

		_, next := spec.step(g.SegmentAngle)
		assert.LessOrEqual(t, math.Abs(next-g.SegmentAngle), DefaultTolerance, "spec %+v", spec)
		assert.Greater(t, g.InternalRadius, 0.0)
		assert.Greater(t, g.SegmentAngle, 0.0)
		assert.Less(t, g.SegmentAngle, math.Pi/2)
	}
}

// A deeper rebate seats the cross timber lower, which flattens the arch.
func TestSegmentAngleFallsWithRebateDepth(t *testing.T) {
	for _, length := range []float64{1200, 1800, 2400} {
		for _, width := range []float64{50, 75, 100} {
			prev := math.Inf(1)
			for rebate := 0.0; rebate < width; rebate += 5 {
				g, err := Solve(TimberSpec{PostLength: length, PostWidth: width, RebateDepth: rebate})
				require.NoError(t, err)
				assert.Less(t, g.SegmentAngle, prev, "length=%v width=%v rebate=%v", length, width, rebate)
				prev = g.SegmentAngle
			}
		}
	}
}

func TestSolveRejectsDegenerateStobs(t *testing.T) {
	tests := []struct {
		name string
		spec TimberSpec
	}{
		{"rebate equals width", TimberSpec{PostLength: 1800, PostWidth: 75, RebateDepth: 75}},
		{"rebate exceeds width", TimberSpec{PostLength: 1800, PostWidth: 75, RebateDepth: 120}},
		{"negative rebate", TimberSpec{PostLength: 1800, PostWidth: 75, RebateDepth: -1}},
		{"zero length", TimberSpec{PostLength: 0, PostWidth: 75, RebateDepth: 9}},
		{"zero width", TimberSpec{PostLength: 1800, PostWidth: 0, RebateDepth: 0}},
		{"NaN length", TimberSpec{PostLength: math.NaN(), PostWidth: 75, RebateDepth: 9}},
		{"stob too short for its width", TimberSpec{PostLength: 600, PostWidth: 75, RebateDepth: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.spec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDegenerateGeometry), "got %v", err)
			assert.False(t, errors.Is(err, ErrOverarched))

			var degenerate *DegenerateGeometryError
			assert.True(t, errors.As(err, &degenerate))
		})
	}
}

func TestSolveShortStobFailsDuringIteration(t *testing.T) {
	_, err := Solve(TimberSpec{PostLength: 600, PostWidth: 75, RebateDepth: 0})

	var degenerate *DegenerateGeometryError
	require.True(t, errors.As(err, &degenerate))
	assert.Greater(t, degenerate.Iteration, 0)
	assert.LessOrEqual(t, degenerate.Radius, 0.0)
}

func TestSolveConvergenceFailure(t *testing.T) {
	solver := NewSolver(zap.NewNop())
	solver.MaxIterations = 1

	_, err := solver.Solve(defaultStob)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConvergenceFailure))

	var conv *ConvergenceError
	require.True(t, errors.As(err, &conv))
	assert.Equal(t, 1, conv.Iterations)
	assert.Greater(t, conv.Residual, DefaultTolerance)
}

func TestSolverTolerance(t *testing.T) {
	loose := NewSolver(nil)
	loose.Tolerance = 1e-2
	tight := NewSolver(nil)
	tight.Tolerance = 1e-12

	lg, err := loose.Solve(defaultStob)
	require.NoError(t, err)
	tg, err := tight.Solve(defaultStob)
	require.NoError(t, err)

	assert.Less(t, lg.Iterations, tg.Iterations)
	assert.InDelta(t, tg.SegmentAngle, lg.SegmentAngle, 1e-2)
}

func TestZeroValueSolverUsesDefaults(t *testing.T) {
	var s Solver
	g, err := s.Solve(defaultStob)
	require.NoError(t, err)
	assert.InDelta(t, 0.3194705907662585, g.SegmentAngle, 1e-12)
}

func TestFirstOrderSeed(t *testing.T) {
	seed := FirstOrderSeed(defaultStob)
	assert.Greater(t, seed, 0.0)
	assert.InDelta(t, 0.3194705907662585, seed, 0.02)

	solver := NewSolver(nil)
	solver.FirstOrderSeed = true
	for _, spec := range stobGrid() {
		seeded, err := solver.Solve(spec)
		require.NoError(t, err)
		fixed, err := Solve(spec)
		require.NoError(t, err)
		assert.InDelta(t, fixed.SegmentAngle, seeded.SegmentAngle, 2*DefaultTolerance)
	}
}

func TestFirstOrderSeedFallback(t *testing.T) {
	// Post shorter than twice the first-order offset gives no positive radius
	assert.Equal(t, DefaultSeedAngle, FirstOrderSeed(TimberSpec{PostLength: 200, PostWidth: 75}))
}

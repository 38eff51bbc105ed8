package arch

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDegenerateGeometry reports stob dimensions that admit no arch
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrConvergenceFailure reports that the solver ran out of iterations
	ErrConvergenceFailure = errors.New("geometry did not converge")

	// ErrOverarched reports a layout whose half-arch reaches or passes vertical
	ErrOverarched = errors.New("overarched")

	// ErrInvalidLayout reports a segment or post count out of range
	ErrInvalidLayout = errors.New("invalid layout")
)

// DegenerateGeometryError is returned when the stob dimensions are invalid
// or the iteration produces a non-positive or non-finite radius
type DegenerateGeometryError struct {
	Iteration int     // 0 when the dimensions were rejected before solving
	Radius    float64 // offending radius (mm)
	Reason    string
}

func (e *DegenerateGeometryError) Error() string {
	if e.Iteration == 0 {
		return fmt.Sprintf("%v: %s", ErrDegenerateGeometry, e.Reason)
	}
	return fmt.Sprintf("%v: %s (radius %.3f mm at iteration %d)", ErrDegenerateGeometry, e.Reason, e.Radius, e.Iteration)
}

func (e *DegenerateGeometryError) Is(target error) bool {
	return target == ErrDegenerateGeometry
}

// ConvergenceError is returned when the tolerance is not reached in time
type ConvergenceError struct {
	Iterations int
	Residual   float64 // last change in segment angle (radians)
	Tolerance  float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%v after %d iterations: residual %.3g rad exceeds tolerance %.3g rad",
		ErrConvergenceFailure, e.Iterations, e.Residual, e.Tolerance)
}

func (e *ConvergenceError) Is(target error) bool {
	return target == ErrConvergenceFailure
}

// OverarchedError is returned when the segments would carry the arch past vertical
type OverarchedError struct {
	Segments int
	EndAngle float64 // radians

	// Geometry the layout was rejected for
	Geometry SegmentGeometry
}

func (e *OverarchedError) Error() string {
	return fmt.Sprintf("%v: half-arch angle %.3f° for %d segments is not below 90°",
		ErrOverarched, e.EndAngle*180/math.Pi, e.Segments)
}

func (e *OverarchedError) Is(target error) bool {
	return target == ErrOverarched
}

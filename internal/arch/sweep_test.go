package arch

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxSegments(t *testing.T) {
	assert.Equal(t, 9, MaxSegments(defaultGeometry))
	assert.Equal(t, 3, MaxSegments(SegmentGeometry{InternalRadius: 1000, SegmentAngle: 0.25 * 3.141592653589793}))
	assert.Equal(t, 0, MaxSegments(SegmentGeometry{}))
}

func TestMaxSegmentsShallowAngles(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  int
	}{
		{"underflowing count", 1e-300, SegmentLimit},
		{"smallest positive angle", math.SmallestNonzeroFloat64, SegmentLimit},
		{"count above limit", math.Pi / 1e10, SegmentLimit},
		{"large but bounded count", math.Pi / 1e9, 1e9 - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan int, 1)
			go func() {
				done <- MaxSegments(SegmentGeometry{InternalRadius: 1000, SegmentAngle: tt.angle})
			}()

			select {
			case got := <-done:
				assert.InDelta(t, tt.want, got, 1)
				assert.LessOrEqual(t, got, SegmentLimit)
			case <-time.After(3 * time.Second):
				t.Fatal("MaxSegments did not return")
			}
		})
	}
}

func TestSweep(t *testing.T) {
	rows := Sweep(defaultGeometry, 7, 11)
	require.Len(t, rows, 11)

	for i, row := range rows {
		assert.Equal(t, i+1, row.Segments)
		if row.Segments <= 9 {
			require.True(t, row.Feasible(), "segments %d", row.Segments)
			assert.False(t, row.Metrics.IsOverarched)
			assert.Greater(t, row.Metrics.Span, 0.0)
		} else {
			assert.False(t, row.Feasible())
			assert.True(t, errors.Is(row.Err, ErrOverarched))
			assert.True(t, row.Metrics.IsOverarched)
		}
	}

	six := rows[5]
	assert.InDelta(t, 4329.781186765604, six.Metrics.Span, 1e-6)
	assert.Equal(t, 32.5, six.Metrics.PostsRequired)

	// Rise grows with every added segment
	for i := 1; i < 9; i++ {
		assert.Greater(t, rows[i].Metrics.Rise, rows[i-1].Metrics.Rise)
	}
}

func TestSweepEmpty(t *testing.T) {
	assert.Nil(t, Sweep(defaultGeometry, 7, 0))
}

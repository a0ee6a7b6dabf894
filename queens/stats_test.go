package queens

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

func TestStdev(t *testing.T) {
	assert.Equal(t, 0.0, Stdev([]float64{5}))
	assert.InDelta(t, 1.0, Stdev([]float64{1, 2, 3}), 1e-9)
}

func TestMinMaxFloat(t *testing.T) {
	assert.True(t, math.IsInf(MaxFloat(nil), -1))
	assert.True(t, math.IsInf(MinFloat(nil), 1))
	assert.Equal(t, 7.5, MaxFloat([]float64{3, 7.5, -1}))
	assert.Equal(t, -1.0, MinFloat([]float64{3, 7.5, -1}))
}

func TestMedian(t *testing.T) {
	assert.True(t, math.IsNaN(Median(nil)))
	assert.Equal(t, 2.0, Median([]float64{3, 1, 2}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))

	// Input order must be preserved.
	values := []float64{3, 1, 2}
	Median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

package plot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYAxisRange(t *testing.T) {
	tt := []struct {
		name     string
		min, max float64
		expected [2]float64
	}{
		{
			// the lower bound is anchored at zero for non-negative data,
			// the padded value (9) is not kept
			name:     "all positive",
			min:      10,
			max:      50,
			expected: [2]float64{0, 55},
		},
		{
			name:     "all negative",
			min:      -50,
			max:      -10,
			expected: [2]float64{-55, 0},
		},
		{
			name:     "crossing zero",
			min:      -10,
			max:      50,
			expected: [2]float64{-11, 55},
		},
		{
			name:     "flat at zero",
			min:      0,
			max:      0,
			expected: [2]float64{0, 0},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, YAxisRange(tc.min, tc.max))
		})
	}
}

func TestXAxisRange(t *testing.T) {
	min := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)

	got := XAxisRange(min, max, 5*24*time.Hour)
	assert.Equal(t, [2]string{"2022-12-27", "2023-02-05"}, got)
}

func TestYAxisTickFormat(t *testing.T) {
	axis := yAxis("Attendances", 10, 50, "")
	assert.Empty(t, axis.TickFormat)
	assert.Equal(t, "Attendances", axis.Title)

	axis = yAxis("Rate", 10, 50, ".1%")
	assert.Equal(t, ".1%", axis.TickFormat)
	assert.Equal(t, [2]float64{0, 55}, axis.Range)
}

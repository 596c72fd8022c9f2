package plot

import (
	"math"
	"time"
)

// DateLayout is the format used for dates on the x axis.
const DateLayout = "2006-01-02"

// YAxisRange computes the display range of the y axis from the observed
// minimum and maximum. Each extreme is padded outward by 10% of its
// magnitude, and the axis is anchored at zero on any side the data does
// not cross: the lower bound is 0 for non-negative data and the upper
// bound is 0 for non-positive data.
func YAxisRange(min, max float64) [2]float64 {
	low := min - math.Abs(min)*0.1
	high := max + math.Abs(max)*0.1

	if min >= 0 {
		low = 0
	}
	if max <= 0 {
		high = 0
	}

	return [2]float64{low, high}
}

// XAxisRange pads the observed date span outward on both sides, so the
// first and last plot circles are not clipped by the frame.
func XAxisRange(min, max time.Time, padding time.Duration) [2]string {
	return [2]string{
		min.Add(-padding).Format(DateLayout),
		max.Add(padding).Format(DateLayout),
	}
}

// yAxis builds the y-axis configuration, attaching the tick format only
// when a display-format hint is present.
func yAxis(title string, min, max float64, format string) YAxis {
	axis := YAxis{
		Title: title,
		Range: YAxisRange(min, max),
	}

	if format != "" {
		axis.TickFormat = format
	}

	return axis
}

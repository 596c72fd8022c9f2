package model

import (
	"fmt"
	"time"
)

// Status labels attached to each observed point. They follow a fixed
// priority: outside limit > close to limit > above/below mean.
const (
	StatusOutsideLimit = "Outside Limit"
	StatusCloseToLimit = "Close to limit"
	StatusAboveMean    = "Above mean"
	StatusBelowMean    = "Below mean"
	StatusNeutral      = ""
)

// Point colors, matching the status tiers above.
const (
	ColorAlert   = "red"
	ColorWarning = "yellow"
	ColorBase    = "rgb(22, 96, 167)"
)

// Point is a single observation of the process, with the control-limit
// fields already computed upstream.
type Point struct {
	Date           time.Time // x-coordinate
	Value          float64   // observed value
	Mean           float64   // process mean at this point
	LowerLimit     float64   // lower process limit
	UpperLimit     float64   // upper process limit
	OutsideLimits  bool      // value falls outside [LowerLimit, UpperLimit]
	CloseToLimits  bool      // value is near, but not outside, a limit
	RelativeToMean float64   // signed distance from the mean
}

// Status returns the human-readable control status of the point.
func (p Point) Status() string {
	switch {
	case p.OutsideLimits:
		return StatusOutsideLimit
	case p.CloseToLimits:
		return StatusCloseToLimit
	case p.RelativeToMean > 0:
		return StatusAboveMean
	case p.RelativeToMean < 0:
		return StatusBelowMean
	}
	return StatusNeutral
}

// Color returns the display color of the point. The tier always agrees
// with Status: outside -> alert, close -> warning, otherwise base.
func (p Point) Color() string {
	switch {
	case p.OutsideLimits:
		return ColorAlert
	case p.CloseToLimits:
		return ColorWarning
	}
	return ColorBase
}

// Dataframe holds the process time series in columnar form, ordered by
// date ascending.
type Dataframe struct {
	Time           []time.Time
	Value          Series[float64]
	Mean           Series[float64]
	LowerLimit     Series[float64]
	UpperLimit     Series[float64]
	RelativeToMean Series[float64]
	OutsideLimits  []bool
	CloseToLimits  []bool

	// Format is an optional display-format hint (eg: ".1%") applied to
	// hover and tick rendering. Constant for the whole dataset.
	Format string
}

// Len returns the number of observations in the dataframe.
func (df Dataframe) Len() int {
	return len(df.Time)
}

// Row returns the observation at the given index as a Point.
func (df Dataframe) Row(i int) Point {
	return Point{
		Date:           df.Time[i],
		Value:          df.Value[i],
		Mean:           df.Mean[i],
		LowerLimit:     df.LowerLimit[i],
		UpperLimit:     df.UpperLimit[i],
		OutsideLimits:  df.OutsideLimits[i],
		CloseToLimits:  df.CloseToLimits[i],
		RelativeToMean: df.RelativeToMean[i],
	}
}

// Push appends an observation to the dataframe columns.
func (df *Dataframe) Push(p Point) {
	df.Time = append(df.Time, p.Date)
	df.Value = append(df.Value, p.Value)
	df.Mean = append(df.Mean, p.Mean)
	df.LowerLimit = append(df.LowerLimit, p.LowerLimit)
	df.UpperLimit = append(df.UpperLimit, p.UpperLimit)
	df.RelativeToMean = append(df.RelativeToMean, p.RelativeToMean)
	df.OutsideLimits = append(df.OutsideLimits, p.OutsideLimits)
	df.CloseToLimits = append(df.CloseToLimits, p.CloseToLimits)
}

// Sample returns a new Dataframe with the last positions values of the
// original data
func (df Dataframe) Sample(positions int) Dataframe {
	size := len(df.Time)
	start := size - positions
	if start <= 0 {
		return df
	}

	return Dataframe{
		Time:           df.Time[start:],
		Value:          df.Value.LastValues(positions),
		Mean:           df.Mean.LastValues(positions),
		LowerLimit:     df.LowerLimit.LastValues(positions),
		UpperLimit:     df.UpperLimit.LastValues(positions),
		RelativeToMean: df.RelativeToMean.LastValues(positions),
		OutsideLimits:  df.OutsideLimits[start:],
		CloseToLimits:  df.CloseToLimits[start:],
		Format:         df.Format,
	}
}

// Validate checks that all columns have the same length.
func (df Dataframe) Validate() error {
	size := len(df.Time)
	columns := map[string]int{
		"value":            df.Value.Length(),
		"mean":             df.Mean.Length(),
		"lower_limit":      df.LowerLimit.Length(),
		"upper_limit":      df.UpperLimit.Length(),
		"relative_to_mean": df.RelativeToMean.Length(),
		"outside_limits":   len(df.OutsideLimits),
		"close_to_limits":  len(df.CloseToLimits),
	}

	for name, length := range columns {
		if length != size {
			return fmt.Errorf("model: column %s has %d values, expected %d", name, length, size)
		}
	}

	return nil
}

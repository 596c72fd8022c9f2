// Package spcchart renders statistical-process-control charts from a
// tabular time series: the observed values colored by control-limit
// status, the process mean line and a shaded band between the lower and
// upper process limits. The statistical fields are expected to be
// computed upstream, this module only encodes them into a figure.
package spcchart

import (
	"github.com/plotthedots/spcchart/model"
	"github.com/plotthedots/spcchart/plot"
	"github.com/plotthedots/spcchart/tools/log"
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04",
	})
}

type (
	Point     = model.Point
	Series    = model.Series[float64]
	Dataframe = model.Dataframe
	Chart     = plot.Chart
	Figure    = plot.Figure
)

// Save builds a chart with the given options and writes the rendered
// page for the dataframe in a single call.
func Save(df *model.Dataframe, outputFile string, options ...plot.Option) error {
	chart, err := plot.NewChart(options...)
	if err != nil {
		return err
	}

	return chart.SaveHTML(df, outputFile)
}

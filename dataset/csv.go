// Package dataset loads process time series from CSV files into the
// typed dataframe used by the chart packages. Column bindings are
// resolved and validated here, before any classification happens.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"

	"github.com/plotthedots/spcchart/model"
	"github.com/plotthedots/spcchart/tools/log"
)

// Default column bindings, matching the upstream SPC pipeline output.
const (
	DefaultDateColumn  = "date"
	DefaultValueColumn = "value"
	DefaultDateLayout  = "2006-01-02"
)

// Columns that always carry these names in the upstream pipeline.
var fixedColumns = []string{
	"mean", "lpl", "upl", "outside_limits", "close_to_limits", "relative_to_mean",
}

// Loader holds the column bindings used to read a CSV file.
type Loader struct {
	dateColumn   string
	valueColumn  string
	formatColumn string
	dateLayout   string
}

// Option customizes the loader column bindings.
type Option func(*Loader)

// WithDateColumn binds the date column to the given header name.
func WithDateColumn(name string) Option {
	return func(loader *Loader) {
		loader.dateColumn = name
	}
}

// WithValueColumn binds the observed-value column to the given header name.
func WithValueColumn(name string) Option {
	return func(loader *Loader) {
		loader.valueColumn = name
	}
}

// WithFormatColumn binds the optional display-format column. The value of
// the first row is used for the whole dataset.
func WithFormatColumn(name string) Option {
	return func(loader *Loader) {
		loader.formatColumn = name
	}
}

// WithDateLayout sets the layout used to parse the date column.
func WithDateLayout(layout string) Option {
	return func(loader *Loader) {
		loader.dateLayout = layout
	}
}

// Load reads the CSV file and returns a validated dataframe. A missing
// required column is reported here, with its name, instead of failing
// later during classification.
func Load(file string, options ...Option) (*model.Dataframe, error) {
	loader := &Loader{
		dateColumn:  DefaultDateColumn,
		valueColumn: DefaultValueColumn,
		dateLayout:  DefaultDateLayout,
	}

	for _, option := range options {
		option(loader)
	}

	csvFile, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer csvFile.Close()

	lines, err := csv.NewReader(csvFile).ReadAll()
	if err != nil {
		return nil, err
	}

	if len(lines) < 2 {
		return nil, fmt.Errorf("dataset: no data rows in %s", file)
	}

	// map each header label with its index
	headers := lo.Map(lines[0], func(header string, _ int) string {
		return strings.ToLower(strings.TrimSpace(header))
	})
	index := make(map[string]int, len(headers))
	for i, header := range headers {
		index[header] = i
	}

	required := append([]string{loader.dateColumn, loader.valueColumn}, fixedColumns...)
	if loader.formatColumn != "" {
		required = append(required, loader.formatColumn)
	}

	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("dataset: missing required column %q in %s", name, file)
		}
	}

	df := &model.Dataframe{}
	progressBar := progressbar.Default(int64(len(lines) - 1))
	for _, line := range lines[1:] {
		point, err := loader.parseRow(line, index)
		if err != nil {
			return nil, err
		}
		df.Push(point)

		if err := progressBar.Add(1); err != nil {
			log.Warnf("update progressbar fail: %v", err)
		}
	}

	if loader.formatColumn != "" {
		df.Format = strings.TrimSpace(lines[1][index[loader.formatColumn]])
	}

	if err := df.Validate(); err != nil {
		return nil, err
	}

	return df, nil
}

func (l Loader) parseRow(line []string, index map[string]int) (model.Point, error) {
	var (
		point model.Point
		err   error
	)

	raw := line[index[l.dateColumn]]
	point.Date, err = time.Parse(l.dateLayout, raw)
	if err != nil {
		return point, fmt.Errorf("dataset: invalid date %q: %w", raw, err)
	}

	floatColumns := []struct {
		name   string
		target *float64
	}{
		{l.valueColumn, &point.Value},
		{"mean", &point.Mean},
		{"lpl", &point.LowerLimit},
		{"upl", &point.UpperLimit},
		{"relative_to_mean", &point.RelativeToMean},
	}

	for _, column := range floatColumns {
		*column.target, err = strconv.ParseFloat(line[index[column.name]], 64)
		if err != nil {
			return point, fmt.Errorf("dataset: column %s: %w", column.name, err)
		}
	}

	boolColumns := []struct {
		name   string
		target *bool
	}{
		{"outside_limits", &point.OutsideLimits},
		{"close_to_limits", &point.CloseToLimits},
	}

	for _, column := range boolColumns {
		*column.target, err = strconv.ParseBool(strings.ToLower(line[index[column.name]]))
		if err != nil {
			return point, fmt.Errorf("dataset: column %s: %w", column.name, err)
		}
	}

	return point, nil
}

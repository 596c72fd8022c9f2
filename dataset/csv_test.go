package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	df, err := Load("testdata/measures.csv")
	require.NoError(t, err)
	require.Equal(t, 12, df.Len())

	first := df.Row(0)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 100.0, first.Value)
	assert.Equal(t, 100.0, first.Mean)
	assert.Equal(t, 80.0, first.LowerLimit)
	assert.Equal(t, 120.0, first.UpperLimit)
	assert.False(t, first.OutsideLimits)

	outside := df.Row(3)
	assert.True(t, outside.OutsideLimits)
	assert.Equal(t, 25.0, outside.RelativeToMean)

	nearLimit := df.Row(2)
	assert.True(t, nearLimit.CloseToLimits)

	assert.Empty(t, df.Format)
}

func TestLoadFormatColumn(t *testing.T) {
	df, err := Load("testdata/rates.csv",
		WithValueColumn("rate"),
		WithFormatColumn("format"),
	)
	require.NoError(t, err)
	require.Equal(t, 3, df.Len())

	assert.Equal(t, ".1%", df.Format)
	assert.Equal(t, 0.97, df.Row(1).Value)
	assert.True(t, df.Row(1).OutsideLimits)
}

func TestLoadMissingColumn(t *testing.T) {
	_, err := Load("testdata/measures.csv", WithValueColumn("attendances"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required column "attendances"`)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/nope.csv")
	require.Error(t, err)
}

func TestLoadCustomDateLayout(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dayfirst.csv")
	content := "date,value,mean,lpl,upl,outside_limits,close_to_limits,relative_to_mean\n" +
		"31/01/2023,10,10,5,15,false,false,0\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	df, err := Load(file, WithDateLayout("02/01/2006"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC), df.Row(0).Date)
}

func TestLoadInvalidBool(t *testing.T) {
	file := filepath.Join(t.TempDir(), "badbool.csv")
	content := "date,value,mean,lpl,upl,outside_limits,close_to_limits,relative_to_mean\n" +
		"2023-01-01,10,10,5,15,maybe,false,0\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	_, err := Load(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside_limits")
}

func TestLoadNoRows(t *testing.T) {
	file := filepath.Join(t.TempDir(), "empty.csv")
	content := "date,value,mean,lpl,upl,outside_limits,close_to_limits,relative_to_mean\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	_, err := Load(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data rows")
}

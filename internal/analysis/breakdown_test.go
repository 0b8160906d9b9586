package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStationUsage(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)

	usage, err := analyzer.StationUsage(context.Background(), "Addison")
	require.NoError(t, err)

	assert.Equal(t, "Addison", usage.Station)
	assert.Equal(t, int64(1390), usage.Weekday)
	assert.Equal(t, int64(50), usage.Saturday)
	assert.Equal(t, int64(30), usage.SundayHoliday)
	assert.Equal(t, int64(1470), usage.Total)
	assert.InDelta(t, 94.56, usage.WeekdayPct, 1e-9)
	assert.InDelta(t, 3.40, usage.SaturdayPct, 1e-9)
	assert.InDelta(t, 2.04, usage.SundayHolidayPct, 1e-9)
}

func TestStationUsageZeroTotalReportsZeroPercentages(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)

	// Austin has ridership rows, all with zero riders
	usage, err := analyzer.StationUsage(context.Background(), "Austin")
	require.NoError(t, err)

	assert.Zero(t, usage.Total)
	assert.Zero(t, usage.WeekdayPct)
	assert.Zero(t, usage.SaturdayPct)
	assert.Zero(t, usage.SundayHolidayPct)
}

func TestStationUsageNoRowsIsNotFound(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)

	// Argyle exists in the catalog but has no ridership rows
	_, err := analyzer.StationUsage(context.Background(), "Argyle")
	assert.True(t, IsKind(err, KindNotFound))
}

func TestStationUsageUnknownStationIsNotFound(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)

	_, err := analyzer.StationUsage(context.Background(), "Graceland")
	assert.True(t, IsKind(err, KindNotFound))
}

func TestWeekdayRanking(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)

	ranking, err := analyzer.WeekdayRanking(context.Background())
	require.NoError(t, err)

	require.Len(t, ranking, 3)
	assert.Equal(t, "Addison", ranking[0].Station)
	assert.Equal(t, int64(1390), ranking[0].Riders)
	assert.Equal(t, "Belmont", ranking[1].Station)
	assert.Equal(t, int64(150), ranking[1].Riders)
	assert.Equal(t, "Austin", ranking[2].Station)
	assert.Zero(t, ranking[2].Riders)

	// Shares of the 1540 system-wide weekday total
	assert.InDelta(t, 90.26, ranking[0].Pct, 1e-9)
	assert.InDelta(t, 9.74, ranking[1].Pct, 1e-9)
	assert.Zero(t, ranking[2].Pct)

	for i := 1; i < len(ranking); i++ {
		assert.GreaterOrEqual(t, ranking[i-1].Riders, ranking[i].Riders, "ranking must descend")
	}
}

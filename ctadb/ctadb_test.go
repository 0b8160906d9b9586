package ctadb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	client, err := NewMemoryClient(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() }) // nolint:errcheck

	require.NoError(t, InsertStations(client.DB, []Station{
		{ID: 1, Name: "Addison"},
		{ID: 2, Name: "Argyle"},
		{ID: 3, Name: "Austin"},
		{ID: 4, Name: "Belmont"},
	}))

	require.NoError(t, InsertLines(client.DB, []Line{
		{ID: 1, Color: "Red"},
		{ID: 2, Color: "Purple"},
	}))

	require.NoError(t, InsertStops(client.DB, []Stop{
		{ID: 10, StationID: 1, Name: "Addison (N)", Direction: "N", ADA: true, Latitude: 41.947, Longitude: -87.654},
		{ID: 11, StationID: 1, Name: "Addison (S)", Direction: "S", ADA: false, Latitude: 41.947, Longitude: -87.654},
		{ID: 12, StationID: 4, Name: "Belmont (S)", Direction: "S", ADA: true, Latitude: 41.940, Longitude: -87.653},
		{ID: 13, StationID: 3, Name: "Austin (S)", Direction: "S", ADA: false, Latitude: 41.870, Longitude: -87.776},
	}))

	require.NoError(t, InsertStopDetails(client.DB, []StopDetail{
		{StopID: 10, LineID: 1},
		{StopID: 11, LineID: 1},
		{StopID: 12, LineID: 1},
		{StopID: 12, LineID: 2},
	}))

	require.NoError(t, InsertRidership(client.DB, []RidershipRecord{
		{StationID: 1, Date: "2020-01-01", DayType: DayWeekday, Riders: 100},
		{StationID: 1, Date: "2020-01-02", DayType: DayWeekday, Riders: 200},
		{StationID: 1, Date: "2020-01-03", DayType: DaySaturday, Riders: 50},
		{StationID: 1, Date: "2020-01-04", DayType: DaySundayHoliday, Riders: 30},
		{StationID: 1, Date: "2020-01-05", DayType: DayWeekday, Riders: 120},
		{StationID: 1, Date: "2020-01-06", DayType: DayWeekday, Riders: 80},
		{StationID: 1, Date: "2020-01-07", DayType: DayWeekday, Riders: 90},
		{StationID: 1, Date: "2020-02-01", DayType: DayWeekday, Riders: 500},
		{StationID: 1, Date: "2021-03-01", DayType: DayWeekday, Riders: 300},
		{StationID: 4, Date: "2020-01-02", DayType: DayWeekday, Riders: 10},
		{StationID: 4, Date: "2020-01-03", DayType: DayWeekday, Riders: 20},
		{StationID: 4, Date: "2020-01-04", DayType: DayWeekday, Riders: 30},
		{StationID: 4, Date: "2020-01-05", DayType: DayWeekday, Riders: 40},
		{StationID: 4, Date: "2020-01-06", DayType: DayWeekday, Riders: 50},
		{StationID: 3, Date: "2020-01-01", DayType: DayWeekday, Riders: 0},
	}))

	return client
}

func TestQueryStationsMatching(t *testing.T) {
	client := newSeededClient(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{name: "percent wildcard", pattern: "A%", want: []string{"Addison", "Argyle", "Austin"}},
		{name: "underscore wildcard", pattern: "Arg_le", want: []string{"Argyle"}},
		{name: "exact", pattern: "Belmont", want: []string{"Belmont"}},
		{name: "no match", pattern: "Midway%", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stations, err := client.QueryStationsMatching(ctx, tt.pattern)
			require.NoError(t, err)

			var names []string
			for _, s := range stations {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestQueryStationByName(t *testing.T) {
	client := newSeededClient(t)
	ctx := context.Background()

	station, ok, err := client.QueryStationByName(ctx, "Belmont")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Station{ID: 4, Name: "Belmont"}, station)

	_, ok, err = client.QueryStationByName(ctx, "Midway")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQueryStationByNameDuplicatesPreferLowestID(t *testing.T) {
	client := newSeededClient(t)
	ctx := context.Background()

	// The raw CTA data carries a handful of stations twice under the same name
	require.NoError(t, InsertStations(client.DB, []Station{{ID: 99, Name: "Belmont"}}))

	station, ok, err := client.QueryStationByName(ctx, "Belmont")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(4), station.ID)
}

func TestQueryLineColor(t *testing.T) {
	client := newSeededClient(t)
	ctx := context.Background()

	color, ok, err := client.QueryLineColor(ctx, "RED")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Red", color)

	_, ok, err = client.QueryLineColor(ctx, "Mauve")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQueryRidershipSum(t *testing.T) {
	client := newSeededClient(t)
	ctx := context.Background()

	sum, hasData, err := client.QueryRidershipSum(ctx, "Addison", DayWeekday)
	require.NoError(t, err)
	assert.True(t, hasData)
	assert.Equal(t, int64(1390), sum)

	sum, hasData, err = client.QueryRidershipSum(ctx, "Addison", DayAll)
	require.NoError(t, err)
	assert.True(t, hasData)
	assert.Equal(t, int64(1470), sum)

	// Zero riders with rows present is still data
	sum, hasData, err = client.QueryRidershipSum(ctx, "Austin", DayAll)
	require.NoError(t, err)
	assert.True(t, hasData)
	assert.Zero(t, sum)

	// No rows at all is not
	_, hasData, err = client.QueryRidershipSum(ctx, "Argyle", DayAll)
	require.NoError(t, err)
	assert.False(t, hasData)
}

func TestQueryRidershipTotal(t *testing.T) {
	client := newSeededClient(t)
	ctx := context.Background()

	total, err := client.QueryRidershipTotal(ctx, DayAll)
	require.NoError(t, err)
	assert.Equal(t, int64(1620), total)

	weekday, err := client.QueryRidershipTotal(ctx, DayWeekday)
	require.NoError(t, err)
	assert.Equal(t, int64(1540), weekday)

	saturday, err := client.QueryRidershipTotal(ctx, DaySaturday)
	require.NoError(t, err)
	assert.Equal(t, int64(50), saturday)
}

func TestQueryRidershipTotalEmptyTableIsZero(t *testing.T) {
	ctx := context.Background()
	client, err := NewMemoryClient(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() }) // nolint:errcheck

	total, err := client.QueryRidershipTotal(ctx, DayAll)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestQueryWeekdayRidershipByStation(t *testing.T) {
	client := newSeededClient(t)

	totals, err := client.QueryWeekdayRidershipByStation(context.Background())
	require.NoError(t, err)

	require.Len(t, totals, 3)
	assert.Equal(t, StationTotal{Station: "Addison", Riders: 1390}, totals[0])
	assert.Equal(t, StationTotal{Station: "Belmont", Riders: 150}, totals[1])
	assert.Equal(t, StationTotal{Station: "Austin", Riders: 0}, totals[2])
}

func TestQueryYearlyRidership(t *testing.T) {
	client := newSeededClient(t)

	totals, err := client.QueryYearlyRidership(context.Background(), "Addison")
	require.NoError(t, err)

	assert.Equal(t, []PeriodTotal{
		{Period: "2020", Riders: 1170},
		{Period: "2021", Riders: 300},
	}, totals)
}

func TestQueryMonthlyRidership(t *testing.T) {
	client := newSeededClient(t)
	ctx := context.Background()

	totals, err := client.QueryMonthlyRidership(ctx, "Addison", "2020")
	require.NoError(t, err)

	assert.Equal(t, []PeriodTotal{
		{Period: "01/2020", Riders: 670},
		{Period: "02/2020", Riders: 500},
	}, totals)

	// A garbage year selects nothing rather than erroring
	totals, err = client.QueryMonthlyRidership(ctx, "Addison", "not-a-year")
	require.NoError(t, err)
	assert.Empty(t, totals)
}

func TestQueryDailyWindow(t *testing.T) {
	client := newSeededClient(t)
	ctx := context.Background()

	first, err := client.QueryDailyWindow(ctx, "Addison", "2020", false, 5)
	require.NoError(t, err)
	require.Len(t, first, 5)
	assert.Equal(t, "2020-01-01", first[0].Date)
	assert.Equal(t, int64(100), first[0].Riders)
	assert.Equal(t, "2020-01-05", first[4].Date)

	last, err := client.QueryDailyWindow(ctx, "Addison", "2020", true, 5)
	require.NoError(t, err)
	require.Len(t, last, 5)
	assert.Equal(t, "2020-02-01", last[0].Date)
	assert.Equal(t, "2020-01-04", last[4].Date)
}

func TestQueryDailyRidership(t *testing.T) {
	client := newSeededClient(t)

	days, err := client.QueryDailyRidership(context.Background(), "Belmont", "2020")
	require.NoError(t, err)

	require.Len(t, days, 5)
	assert.Equal(t, DailyRidership{Date: "2020-01-02", StationID: 4, Riders: 10}, days[0])
	assert.Equal(t, DailyRidership{Date: "2020-01-06", StationID: 4, Riders: 50}, days[4])
}

func TestQueryStopsByLineAndDirection(t *testing.T) {
	client := newSeededClient(t)
	ctx := context.Background()

	stops, err := client.QueryStopsByLineAndDirection(ctx, "Red", "s")
	require.NoError(t, err)
	require.Len(t, stops, 2)
	assert.Equal(t, "Addison (S)", stops[0].Name)
	assert.Equal(t, "Belmont (S)", stops[1].Name)
	assert.True(t, stops[1].ADA)

	stops, err = client.QueryStopsByLineAndDirection(ctx, "Purple", "N")
	require.NoError(t, err)
	assert.Empty(t, stops)
}

func TestQueryStopCountsByColorAndDirection(t *testing.T) {
	client := newSeededClient(t)

	counts, err := client.QueryStopCountsByColorAndDirection(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []DirectionCount{
		{Color: "Purple", Direction: "S", Stops: 1},
		{Color: "Red", Direction: "N", Stops: 1},
		{Color: "Red", Direction: "S", Stops: 2},
	}, counts)
}

func TestQueryStopsInWindow(t *testing.T) {
	client := newSeededClient(t)
	ctx := context.Background()

	locations, err := client.QueryStopsInWindow(ctx, 41.931, 41.959, -87.67, -87.63)
	require.NoError(t, err)

	// Addison's two platforms share coordinates and collapse to one row
	require.Len(t, locations, 2)
	assert.Equal(t, "Addison", locations[0].StationName)
	assert.Equal(t, "Belmont", locations[1].StationName)

	locations, err = client.QueryStopsInWindow(ctx, 40.0, 40.1, -87.9, -87.8)
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestQueryOverviewStats(t *testing.T) {
	client := newSeededClient(t)

	stats, err := client.QueryOverviewStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.Stations)
	assert.Equal(t, int64(4), stats.Stops)
	assert.Equal(t, int64(15), stats.RidershipRows)
	assert.Equal(t, int64(1620), stats.TotalRiders)
	assert.Equal(t, "2020-01-01", stats.StartDate)
	assert.Equal(t, "2021-03-01", stats.EndDate)
}

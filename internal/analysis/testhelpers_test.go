package analysis

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drodr32/CTA-Database-App/ctadb"
)

// newTestAnalyzer builds an analyzer over an in-memory database seeded with
// a small but representative slice of the L: three-plus stations, two lines,
// stops in both directions, and ridership spanning two years.
func newTestAnalyzer(t *testing.T) (*Analyzer, *ctadb.Client) {
	t.Helper()
	ctx := context.Background()

	client, err := ctadb.NewMemoryClient(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() }) // nolint:errcheck

	seedFixture(t, client)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAnalyzer(client, logger), client
}

func seedFixture(t *testing.T, client *ctadb.Client) {
	t.Helper()

	require.NoError(t, ctadb.InsertStations(client.DB, []ctadb.Station{
		{ID: 1, Name: "Addison"},
		{ID: 2, Name: "Argyle"},
		{ID: 3, Name: "Austin"},
		{ID: 4, Name: "Belmont"},
	}))

	require.NoError(t, ctadb.InsertLines(client.DB, []ctadb.Line{
		{ID: 1, Color: "Red"},
		{ID: 2, Color: "Purple"},
	}))

	require.NoError(t, ctadb.InsertStops(client.DB, []ctadb.Stop{
		{ID: 10, StationID: 1, Name: "Addison (N)", Direction: "N", ADA: true, Latitude: 41.947, Longitude: -87.654},
		{ID: 11, StationID: 1, Name: "Addison (S)", Direction: "S", ADA: false, Latitude: 41.947, Longitude: -87.654},
		{ID: 12, StationID: 4, Name: "Belmont (S)", Direction: "S", ADA: true, Latitude: 41.940, Longitude: -87.653},
		{ID: 13, StationID: 3, Name: "Austin (S)", Direction: "S", ADA: false, Latitude: 41.870, Longitude: -87.776},
	}))

	require.NoError(t, ctadb.InsertStopDetails(client.DB, []ctadb.StopDetail{
		{StopID: 10, LineID: 1},
		{StopID: 11, LineID: 1},
		{StopID: 12, LineID: 1},
		{StopID: 12, LineID: 2}, // Purple only runs South in this fixture
	}))

	require.NoError(t, ctadb.InsertRidership(client.DB, []ctadb.RidershipRecord{
		// Addison: eight days across 2020 plus one in 2021
		{StationID: 1, Date: "2020-01-01", DayType: ctadb.DayWeekday, Riders: 100},
		{StationID: 1, Date: "2020-01-02", DayType: ctadb.DayWeekday, Riders: 200},
		{StationID: 1, Date: "2020-01-03", DayType: ctadb.DaySaturday, Riders: 50},
		{StationID: 1, Date: "2020-01-04", DayType: ctadb.DaySundayHoliday, Riders: 30},
		{StationID: 1, Date: "2020-01-05", DayType: ctadb.DayWeekday, Riders: 120},
		{StationID: 1, Date: "2020-01-06", DayType: ctadb.DayWeekday, Riders: 80},
		{StationID: 1, Date: "2020-01-07", DayType: ctadb.DayWeekday, Riders: 90},
		{StationID: 1, Date: "2020-02-01", DayType: ctadb.DayWeekday, Riders: 500},
		{StationID: 1, Date: "2021-03-01", DayType: ctadb.DayWeekday, Riders: 300},
		// Belmont: five days, offset by one from Addison's run
		{StationID: 4, Date: "2020-01-02", DayType: ctadb.DayWeekday, Riders: 10},
		{StationID: 4, Date: "2020-01-03", DayType: ctadb.DayWeekday, Riders: 20},
		{StationID: 4, Date: "2020-01-04", DayType: ctadb.DayWeekday, Riders: 30},
		{StationID: 4, Date: "2020-01-05", DayType: ctadb.DayWeekday, Riders: 40},
		{StationID: 4, Date: "2020-01-06", DayType: ctadb.DayWeekday, Riders: 50},
		// Austin: rows exist but nobody rides
		{StationID: 3, Date: "2020-01-01", DayType: ctadb.DayWeekday, Riders: 0},
		{StationID: 3, Date: "2020-01-04", DayType: ctadb.DaySaturday, Riders: 0},
		{StationID: 3, Date: "2020-01-05", DayType: ctadb.DaySundayHoliday, Riders: 0},
		// Argyle intentionally has no ridership at all
	}))
}

package ctadb

import (
	"context"
	"database/sql"
	"fmt"
)

// OverviewStats are the headline numbers shown when a session starts
type OverviewStats struct {
	Stations      int64
	Stops         int64
	RidershipRows int64
	TotalRiders   int64
	StartDate     string
	EndDate       string
}

// QueryOverviewStats gathers the general statistics for the session banner.
func (c *Client) QueryOverviewStats(ctx context.Context) (OverviewStats, error) {
	var stats OverviewStats

	if err := c.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM Stations;`).Scan(&stats.Stations); err != nil {
		return stats, fmt.Errorf("error counting stations: %w", err)
	}

	if err := c.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM Stops;`).Scan(&stats.Stops); err != nil {
		return stats, fmt.Errorf("error counting stops: %w", err)
	}

	if err := c.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM Ridership;`).Scan(&stats.RidershipRows); err != nil {
		return stats, fmt.Errorf("error counting ridership rows: %w", err)
	}

	var start, end sql.NullString
	err := c.DB.QueryRowContext(ctx, `
		SELECT MIN(DATE(Ride_Date)) AS start_date, MAX(DATE(Ride_Date)) AS end_date
		FROM Ridership;`,
	).Scan(&start, &end)
	if err != nil {
		return stats, fmt.Errorf("error querying date range: %w", err)
	}
	stats.StartDate = start.String
	stats.EndDate = end.String

	var total sql.NullInt64
	if err := c.DB.QueryRowContext(ctx, `SELECT SUM(Num_Riders) FROM Ridership;`).Scan(&total); err != nil {
		return stats, fmt.Errorf("error summing ridership: %w", err)
	}
	stats.TotalRiders = total.Int64

	return stats, nil
}

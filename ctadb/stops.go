package ctadb

import (
	"context"
	"database/sql"
	"fmt"
)

// Stop represents a platform stop belonging to a station
type Stop struct {
	ID        int64   // Stop_ID
	StationID int64   // Station_ID
	Name      string  // Stop_Name
	Direction string  // Direction (N/S/E/W or compound)
	ADA       bool    // ADA accessibility flag
	Latitude  float64 // Latitude
	Longitude float64 // Longitude
}

// StopDetail associates a stop with a line
type StopDetail struct {
	StopID int64 // Stop_ID
	LineID int64 // Line_ID
}

// DirectionalStop is a stop on a line running in a particular direction
type DirectionalStop struct {
	Name      string
	Direction string
	ADA       bool
}

// DirectionCount is the number of stops a line color has in one direction
type DirectionCount struct {
	Color     string
	Direction string
	Stops     int64
}

// StopLocation is a stop's coordinates tagged with its station's name
type StopLocation struct {
	StationName string
	Latitude    float64
	Longitude   float64
}

// QueryStopsByLineAndDirection returns the stops served by the given line
// color in the given direction, ordered by stop name. The color must already
// carry the catalog's casing; the direction match is case-insensitive.
func (c *Client) QueryStopsByLineAndDirection(ctx context.Context, color, direction string) ([]DirectionalStop, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT Stop_Name, Direction, ADA
		FROM Stops
		JOIN StopDetails ON Stops.Stop_ID = StopDetails.Stop_ID
		JOIN Lines ON StopDetails.Line_ID = Lines.Line_ID
		WHERE Lines.Color = ? AND LOWER(Stops.Direction) = LOWER(?)
		ORDER BY Stop_Name ASC;`,
		color, direction,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying stops by line and direction: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var stops []DirectionalStop
	for rows.Next() {
		var s DirectionalStop
		var ada int64
		if err := rows.Scan(&s.Name, &s.Direction, &ada); err != nil {
			return nil, fmt.Errorf("error scanning stop row: %w", err)
		}
		s.ADA = ada == 1
		stops = append(stops, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stop rows: %w", err)
	}

	return stops, nil
}

// QueryStopCount returns the total number of stops in the system.
func (c *Client) QueryStopCount(ctx context.Context) (int64, error) {
	var count int64
	if err := c.DB.QueryRowContext(ctx, `SELECT COUNT(Stop_ID) FROM Stops;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting stops: %w", err)
	}
	return count, nil
}

// QueryStopCountsByColorAndDirection returns the number of stops for each
// line color broken out by direction, ordered by color then direction.
func (c *Client) QueryStopCountsByColorAndDirection(ctx context.Context) ([]DirectionCount, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT Lines.Color, Stops.Direction, COUNT(Stops.Stop_ID)
		FROM Stops
		JOIN StopDetails ON Stops.Stop_ID = StopDetails.Stop_ID
		JOIN Lines ON StopDetails.Line_ID = Lines.Line_ID
		GROUP BY Color, Direction
		ORDER BY Color ASC, Direction ASC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying stop counts: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var counts []DirectionCount
	for rows.Next() {
		var dc DirectionCount
		if err := rows.Scan(&dc.Color, &dc.Direction, &dc.Stops); err != nil {
			return nil, fmt.Errorf("error scanning stop count row: %w", err)
		}
		counts = append(counts, dc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stop count rows: %w", err)
	}

	return counts, nil
}

// QueryStopsInWindow returns the stops whose coordinates fall inside the
// inclusive bounding box, deduplicated by distinct (latitude, longitude)
// pair and ordered by station name then stop ID. The bounds are bound as
// query parameters; they are pre-validated but never interpolated into the
// SQL text.
func (c *Client) QueryStopsInWindow(ctx context.Context, latMin, latMax, lonMin, lonMax float64) ([]StopLocation, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT Station_Name, Latitude, Longitude
		FROM Stops
		JOIN Stations ON Stops.Station_ID = Stations.Station_ID
		WHERE Latitude BETWEEN ? AND ? AND Longitude BETWEEN ? AND ?
		GROUP BY Latitude, Longitude
		ORDER BY Stations.Station_Name, Stop_ID ASC;`,
		latMin, latMax, lonMin, lonMax,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying stops in window: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var locations []StopLocation
	for rows.Next() {
		var loc StopLocation
		if err := rows.Scan(&loc.StationName, &loc.Latitude, &loc.Longitude); err != nil {
			return nil, fmt.Errorf("error scanning stop location: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stop locations: %w", err)
	}

	return locations, nil
}

// InsertStops adds stops to the database. Test fixtures only.
func InsertStops(db *sql.DB, stops []Stop) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO Stops (
			Stop_ID, Station_ID, Stop_Name, Direction, ADA, Latitude, Longitude
		) VALUES (?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, stop := range stops {
		ada := 0
		if stop.ADA {
			ada = 1
		}
		_, err := stmt.Exec(
			stop.ID, stop.StationID, stop.Name, stop.Direction, ada,
			stop.Latitude, stop.Longitude,
		)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting stop: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertStopDetails adds stop/line associations to the database. Test
// fixtures only.
func InsertStopDetails(db *sql.DB, details []StopDetail) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO StopDetails (Stop_ID, Line_ID)
		VALUES (?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, detail := range details {
		if _, err := stmt.Exec(detail.StopID, detail.LineID); err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting stop detail: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

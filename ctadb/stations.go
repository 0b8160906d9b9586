package ctadb

import (
	"context"
	"database/sql"
	"fmt"
)

// Station represents an L station
type Station struct {
	ID   int64  // Station_ID
	Name string // Station_Name
}

// QueryStationsMatching returns the stations whose name matches the given
// LIKE pattern (SQL wildcards % and _ allowed), ordered by name ascending.
func (c *Client) QueryStationsMatching(ctx context.Context, pattern string) ([]Station, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT Station_ID, Station_Name
		FROM Stations
		WHERE Station_Name LIKE ?
		ORDER BY Station_Name ASC;`,
		pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying stations: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var stations []Station
	for rows.Next() {
		var s Station
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("error scanning station row: %w", err)
		}
		stations = append(stations, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating station rows: %w", err)
	}

	return stations, nil
}

// QueryStationNamesMatching returns the distinct station names matching the
// given LIKE pattern, ordered ascending. Name resolution works over this
// list: zero names is a miss, more than one is ambiguous.
func (c *Client) QueryStationNamesMatching(ctx context.Context, pattern string) ([]string, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT DISTINCT Station_Name
		FROM Stations
		WHERE Station_Name LIKE ?
		ORDER BY Station_Name ASC;`,
		pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying station names: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning station name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating station names: %w", err)
	}

	return names, nil
}

// QueryStationByName returns the station with exactly the given name. When
// duplicate names exist in the raw data the lowest ID wins.
func (c *Client) QueryStationByName(ctx context.Context, name string) (Station, bool, error) {
	var s Station
	err := c.DB.QueryRowContext(ctx, `
		SELECT Station_ID, Station_Name
		FROM Stations
		WHERE Station_Name = ?
		ORDER BY Station_ID ASC
		LIMIT 1;`,
		name,
	).Scan(&s.ID, &s.Name)
	if err == sql.ErrNoRows {
		return Station{}, false, nil
	}
	if err != nil {
		return Station{}, false, fmt.Errorf("error querying station by name: %w", err)
	}
	return s, true, nil
}

// InsertStations adds stations to the database. Test fixtures only.
func InsertStations(db *sql.DB, stations []Station) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO Stations (Station_ID, Station_Name)
		VALUES (?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, station := range stations {
		if _, err := stmt.Exec(station.ID, station.Name); err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting station: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

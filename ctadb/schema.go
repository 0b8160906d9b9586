package ctadb

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateTables creates the ridership schema in an empty database. The
// production database ships pre-populated, so this is only exercised by test
// fixtures.
func CreateTables(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck

	if err := createTables(tx); err != nil {
		return err
	}

	// Indexes for the join-heavy aggregate queries
	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_stops_station_id ON Stops(Station_ID);
		CREATE INDEX IF NOT EXISTS idx_stopdetails_stop_id ON StopDetails(Stop_ID);
		CREATE INDEX IF NOT EXISTS idx_stopdetails_line_id ON StopDetails(Line_ID);
		CREATE INDEX IF NOT EXISTS idx_ridership_station_id ON Ridership(Station_ID);
		CREATE INDEX IF NOT EXISTS idx_ridership_date ON Ridership(Ride_Date);
	`)
	if err != nil {
		return fmt.Errorf("error creating indexes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func createTables(tx *sql.Tx) error {
	if err := createTable(tx, "Stations", `
		CREATE TABLE IF NOT EXISTS Stations (
			Station_ID INTEGER PRIMARY KEY,
			Station_Name TEXT NOT NULL
		);`,
	); err != nil {
		return err
	}

	if err := createTable(tx, "Stops", `
		CREATE TABLE IF NOT EXISTS Stops (
			Stop_ID INTEGER PRIMARY KEY,
			Station_ID INTEGER NOT NULL,
			Stop_Name TEXT NOT NULL,
			Direction TEXT,
			ADA INTEGER NOT NULL DEFAULT 0,
			Latitude REAL,
			Longitude REAL,
			FOREIGN KEY (Station_ID) REFERENCES Stations(Station_ID)
		);`,
	); err != nil {
		return err
	}

	if err := createTable(tx, "Lines", `
		CREATE TABLE IF NOT EXISTS Lines (
			Line_ID INTEGER PRIMARY KEY,
			Color TEXT NOT NULL
		);`,
	); err != nil {
		return err
	}

	if err := createTable(tx, "StopDetails", `
		CREATE TABLE IF NOT EXISTS StopDetails (
			Stop_ID INTEGER NOT NULL,
			Line_ID INTEGER NOT NULL,
			FOREIGN KEY (Stop_ID) REFERENCES Stops(Stop_ID),
			FOREIGN KEY (Line_ID) REFERENCES Lines(Line_ID)
		);`,
	); err != nil {
		return err
	}

	return createTable(tx, "Ridership", `
		CREATE TABLE IF NOT EXISTS Ridership (
			Station_ID INTEGER NOT NULL,
			Ride_Date TEXT NOT NULL,
			Type_of_Day TEXT NOT NULL,
			Num_Riders INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (Station_ID) REFERENCES Stations(Station_ID)
		);`,
	)
}

// createTable creates a table in the database
func createTable(tx *sql.Tx, tableName string, createStmt string) error {
	if _, err := tx.Exec(createStmt); err != nil {
		return fmt.Errorf("error creating table %s: %w", tableName, err)
	}
	return nil
}

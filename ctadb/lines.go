package ctadb

import (
	"context"
	"database/sql"
	"fmt"
)

// Line represents an L line, identified by its color
type Line struct {
	ID    int64  // Line_ID
	Color string // Color
}

// QueryLineColor matches a color case-insensitively against the Lines
// catalog and returns the catalog's casing of it. The boolean reports
// whether the color exists at all.
func (c *Client) QueryLineColor(ctx context.Context, color string) (string, bool, error) {
	var catalogColor string
	err := c.DB.QueryRowContext(ctx, `
		SELECT Color
		FROM Lines
		WHERE LOWER(Color) = LOWER(?);`,
		color,
	).Scan(&catalogColor)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error querying line color: %w", err)
	}
	return catalogColor, true, nil
}

// InsertLines adds lines to the database. Test fixtures only.
func InsertLines(db *sql.DB, lines []Line) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO Lines (Line_ID, Color)
		VALUES (?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, line := range lines {
		if _, err := stmt.Exec(line.ID, line.Color); err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

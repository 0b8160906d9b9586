package ctadb

import (
	"context"
	"database/sql"
	"fmt"
)

// DayType classifies a calendar date for ridership segmentation. The values
// are the single-letter codes stored in Ridership.Type_of_Day.
type DayType string

const (
	DayAll           DayType = ""  // no day-type filter
	DayWeekday       DayType = "W" // Monday through Friday
	DaySaturday      DayType = "A" // Saturday
	DaySundayHoliday DayType = "U" // Sunday or holiday
)

// RidershipRecord is one day of rider counts at one station
type RidershipRecord struct {
	StationID int64   // Station_ID
	Date      string  // Ride_Date
	DayType   DayType // Type_of_Day
	Riders    int64   // Num_Riders
}

// StationTotal pairs a station name with an aggregate rider count
type StationTotal struct {
	Station string
	Riders  int64
}

// PeriodTotal pairs a calendar period label with an aggregate rider count
type PeriodTotal struct {
	Period string
	Riders int64
}

// DailyRidership is one day's rider count within a comparison window
type DailyRidership struct {
	Date      string // YYYY-MM-DD
	StationID int64
	Riders    int64
}

// QueryRidershipSum returns the summed rider count at the named station,
// optionally filtered to a single day type. The boolean reports whether any
// ridership rows exist for the filter; a sum of zero with rows present is
// distinct from no rows at all.
func (c *Client) QueryRidershipSum(ctx context.Context, stationName string, dayType DayType) (int64, bool, error) {
	query := `
		SELECT SUM(Num_Riders)
		FROM Ridership
		JOIN Stations ON Ridership.Station_ID = Stations.Station_ID
		WHERE Stations.Station_Name = ?`
	args := []any{stationName}
	if dayType != DayAll {
		query += ` AND Ridership.Type_of_Day = ?`
		args = append(args, string(dayType))
	}

	var sum sql.NullInt64
	if err := c.DB.QueryRowContext(ctx, query+";", args...).Scan(&sum); err != nil {
		return 0, false, fmt.Errorf("error querying ridership sum: %w", err)
	}
	if !sum.Valid {
		return 0, false, nil
	}
	return sum.Int64, true, nil
}

// QueryRidershipTotal returns the summed rider count across all stations for
// one day type (or all day types with DayAll). No rows is zero ridership.
func (c *Client) QueryRidershipTotal(ctx context.Context, dayType DayType) (int64, error) {
	query := `SELECT SUM(Num_Riders) FROM Ridership`
	var args []any
	if dayType != DayAll {
		query += ` WHERE Type_of_Day = ?`
		args = append(args, string(dayType))
	}

	var sum sql.NullInt64
	if err := c.DB.QueryRowContext(ctx, query+";", args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("error querying ridership total: %w", err)
	}
	return sum.Int64, nil
}

// QueryWeekdayRidershipByStation returns every station's summed weekday
// ridership, ordered descending by the sum.
func (c *Client) QueryWeekdayRidershipByStation(ctx context.Context) ([]StationTotal, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT Stations.Station_Name, SUM(Ridership.Num_Riders) AS WeekdayRidership
		FROM Ridership
		JOIN Stations ON Ridership.Station_ID = Stations.Station_ID
		WHERE Ridership.Type_of_Day = 'W'
		GROUP BY Stations.Station_Name
		ORDER BY WeekdayRidership DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying weekday ridership: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var totals []StationTotal
	for rows.Next() {
		var st StationTotal
		if err := rows.Scan(&st.Station, &st.Riders); err != nil {
			return nil, fmt.Errorf("error scanning station total: %w", err)
		}
		totals = append(totals, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating station totals: %w", err)
	}

	return totals, nil
}

// QueryYearlyRidership returns the named station's ridership summed by
// calendar year, ordered ascending by year.
func (c *Client) QueryYearlyRidership(ctx context.Context, stationName string) ([]PeriodTotal, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT strftime('%Y', Ride_Date) AS Year, SUM(Num_Riders)
		FROM Ridership
		JOIN Stations ON Ridership.Station_ID = Stations.Station_ID
		WHERE Station_Name = ?
		GROUP BY Year
		ORDER BY Year;`,
		stationName,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying yearly ridership: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	return scanPeriodTotals(rows)
}

// QueryMonthlyRidership returns the named station's ridership summed by
// month within one year, labeled MM/YYYY and ordered ascending by month. A
// year with no rows (including an unparseable year string) yields an empty
// result.
func (c *Client) QueryMonthlyRidership(ctx context.Context, stationName, year string) ([]PeriodTotal, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT strftime('%m/%Y', Ride_Date) AS Monthly, SUM(Num_Riders)
		FROM Ridership
		JOIN Stations ON Ridership.Station_ID = Stations.Station_ID
		WHERE Station_Name = ? AND strftime('%Y', Ride_Date) = ?
		GROUP BY Monthly
		ORDER BY Monthly;`,
		stationName, year,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly ridership: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	return scanPeriodTotals(rows)
}

func scanPeriodTotals(rows *sql.Rows) ([]PeriodTotal, error) {
	var totals []PeriodTotal
	for rows.Next() {
		var pt PeriodTotal
		if err := rows.Scan(&pt.Period, &pt.Riders); err != nil {
			return nil, fmt.Errorf("error scanning period total: %w", err)
		}
		totals = append(totals, pt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period totals: %w", err)
	}

	return totals, nil
}

// QueryDailyWindow returns up to limit days of the named station's ridership
// within one year. With descending true it returns the year's last days,
// still ordered descending; the caller reverses them for display.
func (c *Client) QueryDailyWindow(ctx context.Context, stationName, year string, descending bool, limit int) ([]DailyRidership, error) {
	order := "ASC"
	if descending {
		order = "DESC"
	}
	query := fmt.Sprintf(`
		SELECT strftime('%%Y-%%m-%%d', Ride_Date) AS Day, Ridership.Station_ID, Ridership.Num_Riders
		FROM Ridership
		JOIN Stations ON Ridership.Station_ID = Stations.Station_ID
		WHERE Station_Name = ? AND strftime('%%Y', Ride_Date) = ?
		GROUP BY Day
		ORDER BY Day %s
		LIMIT ?;`, order)

	rows, err := c.DB.QueryContext(ctx, query, stationName, year, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying daily window: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	return scanDailyRidership(rows)
}

// QueryDailyRidership returns the named station's full daily series for one
// year, ordered ascending by date.
func (c *Client) QueryDailyRidership(ctx context.Context, stationName, year string) ([]DailyRidership, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT strftime('%Y-%m-%d', Ride_Date) AS Day, Ridership.Station_ID, Ridership.Num_Riders
		FROM Ridership
		JOIN Stations ON Ridership.Station_ID = Stations.Station_ID
		WHERE Station_Name = ? AND strftime('%Y', Ride_Date) = ?
		GROUP BY Ride_Date
		ORDER BY Ride_Date ASC;`,
		stationName, year,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying daily ridership: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	return scanDailyRidership(rows)
}

func scanDailyRidership(rows *sql.Rows) ([]DailyRidership, error) {
	var days []DailyRidership
	for rows.Next() {
		var d DailyRidership
		if err := rows.Scan(&d.Date, &d.StationID, &d.Riders); err != nil {
			return nil, fmt.Errorf("error scanning daily ridership: %w", err)
		}
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily ridership: %w", err)
	}

	return days, nil
}

// InsertRidership adds ridership records to the database. Test fixtures only.
func InsertRidership(db *sql.DB, records []RidershipRecord) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO Ridership (Station_ID, Ride_Date, Type_of_Day, Num_Riders)
		VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, record := range records {
		_, err := stmt.Exec(record.StationID, record.Date, string(record.DayType), record.Riders)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting ridership record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

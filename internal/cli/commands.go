package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/drodr32/CTA-Database-App/internal/analysis"
	"github.com/drodr32/CTA-Database-App/internal/logging"
	"github.com/drodr32/CTA-Database-App/internal/models"
	"github.com/drodr32/CTA-Database-App/internal/utils"
)

// Command 1: list every station matching a wildcard pattern.
func (c *CLI) stationSearch(ctx context.Context) error {
	fmt.Fprintln(c.out)
	pattern, ok := c.prompt("Enter partial station name (wildcards _ and %): ")
	if !ok {
		return nil
	}

	if err := utils.ValidatePattern(pattern); err != nil {
		logging.FromContext(ctx).Debug("search pattern failed validation",
			slog.String("reason", err.Error()))
	}

	stations, err := c.app.Analyzer.SearchStations(ctx, pattern)
	if err != nil {
		return err
	}
	if len(stations) == 0 {
		fmt.Fprintln(c.out, "**No stations found...")
		return nil
	}

	for _, s := range stations {
		fmt.Fprintf(c.out, "%d : %s\n", s.ID, s.Name)
	}
	return nil
}

// Command 2: one station's ridership split across the three day types.
func (c *CLI) stationBreakdown(ctx context.Context) error {
	fmt.Fprintln(c.out)
	name, ok := c.prompt("Enter the name of the station you would like to analyze: ")
	if !ok {
		return nil
	}

	usage, err := c.app.Analyzer.StationUsage(ctx, name)
	if analysis.IsKind(err, analysis.KindNotFound) {
		fmt.Fprintln(c.out, "**No data found...")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Percentage of ridership for the %s station: \n", usage.Station)
	fmt.Fprintf(c.out, " Weekday ridership: %s (%.2f%%)\n", comma(usage.Weekday), usage.WeekdayPct)
	fmt.Fprintf(c.out, " Saturday ridership: %s (%.2f%%)\n", comma(usage.Saturday), usage.SaturdayPct)
	fmt.Fprintf(c.out, " Sunday/holiday ridership: %s (%.2f%%)\n", comma(usage.SundayHoliday), usage.SundayHolidayPct)
	fmt.Fprintf(c.out, " Total ridership:  %s\n", comma(usage.Total))
	return nil
}

// Command 3: every station ranked by weekday ridership.
func (c *CLI) weekdayRanking(ctx context.Context) error {
	ranking, err := c.app.Analyzer.WeekdayRanking(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Ridership on Weekdays for Each Station")
	for _, r := range ranking {
		fmt.Fprintf(c.out, "%s : %s (%.2f%%)\n", r.Station, comma(r.Riders), r.Pct)
	}
	return nil
}

// Command 4: stops for a line color running in a direction.
func (c *CLI) stopsForLine(ctx context.Context) error {
	fmt.Fprintln(c.out)
	color, ok := c.prompt("Enter a line color (e.g. Red or Yellow): ")
	if !ok {
		return nil
	}

	catalogColor, err := c.app.Analyzer.ResolveLineColor(ctx, color)
	if analysis.IsKind(err, analysis.KindNotFound) {
		fmt.Fprintln(c.out, "**No such line...")
		return nil
	}
	if err != nil {
		return err
	}

	direction, ok := c.prompt("Enter a direction (N/S/W/E): ")
	if !ok {
		return nil
	}
	if err := utils.ValidateDirection(direction); err != nil {
		// A malformed direction still runs the query; it just matches nothing
		logging.FromContext(ctx).Debug("direction failed validation",
			slog.String("reason", err.Error()))
	}

	result, err := c.app.Analyzer.StopsForLine(ctx, catalogColor, direction)
	if analysis.IsKind(err, analysis.KindEmptyDirection) {
		fmt.Fprintln(c.out, "**That line does not run in the direction chosen...")
		return nil
	}
	if err != nil {
		return err
	}

	for _, stop := range result.Stops {
		access := "not handicap accessible"
		if stop.ADA {
			access = "handicap accessible"
		}
		fmt.Fprintf(c.out, "%s : direction = %s (%s)\n", stop.Name, stop.Direction, access)
	}
	return nil
}

// Command 5: stop counts for each color by direction.
func (c *CLI) stopDistribution(ctx context.Context) error {
	shares, err := c.app.Analyzer.StopDistribution(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Number of Stops For Each Color By Direction")
	for _, s := range shares {
		fmt.Fprintf(c.out, "%s going %s : %d (%.2f%%)\n", s.Color, s.Direction, s.Stops, s.Pct)
	}
	return nil
}

// Command 6: yearly ridership for one resolved station.
func (c *CLI) yearlyRidership(ctx context.Context) error {
	fmt.Fprintln(c.out)
	pattern, ok := c.prompt("Enter a station name (wildcards _ and %): ")
	if !ok {
		return nil
	}

	series, err := c.app.Analyzer.YearlySeries(ctx, pattern)
	if c.reportResolution(err) {
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Yearly Ridership at %s\n", series.Station)
	for _, p := range series.Points {
		fmt.Fprintf(c.out, "%s : %s\n", p.Period, comma(p.Riders))
	}
	fmt.Fprintln(c.out)

	c.offerPlot("Plot? (y/n)", series.Dataset())
	return nil
}

// Command 7: monthly ridership for one resolved station and year.
func (c *CLI) monthlyRidership(ctx context.Context) error {
	fmt.Fprintln(c.out)
	pattern, ok := c.prompt("Enter a station name (wildcards _ and %): ")
	if !ok {
		return nil
	}

	resolution, err := c.app.Analyzer.ResolveStation(ctx, pattern)
	if err != nil {
		return err
	}
	if !resolution.Resolved() {
		c.reportUnresolved(resolution)
		return nil
	}

	year, ok := c.prompt("Enter a year: ")
	if !ok {
		return nil
	}
	if !utils.IsYear(year) {
		logging.FromContext(ctx).Debug("year is not a 4-digit calendar year",
			slog.String("year", year))
	}

	series, err := c.app.Analyzer.MonthlySeries(ctx, resolution.Name, year)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Monthly Ridership at %s for %s\n", series.Station, year)
	for _, p := range series.Points {
		fmt.Fprintf(c.out, "%s : %s\n", p.Period, comma(p.Riders))
	}

	c.offerPlot("Plot? (y/n) ", series.Dataset())
	return nil
}

// Command 8: two-station daily comparison for one year.
func (c *CLI) compareStations(ctx context.Context) error {
	fmt.Fprintln(c.out)
	year, ok := c.prompt("Year to compare against? ")
	if !ok {
		return nil
	}

	fmt.Fprintln(c.out)
	pattern1, ok := c.prompt("Enter station 1 (wildcards _ and %): ")
	if !ok {
		return nil
	}
	resolution1, err := c.app.Analyzer.ResolveStation(ctx, pattern1)
	if err != nil {
		return err
	}
	if !resolution1.Resolved() {
		c.reportUnresolved(resolution1)
		return nil
	}

	fmt.Fprintln(c.out)
	pattern2, ok := c.prompt("Enter station 2 (wildcards _ and %): ")
	if !ok {
		return nil
	}
	resolution2, err := c.app.Analyzer.ResolveStation(ctx, pattern2)
	if err != nil {
		return err
	}
	if !resolution2.Resolved() {
		c.reportUnresolved(resolution2)
		return nil
	}

	comparison, err := c.app.Analyzer.CompareStations(ctx, resolution1.Name, resolution2.Name, year)
	if err != nil {
		return err
	}

	c.printComparisonWindow(1, comparison.A)
	c.printComparisonWindow(2, comparison.B)

	fmt.Fprintln(c.out)
	c.offerPlot("Plot? (y/n) ", comparison.Dataset())
	return nil
}

func (c *CLI) printComparisonWindow(position int, window analysis.ComparisonWindow) {
	fmt.Fprintf(c.out, "Station %d: %d %s\n", position, window.StationID, window.Station)
	for _, day := range window.First {
		fmt.Fprintf(c.out, "%s %d\n", day.Date, day.Riders)
	}
	for _, day := range window.Last {
		fmt.Fprintf(c.out, "%s %d\n", day.Date, day.Riders)
	}
}

// Command 9: stations within roughly a mile of a coordinate.
func (c *CLI) stationsNearPoint(ctx context.Context) error {
	fmt.Fprintln(c.out)
	latText, ok := c.prompt("Enter a latitude: ")
	if !ok {
		return nil
	}
	lat, err := utils.ParseCoordinate(latText)
	if err != nil || analysis.ValidateLatitude(lat) != nil {
		fmt.Fprintln(c.out, "**Latitude entered is out of bounds...")
		return nil
	}

	lonText, ok := c.prompt("Enter a longitude: ")
	if !ok {
		return nil
	}
	lon, err := utils.ParseCoordinate(lonText)
	if err != nil || analysis.ValidateLongitude(lon) != nil {
		fmt.Fprintln(c.out, "**Longitude entered is out of bounds...")
		return nil
	}

	nearby, err := c.app.Analyzer.StationsNearPoint(ctx, lat, lon)
	if analysis.IsKind(err, analysis.KindNotFound) {
		fmt.Fprintln(c.out, "**No stations found...")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "List of Stations Within a Mile")
	for _, stop := range nearby.Stops {
		fmt.Fprintf(c.out, "%s : (%s, %s)\n", stop.StationName, formatCoord(stop.Longitude), formatCoord(stop.Latitude))
	}

	fmt.Fprintln(c.out)
	c.offerPlot("Plot? (y/n) ", nearby.Dataset())
	return nil
}

// reportResolution prints the standard message for a failed station
// resolution carried in err. It reports whether it handled the error.
func (c *CLI) reportResolution(err error) bool {
	switch {
	case analysis.IsKind(err, analysis.KindNotFound):
		fmt.Fprintln(c.out, "**No station found...")
		return true
	case analysis.IsKind(err, analysis.KindAmbiguous):
		fmt.Fprintln(c.out, "**Multiple stations found...")
		return true
	}
	return false
}

func (c *CLI) reportUnresolved(resolution models.Resolution) {
	if resolution.State == models.StationAmbiguous {
		fmt.Fprintln(c.out, "**Multiple stations found...")
		return
	}
	fmt.Fprintln(c.out, "**No station found...")
}

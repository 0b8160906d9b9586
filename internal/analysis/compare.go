package analysis

import (
	"context"
	"fmt"

	"github.com/drodr32/CTA-Database-App/ctadb"
	"github.com/drodr32/CTA-Database-App/internal/models"
)

// comparisonWindowDays is how many calendar days each end of the year
// contributes to the comparison report.
const comparisonWindowDays = 5

// ComparisonWindow is one station's view within a two-station comparison:
// the first and last days of the year plus the full daily rider-count
// series.
type ComparisonWindow struct {
	Station   string
	StationID int64
	First     []ctadb.DailyRidership // ascending
	Last      []ctadb.DailyRidership // ascending (fetched descending, then reversed)
	Daily     []ctadb.DailyRidership // full year, ascending
}

// AlignedPoint pairs the two stations' daily counts at one shared position.
// Index is 1-based.
type AlignedPoint struct {
	Index   int
	RidersA int64
	RidersB int64
}

// StationComparison is the command-8 result: both stations' edge windows and
// the positionally aligned daily series.
type StationComparison struct {
	Year    string
	A, B    ComparisonWindow
	Aligned []AlignedPoint
}

// CompareStations resolves both patterns and builds the year's comparison.
// Resolution failures abort before any aggregate query runs: station 1 is
// checked first, then station 2.
//
// The aligned series pairs the two daily series by position, not by date;
// its length is the shorter series' length and the longer tail is dropped.
// That mirrors the longstanding report behavior and silently misaligns days
// when the stations are missing dates in different places — use
// CompareStationsByDate for the strict pairing.
func (a *Analyzer) CompareStations(ctx context.Context, patternA, patternB, year string) (*StationComparison, error) {
	nameA, nameB, err := a.resolveComparisonPair(ctx, patternA, patternB)
	if err != nil {
		return nil, err
	}

	windowA, err := a.comparisonWindow(ctx, nameA, year)
	if err != nil {
		return nil, err
	}
	windowB, err := a.comparisonWindow(ctx, nameB, year)
	if err != nil {
		return nil, err
	}

	length := len(windowA.Daily)
	if len(windowB.Daily) < length {
		length = len(windowB.Daily)
	}
	aligned := make([]AlignedPoint, 0, length)
	for i := 0; i < length; i++ {
		aligned = append(aligned, AlignedPoint{
			Index:   i + 1,
			RidersA: windowA.Daily[i].Riders,
			RidersB: windowB.Daily[i].Riders,
		})
	}

	return &StationComparison{Year: year, A: *windowA, B: *windowB, Aligned: aligned}, nil
}

// DatedPoint pairs the two stations' counts for a date present in both
// series.
type DatedPoint struct {
	Date    string
	RidersA int64
	RidersB int64
}

// CompareStationsByDate is the strict alternative to CompareStations: it
// pairs the two daily series by calendar date and keeps only the dates both
// stations recorded, ascending. It is not the compatible report shape.
func (a *Analyzer) CompareStationsByDate(ctx context.Context, patternA, patternB, year string) ([]DatedPoint, error) {
	nameA, nameB, err := a.resolveComparisonPair(ctx, patternA, patternB)
	if err != nil {
		return nil, err
	}

	dailyA, err := a.store.QueryDailyRidership(ctx, nameA, year)
	if err != nil {
		return nil, err
	}
	dailyB, err := a.store.QueryDailyRidership(ctx, nameB, year)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]int64, len(dailyB))
	for _, d := range dailyB {
		byDate[d.Date] = d.Riders
	}

	var points []DatedPoint
	for _, d := range dailyA {
		if riders, ok := byDate[d.Date]; ok {
			points = append(points, DatedPoint{Date: d.Date, RidersA: d.Riders, RidersB: riders})
		}
	}
	return points, nil
}

func (a *Analyzer) resolveComparisonPair(ctx context.Context, patternA, patternB string) (string, string, error) {
	resolutionA, err := a.ResolveStation(ctx, patternA)
	if err != nil {
		return "", "", err
	}
	if !resolutionA.Resolved() {
		return "", "", resolutionError(resolutionA)
	}

	resolutionB, err := a.ResolveStation(ctx, patternB)
	if err != nil {
		return "", "", err
	}
	if !resolutionB.Resolved() {
		return "", "", resolutionError(resolutionB)
	}

	return resolutionA.Name, resolutionB.Name, nil
}

func (a *Analyzer) comparisonWindow(ctx context.Context, stationName, year string) (*ComparisonWindow, error) {
	window := &ComparisonWindow{Station: stationName}

	station, ok, err := a.store.QueryStationByName(ctx, stationName)
	if err != nil {
		return nil, err
	}
	if ok {
		window.StationID = station.ID
	}

	window.First, err = a.store.QueryDailyWindow(ctx, stationName, year, false, comparisonWindowDays)
	if err != nil {
		return nil, err
	}

	last, err := a.store.QueryDailyWindow(ctx, stationName, year, true, comparisonWindowDays)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(last)-1; i < j; i, j = i+1, j-1 {
		last[i], last[j] = last[j], last[i]
	}
	window.Last = last

	window.Daily, err = a.store.QueryDailyRidership(ctx, stationName, year)
	if err != nil {
		return nil, err
	}

	return window, nil
}

// Dataset shapes the aligned comparison for charting: two series over the
// shared 1..n day index.
func (c *StationComparison) Dataset() models.ChartableDataset {
	valuesA := make([]float64, 0, len(c.Aligned))
	valuesB := make([]float64, 0, len(c.Aligned))
	labels := make([]string, 0, len(c.Aligned))
	for _, p := range c.Aligned {
		labels = append(labels, fmt.Sprintf("%d", p.Index))
		valuesA = append(valuesA, float64(p.RidersA))
		valuesB = append(valuesB, float64(p.RidersB))
	}

	return models.ChartableDataset{
		Title:  fmt.Sprintf("Ridership each Day of (%s)", c.Year),
		XLabel: "Day",
		YLabel: "Number of Riders",
		Series: []models.Series{
			{Name: c.A.Station, Labels: labels, Values: valuesA},
			{Name: c.B.Station, Labels: labels, Values: valuesB},
		},
	}
}

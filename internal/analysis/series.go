package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/drodr32/CTA-Database-App/ctadb"
	"github.com/drodr32/CTA-Database-App/internal/models"
)

// SeriesKind distinguishes the two period groupings a StationSeries can hold.
type SeriesKind int

const (
	SeriesYearly SeriesKind = iota
	SeriesMonthly
)

// StationSeries is one resolved station's ridership grouped by calendar
// period, ordered ascending.
type StationSeries struct {
	Station string
	Year    string // set for monthly series only
	Kind    SeriesKind
	Points  []ctadb.PeriodTotal
}

// YearlySeries resolves the station pattern and groups its ridership by
// calendar year, ascending. A resolved station with no ridership rows yields
// an empty series, not an error.
func (a *Analyzer) YearlySeries(ctx context.Context, pattern string) (*StationSeries, error) {
	resolution, err := a.ResolveStation(ctx, pattern)
	if err != nil {
		return nil, err
	}
	if !resolution.Resolved() {
		return nil, resolutionError(resolution)
	}

	points, err := a.store.QueryYearlyRidership(ctx, resolution.Name)
	if err != nil {
		return nil, err
	}

	return &StationSeries{Station: resolution.Name, Kind: SeriesYearly, Points: points}, nil
}

// MonthlySeries resolves the station pattern and groups its ridership by
// month within the given year, labeled MM/YYYY and ascending. A year string
// matching no rows (including unparseable input) yields an empty series.
func (a *Analyzer) MonthlySeries(ctx context.Context, pattern, year string) (*StationSeries, error) {
	resolution, err := a.ResolveStation(ctx, pattern)
	if err != nil {
		return nil, err
	}
	if !resolution.Resolved() {
		return nil, resolutionError(resolution)
	}

	points, err := a.store.QueryMonthlyRidership(ctx, resolution.Name, year)
	if err != nil {
		return nil, err
	}

	return &StationSeries{Station: resolution.Name, Year: year, Kind: SeriesMonthly, Points: points}, nil
}

// Dataset shapes the series for charting. Monthly points are labeled with
// the bare month number, matching the original chart's x axis.
func (s *StationSeries) Dataset() models.ChartableDataset {
	labels := make([]string, 0, len(s.Points))
	values := make([]float64, 0, len(s.Points))
	for _, p := range s.Points {
		label := p.Period
		if s.Kind == SeriesMonthly {
			label, _, _ = strings.Cut(p.Period, "/")
		}
		labels = append(labels, label)
		values = append(values, float64(p.Riders))
	}

	dataset := models.ChartableDataset{
		YLabel: "Number of Riders",
		Series: []models.Series{{Name: s.Station, Labels: labels, Values: values}},
	}
	switch s.Kind {
	case SeriesYearly:
		dataset.Title = fmt.Sprintf("Yearly Ridership at %s", s.Station)
		dataset.XLabel = "Year"
	case SeriesMonthly:
		dataset.Title = fmt.Sprintf("Monthly Ridership at %s (%s)", s.Station, s.Year)
		dataset.XLabel = "Month"
	}
	return dataset
}

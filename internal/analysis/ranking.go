package analysis

import (
	"context"

	"github.com/drodr32/CTA-Database-App/ctadb"
)

// RankedStation is one station's weekday ridership and its share of the
// system-wide weekday total.
type RankedStation struct {
	Station string
	Riders  int64
	Pct     float64
}

// WeekdayRanking returns every station ordered descending by weekday
// ridership, each with its percentage of the combined weekday total. An
// empty ridership table yields an empty ranking, not an error.
func (a *Analyzer) WeekdayRanking(ctx context.Context) ([]RankedStation, error) {
	totals, err := a.store.QueryWeekdayRidershipByStation(ctx)
	if err != nil {
		return nil, err
	}

	systemTotal, err := a.store.QueryRidershipTotal(ctx, ctadb.DayWeekday)
	if err != nil {
		return nil, err
	}

	ranking := make([]RankedStation, 0, len(totals))
	for _, t := range totals {
		ranking = append(ranking, RankedStation{
			Station: t.Station,
			Riders:  t.Riders,
			Pct:     Percentage(t.Riders, systemTotal),
		})
	}
	return ranking, nil
}

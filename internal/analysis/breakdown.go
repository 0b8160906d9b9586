package analysis

import (
	"context"

	"github.com/drodr32/CTA-Database-App/ctadb"
)

// StationUsage is one station's ridership broken down by day type.
type StationUsage struct {
	Station string
	Breakdown
}

// StationUsage sums the named station's ridership for each day type and the
// overall total, and derives the percentage split. The name is matched
// exactly, not as a pattern. A station with no ridership rows at all is
// NotFound; a station whose rows sum to zero reports 0.00% shares instead.
func (a *Analyzer) StationUsage(ctx context.Context, stationName string) (*StationUsage, error) {
	weekday, hasData, err := a.store.QueryRidershipSum(ctx, stationName, ctadb.DayWeekday)
	if err != nil {
		return nil, err
	}
	if !hasData {
		return nil, notFound("ridership data")
	}

	saturday, _, err := a.store.QueryRidershipSum(ctx, stationName, ctadb.DaySaturday)
	if err != nil {
		return nil, err
	}

	sundayHoliday, _, err := a.store.QueryRidershipSum(ctx, stationName, ctadb.DaySundayHoliday)
	if err != nil {
		return nil, err
	}

	total, _, err := a.store.QueryRidershipSum(ctx, stationName, ctadb.DayAll)
	if err != nil {
		return nil, err
	}

	return &StationUsage{
		Station:   stationName,
		Breakdown: ProportionBreakdown(weekday, saturday, sundayHoliday, total),
	}, nil
}

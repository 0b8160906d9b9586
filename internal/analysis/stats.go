package analysis

import "math"

// Percentage returns part/whole*100 rounded to two decimal places for
// display. A zero whole yields 0 rather than a division fault, so empty
// aggregates always report 0.00%.
func Percentage(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*100*100) / 100
}

// Breakdown is a station's ridership split across the three day types, with
// each share expressed as a percentage of the total.
type Breakdown struct {
	Weekday          int64
	Saturday         int64
	SundayHoliday    int64
	Total            int64
	WeekdayPct       float64
	SaturdayPct      float64
	SundayHolidayPct float64
}

// ProportionBreakdown computes the three day-type percentages from raw sums.
// It never faults on a zero total; all three shares are then 0.
func ProportionBreakdown(weekday, saturday, sundayHoliday, total int64) Breakdown {
	return Breakdown{
		Weekday:          weekday,
		Saturday:         saturday,
		SundayHoliday:    sundayHoliday,
		Total:            total,
		WeekdayPct:       Percentage(weekday, total),
		SaturdayPct:      Percentage(saturday, total),
		SundayHolidayPct: Percentage(sundayHoliday, total),
	}
}

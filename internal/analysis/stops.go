package analysis

import (
	"context"

	"github.com/drodr32/CTA-Database-App/ctadb"
)

// LineStops is the stop listing for one line color and direction.
type LineStops struct {
	Color     string // catalog casing
	Direction string
	Stops     []ctadb.DirectionalStop
}

// ResolveLineColor matches a color case-insensitively against the Lines
// catalog and returns the catalog's casing. An unknown color is NotFound.
// The menu resolves the color before asking for a direction, so the miss is
// reported without prompting further.
func (a *Analyzer) ResolveLineColor(ctx context.Context, color string) (string, error) {
	catalogColor, ok, err := a.store.QueryLineColor(ctx, color)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", notFound("line")
	}
	return catalogColor, nil
}

// StopsForLine returns the stops the given line serves in the given
// direction. The color is matched case-insensitively against the Lines
// catalog; an unknown color is NotFound, while a known color with no stops
// in that direction is EmptyDirection. The two are reported distinctly.
func (a *Analyzer) StopsForLine(ctx context.Context, color, direction string) (*LineStops, error) {
	catalogColor, err := a.ResolveLineColor(ctx, color)
	if err != nil {
		return nil, err
	}

	stops, err := a.store.QueryStopsByLineAndDirection(ctx, catalogColor, direction)
	if err != nil {
		return nil, err
	}
	if len(stops) == 0 {
		return nil, emptyDirection("line")
	}

	return &LineStops{Color: catalogColor, Direction: direction, Stops: stops}, nil
}

// DirectionShare is one (color, direction) stop count with its share of all
// stops in the system.
type DirectionShare struct {
	Color     string
	Direction string
	Stops     int64
	Pct       float64
}

// StopDistribution returns the number of stops per color and direction,
// ordered by color then direction, each with its percentage of the total
// stop count.
func (a *Analyzer) StopDistribution(ctx context.Context) ([]DirectionShare, error) {
	counts, err := a.store.QueryStopCountsByColorAndDirection(ctx)
	if err != nil {
		return nil, err
	}

	totalStops, err := a.store.QueryStopCount(ctx)
	if err != nil {
		return nil, err
	}

	shares := make([]DirectionShare, 0, len(counts))
	for _, c := range counts {
		shares = append(shares, DirectionShare{
			Color:     c.Color,
			Direction: c.Direction,
			Stops:     c.Stops,
			Pct:       Percentage(c.Stops, totalStops),
		})
	}
	return shares, nil
}

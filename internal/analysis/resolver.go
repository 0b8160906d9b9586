package analysis

import (
	"context"
	"log/slog"

	"github.com/drodr32/CTA-Database-App/ctadb"
	"github.com/drodr32/CTA-Database-App/internal/models"
)

// SearchStations returns every station matching the pattern (SQL wildcards %
// and _ allowed), ordered by name. Multiple matches are a listing here, not
// an error; an empty result is the caller's NotFound.
func (a *Analyzer) SearchStations(ctx context.Context, pattern string) ([]ctadb.Station, error) {
	return a.store.QueryStationsMatching(ctx, pattern)
}

// ResolveStation matches the pattern against the distinct station names and
// classifies the outcome. Every aggregate operation that needs a single
// station goes through this first; nothing downstream ever guesses among
// multiple matches.
func (a *Analyzer) ResolveStation(ctx context.Context, pattern string) (models.Resolution, error) {
	names, err := a.store.QueryStationNamesMatching(ctx, pattern)
	if err != nil {
		return models.Resolution{}, err
	}

	resolution := models.ResolveNames(names)
	if !resolution.Resolved() {
		a.logger.Debug("station pattern did not resolve",
			slog.String("pattern", pattern),
			slog.Int("matches", len(names)))
	}
	return resolution, nil
}

// resolutionError converts a failed resolution into the corresponding
// command error.
func resolutionError(r models.Resolution) error {
	if r.State == models.StationAmbiguous {
		return ambiguous("station", r.Candidates)
	}
	return notFound("station")
}

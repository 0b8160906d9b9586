package analysis

import (
	"context"

	"github.com/drodr32/CTA-Database-App/ctadb"
)

// Overview returns the session banner statistics.
func (a *Analyzer) Overview(ctx context.Context) (ctadb.OverviewStats, error) {
	return a.store.QueryOverviewStats(ctx)
}

// Package analysis is the query-and-aggregation core: it turns
// loosely-specified operator input (wildcard name patterns, year strings,
// coordinates) into aggregate queries against the ridership store, derives
// statistics from the results, and shapes them for presentation. It issues
// read queries only and never calls back into the presentation layer.
package analysis

import (
	"log/slog"

	"github.com/drodr32/CTA-Database-App/ctadb"
)

// Analyzer executes the analysis commands against an injected read-only
// store. It holds no per-command state; every method is safe to call
// repeatedly against the static dataset.
type Analyzer struct {
	store  *ctadb.Client
	logger *slog.Logger
}

func NewAnalyzer(store *ctadb.Client, logger *slog.Logger) *Analyzer {
	return &Analyzer{store: store, logger: logger}
}

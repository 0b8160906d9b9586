package models

// Series is one named, ordered numeric series with optional categorical
// labels aligned to the values.
type Series struct {
	Name   string
	Labels []string
	Values []float64
}

// ChartableDataset is a set of series ready for downstream rendering. The
// core shapes these; drawing them is the CLI's concern.
type ChartableDataset struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

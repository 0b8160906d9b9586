package analysis

import (
	"context"
	"math"

	"github.com/drodr32/CTA-Database-App/ctadb"
	"github.com/drodr32/CTA-Database-App/internal/models"
)

// Accepted coordinate ranges for the Chicago area. Input outside these
// bounds aborts before any query is issued.
const (
	minLatitude  = 40
	maxLatitude  = 43
	minLongitude = -88
	maxLongitude = -87
)

// Degree-per-mile approximations at Chicago's latitude. The window is a
// deliberately crude flat bounding box, not a great-circle radius, and the
// constants are fixed: reproducing the historical results matters more than
// geodesic accuracy.
const (
	latDegreesPerMile = 1.0 / 69.0
	lonDegreesPerMile = 1.0 / 51.0
)

// BoundingBox is an axis-aligned latitude/longitude window, bounds rounded
// to three decimal places.
type BoundingBox struct {
	LatMin, LatMax float64
	LonMin, LonMax float64
}

// boundingBox converts a point into the ~1 mile search window.
func boundingBox(lat, lon float64) BoundingBox {
	return BoundingBox{
		LatMin: roundTo3(lat - latDegreesPerMile),
		LatMax: roundTo3(lat + latDegreesPerMile),
		LonMin: roundTo3(lon - lonDegreesPerMile),
		LonMax: roundTo3(lon + lonDegreesPerMile),
	}
}

func roundTo3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// NearbyStations is the command-9 result: the window that was searched and
// the distinct stop coordinates inside it.
type NearbyStations struct {
	Box   BoundingBox
	Stops []ctadb.StopLocation
}

// ValidateLatitude checks a latitude against the accepted Chicago-area
// range. The failure is the OutOfBounds command error.
func ValidateLatitude(lat float64) error {
	if lat < minLatitude || lat > maxLatitude {
		return outOfBounds("latitude")
	}
	return nil
}

// ValidateLongitude checks a longitude against the accepted Chicago-area
// range.
func ValidateLongitude(lon float64) error {
	if lon < minLongitude || lon > maxLongitude {
		return outOfBounds("longitude")
	}
	return nil
}

// StationsNearPoint validates the coordinate, converts it into the bounding
// box, and returns the stops inside it, deduplicated by coordinate pair and
// ordered by station name then stop ID. Latitude is validated before
// longitude; either failure is OutOfBounds with no query issued. An empty
// window is NotFound.
func (a *Analyzer) StationsNearPoint(ctx context.Context, lat, lon float64) (*NearbyStations, error) {
	if err := ValidateLatitude(lat); err != nil {
		return nil, err
	}
	if err := ValidateLongitude(lon); err != nil {
		return nil, err
	}

	box := boundingBox(lat, lon)
	stops, err := a.store.QueryStopsInWindow(ctx, box.LatMin, box.LatMax, box.LonMin, box.LonMax)
	if err != nil {
		return nil, err
	}
	if len(stops) == 0 {
		return nil, notFound("stations")
	}

	return &NearbyStations{Box: box, Stops: stops}, nil
}

// Dataset shapes the nearby stops for map-overlay charting: longitude on the
// x axis, latitude as the values.
func (n *NearbyStations) Dataset() models.ChartableDataset {
	labels := make([]string, 0, len(n.Stops))
	values := make([]float64, 0, len(n.Stops))
	for _, s := range n.Stops {
		labels = append(labels, s.StationName)
		values = append(values, s.Latitude)
	}

	return models.ChartableDataset{
		Title:  "Stations Near You",
		XLabel: "Longitude",
		YLabel: "Latitude",
		Series: []models.Series{{Name: "Stations", Labels: labels, Values: values}},
	}
}

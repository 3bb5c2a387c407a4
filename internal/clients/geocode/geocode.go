// Package geocode resolves free-text addresses to coordinates through the
// Nominatim search API, with an optional Redis cache in front. Geocoding is
// best-effort enrichment: a passenger without coordinates still books and
// still boards, the route planner just degrades its ordering.
package geocode

import "context"

// Match is one candidate returned for a free-text query.
type Match struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// Geocoder is the lookup boundary; handlers depend on this so tests can
// substitute fakes.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]Match, error)
}

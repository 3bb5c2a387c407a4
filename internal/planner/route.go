package planner

import (
	"math"
	"net/url"
	"strings"

	"turisflow/internal/domain/models"
)

const mapsDirBaseURL = "https://www.google.com/maps/dir/?api=1"

// RoutePlan is the ordered pickup sequence for a trip plus the shareable
// driving-directions link for the driver.
type RoutePlan struct {
	OriginName string             `json:"origin_name"`
	Stops      []models.Passenger `json:"stops"`
	MapsURL    string             `json:"maps_url"`
}

// Haversine returns the great-circle distance between two points in km.
func Haversine(a, b models.Coordinates) float64 {
	const earthRadiusKm = 6371.0
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// PlanRoute orders a trip's pickups with a greedy nearest-neighbor walk over
// haversine distance, starting from the origin coordinate. Passengers flagged
// overbooked or already reassigned to a partner travel by other means and are
// excluded. Candidates without coordinates are never chosen by distance; once
// no remaining candidate has a coordinate the rest are appended in their
// existing relative order. Ties go to the first-encountered minimum, so the
// output is stable with input ordering.
//
// This is a greedy heuristic, not an optimal tour. O(n²) per call.
func PlanRoute(origin *models.Coordinates, originName string, passengers []models.Passenger) RoutePlan {
	current := models.Coordinates{}
	if origin != nil {
		current = *origin
	}

	remaining := make([]models.Passenger, 0, len(passengers))
	for _, p := range passengers {
		if p.IsOverbooked || p.AssignedPartnerID != 0 {
			continue
		}
		remaining = append(remaining, p)
	}

	ordered := make([]models.Passenger, 0, len(remaining))
	for len(remaining) > 0 {
		nearest := -1
		minDist := math.Inf(1)
		for i, p := range remaining {
			if p.BoardingCoordinates == nil {
				continue
			}
			if d := Haversine(current, *p.BoardingCoordinates); d < minDist {
				minDist = d
				nearest = i
			}
		}

		if nearest == -1 {
			// No candidate has a coordinate: keep relative order for the rest.
			ordered = append(ordered, remaining...)
			break
		}

		next := remaining[nearest]
		ordered = append(ordered, next)
		current = *next.BoardingCoordinates
		remaining = append(remaining[:nearest], remaining[nearest+1:]...)
	}

	return RoutePlan{
		OriginName: originName,
		Stops:      ordered,
		MapsURL:    buildMapsURL(originName, ordered),
	}
}

// buildMapsURL assembles the fixed Google Maps directions template: the
// ordered, de-duplicated boarding addresses become waypoints, the last one
// the destination. With no stops the link carries the origin only.
func buildMapsURL(originName string, ordered []models.Passenger) string {
	var b strings.Builder
	b.WriteString(mapsDirBaseURL)
	b.WriteString("&origin=")
	b.WriteString(escapeComponent(originName))

	seen := map[string]bool{}
	waypoints := []string{}
	for _, p := range ordered {
		if seen[p.BoardingLocation] {
			continue
		}
		seen[p.BoardingLocation] = true
		waypoints = append(waypoints, p.BoardingLocation)
	}

	if len(waypoints) == 0 {
		return b.String()
	}

	b.WriteString("&destination=")
	b.WriteString(escapeComponent(waypoints[len(waypoints)-1]))

	if via := waypoints[:len(waypoints)-1]; len(via) > 0 {
		parts := make([]string, len(via))
		for i, w := range via {
			parts[i] = escapeComponent(w)
		}
		b.WriteString("&waypoints=")
		b.WriteString(strings.Join(parts, "|"))
	}
	return b.String()
}

// escapeComponent percent-encodes a query component with %20 for spaces,
// matching the encoding the maps deep link expects.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

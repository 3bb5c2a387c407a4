package planner

import (
	"reflect"
	"strings"
	"testing"

	"turisflow/internal/domain/models"
)

func paxAt(id int64, name, addr string, lat, lng float64) models.Passenger {
	return models.Passenger{
		ID:                  id,
		Name:                name,
		PaxCount:            1,
		BoardingLocation:    addr,
		BoardingCoordinates: &models.Coordinates{Lat: lat, Lng: lng},
	}
}

func stopNames(plan RoutePlan) []string {
	out := make([]string, 0, len(plan.Stops))
	for _, p := range plan.Stops {
		out = append(out, p.Name)
	}
	return out
}

func TestPlanRoute_NearestNeighborOrder(t *testing.T) {
	origin := &models.Coordinates{Lat: 0, Lng: 0}
	passengers := []models.Passenger{
		paxAt(1, "A", "Rua A", 0, 1),
		paxAt(2, "B", "Rua B", 0, 3),
		paxAt(3, "C", "Rua C", 0, 2),
	}

	plan := PlanRoute(origin, "Base", passengers)
	if got, want := stopNames(plan), []string{"A", "C", "B"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}

	// Waypoints exclude the final stop; destination is the last address.
	if !strings.Contains(plan.MapsURL, "&destination=Rua%20B") {
		t.Fatalf("destination missing from link: %s", plan.MapsURL)
	}
	if !strings.Contains(plan.MapsURL, "&waypoints=Rua%20A|Rua%20C") {
		t.Fatalf("waypoints wrong in link: %s", plan.MapsURL)
	}
}

func TestPlanRoute_ExcludesOverbookedAndReassigned(t *testing.T) {
	origin := &models.Coordinates{Lat: 0, Lng: 0}
	over := paxAt(1, "over", "X", 0, 0.1)
	over.IsOverbooked = true
	moved := paxAt(2, "moved", "Y", 0, 0.2)
	moved.AssignedPartnerID = 7
	keep := paxAt(3, "keep", "Z", 0, 5)

	plan := PlanRoute(origin, "Base", []models.Passenger{over, moved, keep})
	if got, want := stopNames(plan), []string{"keep"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestPlanRoute_CoordinatelessAppendInOrder(t *testing.T) {
	a := models.Passenger{ID: 1, Name: "noGPS1", PaxCount: 1, BoardingLocation: "P1"}
	b := paxAt(2, "near", "P2", 0, 1)
	c := models.Passenger{ID: 3, Name: "noGPS2", PaxCount: 1, BoardingLocation: "P3"}

	plan := PlanRoute(&models.Coordinates{}, "Base", []models.Passenger{a, b, c})
	if got, want := stopNames(plan), []string{"near", "noGPS1", "noGPS2"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestPlanRoute_AllCoordinatelessKeepsInputOrder(t *testing.T) {
	a := models.Passenger{ID: 1, Name: "first", PaxCount: 1, BoardingLocation: "P1"}
	b := models.Passenger{ID: 2, Name: "second", PaxCount: 1, BoardingLocation: "P2"}

	plan := PlanRoute(nil, "Base", []models.Passenger{a, b})
	if got, want := stopNames(plan), []string{"first", "second"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestPlanRoute_EmptyYieldsOriginOnlyLink(t *testing.T) {
	plan := PlanRoute(&models.Coordinates{Lat: -3.7, Lng: -38.5}, "Av. Beira Mar, 4000", nil)
	if len(plan.Stops) != 0 {
		t.Fatalf("expected no stops, got %d", len(plan.Stops))
	}
	want := "https://www.google.com/maps/dir/?api=1&origin=Av.%20Beira%20Mar%2C%204000"
	if plan.MapsURL != want {
		t.Fatalf("maps url = %s, want %s", plan.MapsURL, want)
	}
}

func TestPlanRoute_DuplicateAddressesCollapsedInLink(t *testing.T) {
	origin := &models.Coordinates{}
	passengers := []models.Passenger{
		paxAt(1, "A", "Hotel Central", 0, 1),
		paxAt(2, "B", "Hotel Central", 0, 1.1),
		paxAt(3, "C", "Praia", 0, 2),
	}
	plan := PlanRoute(origin, "Base", passengers)
	if strings.Count(plan.MapsURL, "Hotel%20Central") != 1 {
		t.Fatalf("duplicate address should appear once: %s", plan.MapsURL)
	}
	if !strings.Contains(plan.MapsURL, "&destination=Praia") {
		t.Fatalf("destination should be the last unique stop: %s", plan.MapsURL)
	}
}

func TestPlanRoute_TieBreakFirstEncountered(t *testing.T) {
	origin := &models.Coordinates{}
	passengers := []models.Passenger{
		paxAt(1, "east", "E", 0, 1),
		paxAt(2, "west", "W", 0, -1), // same distance from origin
	}
	plan := PlanRoute(origin, "Base", passengers)
	if plan.Stops[0].Name != "east" {
		t.Fatalf("tie should go to the first-listed candidate, got %s", plan.Stops[0].Name)
	}
}

func TestPlanRoute_Idempotent(t *testing.T) {
	origin := &models.Coordinates{Lat: 1, Lng: 1}
	passengers := []models.Passenger{
		paxAt(1, "A", "a", 2, 2),
		paxAt(2, "B", "b", 3, 3),
	}
	first := PlanRoute(origin, "Base", passengers)
	second := PlanRoute(origin, "Base", passengers)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs must give identical plans")
	}
}

func TestHaversine_ZeroAndKnownDistance(t *testing.T) {
	if d := Haversine(models.Coordinates{}, models.Coordinates{}); d != 0 {
		t.Fatalf("expected 0, got %f", d)
	}
	// One degree of longitude at the equator is ~111.19 km.
	d := Haversine(models.Coordinates{Lat: 0, Lng: 0}, models.Coordinates{Lat: 0, Lng: 1})
	if d < 111 || d > 112 {
		t.Fatalf("unexpected distance %f", d)
	}
}

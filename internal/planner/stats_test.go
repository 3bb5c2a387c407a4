package planner

import (
	"reflect"
	"testing"

	"turisflow/internal/domain/models"
)

func tripOn(date string, seats int, passengers ...models.Passenger) models.Trip {
	return models.Trip{Date: date, TotalSeats: seats, Passengers: passengers}
}

func TestFilterByDate_StartOnlyMatchesExactDate(t *testing.T) {
	trips := []models.Trip{tripOn("2024-01-10", 50), tripOn("2024-01-20", 15)}

	got := FilterByDate(trips, "2024-01-10", "")
	if len(got) != 1 || got[0].Date != "2024-01-10" {
		t.Fatalf("start-only filter should match the exact date, got %d trips", len(got))
	}

	got = FilterByDate(trips, "2024-01-10", "2024-01-20")
	if len(got) != 2 {
		t.Fatalf("inclusive range should match both trips, got %d", len(got))
	}

	got = FilterByDate(trips, "", "")
	if len(got) != 2 {
		t.Fatalf("empty filter should pass everything, got %d", len(got))
	}
}

func TestSummarize_Totals(t *testing.T) {
	trips := []models.Trip{
		tripOn("2024-01-10", 10,
			models.Passenger{PaxCount: 2, TotalValue: 500, PaidAmount: 200, ReceivableAmount: 300},
			models.Passenger{PaxCount: 4, TotalValue: 1200, PaidAmount: 1200, IsOverbooked: true},
		),
		tripOn("2024-01-11", 5,
			models.Passenger{PaxCount: 1, TotalValue: 100, PaidAmount: 50, ReceivableAmount: 50},
		),
	}

	got := Summarize(trips)
	want := Totals{
		TotalPassengers:  7,
		TotalCapacity:    15,
		OverbookedPax:    4,
		TotalValue:       1800,
		TotalPaid:        1450,
		TotalReceivable:  350,
		ActiveVehicles:   2,
		OccupancyPercent: 47, // round(100*7/15)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Summarize = %+v, want %+v", got, want)
	}
}

func TestSummarize_ZeroCapacityIsZeroPercent(t *testing.T) {
	got := Summarize([]models.Trip{})
	if got.OccupancyPercent != 0 {
		t.Fatalf("empty set must give 0%%, got %d", got.OccupancyPercent)
	}
	if got.TotalValue != 0 || got.TotalPassengers != 0 {
		t.Fatalf("empty set must give zero totals: %+v", got)
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	trips := []models.Trip{tripOn("2024-02-01", 8, models.Passenger{PaxCount: 3, TotalValue: 90})}
	if !reflect.DeepEqual(Summarize(trips), Summarize(trips)) {
		t.Fatalf("identical inputs must give identical totals")
	}
}

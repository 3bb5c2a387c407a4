package planner

import (
	"testing"

	"turisflow/internal/domain/models"
)

func group(id int64, pax int, overbooked bool) models.Passenger {
	return models.Passenger{ID: id, Name: "group", PaxCount: pax, IsOverbooked: overbooked}
}

func TestBuildSeatMap_TruncatesGroupAtCapacity(t *testing.T) {
	passengers := []models.Passenger{group(1, 2, false), group(2, 2, false), group(3, 2, false)}

	seats := BuildSeatMap(passengers, 5)
	if len(seats) != 5 {
		t.Fatalf("expected 5 seats, got %d", len(seats))
	}

	wantOwner := []int64{1, 1, 2, 2, 3}
	for i, want := range wantOwner {
		if seats[i].Passenger == nil {
			t.Fatalf("seat %d unassigned, want passenger %d", i+1, want)
		}
		if seats[i].Passenger.ID != want {
			t.Fatalf("seat %d assigned to %d, want %d", i+1, seats[i].Passenger.ID, want)
		}
	}
	for _, s := range seats {
		if s.Status == SeatAvailable {
			t.Fatalf("seat %d available, expected 0 free seats", s.Number)
		}
	}
}

func TestBuildSeatMap_StablePrefixAfterAppend(t *testing.T) {
	passengers := []models.Passenger{group(1, 3, false), group(2, 2, false)}
	before := BuildSeatMap(passengers, 10)

	passengers = append(passengers, group(3, 4, false))
	after := BuildSeatMap(passengers, 10)

	for i := 0; i < 5; i++ {
		if before[i].Passenger.ID != after[i].Passenger.ID {
			t.Fatalf("seat %d moved from %d to %d after append",
				i+1, before[i].Passenger.ID, after[i].Passenger.ID)
		}
	}
	for i := 5; i < 9; i++ {
		if after[i].Passenger == nil || after[i].Passenger.ID != 3 {
			t.Fatalf("seat %d should belong to the appended group", i+1)
		}
	}
	if after[9].Status != SeatAvailable {
		t.Fatalf("seat 10 should stay available")
	}
}

func TestBuildSeatMap_OverbookedStatus(t *testing.T) {
	passengers := []models.Passenger{group(1, 1, false), group(2, 1, true)}
	seats := BuildSeatMap(passengers, 4)

	if seats[0].Status != SeatOccupied {
		t.Fatalf("seat 1 status = %s, want occupied", seats[0].Status)
	}
	if seats[1].Status != SeatOverbooked {
		t.Fatalf("seat 2 status = %s, want overbooked", seats[1].Status)
	}
	if seats[2].Status != SeatAvailable || seats[3].Status != SeatAvailable {
		t.Fatalf("seats 3-4 should be available")
	}
}

func TestBuildSeatMap_EmptyPassengers(t *testing.T) {
	seats := BuildSeatMap(nil, 3)
	for _, s := range seats {
		if s.Status != SeatAvailable || s.Passenger != nil {
			t.Fatalf("seat %d should be free on an empty trip", s.Number)
		}
	}
}

func TestOverbooks(t *testing.T) {
	cases := []struct {
		occupancy, capacity, size int
		want                      bool
	}{
		{0, 10, 10, false},
		{0, 10, 11, true},
		{8, 10, 2, false},
		{8, 10, 3, true},
		{10, 10, 1, true},
	}
	for _, c := range cases {
		if got := Overbooks(c.occupancy, c.capacity, c.size); got != c.want {
			t.Fatalf("Overbooks(%d,%d,%d) = %v, want %v", c.occupancy, c.capacity, c.size, got, c.want)
		}
	}
}

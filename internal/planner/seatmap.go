package planner

import "turisflow/internal/domain/models"

type SeatStatus string

const (
	SeatAvailable  SeatStatus = "available"
	SeatOccupied   SeatStatus = "occupied"
	SeatOverbooked SeatStatus = "overbooked"
)

// Seat is one numbered seat in the derived seat map. Passenger is nil when
// the seat is unassigned.
type Seat struct {
	Number    int               `json:"number"`
	Status    SeatStatus        `json:"status"`
	Passenger *models.Passenger `json:"passenger,omitempty"`
}

// BuildSeatMap assigns seats 1..totalSeats sequentially: each group in stored
// order consumes PaxCount consecutive numbers until seats run out. Appending
// a passenger never moves earlier assignments (stable prefix). A group
// straddling the capacity boundary is truncated in the view only; the
// unseated remainder does not affect counts elsewhere.
//
// The map is recomputed from scratch on every view; seat numbers are not
// stable identifiers across reordering of the passenger list.
func BuildSeatMap(passengers []models.Passenger, totalSeats int) []Seat {
	seats := make([]Seat, totalSeats)
	for i := range seats {
		seats[i] = Seat{Number: i + 1, Status: SeatAvailable}
	}

	next := 0
	for i := range passengers {
		pax := &passengers[i]
		for n := 0; n < pax.PaxCount && next < totalSeats; n++ {
			status := SeatOccupied
			if pax.IsOverbooked {
				status = SeatOverbooked
			}
			seats[next].Status = status
			seats[next].Passenger = pax
			next++
		}
		if next >= totalSeats {
			break
		}
	}
	return seats
}

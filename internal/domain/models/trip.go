package models

// VehicleType enumerates the fleet categories.
type VehicleType string

const (
	VehicleBus     VehicleType = "BUS"
	VehicleVan     VehicleType = "VAN"
	VehicleMinibus VehicleType = "MINIBUS"
)

func (v VehicleType) Valid() bool {
	switch v {
	case VehicleBus, VehicleVan, VehicleMinibus:
		return true
	}
	return false
}

// Trip is a scheduled vehicle departure. Passengers are kept in insertion
// order (id ASC); that ordering is what the seat map and route planner rely on.
type Trip struct {
	ID           int64       `json:"id"`
	Date         string      `json:"date"` // YYYY-MM-DD
	Time         string      `json:"time"`
	VehicleType  VehicleType `json:"vehicle_type"`
	VehicleModel string      `json:"vehicle_model"`
	TotalSeats   int         `json:"total_seats"`
	Origin       string      `json:"origin"`
	Destination  string      `json:"destination"`
	Stops        []string    `json:"stops"`
	DriverName   string      `json:"driver_name"`
	GuideName    string      `json:"guide_name"`
	Passengers   []Passenger `json:"passengers"`
}

// Occupancy is the sum of group sizes currently booked. It may legally
// exceed TotalSeats; that is the overbooking condition, not an error.
func (t Trip) Occupancy() int {
	total := 0
	for _, p := range t.Passengers {
		total += p.PaxCount
	}
	return total
}

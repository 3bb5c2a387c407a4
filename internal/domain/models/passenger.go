package models

// BoardingStatus tracks day-of-operation check-in.
type BoardingStatus string

const (
	BoardingPending BoardingStatus = "pending"
	BoardingBoarded BoardingStatus = "boarded"
	BoardingNoShow  BoardingStatus = "no_show"
)

func (s BoardingStatus) Valid() bool {
	switch s {
	case BoardingPending, BoardingBoarded, BoardingNoShow:
		return true
	}
	return false
}

// Coordinates is a latitude/longitude pair attached optionally to addresses.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Passenger is a booked group (1..N people traveling together under one
// booking), owned by exactly one trip.
//
// IsOverbooked is stored, not derived: it is decided once at booking time
// and intentionally never recomputed when the trip composition changes.
type Passenger struct {
	ID       int64  `json:"id"`
	TripID   int64  `json:"trip_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	PaxCount int    `json:"pax_count"`

	TotalValue       float64 `json:"total_value"`
	PaidAmount       float64 `json:"paid_amount"`
	ReceivableAmount float64 `json:"receivable_amount"`

	ChildrenCount int    `json:"children_count"`
	ChildrenAges  string `json:"children_ages,omitempty"`

	BoardingLocation    string       `json:"boarding_location"`
	BoardingCoordinates *Coordinates `json:"boarding_coordinates,omitempty"`
	BoardingTime        string       `json:"boarding_time"`

	Notes string `json:"notes,omitempty"`

	IsOverbooked      bool           `json:"is_overbooked"`
	AssignedPartnerID int64          `json:"assigned_partner_id,omitempty"`
	BoardingStatus    BoardingStatus `json:"boarding_status"`
}

package models

// Partner is an external transport company able to absorb overflow
// passengers. It is referenced, never owned, by Passenger.AssignedPartnerID.
type Partner struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Specialty     string `json:"specialty,omitempty"`
}

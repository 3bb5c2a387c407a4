package models

// DefaultOriginSentinel is the placeholder stored when a trip departs from
// the agency itself; the route planner swaps it for the company address.
const DefaultOriginSentinel = "Agência Sede"

// CompanyProfile is the singleton record describing the operating agency.
// Its address is the default route origin.
type CompanyProfile struct {
	Name               string       `json:"name"`
	Address            string       `json:"address"`
	AddressCoordinates *Coordinates `json:"address_coordinates,omitempty"`
	Phone              string       `json:"phone"`
	Email              string       `json:"email"`
}

// ResolveOrigin picks the effective route origin for a trip: the trip's own
// origin unless it is unset or the agency placeholder.
func (c CompanyProfile) ResolveOrigin(tripOrigin string) string {
	if tripOrigin == "" || tripOrigin == DefaultOriginSentinel {
		return c.Address
	}
	return tripOrigin
}

package planner

import (
	"math"

	"turisflow/internal/domain/models"
)

// Totals are the financial and occupancy rollups over a set of trips.
type Totals struct {
	TotalPassengers  int     `json:"total_passengers"`
	TotalCapacity    int     `json:"total_capacity"`
	OverbookedPax    int     `json:"overbooked_pax"`
	TotalValue       float64 `json:"total_value"`
	TotalPaid        float64 `json:"total_paid"`
	TotalReceivable  float64 `json:"total_receivable"`
	ActiveVehicles   int     `json:"active_vehicles"`
	OccupancyPercent int     `json:"occupancy_percent"`
}

// FilterByDate applies the dashboard date filter. Dates are ISO YYYY-MM-DD
// strings, so plain string comparison orders them correctly.
//
// With only a start date, trips matching that exact date are kept, not "on
// or after". That asymmetry is a deliberate product rule, preserved as-is.
// With both bounds the range is inclusive; with neither, everything passes.
func FilterByDate(trips []models.Trip, start, end string) []models.Trip {
	if start == "" && end == "" {
		return trips
	}
	out := []models.Trip{}
	for _, t := range trips {
		if start != "" && end == "" {
			if t.Date == start {
				out = append(out, t)
			}
			continue
		}
		if start != "" && end != "" {
			if t.Date >= start && t.Date <= end {
				out = append(out, t)
			}
			continue
		}
		out = append(out, t)
	}
	return out
}

// Summarize aggregates passenger counts, capacity and money over the given
// trips. Occupancy percent is rounded and defined as 0 for zero capacity.
func Summarize(trips []models.Trip) Totals {
	var out Totals
	out.ActiveVehicles = len(trips)
	for _, t := range trips {
		out.TotalCapacity += t.TotalSeats
		for _, p := range t.Passengers {
			out.TotalPassengers += p.PaxCount
			if p.IsOverbooked {
				out.OverbookedPax += p.PaxCount
			}
			out.TotalValue += p.TotalValue
			out.TotalPaid += p.PaidAmount
			out.TotalReceivable += p.ReceivableAmount
		}
	}
	if out.TotalCapacity > 0 {
		out.OccupancyPercent = int(math.Round(100 * float64(out.TotalPassengers) / float64(out.TotalCapacity)))
	}
	return out
}

package services

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "turisflow/internal/config"
	"turisflow/internal/domain"
	"turisflow/internal/domain/models"
	"turisflow/internal/planner"
	"turisflow/internal/repositories"
	"turisflow/internal/utils"
)

// ReportsService aggregates financial and occupancy totals across trips.
type ReportsService struct {
	TripRepo  repositories.TripRepository
	DB        *sql.DB
	RequestID string
}

// Summary carries the aggregated totals plus the window they were computed
// over. Start without End means "that exact date only".
type Summary struct {
	StartDate string         `json:"start_date,omitempty"`
	EndDate   string         `json:"end_date,omitempty"`
	TripCount int            `json:"trip_count"`
	Totals    planner.Totals `json:"totals"`
}

func (s ReportsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s ReportsService) trips() repositories.TripRepository {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepository{DB: s.db()}
}

func (s ReportsService) Summarize(start, end string) (Summary, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if err := validateWindow(start, end); err != nil {
		return Summary{}, err
	}

	trips, err := s.trips().List()
	if err != nil {
		return Summary{}, err
	}
	filtered := planner.FilterByDate(trips, start, end)
	out := Summary{
		StartDate: start,
		EndDate:   end,
		TripCount: len(filtered),
		Totals:    planner.Summarize(filtered),
	}
	utils.LogEvent(s.RequestID, "reports", "summary",
		fmt.Sprintf("start=%q end=%q trips=%d", start, end, out.TripCount))
	return out, nil
}

// FilteredTrips returns the trips inside the window, newest first left to the
// repository ordering. Used by the PDF report.
func (s ReportsService) FilteredTrips(start, end string) ([]models.Trip, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if err := validateWindow(start, end); err != nil {
		return nil, err
	}
	trips, err := s.trips().List()
	if err != nil {
		return nil, err
	}
	return planner.FilterByDate(trips, start, end), nil
}

func validateWindow(start, end string) error {
	if start != "" {
		if _, err := utils.ParseDate(start); err != nil {
			return domain.ValidationError{Field: "start_date", Msg: "data inválida (use YYYY-MM-DD)"}
		}
	}
	if end != "" {
		if _, err := utils.ParseDate(end); err != nil {
			return domain.ValidationError{Field: "end_date", Msg: "data inválida (use YYYY-MM-DD)"}
		}
	}
	if end != "" && start == "" {
		return domain.ValidationError{Field: "start_date", Msg: "data final exige data inicial"}
	}
	return nil
}

package services

import (
	"database/sql"
	"fmt"

	intconfig "turisflow/internal/config"
	"turisflow/internal/domain"
	"turisflow/internal/observability"
	"turisflow/internal/planner"
	"turisflow/internal/repositories"
	"turisflow/internal/utils"
)

// RouteService builds the optimized pickup sequence for a trip.
type RouteService struct {
	TripRepo    repositories.TripRepository
	CompanyRepo repositories.CompanyRepository
	DB          *sql.DB
	RequestID   string
}

func (s RouteService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s RouteService) trips() repositories.TripRepository {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepository{DB: s.db()}
}

func (s RouteService) company() repositories.CompanyRepository {
	if s.CompanyRepo.DB != nil {
		return s.CompanyRepo
	}
	return repositories.CompanyRepository{DB: s.db()}
}

// PlanTrip sequences the trip's pickups nearest-first from the effective
// origin. A missing company profile is tolerated; the planner then starts
// from {0,0}.
func (s RouteService) PlanTrip(tripID int64) (planner.RoutePlan, error) {
	if tripID <= 0 {
		return planner.RoutePlan{}, domain.ValidationError{Field: "id", Msg: "id inválido"}
	}
	trip, err := s.trips().GetByID(tripID)
	if err != nil {
		return planner.RoutePlan{}, err
	}

	profile, err := s.company().Load()
	if err != nil && !domain.IsSetupRequired(err) {
		return planner.RoutePlan{}, err
	}

	// The walk always seeds from the agency's coordinates, even when the
	// trip names a custom origin; only the displayed origin changes.
	originName := profile.ResolveOrigin(trip.Origin)
	plan := planner.PlanRoute(profile.AddressCoordinates, originName, trip.Passengers)
	observability.RoutePlansTotal.Inc()
	utils.LogEvent(s.RequestID, "routes", "plan",
		fmt.Sprintf("trip_id=%d stops=%d", tripID, len(plan.Stops)))
	return plan, nil
}

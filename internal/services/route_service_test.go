package services

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"turisflow/internal/repositories"
)

var companyCols = []string{"name", "address", "address_lat", "address_lng", "phone", "email"}

func newRouteMock(t *testing.T) (sqlmock.Sqlmock, RouteService, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	mock.MatchExpectationsInOrder(false)
	svc := RouteService{
		TripRepo:    repositories.TripRepository{DB: db},
		CompanyRepo: repositories.CompanyRepository{DB: db},
		DB:          db,
	}
	return mock, svc, func() { db.Close() }
}

func TestPlanTripStartsFromCompanyAddress(t *testing.T) {
	mock, svc, done := newRouteMock(t)
	defer done()

	expectTablePresent(mock, "trips", 1)
	expectTablePresent(mock, "passengers", 2)
	expectTablePresent(mock, "company_profile", 1)

	mock.ExpectQuery("FROM trips WHERE id").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(tripCols).
			AddRow(5, "2024-04-01", "06:00", "VAN", "Sprinter", 15, "Agência Sede", "Canela", "", "", ""))

	rows := sqlmock.NewRows(passengerCols)
	rows.AddRow(1, 5, "Grupo Norte", "", "", 2, 0, 0, 0, 0, "", "Rua Norte", 1.0, 0.0, "", "", false, nil, "pending")
	rows.AddRow(2, 5, "Grupo Perto", "", "", 2, 0, 0, 0, 0, "", "Rua Perto", 0.1, 0.0, "", "", false, nil, "pending")
	mock.ExpectQuery("FROM passengers WHERE trip_id").WithArgs(int64(5)).
		WillReturnRows(rows)

	mock.ExpectQuery("FROM company_profile WHERE id = 1").
		WillReturnRows(sqlmock.NewRows(companyCols).
			AddRow("TurisFlow", "Av. Central, 100", 0.0, 0.0, "", ""))

	plan, err := svc.PlanTrip(5)
	if err != nil {
		t.Fatalf("PlanTrip error: %v", err)
	}
	if plan.OriginName != "Av. Central, 100" {
		t.Fatalf("origin = %q, want company address for %q trips", plan.OriginName, "Agência Sede")
	}
	if len(plan.Stops) != 2 || plan.Stops[0].Name != "Grupo Perto" {
		t.Fatalf("stops = %v, want nearest group first", plan.Stops)
	}
	if !strings.Contains(plan.MapsURL, "origin=Av.%20Central%2C%20100") {
		t.Fatalf("maps url = %q, want encoded origin", plan.MapsURL)
	}
}

func TestPlanTripSeedsFromCompanyCoordinatesForCustomOrigin(t *testing.T) {
	mock, svc, done := newRouteMock(t)
	defer done()

	expectTablePresent(mock, "trips", 1)
	expectTablePresent(mock, "passengers", 2)
	expectTablePresent(mock, "company_profile", 1)

	mock.ExpectQuery("FROM trips WHERE id").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(tripCols).
			AddRow(7, "2024-04-01", "06:00", "VAN", "Sprinter", 15, "Rodoviária", "Canela", "", "", ""))

	rows := sqlmock.NewRows(passengerCols)
	rows.AddRow(1, 7, "Grupo Longe", "", "", 2, 0, 0, 0, 0, "", "Rua Sul", 1.0, 0.0, "", "", false, nil, "pending")
	rows.AddRow(2, 7, "Grupo Vizinho", "", "", 2, 0, 0, 0, 0, "", "Rua Norte", 9.0, 0.0, "", "", false, nil, "pending")
	mock.ExpectQuery("FROM passengers WHERE trip_id").WithArgs(int64(7)).
		WillReturnRows(rows)

	mock.ExpectQuery("FROM company_profile WHERE id = 1").
		WillReturnRows(sqlmock.NewRows(companyCols).
			AddRow("TurisFlow", "Av. Central, 100", 10.0, 0.0, "", ""))

	plan, err := svc.PlanTrip(7)
	if err != nil {
		t.Fatalf("PlanTrip error: %v", err)
	}
	if plan.OriginName != "Rodoviária" {
		t.Fatalf("origin = %q, want the trip's own origin", plan.OriginName)
	}
	// Even with a custom origin the walk starts at the agency's
	// coordinates, so the group nearest the agency comes first.
	if len(plan.Stops) != 2 || plan.Stops[0].Name != "Grupo Vizinho" {
		t.Fatalf("stops = %v, want the group nearest the agency first", plan.Stops)
	}
}

func TestPlanTripToleratesMissingCompanyProfile(t *testing.T) {
	mock, svc, done := newRouteMock(t)
	defer done()

	expectTablePresent(mock, "trips", 1)
	expectTablePresent(mock, "passengers", 2)

	mock.ExpectQuery("FROM trips WHERE id").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(tripCols).
			AddRow(5, "2024-04-01", "06:00", "VAN", "Sprinter", 15, "Rodoviária", "Canela", "", "", ""))
	mock.ExpectQuery("FROM passengers WHERE trip_id").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(passengerCols))

	// company table absent
	mock.ExpectQuery("information_schema\\.tables").WithArgs("company_profile").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	plan, err := svc.PlanTrip(5)
	if err != nil {
		t.Fatalf("PlanTrip error: %v", err)
	}
	if plan.OriginName != "Rodoviária" {
		t.Fatalf("origin = %q, want the trip's own origin", plan.OriginName)
	}
}

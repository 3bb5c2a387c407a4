package services

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"turisflow/internal/clients/gentext"
	"turisflow/internal/domain"
	"turisflow/internal/repositories"
)

type fakeDrafter struct {
	got gentext.EmailRequest
}

func (f *fakeDrafter) DraftPartnerEmail(_ context.Context, req gentext.EmailRequest) string {
	f.got = req
	return "Prezada " + req.PartnerName + ", segue o rascunho."
}

var partnerCols = []string{"id", "name", "contact_person", "email", "phone", "specialty"}

func TestDraftTransferEmailCollectsAssignedGroups(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectTablePresent(mock, "partners", 1)
	expectTablePresent(mock, "trips", 1)
	expectTablePresent(mock, "passengers", 2)

	mock.ExpectQuery("FROM partners WHERE id").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(partnerCols).
			AddRow(4, "TransTur", "Maria", "contato@transtur.com", "", ""))
	mock.ExpectQuery("FROM trips WHERE id").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(tripCols).
			AddRow(9, "2024-05-10", "05:30", "BUS", "Paradiso", 40, "Agência Sede", "Beto Carrero", "", "", ""))

	rows := sqlmock.NewRows(passengerCols)
	rows.AddRow(1, 9, "Grupo Silva", "", "", 3, 0, 0, 0, 0, "", "", nil, nil, "", "", true, 4, "pending")
	rows.AddRow(2, 9, "Grupo Souza", "", "", 2, 0, 0, 0, 0, "", "", nil, nil, "", "", false, nil, "pending")
	rows.AddRow(3, 9, "Grupo Lima", "", "", 1, 0, 0, 0, 0, "", "", nil, nil, "", "", true, 4, "pending")
	mock.ExpectQuery("FROM passengers WHERE trip_id").WithArgs(int64(9)).
		WillReturnRows(rows)

	drafter := &fakeDrafter{}
	svc := PartnerService{
		PartnerRepo:   repositories.PartnerRepository{DB: db},
		PassengerRepo: repositories.PassengerRepository{DB: db},
		TripRepo:      repositories.TripRepository{DB: db},
		Drafter:       drafter,
		DB:            db,
	}

	draft, err := svc.DraftTransferEmail(context.Background(), 4, 9)
	if err != nil {
		t.Fatalf("DraftTransferEmail error: %v", err)
	}
	if !strings.Contains(draft, "TransTur") {
		t.Fatalf("draft = %q, want partner name mentioned", draft)
	}
	if drafter.got.PassengerCount != 4 {
		t.Fatalf("passenger count = %d, want 4 (3+1 assigned)", drafter.got.PassengerCount)
	}
	if len(drafter.got.PassengerNames) != 2 || drafter.got.PassengerNames[0] != "Grupo Silva" {
		t.Fatalf("names = %v, want [Grupo Silva Grupo Lima]", drafter.got.PassengerNames)
	}
	if !strings.Contains(drafter.got.TripDetails, "Beto Carrero") {
		t.Fatalf("trip details = %q, want destination mentioned", drafter.got.TripDetails)
	}
}

func TestDraftTransferEmailRequiresAssignedGroups(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectTablePresent(mock, "partners", 1)
	expectTablePresent(mock, "trips", 1)
	expectTablePresent(mock, "passengers", 2)

	mock.ExpectQuery("FROM partners WHERE id").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(partnerCols).
			AddRow(4, "TransTur", "", "", "", ""))
	mock.ExpectQuery("FROM trips WHERE id").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(tripCols).
			AddRow(9, "2024-05-10", "05:30", "BUS", "Paradiso", 40, "A", "B", "", "", ""))
	mock.ExpectQuery("FROM passengers WHERE trip_id").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(passengerCols))

	svc := PartnerService{
		PartnerRepo:   repositories.PartnerRepository{DB: db},
		PassengerRepo: repositories.PassengerRepository{DB: db},
		TripRepo:      repositories.TripRepository{DB: db},
		Drafter:       &fakeDrafter{},
		DB:            db,
	}
	_, err = svc.DraftTransferEmail(context.Background(), 4, 9)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestReassignRejectsUnknownPartner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectTablePresent(mock, "partners", 1)
	mock.ExpectQuery("FROM partners WHERE id").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(partnerCols))

	svc := PartnerService{
		PartnerRepo:   repositories.PartnerRepository{DB: db},
		PassengerRepo: repositories.PassengerRepository{DB: db},
		DB:            db,
	}
	err = svc.Reassign(9, 2, 99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestReassignWritesPartnerID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectTablePresent(mock, "partners", 1)
	expectTablePresent(mock, "passengers", 1)

	mock.ExpectQuery("FROM partners WHERE id").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(partnerCols).
			AddRow(4, "TransTur", "", "", "", ""))
	mock.ExpectExec("UPDATE passengers SET assigned_partner_id").
		WithArgs(int64(4), int64(2), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := PartnerService{
		PartnerRepo:   repositories.PartnerRepository{DB: db},
		PassengerRepo: repositories.PassengerRepository{DB: db},
		DB:            db,
	}
	if err := svc.Reassign(9, 2, 4); err != nil {
		t.Fatalf("Reassign error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

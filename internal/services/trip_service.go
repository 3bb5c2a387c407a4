package services

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "turisflow/internal/config"
	"turisflow/internal/domain"
	"turisflow/internal/domain/models"
	"turisflow/internal/observability"
	"turisflow/internal/planner"
	"turisflow/internal/repositories"
	"turisflow/internal/utils"
	"turisflow/internal/ws"
)

// TripService owns trip CRUD and passenger booking. The overbooking verdict
// is computed here, once, at booking time.
type TripService struct {
	TripRepo      repositories.TripRepository
	PassengerRepo repositories.PassengerRepository
	DB            *sql.DB
	Hub           *ws.Hub
	RequestID     string
}

func (s TripService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s TripService) trips() repositories.TripRepository {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepository{DB: s.db()}
}

func (s TripService) passengers() repositories.PassengerRepository {
	if s.PassengerRepo.DB != nil {
		return s.PassengerRepo
	}
	return repositories.PassengerRepository{DB: s.db()}
}

func (s TripService) ListTrips() ([]models.Trip, error) {
	return s.trips().List()
}

func (s TripService) GetTrip(id int64) (models.Trip, error) {
	if id <= 0 {
		return models.Trip{}, domain.ValidationError{Field: "id", Msg: "id inválido"}
	}
	return s.trips().GetByID(id)
}

func (s TripService) CreateTrip(t models.Trip) (models.Trip, error) {
	if err := validateTrip(&t); err != nil {
		return models.Trip{}, err
	}
	id, err := s.trips().Create(t)
	if err != nil {
		return models.Trip{}, err
	}
	t.ID = id
	t.Passengers = []models.Passenger{}
	utils.LogEvent(s.RequestID, "trips", "create", fmt.Sprintf("trip_id=%d date=%s", id, t.Date))
	return t, nil
}

func (s TripService) UpdateTrip(t models.Trip) (models.Trip, error) {
	if t.ID <= 0 {
		return models.Trip{}, domain.ValidationError{Field: "id", Msg: "id inválido"}
	}
	if err := validateTrip(&t); err != nil {
		return models.Trip{}, err
	}
	if err := s.trips().Update(t); err != nil {
		return models.Trip{}, err
	}
	utils.LogEvent(s.RequestID, "trips", "update", fmt.Sprintf("trip_id=%d", t.ID))
	return s.trips().GetByID(t.ID)
}

func (s TripService) DeleteTrip(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id inválido"}
	}
	if err := s.trips().Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "trips", "delete", fmt.Sprintf("trip_id=%d", id))
	return nil
}

// AddPassenger books a group on a trip. The group is flagged overbooked when
// the trip's occupancy plus the group size exceeds total seats; the flag is
// stored and never revisited, even if earlier bookings are later removed.
func (s TripService) AddPassenger(tripID int64, p models.Passenger) (models.Passenger, error) {
	trip, err := s.trips().GetByID(tripID)
	if err != nil {
		return models.Passenger{}, err
	}
	if err := validatePassenger(&p); err != nil {
		return models.Passenger{}, err
	}

	p.TripID = tripID
	p.ReceivableAmount = p.TotalValue - p.PaidAmount
	p.IsOverbooked = planner.Overbooks(trip.Occupancy(), trip.TotalSeats, p.PaxCount)
	if p.BoardingLocation == "" {
		p.BoardingLocation = trip.Origin
	}
	if p.BoardingTime == "" {
		p.BoardingTime = trip.Time
	}

	id, err := s.passengers().Insert(p)
	if err != nil {
		return models.Passenger{}, err
	}
	p.ID = id

	observability.BookingsTotal.Inc()
	if p.IsOverbooked {
		observability.OverbookedTotal.Inc()
	}
	utils.LogEvent(s.RequestID, "passengers", "book",
		fmt.Sprintf("trip_id=%d passenger_id=%d pax=%d overbooked=%t", tripID, id, p.PaxCount, p.IsOverbooked))
	return p, nil
}

func (s TripService) UpdateBoardingStatus(tripID, paxID int64, status models.BoardingStatus) error {
	if !status.Valid() {
		return domain.ValidationError{Field: "boarding_status", Msg: "status inválido"}
	}
	if err := s.passengers().UpdateBoardingStatus(tripID, paxID, status); err != nil {
		return err
	}
	if s.Hub != nil {
		s.Hub.Broadcast(ws.BoardingEvent{TripID: tripID, PassengerID: paxID, Status: string(status)})
	}
	utils.LogEvent(s.RequestID, "passengers", "boarding_status",
		fmt.Sprintf("trip_id=%d passenger_id=%d status=%s", tripID, paxID, status))
	return nil
}

func (s TripService) RemovePassenger(tripID, paxID int64) error {
	if err := s.passengers().Delete(tripID, paxID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "passengers", "remove",
		fmt.Sprintf("trip_id=%d passenger_id=%d", tripID, paxID))
	return nil
}

// SeatMap projects the trip's bookings onto physical seats in insertion order.
func (s TripService) SeatMap(tripID int64) ([]planner.Seat, error) {
	trip, err := s.trips().GetByID(tripID)
	if err != nil {
		return nil, err
	}
	return planner.BuildSeatMap(trip.Passengers, trip.TotalSeats), nil
}

func validateTrip(t *models.Trip) error {
	t.Date = strings.TrimSpace(t.Date)
	t.Time = strings.TrimSpace(t.Time)
	t.Origin = strings.TrimSpace(t.Origin)
	t.Destination = strings.TrimSpace(t.Destination)
	if _, err := utils.ParseDate(t.Date); err != nil {
		return domain.ValidationError{Field: "date", Msg: "data inválida (use YYYY-MM-DD)"}
	}
	if !t.VehicleType.Valid() {
		return domain.ValidationError{Field: "vehicle_type", Msg: "tipo de veículo inválido"}
	}
	if t.TotalSeats <= 0 {
		return domain.ValidationError{Field: "total_seats", Msg: "capacidade deve ser positiva"}
	}
	if t.Destination == "" {
		return domain.ValidationError{Field: "destination", Msg: "destino obrigatório"}
	}
	if t.Origin == "" {
		t.Origin = models.DefaultOriginSentinel
	}
	return nil
}

func validatePassenger(p *models.Passenger) error {
	p.Name = utils.NormalizeSpace(p.Name)
	if p.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "nome obrigatório"}
	}
	if p.PaxCount < 1 {
		return domain.ValidationError{Field: "pax_count", Msg: "grupo deve ter ao menos 1 pessoa"}
	}
	if p.TotalValue < 0 || p.PaidAmount < 0 {
		return domain.ValidationError{Field: "total_value", Msg: "valores não podem ser negativos"}
	}
	if p.PaidAmount > p.TotalValue {
		return domain.ValidationError{Field: "paid_amount", Msg: "pago maior que o total"}
	}
	if p.BoardingStatus == "" {
		p.BoardingStatus = models.BoardingPending
	}
	if !p.BoardingStatus.Valid() {
		return domain.ValidationError{Field: "boarding_status", Msg: "status inválido"}
	}
	return nil
}

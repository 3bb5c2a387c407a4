package repositories

import (
	"database/sql"

	intconfig "turisflow/internal/config"
	intdb "turisflow/internal/db"
	"turisflow/internal/domain"
	"turisflow/internal/domain/models"
)

type PassengerRepository struct {
	DB *sql.DB
}

func (r PassengerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PassengerRepository) ensureTable() error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	if !intdb.HasTable(db, "passengers") {
		return domain.SetupRequiredError{MissingTables: []string{"passengers"}}
	}
	return nil
}

const passengerColumns = `
	id, trip_id, COALESCE(name,''), COALESCE(phone,''), COALESCE(email,''),
	pax_count, COALESCE(total_value,0), COALESCE(paid_amount,0),
	COALESCE(receivable_amount,0), COALESCE(children_count,0),
	COALESCE(children_ages,''), COALESCE(boarding_location,''),
	boarding_lat, boarding_lng, COALESCE(boarding_time,''), COALESCE(notes,''),
	is_overbooked, assigned_partner_id, COALESCE(boarding_status,'pending')`

// ListByTrip returns a trip's passengers in insertion order, the ordering
// the seat map and route planner depend on.
func (r PassengerRepository) ListByTrip(tripID int64) ([]models.Passenger, error) {
	if err := r.ensureTable(); err != nil {
		return nil, err
	}
	rows, err := r.db().Query(`SELECT `+passengerColumns+`
		FROM passengers WHERE trip_id = ? ORDER BY id ASC`, tripID)
	if err != nil {
		return nil, domain.InternalError{Msg: "list passengers", Err: err}
	}
	defer rows.Close()
	return collectPassengers(rows)
}

func (r PassengerRepository) ListAll() ([]models.Passenger, error) {
	if err := r.ensureTable(); err != nil {
		return nil, err
	}
	rows, err := r.db().Query(`SELECT ` + passengerColumns + `
		FROM passengers ORDER BY trip_id ASC, id ASC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list passengers", Err: err}
	}
	defer rows.Close()
	return collectPassengers(rows)
}

func (r PassengerRepository) GetByID(id int64) (models.Passenger, error) {
	var p models.Passenger
	if err := r.ensureTable(); err != nil {
		return p, err
	}
	row := r.db().QueryRow(`SELECT `+passengerColumns+`
		FROM passengers WHERE id = ?`, id)
	p, err := scanPassenger(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return p, domain.NotFoundError{Resource: "passenger"}
		}
		return p, domain.InternalError{Msg: "get passenger", Err: err}
	}
	return p, nil
}

func (r PassengerRepository) Insert(p models.Passenger) (int64, error) {
	if err := r.ensureTable(); err != nil {
		return 0, err
	}

	var lat, lng any
	if p.BoardingCoordinates != nil {
		lat = p.BoardingCoordinates.Lat
		lng = p.BoardingCoordinates.Lng
	}
	var partner any
	if p.AssignedPartnerID != 0 {
		partner = p.AssignedPartnerID
	}

	res, err := r.db().Exec(`
		INSERT INTO passengers (trip_id, name, phone, email, pax_count,
			total_value, paid_amount, receivable_amount, children_count,
			children_ages, boarding_location, boarding_lat, boarding_lng,
			boarding_time, notes, is_overbooked, assigned_partner_id, boarding_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.TripID, p.Name, p.Phone, p.Email, p.PaxCount,
		p.TotalValue, p.PaidAmount, p.ReceivableAmount, p.ChildrenCount,
		intdb.NullIfEmpty(p.ChildrenAges), p.BoardingLocation, lat, lng,
		p.BoardingTime, intdb.NullIfEmpty(p.Notes), p.IsOverbooked, partner,
		string(p.BoardingStatus))
	if err != nil {
		return 0, domain.InternalError{Msg: "insert passenger", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Msg: "insert passenger id", Err: err}
	}
	return id, nil
}

func (r PassengerRepository) UpdateBoardingStatus(tripID, paxID int64, status models.BoardingStatus) error {
	if err := r.ensureTable(); err != nil {
		return err
	}
	res, err := r.db().Exec(`
		UPDATE passengers SET boarding_status=? WHERE id=? AND trip_id=?`,
		string(status), paxID, tripID)
	if err != nil {
		return domain.InternalError{Msg: "update boarding status", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if !r.belongsToTrip(paxID, tripID) {
			return domain.NotFoundError{Resource: "passenger"}
		}
	}
	return nil
}

func (r PassengerRepository) AssignPartner(tripID, paxID, partnerID int64) error {
	if err := r.ensureTable(); err != nil {
		return err
	}
	res, err := r.db().Exec(`
		UPDATE passengers SET assigned_partner_id=? WHERE id=? AND trip_id=?`,
		partnerID, paxID, tripID)
	if err != nil {
		return domain.InternalError{Msg: "assign partner", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if !r.belongsToTrip(paxID, tripID) {
			return domain.NotFoundError{Resource: "passenger"}
		}
	}
	return nil
}

func (r PassengerRepository) Delete(tripID, paxID int64) error {
	if err := r.ensureTable(); err != nil {
		return err
	}
	res, err := r.db().Exec(`DELETE FROM passengers WHERE id=? AND trip_id=?`, paxID, tripID)
	if err != nil {
		return domain.InternalError{Msg: "delete passenger", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "passenger"}
	}
	return nil
}

func (r PassengerRepository) belongsToTrip(paxID, tripID int64) bool {
	var one int
	err := r.db().QueryRow(`SELECT 1 FROM passengers WHERE id=? AND trip_id=?`, paxID, tripID).Scan(&one)
	return err == nil
}

func collectPassengers(rows *sql.Rows) ([]models.Passenger, error) {
	out := []models.Passenger{}
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan passenger", Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "iterate passengers", Err: err}
	}
	return out, nil
}

func scanPassenger(row rowScanner) (models.Passenger, error) {
	var p models.Passenger
	var lat, lng sql.NullFloat64
	var partner sql.NullInt64
	var status string
	err := row.Scan(&p.ID, &p.TripID, &p.Name, &p.Phone, &p.Email,
		&p.PaxCount, &p.TotalValue, &p.PaidAmount, &p.ReceivableAmount,
		&p.ChildrenCount, &p.ChildrenAges, &p.BoardingLocation,
		&lat, &lng, &p.BoardingTime, &p.Notes,
		&p.IsOverbooked, &partner, &status)
	if err != nil {
		return p, err
	}
	if lat.Valid && lng.Valid {
		p.BoardingCoordinates = &models.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}
	if partner.Valid {
		p.AssignedPartnerID = partner.Int64
	}
	p.BoardingStatus = models.BoardingStatus(status)
	return p, nil
}

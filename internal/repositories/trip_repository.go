package repositories

import (
	"database/sql"

	intconfig "turisflow/internal/config"
	intdb "turisflow/internal/db"
	"turisflow/internal/domain"
	"turisflow/internal/domain/models"
	"turisflow/internal/utils"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ensureTables distinguishes "tables missing" from "no data" so callers can
// offer the database-setup path.
func (r TripRepository) ensureTables() error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	if missing := intdb.MissingTables(db, "trips", "passengers"); len(missing) > 0 {
		return domain.SetupRequiredError{MissingTables: missing}
	}
	return nil
}

func (r TripRepository) List() ([]models.Trip, error) {
	if err := r.ensureTables(); err != nil {
		return nil, err
	}
	db := r.db()

	rows, err := db.Query(`
		SELECT id, COALESCE(date,''), COALESCE(time,''), COALESCE(vehicle_type,''),
		       COALESCE(vehicle_model,''), total_seats, COALESCE(origin,''),
		       COALESCE(destination,''), COALESCE(stops,''), COALESCE(driver_name,''),
		       COALESCE(guide_name,'')
		FROM trips
		ORDER BY date ASC, id ASC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list trips", Err: err}
	}
	defer rows.Close()

	trips := []models.Trip{}
	index := map[int64]int{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan trip", Err: err}
		}
		index[t.ID] = len(trips)
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "list trips", Err: err}
	}

	if err := r.attachPassengers(trips, index); err != nil {
		return nil, err
	}
	return trips, nil
}

func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	var t models.Trip
	if err := r.ensureTables(); err != nil {
		return t, err
	}
	db := r.db()

	row := db.QueryRow(`
		SELECT id, COALESCE(date,''), COALESCE(time,''), COALESCE(vehicle_type,''),
		       COALESCE(vehicle_model,''), total_seats, COALESCE(origin,''),
		       COALESCE(destination,''), COALESCE(stops,''), COALESCE(driver_name,''),
		       COALESCE(guide_name,'')
		FROM trips WHERE id = ?`, id)

	t, err := scanTrip(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return t, domain.NotFoundError{Resource: "trip"}
		}
		return t, domain.InternalError{Msg: "get trip", Err: err}
	}

	passengers, err := PassengerRepository{DB: r.DB}.ListByTrip(id)
	if err != nil {
		return t, err
	}
	t.Passengers = passengers
	return t, nil
}

func (r TripRepository) Create(t models.Trip) (int64, error) {
	if err := r.ensureTables(); err != nil {
		return 0, err
	}
	db := r.db()

	res, err := db.Exec(`
		INSERT INTO trips (date, time, vehicle_type, vehicle_model, total_seats,
		                   origin, destination, stops, driver_name, guide_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Date, t.Time, string(t.VehicleType), t.VehicleModel, t.TotalSeats,
		t.Origin, t.Destination, utils.JoinStops(t.Stops),
		intdb.NullIfEmpty(t.DriverName), intdb.NullIfEmpty(t.GuideName))
	if err != nil {
		return 0, domain.InternalError{Msg: "insert trip", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Msg: "insert trip id", Err: err}
	}
	return id, nil
}

func (r TripRepository) Update(t models.Trip) error {
	if err := r.ensureTables(); err != nil {
		return err
	}
	db := r.db()

	res, err := db.Exec(`
		UPDATE trips
		SET date=?, time=?, vehicle_type=?, vehicle_model=?, total_seats=?,
		    origin=?, destination=?, stops=?, driver_name=?, guide_name=?
		WHERE id=?`,
		t.Date, t.Time, string(t.VehicleType), t.VehicleModel, t.TotalSeats,
		t.Origin, t.Destination, utils.JoinStops(t.Stops),
		intdb.NullIfEmpty(t.DriverName), intdb.NullIfEmpty(t.GuideName), t.ID)
	if err != nil {
		return domain.InternalError{Msg: "update trip", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if !r.exists(t.ID) {
			return domain.NotFoundError{Resource: "trip"}
		}
	}
	return nil
}

func (r TripRepository) Delete(id int64) error {
	if err := r.ensureTables(); err != nil {
		return err
	}
	db := r.db()

	// passengers go with the trip
	if _, err := db.Exec(`DELETE FROM passengers WHERE trip_id=?`, id); err != nil {
		return domain.InternalError{Msg: "delete trip passengers", Err: err}
	}
	res, err := db.Exec(`DELETE FROM trips WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Msg: "delete trip", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}

func (r TripRepository) exists(id int64) bool {
	var one int
	err := r.db().QueryRow(`SELECT 1 FROM trips WHERE id=?`, id).Scan(&one)
	return err == nil
}

func (r TripRepository) attachPassengers(trips []models.Trip, index map[int64]int) error {
	if len(trips) == 0 {
		return nil
	}
	all, err := PassengerRepository{DB: r.DB}.ListAll()
	if err != nil {
		return err
	}
	for i := range trips {
		trips[i].Passengers = []models.Passenger{}
	}
	for _, p := range all {
		if i, ok := index[p.TripID]; ok {
			trips[i].Passengers = append(trips[i].Passengers, p)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (models.Trip, error) {
	var t models.Trip
	var vehicleType, stops string
	err := row.Scan(&t.ID, &t.Date, &t.Time, &vehicleType, &t.VehicleModel,
		&t.TotalSeats, &t.Origin, &t.Destination, &stops, &t.DriverName, &t.GuideName)
	if err != nil {
		return t, err
	}
	t.VehicleType = models.VehicleType(vehicleType)
	t.Stops = utils.SplitStopList(stops)
	t.Passengers = []models.Passenger{}
	return t, nil
}

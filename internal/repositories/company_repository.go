package repositories

import (
	"database/sql"

	intconfig "turisflow/internal/config"
	intdb "turisflow/internal/db"
	"turisflow/internal/domain"
	"turisflow/internal/domain/models"
)

// CompanyRepository manages the singleton agency profile (row id 1).
type CompanyRepository struct {
	DB *sql.DB
}

func (r CompanyRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r CompanyRepository) ensureTable() error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	if !intdb.HasTable(db, "company_profile") {
		return domain.SetupRequiredError{MissingTables: []string{"company_profile"}}
	}
	return nil
}

func (r CompanyRepository) Load() (models.CompanyProfile, error) {
	var c models.CompanyProfile
	if err := r.ensureTable(); err != nil {
		return c, err
	}

	var lat, lng sql.NullFloat64
	err := r.db().QueryRow(`
		SELECT COALESCE(name,''), COALESCE(address,''), address_lat, address_lng,
		       COALESCE(phone,''), COALESCE(email,'')
		FROM company_profile WHERE id = 1`).
		Scan(&c.Name, &c.Address, &lat, &lng, &c.Phone, &c.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			// Unconfigured profile is legal: route planning degrades to {0,0}.
			return c, nil
		}
		return c, domain.InternalError{Msg: "load company profile", Err: err}
	}
	if lat.Valid && lng.Valid {
		c.AddressCoordinates = &models.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}
	return c, nil
}

func (r CompanyRepository) Save(c models.CompanyProfile) error {
	if err := r.ensureTable(); err != nil {
		return err
	}

	var lat, lng any
	if c.AddressCoordinates != nil {
		lat = c.AddressCoordinates.Lat
		lng = c.AddressCoordinates.Lng
	}
	_, err := r.db().Exec(`
		INSERT INTO company_profile (id, name, address, address_lat, address_lng, phone, email)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name=VALUES(name), address=VALUES(address),
			address_lat=VALUES(address_lat), address_lng=VALUES(address_lng),
			phone=VALUES(phone), email=VALUES(email)`,
		c.Name, c.Address, lat, lng, c.Phone, c.Email)
	if err != nil {
		return domain.InternalError{Msg: "save company profile", Err: err}
	}
	return nil
}

package repositories

import (
	"database/sql"

	intconfig "turisflow/internal/config"
	intdb "turisflow/internal/db"
	"turisflow/internal/domain"
	"turisflow/internal/domain/models"
)

type PartnerRepository struct {
	DB *sql.DB
}

func (r PartnerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PartnerRepository) ensureTable() error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	if !intdb.HasTable(db, "partners") {
		return domain.SetupRequiredError{MissingTables: []string{"partners"}}
	}
	return nil
}

func (r PartnerRepository) List() ([]models.Partner, error) {
	if err := r.ensureTable(); err != nil {
		return nil, err
	}
	rows, err := r.db().Query(`
		SELECT id, COALESCE(name,''), COALESCE(contact_person,''),
		       COALESCE(email,''), COALESCE(phone,''), COALESCE(specialty,'')
		FROM partners ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list partners", Err: err}
	}
	defer rows.Close()

	out := []models.Partner{}
	for rows.Next() {
		var p models.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.ContactPerson, &p.Email, &p.Phone, &p.Specialty); err != nil {
			return nil, domain.InternalError{Msg: "scan partner", Err: err}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PartnerRepository) GetByID(id int64) (models.Partner, error) {
	var p models.Partner
	if err := r.ensureTable(); err != nil {
		return p, err
	}
	err := r.db().QueryRow(`
		SELECT id, COALESCE(name,''), COALESCE(contact_person,''),
		       COALESCE(email,''), COALESCE(phone,''), COALESCE(specialty,'')
		FROM partners WHERE id=?`, id).
		Scan(&p.ID, &p.Name, &p.ContactPerson, &p.Email, &p.Phone, &p.Specialty)
	if err != nil {
		if err == sql.ErrNoRows {
			return p, domain.NotFoundError{Resource: "partner"}
		}
		return p, domain.InternalError{Msg: "get partner", Err: err}
	}
	return p, nil
}

func (r PartnerRepository) Create(p models.Partner) (int64, error) {
	if err := r.ensureTable(); err != nil {
		return 0, err
	}
	res, err := r.db().Exec(`
		INSERT INTO partners (name, contact_person, email, phone, specialty)
		VALUES (?, ?, ?, ?, ?)`,
		p.Name, p.ContactPerson, p.Email, p.Phone, intdb.NullIfEmpty(p.Specialty))
	if err != nil {
		return 0, domain.InternalError{Msg: "insert partner", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Msg: "insert partner id", Err: err}
	}
	return id, nil
}

func (r PartnerRepository) Update(p models.Partner) error {
	if err := r.ensureTable(); err != nil {
		return err
	}
	res, err := r.db().Exec(`
		UPDATE partners SET name=?, contact_person=?, email=?, phone=?, specialty=?
		WHERE id=?`,
		p.Name, p.ContactPerson, p.Email, p.Phone, intdb.NullIfEmpty(p.Specialty), p.ID)
	if err != nil {
		return domain.InternalError{Msg: "update partner", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(p.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r PartnerRepository) Delete(id int64) error {
	if err := r.ensureTable(); err != nil {
		return err
	}
	res, err := r.db().Exec(`DELETE FROM partners WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Msg: "delete partner", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "partner"}
	}
	return nil
}

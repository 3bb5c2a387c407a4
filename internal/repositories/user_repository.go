package repositories

import (
	"database/sql"

	intconfig "turisflow/internal/config"
	intdb "turisflow/internal/db"
	"turisflow/internal/domain"
	"turisflow/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) ensureTable() error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	if !intdb.HasTable(db, "users") {
		return domain.SetupRequiredError{MissingTables: []string{"users"}}
	}
	return nil
}

// GetByEmail returns the user plus the stored bcrypt hash.
func (r UserRepository) GetByEmail(email string) (models.User, string, error) {
	var u models.User
	var hash string
	if err := r.ensureTable(); err != nil {
		return u, "", err
	}
	err := r.db().QueryRow(`
		SELECT id, COALESCE(name,''), email, password_hash, COALESCE(role,'operator')
		FROM users WHERE email = ?`, email).
		Scan(&u.ID, &u.Name, &u.Email, &hash, &u.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			return u, "", domain.NotFoundError{Resource: "user"}
		}
		return u, "", domain.InternalError{Msg: "get user", Err: err}
	}
	return u, hash, nil
}

// GetByID loads a user without its credentials.
func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	if err := r.ensureTable(); err != nil {
		return u, err
	}
	err := r.db().QueryRow(`
		SELECT id, COALESCE(name,''), email, COALESCE(role,'operator')
		FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			return u, domain.NotFoundError{Resource: "user"}
		}
		return u, domain.InternalError{Msg: "get user", Err: err}
	}
	return u, nil
}

func (r UserRepository) EmailExists(email string) (bool, error) {
	if err := r.ensureTable(); err != nil {
		return false, err
	}
	var count int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&count); err != nil {
		return false, domain.InternalError{Msg: "check user", Err: err}
	}
	return count > 0, nil
}

func (r UserRepository) Create(name, email, passwordHash string) (int64, error) {
	if err := r.ensureTable(); err != nil {
		return 0, err
	}
	res, err := r.db().Exec(`
		INSERT INTO users (name, email, password_hash, role)
		VALUES (?, ?, ?, 'operator')`, name, email, passwordHash)
	if err != nil {
		return 0, domain.InternalError{Msg: "insert user", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Msg: "insert user id", Err: err}
	}
	return id, nil
}

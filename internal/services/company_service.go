package services

import (
	"database/sql"
	"strings"

	intconfig "turisflow/internal/config"
	"turisflow/internal/domain"
	"turisflow/internal/domain/models"
	"turisflow/internal/repositories"
	"turisflow/internal/utils"
)

// CompanyService wraps the singleton agency profile.
type CompanyService struct {
	CompanyRepo repositories.CompanyRepository
	DB          *sql.DB
	RequestID   string
}

func (s CompanyService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s CompanyService) repo() repositories.CompanyRepository {
	if s.CompanyRepo.DB != nil {
		return s.CompanyRepo
	}
	return repositories.CompanyRepository{DB: s.db()}
}

func (s CompanyService) Get() (models.CompanyProfile, error) {
	return s.repo().Load()
}

func (s CompanyService) Save(c models.CompanyProfile) (models.CompanyProfile, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Address = strings.TrimSpace(c.Address)
	if c.Name == "" {
		return models.CompanyProfile{}, domain.ValidationError{Field: "name", Msg: "nome obrigatório"}
	}
	if err := s.repo().Save(c); err != nil {
		return models.CompanyProfile{}, err
	}
	utils.LogEvent(s.RequestID, "company", "save", "profile updated")
	return c, nil
}

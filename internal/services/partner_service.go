package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"turisflow/internal/clients/gentext"
	intconfig "turisflow/internal/config"
	"turisflow/internal/domain"
	"turisflow/internal/domain/models"
	"turisflow/internal/repositories"
	"turisflow/internal/utils"
)

// PartnerService manages overflow partner companies and the hand-off of
// overbooked passengers to them.
type PartnerService struct {
	PartnerRepo   repositories.PartnerRepository
	PassengerRepo repositories.PassengerRepository
	TripRepo      repositories.TripRepository
	Drafter       gentext.Drafter
	DB            *sql.DB
	RequestID     string
}

func (s PartnerService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s PartnerService) partners() repositories.PartnerRepository {
	if s.PartnerRepo.DB != nil {
		return s.PartnerRepo
	}
	return repositories.PartnerRepository{DB: s.db()}
}

func (s PartnerService) passengers() repositories.PassengerRepository {
	if s.PassengerRepo.DB != nil {
		return s.PassengerRepo
	}
	return repositories.PassengerRepository{DB: s.db()}
}

func (s PartnerService) trips() repositories.TripRepository {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepository{DB: s.db()}
}

func (s PartnerService) List() ([]models.Partner, error) {
	return s.partners().List()
}

func (s PartnerService) Get(id int64) (models.Partner, error) {
	if id <= 0 {
		return models.Partner{}, domain.ValidationError{Field: "id", Msg: "id inválido"}
	}
	return s.partners().GetByID(id)
}

func (s PartnerService) Create(p models.Partner) (models.Partner, error) {
	if err := validatePartner(&p); err != nil {
		return models.Partner{}, err
	}
	id, err := s.partners().Create(p)
	if err != nil {
		return models.Partner{}, err
	}
	p.ID = id
	utils.LogEvent(s.RequestID, "partners", "create", fmt.Sprintf("partner_id=%d", id))
	return p, nil
}

func (s PartnerService) Update(p models.Partner) (models.Partner, error) {
	if p.ID <= 0 {
		return models.Partner{}, domain.ValidationError{Field: "id", Msg: "id inválido"}
	}
	if err := validatePartner(&p); err != nil {
		return models.Partner{}, err
	}
	if err := s.partners().Update(p); err != nil {
		return models.Partner{}, err
	}
	utils.LogEvent(s.RequestID, "partners", "update", fmt.Sprintf("partner_id=%d", p.ID))
	return p, nil
}

func (s PartnerService) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id inválido"}
	}
	if err := s.partners().Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "partners", "delete", fmt.Sprintf("partner_id=%d", id))
	return nil
}

// Reassign hands a passenger group over to a partner company. Reassigned
// groups drop out of the route plan but keep their seat history.
func (s PartnerService) Reassign(tripID, paxID, partnerID int64) error {
	if partnerID <= 0 {
		return domain.ValidationError{Field: "partner_id", Msg: "id inválido"}
	}
	if _, err := s.partners().GetByID(partnerID); err != nil {
		return err
	}
	if err := s.passengers().AssignPartner(tripID, paxID, partnerID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "partners", "reassign",
		fmt.Sprintf("trip_id=%d passenger_id=%d partner_id=%d", tripID, paxID, partnerID))
	return nil
}

// DraftTransferEmail asks the generative-text collaborator for a hand-off
// email covering the trip's passengers currently assigned to the partner.
// The drafter never fails loudly; on error it yields a placeholder string.
func (s PartnerService) DraftTransferEmail(ctx context.Context, partnerID, tripID int64) (string, error) {
	partner, err := s.partners().GetByID(partnerID)
	if err != nil {
		return "", err
	}
	trip, err := s.trips().GetByID(tripID)
	if err != nil {
		return "", err
	}

	names := []string{}
	paxTotal := 0
	for _, p := range trip.Passengers {
		if p.AssignedPartnerID == partnerID {
			names = append(names, p.Name)
			paxTotal += p.PaxCount
		}
	}
	if len(names) == 0 {
		return "", domain.ValidationError{Field: "passengers", Msg: "nenhum passageiro atribuído a este parceiro"}
	}

	details := fmt.Sprintf("%s -> %s em %s às %s (%s %s)",
		trip.Origin, trip.Destination, utils.DateBR(trip.Date), trip.Time,
		trip.VehicleType, trip.VehicleModel)

	draft := s.Drafter.DraftPartnerEmail(ctx, gentext.EmailRequest{
		PartnerName:    partner.Name,
		PassengerCount: paxTotal,
		TripDetails:    details,
		PassengerNames: names,
	})
	utils.LogEvent(s.RequestID, "partners", "draft_email",
		fmt.Sprintf("partner_id=%d trip_id=%d passengers=%d", partnerID, tripID, len(names)))
	return draft, nil
}

func validatePartner(p *models.Partner) error {
	p.Name = utils.NormalizeSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	if p.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "nome obrigatório"}
	}
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		return domain.ValidationError{Field: "email", Msg: "email inválido"}
	}
	return nil
}

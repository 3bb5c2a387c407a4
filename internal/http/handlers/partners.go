package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turisflow/internal/domain/models"
	"turisflow/internal/http/middleware"
	"turisflow/internal/services"
)

func partnerService(c *gin.Context) services.PartnerService {
	return services.PartnerService{
		Drafter:   getDrafter(),
		RequestID: middleware.GetRequestID(c),
	}
}

func GetPartners(c *gin.Context) {
	partners, err := partnerService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

func GetPartnerByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	partner, err := partnerService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"partner": partner})
}

func CreatePartner(c *gin.Context) {
	var partner models.Partner
	if !BindJSONOrError(c, &partner) {
		return
	}
	created, err := partnerService(c).Create(partner)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"partner": created})
}

func UpdatePartner(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var partner models.Partner
	if !BindJSONOrError(c, &partner) {
		return
	}
	partner.ID = id
	updated, err := partnerService(c).Update(partner)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"partner": updated})
}

func DeletePartner(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := partnerService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

type draftEmailRequest struct {
	TripID int64 `json:"trip_id"`
}

// DraftPartnerEmail returns a generated hand-off email for human review.
// Generation failures come back as placeholder text, never as an error.
func DraftPartnerEmail(c *gin.Context) {
	partnerID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req draftEmailRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.TripID <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "trip_id inválido", nil)
		return
	}
	draft, err := partnerService(c).DraftTransferEmail(c.Request.Context(), partnerID, req.TripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turisflow/internal/domain/models"
	"turisflow/internal/http/middleware"
	"turisflow/internal/services"
)

// BookPassenger adds a group to a trip. The response carries the stored
// overbooking verdict and derived receivable amount.
func BookPassenger(c *gin.Context) {
	tripID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var pax models.Passenger
	if !BindJSONOrError(c, &pax) {
		return
	}
	booked, err := tripService(c).AddPassenger(tripID, pax)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"passenger": booked})
}

type boardingStatusRequest struct {
	Status models.BoardingStatus `json:"status"`
}

func UpdateBoardingStatus(c *gin.Context) {
	tripID, ok := paramID(c, "id")
	if !ok {
		return
	}
	paxID, ok := paramID(c, "paxId")
	if !ok {
		return
	}
	var req boardingStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := tripService(c).UpdateBoardingStatus(tripID, paxID, req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip_id": tripID, "passenger_id": paxID, "status": req.Status})
}

type reassignRequest struct {
	PartnerID int64 `json:"partner_id"`
}

// ReassignPassenger hands an overbooked group to a partner company.
func ReassignPassenger(c *gin.Context) {
	tripID, ok := paramID(c, "id")
	if !ok {
		return
	}
	paxID, ok := paramID(c, "paxId")
	if !ok {
		return
	}
	var req reassignRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.PartnerService{Drafter: getDrafter(), RequestID: middleware.GetRequestID(c)}
	if err := svc.Reassign(tripID, paxID, req.PartnerID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip_id": tripID, "passenger_id": paxID, "partner_id": req.PartnerID})
}

func DeletePassenger(c *gin.Context) {
	tripID, ok := paramID(c, "id")
	if !ok {
		return
	}
	paxID, ok := paramID(c, "paxId")
	if !ok {
		return
	}
	if err := tripService(c).RemovePassenger(tripID, paxID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": paxID})
}

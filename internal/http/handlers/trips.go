package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turisflow/internal/domain/models"
	"turisflow/internal/http/middleware"
	"turisflow/internal/services"
)

func tripService(c *gin.Context) services.TripService {
	return services.TripService{
		Hub:       getHub(),
		RequestID: middleware.GetRequestID(c),
	}
}

func GetTrips(c *gin.Context) {
	trips, err := tripService(c).ListTrips()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

func GetTripByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	trip, err := tripService(c).GetTrip(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

func CreateTrip(c *gin.Context) {
	var trip models.Trip
	if !BindJSONOrError(c, &trip) {
		return
	}
	created, err := tripService(c).CreateTrip(trip)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"trip": created})
}

func UpdateTrip(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var trip models.Trip
	if !BindJSONOrError(c, &trip) {
		return
	}
	trip.ID = id
	updated, err := tripService(c).UpdateTrip(trip)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": updated})
}

func DeleteTrip(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := tripService(c).DeleteTrip(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// GetTripSeats returns the derived seat map for the trip.
func GetTripSeats(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	seats, err := tripService(c).SeatMap(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seats": seats})
}

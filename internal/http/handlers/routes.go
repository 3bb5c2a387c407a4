package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turisflow/internal/http/middleware"
	"turisflow/internal/services"
)

// GetTripRoute returns the optimized pickup sequence plus the shareable
// Google Maps link.
func GetTripRoute(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	svc := services.RouteService{RequestID: middleware.GetRequestID(c)}
	plan, err := svc.PlanTrip(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": plan})
}
